package game

import (
	"math/rand"
	"testing"
	"time"
)

func TestPresetSpeeds(t *testing.T) {
	cases := []struct {
		pad  Control
		want Speed
	}{
		{ControlGreen, 1},
		{ControlRed, 5},
		{ControlYellow, 10},
	}

	for _, tc := range cases {
		// An empty scriptedRand panics if drawn from: presets must not
		// consume randomness.
		got := ChooseSpeed(tc.pad, &scriptedRand{})
		if got != tc.want {
			t.Errorf("ChooseSpeed(%v) = %d, want %d", tc.pad, got, tc.want)
		}
	}
}

func TestAutoSpeedBounds(t *testing.T) {
	if got := ChooseSpeed(ControlBlue, &scriptedRand{vals: []int{0}}); got != 1 {
		t.Errorf("Lowest auto draw = %d, want 1", got)
	}
	if got := ChooseSpeed(ControlBlue, &scriptedRand{vals: []int{9}}); got != 10 {
		t.Errorf("Highest auto draw = %d, want 10", got)
	}
}

func TestAutoSpeedCoversRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	seen := make(map[Speed]bool)
	for i := 0; i < 500; i++ {
		s := ChooseSpeed(ControlBlue, rnd)
		if s < 1 || s > 10 {
			t.Fatalf("Auto speed out of range: %d", s)
		}
		seen[s] = true
	}
	if len(seen) != 10 {
		t.Errorf("Expected all 10 speeds in 500 draws, saw %d", len(seen))
	}
}

func TestTempoMonotonicAndPositive(t *testing.T) {
	prevOn, prevGap := time.Duration(1<<62), time.Duration(1<<62)
	for s := Speed(1); s <= 10; s++ {
		on, gap := s.OnDuration(), s.GapDuration()
		if on <= 0 || gap <= 0 {
			t.Errorf("Speed %d durations not positive: on=%v gap=%v", s, on, gap)
		}
		if on >= prevOn || gap >= prevGap {
			t.Errorf("Speed %d durations not decreasing: on=%v gap=%v", s, on, gap)
		}
		prevOn, prevGap = on, gap
	}
}

func TestTempoReferenceValues(t *testing.T) {
	cases := []struct {
		speed Speed
		on    time.Duration
		gap   time.Duration
	}{
		{1, 1050 * time.Millisecond, 210 * time.Millisecond},
		{5, 650 * time.Millisecond, 130 * time.Millisecond},
		{10, 150 * time.Millisecond, 30 * time.Millisecond},
	}

	for _, tc := range cases {
		if on := tc.speed.OnDuration(); on != tc.on {
			t.Errorf("Speed %d on-duration = %v, want %v", tc.speed, on, tc.on)
		}
		if gap := tc.speed.GapDuration(); gap != tc.gap {
			t.Errorf("Speed %d gap-duration = %v, want %v", tc.speed, gap, tc.gap)
		}
	}
}
