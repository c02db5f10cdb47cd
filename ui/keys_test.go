package ui

import "testing"

func TestRepeatsSchedule(t *testing.T) {
	var fired []int
	for d := 0; d <= RepeatDelay+2*RepeatInterval+1; d++ {
		if Repeats(d) {
			fired = append(fired, d)
		}
	}
	want := []int{1, RepeatDelay + 1, RepeatDelay + 1 + RepeatInterval, RepeatDelay + 1 + 2*RepeatInterval}
	if len(fired) != len(want) {
		t.Fatalf("fired on %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired on %v, want %v", fired, want)
		}
	}
}

func TestShortTapFiresOnce(t *testing.T) {
	// a ~150ms tap at 60 TPS
	n := 0
	for d := 1; d <= 9; d++ {
		if Repeats(d) {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("tap fired %d times, want 1", n)
	}
}
