package tween

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	eases := map[string]Ease{
		"none":       Linear,
		"power1.in":  Power1In,
		"power1.out": Power1Out,
		"power2.in":  Power2In,
		"power2.out": Power2Out,
	}
	for name, e := range eases {
		if e(0) != 0 || math.Abs(e(1)-1) > 1e-12 {
			t.Errorf("%s: endpoints (%v, %v), want (0, 1)", name, e(0), e(1))
		}
		if mid := e(0.5); mid <= 0 || mid >= 1 {
			t.Errorf("%s: midpoint %v out of (0,1)", name, mid)
		}
	}

	if Power2Out(0.5) <= Linear(0.5) {
		t.Error("ease-out should lead linear at the midpoint")
	}
	if Power2In(0.5) >= Linear(0.5) {
		t.Error("ease-in should trail linear at the midpoint")
	}
	if ByName("bogus")(0.3) != 0.3 {
		t.Error("unknown ease name should resolve to Linear")
	}
}

func TestTweenReachesTarget(t *testing.T) {
	var v float64
	completed := 0
	tw := New(1, 0, 0.5, Power2Out, func(x float64) { v = x }).OnComplete(func() { completed++ })

	for i := 0; i < 10 && !tw.Step(0.016); i++ {
	}
	if tw.Completed() {
		t.Fatal("tween completed too early")
	}
	if v <= 0 || v >= 1 {
		t.Errorf("mid-tween value %v should be between endpoints", v)
	}

	for !tw.Step(0.016) {
	}
	if v != 0 {
		t.Errorf("final value = %v, want exactly 0", v)
	}
	if completed != 1 {
		t.Errorf("OnComplete ran %d times", completed)
	}
	// Stepping a finished tween is a no-op
	tw.Step(1)
	if completed != 1 {
		t.Error("OnComplete ran again after completion")
	}
}

func TestTweenZeroDuration(t *testing.T) {
	var v float64
	tw := New(0, 6, 0, Linear, func(x float64) { v = x })
	if !tw.Step(0) {
		t.Fatal("zero-duration tween should finish on first step")
	}
	if v != 6 {
		t.Errorf("value = %v, want 6", v)
	}
	if tw.Progress() != 1 {
		t.Errorf("progress = %v, want 1", tw.Progress())
	}
}

func TestTweenKill(t *testing.T) {
	completed := false
	tw := New(0, 1, 1, Linear, nil).OnComplete(func() { completed = true })
	tw.Step(0.5)
	tw.Kill()
	tw.Step(1)
	if completed {
		t.Error("killed tween completed")
	}
	if tw.Active() {
		t.Error("killed tween still active")
	}
}

func TestSlotLastWriterWins(t *testing.T) {
	var v float64
	set := func(x float64) { v = x }
	var slot Slot

	first := slot.Start(New(0, 10, 1, Linear, set))
	slot.Step(0.5)
	second := slot.Start(New(v, -10, 1, Linear, set))

	if first.Active() {
		t.Error("first tween should be killed when replaced")
	}
	if slot.Current() != second {
		t.Error("slot should hold the second tween")
	}

	slot.Step(1)
	if v != -10 {
		t.Errorf("value = %v, want -10", v)
	}
	if slot.Active() {
		t.Error("slot should be empty after completion")
	}
}

func TestSlotChainedCompletion(t *testing.T) {
	var v float64
	set := func(x float64) { v = x }
	var slot Slot

	slot.Start(New(1, 6, 0.2, Linear, set).OnComplete(func() {
		slot.Start(New(v, 1, 1, Power1Out, set))
	}))

	slot.Step(0.2)
	if v != 6 {
		t.Fatalf("burst value = %v, want 6", v)
	}
	if !slot.Active() {
		t.Fatal("successor installed by OnComplete was dropped")
	}
	slot.Step(1)
	if v != 1 {
		t.Errorf("settled value = %v, want 1", v)
	}
}
