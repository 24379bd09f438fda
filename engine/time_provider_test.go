package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(1 * time.Hour)
	mock.AdvanceSeconds(1.5)
	expected := startTime.Add(time.Hour + 1500*time.Millisecond)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}
}

func TestFrameClockDeltas(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewFrameClock(mock, 250*time.Millisecond)

	if dt := clock.Tick(); dt != 0 {
		t.Fatalf("first tick should report 0, got %v", dt)
	}

	mock.Advance(16 * time.Millisecond)
	if dt := clock.Tick(); dt != 0.016 {
		t.Errorf("expected 0.016s, got %v", dt)
	}

	// Stall longer than the cap
	mock.Advance(2 * time.Second)
	if dt := clock.Tick(); dt != 0.25 {
		t.Errorf("expected capped 0.25s, got %v", dt)
	}
}

func TestFrameClockPause(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewFrameClock(mock, 0)
	clock.Tick()

	clock.Pause()
	mock.Advance(time.Second)
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("paused clock should report 0, got %v", dt)
	}

	clock.Resume()
	mock.Advance(100 * time.Millisecond)
	if dt := clock.Tick(); dt != 0.1 {
		t.Errorf("expected 0.1s after resume, got %v", dt)
	}
	if clock.IsPaused() {
		t.Error("clock should not be paused after Resume")
	}
}
