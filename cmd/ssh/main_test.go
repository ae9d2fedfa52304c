package main

import "testing"

func TestSessionLimiter(t *testing.T) {
	l := newSessionLimiter(2)
	if !l.acquire() || !l.acquire() {
		t.Fatal("limiter refused a session below its limit")
	}
	if l.acquire() {
		t.Fatal("limiter admitted a session above its limit")
	}
	l.release()
	if !l.acquire() {
		t.Error("released slot not reusable")
	}
}

func TestSessionLimiterUnlimited(t *testing.T) {
	l := newSessionLimiter(0)
	for i := 0; i < 100; i++ {
		if !l.acquire() {
			t.Fatalf("unlimited limiter refused session %d", i)
		}
	}
}

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Errorf("getSize() = %d, %d, %v", w, h, err)
	}
}
