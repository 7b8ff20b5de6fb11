package core

import (
	"testing"
	"time"
)

func TestClockFirstTickIsZero(t *testing.T) {
	c := NewClock()
	if dt := c.Tick(time.Now()); dt != 0 {
		t.Errorf("first Tick() = %v, expected 0", dt)
	}
}

func TestClockClampsDelta(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name     string
		gap      time.Duration
		expected float64
	}{
		{"normal frame", 16 * time.Millisecond, 0.016},
		{"exactly max", time.Second / 30, MaxStep},
		{"stall after tab switch", 5 * time.Second, MaxStep},
		{"clock went backwards", -20 * time.Millisecond, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClock()
			c.Tick(base)
			dt := c.Tick(base.Add(tc.gap))
			if dt < 0 || dt > MaxStep {
				t.Fatalf("Tick() = %v, outside [0, %v]", dt, MaxStep)
			}
			if diff := dt - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Tick() = %v, expected %v", dt, tc.expected)
			}
		})
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock()
	base := time.Unix(0, 0)
	c.Tick(base)
	c.Reset()
	if dt := c.Tick(base.Add(10 * time.Millisecond)); dt != 0 {
		t.Errorf("Tick() after Reset = %v, expected 0", dt)
	}
}
