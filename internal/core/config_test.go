package core

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{0, time.Second / 60},
		{30, time.Second / 30},
		{-5, time.Second},
		{1000, time.Second / MaxTickRate},
	}

	for _, tt := range tests {
		cfg := RuntimeConfig{TickRate: tt.rate}
		if got := cfg.TickInterval(); got != tt.want {
			t.Errorf("TickInterval() with rate %d = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
