package tui

import "testing"

func TestReachedLevel(t *testing.T) {
	tests := []struct {
		tile int
		want string
	}{
		{16, "-"},
		{64, "Warm-up"},
		{2048, "Classic 2048"},
		{4096, "Beyond Limits"},
	}
	for _, tt := range tests {
		if got := reachedLevel(tt.tile); got != tt.want {
			t.Errorf("reachedLevel(%d) = %q, want %q", tt.tile, got, tt.want)
		}
	}
}
