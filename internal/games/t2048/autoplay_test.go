package t2048

import (
	"context"
	"testing"
)

func TestAutoPlayAdvisor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	run := func() Result {
		res, err := AutoPlay(context.Background(), AutoPlayConfig{Strategy: StrategyAdvisor, Seed: 3})
		if err != nil {
			t.Fatalf("AutoPlay: %v", err)
		}
		return res
	}

	a := run()
	if a.Moves == 0 || a.Score == 0 {
		t.Errorf("advisor game made no progress: %+v", a)
	}
	if a.MaxTile < 64 {
		t.Errorf("advisor reached only %d", a.MaxTile)
	}
	if b := run(); a != b {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
}

func TestAutoPlayRandom(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	snapshots := 0
	res, err := AutoPlay(context.Background(), AutoPlayConfig{
		Strategy: StrategyRandom,
		Seed:     5,
		OnMove:   func(Snapshot) { snapshots++ },
	})
	if err != nil {
		t.Fatalf("AutoPlay: %v", err)
	}
	if res.Moves == 0 {
		t.Error("random game made no moves")
	}
	if snapshots != res.Moves {
		t.Errorf("OnMove called %d times for %d moves", snapshots, res.Moves)
	}
}

func TestAutoPlayCancelled(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AutoPlay(ctx, AutoPlayConfig{Strategy: StrategyAdvisor, Seed: 1})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []string{"advisor", "random"} {
		if got, err := ParseStrategy(s); err != nil || string(got) != s {
			t.Errorf("ParseStrategy(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseStrategy("greedy"); err == nil {
		t.Error("ParseStrategy should reject unknown names")
	}
	if _, err := AutoPlay(context.Background(), AutoPlayConfig{Strategy: "greedy"}); err == nil {
		t.Error("AutoPlay should reject unknown strategies")
	}
}
