// Package t2048 implements the 2048 sliding-tile game: a rule engine with
// undo history and a one-ply move advisor, plus campaign and endless modes
// for the terminal platform.
package t2048

import "github.com/samber/lo"

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int // Target tile value to reach
}

// Levels defines the 10 campaign levels with increasing difficulty.
// Targets double each level; the running max tile must reach them.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 64},
	{ID: 2, Name: "Getting Started", Target: 128},
	{ID: 3, Name: "Building Momentum", Target: 256},
	{ID: 4, Name: "The Climb", Target: 512},
	{ID: 5, Name: "Halfway", Target: 1024},
	{ID: 6, Name: "Classic 2048", Target: 2048},
	{ID: 7, Name: "Beyond Limits", Target: 4096},
	{ID: 8, Name: "Master Class", Target: 8192},
	{ID: 9, Name: "Grandmaster", Target: 16384},
	{ID: 10, Name: "Ultimate Champion", Target: 32768},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	return lo.Map(Levels, func(l Level, _ int) string { return l.Name })
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	return lo.Map(Levels, func(l Level, _ int) int { return l.Target })
}

// LevelForTile returns the index of the highest level whose target tile is
// already reached, or -1 when none is.
func LevelForTile(tile int) int {
	_, idx, ok := lo.FindLastIndexOf(Levels, func(l Level) bool { return tile >= l.Target })
	if !ok {
		return -1
	}
	return idx
}
