package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// menuEntry identifies a row of the main menu.
type menuEntry int

const (
	entryCampaign menuEntry = iota
	entryEndless
	entrySelectLevel
	entryDifficulty
	entryScores
	entryQuit
)

var menuEntries = []menuEntry{entryCampaign, entryEndless, entrySelectLevel, entryDifficulty, entryScores, entryQuit}

// difficultyChoices are cycled by the difficulty entry.
// The empty preset keeps whatever the config file says.
var difficultyChoices = []string{
	"",
	string(config.DifficultyEasy),
	string(config.DifficultyNormal),
	string(config.DifficultyHard),
	string(config.DifficultyFixed),
}

// Selection describes the game the user picked from the menu.
type Selection struct {
	GameID     string // "2048" or "2048_endless"
	Level      int    // 0 = start from beginning, 1-10 = specific level
	Difficulty string // Preset name, empty for config default
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	difficulty     int // Index into difficultyChoices
	width          int
	height         int
	highScore      int
	bestTile       int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *Selection
	openScoreboard bool // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model. difficulty is the preset
// preselected in the menu, usually from the --difficulty flag.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty string) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if i := slices.Index(difficultyChoices, difficulty); i >= 0 {
		m.difficulty = i
	}

	if store != nil {
		// Best-effort header stats
		m.highScore, _ = store.HighScore("2048_endless")
		if campaign, err := store.HighScore("2048"); err == nil {
			m.highScore = max(m.highScore, campaign)
		}
		m.bestTile, _ = store.BestTile("2048_endless")
		if campaign, err := store.BestTile("2048"); err == nil {
			m.bestTile = max(m.bestTile, campaign)
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes main menu navigation.
func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.activate(menuEntries[m.cursor])

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// activate runs the behavior of a menu entry.
func (m MenuModel) activate(e menuEntry) (tea.Model, tea.Cmd) {
	switch e {
	case entryCampaign:
		return m.choose("2048", 0)
	case entryEndless:
		return m.choose("2048_endless", 0)
	case entrySelectLevel:
		m.inLevelSelect = true
		m.levelCursor = 0
	case entryDifficulty:
		m.difficulty = (m.difficulty + 1) % len(difficultyChoices)
	case entryScores:
		m.openScoreboard = true
		return m, tea.Quit
	case entryQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// choose records the selection and exits the menu to start the game.
func (m MenuModel) choose(gameID string, level int) (tea.Model, tea.Cmd) {
	m.selected = &Selection{
		GameID:     gameID,
		Level:      level,
		Difficulty: difficultyChoices[m.difficulty],
	}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best score: %d  Best tile: %d", m.highScore, m.bestTile), m.width))
	} else {
		b.WriteString(centerText("Join the tiles, get to 2048!", m.width))
	}
	b.WriteString("\n\n")

	for i, e := range menuEntries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+m.entryLabel(e), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// entryLabel returns the display text of a menu entry.
func (m MenuModel) entryLabel(e menuEntry) string {
	switch e {
	case entryCampaign:
		return "Campaign (10 levels)"
	case entryEndless:
		return "Endless Mode"
	case entrySelectLevel:
		return "Select Level..."
	case entryDifficulty:
		d := difficultyChoices[m.difficulty]
		if d == "" {
			d = "config"
		}
		return "Difficulty: " + d
	case entryScores:
		return "High Scores"
	case entryQuit:
		return "Quit"
	}
	return ""
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Difficulty returns the preset currently shown in the menu.
func (m MenuModel) Difficulty() string {
	return difficultyChoices[m.difficulty]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: difficulty, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}

	return result, nil
}
