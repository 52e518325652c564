// Package tui provides the Bubble Tea front end for Tile Quest: the game
// loop, key and mouse mapping, the menu, the scoreboard and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-quest/internal/core"
)

const (
	defaultTickRate = 60
	maxTickRate     = 240
	idleTickRate    = 10 // Paused and finished boards do not animate
)

// TickMsg drives one game step.
type TickMsg time.Time

// tickInterval converts a rate in Hz to a tick period. Rates outside
// (0, maxTickRate] fall back to the default or the cap.
func tickInterval(rate int) time.Duration {
	switch {
	case rate <= 0:
		rate = defaultTickRate
	case rate > maxTickRate:
		rate = maxTickRate
	}
	return time.Second / time.Duration(rate)
}

// frameRate returns the rate for the next tick. A board with no running
// clock only needs to pick up input, so it ticks at idleTickRate.
func frameRate(rate int, state core.GameState) int {
	if (state.Paused || state.GameOver) && rate > idleTickRate {
		return idleTickRate
	}
	return rate
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
