package model

import (
	"fmt"
	"time"
)

const (
	MinSkillLevel = 1
	MaxSkillLevel = 10
)

type Player struct {
	ID         string
	Name       string
	SkillLevel int
	TotalWins  int
	TotalGames int
	Created    time.Time
}

// WinRate returns wins/games from the player's cumulative counters.
// A player that has never played has a win rate of 0.
func (p Player) WinRate() float64 {
	if p.TotalGames == 0 {
		return 0
	}
	return float64(p.TotalWins) / float64(p.TotalGames)
}

func (p Player) Record() string {
	return fmt.Sprintf("%d-%d", p.TotalWins, p.TotalGames-p.TotalWins)
}

func (p Player) FormattedCreatedTime() string {
	if p.Created.IsZero() {
		return "unknown"
	}
	return p.Created.Format(time.DateTime)
}

// ValidSkillLevel reports whether s is on the 1-10 scale used for balancing.
func ValidSkillLevel(s int) bool {
	return s >= MinSkillLevel && s <= MaxSkillLevel
}

// PlayerStats is a derived snapshot for a single player, computed from the
// game log rather than read from the stored counters.
type PlayerStats struct {
	PlayerID   string
	WinRate    float64
	TotalGames int
	TotalWins  int
}
