package model

import (
	"strings"
	"time"
)

// Result tags the outcome of a game. Exactly one of the three applies.
type Result string

const (
	ResultUnknown  Result = "unknown"
	ResultTeamAWin Result = "team_a_win"
	ResultTeamBWin Result = "team_b_win"
	ResultTie      Result = "tie"
)

func ParseResult(r string) Result {
	r = strings.ToLower(strings.TrimSpace(r))
	switch r {
	case "team_a_win", "a":
		return ResultTeamAWin
	case "team_b_win", "b":
		return ResultTeamBWin
	case "tie":
		return ResultTie
	default:
		return ResultUnknown
	}
}

func (r Result) Label() string {
	switch r {
	case ResultTeamAWin:
		return "Team A won"
	case ResultTeamBWin:
		return "Team B won"
	case ResultTie:
		return "Tie"
	default:
		return "Unknown"
	}
}

// Game records a single match between two teams of a playing day. Games are
// immutable once recorded and keep their own snapshot of the two teams, so a
// later regeneration of the day's partition never alters them.
type Game struct {
	ID              string
	PlayingDayID    string
	TeamA           Team
	TeamB           Team
	Result          Result
	DurationMinutes int
	Notes           string
	// Algorithm is copied from the playing day at recording time so the
	// game log can be analyzed per generation strategy.
	Algorithm Algorithm
	Created   time.Time
}

// PlayerIDs returns all four participating player ids, team A first.
func (g *Game) PlayerIDs() []string {
	return []string{g.TeamA.PlayerIDs[0], g.TeamA.PlayerIDs[1], g.TeamB.PlayerIDs[0], g.TeamB.PlayerIDs[1]}
}

// WinningTeam returns the team that won, or nil for a tie.
func (g *Game) WinningTeam() *Team {
	switch g.Result {
	case ResultTeamAWin:
		return &g.TeamA
	case ResultTeamBWin:
		return &g.TeamB
	default:
		return nil
	}
}
