package model

import (
	"time"
)

// Team is a single two-player team inside a generated partition. Teams are
// ephemeral and only meaningful for the playing day that generated them.
type Team struct {
	PlayerIDs [2]string
}

func NewTeam(a, b string) Team {
	return Team{PlayerIDs: [2]string{a, b}}
}

func (t Team) Contains(playerID string) bool {
	return t.PlayerIDs[0] == playerID || t.PlayerIDs[1] == playerID
}

// PlayingDay is a single session grouping a roster, the generated team
// partition, and the games recorded against it.
type PlayingDay struct {
	ID             string
	Date           time.Time
	Location       string
	Description    string
	PlayerIDs      []string
	GeneratedTeams []Team
	Algorithm      Algorithm
	GameIDs        []string
	Created        time.Time
}

// HasPlayer reports whether the player is part of the assigned roster.
func (d PlayingDay) HasPlayer(playerID string) bool {
	for _, id := range d.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

func (d PlayingDay) FormattedDate() string {
	if d.Date.IsZero() {
		return "unknown"
	}
	return d.Date.Format(time.DateOnly)
}
