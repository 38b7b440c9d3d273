package controller

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sHooPmyWooP/roundnet/model"
)

// statsIndex is a pure aggregation over a snapshot of the game log. Both the
// stats read paths and the win-rate/partnership balancing algorithms work
// from it, so they always agree with the recorded games rather than with the
// stored counters.
type statsIndex struct {
	gamesPlayed  map[string]int
	gamesWon     map[string]int
	partnerships map[model.PairKey]model.Partnership
}

func newStatsIndex(games []model.Game) *statsIndex {
	idx := &statsIndex{
		gamesPlayed:  make(map[string]int),
		gamesWon:     make(map[string]int),
		partnerships: make(map[model.PairKey]model.Partnership),
	}
	for i := range games {
		idx.addGame(&games[i])
	}
	return idx
}

func (idx *statsIndex) addGame(g *model.Game) {
	for _, id := range g.PlayerIDs() {
		idx.gamesPlayed[id]++
	}
	if winner := g.WinningTeam(); winner != nil {
		idx.gamesWon[winner.PlayerIDs[0]]++
		idx.gamesWon[winner.PlayerIDs[1]]++
	}

	idx.addTeam(g.TeamA, g.Result == model.ResultTeamAWin)
	idx.addTeam(g.TeamB, g.Result == model.ResultTeamBWin)
}

func (idx *statsIndex) addTeam(t model.Team, won bool) {
	key := model.NewPairKey(t.PlayerIDs[0], t.PlayerIDs[1])
	p := idx.partnerships[key]
	p.Pair = key
	p.TimesTogether++
	if won {
		p.WinsTogether++
	}
	idx.partnerships[key] = p
}

// winRate returns 0 for ids that never played; never-played is a valid state,
// not an error.
func (idx *statsIndex) winRate(playerID string) float64 {
	played := idx.gamesPlayed[playerID]
	if played == 0 {
		return 0
	}
	return float64(idx.gamesWon[playerID]) / float64(played)
}

func (idx *statsIndex) playerStats(playerID string) model.PlayerStats {
	return model.PlayerStats{
		PlayerID:   playerID,
		WinRate:    idx.winRate(playerID),
		TotalGames: idx.gamesPlayed[playerID],
		TotalWins:  idx.gamesWon[playerID],
	}
}

// partnership returns the aggregate for the unordered pair (a,b), zero-valued
// when the two have never been teammates.
func (idx *statsIndex) partnership(a, b string) model.Partnership {
	key := model.NewPairKey(a, b)
	p, found := idx.partnerships[key]
	if !found {
		return model.Partnership{Pair: key}
	}
	return p
}

// timesPartnered is the total number of games the player has played with any
// partner, used to seed the partnership-balancing greedy matching.
func (idx *statsIndex) timesPartnered(playerID string) int {
	total := 0
	for key, p := range idx.partnerships {
		if key.A == playerID || key.B == playerID {
			total += p.TimesTogether
		}
	}
	return total
}

func (idx *statsIndex) allPartnerships() []model.Partnership {
	result := make([]model.Partnership, 0, len(idx.partnerships))
	for _, p := range idx.partnerships {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b model.Partnership) int {
		if a.Pair.A != b.Pair.A {
			if a.Pair.A < b.Pair.A {
				return -1
			}
			return 1
		}
		if a.Pair.B < b.Pair.B {
			return -1
		}
		if a.Pair.B > b.Pair.B {
			return 1
		}
		return 0
	})
	return result
}

func (c *controller) statsSnapshot(ctx context.Context) (*statsIndex, error) {
	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading game log: %w", err)
	}
	return newStatsIndex(games), nil
}

func (c *controller) GetPlayerStats(ctx context.Context, playerID string) (*model.PlayerStats, error) {
	idx, err := c.statsSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := idx.playerStats(playerID)
	return &stats, nil
}

func (c *controller) GetPartnershipStats(ctx context.Context, playerA, playerB string) (*model.Partnership, error) {
	idx, err := c.statsSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	p := idx.partnership(playerA, playerB)
	return &p, nil
}

func (c *controller) ListPartnerships(ctx context.Context) ([]model.Partnership, error) {
	idx, err := c.statsSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return idx.allPartnerships(), nil
}

// Summary holds the aggregates shown on the dashboard landing page.
type Summary struct {
	TotalPlayers     int
	TotalPlayingDays int
	TotalGames       int
	AvgGameDuration  float64
	RecentGames      int
}

func (c *controller) Summary(ctx context.Context) (*Summary, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	days, err := c.db.ListPlayingDays(ctx)
	if err != nil {
		return nil, err
	}
	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		TotalPlayers:     len(players),
		TotalPlayingDays: len(days),
		TotalGames:       len(games),
	}

	cutoff := c.clock.Now().Add(-7 * 24 * time.Hour)
	totalDuration := 0
	for i := range games {
		totalDuration += games[i].DurationMinutes
		if games[i].Created.After(cutoff) {
			s.RecentGames++
		}
	}
	if len(games) > 0 {
		s.AvgGameDuration = float64(totalDuration) / float64(len(games))
	}
	return s, nil
}
