package controller

import (
	"context"
	"fmt"

	"github.com/sHooPmyWooP/roundnet/model"
)

func (c *controller) RecordGame(ctx context.Context, playingDayID string, teamA, teamB model.Team, result model.Result, durationMinutes int, notes string) (*model.Game, error) {
	switch result {
	case model.ResultTeamAWin, model.ResultTeamBWin, model.ResultTie:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownResult, result)
	}
	if durationMinutes < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeDuration, durationMinutes)
	}

	day, err := c.db.GetPlayingDay(ctx, playingDayID)
	if err != nil {
		return nil, err
	}

	if err := validateGameTeams(day, teamA, teamB); err != nil {
		return nil, err
	}

	game := &model.Game{
		PlayingDayID:    day.ID,
		TeamA:           teamA,
		TeamB:           teamB,
		Result:          result,
		DurationMinutes: durationMinutes,
		Notes:           notes,
		Algorithm:       day.Algorithm,
	}

	// Player counters move together with the game insert, and the two
	// partnership rows are written at their replayed-from-log values, so a
	// failed commit leaves everything at the pre-game state.
	players, err := c.updatedPlayers(ctx, game)
	if err != nil {
		return nil, err
	}

	stats, err := c.statsSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats.addGame(game)
	partnerships := []model.Partnership{
		stats.partnership(teamA.PlayerIDs[0], teamA.PlayerIDs[1]),
		stats.partnership(teamB.PlayerIDs[0], teamB.PlayerIDs[1]),
	}

	if err := c.db.RecordGameResult(ctx, day, game, players, partnerships); err != nil {
		return nil, fmt.Errorf("error recording game for day %s: %w", day.ID, err)
	}

	c.log.Infow("recorded game", "playingDay", day.ID, "game", game.ID, "result", result)
	return game, nil
}

func (c *controller) ListGamesForDay(ctx context.Context, playingDayID string) ([]model.Game, error) {
	return c.db.ListGamesForDay(ctx, playingDayID)
}

// validateGameTeams enforces the four-distinct-player invariant and that both
// teams come out of the day's assigned roster. Nothing is mutated before
// these checks pass.
func validateGameTeams(day *model.PlayingDay, teamA, teamB model.Team) error {
	ids := []string{teamA.PlayerIDs[0], teamA.PlayerIDs[1], teamB.PlayerIDs[0], teamB.PlayerIDs[1]}

	seen := make(map[string]bool, 4)
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: empty player id", ErrValidation)
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateGamePlayer, id)
		}
		seen[id] = true

		if !day.HasPlayer(id) {
			return fmt.Errorf("%w: %s", ErrTeamNotInRoster, id)
		}
	}
	return nil
}

// updatedPlayers loads the four participants and returns copies with their
// cumulative counters advanced for the game being recorded.
func (c *controller) updatedPlayers(ctx context.Context, game *model.Game) ([]model.Player, error) {
	winner := game.WinningTeam()

	players := make([]model.Player, 0, 4)
	for _, id := range game.PlayerIDs() {
		p, err := c.db.GetPlayer(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}

		p.TotalGames++
		if winner != nil && winner.Contains(id) {
			p.TotalWins++
		}
		players = append(players, *p)
	}
	return players, nil
}
