package controller

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sHooPmyWooP/roundnet/model"
)

func (c *controller) CreatePlayingDay(ctx context.Context, date time.Time, location, description string) (*model.PlayingDay, error) {
	d := &model.PlayingDay{
		Date:        date,
		Location:    location,
		Description: description,
	}
	if err := c.db.SavePlayingDay(ctx, d); err != nil {
		return nil, fmt.Errorf("error creating playing day: %w", err)
	}
	return d, nil
}

func (c *controller) GetPlayingDay(ctx context.Context, id string) (*model.PlayingDay, error) {
	return c.db.GetPlayingDay(ctx, id)
}

func (c *controller) ListPlayingDays(ctx context.Context) ([]model.PlayingDay, error) {
	return c.db.ListPlayingDays(ctx)
}

func (c *controller) AssignRoster(ctx context.Context, playingDayID string, playerIDs []string) error {
	day, err := c.db.GetPlayingDay(ctx, playingDayID)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
		}
		seen[id] = true

		if _, err := c.db.GetPlayer(ctx, id); err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
	}

	day.PlayerIDs = playerIDs
	// The previous partition may pair players that are no longer assigned,
	// so it is discarded. Recorded games keep their own team snapshots.
	day.GeneratedTeams = nil
	day.Algorithm = ""

	return c.db.SavePlayingDay(ctx, day)
}

func (c *controller) GenerateTeams(ctx context.Context, playingDayID string, algorithm model.Algorithm, rng *rand.Rand) (*model.PlayingDay, error) {
	day, err := c.db.GetPlayingDay(ctx, playingDayID)
	if err != nil {
		return nil, err
	}

	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	stats, err := c.statsSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(c.clock.Now().UnixNano()))
	}

	teams, err := generateTeams(day.PlayerIDs, algorithm, byID, stats, rng)
	if err != nil {
		return nil, err
	}

	day.GeneratedTeams = teams
	day.Algorithm = algorithm
	if err := c.db.SavePlayingDay(ctx, day); err != nil {
		return nil, fmt.Errorf("error saving generated teams for day %s: %w", day.ID, err)
	}

	c.log.Infow("generated teams", "playingDay", day.ID, "algorithm", algorithm, "teams", len(teams))
	return day, nil
}
