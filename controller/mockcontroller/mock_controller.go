package mockcontroller

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sHooPmyWooP/roundnet/controller"
	"github.com/sHooPmyWooP/roundnet/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) CreatePlayer(ctx context.Context, name string, skillLevel int) (*model.Player, error) {
	args := c.Called(ctx, name, skillLevel)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var p []model.Player
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Player)
	}
	return p, args.Error(1)
}

func (c *C) UpdatePlayerSkill(ctx context.Context, id string, skillLevel int) error {
	args := c.Called(ctx, id, skillLevel)
	return args.Error(0)
}

func (c *C) DeletePlayer(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) CreatePlayingDay(ctx context.Context, date time.Time, location, description string) (*model.PlayingDay, error) {
	args := c.Called(ctx, date, location, description)

	var d *model.PlayingDay
	if args.Get(0) != nil {
		d = args.Get(0).(*model.PlayingDay)
	}
	return d, args.Error(1)
}

func (c *C) GetPlayingDay(ctx context.Context, id string) (*model.PlayingDay, error) {
	args := c.Called(ctx, id)

	var d *model.PlayingDay
	if args.Get(0) != nil {
		d = args.Get(0).(*model.PlayingDay)
	}
	return d, args.Error(1)
}

func (c *C) ListPlayingDays(ctx context.Context) ([]model.PlayingDay, error) {
	args := c.Called(ctx)

	var d []model.PlayingDay
	if args.Get(0) != nil {
		d = args.Get(0).([]model.PlayingDay)
	}
	return d, args.Error(1)
}

func (c *C) AssignRoster(ctx context.Context, playingDayID string, playerIDs []string) error {
	args := c.Called(ctx, playingDayID, playerIDs)
	return args.Error(0)
}

func (c *C) GenerateTeams(ctx context.Context, playingDayID string, algorithm model.Algorithm, rng *rand.Rand) (*model.PlayingDay, error) {
	args := c.Called(ctx, playingDayID, algorithm, rng)

	var d *model.PlayingDay
	if args.Get(0) != nil {
		d = args.Get(0).(*model.PlayingDay)
	}
	return d, args.Error(1)
}

func (c *C) RecordGame(ctx context.Context, playingDayID string, teamA, teamB model.Team, result model.Result, durationMinutes int, notes string) (*model.Game, error) {
	args := c.Called(ctx, playingDayID, teamA, teamB, result, durationMinutes, notes)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (c *C) ListGamesForDay(ctx context.Context, playingDayID string) ([]model.Game, error) {
	args := c.Called(ctx, playingDayID)

	var g []model.Game
	if args.Get(0) != nil {
		g = args.Get(0).([]model.Game)
	}
	return g, args.Error(1)
}

func (c *C) GetPlayerStats(ctx context.Context, playerID string) (*model.PlayerStats, error) {
	args := c.Called(ctx, playerID)

	var s *model.PlayerStats
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PlayerStats)
	}
	return s, args.Error(1)
}

func (c *C) GetPartnershipStats(ctx context.Context, playerA, playerB string) (*model.Partnership, error) {
	args := c.Called(ctx, playerA, playerB)

	var p *model.Partnership
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Partnership)
	}
	return p, args.Error(1)
}

func (c *C) ListPartnerships(ctx context.Context) ([]model.Partnership, error) {
	args := c.Called(ctx)

	var p []model.Partnership
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Partnership)
	}
	return p, args.Error(1)
}

func (c *C) Summary(ctx context.Context) (*controller.Summary, error) {
	args := c.Called(ctx)

	var s *controller.Summary
	if args.Get(0) != nil {
		s = args.Get(0).(*controller.Summary)
	}
	return s, args.Error(1)
}

func (c *C) RebuildPartnerships(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicPartnershipRebuild(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
