package mockdb

import (
	"context"

	"github.com/sHooPmyWooP/roundnet/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var p []model.Player
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) DeletePlayer(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) GetPlayingDay(ctx context.Context, id string) (*model.PlayingDay, error) {
	args := db.Called(ctx, id)

	var d *model.PlayingDay
	if args.Get(0) != nil {
		d = args.Get(0).(*model.PlayingDay)
	}
	return d, args.Error(1)
}

func (db *DB) ListPlayingDays(ctx context.Context) ([]model.PlayingDay, error) {
	args := db.Called(ctx)

	var d []model.PlayingDay
	if args.Get(0) != nil {
		d = args.Get(0).([]model.PlayingDay)
	}
	return d, args.Error(1)
}

func (db *DB) SavePlayingDay(ctx context.Context, d *model.PlayingDay) error {
	args := db.Called(ctx, d)
	return args.Error(0)
}

func (db *DB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) ListGames(ctx context.Context) ([]model.Game, error) {
	args := db.Called(ctx)

	var g []model.Game
	if args.Get(0) != nil {
		g = args.Get(0).([]model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) ListGamesForDay(ctx context.Context, playingDayID string) ([]model.Game, error) {
	args := db.Called(ctx, playingDayID)

	var g []model.Game
	if args.Get(0) != nil {
		g = args.Get(0).([]model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) ListPartnerships(ctx context.Context) ([]model.Partnership, error) {
	args := db.Called(ctx)

	var p []model.Partnership
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Partnership)
	}
	return p, args.Error(1)
}

func (db *DB) ReplacePartnerships(ctx context.Context, partnerships []model.Partnership) error {
	args := db.Called(ctx, partnerships)
	return args.Error(0)
}

func (db *DB) RecordGameResult(ctx context.Context, day *model.PlayingDay, game *model.Game, players []model.Player, partnerships []model.Partnership) error {
	args := db.Called(ctx, day, game, players, partnerships)
	return args.Error(0)
}
