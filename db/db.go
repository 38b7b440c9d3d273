package db

import (
	"context"

	"github.com/sHooPmyWooP/roundnet/model"
)

type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	// SavePlayer inserts the player when it has no ID yet, assigning a new
	// one, and updates the existing row otherwise.
	SavePlayer(ctx context.Context, p *model.Player) error
	// DeletePlayer removes a player. It fails with ErrPlayerInUse while the
	// player is still referenced by a playing day or a recorded game.
	DeletePlayer(ctx context.Context, id string) error

	GetPlayingDay(ctx context.Context, id string) (*model.PlayingDay, error)
	// ListPlayingDays returns all playing days, most recent date first.
	ListPlayingDays(ctx context.Context) ([]model.PlayingDay, error)
	SavePlayingDay(ctx context.Context, d *model.PlayingDay) error

	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListGames(ctx context.Context) ([]model.Game, error)
	ListGamesForDay(ctx context.Context, playingDayID string) ([]model.Game, error)

	ListPartnerships(ctx context.Context) ([]model.Partnership, error)
	// ReplacePartnerships swaps the full set of stored partnership
	// aggregates in one transaction. Used when rebuilding from the game log.
	ReplacePartnerships(ctx context.Context, partnerships []model.Partnership) error

	// RecordGameResult persists a recorded game as a single unit: the game
	// row, the playing day's updated game list, the players' updated
	// counters, and the touched partnership aggregates either all commit or
	// none do.
	RecordGameResult(ctx context.Context, day *model.PlayingDay, game *model.Game, players []model.Player, partnerships []model.Partnership) error
}
