package controller

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sHooPmyWooP/roundnet/db"
	"github.com/sHooPmyWooP/roundnet/model"
	"go.uber.org/zap"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	CreatePlayer(ctx context.Context, name string, skillLevel int) (*model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	UpdatePlayerSkill(ctx context.Context, id string, skillLevel int) error
	// DeletePlayer removes a player that is not referenced by any playing
	// day or game. Returns db.ErrPlayerInUse otherwise.
	DeletePlayer(ctx context.Context, id string) error

	CreatePlayingDay(ctx context.Context, date time.Time, location, description string) (*model.PlayingDay, error)
	GetPlayingDay(ctx context.Context, id string) (*model.PlayingDay, error)
	ListPlayingDays(ctx context.Context) ([]model.PlayingDay, error)
	// AssignRoster attaches the given players to the playing day, replacing
	// any previous roster. A previously generated team partition is
	// discarded since it may no longer cover the roster.
	AssignRoster(ctx context.Context, playingDayID string, playerIDs []string) error
	// GenerateTeams partitions the day's roster into two-player teams with
	// the chosen algorithm. rng is only consulted by the random algorithm;
	// pass nil to seed from the current time.
	GenerateTeams(ctx context.Context, playingDayID string, algorithm model.Algorithm, rng *rand.Rand) (*model.PlayingDay, error)
	// RecordGame validates and records a game outcome against the playing
	// day, updating the player counters and partnership aggregates in the
	// same transaction as the game itself.
	RecordGame(ctx context.Context, playingDayID string, teamA, teamB model.Team, result model.Result, durationMinutes int, notes string) (*model.Game, error)
	ListGamesForDay(ctx context.Context, playingDayID string) ([]model.Game, error)

	// GetPlayerStats derives the player's statistics from the full game log.
	GetPlayerStats(ctx context.Context, playerID string) (*model.PlayerStats, error)
	GetPartnershipStats(ctx context.Context, playerA, playerB string) (*model.Partnership, error)
	ListPartnerships(ctx context.Context) ([]model.Partnership, error)
	Summary(ctx context.Context) (*Summary, error)

	// RebuildPartnerships recomputes all partnership aggregates from the
	// game log and atomically replaces the stored rows.
	RebuildPartnerships(ctx context.Context) error
	RunPeriodicPartnershipRebuild(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock clock.Clock
	db    db.DB
	log   *zap.SugaredLogger
}

func New(clock clock.Clock, db db.DB, log *zap.SugaredLogger) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
		log:   log,
	}
	return c, nil
}
