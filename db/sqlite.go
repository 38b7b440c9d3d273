package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/sHooPmyWooP/roundnet/model"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"moul.io/zapgorm2"
)

var (
	ErrPlayerNotFound     error = errors.New("player not found")
	ErrPlayingDayNotFound error = errors.New("playing day not found")
	ErrGameNotFound       error = errors.New("game not found")
	ErrPlayerInUse        error = errors.New("player is referenced by a playing day or game")
)

// New opens (or creates) the sqlite database file at path. The entire entity
// store lives in that one file.
func New(path string, clock clock.Clock, log *zap.Logger) (DB, error) {
	gormLogger := zapgorm2.New(log)
	gormLogger.SetAsDefault()

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite db at %s: %w", path, err)
	}

	if err := conn.AutoMigrate(&playerRow{}, &playingDayRow{}, &gameRow{}, &partnershipRow{}); err != nil {
		return nil, fmt.Errorf("error migrating schema: %w", err)
	}

	return &sqliteDB{conn: conn, clock: clock}, nil
}

type sqliteDB struct {
	conn  *gorm.DB
	clock clock.Clock
}

type playerRow struct {
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"index"`
	SkillLevel int
	TotalWins  int
	TotalGames int
	Created    time.Time
}

func (playerRow) TableName() string { return "players" }

type playingDayRow struct {
	ID          string    `gorm:"primaryKey"`
	Date        time.Time `gorm:"index"`
	Location    string
	Description string
	PlayerIDs   string // JSON array of player ids
	Teams       string // JSON array of [2]string teams
	Algorithm   string
	GameIDs     string // JSON array of game ids
	Created     time.Time
}

func (playingDayRow) TableName() string { return "playing_days" }

type gameRow struct {
	ID              string `gorm:"primaryKey"`
	PlayingDayID    string `gorm:"index"`
	TeamA           string // JSON array of the two player ids
	TeamB           string
	Result          string
	DurationMinutes int
	Notes           string
	Algorithm       string
	Created         time.Time
}

func (gameRow) TableName() string { return "games" }

type partnershipRow struct {
	PlayerAID     string `gorm:"primaryKey"`
	PlayerBID     string `gorm:"primaryKey"`
	TimesTogether int
	WinsTogether  int
}

func (partnershipRow) TableName() string { return "partnerships" }

func (db *sqliteDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	var row playerRow
	err := db.conn.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	p := rowToPlayer(&row)
	return &p, nil
}

func (db *sqliteDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	var rows []playerRow
	if err := db.conn.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}

	players := make([]model.Player, 0, len(rows))
	for i := range rows {
		players = append(players, rowToPlayer(&rows[i]))
	}
	return players, nil
}

func (db *sqliteDB) SavePlayer(ctx context.Context, p *model.Player) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.Created = db.clock.Now().UTC()
	}
	row := playerToRow(p)
	err := db.conn.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("error saving player %s: %w", p.ID, err)
	}
	return nil
}

func (db *sqliteDB) DeletePlayer(ctx context.Context, id string) error {
	inUse, err := db.playerReferenced(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrPlayerInUse
	}

	res := db.conn.WithContext(ctx).Delete(&playerRow{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("error deleting player %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// playerReferenced reports whether any playing day roster or recorded game
// still references the player. The id lists are JSON columns, so the check
// decodes the candidate rows rather than matching inside SQL.
func (db *sqliteDB) playerReferenced(ctx context.Context, id string) (bool, error) {
	days, err := db.ListPlayingDays(ctx)
	if err != nil {
		return false, err
	}
	for i := range days {
		if days[i].HasPlayer(id) {
			return true, nil
		}
	}

	games, err := db.ListGames(ctx)
	if err != nil {
		return false, err
	}
	for i := range games {
		if games[i].TeamA.Contains(id) || games[i].TeamB.Contains(id) {
			return true, nil
		}
	}
	return false, nil
}

func (db *sqliteDB) GetPlayingDay(ctx context.Context, id string) (*model.PlayingDay, error) {
	var row playingDayRow
	err := db.conn.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayingDayNotFound
		}
		return nil, err
	}
	return rowToPlayingDay(&row)
}

func (db *sqliteDB) ListPlayingDays(ctx context.Context) ([]model.PlayingDay, error) {
	var rows []playingDayRow
	if err := db.conn.WithContext(ctx).Order("date desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing playing days: %w", err)
	}

	days := make([]model.PlayingDay, 0, len(rows))
	for i := range rows {
		d, err := rowToPlayingDay(&rows[i])
		if err != nil {
			return nil, err
		}
		days = append(days, *d)
	}
	return days, nil
}

func (db *sqliteDB) SavePlayingDay(ctx context.Context, d *model.PlayingDay) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
		d.Created = db.clock.Now().UTC()
	}
	row, err := playingDayToRow(d)
	if err != nil {
		return err
	}
	err = db.conn.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
	if err != nil {
		return fmt.Errorf("error saving playing day %s: %w", d.ID, err)
	}
	return nil
}

func (db *sqliteDB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	var row gameRow
	err := db.conn.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return rowToGame(&row)
}

func (db *sqliteDB) ListGames(ctx context.Context) ([]model.Game, error) {
	return db.listGames(ctx, "")
}

func (db *sqliteDB) ListGamesForDay(ctx context.Context, playingDayID string) ([]model.Game, error) {
	return db.listGames(ctx, playingDayID)
}

func (db *sqliteDB) listGames(ctx context.Context, playingDayID string) ([]model.Game, error) {
	q := db.conn.WithContext(ctx).Order("created")
	if playingDayID != "" {
		q = q.Where("playing_day_id = ?", playingDayID)
	}

	var rows []gameRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}

	games := make([]model.Game, 0, len(rows))
	for i := range rows {
		g, err := rowToGame(&rows[i])
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	return games, nil
}

func (db *sqliteDB) ListPartnerships(ctx context.Context) ([]model.Partnership, error) {
	var rows []partnershipRow
	if err := db.conn.WithContext(ctx).Order("player_a_id, player_b_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing partnerships: %w", err)
	}

	partnerships := make([]model.Partnership, 0, len(rows))
	for _, r := range rows {
		partnerships = append(partnerships, model.Partnership{
			Pair:          model.NewPairKey(r.PlayerAID, r.PlayerBID),
			TimesTogether: r.TimesTogether,
			WinsTogether:  r.WinsTogether,
		})
	}
	return partnerships, nil
}

func (db *sqliteDB) ReplacePartnerships(ctx context.Context, partnerships []model.Partnership) error {
	return db.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&partnershipRow{}).Error; err != nil {
			return fmt.Errorf("error clearing partnerships: %w", err)
		}
		for _, p := range partnerships {
			row := partnershipRow{
				PlayerAID:     p.Pair.A,
				PlayerBID:     p.Pair.B,
				TimesTogether: p.TimesTogether,
				WinsTogether:  p.WinsTogether,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("error inserting partnership (%s,%s): %w", p.Pair.A, p.Pair.B, err)
			}
		}
		return nil
	})
}

func (db *sqliteDB) RecordGameResult(ctx context.Context, day *model.PlayingDay, game *model.Game, players []model.Player, partnerships []model.Partnership) error {
	if game.ID == "" {
		game.ID = uuid.NewString()
		game.Created = db.clock.Now().UTC()
	}
	day.GameIDs = append(day.GameIDs, game.ID)

	gRow, err := gameToRow(game)
	if err != nil {
		return err
	}
	dRow, err := playingDayToRow(day)
	if err != nil {
		return err
	}

	return db.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(gRow).Error; err != nil {
			return fmt.Errorf("error inserting game: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(dRow).Error; err != nil {
			return fmt.Errorf("error updating playing day %s: %w", day.ID, err)
		}
		for i := range players {
			row := playerToRow(&players[i])
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("error updating player %s: %w", players[i].ID, err)
			}
		}
		for _, p := range partnerships {
			row := partnershipRow{
				PlayerAID:     p.Pair.A,
				PlayerBID:     p.Pair.B,
				TimesTogether: p.TimesTogether,
				WinsTogether:  p.WinsTogether,
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("error updating partnership (%s,%s): %w", p.Pair.A, p.Pair.B, err)
			}
		}
		return nil
	})
}

func rowToPlayer(r *playerRow) model.Player {
	return model.Player{
		ID:         r.ID,
		Name:       r.Name,
		SkillLevel: r.SkillLevel,
		TotalWins:  r.TotalWins,
		TotalGames: r.TotalGames,
		Created:    r.Created,
	}
}

func playerToRow(p *model.Player) playerRow {
	return playerRow{
		ID:         p.ID,
		Name:       p.Name,
		SkillLevel: p.SkillLevel,
		TotalWins:  p.TotalWins,
		TotalGames: p.TotalGames,
		Created:    p.Created,
	}
}

func rowToPlayingDay(r *playingDayRow) (*model.PlayingDay, error) {
	d := model.PlayingDay{
		ID:          r.ID,
		Date:        r.Date,
		Location:    r.Location,
		Description: r.Description,
		Algorithm:   model.Algorithm(r.Algorithm),
		Created:     r.Created,
	}
	if err := unmarshalList(r.PlayerIDs, &d.PlayerIDs); err != nil {
		return nil, fmt.Errorf("error decoding roster for day %s: %w", r.ID, err)
	}
	if err := unmarshalList(r.GameIDs, &d.GameIDs); err != nil {
		return nil, fmt.Errorf("error decoding game ids for day %s: %w", r.ID, err)
	}
	if err := unmarshalList(r.Teams, &d.GeneratedTeams); err != nil {
		return nil, fmt.Errorf("error decoding teams for day %s: %w", r.ID, err)
	}
	return &d, nil
}

func playingDayToRow(d *model.PlayingDay) (*playingDayRow, error) {
	playerIDs, err := json.Marshal(d.PlayerIDs)
	if err != nil {
		return nil, err
	}
	teams, err := json.Marshal(d.GeneratedTeams)
	if err != nil {
		return nil, err
	}
	gameIDs, err := json.Marshal(d.GameIDs)
	if err != nil {
		return nil, err
	}
	return &playingDayRow{
		ID:          d.ID,
		Date:        d.Date,
		Location:    d.Location,
		Description: d.Description,
		PlayerIDs:   string(playerIDs),
		Teams:       string(teams),
		Algorithm:   string(d.Algorithm),
		GameIDs:     string(gameIDs),
		Created:     d.Created,
	}, nil
}

func rowToGame(r *gameRow) (*model.Game, error) {
	g := model.Game{
		ID:              r.ID,
		PlayingDayID:    r.PlayingDayID,
		Result:          model.Result(r.Result),
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		Algorithm:       model.Algorithm(r.Algorithm),
		Created:         r.Created,
	}
	if err := json.Unmarshal([]byte(r.TeamA), &g.TeamA.PlayerIDs); err != nil {
		return nil, fmt.Errorf("error decoding team A for game %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.TeamB), &g.TeamB.PlayerIDs); err != nil {
		return nil, fmt.Errorf("error decoding team B for game %s: %w", r.ID, err)
	}
	return &g, nil
}

func gameToRow(g *model.Game) (*gameRow, error) {
	teamA, err := json.Marshal(g.TeamA.PlayerIDs)
	if err != nil {
		return nil, err
	}
	teamB, err := json.Marshal(g.TeamB.PlayerIDs)
	if err != nil {
		return nil, err
	}
	return &gameRow{
		ID:              g.ID,
		PlayingDayID:    g.PlayingDayID,
		TeamA:           string(teamA),
		TeamB:           string(teamB),
		Result:          string(g.Result),
		DurationMinutes: g.DurationMinutes,
		Notes:           g.Notes,
		Algorithm:       string(g.Algorithm),
		Created:         g.Created,
	}, nil
}

// unmarshalList decodes a JSON array column, treating the empty string as an
// empty list so freshly migrated rows round-trip cleanly.
func unmarshalList[T any](data string, out *[]T) error {
	if data == "" {
		return nil
	}
	return json.Unmarshal([]byte(data), out)
}
