package testutils

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sHooPmyWooP/roundnet/db"
	"github.com/sHooPmyWooP/roundnet/model"
	"go.uber.org/zap"
)

// Stable fixture ids so tests can rely on lexicographic tie-breaks.
const (
	IDAlice   = "alice"
	IDBob     = "bob"
	IDCharlie = "charlie"
	IDDiana   = "diana"
	IDEve     = "eve"
	IDFrank   = "frank"
	IDGrace   = "grace"
	IDHenry   = "henry"
)

var (
	AliceJohnson = &model.Player{ID: IDAlice, Name: "Alice Johnson", SkillLevel: 8}
	BobSmith     = &model.Player{ID: IDBob, Name: "Bob Smith", SkillLevel: 6}
	CharlieBrown = &model.Player{ID: IDCharlie, Name: "Charlie Brown", SkillLevel: 7}
	DianaPrince  = &model.Player{ID: IDDiana, Name: "Diana Prince", SkillLevel: 9}
	EveWilson    = &model.Player{ID: IDEve, Name: "Eve Wilson", SkillLevel: 5}
	FrankMiller  = &model.Player{ID: IDFrank, Name: "Frank Miller", SkillLevel: 6}
	GraceLee     = &model.Player{ID: IDGrace, Name: "Grace Lee", SkillLevel: 7}
	HenryDavis   = &model.Player{ID: IDHenry, Name: "Henry Davis", SkillLevel: 8}
)

// TestDB wraps a throwaway sqlite database in a temp directory so every test
// binary gets its own isolated file store.
type TestDB struct {
	DB    db.DB
	Clock *clock.Mock
	dir   string
}

func NewTestDB() *TestDB {
	dir, err := os.MkdirTemp("", "roundnet-test-")
	if err != nil {
		log.Fatalf("error creating temp dir for test db: %v", err)
	}

	clockMock := clock.NewMock()
	clockMock.Set(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	database, err := db.New(filepath.Join(dir, "roundnet.db"), clockMock, zap.NewNop())
	if err != nil {
		log.Fatalf("error opening test db: %v", err)
	}

	if err := InsertTestPlayers(database); err != nil {
		log.Fatalf("error populating test db: %v", err)
	}

	return &TestDB{
		DB:    database,
		Clock: clockMock,
		dir:   dir,
	}
}

func (db *TestDB) Shutdown() {
	if err := os.RemoveAll(db.dir); err != nil {
		log.Printf("error removing test db dir: %v", err)
	}
}

func InsertTestPlayers(database db.DB) error {
	players := []*model.Player{
		AliceJohnson,
		BobSmith,
		CharlieBrown,
		DianaPrince,
		EveWilson,
		FrankMiller,
		GraceLee,
		HenryDavis,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range players {
		cp := *p
		if err := database.SavePlayer(ctx, &cp); err != nil {
			return err
		}
	}
	return nil
}
