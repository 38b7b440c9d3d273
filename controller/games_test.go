package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/sHooPmyWooP/roundnet/model"
)

// newGameFixture creates four fresh players and a playing day with all of
// them assigned, so game tests never share counters with other tests.
func newGameFixture(t *testing.T, ctrl C) (*model.PlayingDay, []model.Player) {
	t.Helper()
	ctx := context.Background()

	names := []string{"North", "East", "South", "West"}
	players := make([]model.Player, 0, len(names))
	ids := make([]string, 0, len(names))
	for i, name := range names {
		p, err := ctrl.CreatePlayer(ctx, name, 5+i%2)
		if err != nil {
			t.Fatalf("error creating player %s: %v", name, err)
		}
		players = append(players, *p)
		ids = append(ids, p.ID)
	}

	day, err := ctrl.CreatePlayingDay(ctx, time.Date(2024, 6, 22, 0, 0, 0, 0, time.UTC), "", "")
	if err != nil {
		t.Fatalf("error creating playing day: %v", err)
	}
	if err := ctrl.AssignRoster(ctx, day.ID, ids); err != nil {
		t.Fatalf("error assigning roster: %v", err)
	}
	return day, players
}

func TestRecordGameTeamAWin(t *testing.T) {
	ctx := context.Background()
	ctrl := newTestController(t)
	day, players := newGameFixture(t, ctrl)

	teamA := model.NewTeam(players[0].ID, players[1].ID)
	teamB := model.NewTeam(players[2].ID, players[3].ID)

	game, err := ctrl.RecordGame(ctx, day.ID, teamA, teamB, model.ResultTeamAWin, 25, "close one")
	if err != nil {
		t.Fatalf("unexpected error recording game: %v", err)
	}
	if game.ID == "" {
		t.Error("expected a generated game id")
	}

	for _, winnerID := range teamA.PlayerIDs {
		p, err := ctrl.GetPlayer(ctx, winnerID)
		if err != nil {
			t.Fatalf("unexpected error fetching player: %v", err)
		}
		if p.TotalGames != 1 || p.TotalWins != 1 {
			t.Errorf("expected winner %s at 1 game 1 win, got %d/%d", winnerID, p.TotalGames, p.TotalWins)
		}
	}
	for _, loserID := range teamB.PlayerIDs {
		p, err := ctrl.GetPlayer(ctx, loserID)
		if err != nil {
			t.Fatalf("unexpected error fetching player: %v", err)
		}
		if p.TotalGames != 1 || p.TotalWins != 0 {
			t.Errorf("expected loser %s at 1 game 0 wins, got %d/%d", loserID, p.TotalGames, p.TotalWins)
		}
	}

	fetchedDay, err := ctrl.GetPlayingDay(ctx, day.ID)
	if err != nil {
		t.Fatalf("unexpected error fetching day: %v", err)
	}
	if !reflect.DeepEqual(fetchedDay.GameIDs, []string{game.ID}) {
		t.Errorf("expected day to reference game %s, got %v", game.ID, fetchedDay.GameIDs)
	}

	games, err := ctrl.ListGamesForDay(ctx, day.ID)
	if err != nil {
		t.Fatalf("unexpected error listing games: %v", err)
	}
	if len(games) != 1 || games[0].ID != game.ID {
		t.Errorf("expected the recorded game in the day listing, got %v", games)
	}
}

func TestRecordGameTie(t *testing.T) {
	ctx := context.Background()
	ctrl := newTestController(t)
	day, players := newGameFixture(t, ctrl)

	teamA := model.NewTeam(players[0].ID, players[1].ID)
	teamB := model.NewTeam(players[2].ID, players[3].ID)

	game, err := ctrl.RecordGame(ctx, day.ID, teamA, teamB, model.ResultTie, 15, "")
	if err != nil {
		t.Fatalf("unexpected error recording game: %v", err)
	}
	if game.WinningTeam() != nil {
		t.Error("expected no winning team for a tie")
	}

	for _, p := range players {
		fetched, err := ctrl.GetPlayer(ctx, p.ID)
		if err != nil {
			t.Fatalf("unexpected error fetching player: %v", err)
		}
		if fetched.TotalGames != 1 || fetched.TotalWins != 0 {
			t.Errorf("expected %s at 1 game 0 wins after tie, got %d/%d", p.ID, fetched.TotalGames, fetched.TotalWins)
		}
	}
}

func TestRecordGamePlayerOnBothTeams(t *testing.T) {
	ctx := context.Background()
	ctrl := newTestController(t)
	day, players := newGameFixture(t, ctrl)

	teamA := model.NewTeam(players[0].ID, players[1].ID)
	teamB := model.NewTeam(players[0].ID, players[2].ID)

	_, err := ctrl.RecordGame(ctx, day.ID, teamA, teamB, model.ResultTeamAWin, 10, "")
	if !errors.Is(err, ErrDuplicateGamePlayer) {
		t.Fatalf("expected ErrDuplicateGamePlayer, got %v", err)
	}
	if !errors.Is(err, ErrConsistency) {
		t.Errorf("expected a consistency error, got %v", err)
	}

	// The failed game must not have moved any counters.
	for _, p := range players {
		fetched, err := ctrl.GetPlayer(ctx, p.ID)
		if err != nil {
			t.Fatalf("unexpected error fetching player: %v", err)
		}
		if fetched.TotalGames != 0 || fetched.TotalWins != 0 {
			t.Errorf("expected %s counters untouched, got %d/%d", p.ID, fetched.TotalGames, fetched.TotalWins)
		}
	}

	games, err := ctrl.ListGamesForDay(ctx, day.ID)
	if err != nil {
		t.Fatalf("unexpected error listing games: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("expected no games recorded, got %v", games)
	}
}

func TestRecordGameTeamNotInRoster(t *testing.T) {
	ctx := context.Background()
	ctrl := newTestController(t)
	day, players := newGameFixture(t, ctrl)

	outsider, err := ctrl.CreatePlayer(ctx, "Outsider", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	teamA := model.NewTeam(players[0].ID, players[1].ID)
	teamB := model.NewTeam(players[2].ID, outsider.ID)

	_, err = ctrl.RecordGame(ctx, day.ID, teamA, teamB, model.ResultTeamBWin, 10, "")
	if !errors.Is(err, ErrTeamNotInRoster) {
		t.Errorf("expected ErrTeamNotInRoster, got %v", err)
	}
}

func TestRecordGameInvalidInput(t *testing.T) {
	ctx := context.Background()
	ctrl := newTestController(t)
	day, players := newGameFixture(t, ctrl)

	teamA := model.NewTeam(players[0].ID, players[1].ID)
	teamB := model.NewTeam(players[2].ID, players[3].ID)

	t.Run("unknown result", func(t *testing.T) {
		_, err := ctrl.RecordGame(ctx, day.ID, teamA, teamB, model.Result("landslide"), 10, "")
		if !errors.Is(err, ErrUnknownResult) {
			t.Errorf("expected ErrUnknownResult, got %v", err)
		}
	})

	t.Run("negative duration", func(t *testing.T) {
		_, err := ctrl.RecordGame(ctx, day.ID, teamA, teamB, model.ResultTie, -5, "")
		if !errors.Is(err, ErrNegativeDuration) {
			t.Errorf("expected ErrNegativeDuration, got %v", err)
		}
	})

	t.Run("empty player id", func(t *testing.T) {
		_, err := ctrl.RecordGame(ctx, day.ID, model.NewTeam(players[0].ID, ""), teamB, model.ResultTie, 10, "")
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected a validation error, got %v", err)
		}
	})
}

func TestRecordGameCopiesDayAlgorithm(t *testing.T) {
	ctx := context.Background()
	ctrl := newTestController(t)
	day, _ := newGameFixture(t, ctrl)

	generated, err := ctrl.GenerateTeams(ctx, day.ID, model.AlgorithmSkillBalanced, nil)
	if err != nil {
		t.Fatalf("unexpected error generating teams: %v", err)
	}

	game, err := ctrl.RecordGame(ctx, day.ID, generated.GeneratedTeams[0], generated.GeneratedTeams[1], model.ResultTeamBWin, 18, "")
	if err != nil {
		t.Fatalf("unexpected error recording game: %v", err)
	}
	if game.Algorithm != model.AlgorithmSkillBalanced {
		t.Errorf("expected game to carry algorithm %q, got %q", model.AlgorithmSkillBalanced, game.Algorithm)
	}
}

func TestRecordGameUpdatesPartnershipStats(t *testing.T) {
	ctx := context.Background()
	ctrl := newTestController(t)
	day, players := newGameFixture(t, ctrl)

	teamA := model.NewTeam(players[0].ID, players[1].ID)
	teamB := model.NewTeam(players[2].ID, players[3].ID)

	if _, err := ctrl.RecordGame(ctx, day.ID, teamA, teamB, model.ResultTeamAWin, 20, ""); err != nil {
		t.Fatalf("unexpected error recording game: %v", err)
	}
	if _, err := ctrl.RecordGame(ctx, day.ID, teamA, teamB, model.ResultTeamBWin, 20, ""); err != nil {
		t.Fatalf("unexpected error recording game: %v", err)
	}

	p, err := ctrl.GetPartnershipStats(ctx, players[1].ID, players[0].ID)
	if err != nil {
		t.Fatalf("unexpected error fetching partnership: %v", err)
	}
	if p.TimesTogether != 2 || p.WinsTogether != 1 {
		t.Errorf("expected 2 games 1 win together, got %d/%d", p.TimesTogether, p.WinsTogether)
	}
}

func TestRebuildPartnershipsMatchesDerivedStats(t *testing.T) {
	ctx := context.Background()
	ctrl := newTestController(t)
	day, players := newGameFixture(t, ctrl)

	teamA := model.NewTeam(players[0].ID, players[1].ID)
	teamB := model.NewTeam(players[2].ID, players[3].ID)
	if _, err := ctrl.RecordGame(ctx, day.ID, teamA, teamB, model.ResultTeamAWin, 20, ""); err != nil {
		t.Fatalf("unexpected error recording game: %v", err)
	}

	if err := ctrl.RebuildPartnerships(ctx); err != nil {
		t.Fatalf("unexpected error rebuilding partnerships: %v", err)
	}

	derived, err := ctrl.ListPartnerships(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing derived partnerships: %v", err)
	}
	stored, err := testDB.DB.ListPartnerships(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing stored partnerships: %v", err)
	}
	if !reflect.DeepEqual(stored, derived) {
		t.Errorf("expected stored partnerships %v to match derived %v", stored, derived)
	}
}
