package controller

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/sHooPmyWooP/roundnet/model"
)

func TestGenerateTeamsPartitionsRoster(t *testing.T) {
	rosters := [][]string{
		{"p1", "p2"},
		{"p1", "p2", "p3", "p4"},
		{"p1", "p2", "p3", "p4", "p5", "p6"},
		{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10"},
	}

	players := make(map[string]model.Player)
	for _, roster := range rosters {
		for i, id := range roster {
			players[id] = model.Player{ID: id, SkillLevel: 1 + i%10}
		}
	}
	stats := newStatsIndex(nil)

	for _, algorithm := range model.Algorithms() {
		for _, roster := range rosters {
			t.Run(fmt.Sprintf("%s/%d", algorithm, len(roster)), func(t *testing.T) {
				rng := rand.New(rand.NewSource(42))
				teams, err := generateTeams(roster, algorithm, players, stats, rng)
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				if len(teams) != len(roster)/2 {
					t.Fatalf("expected %d teams, got %d", len(roster)/2, len(teams))
				}

				seen := make(map[string]int)
				for _, team := range teams {
					seen[team.PlayerIDs[0]]++
					seen[team.PlayerIDs[1]]++
				}
				for _, id := range roster {
					if seen[id] != 1 {
						t.Errorf("player %s appears %d times, expected exactly once", id, seen[id])
					}
				}
			})
		}
	}
}

func TestGenerateTeamsInvalidRosterSize(t *testing.T) {
	tests := []struct {
		name   string
		roster []string
	}{
		{name: "empty", roster: nil},
		{name: "single", roster: []string{"p1"}},
		{name: "odd", roster: []string{"p1", "p2", "p3"}},
	}

	players := map[string]model.Player{}
	stats := newStatsIndex(nil)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := generateTeams(tc.roster, model.AlgorithmRandom, players, stats, rand.New(rand.NewSource(1)))
			if err == nil {
				t.Fatal("expected an error, got nil")
			}

			var sizeErr *InvalidRosterSizeError
			if !errors.As(err, &sizeErr) {
				t.Fatalf("expected an InvalidRosterSizeError, got: %v", err)
			}
			if sizeErr.Size != len(tc.roster) {
				t.Errorf("expected reported size %d, got %d", len(tc.roster), sizeErr.Size)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("expected the error to be a validation error")
			}
		})
	}
}

func TestGenerateTeamsUnknownAlgorithm(t *testing.T) {
	_, err := generateTeams([]string{"p1", "p2"}, model.AlgorithmUnknown, nil, newStatsIndex(nil), nil)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got: %v", err)
	}
}

func TestRandomTeamsDeterministicWithSeed(t *testing.T) {
	roster := []string{"p1", "p2", "p3", "p4", "p5", "p6"}

	a := randomTeams(roster, rand.New(rand.NewSource(7)))
	b := randomTeams(roster, rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different partitions: %v vs %v", a, b)
	}
}

func TestSkillBalancedPairsHighestWithLowest(t *testing.T) {
	players := map[string]model.Player{
		"p1": {ID: "p1", SkillLevel: 9},
		"p2": {ID: "p2", SkillLevel: 7},
		"p3": {ID: "p3", SkillLevel: 5},
		"p4": {ID: "p4", SkillLevel: 3},
	}
	roster := []string{"p1", "p2", "p3", "p4"}

	teams, err := generateTeams(roster, model.AlgorithmSkillBalanced, players, newStatsIndex(nil), nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expected := []model.Team{
		model.NewTeam("p1", "p4"), // skill 9 with skill 3
		model.NewTeam("p2", "p3"), // skill 7 with skill 5
	}
	if !reflect.DeepEqual(expected, teams) {
		t.Errorf("teams were not as expected - actual: %v", teams)
	}
}

func TestSkillBalancedTieKeepsRosterOrder(t *testing.T) {
	players := map[string]model.Player{
		"p1": {ID: "p1", SkillLevel: 5},
		"p2": {ID: "p2", SkillLevel: 5},
		"p3": {ID: "p3", SkillLevel: 5},
		"p4": {ID: "p4", SkillLevel: 5},
	}
	roster := []string{"p3", "p1", "p4", "p2"}

	teams, err := generateTeams(roster, model.AlgorithmSkillBalanced, players, newStatsIndex(nil), nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// All skills equal: the stable sort keeps the roster order, so the fold
	// pairs first-with-last of the input.
	expected := []model.Team{
		model.NewTeam("p3", "p2"),
		model.NewTeam("p1", "p4"),
	}
	if !reflect.DeepEqual(expected, teams) {
		t.Errorf("teams were not as expected - actual: %v", teams)
	}
}

func TestWinRateBalancedPairsBestWithWorst(t *testing.T) {
	games := []model.Game{
		// p1 and p2 win two games together, p3/p4 lose them.
		{TeamA: model.NewTeam("p1", "p2"), TeamB: model.NewTeam("p3", "p4"), Result: model.ResultTeamAWin},
		{TeamA: model.NewTeam("p1", "p2"), TeamB: model.NewTeam("p3", "p4"), Result: model.ResultTeamAWin},
		// p1 beats p2 once, so p1's win rate ends above p2's.
		{TeamA: model.NewTeam("p1", "p3"), TeamB: model.NewTeam("p2", "p4"), Result: model.ResultTeamAWin},
	}
	stats := newStatsIndex(games)

	roster := []string{"p1", "p2", "p3", "p4"}
	teams, err := generateTeams(roster, model.AlgorithmWinRateBalanced, nil, stats, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// Win rates: p1=1.0, p2=2/3, p3=1/3, p4=0.
	expected := []model.Team{
		model.NewTeam("p1", "p4"),
		model.NewTeam("p2", "p3"),
	}
	if !reflect.DeepEqual(expected, teams) {
		t.Errorf("teams were not as expected - actual: %v", teams)
	}
}

func TestPartnershipBalancedPrefersNewPairs(t *testing.T) {
	// p1 and p2 have partnered 5 times; p3 and p4 never played at all.
	games := make([]model.Game, 0, 5)
	for i := 0; i < 5; i++ {
		games = append(games, model.Game{
			TeamA:  model.NewTeam("p1", "p2"),
			TeamB:  model.NewTeam("x1", "x2"),
			Result: model.ResultTie,
		})
	}
	stats := newStatsIndex(games)

	roster := []string{"p1", "p2", "p3", "p4"}
	teams, err := generateTeams(roster, model.AlgorithmPartnershipBalanced, nil, stats, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// p3 and p4 have no history and the lowest ids among them seed first, so
	// they pair with the players they have never partnered: p1 and p2 get
	// split up.
	for _, team := range teams {
		if team.Contains("p1") && team.Contains("p2") {
			t.Errorf("p1 and p2 were paired again despite their history: %v", teams)
		}
	}
}

func TestPartnershipBalancedSplitsFrequentPartners(t *testing.T) {
	// p1+p2 partnered twice, p3+p4 partnered once. Everyone else is new to
	// each other.
	games := []model.Game{
		{TeamA: model.NewTeam("p1", "p2"), TeamB: model.NewTeam("p3", "p4"), Result: model.ResultTie},
		{TeamA: model.NewTeam("p1", "p2"), TeamB: model.NewTeam("x1", "x2"), Result: model.ResultTie},
	}
	stats := newStatsIndex(games)

	roster := []string{"p1", "p2", "p3", "p4"}
	teams, err := generateTeams(roster, model.AlgorithmPartnershipBalanced, nil, stats, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// p3 has the fewest total partnerships (1, ties with p4 broken by id) and
	// picks a never-partnered player first.
	expected := []model.Team{
		model.NewTeam("p3", "p1"),
		model.NewTeam("p4", "p2"),
	}
	if !reflect.DeepEqual(expected, teams) {
		t.Errorf("teams were not as expected - actual: %v", teams)
	}
}

func TestGenerateTeamsDegenerateTwoPlayerRoster(t *testing.T) {
	roster := []string{"p1", "p2"}
	players := map[string]model.Player{
		"p1": {ID: "p1", SkillLevel: 1},
		"p2": {ID: "p2", SkillLevel: 10},
	}

	for _, algorithm := range model.Algorithms() {
		t.Run(string(algorithm), func(t *testing.T) {
			teams, err := generateTeams(roster, algorithm, players, newStatsIndex(nil), rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if len(teams) != 1 {
				t.Fatalf("expected exactly one team, got %d", len(teams))
			}
			if !teams[0].Contains("p1") || !teams[0].Contains("p2") {
				t.Errorf("team does not contain both players: %v", teams[0])
			}
		})
	}
}
