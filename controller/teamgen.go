package controller

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/sHooPmyWooP/roundnet/model"
)

// generateTeams partitions the roster into two-player teams using the chosen
// algorithm. Every algorithm covers each roster player exactly once, so the
// result always has len(roster)/2 teams. The roster must be even-sized with
// at least 2 players.
func generateTeams(roster []string, algorithm model.Algorithm, players map[string]model.Player, stats *statsIndex, rng *rand.Rand) ([]model.Team, error) {
	if len(roster) < 2 || len(roster)%2 != 0 {
		return nil, &InvalidRosterSizeError{Size: len(roster)}
	}

	switch algorithm {
	case model.AlgorithmRandom:
		return randomTeams(roster, rng), nil
	case model.AlgorithmSkillBalanced:
		return foldPairing(roster, func(id string) float64 {
			return float64(players[id].SkillLevel)
		}), nil
	case model.AlgorithmWinRateBalanced:
		return foldPairing(roster, stats.winRate), nil
	case model.AlgorithmPartnershipBalanced:
		return partnershipBalancedTeams(roster, stats), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}
}

// randomTeams shuffles the roster with the supplied source and pairs
// consecutive players. The source is injected so tests can seed it.
func randomTeams(roster []string, rng *rand.Rand) []model.Team {
	shuffled := slices.Clone(roster)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	teams := make([]model.Team, 0, len(shuffled)/2)
	for i := 0; i < len(shuffled); i += 2 {
		teams = append(teams, model.NewTeam(shuffled[i], shuffled[i+1]))
	}
	return teams
}

// foldPairing sorts the roster descending by key and pairs the strongest
// remaining player with the weakest. Each team gets one strong and one weak
// player, which keeps the matches between teams close. The sort is stable so
// ties keep their roster order and the result stays deterministic.
func foldPairing(roster []string, key func(id string) float64) []model.Team {
	sorted := slices.Clone(roster)
	slices.SortStableFunc(sorted, func(a, b string) int {
		ka, kb := key(a), key(b)
		if ka > kb {
			return -1
		}
		if ka < kb {
			return 1
		}
		return 0
	})

	teams := make([]model.Team, 0, len(sorted)/2)
	for i := 0; i < len(sorted)/2; i++ {
		teams = append(teams, model.NewTeam(sorted[i], sorted[len(sorted)-1-i]))
	}
	return teams
}

// partnershipBalancedTeams greedily matches players who have partnered the
// least: repeatedly take the unpaired player with the fewest prior
// partnerships (ties by lowest id) and give them the remaining player they
// have partnered with least often (same tie-break). A greedy matching is
// enough here; the goal is avoiding repeat pairings, not a minimum-weight
// perfect matching.
func partnershipBalancedTeams(roster []string, stats *statsIndex) []model.Team {
	pool := slices.Clone(roster)
	slices.Sort(pool)

	teams := make([]model.Team, 0, len(pool)/2)
	for len(pool) > 0 {
		seedIdx := 0
		for i := 1; i < len(pool); i++ {
			if stats.timesPartnered(pool[i]) < stats.timesPartnered(pool[seedIdx]) {
				seedIdx = i
			}
		}
		seed := pool[seedIdx]
		pool = slices.Delete(pool, seedIdx, seedIdx+1)

		partnerIdx := 0
		for i := 1; i < len(pool); i++ {
			together := stats.partnership(seed, pool[i]).TimesTogether
			best := stats.partnership(seed, pool[partnerIdx]).TimesTogether
			if together < best {
				partnerIdx = i
			}
		}
		partner := pool[partnerIdx]
		pool = slices.Delete(pool, partnerIdx, partnerIdx+1)

		teams = append(teams, model.NewTeam(seed, partner))
	}
	return teams
}
