package model

import (
	"strings"
)

// Algorithm selects the team generation strategy for a playing day.
type Algorithm string

const (
	AlgorithmUnknown             Algorithm = "unknown"
	AlgorithmRandom              Algorithm = "random"
	AlgorithmSkillBalanced       Algorithm = "skill_balanced"
	AlgorithmWinRateBalanced     Algorithm = "win_rate_balanced"
	AlgorithmPartnershipBalanced Algorithm = "partnership_balanced"
)

func ParseAlgorithm(a string) Algorithm {
	a = strings.ToLower(strings.TrimSpace(a))
	switch a {
	case "random":
		return AlgorithmRandom
	case "skill_balanced", "skill":
		return AlgorithmSkillBalanced
	case "win_rate_balanced", "win_rate":
		return AlgorithmWinRateBalanced
	case "partnership_balanced", "partnership":
		return AlgorithmPartnershipBalanced
	default:
		return AlgorithmUnknown
	}
}

// Algorithms lists the selectable algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmRandom,
		AlgorithmSkillBalanced,
		AlgorithmWinRateBalanced,
		AlgorithmPartnershipBalanced,
	}
}

func (a Algorithm) Label() string {
	switch a {
	case AlgorithmRandom:
		return "Random"
	case AlgorithmSkillBalanced:
		return "Skill balanced"
	case AlgorithmWinRateBalanced:
		return "Win rate balanced"
	case AlgorithmPartnershipBalanced:
		return "Partnership balanced"
	default:
		return "Unknown"
	}
}
