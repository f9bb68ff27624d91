package strategy

import "math/rand"

// TournamentSelect draws k distinct individuals uniformly without replacement
// and returns the one with the lowest fitness. The first drawn wins ties.
// k is clamped to [1, len(pop)]; an empty population yields the zero Individual.
func TournamentSelect(pop []Individual, k int, rng *rand.Rand) Individual {
	n := len(pop)
	if n == 0 {
		return Individual{}
	}
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	// Partial Fisher-Yates over indices.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	best := -1
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		if best < 0 || pop[idx[i]].Fitness < pop[best].Fitness {
			best = idx[i]
		}
	}
	return pop[best]
}
