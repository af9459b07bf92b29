package main

import (
	"math/cmplx"
	"math/rand"
)

// Counts maps a basis-state label (see BasisLabel) to how many shots
// produced it. Each counting run owns its own map.
type Counts map[string]int

// Probabilities returns the squared magnitude of each amplitude.
// Phase is discarded; this is the lossy measurement projection.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		probs[i] = real(amp * cmplx.Conj(amp))
	}
	return probs
}

// MeasureAll draws one basis-state index from the state's probability
// distribution and returns its qubit-indexed binary label. The state
// is not collapsed; the caller may sample again. Probabilities are
// expected to sum to ~1 — drift is an upstream evolution defect, not
// corrected here.
func MeasureAll(s *StateVector) string {
	r := rand.Float64()
	acc := 0.0
	picked := 0
	for i, amp := range s.Amplitudes {
		p := real(amp * cmplx.Conj(amp))
		if p == 0 {
			continue
		}
		picked = i
		acc += p
		if r < acc {
			break
		}
	}
	// Rounding slack past the last nonzero entry falls through to it.
	return BasisLabel(picked, s.NumQubits)
}

// GetCounts performs numShots independent measurements against the
// same state vector, modeling repeated circuit runs, and accumulates
// occurrences per label. Zero shots yields an empty map.
func GetCounts(s *StateVector, numShots int) Counts {
	counts := make(Counts)
	for i := 0; i < numShots; i++ {
		counts[MeasureAll(s)]++
	}
	return counts
}

// Normalize rescales counts so they sum to target (1.0 for a
// probability distribution). An empty counts map has no defined
// scaling and returns ErrEmptyDistribution.
func Normalize(counts Counts, target float64) (map[string]float64, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyDistribution
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	out := make(map[string]float64, len(counts))
	for label, c := range counts {
		out[label] = float64(c) * target / float64(total)
	}
	return out, nil
}

// QubitProbability is the marginal distribution of a single qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// Marginals returns the per-qubit marginal probabilities of the state.
func (s *StateVector) Marginals() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	for i, amp := range s.Amplitudes {
		p := real(amp * cmplx.Conj(amp))
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += p
			} else {
				probs[q].Prob0 += p
			}
		}
	}
	return probs
}
