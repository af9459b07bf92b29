package main

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strings"
)

// ──────────────────────────── Result rendering ────────────────────────────

// sortedLabels returns the count labels in ascending basis-index order.
func sortedLabels(counts Counts) []string {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, _ := ParseBasisLabel(labels[i])
		b, _ := ParseBasisLabel(labels[j])
		return a < b
	})
	return labels
}

// RenderHistogram renders a horizontal bar chart of measurement
// counts, one row per observed basis state.
func RenderHistogram(counts Counts, barWidth int) string {
	if len(counts) == 0 {
		return dimStyle.Render("no shots taken")
	}

	maxCount := 0
	total := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
		total += c
	}

	var sb strings.Builder
	for _, label := range sortedLabels(counts) {
		c := counts[label]
		barLen := c * barWidth / maxCount
		if barLen == 0 && c > 0 {
			barLen = 1
		}
		sb.WriteString(labelStyle.Render("|" + label + "⟩"))
		sb.WriteString(" ")
		sb.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		sb.WriteString(dimStyle.Render(fmt.Sprintf(" %d (%.1f%%)", c, 100*float64(c)/float64(total))))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderAmplitudes renders the nonzero amplitudes of the state, up to
// maxRows rows.
func RenderAmplitudes(s *StateVector, maxRows int) string {
	var sb strings.Builder
	shown := 0
	hidden := 0
	for i, amp := range s.Amplitudes {
		prob := real(amp * cmplx.Conj(amp))
		if prob < 1e-10 {
			continue
		}
		if shown >= maxRows {
			hidden++
			continue
		}
		shown++
		sb.WriteString(labelStyle.Render("|" + BasisLabel(i, s.NumQubits) + "⟩"))
		sb.WriteString(ampStyle.Render(fmt.Sprintf("  %+.4f%+.4fi", real(amp), imag(amp))))
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  p=%.4f", prob)))
		sb.WriteString("\n")
	}
	if hidden > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("… %d more basis states\n", hidden)))
	}
	return sb.String()
}

// RenderMarginals renders one P(1) gauge per qubit.
func RenderMarginals(s *StateVector) string {
	var sb strings.Builder
	for q, m := range s.Marginals() {
		filled := int(m.Prob1*10 + 0.5)
		gauge := strings.Repeat("▰", filled) + strings.Repeat("▱", 10-filled)
		sb.WriteString(labelStyle.Render(fmt.Sprintf("q[%d] ", q)))
		sb.WriteString(barStyle.Render(gauge))
		sb.WriteString(dimStyle.Render(fmt.Sprintf(" P(1)=%.3f", m.Prob1)))
		sb.WriteString("\n")
	}
	return sb.String()
}
