package calculation

import (
	"strings"

	"github.com/rallyforge/benefits-engine/internal/domain"
)

// ClassifyConfidence labels evidence strength from the number of matched items.
func ClassifyConfidence(matched int) domain.Confidence {
	switch {
	case matched >= 3:
		return domain.ConfidenceHigh
	case matched == 2:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// MatchEvidence compares provided evidence against the required list, ignoring
// case and surrounding whitespace. When nothing is required every distinct
// provided item counts as a match.
func MatchEvidence(required, provided []string) domain.EvidenceAssessment {
	have := make(map[string]bool, len(provided))
	for _, p := range provided {
		if k := normalizeEvidence(p); k != "" {
			have[k] = true
		}
	}

	a := domain.EvidenceAssessment{Required: required, Matched: []string{}, Missing: []string{}}
	if len(required) == 0 {
		seen := make(map[string]bool, len(provided))
		for _, p := range provided {
			k := normalizeEvidence(p)
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			a.Matched = append(a.Matched, p)
		}
	} else {
		seen := make(map[string]bool, len(required))
		for _, r := range required {
			k := normalizeEvidence(r)
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			if have[k] {
				a.Matched = append(a.Matched, r)
			} else {
				a.Missing = append(a.Missing, r)
			}
		}
	}
	a.Confidence = ClassifyConfidence(len(a.Matched))
	return a
}

func normalizeEvidence(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
