// Package skillgap diffs a candidate's extracted skills against a drive's
// requirement list and suggests training resources for what is missing.
package skillgap

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// Resource is one training resource from the external catalog.
type Resource struct {
	ID       int64  `json:"id,omitempty"`
	Skill    string `json:"skill"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Provider string `json:"provider,omitempty"`
}

// ResourceCatalog looks up training resources for a skill. Lookups are
// substring/alias matches against the catalog's skill column; the analyzer
// never mutates the catalog.
type ResourceCatalog interface {
	FindBySkill(ctx context.Context, skill string) ([]Resource, error)
}

// Analysis is the outcome of one skill-gap comparison.
type Analysis struct {
	Matched         []string   `json:"matched_skills"`
	Missing         []string   `json:"missing_skills"`
	MatchPercentage float64    `json:"match_percentage"`
	Resources       []Resource `json:"training_resources,omitempty"`
}

// Analyze splits the required skills into matched and missing against the
// candidate's skills, preserving requirement order. Comparison is
// case-insensitive. An empty requirement list yields a 100% match.
func Analyze(candidateSkills, requiredSkills []string) Analysis {
	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(s)] = true
	}

	matched := []string{}
	missing := []string{}
	for _, s := range requiredSkills {
		if have[strings.ToLower(s)] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	pct := 100.0
	if len(requiredSkills) > 0 {
		pct = round2(100 * float64(len(matched)) / float64(len(requiredSkills)))
	}

	return Analysis{Matched: matched, Missing: missing, MatchPercentage: pct}
}

// AnalyzeWithResources runs Analyze and then looks up training resources for
// each missing skill, merging the per-skill results in lookup order.
// Duplicate resources across skills are kept as returned by the catalog.
func AnalyzeWithResources(ctx context.Context, catalog ResourceCatalog, candidateSkills, requiredSkills []string) (Analysis, error) {
	analysis := Analyze(candidateSkills, requiredSkills)
	if catalog == nil || len(analysis.Missing) == 0 {
		return analysis, nil
	}

	for _, skill := range analysis.Missing {
		resources, err := catalog.FindBySkill(ctx, skill)
		if err != nil {
			return Analysis{}, fmt.Errorf("failed to look up resources for %q: %w", skill, err)
		}
		analysis.Resources = append(analysis.Resources, resources...)
	}
	return analysis, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
