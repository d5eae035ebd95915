// Package scoring computes per-candidate eligibility and weighted scores for
// a placement drive.
package scoring

import (
	"math"
	"strings"

	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

// Weights holds the tunable business parameters of the scoring model. The
// values carry no documented rationale beyond being the platform's chosen
// policy, so they are exposed as configuration rather than derived constants.
type Weights struct {
	// Skill and CGPA weight the two score components; they should sum to 1.
	Skill float64
	CGPA  float64
	// CGPAScale divides raw CGPA into a 0-1 score (grades are on a 0-10 scale).
	CGPAScale float64
	// OfferRatio scales a candidate's best prior offer when comparing it
	// against the drive's package.
	OfferRatio float64
}

// DefaultWeights returns the platform defaults: 60% skills, 40% CGPA, 1.7x
// prior-offer ratio.
func DefaultWeights() Weights {
	return Weights{Skill: 0.6, CGPA: 0.4, CGPAScale: 10.0, OfferRatio: 1.7}
}

// Score computes the weighted score for an eligible candidate.
//
//	skill_score = |required ∩ candidate skills| / |required|  (1.0 when required is empty)
//	cgpa_score  = cgpa / scale
//	final_score = round4(skillWeight*skill_score + cgpaWeight*cgpa_score)
//
// Skill comparison is case-insensitive. The result's Status is left unset;
// the shortlisting engine assigns it after ranking.
func Score(c *types.Candidate, req *types.Requirement, w Weights) types.ScoreResult {
	skillScore := skillOverlap(c.Skills, req.RequiredSkills)
	cgpaScore := c.CGPA / w.CGPAScale
	final := round4(w.Skill*skillScore + w.CGPA*cgpaScore)

	return types.ScoreResult{
		CandidateID: c.ID,
		Name:        c.Name,
		Branch:      c.Branch,
		CGPA:        c.CGPA,
		SkillScore:  round4(skillScore),
		CGPAScore:   round4(cgpaScore),
		FinalScore:  final,
	}
}

// skillOverlap returns the fraction of required skills present in the
// candidate's skills. An empty requirement list means full credit; the
// explicit guard keeps the division well defined.
func skillOverlap(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 1.0
	}

	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(s)] = true
	}

	matched := 0
	for _, s := range requiredSkills {
		if have[strings.ToLower(s)] {
			matched++
		}
	}
	return float64(matched) / float64(len(requiredSkills))
}

// round4 rounds to 4 decimal places, half away from zero.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
