package scoring

import (
	"fmt"

	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

// ReasonCGPABelowEligibility is the rejection reason for the CGPA hard check.
const ReasonCGPABelowEligibility = "CGPA below eligibility"

// CheckEligibility runs the drive's hard constraints against a candidate in
// order; the first failing check determines the outcome. It returns whether
// the candidate may proceed to scoring and, when not, the rejection reason.
//
// Checks:
//  1. CGPA below the drive's eligibility cutoff.
//  2. When the offer filter is enabled and the drive has a package set, a
//     prior offer scaled by the offer ratio must not exceed the package.
//
// Rejected candidates never reach the scorer and carry a final score of 0.
func CheckEligibility(c *types.Candidate, req *types.Requirement, w Weights) (bool, string) {
	if c.CGPA < req.EligibilityCGPA {
		return false, ReasonCGPABelowEligibility
	}

	if req.ApplyOfferFilter && req.Package > 0 && c.BestOffer > 0 {
		if c.BestOffer*w.OfferRatio > req.Package {
			return false, fmt.Sprintf(
				"prior offer %.2f LPA x %.1f exceeds package %.2f LPA",
				c.BestOffer, w.OfferRatio, req.Package)
		}
	}

	return true, ""
}

// Reject builds the fixed-form result for a candidate that failed a hard check.
func Reject(c *types.Candidate, reason string) types.ScoreResult {
	return types.ScoreResult{
		CandidateID: c.ID,
		Name:        c.Name,
		Branch:      c.Branch,
		CGPA:        c.CGPA,
		FinalScore:  0.0,
		Status:      types.StatusRejected,
		Reason:      reason,
	}
}
