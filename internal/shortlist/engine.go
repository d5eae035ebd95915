// Package shortlist implements the ranking and selection engine: it scores a
// drive's candidate batch, ranks by final score, and resolves a terminal
// Shortlisted or Rejected status for every candidate.
package shortlist

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/pradeepreddy0/CampusHireAI/internal/scoring"
	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

// Engine runs shortlisting with a fixed set of scoring weights. It holds no
// mutable state across runs; repeated runs over identical inputs produce
// identical reports.
type Engine struct {
	weights scoring.Weights
}

// New creates an engine with the given weights.
func New(w scoring.Weights) *Engine {
	return &Engine{weights: w}
}

// NewDefault creates an engine with the platform default weights.
func NewDefault() *Engine {
	return New(scoring.DefaultWeights())
}

// Run executes one shortlisting pass over the drive's candidate batch.
//
// Eligibility checks filter out candidates failing hard constraints; the rest
// are scored concurrently (each candidate is independent) and then ranked in
// a single stable sort by final score descending, the one global
// synchronization point of the run. A candidate is Shortlisted iff its final
// score meets the threshold and, when TopN is set, its rank is within the
// cap. Ties keep input order.
//
// The engine assumes a pre-validated Requirement (see Requirement.Validate)
// and returns decisions only; persisting statuses and notifying candidates
// are the caller's effects.
func (e *Engine) Run(ctx context.Context, req *types.Requirement, candidates []types.Candidate) (*types.ShortlistReport, error) {
	if req == nil {
		return nil, fmt.Errorf("requirement is required")
	}

	eligible := make([]*types.Candidate, 0, len(candidates))
	ineligible := []types.ScoreResult{}
	for i := range candidates {
		c := &candidates[i]
		if ok, reason := scoring.CheckEligibility(c, req, e.weights); !ok {
			ineligible = append(ineligible, scoring.Reject(c, reason))
			continue
		}
		eligible = append(eligible, c)
	}

	// Fan out scoring; results land at their input index so ranking ties
	// preserve the original candidate order.
	scored := make([]types.ScoreResult, len(eligible))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range eligible {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scored[i] = scoring.Score(c, req, e.weights)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring interrupted: %w", err)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	shortlisted := 0
	for i := range scored {
		if scored[i].FinalScore >= req.Threshold && (req.TopN == nil || i < *req.TopN) {
			scored[i].Status = types.StatusShortlisted
			shortlisted++
		} else {
			scored[i].Status = types.StatusRejected
		}
	}

	results := append(scored, ineligible...)

	return &types.ShortlistReport{
		DriveID:     req.DriveID,
		Company:     req.Company,
		Threshold:   req.Threshold,
		TopN:        req.TopN,
		OfferFilter: req.ApplyOfferFilter,
		Total:       len(results),
		Shortlisted: shortlisted,
		Rejected:    len(results) - shortlisted,
		Results:     results,
	}, nil
}
