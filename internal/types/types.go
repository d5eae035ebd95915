// Package types provides type definitions for structured data used throughout the CampusHireAI system.
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationStatus tracks a candidate's application through a placement drive.
// Applied is the sole initial state; the shortlisting engine moves applications
// to Shortlisted or Rejected exactly once per run. Offered and Placed are set
// by administrative action, never by the engine.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusOffered     ApplicationStatus = "Offered"
	StatusPlaced      ApplicationStatus = "Placed"
)

// Project is a single project parsed out of resume text.
// Name is truncated to 150 characters at extraction time; Desc joins bullet
// fragments with " • ".
type Project struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// Candidate is a read-only input record for one student in a shortlisting run.
type Candidate struct {
	ID     uuid.UUID `json:"id"`
	RollNo string    `json:"roll_no,omitempty"`
	Name   string    `json:"name,omitempty"`
	Email  string    `json:"email,omitempty"`
	Branch string    `json:"branch,omitempty"`
	CGPA   float64   `json:"cgpa" validate:"gte=0,lte=10"`
	Skills []string  `json:"skills"`
	// BestOffer is the candidate's highest prior offer in LPA, 0 when none.
	BestOffer float64   `json:"best_offer,omitempty" validate:"gte=0"`
	Projects  []Project `json:"projects,omitempty"`
}

// Requirement describes what one placement drive demands of candidates.
type Requirement struct {
	DriveID         int64    `json:"drive_id,omitempty"`
	Company         string   `json:"company,omitempty"`
	Role            string   `json:"role,omitempty"`
	EligibilityCGPA float64  `json:"eligibility_cgpa" validate:"gte=0,lte=10"`
	RequiredSkills  []string `json:"required_skills"`
	// Package is the offered CTC in LPA; 0 means unset and disables the offer filter.
	Package   float64 `json:"package,omitempty" validate:"gte=0"`
	Threshold float64 `json:"threshold" validate:"gte=0,lte=1"`
	// TopN caps the number of shortlisted candidates; nil means uncapped.
	TopN             *int `json:"top_n,omitempty" validate:"omitempty,gt=0"`
	ApplyOfferFilter bool `json:"apply_offer_filter,omitempty"`
}

// Validate checks the Requirement's ranges using the validator.
// The scoring engine assumes pre-validated input, so callers run this at the boundary.
func (r *Requirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ValidateCandidates checks each candidate's ranges using the validator.
func ValidateCandidates(candidates []Candidate) error {
	validate := validator.New()
	for i := range candidates {
		if err := validate.Struct(&candidates[i]); err != nil {
			return err
		}
	}
	return nil
}

// ScoreResult is the engine's per-candidate decision.
type ScoreResult struct {
	CandidateID uuid.UUID         `json:"candidate_id"`
	Name        string            `json:"name,omitempty"`
	Branch      string            `json:"branch,omitempty"`
	CGPA        float64           `json:"cgpa"`
	SkillScore  float64           `json:"skill_score"`
	CGPAScore   float64           `json:"cgpa_score"`
	FinalScore  float64           `json:"final_score"`
	Status      ApplicationStatus `json:"status"`
	Reason      string            `json:"reason,omitempty"`
}

// ShortlistReport is the full outcome of one shortlisting run, echoing the
// input parameters for traceability.
type ShortlistReport struct {
	DriveID     int64         `json:"drive_id,omitempty"`
	Company     string        `json:"company,omitempty"`
	Threshold   float64       `json:"threshold"`
	TopN        *int          `json:"top_n,omitempty"`
	OfferFilter bool          `json:"offer_filter"`
	Total       int           `json:"total"`
	Shortlisted int           `json:"shortlisted"`
	Rejected    int           `json:"rejected"`
	Results     []ScoreResult `json:"results"`
}
