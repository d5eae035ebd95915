package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pradeepreddy0/CampusHireAI/internal/config"
	"github.com/pradeepreddy0/CampusHireAI/internal/export"
	"github.com/pradeepreddy0/CampusHireAI/internal/schemas"
	"github.com/pradeepreddy0/CampusHireAI/internal/scoring"
	"github.com/pradeepreddy0/CampusHireAI/internal/shortlist"
	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

var (
	shortlistRequirement string
	shortlistCandidates  string
	shortlistXLSX        string
	shortlistConfig      string
)

var shortlistCmd = &cobra.Command{
	Use:   "shortlist",
	Short: "Run shortlisting over a candidate batch",
	Long: `Score a candidate batch against a requirement spec, rank by final score
and print the full decision report as JSON. Input files are validated against
the JSON Schemas under schemas/ before the engine runs.`,
	RunE: runShortlist,
}

func init() {
	shortlistCmd.Flags().StringVar(&shortlistRequirement, "requirement", "", "Path to requirement spec JSON (required)")
	shortlistCmd.Flags().StringVar(&shortlistCandidates, "candidates", "", "Path to candidate batch JSON (required)")
	shortlistCmd.Flags().StringVar(&shortlistXLSX, "xlsx", "", "Also write the report as an Excel workbook to this path")
	shortlistCmd.Flags().StringVar(&shortlistConfig, "config", "", "Path to engine config JSON")
	_ = shortlistCmd.MarkFlagRequired("requirement")
	_ = shortlistCmd.MarkFlagRequired("candidates")
	rootCmd.AddCommand(shortlistCmd)
}

func runShortlist(cmd *cobra.Command, _ []string) error {
	if schemaPath := schemas.ResolveSchemaPath("schemas/requirement.schema.json"); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, shortlistRequirement); err != nil {
			return fmt.Errorf("requirement spec: %w", err)
		}
	}
	if schemaPath := schemas.ResolveSchemaPath("schemas/candidates.schema.json"); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, shortlistCandidates); err != nil {
			return fmt.Errorf("candidate batch: %w", err)
		}
	}

	req, err := loadRequirement(shortlistRequirement)
	if err != nil {
		return err
	}
	candidates, err := loadCandidates(shortlistCandidates)
	if err != nil {
		return err
	}

	weights := scoring.DefaultWeights()
	if shortlistConfig != "" {
		cfg, err := config.Load(shortlistConfig)
		if err != nil {
			return err
		}
		weights = cfg.Weights()
	}

	engine := shortlist.New(weights)
	report, err := engine.Run(context.Background(), req, candidates)
	if err != nil {
		return err
	}

	if shortlistXLSX != "" {
		if err := export.SaveShortlist(report, shortlistXLSX); err != nil {
			return err
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func loadRequirement(path string) (*types.Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirement spec: %w", err)
	}
	var req types.Requirement
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse requirement spec: %w", err)
	}
	// The engine assumes pre-validated input; ranges are checked here.
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid requirement spec: %w", err)
	}
	return &req, nil
}

func loadCandidates(path string) ([]types.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate batch: %w", err)
	}
	var candidates []types.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidate batch: %w", err)
	}
	if err := types.ValidateCandidates(candidates); err != nil {
		return nil, fmt.Errorf("invalid candidate batch: %w", err)
	}
	return candidates, nil
}
