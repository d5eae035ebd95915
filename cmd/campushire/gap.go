package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pradeepreddy0/CampusHireAI/internal/skillgap"
)

var (
	gapRequirement string
	gapSkills      string
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze a candidate's skill gap against a requirement",
	Long: `Compare a comma-separated candidate skill list against a requirement spec's
required skills and print matched skills, missing skills and the match
percentage as JSON.`,
	RunE: runGap,
}

func init() {
	gapCmd.Flags().StringVar(&gapRequirement, "requirement", "", "Path to requirement spec JSON (required)")
	gapCmd.Flags().StringVar(&gapSkills, "skills", "", "Comma-separated candidate skills (required)")
	_ = gapCmd.MarkFlagRequired("requirement")
	_ = gapCmd.MarkFlagRequired("skills")
	rootCmd.AddCommand(gapCmd)
}

func runGap(cmd *cobra.Command, _ []string) error {
	req, err := loadRequirement(gapRequirement)
	if err != nil {
		return err
	}

	var candidateSkills []string
	for _, s := range strings.Split(gapSkills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			candidateSkills = append(candidateSkills, s)
		}
	}
	if len(candidateSkills) == 0 {
		return fmt.Errorf("at least one candidate skill is required")
	}

	analysis := skillgap.Analyze(candidateSkills, req.RequiredSkills)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(analysis)
}
