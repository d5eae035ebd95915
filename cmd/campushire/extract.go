package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pradeepreddy0/CampusHireAI/internal/config"
	"github.com/pradeepreddy0/CampusHireAI/internal/entity"
	"github.com/pradeepreddy0/CampusHireAI/internal/extract"
)

var (
	extractInput    string
	extractConfig   string
	extractEntities bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills and projects from resume text",
	Long: `Read already-extracted plain resume text from a file and print the matched
skills and parsed project records as JSON. With --entities and GEMINI_API_KEY
set, a named-entity pass augments the keyword matches.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractInput, "in", "", "Path to resume text file (required)")
	extractCmd.Flags().StringVar(&extractConfig, "config", "", "Path to engine config JSON")
	extractCmd.Flags().BoolVar(&extractEntities, "entities", false, "Augment with a named-entity pass (needs GEMINI_API_KEY)")
	_ = extractCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(extractInput)
	if err != nil {
		return fmt.Errorf("failed to read resume text: %w", err)
	}
	text := string(data)

	vocab := extract.DefaultVocabulary()
	if extractConfig != "" {
		cfg, err := config.Load(extractConfig)
		if err != nil {
			return err
		}
		if len(cfg.Skills) > 0 {
			vocab.Skills = cfg.Skills
		}
		if len(cfg.ActionVerbs) > 0 {
			vocab.ActionVerbs = cfg.ActionVerbs
		}
	}

	ctx := context.Background()
	var skills []string
	if extractEntities {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable is required with --entities")
		}
		rec, err := entity.NewGeminiRecognizer(ctx, apiKey, "")
		if err != nil {
			return err
		}
		defer rec.Close()
		skills = extract.ExtractSkillsWithRecognizer(ctx, text, vocab, rec)
	} else {
		skills = extract.ExtractSkills(text, vocab)
	}

	projects := extract.ExtractProjects(text, vocab)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"extracted_skills":   skills,
		"extracted_projects": projects,
	})
}
