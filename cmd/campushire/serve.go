package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pradeepreddy0/CampusHireAI/internal/config"
	"github.com/pradeepreddy0/CampusHireAI/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing signup/login, drive management, resume upload, shortlisting and skill-gap endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to engine config JSON")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	var engineCfg *config.Config
	if serveConfig != "" {
		cfg, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		engineCfg = cfg
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:         servePort,
		DatabaseURL:  databaseURL,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Engine:       engineCfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
