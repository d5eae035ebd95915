package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pradeepreddy0/CampusHireAI/internal/config"
	"github.com/pradeepreddy0/CampusHireAI/internal/db"
	"github.com/pradeepreddy0/CampusHireAI/internal/entity"
	"github.com/pradeepreddy0/CampusHireAI/internal/extract"
	"github.com/pradeepreddy0/CampusHireAI/internal/server/middleware"
	"github.com/pradeepreddy0/CampusHireAI/internal/shortlist"
	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

// Server is the HTTP API for the campus hiring platform.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	jwt        *JWTService
	auth       *AuthService
	engine     *shortlist.Engine
	vocab      *extract.Vocabulary
	catalog    *db.Catalog
	recognizer entity.Recognizer
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	// GeminiAPIKey enables the named-entity augmentation of skill extraction
	// when set; extraction is keyword-only otherwise.
	GeminiAPIKey string
	// Engine is the optional engine configuration; nil uses defaults.
	Engine *config.Config
}

// New creates a server instance with its database pool, auth services and
// shortlisting engine wired up.
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	vocab := extract.DefaultVocabulary()
	if cfg.Engine != nil {
		if len(cfg.Engine.Skills) > 0 {
			vocab.Skills = cfg.Engine.Skills
		}
		if len(cfg.Engine.ActionVerbs) > 0 {
			vocab.ActionVerbs = cfg.Engine.ActionVerbs
		}
	}

	s := &Server{
		db:      database,
		jwt:     NewJWTService(jwtConfig),
		engine:  shortlist.New(cfg.Engine.Weights()),
		vocab:   vocab,
		catalog: db.NewCatalog(database),
	}
	s.auth = NewAuthService(database, passwordConfig)

	if cfg.GeminiAPIKey != "" {
		rec, err := entity.NewGeminiRecognizer(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create entity recognizer: %w", err)
		}
		s.recognizer = rec
	}

	authed := middleware.Auth(s.jwt.AsTokenValidator())
	admin := func(h http.Handler) http.Handler {
		return authed(middleware.RequireRole(types.RoleAdmin)(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/signup", s.handleSignup)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	mux.Handle("GET /api/drives", authed(http.HandlerFunc(s.handleListDrives)))
	mux.Handle("POST /api/drives", admin(http.HandlerFunc(s.handleCreateDrive)))
	mux.Handle("POST /api/drives/{id}/apply", authed(http.HandlerFunc(s.handleApply)))
	mux.Handle("POST /api/drives/{id}/shortlist", admin(http.HandlerFunc(s.handleRunShortlist)))
	mux.Handle("GET /api/drives/{id}/export", admin(http.HandlerFunc(s.handleExportShortlist)))

	mux.Handle("POST /api/students/{id}/resume", authed(http.HandlerFunc(s.handleUploadResume)))
	mux.Handle("GET /api/students/{id}/skill-gap", authed(http.HandlerFunc(s.handleSkillGap)))
	mux.Handle("GET /api/training", authed(http.HandlerFunc(s.handleListTraining)))
	mux.Handle("GET /api/analytics", admin(http.HandlerFunc(s.handleAnalytics)))
	mux.Handle("POST /api/offers", admin(http.HandlerFunc(s.handleRecordOffer)))

	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort("", fmt.Sprintf("%d", cfg.Port)),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Start runs the server until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	s.db.Close()
	return nil
}
