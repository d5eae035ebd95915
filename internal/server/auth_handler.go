package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

// handleSignup registers a new account and returns an access token.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}

	profile, err := s.auth.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := s.jwt.GenerateToken(profile.ID, profile.Role)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.TokenResponse{
		AccessToken: token,
		Role:        profile.Role,
		UserID:      profile.ID,
		Name:        profile.Name,
	})
}

// handleLogin authenticates an account and returns an access token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}

	profile, err := s.auth.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := s.jwt.GenerateToken(profile.ID, profile.Role)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.TokenResponse{
		AccessToken: token,
		Role:        profile.Role,
		UserID:      profile.ID,
		Name:        profile.Name,
	})
}
