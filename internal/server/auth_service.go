package server

import (
	"context"
	"fmt"

	"github.com/pradeepreddy0/CampusHireAI/internal/config"
	"github.com/pradeepreddy0/CampusHireAI/internal/db"
	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

// AuthService provides signup and login against the users table.
type AuthService struct {
	db             *db.DB
	passwordConfig *config.PasswordConfig
}

// NewAuthService creates an AuthService with the given dependencies.
func NewAuthService(database *db.DB, passwordConfig *config.PasswordConfig) *AuthService {
	return &AuthService{db: database, passwordConfig: passwordConfig}
}

func toProfile(u *db.User) *types.UserProfile {
	if u == nil {
		return nil
	}
	return &types.UserProfile{
		ID:        u.ID,
		RollNo:    u.RollNo,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Branch:    u.Branch,
		CGPA:      u.CGPA,
		CreatedAt: u.CreatedAt,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, req *types.SignupRequest) (*types.UserProfile, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	hash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.db.CreateUser(ctx, &db.User{
		RollNo:       req.RollNo,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Branch:       req.Branch,
		CGPA:         req.CGPA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	return toProfile(user), nil
}

// Login verifies credentials and returns the account profile. Unknown email
// and wrong password produce the same generic error.
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.UserProfile, error) {
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return toProfile(user), nil
}
