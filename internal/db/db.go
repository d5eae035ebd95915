// Package db provides PostgreSQL access for users, drives, applications,
// resumes, offers and the training-resource catalog.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateUser inserts a new user and returns its ID.
func (db *DB) CreateUser(ctx context.Context, u *User) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (roll_no, name, email, password_hash, role, branch, cgpa)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		u.RollNo, u.Name, u.Email, u.PasswordHash, u.Role, u.Branch, u.CGPA,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// CheckEmailExists reports whether the email is already registered.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// GetUserByEmail fetches a user by email; returns nil when absent.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, roll_no, name, email, password_hash, role, branch, cgpa, created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.RollNo, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Branch, &u.CGPA, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// GetUser fetches a user by ID.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	u := &User{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, roll_no, name, email, password_hash, role, branch, cgpa, created_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.RollNo, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Branch, &u.CGPA, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrUserNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// CreateDrive stores a requirement spec as a new drive and returns its ID.
func (db *DB) CreateDrive(ctx context.Context, req *types.Requirement) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO drives (company_name, role_title, eligibility_cgpa, required_skills, package, threshold, top_n, apply_offer_filter)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		req.Company, req.Role, req.EligibilityCGPA, req.RequiredSkills,
		req.Package, req.Threshold, req.TopN, req.ApplyOfferFilter,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create drive: %w", err)
	}
	return id, nil
}

// GetDrive loads a drive's requirement spec.
func (db *DB) GetDrive(ctx context.Context, id int64) (*types.Requirement, error) {
	req := &types.Requirement{DriveID: id}
	err := db.pool.QueryRow(ctx,
		`SELECT company_name, role_title, eligibility_cgpa, required_skills, package, threshold, top_n, apply_offer_filter
		 FROM drives WHERE id = $1`, id,
	).Scan(&req.Company, &req.Role, &req.EligibilityCGPA, &req.RequiredSkills,
		&req.Package, &req.Threshold, &req.TopN, &req.ApplyOfferFilter)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ErrDriveNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drive: %w", err)
	}
	return req, nil
}

// ListDrives returns all drives, newest first.
func (db *DB) ListDrives(ctx context.Context) ([]types.Requirement, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, company_name, role_title, eligibility_cgpa, required_skills, package, threshold, top_n, apply_offer_filter
		 FROM drives ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drives: %w", err)
	}
	defer rows.Close()

	drives := []types.Requirement{}
	for rows.Next() {
		var req types.Requirement
		if err := rows.Scan(&req.DriveID, &req.Company, &req.Role, &req.EligibilityCGPA,
			&req.RequiredSkills, &req.Package, &req.Threshold, &req.TopN, &req.ApplyOfferFilter); err != nil {
			return nil, fmt.Errorf("failed to scan drive: %w", err)
		}
		drives = append(drives, req)
	}
	return drives, rows.Err()
}

// CreateApplication records a student's application to a drive in the Applied
// state.
func (db *DB) CreateApplication(ctx context.Context, driveID int64, studentID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO applications (drive_id, student_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (drive_id, student_id) DO NOTHING`,
		driveID, studentID, types.StatusApplied)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// ListAppliedCandidates assembles the candidate batch for a drive: every
// Applied student joined with the skills of their newest resume and their
// best prior offer (0 when none). Order is application order, which the
// engine preserves for ties.
func (db *DB) ListAppliedCandidates(ctx context.Context, driveID int64) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT u.id, u.roll_no, u.name, u.email, u.branch, u.cgpa,
		        COALESCE(r.extracted_skills, '{}'),
		        COALESCE((SELECT MAX(o.package) FROM offers o WHERE o.student_id = u.id), 0)
		 FROM applications a
		 JOIN users u ON u.id = a.student_id
		 LEFT JOIN LATERAL (
		     SELECT extracted_skills FROM resumes
		     WHERE student_id = u.id
		     ORDER BY created_at DESC
		     LIMIT 1
		 ) r ON true
		 WHERE a.drive_id = $1 AND a.status = $2
		 ORDER BY a.id`,
		driveID, types.StatusApplied)
	if err != nil {
		return nil, fmt.Errorf("failed to list applied candidates: %w", err)
	}
	defer rows.Close()

	candidates := []types.Candidate{}
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.RollNo, &c.Name, &c.Email, &c.Branch,
			&c.CGPA, &c.Skills, &c.BestOffer); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// SaveShortlistResults persists the engine's decisions onto the drive's
// applications.
func (db *DB) SaveShortlistResults(ctx context.Context, driveID int64, results []types.ScoreResult) error {
	for _, res := range results {
		_, err := db.pool.Exec(ctx,
			`UPDATE applications SET status = $1, ai_score = $2, decided_at = NOW()
			 WHERE drive_id = $3 AND student_id = $4`,
			res.Status, res.FinalScore, driveID, res.CandidateID)
		if err != nil {
			return fmt.Errorf("failed to save result for %s: %w", res.CandidateID, err)
		}
	}
	return nil
}

// SaveResume stores the extracted skills and projects for a student's resume.
func (db *DB) SaveResume(ctx context.Context, studentID uuid.UUID, label string, skills []string, projects []types.Project) (int64, error) {
	projectsJSON, err := json.Marshal(projects)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal projects: %w", err)
	}

	var id int64
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (student_id, label, extracted_skills, extracted_projects)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		studentID, label, skills, projectsJSON,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetLatestResumeSkills returns the extracted skills of the student's newest
// resume, or an empty slice when the student has none.
func (db *DB) GetLatestResumeSkills(ctx context.Context, studentID uuid.UUID) ([]string, error) {
	var skills []string
	err := db.pool.QueryRow(ctx,
		`SELECT extracted_skills FROM resumes
		 WHERE student_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`, studentID,
	).Scan(&skills)
	if errors.Is(err, pgx.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume skills: %w", err)
	}
	return skills, nil
}

// RecordOffer stores a placement offer for a student; the maximum across
// offers feeds the engine's offer filter.
func (db *DB) RecordOffer(ctx context.Context, studentID uuid.UUID, company string, pkg float64) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO offers (student_id, company, package) VALUES ($1, $2, $3)`,
		studentID, company, pkg)
	if err != nil {
		return fmt.Errorf("failed to record offer: %w", err)
	}
	return nil
}
