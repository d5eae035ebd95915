package db

import (
	"context"
	"fmt"
	"math"

	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

// BranchStat aggregates placement outcomes for one branch.
type BranchStat struct {
	Branch   string `json:"branch"`
	Students int    `json:"students"`
	Placed   int    `json:"placed"`
}

// Analytics is the platform-wide placement summary shown on the admin
// dashboard.
type Analytics struct {
	TotalStudents     int          `json:"total_students"`
	TotalDrives       int          `json:"total_drives"`
	TotalApplications int          `json:"total_applications"`
	Shortlisted       int          `json:"shortlisted"`
	PlacedStudents    int          `json:"placed_students"`
	PlacementRate     float64      `json:"placement_rate"`
	BranchStats       []BranchStat `json:"branch_stats"`
}

// GetAnalytics computes the placement summary: totals, the placement rate
// over registered students, and per-branch student/placed counts.
func (db *DB) GetAnalytics(ctx context.Context) (*Analytics, error) {
	a := &Analytics{}
	err := db.pool.QueryRow(ctx,
		`SELECT
		     (SELECT COUNT(*) FROM users WHERE role = $1),
		     (SELECT COUNT(*) FROM drives),
		     (SELECT COUNT(*) FROM applications),
		     (SELECT COUNT(*) FROM applications WHERE status = $2),
		     (SELECT COUNT(DISTINCT student_id) FROM applications WHERE status = $3)`,
		types.RoleStudent, types.StatusShortlisted, types.StatusPlaced,
	).Scan(&a.TotalStudents, &a.TotalDrives, &a.TotalApplications,
		&a.Shortlisted, &a.PlacedStudents)
	if err != nil {
		return nil, fmt.Errorf("failed to compute analytics totals: %w", err)
	}
	a.PlacementRate = placementRate(a.PlacedStudents, a.TotalStudents)

	rows, err := db.pool.Query(ctx,
		`SELECT u.branch,
		        COUNT(DISTINCT u.id),
		        COUNT(DISTINCT u.id) FILTER (WHERE a.status = $2)
		 FROM users u
		 LEFT JOIN applications a ON a.student_id = u.id
		 WHERE u.role = $1
		 GROUP BY u.branch
		 ORDER BY u.branch`,
		types.RoleStudent, types.StatusPlaced)
	if err != nil {
		return nil, fmt.Errorf("failed to compute branch stats: %w", err)
	}
	defer rows.Close()

	a.BranchStats = []BranchStat{}
	for rows.Next() {
		var bs BranchStat
		if err := rows.Scan(&bs.Branch, &bs.Students, &bs.Placed); err != nil {
			return nil, fmt.Errorf("failed to scan branch stat: %w", err)
		}
		a.BranchStats = append(a.BranchStats, bs)
	}
	return a, rows.Err()
}

// placementRate is the percentage of students placed, rounded to 2 decimals.
// Zero students yields 0 rather than a division error.
func placementRate(placed, students int) float64 {
	if students == 0 {
		return 0
	}
	return math.Round(100*float64(placed)/float64(students)*100) / 100
}
