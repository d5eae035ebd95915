package db

import (
	"context"
	"fmt"

	"github.com/pradeepreddy0/CampusHireAI/internal/skillgap"
)

// Catalog adapts the training_resources table to the gap analyzer's
// ResourceCatalog interface.
type Catalog struct {
	db *DB
}

// NewCatalog creates a catalog backed by the given database.
func NewCatalog(db *DB) *Catalog {
	return &Catalog{db: db}
}

// ListAll returns the whole training catalog, ordered by skill then id.
func (c *Catalog) ListAll(ctx context.Context) ([]skillgap.Resource, error) {
	rows, err := c.db.pool.Query(ctx,
		`SELECT id, skill, title, url, provider
		 FROM training_resources
		 ORDER BY skill, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list training resources: %w", err)
	}
	defer rows.Close()

	resources := []skillgap.Resource{}
	for rows.Next() {
		var r skillgap.Resource
		if err := rows.Scan(&r.ID, &r.Skill, &r.Title, &r.URL, &r.Provider); err != nil {
			return nil, fmt.Errorf("failed to scan training resource: %w", err)
		}
		resources = append(resources, r)
	}
	return resources, rows.Err()
}

// FindBySkill looks up training resources whose skill column contains the
// given skill, case-insensitively.
func (c *Catalog) FindBySkill(ctx context.Context, skill string) ([]skillgap.Resource, error) {
	rows, err := c.db.pool.Query(ctx,
		`SELECT id, skill, title, url, provider
		 FROM training_resources
		 WHERE skill ILIKE '%' || $1 || '%'
		 ORDER BY id`, skill)
	if err != nil {
		return nil, fmt.Errorf("failed to query training resources: %w", err)
	}
	defer rows.Close()

	resources := []skillgap.Resource{}
	for rows.Next() {
		var r skillgap.Resource
		if err := rows.Scan(&r.ID, &r.Skill, &r.Title, &r.URL, &r.Provider); err != nil {
			return nil, fmt.Errorf("failed to scan training resource: %w", err)
		}
		resources = append(resources, r)
	}
	return resources, rows.Err()
}
