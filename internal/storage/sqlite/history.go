package sqlite

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tzgrid/internal/models"
)

func (s *Store) AddConversion(c models.Conversion) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		"INSERT INTO conversions (id, input, resolved_ms, zones, created_at) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.Input, c.ResolvedMs, strings.Join(c.Zones, ","), c.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *Store) ListConversions(limit int) ([]models.Conversion, error) {
	rows, err := s.db.Query(
		"SELECT id, input, resolved_ms, zones, created_at FROM conversions ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Conversion
	for rows.Next() {
		var c models.Conversion
		var zones, createdAt string
		if err := rows.Scan(&c.ID, &c.Input, &c.ResolvedMs, &zones, &createdAt); err != nil {
			return nil, err
		}
		if zones != "" {
			c.Zones = strings.Split(zones, ",")
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			c.CreatedAt = t
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) ClearConversions() error {
	_, err := s.db.Exec("DELETE FROM conversions")
	return err
}
