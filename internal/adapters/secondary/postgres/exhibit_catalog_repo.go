package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gallery-service/internal/core/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS gallery_exhibit (
		id          BIGSERIAL PRIMARY KEY,
		position    INTEGER NOT NULL,
		git         TEXT NOT NULL,
		title       TEXT NOT NULL,
		homepage    TEXT,
		description TEXT,
		icon        TEXT,
		branch      TEXT,
		depth       INTEGER NOT NULL DEFAULT 0
	)
`

// ExhibitCatalogRepo stores the exhibit catalog in the gallery_exhibit table.
// A NULL icon means "derive one"; an empty icon is kept as configured.
type ExhibitCatalogRepo struct {
	pool *pgxpool.Pool
}

// NewExhibitCatalogRepository creates a new ExhibitCatalogRepo
func NewExhibitCatalogRepository(pool *pgxpool.Pool) *ExhibitCatalogRepo {
	return &ExhibitCatalogRepo{pool: pool}
}

// EnsureSchema creates the catalog table when it does not exist yet.
func (r *ExhibitCatalogRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create gallery_exhibit table: %w", err)
	}
	return nil
}

func (r *ExhibitCatalogRepo) List(ctx context.Context) ([]domain.ExhibitSource, error) {
	query := `
		SELECT git, title, COALESCE(homepage, ''), COALESCE(description, ''),
		       icon, COALESCE(branch, ''), depth
		FROM gallery_exhibit
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list exhibits: %w", err)
	}
	defer rows.Close()

	sources := make([]domain.ExhibitSource, 0)
	for rows.Next() {
		var src domain.ExhibitSource
		if err := rows.Scan(
			&src.Git, &src.Title, &src.Homepage, &src.Description,
			&src.Icon, &src.Branch, &src.Depth,
		); err != nil {
			return nil, fmt.Errorf("scan exhibit: %w", err)
		}
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exhibits: %w", err)
	}

	return sources, nil
}

// Count returns the number of catalog rows.
func (r *ExhibitCatalogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM gallery_exhibit`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count exhibits: %w", err)
	}
	return n, nil
}

// Replace swaps the whole catalog for sources, keeping their order.
func (r *ExhibitCatalogRepo) Replace(ctx context.Context, sources []domain.ExhibitSource) error {
	for i, src := range sources {
		if err := src.Validate(); err != nil {
			return fmt.Errorf("exhibit %d: %w", i, err)
		}
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM gallery_exhibit`); err != nil {
			return fmt.Errorf("clear exhibits: %w", err)
		}

		query := `
			INSERT INTO gallery_exhibit
				(position, git, title, homepage, description, icon, branch, depth)
			VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, NULLIF($7, ''), $8)
		`
		for i, src := range sources {
			if _, err := tx.Exec(ctx, query,
				i, src.Git, src.Title, src.Homepage, src.Description,
				src.Icon, src.Branch, src.Depth,
			); err != nil {
				return fmt.Errorf("insert exhibit %d: %w", i, err)
			}
		}
		return nil
	})
}
