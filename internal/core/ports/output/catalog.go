package ports

import (
	"context"

	"gallery-service/internal/core/domain"
)

// ExhibitCatalog supplies the configured exhibits in display order.
type ExhibitCatalog interface {
	List(ctx context.Context) ([]domain.ExhibitSource, error)
}
