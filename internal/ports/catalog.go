package ports

import (
	"context"

	"github.com/randomtoy/astro-go/internal/domain"
)

// InfluenceCatalog provides the descriptive texts attached to phases,
// retrogrades and aspects.
type InfluenceCatalog interface {
	GetInfluences(ctx context.Context) (domain.Influences, error)
}
