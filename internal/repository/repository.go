package repository

import (
	"context"

	"github.com/magicvilla/villa-api/internal/domain"
)

// VillaRepository is a request-scoped unit of work. Mutating methods only
// stage changes; nothing is durable until SaveChanges commits the staged
// set in one transaction. Staged state is visible to the unit that staged
// it and to nobody else.
//
//go:generate mockery --name VillaRepository --output ../mocks
type VillaRepository interface {
	GetAllVillas(ctx context.Context) ([]domain.Villa, error)
	// GetVillaByID returns nil, nil when no row matches.
	GetVillaByID(ctx context.Context, id int) (*domain.Villa, error)
	// GetVillasByName matches the candidate names case-insensitively.
	GetVillasByName(ctx context.Context, names []string) ([]domain.Villa, error)
	// CreateVillas partitions the input by case-insensitive name collision
	// against the store (and names already staged in this unit), stages
	// creates for the non-colliding subset and reports both halves.
	CreateVillas(ctx context.Context, villas []domain.Villa) (created []*domain.Villa, existing []domain.Villa, err error)
	// UpdateVilla stages a full replacement, preserving the original
	// CreatedDate and refreshing UpdateDate.
	UpdateVilla(ctx context.Context, villa domain.Villa) error
	// UpdatePartialVilla stages a patched replacement for id; no-op if the
	// row no longer exists.
	UpdatePartialVilla(ctx context.Context, id int, patched domain.Villa) error
	// DeleteVilla stages a removal if the row exists; no-op otherwise.
	DeleteVilla(ctx context.Context, id int) error
	VillaExists(ctx context.Context, id int) (bool, error)
	// SaveChanges commits every staged mutation in one transaction.
	SaveChanges(ctx context.Context) error
}

// Repository hands out persistence units. Villa returns a fresh
// request-scoped unit on every call; units are never shared.
//
//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Villa() VillaRepository
}
