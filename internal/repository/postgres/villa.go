package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/magicvilla/villa-api/internal/domain"
)

type VillaRepository struct {
	db *gorm.DB

	// staged operations run in order inside one transaction on SaveChanges
	staged      []func(tx *gorm.DB) error
	stagedNames map[string]struct{}
}

func NewVillaRepository(db *gorm.DB) *VillaRepository {
	return &VillaRepository{
		db:          db,
		stagedNames: make(map[string]struct{}),
	}
}

func (r *VillaRepository) GetAllVillas(ctx context.Context) ([]domain.Villa, error) {
	var villas []domain.Villa
	if err := r.db.WithContext(ctx).Find(&villas).Error; err != nil {
		return nil, err
	}
	return villas, nil
}

func (r *VillaRepository) GetVillaByID(ctx context.Context, id int) (*domain.Villa, error) {
	var villa domain.Villa
	err := r.db.WithContext(ctx).First(&villa, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &villa, nil
}

func (r *VillaRepository) GetVillasByName(ctx context.Context, names []string) ([]domain.Villa, error) {
	if len(names) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}

	var villas []domain.Villa
	if err := r.db.WithContext(ctx).Where("LOWER(name) IN ?", lowered).Find(&villas).Error; err != nil {
		return nil, err
	}
	return villas, nil
}

// CreateVillas re-derives the collision set from current store state plus
// the names this unit already staged, then stages only the non-colliding
// subset. Any client-supplied id is discarded; the store assigns its own.
func (r *VillaRepository) CreateVillas(ctx context.Context, villas []domain.Villa) ([]*domain.Villa, []domain.Villa, error) {
	names := make([]string, len(villas))
	for i, villa := range villas {
		names[i] = villa.Name
	}

	stored, err := r.GetVillasByName(ctx, names)
	if err != nil {
		return nil, nil, err
	}

	taken := make(map[string]struct{}, len(stored)+len(r.stagedNames))
	for _, villa := range stored {
		taken[strings.ToLower(villa.Name)] = struct{}{}
	}
	for name := range r.stagedNames {
		taken[name] = struct{}{}
	}

	var created []*domain.Villa
	var existing []domain.Villa
	for _, villa := range villas {
		key := strings.ToLower(villa.Name)
		if _, ok := taken[key]; ok {
			existing = append(existing, villa)
			continue
		}

		now := time.Now()
		model := &domain.Villa{
			Name:        villa.Name,
			Details:     villa.Details,
			Amenity:     villa.Amenity,
			ImageUrl:    villa.ImageUrl,
			Occupancy:   villa.Occupancy,
			Rate:        villa.Rate,
			Sqft:        villa.Sqft,
			CreatedDate: now,
			UpdateDate:  now,
		}

		created = append(created, model)
		taken[key] = struct{}{}
		r.stagedNames[key] = struct{}{}
		r.stage(func(tx *gorm.DB) error {
			return tx.Create(model).Error
		})
	}

	return created, existing, nil
}

// UpdateVilla looks up the row fresh for its CreatedDate (falling back to
// now if it vanished concurrently) and stages a full replacement.
func (r *VillaRepository) UpdateVilla(ctx context.Context, villa domain.Villa) error {
	current, err := r.GetVillaByID(ctx, villa.ID)
	if err != nil {
		return err
	}

	villa.CreatedDate = time.Now()
	if current != nil {
		villa.CreatedDate = current.CreatedDate
	}
	villa.UpdateDate = time.Now()

	model := villa
	r.stage(func(tx *gorm.DB) error {
		// Updates rather than Save: if the row is deleted before commit
		// the update affects zero rows instead of re-inserting it.
		return tx.Model(&domain.Villa{ID: model.ID}).Select("*").Updates(model).Error
	})
	return nil
}

func (r *VillaRepository) UpdatePartialVilla(ctx context.Context, id int, patched domain.Villa) error {
	current, err := r.GetVillaByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}

	patched.ID = id
	patched.CreatedDate = current.CreatedDate
	patched.UpdateDate = time.Now()

	model := patched
	r.stage(func(tx *gorm.DB) error {
		return tx.Model(&domain.Villa{ID: model.ID}).Select("*").Updates(model).Error
	})
	return nil
}

func (r *VillaRepository) DeleteVilla(ctx context.Context, id int) error {
	current, err := r.GetVillaByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}

	r.stage(func(tx *gorm.DB) error {
		return tx.Delete(&domain.Villa{}, id).Error
	})
	return nil
}

func (r *VillaRepository) VillaExists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Villa{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveChanges flushes every staged mutation in one transaction. The
// staging area is cleared only on success so a failed commit can be
// retried or surfaced.
func (r *VillaRepository) SaveChanges(ctx context.Context) error {
	if len(r.staged) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range r.staged {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.staged = nil
	r.stagedNames = make(map[string]struct{})
	return nil
}

func (r *VillaRepository) stage(op func(tx *gorm.DB) error) {
	r.staged = append(r.staged, op)
}
