package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/magicvilla/villa-api/internal/api/dto"
	"github.com/magicvilla/villa-api/internal/domain"
	"github.com/magicvilla/villa-api/internal/patch"
	"github.com/magicvilla/villa-api/internal/repository"
)

const (
	createdMessage = "Villa created successfully"
	existsMessage  = "Villa already exists"
)

type VillaService struct {
	repo     repository.Repository
	validate *validator.Validate
}

func NewVillaService(repo repository.Repository) *VillaService {
	v := validator.New()
	// DTO constraints live in the binding tags; reuse them here so the
	// post-patch re-validation enforces the same rules as request binding.
	v.SetTagName("binding")

	return &VillaService{
		repo:     repo,
		validate: v,
	}
}

func (s *VillaService) List(ctx context.Context) ([]dto.VillaDTO, error) {
	villas, err := s.repo.Villa().GetAllVillas(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromVillas(villas), nil
}

func (s *VillaService) GetByID(ctx context.Context, id int) (*dto.VillaDTO, error) {
	villa, err := s.repo.Villa().GetVillaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if villa == nil {
		return nil, ErrVillaNotFound
	}
	return dto.FromVilla(villa), nil
}

// CreateMany stages creates for every name not already stored
// (case-insensitively), commits them, and reports both halves of the
// split. A request where every name collides is still a success.
func (s *VillaService) CreateMany(ctx context.Context, villas []dto.VillaDTO) (*dto.CreateVillasResponse, error) {
	models := make([]domain.Villa, len(villas))
	for i, villa := range villas {
		models[i] = *villa.ToVilla()
	}

	unit := s.repo.Villa()
	created, existing, err := unit.CreateVillas(ctx, models)
	if err != nil {
		return nil, err
	}
	if err := unit.SaveChanges(ctx); err != nil {
		return nil, err
	}

	resp := &dto.CreateVillasResponse{
		CreatedVillas:  make([]dto.CreatedVilla, len(created)),
		ExistingVillas: make([]dto.ExistingVilla, len(existing)),
	}
	for i, villa := range created {
		resp.CreatedVillas[i] = dto.CreatedVilla{
			VillaDTO: *dto.FromVilla(villa),
			Message:  createdMessage,
		}
	}
	for i, villa := range existing {
		resp.ExistingVillas[i] = dto.ExistingVilla{
			Name:    villa.Name,
			Message: existsMessage,
		}
	}
	return resp, nil
}

func (s *VillaService) Update(ctx context.Context, villa dto.VillaDTO) error {
	unit := s.repo.Villa()

	exists, err := unit.VillaExists(ctx, villa.Id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrVillaNotFound
	}

	if err := unit.UpdateVilla(ctx, *villa.ToVilla()); err != nil {
		return err
	}
	return unit.SaveChanges(ctx)
}

// PartialUpdate loads the current state, applies the patch in order,
// re-validates the result and commits. Nothing is staged when the patch
// or the re-validation fails.
func (s *VillaService) PartialUpdate(ctx context.Context, id int, doc patch.Document) error {
	unit := s.repo.Villa()

	current, err := unit.GetVillaByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrVillaNotFound
	}

	patched := dto.FromVilla(current)
	if err := doc.Apply(patched); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.validate.Struct(patched); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := unit.UpdatePartialVilla(ctx, id, *patched.ToVilla()); err != nil {
		return err
	}
	return unit.SaveChanges(ctx)
}

func (s *VillaService) Delete(ctx context.Context, id int) error {
	unit := s.repo.Villa()

	exists, err := unit.VillaExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrVillaNotFound
	}

	if err := unit.DeleteVilla(ctx, id); err != nil {
		return err
	}
	return unit.SaveChanges(ctx)
}
