package dto

import (
	"github.com/magicvilla/villa-api/internal/domain"
)

// ToVilla converts a VillaDTO to a Villa domain model. The store owns id
// assignment and the timestamp pair, so those are left to the repository.
func (d *VillaDTO) ToVilla() *domain.Villa {
	return &domain.Villa{
		ID:        d.Id,
		Name:      d.Name,
		Details:   d.Details,
		Amenity:   d.Amenity,
		ImageUrl:  d.ImageUrl,
		Occupancy: d.Occupancy,
		Rate:      d.Rate,
		Sqft:      d.Sqft,
	}
}

// FromVilla converts a Villa domain model to its wire representation.
func FromVilla(villa *domain.Villa) *VillaDTO {
	return &VillaDTO{
		Id:          villa.ID,
		Name:        villa.Name,
		Details:     villa.Details,
		Amenity:     villa.Amenity,
		ImageUrl:    villa.ImageUrl,
		Occupancy:   villa.Occupancy,
		Rate:        villa.Rate,
		Sqft:        villa.Sqft,
		CreatedDate: villa.CreatedDate,
		UpdateDate:  villa.UpdateDate,
	}
}

func FromVillas(villas []domain.Villa) []VillaDTO {
	dtos := make([]VillaDTO, len(villas))
	for i, villa := range villas {
		dtos[i] = *FromVilla(&villa)
	}
	return dtos
}
