package dto

import (
	"time"
)

// VillaDTO is the wire representation of a villa, used for both request
// bodies and responses. Field names follow the public JSON contract.
type VillaDTO struct {
	Id          int       `json:"Id" example:"1"`
	Name        string    `json:"Name" binding:"required,max=100" example:"Royal Villa"`
	Details     string    `json:"Details" example:"A villa with an ocean view"`
	Amenity     string    `json:"Amenity" example:"Pool, WiFi"`
	ImageUrl    string    `json:"ImageUrl" example:"https://example.com/villa.jpg"`
	Occupancy   int       `json:"Occupancy" binding:"gte=0" example:"4"`
	Rate        float64   `json:"Rate" binding:"gte=0" example:"199.99"`
	Sqft        int       `json:"Sqft" binding:"gte=0" example:"550"`
	CreatedDate time.Time `json:"CreatedDate" example:"2025-07-17T21:20:48Z"`
	UpdateDate  time.Time `json:"UpdateDate" example:"2025-07-17T21:20:48Z"`
}

// CreatedVilla is one entry of the CreatedVillas list in the create response.
type CreatedVilla struct {
	VillaDTO
	Message string `json:"Message" example:"Villa created successfully"`
}

// ExistingVilla reports a name that collided with an already stored villa.
type ExistingVilla struct {
	Name    string `json:"Name" example:"Royal Villa"`
	Message string `json:"Message" example:"Villa already exists"`
}

// CreateVillasResponse splits a create request into the villas that were
// created and the ones whose names already existed.
type CreateVillasResponse struct {
	CreatedVillas  []CreatedVilla  `json:"CreatedVillas"`
	ExistingVillas []ExistingVilla `json:"ExistingVillas"`
}
