package domain

import (
	"time"
)

type Villa struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Details     string    `gorm:"type:text" json:"details"`
	ImageUrl    string    `gorm:"type:text" json:"image_url"`
	Amenity     string    `gorm:"type:text" json:"amenity"`
	Occupancy   int       `json:"occupancy"`
	Sqft        int       `json:"sqft"`
	Rate        float64   `gorm:"type:decimal(10,2)" json:"rate"`
	CreatedDate time.Time `json:"created_date"`
	UpdateDate  time.Time `json:"update_date"`
}

func (Villa) TableName() string {
	return "villas"
}
