package postgres

import (
	"gorm.io/gorm"

	"github.com/magicvilla/villa-api/internal/repository"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.Repository {
	return &postgresRepository{db: db}
}

// Villa mints a new unit of work on every call so each request gets its
// own staging area over the shared connection pool.
func (r *postgresRepository) Villa() repository.VillaRepository {
	return NewVillaRepository(r.db)
}
