package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/magicvilla/villa-api/internal/domain"
)

type VillaRepositoryTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *VillaRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)

	// a single connection so every unit sees the same in-memory database
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.AutoMigrate(&domain.Villa{}))
	s.db = db
}

func TestVillaRepository(t *testing.T) {
	suite.Run(t, new(VillaRepositoryTestSuite))
}

// seed creates and commits one villa through a repository unit.
func (s *VillaRepositoryTestSuite) seed(ctx context.Context, villa domain.Villa) *domain.Villa {
	unit := NewVillaRepository(s.db)
	created, existing, err := unit.CreateVillas(ctx, []domain.Villa{villa})
	s.Require().NoError(err)
	s.Require().Len(created, 1)
	s.Require().Empty(existing)
	s.Require().NoError(unit.SaveChanges(ctx))
	return created[0]
}

func (s *VillaRepositoryTestSuite) TestCreateVillas_PartitionsCaseInsensitively() {
	// Arrange
	ctx := context.Background()
	s.seed(ctx, domain.Villa{Name: "Sunset", Rate: 100})

	// Act: same name in a different case plus a genuinely new one
	unit := NewVillaRepository(s.db)
	created, existing, err := unit.CreateVillas(ctx, []domain.Villa{
		{Name: "SUNSET", Rate: 150},
		{Name: "Beta", Rate: 200},
	})
	s.Require().NoError(err)
	s.Require().NoError(unit.SaveChanges(ctx))

	// Assert
	s.Len(created, 1)
	s.Equal("Beta", created[0].Name)
	s.Len(existing, 1)
	s.Equal("SUNSET", existing[0].Name)

	var count int64
	s.NoError(s.db.Model(&domain.Villa{}).Where("LOWER(name) = ?", "sunset").Count(&count).Error)
	s.Equal(int64(1), count, "colliding name must not produce a duplicate row")
}

func (s *VillaRepositoryTestSuite) TestCreateVillas_DiscardsClientSuppliedID() {
	// Arrange
	ctx := context.Background()

	// Act
	unit := NewVillaRepository(s.db)
	created, _, err := unit.CreateVillas(ctx, []domain.Villa{
		{ID: 999, Name: "Alpha", Rate: 100},
	})
	s.Require().NoError(err)
	s.Require().NoError(unit.SaveChanges(ctx))

	// Assert: the store assigned its own id
	s.Require().Len(created, 1)
	s.NotEqual(999, created[0].ID)
	s.NotZero(created[0].ID)

	ghost, err := NewVillaRepository(s.db).GetVillaByID(ctx, 999)
	s.NoError(err)
	s.Nil(ghost)
}

func (s *VillaRepositoryTestSuite) TestCreateVillas_DuplicateNamesWithinBatch() {
	// Arrange
	ctx := context.Background()

	// Act: the second occurrence collides with the first, staged one
	unit := NewVillaRepository(s.db)
	created, existing, err := unit.CreateVillas(ctx, []domain.Villa{
		{Name: "Alpha", Rate: 100},
		{Name: "alpha", Rate: 200},
	})
	s.Require().NoError(err)
	s.Require().NoError(unit.SaveChanges(ctx))

	// Assert
	s.Len(created, 1)
	s.Equal("Alpha", created[0].Name)
	s.Len(existing, 1)
	s.Equal("alpha", existing[0].Name)

	var count int64
	s.NoError(s.db.Model(&domain.Villa{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *VillaRepositoryTestSuite) TestCreateVillas_NothingDurableBeforeSaveChanges() {
	// Arrange
	ctx := context.Background()

	unit := NewVillaRepository(s.db)
	_, _, err := unit.CreateVillas(ctx, []domain.Villa{{Name: "Alpha", Rate: 100}})
	s.Require().NoError(err)

	// Assert: staged only, another unit sees an empty store
	villas, err := NewVillaRepository(s.db).GetAllVillas(ctx)
	s.NoError(err)
	s.Empty(villas)

	// Act: commit makes it durable
	s.Require().NoError(unit.SaveChanges(ctx))

	villas, err = NewVillaRepository(s.db).GetAllVillas(ctx)
	s.NoError(err)
	s.Len(villas, 1)
}

func (s *VillaRepositoryTestSuite) TestUpdateVilla_PreservesCreatedDate() {
	// Arrange
	ctx := context.Background()
	seeded := s.seed(ctx, domain.Villa{Name: "Sunset", Rate: 100})

	before, err := NewVillaRepository(s.db).GetVillaByID(ctx, seeded.ID)
	s.Require().NoError(err)
	s.Require().NotNil(before)

	time.Sleep(10 * time.Millisecond)

	// Act
	unit := NewVillaRepository(s.db)
	s.Require().NoError(unit.UpdateVilla(ctx, domain.Villa{
		ID: seeded.ID, Name: "Sunset", Rate: 250,
	}))
	s.Require().NoError(unit.SaveChanges(ctx))

	// Assert
	after, err := NewVillaRepository(s.db).GetVillaByID(ctx, seeded.ID)
	s.Require().NoError(err)
	s.Require().NotNil(after)
	s.Equal(250.0, after.Rate)
	s.True(after.CreatedDate.Equal(before.CreatedDate), "CreatedDate must survive an update")
	s.True(after.UpdateDate.After(before.UpdateDate), "UpdateDate must move forward")
}

func (s *VillaRepositoryTestSuite) TestUpdateVilla_DoesNotResurrectDeletedRow() {
	// Arrange
	ctx := context.Background()
	seeded := s.seed(ctx, domain.Villa{Name: "Sunset", Rate: 100})

	unit := NewVillaRepository(s.db)
	s.Require().NoError(unit.UpdateVilla(ctx, domain.Villa{
		ID: seeded.ID, Name: "Sunset", Rate: 250,
	}))

	// the row vanishes between staging and commit
	s.Require().NoError(s.db.Delete(&domain.Villa{}, seeded.ID).Error)
	s.Require().NoError(unit.SaveChanges(ctx))

	// Assert: last write lost the race, the row stays gone
	after, err := NewVillaRepository(s.db).GetVillaByID(ctx, seeded.ID)
	s.NoError(err)
	s.Nil(after)
}

func (s *VillaRepositoryTestSuite) TestUpdatePartialVilla_NoOpWhenRowGone() {
	// Arrange
	ctx := context.Background()

	// Act
	unit := NewVillaRepository(s.db)
	s.Require().NoError(unit.UpdatePartialVilla(ctx, 42, domain.Villa{Name: "Ghost"}))
	s.Require().NoError(unit.SaveChanges(ctx))

	// Assert
	villas, err := NewVillaRepository(s.db).GetAllVillas(ctx)
	s.NoError(err)
	s.Empty(villas)
}

func (s *VillaRepositoryTestSuite) TestDeleteVilla_SecondDeleteIsNoOp() {
	// Arrange
	ctx := context.Background()
	seeded := s.seed(ctx, domain.Villa{Name: "Sunset", Rate: 100})

	unit := NewVillaRepository(s.db)
	s.Require().NoError(unit.DeleteVilla(ctx, seeded.ID))
	s.Require().NoError(unit.SaveChanges(ctx))

	// Act: deleting again stages nothing and commits cleanly
	again := NewVillaRepository(s.db)
	s.Require().NoError(again.DeleteVilla(ctx, seeded.ID))
	s.Require().NoError(again.SaveChanges(ctx))

	exists, err := NewVillaRepository(s.db).VillaExists(ctx, seeded.ID)
	s.NoError(err)
	s.False(exists)
}
