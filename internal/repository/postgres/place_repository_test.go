package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/repository/postgres/testhelpers"
)

// PlaceRepositorySuite tests the place repository with real database
type PlaceRepositorySuite struct {
	suite.Suite
	testDB      *testhelpers.TestDB
	repo        repository.PlaceRepository
	companies   repository.CompanyRepository
	individuals repository.IndividualRepository
	ctx         context.Context
}

func (s *PlaceRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewPlaceRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.companies = testhelpers.NewCompanyRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.individuals = testhelpers.NewIndividualRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *PlaceRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *PlaceRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.NoError(s.testDB.Cleanup(s.ctx))
}

// seedDirectory creates a company-owned place, an individual-owned place
// and an orphaned place.
func (s *PlaceRepositorySuite) seedDirectory() (companyPlaceID, individualPlaceID, orphanPlaceID int64) {
	company := &domain.Company{Name: "RoboWorks GmbH", Website: "https://roboworks.example.com", Email: "contact@roboworks.example.com"}
	companyPlace := &domain.Place{Lat: 52.03, Lng: 8.53, Title: "Assembly Hall", Address: "Detmolder Str. 10", Category: domain.CategoryRobosmith}
	s.NoError(s.companies.CreateWithPlace(s.ctx, company, companyPlace))

	individual := &domain.Individual{FirstName: "Greta", LastName: "Felder", Email: "greta@example.com"}
	individualPlace := &domain.Place{Lat: 52.04, Lng: 8.49, Title: "Vertical Farm", Address: "Am Stadtholz 24", Category: domain.CategoryTechnoFarmer}
	s.NoError(s.individuals.CreateWithPlace(s.ctx, individual, individualPlace))

	err := s.testDB.DB.QueryRowContext(s.ctx, `
		INSERT INTO places (lat, lng, title, address, category)
		VALUES (52.02, 8.55, 'Abandoned Workshop', 'Oelmühlenstr. 31', 'DIGITAL_FACTORY')
		RETURNING id`,
	).Scan(&orphanPlaceID)
	s.NoError(err)

	return companyPlace.ID, individualPlace.ID, orphanPlaceID
}

func (s *PlaceRepositorySuite) TestListWithOwners() {
	companyPlaceID, individualPlaceID, orphanPlaceID := s.seedDirectory()

	rows, err := s.repo.ListWithOwners(s.ctx, nil)
	s.NoError(err)
	s.Len(rows, 3)

	byID := make(map[int64]*domain.PlaceWithOwner)
	for _, row := range rows {
		byID[row.Place.ID] = row
	}

	companyRow := byID[companyPlaceID]
	s.Require().NotNil(companyRow)
	owner, ok := companyRow.Owner.(domain.CompanyOwner)
	s.True(ok)
	s.Equal("RoboWorks GmbH", owner.Name)
	s.Equal("https://roboworks.example.com", owner.Website)

	individualRow := byID[individualPlaceID]
	s.Require().NotNil(individualRow)
	indivOwner, ok := individualRow.Owner.(domain.IndividualOwner)
	s.True(ok)
	s.Equal("Greta", indivOwner.FirstName)
	s.Equal("Felder", indivOwner.LastName)

	orphanRow := byID[orphanPlaceID]
	s.Require().NotNil(orphanRow)
	s.Nil(orphanRow.Owner)
}

func (s *PlaceRepositorySuite) TestListWithOwners_OrderedByID() {
	s.seedDirectory()

	rows, err := s.repo.ListWithOwners(s.ctx, nil)
	s.NoError(err)

	for i := 1; i < len(rows); i++ {
		s.Less(rows[i-1].Place.ID, rows[i].Place.ID)
	}
}

func (s *PlaceRepositorySuite) TestListWithOwners_CategoryFilter() {
	_, individualPlaceID, _ := s.seedDirectory()

	rows, err := s.repo.ListWithOwners(s.ctx, []string{"TECHNO_FARMER"})
	s.NoError(err)
	s.Len(rows, 1)
	s.Equal(individualPlaceID, rows[0].Place.ID)

	rows, err = s.repo.ListWithOwners(s.ctx, []string{"TECHNO_FARMER", "DIGITAL_FACTORY"})
	s.NoError(err)
	s.Len(rows, 2)
}

func (s *PlaceRepositorySuite) TestListWithOwners_Empty() {
	rows, err := s.repo.ListWithOwners(s.ctx, nil)
	s.NoError(err)
	s.Empty(rows)
}

func (s *PlaceRepositorySuite) TestClearAll() {
	s.seedDirectory()

	s.NoError(s.repo.ClearAll(s.ctx))

	var count int
	for _, table := range []string{"places", "companies", "individuals"} {
		s.NoError(s.testDB.DB.Get(&count, "SELECT COUNT(*) FROM "+table))
		s.Zero(count, "table %s not empty", table)
	}
}

func TestPlaceRepositorySuite(t *testing.T) {
	suite.Run(t, new(PlaceRepositorySuite))
}
