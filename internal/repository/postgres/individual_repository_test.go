package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/repository/postgres/testhelpers"
)

// IndividualRepositorySuite tests the individual repository with real database
type IndividualRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.IndividualRepository
	ctx    context.Context
}

func (s *IndividualRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewIndividualRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *IndividualRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *IndividualRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.NoError(s.testDB.Cleanup(s.ctx))
}

func (s *IndividualRepositorySuite) newIndividual() (*domain.Individual, *domain.Place) {
	individual := &domain.Individual{
		FirstName: "Greta",
		LastName:  "Felder",
		Email:     "greta.felder@example.com",
	}
	place := &domain.Place{
		Lat:      52.0456,
		Lng:      8.4921,
		Title:    "Felder Vertical Farm",
		Address:  "Am Stadtholz 24, 33609 Bielefeld",
		Category: domain.CategoryTechnoFarmer,
	}
	return individual, place
}

func (s *IndividualRepositorySuite) TestCreateWithPlace() {
	individual, place := s.newIndividual()

	err := s.repo.CreateWithPlace(s.ctx, individual, place)
	s.NoError(err)
	s.NotZero(individual.ID)
	s.NotZero(place.ID)
	s.Equal(place.ID, individual.PlaceID)
}

func (s *IndividualRepositorySuite) TestUpdate() {
	individual, place := s.newIndividual()
	s.NoError(s.repo.CreateWithPlace(s.ctx, individual, place))

	individual.LastName = "Felder-Brandt"
	s.NoError(s.repo.Update(s.ctx, individual))

	got, err := s.repo.GetByID(s.ctx, individual.ID)
	s.NoError(err)
	s.Equal("Felder-Brandt", got.LastName)
	s.Equal(place.ID, got.PlaceID)
}

func (s *IndividualRepositorySuite) TestDeleteWithPlace() {
	individual, place := s.newIndividual()
	s.NoError(s.repo.CreateWithPlace(s.ctx, individual, place))

	placeID, err := s.repo.DeleteWithPlace(s.ctx, individual.ID)
	s.NoError(err)
	s.Equal(place.ID, placeID)

	var count int
	s.NoError(s.testDB.DB.Get(&count, "SELECT COUNT(*) FROM places WHERE id = $1", place.ID))
	s.Zero(count)
}

func (s *IndividualRepositorySuite) TestNotFound() {
	_, err := s.repo.GetByID(s.ctx, 999999)
	s.ErrorIs(err, errors.ErrIndividualNotFound)

	_, err = s.repo.DeleteWithPlace(s.ctx, 999999)
	s.ErrorIs(err, errors.ErrIndividualNotFound)
}

func TestIndividualRepositorySuite(t *testing.T) {
	suite.Run(t, new(IndividualRepositorySuite))
}
