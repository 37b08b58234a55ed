package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/places-directory/internal/domain"
)

func TestCategoryDisplayLabel(t *testing.T) {
	assert.Equal(t, "DIGITAL_FACTORIES", domain.CategoryDigitalFactory.DisplayLabel())
	assert.Equal(t, "ROBOSMITHS", domain.CategoryRobosmith.DisplayLabel())
	assert.Equal(t, "TECHNO_FARMERS", domain.CategoryTechnoFarmer.DisplayLabel())

	// Unknown values pass through unchanged
	assert.Equal(t, "SOMETHING_ELSE", domain.Category("SOMETHING_ELSE").DisplayLabel())
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, domain.CategoryDigitalFactory.Valid())
	assert.True(t, domain.CategoryRobosmith.Valid())
	assert.True(t, domain.CategoryTechnoFarmer.Valid())
	assert.False(t, domain.Category("").Valid())
	assert.False(t, domain.Category("DIGITAL_FACTORIES").Valid())
}

func TestOwnerInfoVariants(t *testing.T) {
	company := domain.CompanyOwner{Name: "RoboWorks GmbH", Website: "https://roboworks.example.com", Email: "contact@roboworks.example.com"}
	assert.Equal(t, domain.OwnerTypeCompany, company.OwnerType())
	assert.Equal(t, "RoboWorks GmbH", company.DisplayName())
	assert.Equal(t, "contact@roboworks.example.com", company.ContactEmail())

	individual := domain.IndividualOwner{FirstName: "Greta", LastName: "Felder", Email: "greta@example.com"}
	assert.Equal(t, domain.OwnerTypeIndividual, individual.OwnerType())
	assert.Equal(t, "Greta Felder", individual.DisplayName())
}
