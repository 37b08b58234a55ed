package dto

// CreateCompanyRequest creates a company together with its place.
type CreateCompanyRequest struct {
	Name    string     `json:"name" validate:"required"`
	Website string     `json:"website" validate:"required,url"`
	Email   string     `json:"email" validate:"required,email"`
	Place   PlaceInput `json:"place" validate:"required"`
}

// UpdateCompanyRequest mutates owner fields only; the linked place is
// never touched by an owner update.
type UpdateCompanyRequest struct {
	Name    string `json:"name" validate:"required"`
	Website string `json:"website" validate:"required,url"`
	Email   string `json:"email" validate:"required,email"`
}

// CreateIndividualRequest creates an individual together with its place.
type CreateIndividualRequest struct {
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Place     PlaceInput `json:"place" validate:"required"`
}

type UpdateIndividualRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// OwnerCreatedResponse reports the generated ids of an owner create.
type OwnerCreatedResponse struct {
	ID      int64 `json:"id"`
	PlaceID int64 `json:"place_id"`
}
