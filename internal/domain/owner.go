package domain

import "time"

// Owner type tags as they appear in nearby results.
const (
	OwnerTypeCompany    = "company"
	OwnerTypeIndividual = "individual"
)

// OwnerInfo is the tagged variant resolved after joining a place against
// both owner tables: nil | CompanyOwner | IndividualOwner.
type OwnerInfo interface {
	OwnerType() string
	// DisplayName is the value of the "name" column in nearby results.
	DisplayName() string
	ContactEmail() string
}

type CompanyOwner struct {
	Name    string
	Website string
	Email   string
}

func (o CompanyOwner) OwnerType() string    { return OwnerTypeCompany }
func (o CompanyOwner) DisplayName() string  { return o.Name }
func (o CompanyOwner) ContactEmail() string { return o.Email }

type IndividualOwner struct {
	FirstName string
	LastName  string
	Email     string
}

func (o IndividualOwner) OwnerType() string    { return OwnerTypeIndividual }
func (o IndividualOwner) DisplayName() string  { return o.FirstName + " " + o.LastName }
func (o IndividualOwner) ContactEmail() string { return o.Email }

// Company owns exactly one place (place_id is unique).
type Company struct {
	ID        int64     `json:"id" db:"id"`
	PlaceID   int64     `json:"place_id" db:"place_id"`
	Name      string    `json:"name" db:"name"`
	Website   string    `json:"website" db:"website"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Individual owns exactly one place (place_id is unique).
type Individual struct {
	ID        int64     `json:"id" db:"id"`
	PlaceID   int64     `json:"place_id" db:"place_id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
