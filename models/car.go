package models

import "time"

// Car represents a single car listing.
type Car struct {
	// ID is the opaque unique identifier of the car, assigned at creation.
	ID string `json:"_id,omitempty"`

	// Vendor is the manufacturer name. Filterable by case-insensitive
	// substring match.
	Vendor string `json:"vendor" validate:"required"`

	// Speed is the top speed of the car.
	Speed Number `json:"speed" validate:"gte=0"`

	// Price is the listing price. Filterable by upper bound.
	Price Number `json:"price" validate:"gte=0"`

	// Owner is a snapshot of the user who created the car, taken at
	// creation time. It is not live-linked to the users table and decides
	// who may mutate or remove the car (administrators excepted).
	Owner Identity `json:"owner"`

	// CreatedAt orders listings by insertion. Not part of the wire format.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Car model.
func (c Car) TableName() string {
	return "cars"
}

// CarFilter restricts the result of a car listing query. Both filters are
// optional and independent; the zero value means "no restriction".
type CarFilter struct {
	// Txt filters by case-insensitive substring match on Vendor.
	Txt string

	// MaxPrice keeps only cars with Price <= MaxPrice. It is consulted
	// only when ByPrice is true, so an absent or unparsable maxPrice
	// query parameter degrades to "no price filter" instead of an error.
	MaxPrice float64
	ByPrice  bool
}
