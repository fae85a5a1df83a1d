package entities

import "time"

// Address is soft-deleted (Active=false) rather than removed, so sales
// created against it keep a valid reference.
type Address struct {
	ID           int64
	CustomerID   int64
	AddressLine1 string
	AddressLine2 string
	Landmark     string
	City         string
	Department   string
	Country      string
	ZipCode      string
	Primary      bool
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
