package entity

import "time"

type Category struct {
	ID   int64
	Name string
}

type Product struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	// Price is kept as its decimal string form end to end; no float math
	// ever touches it.
	Price       string
	Stock       int32
	IsAvailable bool
	ImageURL    string
	CreatedAt   time.Time
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID *int64
}
