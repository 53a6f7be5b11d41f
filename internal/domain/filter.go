package domain

// TourFilter restricts a tour collection read with equality predicates.
// Nil fields match everything.
type TourFilter struct {
	Status     *TourStatus
	CategoryID *string
	Featured   *bool
}
