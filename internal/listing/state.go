package listing

// State tracks the filter and current page of one list view.
// Changing the filter sends the view back to page 1.
type State[F comparable] struct {
	Filter F
	Page   int
}

// NewState starts a view on page 1 with filter f.
func NewState[F comparable](f F) *State[F] {
	return &State[F]{Filter: f, Page: 1}
}

// SetFilter replaces the filter; any change resets the page to 1.
func (s *State[F]) SetFilter(f F) {
	if f == s.Filter {
		return
	}
	s.Filter = f
	s.Page = 1
}

// SetPage moves to page p. Values below 1 become 1; the upper bound is
// applied by Paginate.
func (s *State[F]) SetPage(p int) {
	s.Page = max(p, 1)
}
