package provider

// SortKey orders search results. Closed enumeration.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPrice      SortKey = "price"
	SortRating     SortKey = "rating"
	SortExperience SortKey = "experience"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortRelevance, SortPrice, SortRating, SortExperience:
		return true
	}
	return false
}

// Criteria is the transient, request-scoped description of a catalog
// search. Zero values mean "criterion inactive".
type Criteria struct {
	// Procedure narrows by specialty, case-insensitive substring match
	Procedure string
	// Location narrows by location string, case-insensitive substring match
	Location string
	// PriceMin/PriceMax keep providers with any procedure priced in range;
	// PriceMax == 0 leaves the upper bound open
	PriceMin int64
	PriceMax int64
	// MinRating keeps providers rated at or above the threshold
	MinRating float64
	// Languages keeps providers speaking every listed language
	Languages []string
	// Specialties keeps providers whose specialty is in the set
	Specialties []string
	// Sort selects the result order; empty means SortRelevance
	Sort SortKey
}

// IsZero reports whether no narrowing criterion is active.
func (c Criteria) IsZero() bool {
	return c.Procedure == "" && c.Location == "" &&
		c.PriceMin == 0 && c.PriceMax == 0 && c.MinRating == 0 &&
		len(c.Languages) == 0 && len(c.Specialties) == 0
}
