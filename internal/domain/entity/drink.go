package entity

// Drink is an item returned by the external catalog. The core never mutates
// or caches these records beyond what a caller persists as a Favorite.
type Drink struct {
	ID        string // External catalog identifier.
	Name      string // Display name.
	Thumbnail string // Thumbnail URL, may be empty.
}

// AlcoholicType is the catalog's drink classification used by the
// filter-by-type lookup.
type AlcoholicType string

const (
	// Alcoholic filters for drinks containing alcohol.
	Alcoholic AlcoholicType = "Alcoholic"
	// NonAlcoholic filters for drinks without alcohol. The underscore form
	// is what the remote catalog expects on the wire.
	NonAlcoholic AlcoholicType = "Non_Alcoholic"
)

// Valid reports whether the type is one of the two accepted filter values.
func (t AlcoholicType) Valid() bool {
	return t == Alcoholic || t == NonAlcoholic
}
