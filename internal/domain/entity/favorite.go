package entity

import "time"

// Favorite links one user to one externally sourced catalog drink.
// The (UserID, DrinkID) pair is unique; the owner is immutable after creation.
type Favorite struct {
	ID         int64     // Numeric primary key assigned by the database.
	UserID     int64     // Owning user; set on creation and never changed.
	DrinkID    string    // Opaque external catalog identifier.
	DrinkName  string    // Display name captured at the time of saving.
	DrinkThumb string    // Optional thumbnail URL from the catalog.
	CreatedAt  time.Time // Timestamp of when the favorite was saved.
}
