package model

import "time"

// FavoriteDrinkModel mirrors the 'favorite_drinks' table. The composite
// unique index on (user_id, drink_id) guarantees a user cannot hold the same
// external drink twice, even under concurrent identical requests.
type FavoriteDrinkModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     int64  `gorm:"not null;uniqueIndex:idx_favorite_user_drink"`
	DrinkID    string `gorm:"type:varchar(50);not null;uniqueIndex:idx_favorite_user_drink"`
	DrinkName  string `gorm:"type:varchar(100);not null"`
	DrinkThumb string `gorm:"type:varchar(200)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteDrinkModel) TableName() string {
	return "favorite_drinks"
}
