package model

import "gorm.io/gorm"

// AutoMigrate creates or updates every table in the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&House{},
		&Admin{},
		&Captain{},
		&Member{},
		&Advisor{},
		&Achievement{},
		&Announcement{},
		&PointTransaction{},
	)
}
