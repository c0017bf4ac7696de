package models

import (
	"fmt"

	"gorm.io/gorm"
)

// All lists every catalog model in dependency order.
func All() []any {
	return []any{
		&Package{}, &Itinerary{}, &Feature{}, &Inclusion{}, &Exclusion{},
		&Destination{}, &FAQ{}, &Place{},
		&Category{}, &Blog{}, &BlogImage{}, &BlogCategory{},
		&Testimonial{},
	}
}

// Migrate creates or updates the catalog schema.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Blog{}, "Categories", &BlogCategory{}); err != nil {
		return fmt.Errorf("failed to set up blog_categories: %w", err)
	}
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}
