package sync

import (
	"testing"

	"travel-admin/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReplacer(t *testing.T) {
	itineraries := Packages.Collections[0]

	seed := func(t *testing.T) *gorm.DB {
		db := newTestDB(t)
		require.NoError(t, db.Create(&models.Package{ID: "p1", Name: "One"}).Error)
		require.NoError(t, db.Create(&models.Package{ID: "p2", Name: "Two"}).Error)
		return db
	}

	rows := func(days ...int) []models.Row {
		out := make([]models.Row, len(days))
		for i, d := range days {
			out[i] = &models.Itinerary{DayNumber: d, Features: []models.Feature{{Item: "a"}, {Item: "b"}}}
		}
		return out
	}

	t.Run("Replace Inserts Every Level", func(t *testing.T) {
		db := seed(t)
		var written int
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			written, err = Replacer{}.Replace(tx, itineraries, "p1", rows(2, 1))
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 6, written)

		var got []models.Itinerary
		require.NoError(t, db.Order("position").Find(&got, "package_id = ?", "p1").Error)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].DayNumber)
		assert.Equal(t, 0, got[0].Position)
		assert.Equal(t, 1, got[1].Position)

		var features []models.Feature
		require.NoError(t, db.Order("position").Find(&features, "itinerary_id = ?", got[0].ID).Error)
		require.Len(t, features, 2)
		assert.Equal(t, "a", features[0].Item)
		assert.Equal(t, "b", features[1].Item)
	})

	t.Run("Replace Only Touches Owner", func(t *testing.T) {
		db := seed(t)
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			if _, err := (Replacer{}).Replace(tx, itineraries, "p1", rows(1, 2)); err != nil {
				return err
			}
			_, err := Replacer{}.Replace(tx, itineraries, "p2", rows(1))
			return err
		}))

		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			_, err := Replacer{}.Replace(tx, itineraries, "p1", rows(7))
			return err
		}))

		assert.EqualValues(t, 1, count(t, db, &models.Itinerary{}, "package_id = ?", "p1"))
		assert.EqualValues(t, 1, count(t, db, &models.Itinerary{}, "package_id = ?", "p2"))
		assert.EqualValues(t, 4, count(t, db, &models.Feature{}, ""))
	})

	t.Run("Clear Removes Nested Rows", func(t *testing.T) {
		db := seed(t)
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			_, err := Replacer{}.Replace(tx, itineraries, "p1", rows(1, 2, 3))
			return err
		}))
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			return Replacer{}.Clear(tx, itineraries, "p1")
		}))

		assert.Zero(t, count(t, db, &models.Itinerary{}, ""))
		assert.Zero(t, count(t, db, &models.Feature{}, ""))
	})

	t.Run("Empty Input Clears", func(t *testing.T) {
		db := seed(t)
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			_, err := Replacer{}.Replace(tx, itineraries, "p1", rows(1))
			return err
		}))
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			n, err := Replacer{}.Replace(tx, itineraries, "p1", nil)
			assert.Zero(t, n)
			return err
		}))
		assert.Zero(t, count(t, db, &models.Itinerary{}, ""))
	})
}

func TestKindPreloads(t *testing.T) {
	assert.Equal(t, []string{"Itineraries", "Itineraries.Features", "Inclusions", "Exclusions"}, Packages.Preloads())
	assert.Equal(t, []string{"Images"}, Blogs.Preloads())
	assert.Empty(t, Testimonials.Preloads())

	var owners []string
	Packages.Walk(func(owner, c *Collection) {
		name := ""
		if owner != nil {
			name = owner.Name
		}
		owners = append(owners, name+">"+c.Name)
	})
	assert.Equal(t, []string{">itineraries", "itineraries>features", ">inclusions", ">exclusions"}, owners)
}
