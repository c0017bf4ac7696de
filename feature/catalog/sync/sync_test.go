package sync

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"travel-admin/core/database"
	"travel-admin/core/errs"
	"travel-admin/core/slug"
	"travel-admin/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func ptr[T any](v T) *T { return &v }

func items(values ...string) []models.ItemInput {
	out := make([]models.ItemInput, len(values))
	for i, v := range values {
		out[i] = models.ItemInput{Item: v}
	}
	return out
}

func count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

type dayView struct {
	Day      int
	Title    string
	Features []string
}

func days(p *models.Package) []dayView {
	out := make([]dayView, 0, len(p.Itineraries))
	for _, it := range p.Itineraries {
		v := dayView{Day: it.DayNumber, Title: it.Title, Features: []string{}}
		for _, f := range it.Features {
			v.Features = append(v.Features, f.Item)
		}
		out = append(out, v)
	}
	return out
}

func TestCreatePackageWithNestedFeatures(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)

	pkg, err := s.Create(context.Background(), &models.PackageInput{
		Name: ptr("Goa Trip"),
		Itineraries: &[]models.ItineraryInput{
			{DayNumber: 1, Features: items("Breakfast")},
		},
	})
	require.NoError(t, err)

	require.Len(t, pkg.Itineraries, 1)
	require.Len(t, pkg.Itineraries[0].Features, 1)
	assert.Equal(t, "Breakfast", pkg.Itineraries[0].Features[0].Item)
	assert.Equal(t, pkg.ID, pkg.Itineraries[0].PackageID)
	assert.Empty(t, pkg.Inclusions)
	assert.Empty(t, pkg.Exclusions)
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)

	_, err := s.Create(context.Background(), &models.PackageInput{
		Itineraries: &[]models.ItineraryInput{{DayNumber: 1}},
	})
	assert.True(t, errs.Is(err, errs.ValidationFailed))
	assert.Zero(t, count(t, db, &models.Package{}, ""))
	assert.Zero(t, count(t, db, &models.Itinerary{}, ""))
}

func TestCreatePreservesCallerOrder(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)

	pkg, err := s.Create(context.Background(), &models.PackageInput{
		Name: ptr("Kerala"),
		Itineraries: &[]models.ItineraryInput{
			{DayNumber: 3, Title: "Backwaters", Features: items("Houseboat", "Dinner")},
			{DayNumber: 1, Title: "Arrival"},
			{DayNumber: 2, Title: "Munnar", Features: items("Tea", "Tea")},
		},
		Inclusions: &[]models.ItemInput{{Item: "Hotel"}, {Item: "Airport transfer"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []dayView{
		{Day: 3, Title: "Backwaters", Features: []string{"Houseboat", "Dinner"}},
		{Day: 1, Title: "Arrival", Features: []string{}},
		{Day: 2, Title: "Munnar", Features: []string{"Tea", "Tea"}},
	}, days(pkg))
	require.Len(t, pkg.Inclusions, 2)
	assert.Equal(t, "Hotel", pkg.Inclusions[0].Item)
	assert.Equal(t, "Airport transfer", pkg.Inclusions[1].Item)
}

func TestUpdateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)
	ctx := context.Background()

	pkg, err := s.Create(ctx, &models.PackageInput{Name: ptr("Goa")})
	require.NoError(t, err)

	payload := &models.PackageInput{
		Itineraries: &[]models.ItineraryInput{
			{DayNumber: 1, Title: "Beach", Features: items("Breakfast", "Snorkelling")},
			{DayNumber: 2, Title: "Fort", Features: items("Lunch")},
		},
		Exclusions: &[]models.ItemInput{{Item: "Flights"}},
	}

	once, err := s.Update(ctx, pkg.ID, payload)
	require.NoError(t, err)
	twice, err := s.Update(ctx, pkg.ID, payload)
	require.NoError(t, err)

	assert.Equal(t, days(once), days(twice))
	assert.Len(t, twice.Exclusions, 1)
	assert.EqualValues(t, 2, count(t, db, &models.Itinerary{}, "package_id = ?", pkg.ID))
	assert.EqualValues(t, 3, count(t, db, &models.Feature{}, ""))
}

func TestUpdateEmptyCollectionClears(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)
	ctx := context.Background()

	pkg, err := s.Create(ctx, &models.PackageInput{
		Name: ptr("Rajasthan"),
		Itineraries: &[]models.ItineraryInput{
			{DayNumber: 1, Features: items("Camel ride")},
			{DayNumber: 2},
			{DayNumber: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, pkg.Itineraries, 3)

	updated, err := s.Update(ctx, pkg.ID, &models.PackageInput{Itineraries: &[]models.ItineraryInput{}})
	require.NoError(t, err)

	assert.Empty(t, updated.Itineraries)
	assert.Zero(t, count(t, db, &models.Itinerary{}, ""))
	assert.Zero(t, count(t, db, &models.Feature{}, ""))
}

func TestUpdateLeavesAbsentFieldsUntouched(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)
	ctx := context.Background()

	pkg, err := s.Create(ctx, &models.PackageInput{
		Name:        ptr("Goa"),
		Location:    ptr("India"),
		Price:       ptr(499.0),
		Itineraries: &[]models.ItineraryInput{{DayNumber: 1}},
		Inclusions:  &[]models.ItemInput{{Item: "Hotel"}},
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, pkg.ID, &models.PackageInput{Price: ptr(549.0)})
	require.NoError(t, err)

	assert.Equal(t, "Goa", updated.Name)
	assert.Equal(t, "India", updated.Location)
	assert.Equal(t, 549.0, updated.Price)
	assert.Len(t, updated.Itineraries, 1)
	assert.Len(t, updated.Inclusions, 1)
	assert.False(t, updated.UpdatedAt.Before(pkg.UpdatedAt))
}

func TestUpdateMissingParent(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)

	_, err := s.Update(context.Background(), "missing", &models.PackageInput{
		Name:        ptr("X"),
		Itineraries: &[]models.ItineraryInput{{DayNumber: 1, Features: items("Breakfast")}},
	})
	assert.True(t, errs.Is(err, errs.NotFound))
	assert.Zero(t, count(t, db, &models.Package{}, ""))
	assert.Zero(t, count(t, db, &models.Itinerary{}, ""))
	assert.Zero(t, count(t, db, &models.Feature{}, ""))
}

func TestDeleteRemovesWholeTree(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)
	ctx := context.Background()

	keep, err := s.Create(ctx, &models.PackageInput{
		Name:        ptr("Keep"),
		Itineraries: &[]models.ItineraryInput{{DayNumber: 1, Features: items("Stay")}},
	})
	require.NoError(t, err)

	pkg, err := s.Create(ctx, &models.PackageInput{
		Name: ptr("Drop"),
		Itineraries: &[]models.ItineraryInput{
			{DayNumber: 1, Features: items("A", "B")},
			{DayNumber: 2, Features: items("C", "D")},
		},
		Inclusions: &[]models.ItemInput{{Item: "Hotel"}},
		Exclusions: &[]models.ItemInput{{Item: "Visa"}},
	})
	require.NoError(t, err)

	var featureIDs []string
	for _, it := range pkg.Itineraries {
		for _, f := range it.Features {
			featureIDs = append(featureIDs, f.ID)
		}
	}
	require.Len(t, featureIDs, 4)

	require.NoError(t, s.Delete(ctx, pkg.ID))

	for _, id := range featureIDs {
		err := db.First(&models.Feature{}, "id = ?", id).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	}
	assert.Zero(t, count(t, db, &models.Itinerary{}, "package_id = ?", pkg.ID))
	assert.Zero(t, count(t, db, &models.Inclusion{}, "package_id = ?", pkg.ID))
	assert.Zero(t, count(t, db, &models.Exclusion{}, "package_id = ?", pkg.ID))

	_, err = s.Get(ctx, pkg.ID)
	assert.True(t, errs.Is(err, errs.NotFound))

	kept, err := s.Get(ctx, keep.ID)
	require.NoError(t, err)
	require.Len(t, kept.Itineraries, 1)
	assert.Len(t, kept.Itineraries[0].Features, 1)

	err = s.Delete(ctx, pkg.ID)
	assert.True(t, errs.Is(err, errs.NotFound))
}

func TestFailureRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	injected := errors.New("injected failure")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_features", func(tx *gorm.DB) {
		if tx.Statement.Table == "features" {
			tx.AddError(injected)
		}
	}))
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)

	_, err := s.Create(context.Background(), &models.PackageInput{
		Name:        ptr("Goa"),
		Itineraries: &[]models.ItineraryInput{{DayNumber: 1, Features: items("Breakfast")}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, injected)
	assert.Equal(t, errs.StorageUnavailable, errs.KindOf(err))

	assert.Zero(t, count(t, db, &models.Package{}, ""))
	assert.Zero(t, count(t, db, &models.Itinerary{}, ""))
	assert.Zero(t, count(t, db, &models.Feature{}, ""))
}

func TestBlogIDIsSlugOfTitle(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Blog](db, Blogs, slug.MustNew(slug.Config{}), nil)
	ctx := context.Background()

	blog, err := s.Create(ctx, &models.BlogInput{
		Title:  ptr("Goa Trip!"),
		Images: &[]string{"https://cdn/a.jpg", "  ", "https://cdn/b.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "goa-trip-", blog.ID)
	require.Len(t, blog.Images, 2)
	assert.Equal(t, "https://cdn/a.jpg", blog.Images[0].URL)
	assert.Equal(t, "https://cdn/b.jpg", blog.Images[1].URL)

	_, err = s.Create(ctx, &models.BlogInput{Title: ptr("GOA TRIP!")})
	assert.True(t, errs.Is(err, errs.ValidationFailed))

	renamed, err := s.Update(ctx, blog.ID, &models.BlogInput{Title: ptr("Goa in Monsoon")})
	require.NoError(t, err)
	assert.Equal(t, "goa-trip-", renamed.ID)
	assert.Equal(t, "Goa in Monsoon", renamed.Title)
}

func TestBlogCategoriesDeduplicated(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Blog](db, Blogs, nil, nil)
	ctx := context.Background()

	blog, err := s.Create(ctx, &models.BlogInput{Title: ptr("Hill Stations")})
	require.NoError(t, err)

	updated, err := s.Update(ctx, blog.ID, &models.BlogInput{Categories: &[]string{"Adventure", "Adventure"}})
	require.NoError(t, err)

	require.Len(t, updated.Categories, 1)
	assert.Equal(t, "Adventure", updated.Categories[0].Name)
	assert.EqualValues(t, 1, count(t, db, &models.Category{}, "name = ?", "Adventure"))
	assert.EqualValues(t, 1, count(t, db, &models.BlogCategory{}, "blog_id = ?", blog.ID))
}

func TestBlogCategoriesClearThenSet(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Blog](db, Blogs, nil, nil)
	ctx := context.Background()

	blog, err := s.Create(ctx, &models.BlogInput{
		Title:      ptr("Beaches"),
		Categories: &[]string{"Travel", " Beach ", ""},
	})
	require.NoError(t, err)
	require.Len(t, blog.Categories, 2)
	assert.Equal(t, "Beach", blog.Categories[0].Name)
	assert.Equal(t, "Travel", blog.Categories[1].Name)

	updated, err := s.Update(ctx, blog.ID, &models.BlogInput{Categories: &[]string{"Beach"}})
	require.NoError(t, err)
	require.Len(t, updated.Categories, 1)
	assert.Equal(t, "Beach", updated.Categories[0].Name)

	// absent references are kept
	updated, err = s.Update(ctx, blog.ID, &models.BlogInput{Author: ptr("Asha")})
	require.NoError(t, err)
	assert.Len(t, updated.Categories, 1)

	require.NoError(t, s.Delete(ctx, blog.ID))
	assert.Zero(t, count(t, db, &models.BlogCategory{}, ""))
	assert.EqualValues(t, 2, count(t, db, &models.Category{}, ""))
}

func TestConcurrentCategoryResolution(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Blog](db, Blogs, nil, nil)

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, err := s.Create(ctx, &models.BlogInput{
				Title:      ptr(fmt.Sprintf("Post %d", i)),
				Categories: &[]string{"Adventure", "Beach"},
			})
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 1, count(t, db, &models.Category{}, "name = ?", "Adventure"))
	assert.EqualValues(t, 1, count(t, db, &models.Category{}, "name = ?", "Beach"))
	assert.EqualValues(t, 16, count(t, db, &models.BlogCategory{}, ""))
}

func TestDestinationCollections(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Destination](db, Destinations, nil, nil)
	ctx := context.Background()

	dest, err := s.Create(ctx, &models.DestinationInput{
		Name:   ptr("Bali"),
		Tag:    ptr("Popular"),
		FAQs:   &[]models.FAQInput{{Question: "Visa?", Answer: "On arrival"}},
		Places: &[]models.PlaceInput{{Name: "Ubud"}, {Name: "Uluwatu"}},
	})
	require.NoError(t, err)
	require.NotNil(t, dest.Tag)
	assert.Equal(t, "Popular", *dest.Tag)
	assert.Nil(t, dest.Visa)
	assert.Len(t, dest.FAQs, 1)
	require.Len(t, dest.Places, 2)
	assert.Equal(t, "Ubud", dest.Places[0].Name)

	updated, err := s.Update(ctx, dest.ID, &models.DestinationInput{
		FAQs: &[]models.FAQInput{{Question: "Currency?", Answer: "IDR"}, {Question: "Best time?", Answer: "May"}},
	})
	require.NoError(t, err)
	require.Len(t, updated.FAQs, 2)
	assert.Equal(t, "Currency?", updated.FAQs[0].Question)
	assert.Len(t, updated.Places, 2)
}

func TestTestimonialLifecycle(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Testimonial](db, Testimonials, nil, nil)
	ctx := context.Background()

	_, err := s.Create(ctx, &models.TestimonialInput{CustomerName: ptr("Ravi"), Rating: ptr(6)})
	assert.True(t, errs.Is(err, errs.ValidationFailed))

	tm, err := s.Create(ctx, &models.TestimonialInput{CustomerName: ptr("Ravi"), Feedback: ptr("Great trip")})
	require.NoError(t, err)
	assert.Equal(t, 5, tm.Rating)
	assert.Nil(t, tm.Image)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.Delete(ctx, tm.ID))
	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNoOrphansAcrossOperations(t *testing.T) {
	db := newTestDB(t)
	s := NewSynchronizer[models.Package](db, Packages, nil, nil)
	ctx := context.Background()

	a, err := s.Create(ctx, &models.PackageInput{Name: ptr("A"), Itineraries: &[]models.ItineraryInput{{DayNumber: 1, Features: items("x")}}})
	require.NoError(t, err)
	b, err := s.Create(ctx, &models.PackageInput{Name: ptr("B"), Itineraries: &[]models.ItineraryInput{{DayNumber: 1, Features: items("y", "z")}}})
	require.NoError(t, err)

	_, err = s.Update(ctx, a.ID, &models.PackageInput{Itineraries: &[]models.ItineraryInput{{DayNumber: 2, Features: items("w")}}})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, b.ID))

	assert.Zero(t, count(t, db, &models.Itinerary{}, "package_id NOT IN (?)", db.Model(&models.Package{}).Select("id")))
	assert.Zero(t, count(t, db, &models.Feature{}, "itinerary_id NOT IN (?)", db.Model(&models.Itinerary{}).Select("id")))
	assert.EqualValues(t, 1, count(t, db, &models.Feature{}, ""))
}
