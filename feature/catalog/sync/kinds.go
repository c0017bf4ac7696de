package sync

import (
	"travel-admin/feature/catalog/models"
)

// Collection is one level of an ownership tree.
type Collection struct {
	// Name is the payload key of the collection, e.g. "itineraries".
	Name string
	// Field is the struct field on the owner used for preloading, e.g. "Itineraries".
	Field string
	// Model is a pointer to a zero row of the collection.
	Model models.Row
	// OwnerKey is the column holding the owner's id.
	OwnerKey string
	// Children are collections owned by rows of this collection.
	Children []Collection
}

// ReferenceSet is a many-to-many link from a parent to shared rows keyed by name.
type ReferenceSet struct {
	// Name is the payload key, e.g. "categories".
	Name string
	// Field is the struct field on the parent used for preloading.
	Field string
	// Model is a pointer to a zero shared row. Shared rows carry a unique Name.
	Model any
	// Join is a pointer to a zero membership row.
	Join any
	// OwnerKey and RefKey are the membership columns.
	OwnerKey string
	RefKey   string
	// Order is the column shared rows are listed by.
	Order string
}

// Kind describes a parent entity: its table, ownership tree and reference sets.
type Kind struct {
	// Name is used in operation names and logs.
	Name string
	// Model is a pointer to a zero parent row.
	Model any
	// IDFrom names the column whose slug becomes the id. Empty means a random uuid.
	IDFrom      string
	Collections []Collection
	References  []ReferenceSet
}

// Preloads returns the association paths to materialize, parents before children.
func (k Kind) Preloads() []string {
	var paths []string
	var walk func(prefix string, cols []Collection)
	walk = func(prefix string, cols []Collection) {
		for _, c := range cols {
			p := prefix + c.Field
			paths = append(paths, p)
			walk(p+".", c.Children)
		}
	}
	walk("", k.Collections)
	return paths
}

// Walk calls fn for every collection of the tree with the collection that owns it.
// Top level collections have a nil owner.
func (k Kind) Walk(fn func(owner, c *Collection)) {
	var walk func(owner *Collection, cols []Collection)
	walk = func(owner *Collection, cols []Collection) {
		for i := range cols {
			fn(owner, &cols[i])
			walk(&cols[i], cols[i].Children)
		}
	}
	walk(nil, k.Collections)
}

var (
	// Packages owns itineraries (which own features), inclusions and exclusions.
	Packages = Kind{
		Name:  "package",
		Model: &models.Package{},
		Collections: []Collection{
			{
				Name: "itineraries", Field: "Itineraries", Model: &models.Itinerary{}, OwnerKey: "package_id",
				Children: []Collection{
					{Name: "features", Field: "Features", Model: &models.Feature{}, OwnerKey: "itinerary_id"},
				},
			},
			{Name: "inclusions", Field: "Inclusions", Model: &models.Inclusion{}, OwnerKey: "package_id"},
			{Name: "exclusions", Field: "Exclusions", Model: &models.Exclusion{}, OwnerKey: "package_id"},
		},
	}

	Destinations = Kind{
		Name:  "destination",
		Model: &models.Destination{},
		Collections: []Collection{
			{Name: "faqs", Field: "FAQs", Model: &models.FAQ{}, OwnerKey: "destination_id"},
			{Name: "places", Field: "Places", Model: &models.Place{}, OwnerKey: "destination_id"},
		},
	}

	// Blogs are keyed by the slug of their title and link to shared categories.
	Blogs = Kind{
		Name:   "blog",
		Model:  &models.Blog{},
		IDFrom: "title",
		Collections: []Collection{
			{Name: "images", Field: "Images", Model: &models.BlogImage{}, OwnerKey: "blog_id"},
		},
		References: []ReferenceSet{
			{
				Name: "categories", Field: "Categories",
				Model: &models.Category{}, Join: &models.BlogCategory{},
				OwnerKey: "blog_id", RefKey: "category_id", Order: "name",
			},
		},
	}

	Testimonials = Kind{
		Name:  "testimonial",
		Model: &models.Testimonial{},
	}
)

// Kinds lists every parent kind.
func Kinds() []Kind {
	return []Kind{Packages, Destinations, Blogs, Testimonials}
}
