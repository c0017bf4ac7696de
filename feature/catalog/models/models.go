package models

import (
	"time"

	"github.com/google/uuid"
)

// Row is an owned child row. Rows are only ever written by the replacer.
type Row interface {
	// Adopt tags the row with its owner and caller order, assigning a primary key if unset.
	Adopt(ownerID string, position int)
	// Key returns the row's primary key.
	Key() string
	// Nested returns the rows of the named nested collection owned by this row.
	Nested(collection string) []Row
}

// Package is a tour package.
type Package struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Days        int         `json:"days"`
	Nights      int         `json:"nights"`
	Price       float64     `json:"price"`
	Image       string      `gorm:"size:1024" json:"image"`
	Type        string      `gorm:"size:100" json:"type"`
	Location    string      `gorm:"size:255" json:"location"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Itineraries []Itinerary `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"itineraries"`
	Inclusions  []Inclusion `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"inclusions"`
	Exclusions  []Exclusion `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"exclusions"`
}

// Itinerary is one day of a package. It owns its features.
type Itinerary struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	PackageID   string    `gorm:"size:36;not null;index" json:"packageId"`
	Position    int       `gorm:"not null;default:0" json:"-"`
	DayNumber   int       `json:"dayNumber"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Features    []Feature `gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE" json:"features"`
}

// Feature is a highlight of one itinerary day.
type Feature struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	ItineraryID string `gorm:"size:36;not null;index" json:"itineraryId"`
	Position    int    `gorm:"not null;default:0" json:"-"`
	Item        string `gorm:"size:512" json:"item"`
}

// Inclusion is something a package price covers.
type Inclusion struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	PackageID string `gorm:"size:36;not null;index" json:"packageId"`
	Position  int    `gorm:"not null;default:0" json:"-"`
	Item      string `gorm:"size:512" json:"item"`
}

// Exclusion is something a package price does not cover.
type Exclusion struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	PackageID string `gorm:"size:36;not null;index" json:"packageId"`
	Position  int    `gorm:"not null;default:0" json:"-"`
	Item      string `gorm:"size:512" json:"item"`
}

// Destination is a country or region page.
type Destination struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Tag             *string   `gorm:"size:100" json:"tag"`
	Title           string    `gorm:"size:255" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Image           string    `gorm:"size:1024" json:"image"`
	Country         string    `gorm:"size:100" json:"country"`
	Visa            *string   `gorm:"size:255" json:"visa"`
	LanguagesSpoken *string   `gorm:"size:255" json:"languagesSpoken"`
	Currency        *string   `gorm:"size:50" json:"currency"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	FAQs            []FAQ     `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE" json:"faqs"`
	Places          []Place   `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE" json:"places"`
}

// FAQ is a question answered on a destination page.
type FAQ struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	DestinationID string `gorm:"size:36;not null;index" json:"destinationId"`
	Position      int    `gorm:"not null;default:0" json:"-"`
	Question      string `gorm:"type:text" json:"question"`
	Answer        string `gorm:"type:text" json:"answer"`
}

func (FAQ) TableName() string { return "faqs" }

// Place is a point of interest within a destination.
type Place struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	DestinationID string `gorm:"size:36;not null;index" json:"destinationId"`
	Position      int    `gorm:"not null;default:0" json:"-"`
	Name          string `gorm:"size:255" json:"name"`
	Description   string `gorm:"type:text" json:"description"`
}

// Blog is an article. Its id is the slug of its title at creation.
type Blog struct {
	ID         string      `gorm:"primaryKey;size:191" json:"id"`
	Title      string      `gorm:"size:255;not null" json:"title"`
	HTML       string      `gorm:"column:html;type:text" json:"html"`
	Author     string      `gorm:"size:255" json:"author"`
	Thumbnail  string      `gorm:"size:1024" json:"thumbnail"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Images     []BlogImage `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"images"`
	Categories []Category  `gorm:"many2many:blog_categories;constraint:OnDelete:CASCADE" json:"categories"`
}

// BlogImage is an image embedded in a blog.
type BlogImage struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	BlogID   string `gorm:"size:191;not null;index" json:"blogId"`
	Position int    `gorm:"not null;default:0" json:"-"`
	URL      string `gorm:"column:url;size:1024" json:"url"`
}

// Category is a shared reference, unique by name and never deleted by blog operations.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:191;not null;uniqueIndex" json:"name"`
}

// BlogCategory is the pure membership row between a blog and a category.
type BlogCategory struct {
	BlogID     string `gorm:"primaryKey;size:191"`
	CategoryID uint   `gorm:"primaryKey"`
}

func (BlogCategory) TableName() string { return "blog_categories" }

// Testimonial is a customer quote. It owns no collections.
type Testimonial struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CustomerName string    `gorm:"size:255;not null" json:"customerName"`
	Feedback     string    `gorm:"type:text" json:"feedback"`
	Image        *string   `gorm:"size:1024" json:"image"`
	Rating       int       `gorm:"not null;default:5" json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func (it *Itinerary) Adopt(ownerID string, position int) {
	it.ID, it.PackageID, it.Position = newID(it.ID), ownerID, position
}

func (it *Itinerary) Key() string { return it.ID }

func (it *Itinerary) Nested(collection string) []Row {
	if collection != "features" {
		return nil
	}
	rows := make([]Row, len(it.Features))
	for i := range it.Features {
		rows[i] = &it.Features[i]
	}
	return rows
}

func (f *Feature) Adopt(ownerID string, position int) {
	f.ID, f.ItineraryID, f.Position = newID(f.ID), ownerID, position
}

func (f *Feature) Key() string          { return f.ID }
func (f *Feature) Nested(string) []Row { return nil }

func (in *Inclusion) Adopt(ownerID string, position int) {
	in.ID, in.PackageID, in.Position = newID(in.ID), ownerID, position
}

func (in *Inclusion) Key() string          { return in.ID }
func (in *Inclusion) Nested(string) []Row { return nil }

func (ex *Exclusion) Adopt(ownerID string, position int) {
	ex.ID, ex.PackageID, ex.Position = newID(ex.ID), ownerID, position
}

func (ex *Exclusion) Key() string          { return ex.ID }
func (ex *Exclusion) Nested(string) []Row { return nil }

func (q *FAQ) Adopt(ownerID string, position int) {
	q.ID, q.DestinationID, q.Position = newID(q.ID), ownerID, position
}

func (q *FAQ) Key() string          { return q.ID }
func (q *FAQ) Nested(string) []Row { return nil }

func (p *Place) Adopt(ownerID string, position int) {
	p.ID, p.DestinationID, p.Position = newID(p.ID), ownerID, position
}

func (p *Place) Key() string          { return p.ID }
func (p *Place) Nested(string) []Row { return nil }

func (im *BlogImage) Adopt(ownerID string, position int) {
	im.ID, im.BlogID, im.Position = newID(im.ID), ownerID, position
}

func (im *BlogImage) Key() string          { return im.ID }
func (im *BlogImage) Nested(string) []Row { return nil }
