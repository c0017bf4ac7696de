package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Payload fields are pointers: nil means absent from the payload (left unchanged on update),
// while a present collection replaces every existing row, even when empty.

// ItemInput is a single text item. It decodes from either "text" or {"item": "text"}.
type ItemInput struct {
	Item string `json:"item"`
}

func (i *ItemInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		i.Item = s
		return nil
	}
	var obj struct {
		Item string `json:"item"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("item must be a string or an object with an item field: %w", err)
	}
	i.Item = obj.Item
	return nil
}

// ItineraryInput is one day of a package payload.
type ItineraryInput struct {
	DayNumber   int         `json:"dayNumber"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Features    []ItemInput `json:"features"`
}

// PackageInput is the create/update payload of a package.
type PackageInput struct {
	Name        *string           `json:"name"`
	Days        *int              `json:"days"`
	Nights      *int              `json:"nights"`
	Price       *float64          `json:"price"`
	Image       *string           `json:"image"`
	Type        *string           `json:"type"`
	Location    *string           `json:"location"`
	Itineraries *[]ItineraryInput `json:"itineraries"`
	Inclusions  *[]ItemInput      `json:"inclusions"`
	Exclusions  *[]ItemInput      `json:"exclusions"`
}

func (in *PackageInput) Columns() map[string]any {
	cols := make(map[string]any)
	put(cols, "name", in.Name)
	put(cols, "days", in.Days)
	put(cols, "nights", in.Nights)
	put(cols, "price", in.Price)
	put(cols, "image", in.Image)
	put(cols, "type", in.Type)
	put(cols, "location", in.Location)
	return cols
}

func (in *PackageInput) Collections() map[string][]Row {
	out := make(map[string][]Row)
	if in.Itineraries != nil {
		rows := make([]Row, 0, len(*in.Itineraries))
		for _, day := range *in.Itineraries {
			it := &Itinerary{DayNumber: day.DayNumber, Title: day.Title, Description: day.Description}
			for _, f := range day.Features {
				it.Features = append(it.Features, Feature{Item: f.Item})
			}
			rows = append(rows, it)
		}
		out["itineraries"] = rows
	}
	if in.Inclusions != nil {
		out["inclusions"] = itemRows(*in.Inclusions, func(item string) Row { return &Inclusion{Item: item} })
	}
	if in.Exclusions != nil {
		out["exclusions"] = itemRows(*in.Exclusions, func(item string) Row { return &Exclusion{Item: item} })
	}
	return out
}

func (in *PackageInput) References() map[string][]string { return nil }

func (in *PackageInput) Validate(create bool) error {
	if err := required("name", in.Name, create); err != nil {
		return err
	}
	if in.Days != nil && *in.Days < 0 {
		return errors.New("days must not be negative")
	}
	if in.Nights != nil && *in.Nights < 0 {
		return errors.New("nights must not be negative")
	}
	if in.Price != nil && *in.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

// FAQInput is a question/answer pair.
type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PlaceInput is a point of interest.
type PlaceInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DestinationInput is the create/update payload of a destination.
type DestinationInput struct {
	Name            *string       `json:"name"`
	Tag             *string       `json:"tag"`
	Title           *string       `json:"title"`
	Description     *string       `json:"description"`
	Image           *string       `json:"image"`
	Country         *string       `json:"country"`
	Visa            *string       `json:"visa"`
	LanguagesSpoken *string       `json:"languagesSpoken"`
	Currency        *string       `json:"currency"`
	FAQs            *[]FAQInput   `json:"faqs"`
	Places          *[]PlaceInput `json:"places"`
}

func (in *DestinationInput) Columns() map[string]any {
	cols := make(map[string]any)
	put(cols, "name", in.Name)
	put(cols, "tag", in.Tag)
	put(cols, "title", in.Title)
	put(cols, "description", in.Description)
	put(cols, "image", in.Image)
	put(cols, "country", in.Country)
	put(cols, "visa", in.Visa)
	put(cols, "languages_spoken", in.LanguagesSpoken)
	put(cols, "currency", in.Currency)
	return cols
}

func (in *DestinationInput) Collections() map[string][]Row {
	out := make(map[string][]Row)
	if in.FAQs != nil {
		rows := make([]Row, 0, len(*in.FAQs))
		for _, f := range *in.FAQs {
			rows = append(rows, &FAQ{Question: f.Question, Answer: f.Answer})
		}
		out["faqs"] = rows
	}
	if in.Places != nil {
		rows := make([]Row, 0, len(*in.Places))
		for _, p := range *in.Places {
			rows = append(rows, &Place{Name: p.Name, Description: p.Description})
		}
		out["places"] = rows
	}
	return out
}

func (in *DestinationInput) References() map[string][]string { return nil }

func (in *DestinationInput) Validate(create bool) error {
	return required("name", in.Name, create)
}

// BlogInput is the create/update payload of a blog.
type BlogInput struct {
	Title      *string   `json:"title"`
	HTML       *string   `json:"html"`
	Author     *string   `json:"author"`
	Thumbnail  *string   `json:"thumbnail"`
	Images     *[]string `json:"images"`
	Categories *[]string `json:"categories"`
}

func (in *BlogInput) Columns() map[string]any {
	cols := make(map[string]any)
	put(cols, "title", in.Title)
	put(cols, "html", in.HTML)
	put(cols, "author", in.Author)
	put(cols, "thumbnail", in.Thumbnail)
	return cols
}

// Collections drops blank image URLs.
func (in *BlogInput) Collections() map[string][]Row {
	out := make(map[string][]Row)
	if in.Images != nil {
		rows := make([]Row, 0, len(*in.Images))
		for _, url := range *in.Images {
			if strings.TrimSpace(url) == "" {
				continue
			}
			rows = append(rows, &BlogImage{URL: url})
		}
		out["images"] = rows
	}
	return out
}

func (in *BlogInput) References() map[string][]string {
	if in.Categories == nil {
		return nil
	}
	return map[string][]string{"categories": *in.Categories}
}

func (in *BlogInput) Validate(create bool) error {
	return required("title", in.Title, create)
}

// TestimonialInput is the create/update payload of a testimonial.
type TestimonialInput struct {
	CustomerName *string `json:"customerName"`
	Feedback     *string `json:"feedback"`
	Image        *string `json:"image"`
	Rating       *int    `json:"rating"`
}

func (in *TestimonialInput) Columns() map[string]any {
	cols := make(map[string]any)
	put(cols, "customer_name", in.CustomerName)
	put(cols, "feedback", in.Feedback)
	put(cols, "image", in.Image)
	put(cols, "rating", in.Rating)
	return cols
}

func (in *TestimonialInput) Collections() map[string][]Row    { return nil }
func (in *TestimonialInput) References() map[string][]string { return nil }

func (in *TestimonialInput) Validate(create bool) error {
	if err := required("customerName", in.CustomerName, create); err != nil {
		return err
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5, got %d", *in.Rating)
	}
	return nil
}

func put[T any](cols map[string]any, column string, v *T) {
	if v != nil {
		cols[column] = *v
	}
}

// required fails when a required field is blank, or missing on create.
func required(field string, v *string, create bool) error {
	if v == nil {
		if create {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
	if strings.TrimSpace(*v) == "" {
		return fmt.Errorf("%s must not be blank", field)
	}
	return nil
}

func itemRows(items []ItemInput, build func(string) Row) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, build(it.Item))
	}
	return rows
}
