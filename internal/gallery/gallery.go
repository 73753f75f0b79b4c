// Package gallery implements the embedded media gallery: item/config
// types, the grid model, and the lightbox viewer state machine.
package gallery

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Item kinds.
const (
	KindImage = "image"
	KindVideo = "video"
)

// Gap sizes for the grid layout.
const (
	GapSmall  = "sm"
	GapMedium = "md"
	GapLarge  = "lg"
)

// Metadata carries optional descriptive attributes of a media item,
// shown in the lightbox info panel.
type Metadata struct {
	FileSize    string `json:"fileSize,omitempty"`
	Dimensions  string `json:"dimensions,omitempty"`
	DateCreated string `json:"dateCreated,omitempty"`
	Camera      string `json:"camera,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Item is one media entry in a gallery declaration. The item set of a
// gallery instance is ordered and immutable for the lifetime of a
// viewing session.
type Item struct {
	ID          string    `json:"id"`
	Kind        string    `json:"type"`
	Src         string    `json:"src"`
	Alt         string    `json:"alt,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"` // videos only: poster image
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	Metadata    *Metadata `json:"metadata,omitempty"`
}

// Validate checks the required item fields.
func (i Item) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, validation.Required),
		validation.Field(&i.Kind, validation.Required, validation.In(KindImage, KindVideo)),
		validation.Field(&i.Src, validation.Required),
	)
}

// Config is the display configuration of a gallery declaration.
type Config struct {
	Columns          int    `json:"columns,omitempty"`
	Gap              string `json:"gap,omitempty"`
	ShowTitles       bool   `json:"showTitles,omitempty"`
	ShowDescriptions bool   `json:"showDescriptions,omitempty"`
	EnableLightbox   bool   `json:"enableLightbox"`
}

// DefaultConfig mirrors the component's default props: three columns,
// medium gap, lightbox enabled, captions hidden.
func DefaultConfig() Config {
	return Config{Columns: 3, Gap: GapMedium, EnableLightbox: true}
}

// Validate checks column and gap bounds.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Columns, validation.Min(1), validation.Max(4)),
		validation.Field(&c.Gap, validation.In(GapSmall, GapMedium, GapLarge)),
	)
}

// Gallery is a validated declaration: ordered items plus display config.
type Gallery struct {
	Items  []Item `json:"items"`
	Config Config `json:"config"`
}

// New validates items and config, applying config defaults for zero
// values. It is the single constructor used by the rendering pipeline.
func New(items []Item, cfg Config) (*Gallery, error) {
	if cfg.Columns == 0 {
		cfg.Columns = 3
	}
	if cfg.Gap == "" {
		cfg.Gap = GapMedium
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	return &Gallery{Items: items, Config: cfg}, nil
}
