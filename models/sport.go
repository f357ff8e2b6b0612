package models

// Sport is a top-level sport (e.g. "Basketball"). Variants per gender or
// category live in Modality.
type Sport struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	IconKey *string `json:"-" db:"icon_key"`
	IconURL *string `json:"icon_url,omitempty" db:"-"`
}
