package models

type Sponsor struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Website string `json:"website" db:"website"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
