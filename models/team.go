package models

import "time"

type Team struct {
	ID         int    `json:"id" db:"id"`
	ModalityID int    `json:"modality_id" db:"modality_id"`
	Name       string `json:"name" db:"name"`

	// Squad holds player ids, unique by id; order carries no meaning.
	Squad []int `json:"squad" db:"squad"`

	TaxID           string `json:"tax_id" db:"tax_id"`
	ResponsibleName string `json:"responsible_name" db:"responsible_name"`
	ResponsibleID   string `json:"responsible_id" db:"responsible_id"`
	Phone           string `json:"phone" db:"phone"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`

	Modality *Modality `json:"modality,omitempty" db:"-"`
	Players  []Player  `json:"players,omitempty" db:"-"`
}
