package model

import "github.com/lib/pq"

// Merch is a merchandise item. Name is the natural key: uniqueness is
// checked in the usecase before insert/update, not enforced by the store.
// Quantity is deliberately unconstrained and may go negative when webhook
// deliveries race or repeat.
type Merch struct {
	BaseModel
	Name        string         `db:"name" json:"name"`
	Description *string        `db:"description" json:"description"`
	Sizes       pq.StringArray `db:"sizes" json:"sizes"`
	Colors      pq.StringArray `db:"colors" json:"colors"`
	Price       float64        `db:"price" json:"price"`
	Quantity    int64          `db:"quantity" json:"quantity"`
	PhotoURL    *string        `db:"photo_url" json:"photo_url"`
	Category    *string        `db:"category" json:"category"`
}
