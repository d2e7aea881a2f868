package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderItem is a denormalized snapshot of a purchased line item. Prices are
// major currency units at purchase time; later catalog edits do not affect it.
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderItems is stored as a JSONB column.
type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *OrderItems) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	case nil:
		*o = nil
		return nil
	default:
		return fmt.Errorf("unsupported order items type %T", src)
	}
}

type Order struct {
	ID        string     `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	Items     OrderItems `db:"items" json:"items"`
	Status    string     `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
