package model

import "time"

type Event struct {
	BaseModel
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	StartDate   time.Time `db:"start_date" json:"start_date"`
	EndDate     time.Time `db:"end_date" json:"end_date"`
	Time        *string   `db:"time" json:"time"`
	PhotoURL    *string   `db:"photo_url" json:"photo_url"`
}
