package dto

import "time"

type CreateEventInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Time        string
	PhotoURL    string
}

type UpdateEventInput struct {
	ID          string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Time        string
	PhotoURL    string
}
