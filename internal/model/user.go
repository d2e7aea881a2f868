package model

type User struct {
	BaseModel
	Email       string  `db:"email" json:"email"`
	Password    string  `db:"password" json:"-"`
	Name        string  `db:"name" json:"name"`
	PhoneNumber *string `db:"phone_number" json:"phone_number"`
	IsAdmin     bool    `db:"is_admin" json:"is_admin"`
}

// OTP is the pending sign-up challenge for an email address. At most one row
// per email; replaced on re-request, deleted on successful verification.
type OTP struct {
	Email string `db:"email" json:"email"`
	Code  string `db:"code" json:"code"`
}
