package dto

type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	PhoneNumber string
}
