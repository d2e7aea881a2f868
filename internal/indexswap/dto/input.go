package dto

type IndexSwapInput struct {
	StudentName string
	Email       string
	ModuleName  string
	ModuleCode  string
	HaveIndex   string
	WantIndex   string
	PhoneNumber string
	TeleHandle  string
}
