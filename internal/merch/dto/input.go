package dto

type MerchInput struct {
	Name        string
	Description string
	Sizes       []string
	Colors      []string
	Price       float64
	Quantity    int64
	PhotoURL    string
	Category    string
}
