package model

// IndexSwap is a request posted on the peer index-swap board. The duplicate
// check uses the composite {StudentName, ModuleName, ModuleCode, HaveIndex,
// WantIndex}.
type IndexSwap struct {
	BaseModel
	StudentName string  `db:"student_name" json:"student_name"`
	Email       string  `db:"email" json:"email"`
	ModuleName  string  `db:"module_name" json:"module_name"`
	ModuleCode  string  `db:"module_code" json:"module_code"`
	HaveIndex   string  `db:"have_index" json:"have_index"`
	WantIndex   string  `db:"want_index" json:"want_index"`
	PhoneNumber *string `db:"phone_number" json:"phone_number"`
	TeleHandle  *string `db:"tele_handle" json:"tele_handle"`
}
