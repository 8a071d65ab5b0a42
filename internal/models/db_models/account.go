package db_models

type Account struct {
	BaseModel
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`

	Profile *Profile `gorm:"foreignKey:AccountID" json:"profile,omitempty"`
	Deals   []Deal   `gorm:"foreignKey:UserID" json:"-"`
}
