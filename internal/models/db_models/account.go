package db_models

type Account struct {
	BaseModel
	Username     string `gorm:"unique" json:"username"`
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PhoneNumber  string `json:"phone_number"`
	Role         string `json:"role"`

	Bookings []Booking `json:"-"`
	Reviews  []Review  `json:"-"`
}
