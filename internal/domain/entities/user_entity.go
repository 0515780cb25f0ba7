package entities

// User is an account allowed through the login gate.
// Password holds a digest, never the plaintext.
type User struct {
	Username string `json:"username" gorm:"column:username;primaryKey"`
	Password string `json:"-" gorm:"column:password;not null"`
	Role     string `json:"role" gorm:"column:role;not null"`
}

func (User) TableName() string { return "users" }
