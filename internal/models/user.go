package models

// User represents the users table. Accounts are provisioned out of band
// (cmd/create-user); there is no self-registration route.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string `gorm:"not null;size:255" json:"-"`
	FullName     string `gorm:"size:255" json:"full_name"`
	IsActive     bool   `gorm:"not null" json:"is_active"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
