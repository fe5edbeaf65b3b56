package domain

// User Model, one row per user in the "users" table
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                 // Primary key, generated by the store
	Username string `gorm:"uniqueIndex;not null" json:"username"` // Login name, unique by schema
	Password string `gorm:"not null" json:"password"`             // Plaintext password, compared byte-for-byte at login
	Role     string `gorm:"default:customer" json:"role"`         // Role: admin or customer
}

// TableName pins the table name used by every statement in the repository
func (User) TableName() string {
	return "users"
}
