package domain

// User is an authenticated owner. The user's ID is the sole tenancy boundary:
// every other record carries it as owner_id.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
