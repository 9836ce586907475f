package models

// UserRole identifies the access level of an account
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleDriver UserRole = "driver"
)

// User represents an account in the identity store. The password is a
// plaintext demo credential and must never be serialized to clients.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	Role     UserRole `json:"role"`
}

// CallerIdentity is the identity resolved from a verified token. The role
// always comes from the identity store, never from the token payload alone.
type CallerIdentity struct {
	UserID string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}

// Identity returns the caller view of a user record
func (u *User) Identity() *CallerIdentity {
	return &CallerIdentity{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
