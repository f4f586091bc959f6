package domain

// Admin represents a gym administrator account used to sign in to the app.
//
// The JSON tags are the persisted shape in the "admins" collection, so the
// password hash must round-trip here. API responses go through DTO mapping
// and never serialize this struct directly.
type Admin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"` // Should be unique
	PasswordHash string `json:"passwordHash"`
}
