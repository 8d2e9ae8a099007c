package user

// User represents a user entity in the system.
type User struct {
	ID   int64  `json:"id"`   // ID is the unique identifier for the user
	Name string `json:"name"` // Name is the display name of the user
}
