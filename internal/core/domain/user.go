package domain

import "errors"

const (
	// RoleCrewLead manages employees and time entries.
	RoleCrewLead = "brygadzista"
	// RoleAccountant manages pay rates, approvals and reports.
	RoleAccountant = "ksiegowa"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

// User models an authenticated actor in the system. Users are created only
// when the store is seeded and are immutable afterwards.
type User struct {
	ID           string `json:"id"`
	Login        string `json:"login"`
	PasswordHash string `json:"haslo"`
	Role         string `json:"rola"`
	DisplayName  string `json:"nazwa"`
}

// Profile is the public view of a User, safe to return to clients.
type Profile struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	Role        string `json:"rola"`
	DisplayName string `json:"nazwa"`
}

// Profile strips the password hash from a User.
func (u *User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		Login:       u.Login,
		Role:        u.Role,
		DisplayName: u.DisplayName,
	}
}
