package models

type Role string

const (
	RoleTourist  Role = "tourist"
	RolePolice   Role = "police"
	RoleHospital Role = "hospital"
	RoleTourism  Role = "tourism"
)

var Roles = []Role{RoleTourist, RolePolice, RoleHospital, RoleTourism}

func (r Role) Valid() bool {
	switch r {
	case RoleTourist, RolePolice, RoleHospital, RoleTourism:
		return true
	}
	return false
}

// UserRecord is a credential entry. Only the hash of the password is kept.
type UserRecord struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	DisplayName  string
}

// Public returns the profile that is safe to hand to clients.
func (u UserRecord) Public() User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.DisplayName,
		Role:     u.Role,
	}
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
