package model

import "time"

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleJobseeker UserRole = "jobseeker" // Default role, can apply to jobs
	UserRoleEmployer  UserRole = "employer"  // Can post and manage jobs
	UserRoleAdmin     UserRole = "admin"     // Full access including moderation
)

// ValidRole reports whether s is a role accepted at registration.
// Admin accounts are provisioned out of band, never self-registered.
func ValidRole(s string) bool {
	return s == string(UserRoleJobseeker) || s == string(UserRoleEmployer)
}

// User represents a user account
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Hash      *string   `json:"-"` // Never expose password hash
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	District  *string   `json:"district,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// IsAdmin returns true if the user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// IsEmployer returns true if the user can post jobs
func (u *User) IsEmployer() bool {
	return u.Role == UserRoleEmployer
}

// IsJobseeker returns true if the user can apply to jobs
func (u *User) IsJobseeker() bool {
	return u.Role == UserRoleJobseeker
}

// UserPublic represents a user for API responses (without sensitive data)
type UserPublic struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	District *string  `json:"district,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

// ToPublic converts a User to its public representation
func (u *User) ToPublic() *UserPublic {
	return &UserPublic{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		District: u.District,
		Phone:    u.Phone,
		Skills:   u.Skills,
	}
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string      `json:"token"`
	User  *UserPublic `json:"user"`
}
