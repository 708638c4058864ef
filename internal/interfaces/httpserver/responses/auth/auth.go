package authresponses

import (
	"time"

	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
)

// SignupResponse confirms account creation.
type SignupResponse struct {
	Message string `json:"message"`
}

// UserProfile is the subset of account fields exposed after login. The
// password hash and the stored API key never appear here.
type UserProfile struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	JoinDate     time.Time `json:"joinDate"`
}

// LoginResponse is the successful login body.
type LoginResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

// NewLoginResponse builds a login response from a domain user.
func NewLoginResponse(u *user.User) *LoginResponse {
	return &LoginResponse{
		Message: "login successful",
		User: UserProfile{
			ID:           u.ID,
			Name:         u.Name,
			ProfileImage: u.ProfileImage,
			JoinDate:     u.CreatedAt,
		},
	}
}
