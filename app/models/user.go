package models

// Role codes as used by the remote API.
const (
	RoleStandard = 0
	RoleAdmin    = 1
)

// User is the canonical account model. The session store persists exactly
// one of these to represent the authenticated state.
type User struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Role    int    `json:"role"`
	Locked  bool   `json:"isLocked"`
	Avatar  string `json:"avatar"`
}

// IsAdmin reports whether the user carries the administrator role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
