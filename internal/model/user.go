package model

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// IsModeration reports whether the role may bypass ownership checks for
// moderation actions.
func (r Role) IsModeration() bool {
	return r == RoleAdmin || r == RoleModerator
}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	Username  string    `json:"username" gorm:"size:50;not null;unique"`
	Email     string    `json:"email" gorm:"size:255;not null;unique"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	Avatar    string    `json:"avatar" gorm:"size:255"`
	Role      Role      `json:"role" gorm:"size:20;not null;default:user"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
}
