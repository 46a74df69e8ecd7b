package dto

import "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"

type UpdateEmailRequest struct {
	Email string `json:"email" form:"email" binding:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required"`
}

type ChangeRoleRequest struct {
	UserID uint       `json:"user_id" form:"user_id" binding:"required"`
	Role   model.Role `json:"role" form:"role" binding:"required"`
}
