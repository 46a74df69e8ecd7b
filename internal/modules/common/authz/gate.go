// Package authz is the single place where ownership and role rules for
// mutating operations are decided. Image edits and deletes are the
// exception: the image repository scopes those writes to the owner.
package authz

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"
)

type Action string

const (
	ActionChangeRole    Action = "change_role"
	ActionBanUser       Action = "ban_user"
	ActionDeleteUser    Action = "delete_user"
	ActionDeleteComment Action = "delete_comment"
	ActionEditComment   Action = "edit_comment"
	ActionEditRating    Action = "edit_rating"
	ActionDeleteRating  Action = "delete_rating"
	ActionDeleteFormat  Action = "delete_format"
	ActionCreateRating  Action = "create_rating"
)

// Actor is the authenticated user performing an operation.
type Actor struct {
	ID   uint
	Role model.Role
}

func ActorOf(user *model.User) Actor {
	return Actor{ID: user.ID, Role: user.Role}
}

// Allowed evaluates the rules in precedence order. ownerID is the owner of
// the target resource; for ActionCreateRating it is the owner of the image
// being rated. Admin-only actions ignore ownerID.
func Allowed(actor Actor, ownerID uint, action Action) bool {
	switch action {
	case ActionChangeRole, ActionBanUser, ActionDeleteUser:
		return actor.Role == model.RoleAdmin
	case ActionDeleteComment:
		return actor.Role.IsModeration()
	case ActionDeleteRating:
		return actor.ID == ownerID || actor.Role.IsModeration()
	case ActionEditComment, ActionEditRating, ActionDeleteFormat:
		return actor.ID == ownerID
	case ActionCreateRating:
		return actor.ID != ownerID
	}
	return false
}

// Authorize returns a forbidden ServiceError when the action is denied.
func Authorize(actor Actor, ownerID uint, action Action) error {
	if Allowed(actor, ownerID, action) {
		return nil
	}
	if action == ActionCreateRating {
		return service.NewForbiddenError("Cannot rate own image")
	}
	return service.NewForbiddenError("Not enough permissions")
}
