package modules

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/media"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/auth"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment"
	commentrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image"
	imagerepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating"
	ratingrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system"
	systemrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user"
	userrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/repo"
)

type AppModules struct {
	Auth    *auth.Module
	User    *user.Module
	Image   *image.Module
	Rating  *rating.Module
	Comment *comment.Module
	System  *system.Module
}

func New(
	mediaService *media.Service,
	userStore userrepo.UserStore,
	imageStore imagerepo.ImageStore,
	ratingStore ratingrepo.RatingStore,
	commentStore commentrepo.CommentStore,
	systemStore systemrepo.SystemStore,
) *AppModules {
	return &AppModules{
		Auth:    auth.New(userStore),
		User:    user.New(userStore, mediaService),
		Image:   image.New(imageStore, mediaService),
		Rating:  rating.New(ratingStore),
		Comment: comment.New(commentStore),
		System:  system.New(systemStore),
	}
}
