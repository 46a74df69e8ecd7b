package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/auth/dto"
	userrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/repo"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const msgInvalidCredentials = "Invalid credentials"

type Service struct {
	userStore userrepo.UserStore
}

func New(userStore userrepo.UserStore) *Service {
	return &Service{userStore: userStore}
}

// Signup registers a new account. The very first account becomes admin so a
// fresh installation can be administered.
func (s *Service) Signup(ctx context.Context, req moduledto.SignupRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	taken, err := s.userStore.FieldTaken(ctx, userrepo.UserFieldEmail, email, 0)
	if err != nil {
		return nil, platformservice.Wrap("Signup", err)
	}
	if taken {
		return nil, platformservice.NewConflictError("An account with this email address already exists")
	}
	taken, err = s.userStore.FieldTaken(ctx, userrepo.UserFieldUsername, username, 0)
	if err != nil {
		return nil, platformservice.Wrap("Signup", err)
	}
	if taken {
		return nil, platformservice.NewConflictError("Username is already taken")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, platformservice.Wrap("Signup", err)
	}

	count, err := s.userStore.Count(ctx)
	if err != nil {
		return nil, platformservice.Wrap("Signup", err)
	}
	role := model.RoleUser
	if count == 0 {
		role = model.RoleAdmin
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Avatar:   utils.GravatarURL(email),
		Role:     role,
		IsActive: true,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, platformservice.Wrap("Signup", err)
	}
	logger.L.Info("user signed up", zap.Uint("user_id", user.ID), zap.String("role", string(role)))
	return user, nil
}

func (s *Service) Login(ctx context.Context, req moduledto.LoginRequest) (*moduledto.TokenResponse, error) {
	identity := strings.TrimSpace(req.Username)

	var (
		user *model.User
		err  error
	)
	if strings.Contains(identity, "@") {
		user, err = s.userStore.FindByEmail(ctx, strings.ToLower(identity))
	} else {
		user, err = s.userStore.FindByUsername(ctx, identity)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError(msgInvalidCredentials)
		}
		return nil, platformservice.Wrap("Login", err)
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, platformservice.NewUnauthorizedError(msgInvalidCredentials)
	}
	if !user.IsActive {
		return nil, platformservice.NewForbiddenError("User is banned")
	}

	hours := config.Get().JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	token, err := utils.GenerateLoginToken(user.ID, user.Username, time.Duration(hours)*time.Hour)
	if err != nil {
		return nil, platformservice.Wrap("Login", err)
	}
	return &moduledto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
