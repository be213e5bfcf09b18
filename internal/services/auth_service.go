package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"soko/internal/models/db_models"
	"soko/internal/models/request_models"
	"soko/internal/repositories"
	"soko/internal/tokens"
	"soko/pkg/utils"
)

const resetTokenTTL = 10 * time.Minute

type AuthServiceInterface interface {
	Signup(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, string, string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) (*db_models.User, string, string, error)
	UpdatePassword(ctx context.Context, user *db_models.User, request request_models.UpdatePasswordRequest) (string, string, error)
}

type AuthService struct {
	userRepo     repositories.UserRepositoryInterface
	tokenMaker   *utils.TokenMaker
	refreshStore tokens.RefreshStoreInterface
	mailService  IMailService
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	tokenMaker *utils.TokenMaker,
	refreshStore tokens.RefreshStoreInterface,
	mailService IMailService,
) AuthServiceInterface {
	return &AuthService{
		userRepo:     userRepo,
		tokenMaker:   tokenMaker,
		refreshStore: refreshStore,
		mailService:  mailService,
	}
}

func (a *AuthService) Signup(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, string, string, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", "", err
	}
	if existing != nil {
		return nil, "", "", utils.DuplicateFieldError(request.Email)
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, "", "", err
	}

	// A fresh account gets a 30 day trial before the subscription gate kicks in.
	user := &db_models.User{
		Name:          request.Name,
		Shop:          request.Shop,
		Email:         request.Email,
		Telephone:     request.Telephone,
		Password:      hashed,
		Role:          db_models.RoleUser,
		LastPaymentAt: time.Now().Unix(),
		Active:        true,
	}
	if _, err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, "", "", err
	}

	token, refresh, err := a.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, token, refresh, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", "", err
	}
	if user == nil {
		return nil, "", "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.Password, request.Password); err != nil {
		return nil, "", "", utils.ErrInvalidCredentials
	}

	token, refresh, err := a.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, token, refresh, nil
}

func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	userID, err := a.refreshStore.Resolve(ctx, refreshToken)
	if errors.Is(err, tokens.ErrTokenNotFound) {
		return "", "", utils.NewAppError(http.StatusUnauthorized, "Invalid token. Please log in again!")
	}
	if err != nil {
		return "", "", err
	}

	user, err := a.userRepo.FindActiveByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", utils.NewAppError(http.StatusUnauthorized, "The user belonging to this token does no longer exist.")
	}

	// Rotate so a leaked refresh token only works once.
	if err := a.refreshStore.Revoke(ctx, refreshToken); err != nil {
		log.Printf("revoke refresh token: %v", err)
	}
	return a.issueTokens(ctx, user)
}

func (a *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return a.refreshStore.Revoke(ctx, refreshToken)
}

func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		// Do not reveal whether the address exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}
	user.PasswordResetToken = utils.HashToken(token)
	user.PasswordResetExpires = time.Now().Add(resetTokenTTL).Unix()
	if err := a.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if err := a.mailService.SendPasswordReset(user.Email, token); err != nil {
		user.PasswordResetToken = ""
		user.PasswordResetExpires = 0
		if saveErr := a.userRepo.Save(ctx, user); saveErr != nil {
			log.Printf("clear reset token: %v", saveErr)
		}
		return utils.NewAppError(http.StatusInternalServerError, "There was an error sending the email. Try again later!")
	}
	return nil
}

func (a *AuthService) ResetPassword(ctx context.Context, token, password string) (*db_models.User, string, string, error) {
	user, err := a.userRepo.FindByResetToken(ctx, utils.HashToken(token))
	if err != nil {
		return nil, "", "", err
	}
	if user == nil {
		return nil, "", "", utils.NewAppError(http.StatusBadRequest, "Token is invalid or has expired")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", "", err
	}
	user.Password = hashed
	user.PasswordResetToken = ""
	user.PasswordResetExpires = 0
	// Backdated a second so the token issued below stays valid.
	user.PasswordChangedAt = time.Now().Unix() - 1
	if err := a.userRepo.Save(ctx, user); err != nil {
		return nil, "", "", err
	}

	accessToken, refresh, err := a.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refresh, nil
}

func (a *AuthService) UpdatePassword(ctx context.Context, user *db_models.User, request request_models.UpdatePasswordRequest) (string, string, error) {
	if err := utils.ComparePasswords(user.Password, request.PasswordCurrent); err != nil {
		return "", "", utils.NewAppError(http.StatusUnauthorized, "Your current password is wrong.")
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", "", err
	}
	user.Password = hashed
	user.PasswordChangedAt = time.Now().Unix() - 1
	if err := a.userRepo.Save(ctx, user); err != nil {
		return "", "", err
	}

	return a.issueTokens(ctx, user)
}

func (a *AuthService) issueTokens(ctx context.Context, user *db_models.User) (string, string, error) {
	token, err := a.tokenMaker.Create(user.ID, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := a.refreshStore.Issue(ctx, user.ID)
	if err != nil {
		return "", "", err
	}
	return token, refresh, nil
}
