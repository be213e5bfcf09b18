package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soko/internal/models/db_models"
	"soko/internal/models/request_models"
	"soko/internal/repositories"
	"soko/internal/tokens"
	"soko/pkg/utils"
)

type fakeUserRepo struct {
	repositories.UserRepositoryInterface
	users map[string]*db_models.User
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*db_models.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	for _, u := range f.users {
		if u.ID == id && u.Active {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByResetToken(ctx context.Context, tokenHash string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.PasswordResetToken == tokenHash && u.PasswordResetExpires > time.Now().Unix() {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) (*db_models.User, error) {
	user.ID = uuid.New()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) Save(ctx context.Context, user *db_models.User) error {
	f.users[user.Email] = user
	return nil
}

type fakeRefreshStore struct {
	tokens map[string]uuid.UUID
}

func newFakeRefreshStore() *fakeRefreshStore {
	return &fakeRefreshStore{tokens: make(map[string]uuid.UUID)}
}

func (f *fakeRefreshStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, _ := utils.GenerateSecureToken(16)
	f.tokens[token] = userID
	return token, nil
}

func (f *fakeRefreshStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return uuid.Nil, tokens.ErrTokenNotFound
	}
	return userID, nil
}

func (f *fakeRefreshStore) Revoke(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

type fakeMail struct {
	resetTokens []string
	recipients  []string
	err         error
}

func (f *fakeMail) Send(to, subject, body string) error { return f.err }

func (f *fakeMail) SendPasswordReset(to, token string) error {
	if f.err != nil {
		return f.err
	}
	f.recipients = append(f.recipients, to)
	f.resetTokens = append(f.resetTokens, token)
	return nil
}

func newAuthService(repo *fakeUserRepo, mail *fakeMail) AuthServiceInterface {
	return NewAuthService(repo, utils.NewTokenMaker("secret", time.Hour), newFakeRefreshStore(), mail)
}

func hashedUser(email, password string) *db_models.User {
	hash, _ := utils.HashPassword(password)
	return &db_models.User{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Achen",
		Email:     email,
		Password:  hash,
		Role:      db_models.RoleUser,
		Active:    true,
	}
}

func TestSignup(t *testing.T) {
	repo := newFakeUserRepo()
	service := newAuthService(repo, &fakeMail{})

	user, token, refresh, err := service.Signup(context.Background(), request_models.SignUpRequest{
		Name:            "Okello",
		Email:           "okello@example.com",
		Password:        "pass1234",
		PasswordConfirm: "pass1234",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, db_models.RoleUser, user.Role)
	assert.NotEqual(t, "pass1234", user.Password)
	assert.NotZero(t, user.LastPaymentAt)
	assert.NoError(t, utils.ComparePasswords(user.Password, "pass1234"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(hashedUser("taken@example.com", "pass1234"))
	service := newAuthService(repo, &fakeMail{})

	_, _, _, err := service.Signup(context.Background(), request_models.SignUpRequest{
		Name:            "Okello",
		Email:           "taken@example.com",
		Password:        "pass1234",
		PasswordConfirm: "pass1234",
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "Duplicate field value")
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo(hashedUser("achen@example.com", "pass1234"))
	service := newAuthService(repo, &fakeMail{})

	t.Run("unknown email", func(t *testing.T) {
		_, _, _, err := service.Login(context.Background(), request_models.LoginRequest{
			Email: "nobody@example.com", Password: "pass1234",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := service.Login(context.Background(), request_models.LoginRequest{
			Email: "achen@example.com", Password: "wrong-pass",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		user, token, refresh, err := service.Login(context.Background(), request_models.LoginRequest{
			Email: "achen@example.com", Password: "pass1234",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, "achen@example.com", user.Email)
	})
}

func TestRefreshUnknownToken(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), &fakeMail{})

	_, _, err := service.Refresh(context.Background(), "bogus")

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid token. Please log in again!", appErr.Message)
}

func TestRefreshRotatesToken(t *testing.T) {
	user := hashedUser("achen@example.com", "pass1234")
	repo := newFakeUserRepo(user)
	service := newAuthService(repo, &fakeMail{})

	_, _, refresh, err := service.Login(context.Background(), request_models.LoginRequest{
		Email: "achen@example.com", Password: "pass1234",
	})
	require.NoError(t, err)

	_, next, err := service.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEqual(t, refresh, next)

	_, _, err = service.Refresh(context.Background(), refresh)
	assert.Error(t, err)
}

func TestForgotPassword(t *testing.T) {
	user := hashedUser("achen@example.com", "pass1234")
	repo := newFakeUserRepo(user)
	mail := &fakeMail{}
	service := newAuthService(repo, mail)

	require.NoError(t, service.ForgotPassword(context.Background(), "achen@example.com"))

	require.Len(t, mail.resetTokens, 1)
	assert.Equal(t, utils.HashToken(mail.resetTokens[0]), user.PasswordResetToken)
	assert.Greater(t, user.PasswordResetExpires, time.Now().Unix())
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	mail := &fakeMail{}
	service := newAuthService(newFakeUserRepo(), mail)

	require.NoError(t, service.ForgotPassword(context.Background(), "nobody@example.com"))
	assert.Empty(t, mail.resetTokens)
}

func TestForgotPasswordMailFailureRollsBack(t *testing.T) {
	user := hashedUser("achen@example.com", "pass1234")
	repo := newFakeUserRepo(user)
	service := newAuthService(repo, &fakeMail{err: errors.New("smtp down")})

	err := service.ForgotPassword(context.Background(), "achen@example.com")

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "There was an error sending the email. Try again later!", appErr.Message)
	assert.Empty(t, user.PasswordResetToken)
	assert.Zero(t, user.PasswordResetExpires)
}

func TestResetPassword(t *testing.T) {
	user := hashedUser("achen@example.com", "pass1234")
	repo := newFakeUserRepo(user)
	mail := &fakeMail{}
	service := newAuthService(repo, mail)

	require.NoError(t, service.ForgotPassword(context.Background(), "achen@example.com"))
	raw := mail.resetTokens[0]

	t.Run("bad token", func(t *testing.T) {
		_, _, _, err := service.ResetPassword(context.Background(), "wrong", "newpass123")

		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Token is invalid or has expired", appErr.Message)
	})

	t.Run("success", func(t *testing.T) {
		reset, token, _, err := service.ResetPassword(context.Background(), raw, "newpass123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NoError(t, utils.ComparePasswords(reset.Password, "newpass123"))
		assert.Empty(t, reset.PasswordResetToken)
		assert.NotZero(t, reset.PasswordChangedAt)
	})
}

func TestUpdatePassword(t *testing.T) {
	user := hashedUser("achen@example.com", "pass1234")
	repo := newFakeUserRepo(user)
	service := newAuthService(repo, &fakeMail{})

	t.Run("wrong current password", func(t *testing.T) {
		_, _, err := service.UpdatePassword(context.Background(), user, request_models.UpdatePasswordRequest{
			PasswordCurrent: "wrong-pass",
			Password:        "newpass123",
			PasswordConfirm: "newpass123",
		})

		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Your current password is wrong.", appErr.Message)
	})

	t.Run("success", func(t *testing.T) {
		token, refresh, err := service.UpdatePassword(context.Background(), user, request_models.UpdatePasswordRequest{
			PasswordCurrent: "pass1234",
			Password:        "newpass123",
			PasswordConfirm: "newpass123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refresh)
		assert.NoError(t, utils.ComparePasswords(user.Password, "newpass123"))
	})
}
