package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

// Auth implements signup, login and the account-recovery flows on top of
// the user store, token manager and mailer.
type Auth struct {
	users  model.UserStore
	tokens model.TokenManager
	mailer model.Mailer
	logger *logger.Logger
}

func NewAuth(
	users model.UserStore,
	tokens model.TokenManager,
	mailer model.Mailer,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:  users,
		tokens: tokens,
		mailer: mailer,
		logger: logger,
	}
}

// SignUp creates a user with a bcrypt password hash and issues a session
// token. Duplicate username or email yields model.ErrConflict; the unique
// indexes resolve racing duplicates atomically.
func (a *Auth) SignUp(ctx context.Context, username, email, password string) (model.User, string, error) {
	a.logger.Debug("Auth service: starting signup", "username", username)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	created, err := a.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			a.logger.Info("Auth service: signup conflict", "username", username)
			return model.User{}, "", model.ErrConflict
		}
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokens.GenerateSessionToken(created.ID, created.Username)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: signup completed", "username", username)

	return created, token, nil
}

// Login verifies credentials and issues a session token. The identifier
// may be a username or an email address. Unknown identifiers and wrong
// passwords are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, identifier, password string) (model.User, string, error) {
	a.logger.Debug("Auth service: starting login", "identifier", identifier)

	user, err := a.users.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, "", model.ErrInvalidCredentials
		}
		return model.User{}, "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: password mismatch", "identifier", identifier)
		return model.User{}, "", model.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: login completed", "username", user.Username)

	return user, token, nil
}

// ForgotUsername mails the username registered for the given email.
func (a *Auth) ForgotUsername(ctx context.Context, email string) error {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.mailer.SendUsernameReminder(ctx, user.Email, user.Username); err != nil {
		a.logger.Error("Auth service: failed to send username reminder",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send username reminder: %w", err)
	}

	a.logger.Info("Auth service: username reminder sent", "email", email)

	return nil
}

// ForgotPassword issues a 1-hour reset token for the matching
// username+email pair and mails the reset link.
func (a *Auth) ForgotPassword(ctx context.Context, username, email string) error {
	user, err := a.users.GetByUsernameAndEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	resetToken, err := a.tokens.GenerateResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	if err := a.mailer.SendPasswordResetLink(ctx, user.Email, resetToken); err != nil {
		a.logger.Error("Auth service: failed to send reset link",
			"username", username,
			"error", err.Error())
		return fmt.Errorf("failed to send reset link: %w", err)
	}

	a.logger.Info("Auth service: reset link sent", "username", username)

	return nil
}

// ResetPassword completes the reset flow: it verifies the reset token and
// replaces the stored password hash.
func (a *Auth) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	userID, err := a.tokens.ParseResetToken(resetToken)
	if err != nil {
		return err
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrTokenInvalid
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password reset completed", "username", user.Username)

	return nil
}
