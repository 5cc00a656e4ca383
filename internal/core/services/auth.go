package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driving"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// Ensure Auth implements the interface.
var _ driving.AuthManager = (*Auth)(nil)

// Auth handles login, logout and account administration.
type Auth struct {
	users    driven.UserStore
	sessions driven.SessionStore
	hooks    driven.WebhookTrigger
	config   driven.ConfigStore
	audit    driven.AuditLog

	now func() time.Time
}

// NewAuth creates the auth service.
func NewAuth(
	users driven.UserStore,
	sessions driven.SessionStore,
	hooks driven.WebhookTrigger,
	config driven.ConfigStore,
	audit driven.AuditLog,
) *Auth {
	return &Auth{
		users:    users,
		sessions: sessions,
		hooks:    hooks,
		config:   config,
		audit:    audit,
		now:      time.Now,
	}
}

// Login verifies credentials and persists the session.
func (a *Auth) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := a.users.GetUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}

	if err := a.sessions.SaveSession(ctx, *user); err != nil {
		return nil, fmt.Errorf("login: persist session: %w", err)
	}
	a.record(ctx, "LOGIN", "User logged in", user.Username)
	return user, nil
}

// Logout clears the persisted session. A missing session is not an
// error.
func (a *Auth) Logout(ctx context.Context) error {
	user, err := a.sessions.CurrentSession(ctx)
	if errors.Is(err, domain.ErrNoSession) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.record(ctx, "LOGOUT", "User logged out", user.Username)
	return nil
}

// Current returns the logged-in user.
func (a *Auth) Current(ctx context.Context) (*domain.User, error) {
	return a.sessions.CurrentSession(ctx)
}

// CreateUser stores a new account and fires the user-created
// notification webhook. A webhook failure does not fail creation.
func (a *Auth) CreateUser(ctx context.Context, user domain.User) error {
	if user.Username == "" || user.Password == "" {
		return domain.ErrInvalidInput
	}

	_, err := a.users.GetUserByUsername(ctx, user.Username)
	if err == nil {
		return domain.ErrAlreadyExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("create user: %w", err)
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = a.now().UTC()
	if err := a.users.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	// Notification only; the account already exists either way.
	payload := map[string]any{
		"event":      "USER_CREATED",
		"user_id":    user.ID,
		"username":   user.Username,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"sheets":     user.Sheets,
		"created_at": user.CreatedAt.Format(time.RFC3339),
	}
	if err := a.hooks.Trigger(ctx, a.config.Endpoints().UserCreated, payload, nil); err != nil {
		logger.Warn("create user: notification webhook failed: %v", err)
	}

	performedBy := "admin"
	if current, err := a.sessions.CurrentSession(ctx); err == nil {
		performedBy = current.Username
	}
	a.record(ctx, "CREATE_USER", "Created user "+user.Username, performedBy)
	return nil
}

func (a *Auth) record(ctx context.Context, action, details, performedBy string) {
	err := a.audit.Record(ctx, domain.AuditEntry{
		ID:          uuid.NewString(),
		Action:      action,
		Details:     details,
		PerformedBy: performedBy,
		Timestamp:   a.now().UTC(),
	})
	if err != nil {
		logger.Warn("audit: %s not recorded: %v", action, err)
	}
}
