package user

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hexforge/catan-go/internal/dependencies/clock"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/storage"
)

// Validation bounds for account fields. The lengths match the column sizes
// in the users table.
const (
	MaxUsernameLength = 50
	MaxEmailLength    = 100
	MinPasswordLength = 8
)

// Controller manages user accounts
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new user Controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreateUser registers a new account. The password is never persisted in
// plaintext; only its bcrypt hash is stored.
func (c *Controller) CreateUser(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, model.NewValidationError("username must not be empty")
	}
	if len(username) > MaxUsernameLength {
		return nil, model.NewValidationError("username must be at most %d characters", MaxUsernameLength)
	}
	if email == "" || len(email) > MaxEmailLength {
		return nil, model.NewValidationError("email must be a non-empty address of at most %d characters", MaxEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, model.NewValidationError("email %q is not a valid address", email)
	}
	if len(password) < MinPasswordLength {
		return nil, model.NewValidationError("password must be at least %d characters", MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	user := &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hash),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := c.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	c.logger.Info("user created",
		slog.Int64("user_id", int64(user.ID)),
		slog.String("username", user.Username),
	)

	return user, nil
}

// GetUser retrieves a user by ID
func (c *Controller) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return c.storage.GetUser(ctx, id)
}

// ListUsers returns a page of users ordered by ID
func (c *Controller) ListUsers(ctx context.Context, skip, limit int) ([]*model.User, error) {
	params := storage.ListParams{Skip: skip, Limit: limit}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.storage.ListUsers(ctx, params)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateUser(ctx context.Context, username, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]*model.User, error)
}

var _ ControllerInterface = (*Controller)(nil)
