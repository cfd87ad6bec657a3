package services

import (
	"context"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	"github.com/kbeautyshop/storefront_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by id; ErrNotFound when absent.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser registers a new user; ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
}

// UserAuthSvc defines credential verification.
type UserAuthSvc interface {
	// Authenticate verifies email and password; ErrUnauthorized on any
	// mismatch (the caller cannot tell a missing user from a wrong password).
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
