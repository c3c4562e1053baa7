package service

import (
	"context"

	"ad-hub/database"
	"ad-hub/database/model"
	"ad-hub/logger"
	"ad-hub/util/crypto"

	"gorm.io/gorm"
)

// UserService persists user accounts and verifies their credentials.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account with a bcrypt-hashed password. The unique
// index on email is the arbiter for concurrent registrations, so a losing
// racer gets ErrDuplicateEmail rather than a second row.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          email,
		HashedPassword: hashedPassword,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsDuplicated(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user iff the email exists and the password
// matches its hash. Any mismatch yields nil; the caller cannot tell an
// unknown email from a wrong password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) *model.User {
	user := &model.User{}
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.HashedPassword, password) {
		return nil
	}
	return user
}
