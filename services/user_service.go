package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/5hjiwoo/foodrecommend/models"
	"github.com/5hjiwoo/foodrecommend/utils"
)

type UserService struct {
	db        *gorm.DB
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewUserService(db *gorm.DB, jwtSecret []byte, jwtTTL time.Duration) *UserService {
	return &UserService{db: db, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the user and returns a signed token for it.
func (s *UserService) Register(ctx context.Context, email, password, fullName string) (string, error) {
	email = normalizeEmail(email)

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check existing user: %w", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	user := models.User{Email: email, Password: hashed, FullName: fullName}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return utils.GenerateJWT(s.jwtSecret, user.ID, user.Email, s.jwtTTL)
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(s.jwtSecret, user.ID, user.Email, s.jwtTTL)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findUserByEmail(ctx, s.db, email)
}

// findUserByEmail is the single email lookup shared by the services.
func findUserByEmail(ctx context.Context, db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes the user. Meals, their items and food images go with it
// through the ON DELETE CASCADE foreign keys.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
