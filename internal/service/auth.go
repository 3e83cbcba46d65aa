package service

import (
	"context"
	"errors"
	"fmt"

	"house-points/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Login resolves the username against admins first, then captains, and
// compares the bcrypt hash. Unknown username and wrong password both collapse
// to ErrInvalidCredentials so the response never reveals which field failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.Principal, error) {
	var p model.Principal
	var hash string

	var a model.Admin
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&a).Error
	switch {
	case err == nil:
		p, hash = model.AdminPrincipal(&a), a.PasswordHash
	case errors.Is(err, gorm.ErrRecordNotFound):
		var capt model.Captain
		err = s.db.WithContext(ctx).Where("username = ?", username).First(&capt).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Principal{}, ErrInvalidCredentials
		}
		if err != nil {
			return model.Principal{}, fmt.Errorf("lookup captain: %w", err)
		}
		p, hash = model.CaptainPrincipal(&capt), capt.PasswordHash
	default:
		return model.Principal{}, fmt.Errorf("lookup admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return model.Principal{}, ErrInvalidCredentials
	}
	return p, nil
}

// LoadPrincipal re-resolves a session's principal from storage on each
// request. The role discriminant picks the table, so no cross-table probing.
func (s *AuthService) LoadPrincipal(ctx context.Context, role model.Role, id int) (model.Principal, error) {
	switch role {
	case model.RoleAdmin:
		var a model.Admin
		if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
			return model.Principal{}, fmt.Errorf("load admin %d: %w", id, err)
		}
		return model.AdminPrincipal(&a), nil
	case model.RoleCaptain:
		var c model.Captain
		if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
			return model.Principal{}, fmt.Errorf("load captain %d: %w", id, err)
		}
		return model.CaptainPrincipal(&c), nil
	default:
		return model.Principal{}, ErrUnknownPrincipal
	}
}
