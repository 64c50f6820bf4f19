package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"stays-backend/models"
	"stays-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService is the identity collaborator: sign-up/sign-in returning a
// session token, plus the AdminUser capability lookup.
type AuthService struct {
	DB       *gorm.DB
	Secret   string
	TokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{DB: db, Secret: secret, TokenTTL: 24 * time.Hour}
}

type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// SignUp creates the account and its profile together, then issues a
// session token.
func (s *AuthService) SignUp(in SignUpInput) (*models.User, string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, "", fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if len(in.Password) < 6 {
		return nil, "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Email: in.Email, Password: string(hash)}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", in.Email).First(&existing).Error; err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{
			UserID:    user.ID,
			FirstName: strings.TrimSpace(in.FirstName),
			LastName:  strings.TrimSpace(in.LastName),
			Phone:     strings.TrimSpace(in.Phone),
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateSessionToken(s.Secret, user.ID, user.Email, s.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) SignIn(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(s.Secret, user.ID, user.Email, s.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// AdminFor returns the AdminUser capability for a user, or nil when the
// user holds none. Row presence is the whole authorization model.
func (s *AuthService) AdminFor(userID uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.DB.Where("user_id = ?", userID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
