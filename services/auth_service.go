package services

import (
	"errors"
	"time"

	"testhub/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for every login mismatch so the response
// never reveals whether the email exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin user. Any mismatch of email, password, or role
// yields ErrInvalidCredentials. On success last_login is stamped and a signed
// session token is issued.
func (s *AuthService) Login(req *LoginRequest) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("email = ? AND role = ?", req.Email, "admin").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, "", err
	}
	user.LastLogin = &now

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
