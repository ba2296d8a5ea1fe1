package services

import (
	"errors"
	"time"

	"newsroom/config"
	"newsroom/models"
	"newsroom/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	ReassignRole(actor *models.User, userID uint, role models.Role) (*models.User, error)
	DeleteUser(actor *models.User, userID uint) error
}

type authService struct {
	userRepo      repositories.UserRepository
	publisherRepo repositories.PublisherRepository
}

func NewAuthService(userRepo repositories.UserRepository, publisherRepo repositories.PublisherRepository) AuthService {
	return &authService{userRepo: userRepo, publisherRepo: publisherRepo}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, models.ErrorValidation{Message: "user already exists"}
	}
	existingUser, err = s.userRepo.GetByUsername(req.Username)
	if err == nil && existingUser != nil {
		return nil, models.ErrorValidation{Message: "username already taken"}
	}

	role := req.Role
	if role == "" {
		role = models.RoleReader
	}
	if !role.Valid() {
		return nil, models.ErrorValidation{Message: "unknown role"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// A publisher account implies the publishing organization itself,
	// named after the user. Get-or-create, an existing name is not an
	// error.
	if role == models.RolePublisher {
		if _, err := s.publisherRepo.GetOrCreateByName(user.Username); err != nil {
			return nil, err
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

// ReassignRole is the explicit role-change operation. The repository
// applies the purge rules (authored content, affiliations, reader
// subscriptions) together with the role update in one transaction.
func (s *authService) ReassignRole(actor *models.User, userID uint, role models.Role) (*models.User, error) {
	if !CanReassignRoles(actor) {
		return nil, models.ErrorForbidden{Message: "only editors can reassign roles"}
	}
	if !role.Valid() {
		return nil, models.ErrorValidation{Message: "unknown role"}
	}

	user, err := s.userRepo.ReassignRole(userID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account. The repository cascades to authored
// content, subscription edges on both sides, and staff affiliations.
func (s *authService) DeleteUser(actor *models.User, userID uint) error {
	if !CanReassignRoles(actor) {
		return models.ErrorForbidden{Message: "only editors can delete accounts"}
	}
	if actor.ID == userID {
		return models.ErrorValidation{Message: "cannot delete your own account"}
	}
	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}
	return s.userRepo.Delete(userID)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
