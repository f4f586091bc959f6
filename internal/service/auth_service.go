package service

import (
	"context"
	"errors"
	"time"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAdminAlreadyExists   = errors.New("admin with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService handles admin registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Admin, error)
	Login(ctx context.Context, email, password string) (token string, admin *domain.Admin, err error)
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
	GetJWTSecret() string
}

// authService implements the AuthService interface.
type authService struct {
	adminRepo     repository.AdminRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(adminRepo repository.AdminRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 1
	}
	return &authService{
		adminRepo:     adminRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new admin registration.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.Admin, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email, and password cannot be empty")
	}

	// Check if an admin with this email already exists.
	_, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrAdminAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	admin := &domain.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	adminID, err := s.adminRepo.Create(ctx, admin)
	if err != nil {
		return nil, err
	}
	admin.ID = adminID

	// Never hand the hash back to callers.
	admin.PasswordHash = ""
	return admin, nil
}

// Login handles admin authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (token string, admin *domain.Admin, err error) {
	if email == "" || password == "" {
		err = errors.New("email and password cannot be empty")
		return
	}

	admin, err = s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = ErrAuthenticationFailed // Unknown email maps to auth failure
			return
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		err = ErrAuthenticationFailed
		admin = nil
		return
	}

	token, err = s.generateJWT(admin)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	admin.PasswordHash = ""
	return token, admin, nil
}

// ListAdmins returns every admin account with password hashes stripped.
func (s *authService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		admins[i].PasswordHash = ""
	}
	return admins, nil
}

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	AdminID string `json:"uid"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given admin.
func (s *authService) generateJWT(admin *domain.Admin) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gym-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
