package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymadmin/gym-app/internal/repository/kv"

	"github.com/golang-jwt/jwt/v4"
)

const testJWTSecret = "test-secret-do-not-use"

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(kv.NewAdminRepository(newTestStore(t)), testJWTSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	admin, err := svc.Register(ctx, "Root", "root@gym.local", "s3cret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if admin.ID == "" {
		t.Error("Register returned admin without ID")
	}
	if admin.PasswordHash != "" {
		t.Error("Register leaked the password hash")
	}

	token, logged, err := svc.Login(ctx, "root@gym.local", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != admin.ID || logged.Email != "root@gym.local" {
		t.Errorf("Login admin = %+v", logged)
	}
	if logged.PasswordHash != "" {
		t.Error("Login leaked the password hash")
	}

	// The token must be a valid HS256 JWT carrying the admin identity.
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Email != "root@gym.local" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Root", "root@gym.local", "s3cret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, admin, err := svc.Login(ctx, "root@gym.local", "wrong")
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("wrong password: err = %v, want ErrAuthenticationFailed", err)
	}
	if admin != nil {
		t.Errorf("wrong password returned admin %+v", admin)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@gym.local", "s3cret")
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("unknown email: err = %v, want ErrAuthenticationFailed", err)
	}
}

func TestListAdmins(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Root", "root@gym.local", "s3cret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "Backup", "backup@gym.local", "s3cret2"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	admins, err := svc.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 2 {
		t.Fatalf("ListAdmins: %d admins, want 2", len(admins))
	}
	for _, a := range admins {
		if a.PasswordHash != "" {
			t.Errorf("ListAdmins leaked a password hash for %s", a.Email)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Root", "root@gym.local", "s3cret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, "Other", "root@gym.local", "another")
	if !errors.Is(err, ErrAdminAlreadyExists) {
		t.Errorf("duplicate email: err = %v, want ErrAdminAlreadyExists", err)
	}
}
