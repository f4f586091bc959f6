package service

import (
	"context"
	"errors"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
)

var (
	ErrValidationFailed  = errors.New("validation failed")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateIDNumber = errors.New("a user with this ID number is already registered")
)

// MemberService manages gym member records.
type MemberService interface {
	CreateUser(ctx context.Context, name, surname, idNumber, dob string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByIDNumber(ctx context.Context, idNumber string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type memberService struct {
	userRepo repository.UserRepository
}

// NewMemberService creates a new instance of memberService.
func NewMemberService(userRepo repository.UserRepository) MemberService {
	return &memberService{userRepo: userRepo}
}

// CreateUser registers a new member. All fields are required, matching the
// registration form's rules.
func (s *memberService) CreateUser(ctx context.Context, name, surname, idNumber, dob string) (*domain.User, error) {
	if name == "" || surname == "" || idNumber == "" || dob == "" {
		return nil, ErrValidationFailed
	}

	user := &domain.User{
		Name:     name,
		Surname:  surname,
		IDNumber: idNumber,
		DOB:      dob,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateIDNumber
		}
		return nil, err
	}
	user.ID = userID
	return user, nil
}

func (s *memberService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUserByIDNumber looks a member up by national ID number, the way staff
// identify members at the front desk.
func (s *memberService) GetUserByIDNumber(ctx context.Context, idNumber string) (*domain.User, error) {
	user, err := s.userRepo.GetByIDNumber(ctx, idNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *memberService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser applies a partial update. Empty patch fields are rejected: the
// form never submits blank values, so a present-but-empty field is a caller
// mistake rather than an intentional clear.
func (s *memberService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	for _, f := range []*string{patch.Name, patch.Surname, patch.IDNumber, patch.DOB} {
		if f != nil && *f == "" {
			return nil, ErrValidationFailed
		}
	}

	user, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *memberService) DeleteUser(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
