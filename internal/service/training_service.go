package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrRoutineNotFound  = errors.New("routine not found")
)

const (
	UnknownMemberLabel   = "Unknown member"
	UnknownExerciseLabel = "Unknown exercise"
)

// ExerciseDetail is an exercise joined with its optional machine and type.
type ExerciseDetail struct {
	domain.Exercise
	TypeLabel   string `json:"typeLabel,omitempty"`
	MachineCode string `json:"machineCode,omitempty"`
	// MediaURL is a presigned download URL when the media field holds an
	// object key and media storage is configured; empty otherwise.
	MediaURL string `json:"mediaUrl,omitempty"`
}

// RoutineDetail is a routine joined across the full reference chain:
// routine -> user, routine -> exercise -> machine -> type. Every link may
// dangle and falls back to a placeholder label.
type RoutineDetail struct {
	domain.Routine
	UserName     string `json:"userName"`
	ExerciseName string `json:"exerciseName"`
	MachineCode  string `json:"machineCode,omitempty"`
	TypeLabel    string `json:"typeLabel,omitempty"`
}

// MediaUploadTicket is a presigned upload slot for exercise media or a
// machine type photo.
type MediaUploadTicket struct {
	ObjectKey string `json:"objectKey"`
	UploadURL string `json:"uploadUrl"`
}

// TrainingService manages exercises and member routines.
type TrainingService interface {
	CreateExercise(ctx context.Context, name, typeID, machineID, media string, mediaType domain.MediaType) (*domain.Exercise, error)
	GetExercise(ctx context.Context, id string) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]ExerciseDetail, error)
	UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error

	CreateRoutine(ctx context.Context, day, userID, exerciseID, timeMinutes, quantity string) (*domain.Routine, error)
	GetRoutine(ctx context.Context, id string) (*domain.Routine, error)
	ListRoutines(ctx context.Context) ([]RoutineDetail, error)
	UpdateRoutine(ctx context.Context, id string, patch domain.RoutinePatch) (*domain.Routine, error)
	DeleteRoutine(ctx context.Context, id string) error

	// GenerateMediaUploadURL issues a presigned PUT URL for uploading media.
	// Returns storage.ErrMediaNotConfigured when no object storage backend
	// was configured.
	GenerateMediaUploadURL(ctx context.Context, contentType string) (*MediaUploadTicket, error)
}

type trainingService struct {
	exerciseRepo repository.ExerciseRepository
	routineRepo  repository.RoutineRepository
	userRepo     repository.UserRepository
	machineRepo  repository.MachineRepository
	typeRepo     repository.MachineTypeRepository
	media        storage.MediaStorage // nil when not configured
}

// NewTrainingService creates a new instance of trainingService. media may be
// nil, in which case upload/download URL generation is disabled.
func NewTrainingService(
	exerciseRepo repository.ExerciseRepository,
	routineRepo repository.RoutineRepository,
	userRepo repository.UserRepository,
	machineRepo repository.MachineRepository,
	typeRepo repository.MachineTypeRepository,
	media storage.MediaStorage,
) TrainingService {
	return &trainingService{
		exerciseRepo: exerciseRepo,
		routineRepo:  routineRepo,
		userRepo:     userRepo,
		machineRepo:  machineRepo,
		typeRepo:     typeRepo,
		media:        media,
	}
}

// --- Exercises ---

// CreateExercise registers an exercise. Name and media are required; the
// machine type and machine references are optional.
func (s *trainingService) CreateExercise(ctx context.Context, name, typeID, machineID, media string, mediaType domain.MediaType) (*domain.Exercise, error) {
	if name == "" || media == "" {
		return nil, ErrValidationFailed
	}
	if mediaType != domain.MediaTypeVideo && mediaType != domain.MediaTypeImage {
		return nil, ErrValidationFailed
	}

	e := &domain.Exercise{
		Name:      name,
		Type:      typeID,
		Machine:   machineID,
		Media:     media,
		MediaType: mediaType,
	}
	id, err := s.exerciseRepo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return e, nil
}

func (s *trainingService) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	e, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return e, nil
}

// ListExercises returns every exercise with its optional references
// resolved. A dangling machine or type simply leaves the label empty.
func (s *trainingService) ListExercises(ctx context.Context) ([]ExerciseDetail, error) {
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	machines, err := s.machineRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	machineCodes := make(map[string]string, len(machines))
	for _, m := range machines {
		machineCodes[m.ID] = m.Code
	}
	labels := make(map[string]string, len(types))
	for _, t := range types {
		labels[t.ID] = t.Type
	}

	result := make([]ExerciseDetail, len(exercises))
	for i, e := range exercises {
		detail := ExerciseDetail{Exercise: e}
		if e.Type != "" {
			detail.TypeLabel = labels[e.Type] // empty when the type is gone
		}
		if e.Machine != "" {
			detail.MachineCode = machineCodes[e.Machine]
		}
		detail.MediaURL = s.resolveMediaURL(ctx, e.Media)
		result[i] = detail
	}
	return result, nil
}

func (s *trainingService) UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, ErrValidationFailed
	}
	if patch.MediaType != nil && *patch.MediaType != domain.MediaTypeVideo && *patch.MediaType != domain.MediaTypeImage {
		return nil, ErrValidationFailed
	}

	e, err := s.exerciseRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return e, nil
}

// DeleteExercise removes the exercise and, for app-managed media, the
// uploaded object behind it. Object cleanup is best effort: the record is
// already gone, and an orphaned object is preferable to a failed delete.
func (s *trainingService) DeleteExercise(ctx context.Context, id string) error {
	e, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		return err
	}

	if e != nil && s.media != nil && strings.HasPrefix(e.Media, mediaKeyPrefix) {
		_ = s.media.DeleteObject(ctx, e.Media)
	}
	return nil
}

// --- Routines ---

func (s *trainingService) CreateRoutine(ctx context.Context, day, userID, exerciseID, timeMinutes, quantity string) (*domain.Routine, error) {
	if day == "" || userID == "" || exerciseID == "" || timeMinutes == "" || quantity == "" {
		return nil, ErrValidationFailed
	}

	r := &domain.Routine{
		Day:      day,
		User:     userID,
		Exercise: exerciseID,
		Time:     timeMinutes,
		Quantity: quantity,
	}
	id, err := s.routineRepo.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	r.ID = id
	return r, nil
}

func (s *trainingService) GetRoutine(ctx context.Context, id string) (*domain.Routine, error) {
	r, err := s.routineRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return r, nil
}

// ListRoutines resolves each routine's member and the exercise chain down to
// the machine type. Any missing link degrades to a placeholder; a broken
// reference never fails the whole list.
func (s *trainingService) ListRoutines(ctx context.Context) ([]RoutineDetail, error) {
	routines, err := s.routineRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	machines, err := s.machineRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	userNames := make(map[string]string, len(users))
	for _, u := range users {
		userNames[u.ID] = strings.TrimSpace(u.Name + " " + u.Surname)
	}
	exerciseByID := make(map[string]domain.Exercise, len(exercises))
	for _, e := range exercises {
		exerciseByID[e.ID] = e
	}
	machineByID := make(map[string]domain.Machine, len(machines))
	for _, m := range machines {
		machineByID[m.ID] = m
	}
	labels := make(map[string]string, len(types))
	for _, t := range types {
		labels[t.ID] = t.Type
	}

	result := make([]RoutineDetail, len(routines))
	for i, r := range routines {
		detail := RoutineDetail{
			Routine:      r,
			UserName:     UnknownMemberLabel,
			ExerciseName: UnknownExerciseLabel,
		}
		if name, ok := userNames[r.User]; ok {
			detail.UserName = name
		}
		if e, ok := exerciseByID[r.Exercise]; ok {
			detail.ExerciseName = e.Name
			if m, ok := machineByID[e.Machine]; ok {
				detail.MachineCode = m.Code
				detail.TypeLabel = labels[m.Type]
			}
		}
		result[i] = detail
	}
	return result, nil
}

func (s *trainingService) UpdateRoutine(ctx context.Context, id string, patch domain.RoutinePatch) (*domain.Routine, error) {
	r, err := s.routineRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *trainingService) DeleteRoutine(ctx context.Context, id string) error {
	return s.routineRepo.Delete(ctx, id)
}

// --- Media ---

// Object keys for media uploaded through the app. Anything else stored in a
// media field (absolute URIs picked on-device) is passed through untouched.
const mediaKeyPrefix = "media/"

// GenerateMediaUploadURL issues a presigned upload URL with a fresh object
// key.
func (s *trainingService) GenerateMediaUploadURL(ctx context.Context, contentType string) (*MediaUploadTicket, error) {
	if s.media == nil {
		return nil, storage.ErrMediaNotConfigured
	}
	if contentType == "" {
		return nil, ErrValidationFailed
	}

	objectKey := fmt.Sprintf("%s%s", mediaKeyPrefix, uuid.NewString())
	url, err := s.media.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}
	return &MediaUploadTicket{ObjectKey: objectKey, UploadURL: url}, nil
}

// resolveMediaURL presigns a download URL for app-managed object keys.
// Failures leave the URL empty rather than failing the listing.
func (s *trainingService) resolveMediaURL(ctx context.Context, media string) string {
	if s.media == nil || !strings.HasPrefix(media, mediaKeyPrefix) {
		return ""
	}
	url, err := s.media.GeneratePresignedDownloadURL(ctx, media, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return ""
	}
	return url
}
