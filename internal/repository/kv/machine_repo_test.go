package kv

import (
	"context"
	"errors"
	"testing"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
)

// Mirrors the full lifecycle against an empty store: create, list, delete,
// list again.
func TestMachineLifecycle(t *testing.T) {
	repo := NewMachineRepository(newTestStore(t))
	ctx := context.Background()

	machines, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List on empty store: %v", err)
	}
	if len(machines) != 0 {
		t.Fatalf("List on empty store: %d machines, want 0", len(machines))
	}

	id, err := repo.Create(ctx, &domain.Machine{Code: "M1", Type: "t1", RoomNumber: "3"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned empty id")
	}

	machines, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(machines) != 1 {
		t.Fatalf("List after create: %d machines, want 1", len(machines))
	}
	if machines[0].ID != id || machines[0].Code != "M1" || machines[0].Type != "t1" || machines[0].RoomNumber != "3" {
		t.Errorf("stored machine = %+v", machines[0])
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	machines, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if len(machines) != 0 {
		t.Errorf("List after delete: %d machines, want 0", len(machines))
	}
}

// Deleting a machine must not cascade to exercises that reference it; the
// exercise keeps its dangling reference and lookups report not-found.
func TestMachineDeleteDoesNotCascadeToExercises(t *testing.T) {
	store := newTestStore(t)
	machineRepo := NewMachineRepository(store)
	exerciseRepo := NewExerciseRepository(store)
	ctx := context.Background()

	machineID, err := machineRepo.Create(ctx, &domain.Machine{Code: "M1", Type: "t1", RoomNumber: "3"})
	if err != nil {
		t.Fatalf("Create machine: %v", err)
	}
	exerciseID, err := exerciseRepo.Create(ctx, &domain.Exercise{
		Name:      "Bench press",
		Machine:   machineID,
		Media:     "file:///bench.mp4",
		MediaType: domain.MediaTypeVideo,
	})
	if err != nil {
		t.Fatalf("Create exercise: %v", err)
	}

	if err := machineRepo.Delete(ctx, machineID); err != nil {
		t.Fatalf("Delete machine: %v", err)
	}

	exercise, err := exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		t.Fatalf("GetByID exercise after machine delete: %v", err)
	}
	if exercise.Machine != machineID {
		t.Errorf("exercise machine ref = %q, want %q", exercise.Machine, machineID)
	}

	// The join lookup now misses, which callers render as a fallback.
	if _, err := machineRepo.GetByID(ctx, machineID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByID deleted machine: err = %v, want ErrNotFound", err)
	}
}

func TestMachineUpdatePatch(t *testing.T) {
	repo := NewMachineRepository(newTestStore(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.Machine{Code: "M1", Type: "t1", RoomNumber: "3"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	room := "5"
	updated, err := repo.Update(ctx, id, domain.MachinePatch{RoomNumber: &room})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.RoomNumber != "5" || updated.Code != "M1" || updated.Type != "t1" {
		t.Errorf("Update result = %+v", updated)
	}
}

func TestIDsAreUniqueAndOrdered(t *testing.T) {
	repo := NewMachineRepository(newTestStore(t))
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id, err := repo.Create(ctx, &domain.Machine{Code: "M", Type: "t", RoomNumber: "1"})
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
