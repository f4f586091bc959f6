package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

func newTestStore(t *testing.T) storage.CollectionStore {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func TestUserCreateThenGetByID(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	user := &domain.User{Name: "Ana", Surname: "Diaz", IDNumber: "V-1001", DOB: "1990-04-02"}
	id, err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned empty id")
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	want := domain.User{ID: id, Name: "Ana", Surname: "Diaz", IDNumber: "V-1001", DOB: "1990-04-02"}
	if *got != want {
		t.Errorf("GetByID = %+v, want %+v", *got, want)
	}
}

func TestUserDuplicateIDNumber(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Name: "Ana", Surname: "Diaz", IDNumber: "V-1001", DOB: "1990-04-02"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := repo.Create(ctx, &domain.User{Name: "Eva", Surname: "Ruiz", IDNumber: "V-1001", DOB: "1985-11-20"})
	if !errors.Is(err, repository.ErrDuplicateKey) {
		t.Fatalf("Create duplicate: err = %v, want ErrDuplicateKey", err)
	}

	// A rejected create must not write anything.
	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("List after rejected create: %d users, want 1", len(users))
	}
}

func TestUserUpdatePatchSemantics(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{Name: "Ana", Surname: "Diaz", IDNumber: "V-1001", DOB: "1990-04-02"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newSurname := "Diaz de Leon"
	updated, err := repo.Update(ctx, id, domain.UserPatch{Surname: &newSurname})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Surname != newSurname {
		t.Errorf("Surname = %q, want %q", updated.Surname, newSurname)
	}
	// Non-patched fields keep their prior values.
	if updated.Name != "Ana" || updated.IDNumber != "V-1001" || updated.DOB != "1990-04-02" {
		t.Errorf("non-patched fields changed: %+v", updated)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got != *updated {
		t.Errorf("persisted user %+v differs from update result %+v", *got, *updated)
	}
}

func TestUserUpdateNotFound(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Name: "Ana", Surname: "Diaz", IDNumber: "V-1001", DOB: "1990-04-02"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Ghost"
	_, err := repo.Update(ctx, "no-such-id", domain.UserPatch{Name: &name})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Update missing id: err = %v, want ErrNotFound", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 || users[0].Name != "Ana" {
		t.Errorf("collection changed by failed update: %+v", users)
	}
}

func TestUserDelete(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{Name: "Ana", Surname: "Diaz", IDNumber: "V-1001", DOB: "1990-04-02"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrNotFound", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("List after delete: %d users, want 0", len(users))
	}

	// Deleting a nonexistent id is a no-op success.
	if err := repo.Delete(ctx, id); err != nil {
		t.Errorf("Delete absent id: %v", err)
	}
}

func TestUserListIdempotent(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	for _, u := range []domain.User{
		{Name: "Ana", Surname: "Diaz", IDNumber: "V-1001", DOB: "1990-04-02"},
		{Name: "Eva", Surname: "Ruiz", IDNumber: "V-1002", DOB: "1985-11-20"},
	} {
		u := u
		if _, err := repo.Create(ctx, &u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List (second): %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("List lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("List[%d] differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestUserGetByIDNumber(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{Name: "Ana", Surname: "Diaz", IDNumber: "V-1001", DOB: "1990-04-02"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByIDNumber(ctx, "V-1001")
	if err != nil {
		t.Fatalf("GetByIDNumber: %v", err)
	}
	if got.ID != id {
		t.Errorf("GetByIDNumber id = %q, want %q", got.ID, id)
	}

	if _, err := repo.GetByIDNumber(ctx, "V-9999"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByIDNumber miss: err = %v, want ErrNotFound", err)
	}
}

func TestUserListReadsCorruptCollectionAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	// Plant garbage bytes where the users collection lives; the corruption
	// is only observed on read.
	path := filepath.Join(dir, storage.CollectionUsers+".json")
	if err := os.WriteFile(path, []byte(`{"oops":`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	repo := NewUserRepository(store)
	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List over corrupt collection: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("List over corrupt collection: %d users, want 0", len(users))
	}
}
