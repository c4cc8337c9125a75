package inmemdb

import (
	"context"
	"testing"

	"github.com/hopenndrive/admin/core/user"
)

func setupRepo(t *testing.T) user.Repository {
	t.Helper()
	db, err := Open()
	if err != nil {
		t.Fatalf("Open(): %v", err)
	}
	return NewUserRepository(db)
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	usr, err := repo.CreateUser(ctx, user.User{Email: "awe@test.cm", IsActive: true})
	if err != nil {
		t.Fatalf("CreateUser(): %v", err)
	}
	if usr.ID == "" {
		t.Error("CreateUser() did not assign an ID")
	}

	got, err := repo.GetUserByID(ctx, usr.ID)
	if err != nil {
		t.Fatalf("GetUserByID(): %v", err)
	}
	if got.Email != "awe@test.cm" {
		t.Errorf("GetUserByID() email = %q", got.Email)
	}

	if _, err := repo.GetUserByID(ctx, "nope"); err != user.ErrNotFound {
		t.Errorf("GetUserByID() error = %v, want ErrNotFound", err)
	}

	got, err = repo.GetUserByEmail(ctx, "awe@test.cm")
	if err != nil || got.ID != usr.ID {
		t.Errorf("GetUserByEmail() = (%+v, %v)", got, err)
	}
	if _, err := repo.GetUserByEmail(ctx, "ghost@test.cm"); err != user.ErrNotFound {
		t.Errorf("GetUserByEmail() error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_QueryAllUsers_order(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	emails := []string{"a@test.cm", "b@test.cm", "c@test.cm"}
	for _, email := range emails {
		if _, err := repo.CreateUser(ctx, user.User{Email: email}); err != nil {
			t.Fatalf("CreateUser(): %v", err)
		}
	}

	users, err := repo.QueryAllUsers(ctx)
	if err != nil {
		t.Fatalf("QueryAllUsers(): %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("QueryAllUsers() len = %d, want 3", len(users))
	}
	// insertion order is preserved
	for i, email := range emails {
		if users[i].Email != email {
			t.Errorf("users[%d].Email = %q, want %q", i, users[i].Email, email)
		}
	}
}

func TestUserRepository_CheckEmailUniqueness(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	usr, _ := repo.CreateUser(ctx, user.User{Email: "awe@test.cm"})

	if err := repo.CheckEmailUniqueness(ctx, "new@test.cm"); err != nil {
		t.Errorf("CheckEmailUniqueness() error = %v", err)
	}
	if err := repo.CheckEmailUniqueness(ctx, "awe@test.cm"); err != user.ErrEmailExists {
		t.Errorf("CheckEmailUniqueness() error = %v, want ErrEmailExists", err)
	}
	// the owner of the email is excluded when updating themselves
	if err := repo.CheckEmailUniqueness(ctx, "awe@test.cm", usr); err != nil {
		t.Errorf("CheckEmailUniqueness() error = %v", err)
	}
}

func TestUserRepository_UpdateDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	usr, _ := repo.CreateUser(ctx, user.User{Email: "awe@test.cm"})

	usr.IsActive = true
	updated, err := repo.UpdateUser(ctx, usr)
	if err != nil {
		t.Fatalf("UpdateUser(): %v", err)
	}
	if !updated.IsActive {
		t.Error("UpdateUser() lost the change")
	}

	if _, err := repo.UpdateUser(ctx, user.User{ID: "nope"}); err != user.ErrNotFound {
		t.Errorf("UpdateUser() error = %v, want ErrNotFound", err)
	}

	if err := repo.DeleteUser(ctx, usr.ID); err != nil {
		t.Fatalf("DeleteUser(): %v", err)
	}
	if err := repo.DeleteUser(ctx, usr.ID); err != user.ErrNotFound {
		t.Errorf("DeleteUser() error = %v, want ErrNotFound", err)
	}
	users, _ := repo.QueryAllUsers(ctx)
	if len(users) != 0 {
		t.Errorf("QueryAllUsers() len = %d, want 0", len(users))
	}
}
