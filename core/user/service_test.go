package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hopenndrive/admin/core"
)

type fakeRepo struct {
	mu    sync.Mutex
	users map[string]User
	next  int
}

var _ Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]User), next: 1}
}

func (r *fakeRepo) CheckEmailUniqueness(_ context.Context, email string, excluded ...User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
outer:
	for _, usr := range r.users {
		if usr.Email != email {
			continue
		}
		for _, excl := range excluded {
			if excl.ID == usr.ID {
				continue outer
			}
		}
		return ErrEmailExists
	}
	return nil
}

func (r *fakeRepo) CreateUser(_ context.Context, usr User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if usr.ID == "" {
		usr.ID = time.Now().Format("20060102150405.000000000")
	}
	r.users[usr.ID] = usr
	return usr, nil
}

func (r *fakeRepo) QueryAllUsers(_ context.Context) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]User, 0, len(r.users))
	for _, usr := range r.users {
		users = append(users, usr)
	}
	return users, nil
}

func (r *fakeRepo) GetUserByID(_ context.Context, id string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if usr, ok := r.users[id]; ok {
		return usr, nil
	}
	return User{}, ErrNotFound
}

func (r *fakeRepo) GetUserByEmail(_ context.Context, email string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, usr := range r.users {
		if usr.Email == email {
			return usr, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *fakeRepo) UpdateUser(_ context.Context, usr User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[usr.ID]; !ok {
		return User{}, ErrNotFound
	}
	r.users[usr.ID] = usr
	return usr, nil
}

func (r *fakeRepo) DeleteUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type mailRecorder struct {
	mu   sync.Mutex
	sent []*core.EmailMessage
}

var _ core.EmailService = (*mailRecorder)(nil)

func (m *mailRecorder) SendMessages(messages ...*core.EmailMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, messages...)
}

func testConfig() *core.Config {
	return &core.Config{
		TestMode:                  true,
		AppName:                   "Hopenn Drive",
		SecretKey:                 "secret",
		FrontendBaseURL:           "http://localhost:3000",
		PasswordResetTimeoutDelta: 3 * 24 * time.Hour,
	}
}

func setupService() (*Service, *fakeRepo, *mailRecorder) {
	repo := newFakeRepo()
	mailSvc := &mailRecorder{}
	return NewService(testConfig(), repo, mailSvc), repo, mailSvc
}

func TestService_Create(t *testing.T) {
	svc, _, _ := setupService()
	ctx := context.Background()

	nu := NewUser{Email: "Awe@Test.CM ", Password: "Password1!", PasswordConfirm: "Password1!"}
	if err := nu.Validate(svc); err != nil {
		t.Fatalf("Validate(): %v", err)
	}
	if nu.Email != "awe@test.cm" {
		t.Errorf("Validate() email = %q, want cleaned and lowered", nu.Email)
	}

	usr, err := svc.Create(ctx, nu)
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}
	if !usr.IsActive {
		t.Error("Create() user not active")
	}
	if err := usr.CheckPassword("Password1!"); err != nil {
		t.Errorf("CheckPassword(): %v", err)
	}

	// duplicate email is rejected at validation
	dup := NewUser{Email: "awe@test.cm", Password: "Password1!", PasswordConfirm: "Password1!"}
	if err := dup.Validate(svc); err == nil {
		t.Error("Validate() expected uniqueness error")
	}
}

func TestNewUser_Validate_policy(t *testing.T) {
	svc, _, _ := setupService()

	tests := []struct {
		name    string
		nu      NewUser
		wantErr bool
	}{
		{name: "valid", nu: NewUser{Email: "a@test.cm", Password: "Password1!", PasswordConfirm: "Password1!"}},
		{name: "bad email", nu: NewUser{Email: "nope", Password: "Password1!", PasswordConfirm: "Password1!"}, wantErr: true},
		{name: "too short", nu: NewUser{Email: "a@test.cm", Password: "Pa1!", PasswordConfirm: "Pa1!"}, wantErr: true},
		{name: "no complexity", nu: NewUser{Email: "a@test.cm", Password: "password", PasswordConfirm: "password"}, wantErr: true},
		{name: "mismatch", nu: NewUser{Email: "a@test.cm", Password: "Password1!", PasswordConfirm: "Password2!"}, wantErr: true},
		{name: "similar to email", nu: NewUser{Email: "password1@test.cm", Password: "Password1@test.00", PasswordConfirm: "Password1@test.00"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.nu.Validate(svc); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	svc, repo, _ := setupService()
	ctx := context.Background()

	usr, err := svc.Create(ctx, NewUser{Email: "awe@test.cm", Password: "Password1!", PasswordConfirm: "Password1!"})
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}

	got, err := svc.Authenticate(ctx, "Awe@Test.CM", "Password1!")
	if err != nil {
		t.Fatalf("Authenticate(): %v", err)
	}
	if got.LastLogin.IsZero() {
		t.Error("Authenticate() did not stamp lastLogin")
	}

	if _, err := svc.Authenticate(ctx, "awe@test.cm", "wrong"); err != ErrAuthenticationFailed {
		t.Errorf("Authenticate() error = %v, want ErrAuthenticationFailed", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@test.cm", "Password1!"); err != ErrAuthenticationFailed {
		t.Errorf("Authenticate() error = %v, want ErrAuthenticationFailed", err)
	}

	usr.IsActive = false
	if _, err := repo.UpdateUser(ctx, usr); err != nil {
		t.Fatalf("UpdateUser(): %v", err)
	}
	if _, err := svc.Authenticate(ctx, "awe@test.cm", "Password1!"); err != ErrAccountDeactivated {
		t.Errorf("Authenticate() error = %v, want ErrAccountDeactivated", err)
	}
}

func TestService_passwordResetFlow(t *testing.T) {
	svc, _, mailSvc := setupService()
	ctx := context.Background()

	usr, err := svc.Create(ctx, NewUser{Email: "awe@test.cm", Password: "Password1!", PasswordConfirm: "Password1!"})
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}

	if err := svc.RequestPasswordReset(ctx, "awe@test.cm"); err != nil {
		t.Fatalf("RequestPasswordReset(): %v", err)
	}
	if len(mailSvc.sent) != 1 {
		t.Fatalf("sent mails = %d, want 1", len(mailSvc.sent))
	}

	if err := svc.RequestPasswordReset(ctx, "nobody@test.cm"); err != ErrNotFound {
		t.Errorf("RequestPasswordReset() error = %v, want ErrNotFound", err)
	}

	token, err := MakeToken(usr)
	if err != nil {
		t.Fatalf("MakeToken(): %v", err)
	}
	rp := ResetUserPassword{
		Token:           token,
		UID:             EncodeUID(usr),
		Password:        "NewPassword1!",
		PasswordConfirm: "NewPassword1!",
	}
	if err := rp.Validate(); err != nil {
		t.Fatalf("Validate(): %v", err)
	}
	if err := svc.ResetPassword(ctx, rp); err != nil {
		t.Fatalf("ResetPassword(): %v", err)
	}

	if _, err := svc.Authenticate(ctx, "awe@test.cm", "NewPassword1!"); err != nil {
		t.Errorf("Authenticate() with new password: %v", err)
	}

	// the old token is invalidated by the password change
	if err := svc.ResetPassword(ctx, rp); err == nil {
		t.Error("ResetPassword() expected error for stale token")
	}
}
