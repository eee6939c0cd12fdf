package auth

import (
	"context"
	"errors"
	"testing"

	"tunitech/internal/domain/user"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if f.err != nil {
		return f.err
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[u.ID]; !ok {
		return user.ErrNotFound
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		Email:    "  Dev@Example.COM ",
		Password: "hunter2hunter2",
		Role:     "developer",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.Email != "dev@example.com" {
		t.Errorf("email not normalized: %q", created.Email)
	}
	if created.Role != user.RoleDeveloper {
		t.Errorf("role = %q", created.Role)
	}
	if created.PasswordHash != "" {
		t.Error("password hash leaked in register response")
	}

	got, err := svc.Login(ctx, LoginInput{Email: "dev@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("login returned different user: %s vs %s", got.ID, created.ID)
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"empty email", RegisterInput{Email: "", Password: "hunter2hunter2", Role: "customer"}},
		{"short password", RegisterInput{Email: "a@b.c", Password: "short", Role: "customer"}},
		{"unknown role", RegisterInput{Email: "a@b.c", Password: "hunter2hunter2", Role: "admin"}},
		{"empty role", RegisterInput{Email: "a@b.c", Password: "hunter2hunter2"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	in := RegisterInput{Email: "dup@example.com", Password: "hunter2hunter2", Role: "customer"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Errorf("err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "x@y.z", Password: "hunter2hunter2", Role: "customer"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "x@y.z", Password: "wrongwrongwrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "nobody@y.z", Password: "hunter2hunter2"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}
