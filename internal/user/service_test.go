package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/facility-booking-backend/internal/auth"
)

type fakeUserRepo struct {
	users  map[int64]*User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrEmailAlreadyUsed
		}
	}
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeUserRepo) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, id int64, t time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastLoginAt = &t
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success with defaults", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestService(repo)

		u, err := svc.Register(ctx, RegisterInput{
			Email:    "  Alice@Example.COM ",
			Password: "password123",
			FullName: "Alice Chen",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, RoleStudent, u.Role)
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "password123", u.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestService(repo)

		_, err := svc.Register(ctx, RegisterInput{Email: "a@b.edu", Password: "password123"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterInput{Email: "A@B.edu", Password: "password123"})
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("short password", func(t *testing.T) {
		svc := newTestService(newFakeUserRepo())

		_, err := svc.Register(ctx, RegisterInput{Email: "a@b.edu", Password: "short"})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := newTestService(newFakeUserRepo())

		_, err := svc.Register(ctx, RegisterInput{Email: "   ", Password: "password123"})
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc := newTestService(newFakeUserRepo())

		_, err := svc.Register(ctx, RegisterInput{Email: "a@b.edu", Password: "password123", Role: "dean"})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("explicit role is kept", func(t *testing.T) {
		svc := newTestService(newFakeUserRepo())

		u, err := svc.Register(ctx, RegisterInput{Email: "a@b.edu", Password: "password123", Role: "Lecturer"})
		require.NoError(t, err)
		assert.Equal(t, RoleLecturer, u.Role)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *fakeUserRepo) {
		repo := newFakeUserRepo()
		svc := newTestService(repo)
		_, err := svc.Register(ctx, RegisterInput{
			Email:    "alice@example.com",
			Password: "password123",
			FullName: "Alice Chen",
		})
		require.NoError(t, err)
		return svc, repo
	}

	t.Run("success updates last login", func(t *testing.T) {
		svc, repo := setup(t)

		u, err := svc.Login(ctx, "ALICE@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)

		stored, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(ctx, "alice@example.com", "wrong-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		svc, repo := setup(t)

		for _, u := range repo.users {
			u.IsActive = false
		}

		_, err := svc.Login(ctx, "alice@example.com", "password123")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	u, err := svc.Register(ctx, RegisterInput{Email: "bob@b.edu", Password: "password123", FullName: "Bob"})
	require.NoError(t, err)

	t.Run("role change", func(t *testing.T) {
		role := "admin"
		updated, err := svc.Update(ctx, u.ID, UpdateInput{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, updated.Role)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		role := "superuser"
		_, err := svc.Update(ctx, u.ID, UpdateInput{Role: &role})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("deactivate", func(t *testing.T) {
		inactive := false
		updated, err := svc.Update(ctx, u.ID, UpdateInput{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "Ghost"
		_, err := svc.Update(ctx, 404, UpdateInput{FullName: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
