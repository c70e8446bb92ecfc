package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"

	"tripline/internal/models/db_models"
	"tripline/internal/models/request_models"
	"tripline/pkg/utils"
)

type mockUserRepo struct {
	upsertFn    func(ctx context.Context, user *db_models.User) error
	getByIDFn   func(ctx context.Context, id string) (*db_models.User, error)
	listByIDsFn func(ctx context.Context, ids []string) ([]db_models.User, error)
}

func (m *mockUserRepo) Upsert(ctx context.Context, user *db_models.User) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*db_models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) ListByIDs(ctx context.Context, ids []string) ([]db_models.User, error) {
	if m.listByIDsFn != nil {
		return m.listByIDsFn(ctx, ids)
	}
	return nil, nil
}

func upsertRequest() request_models.UpsertUserRequest {
	return request_models.UpsertUserRequest{
		ID:       "7f2c1e4a-9b3d-4f6e-8a1b-2c3d4e5f6a7b",
		Username: "wanderer",
		Email:    "wanderer@example.com",
	}
}

func TestUpsertProfile_UsernameCollisionRetriesOnce(t *testing.T) {
	attempts := 0
	var usernames []string
	repo := &mockUserRepo{
		upsertFn: func(ctx context.Context, user *db_models.User) error {
			attempts++
			usernames = append(usernames, user.Username)
			if attempts == 1 {
				return &pq.Error{Code: "23505"}
			}
			return nil
		},
	}
	svc := NewUserService(repo)

	out, err := svc.UpsertProfile(context.Background(), upsertRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if attempts != 2 {
		t.Fatalf("expected exactly one retry, got %d attempts", attempts)
	}
	if usernames[0] != "wanderer" {
		t.Fatalf("first attempt must use the requested username, got %q", usernames[0])
	}
	if !strings.HasPrefix(usernames[1], "wanderer_") || len(usernames[1]) != len("wanderer_")+8 {
		t.Fatalf("retry username must carry an 8-char id suffix, got %q", usernames[1])
	}
	if out.Username != usernames[1] {
		t.Fatalf("response must reflect the suffixed username, got %q", out.Username)
	}
}

func TestUpsertProfile_SecondCollisionSurfaces(t *testing.T) {
	repo := &mockUserRepo{
		upsertFn: func(ctx context.Context, user *db_models.User) error {
			return &pq.Error{Code: "23505"}
		},
	}
	svc := NewUserService(repo)

	if _, err := svc.UpsertProfile(context.Background(), upsertRequest()); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected ErrDatabaseError after second collision, got %v", err)
	}
}

func TestUpsertProfile_NonCollisionErrorDoesNotRetry(t *testing.T) {
	attempts := 0
	repo := &mockUserRepo{
		upsertFn: func(ctx context.Context, user *db_models.User) error {
			attempts++
			return errors.New("connection reset")
		},
	}
	svc := NewUserService(repo)

	if _, err := svc.UpsertProfile(context.Background(), upsertRequest()); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected ErrDatabaseError, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("non-collision errors must not retry, got %d attempts", attempts)
	}
}

func TestUpsertProfile_InvalidInput(t *testing.T) {
	svc := NewUserService(&mockUserRepo{})

	req := upsertRequest()
	req.ID = "not-a-uuid"
	if _, err := svc.UpsertProfile(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad id, got %v", err)
	}

	req = upsertRequest()
	req.Username = "  "
	if _, err := svc.UpsertProfile(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty username, got %v", err)
	}
}
