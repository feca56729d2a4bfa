package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-health-tracker/internal/domain/apperr"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, apperr.NotFound("pet")
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func intPtr(v int) *int { return &v }

// -------------------------
// Tests
// -------------------------

func TestService_Create_RequiredFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []struct {
		name  string
		owner string
		in    CreateInput
	}{
		{"missing owner", "", CreateInput{Name: "Max", Species: "dog", Age: intPtr(3)}},
		{"missing name", "owner-1", CreateInput{Species: "dog", Age: intPtr(3)}},
		{"missing species", "owner-1", CreateInput{Name: "Max", Age: intPtr(3)}},
		{"missing age", "owner-1", CreateInput{Name: "Max", Species: "dog"}},
		{"negative age", "owner-1", CreateInput{Name: "Max", Species: "dog", Age: intPtr(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.owner, tc.in)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestService_Create_TrimsAndStamps(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	now := time.Date(2024, 2, 25, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:    "  Max ",
		Species: "dog",
		Age:     intPtr(0),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Name != "Max" || p.Breed != "" || p.Age != 0 {
		t.Fatalf("unexpected pet %#v", p)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Fatalf("expected pet to be stored")
	}
}

func TestService_Authorize(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	p, _ := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Luna", Species: "cat", Age: intPtr(2)})

	if _, err := svc.Authorize(context.Background(), p.ID, "owner-1"); err != nil {
		t.Fatalf("owner should be authorized, got %v", err)
	}
	if _, err := svc.Authorize(context.Background(), p.ID, "other"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Authorize(context.Background(), "missing", "owner-1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Update_Partial(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	p, _ := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Luna", Species: "cat", Breed: "Siamese", Age: intPtr(2)})

	empty := ""
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{Breed: &empty, Age: intPtr(3)})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Name != "Luna" || updated.Breed != "" || updated.Age != 3 {
		t.Fatalf("unexpected update result %#v", updated)
	}

	blank := "  "
	if _, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &blank}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank name, got %v", err)
	}
}

func TestService_Delete_TwiceIsNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	p, _ := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Luna", Species: "cat", Age: intPtr(2)})

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), p.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
