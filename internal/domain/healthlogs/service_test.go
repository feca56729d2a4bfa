package healthlogs

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/domain/pets"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Entry
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Entry{}}
}

func (r *testRepo) Create(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := r.byID[e.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, kind Kind, id string) (Entry, error) {
	e, ok := r.byID[id]
	if !ok || e.Kind != kind {
		return Entry{}, apperr.NotFound(kind.Label())
	}
	return e, nil
}

// ListByPet devuelve en orden de inserción inverso a propósito: el servicio debe ordenar.
func (r *testRepo) ListByPet(ctx context.Context, kind Kind, petID string) ([]Entry, error) {
	out := make([]Entry, 0)
	for _, e := range r.byID {
		if e.Kind == kind && e.PetID == petID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, e Entry) error {
	if _, ok := r.byID[e.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Delete(ctx context.Context, kind Kind, id string) error {
	e, ok := r.byID[id]
	if !ok || e.Kind != kind {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) DeleteByPet(ctx context.Context, petID string) error {
	for id, e := range r.byID {
		if e.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}

type testPets map[string]pets.Pet

func (p testPets) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	pet, ok := p[id]
	if !ok {
		return pets.Pet{}, apperr.NotFound("pet")
	}
	return pet, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, testPets{"pet-1": {ID: "pet-1", OwnerUserID: "owner-1"}})
	svc.now = func() time.Time { return time.Date(2024, 2, 25, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func ptr[T any](v T) *T { return &v }

// -------------------------
// Tests
// -------------------------

func TestService_AddWeight_ThenListIncludesRecord(t *testing.T) {
	svc, _ := newTestService()
	date := time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)

	created, err := svc.AddWeight(context.Background(), "pet-1", 25.5, date)
	if err != nil {
		t.Fatalf("AddWeight error: %v", err)
	}

	items, err := svc.List(context.Background(), KindWeight, "pet-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 log, got %d", len(items))
	}
	got := items[0].WeightLog()
	if got != created {
		t.Fatalf("listed log %#v does not match created %#v", got, created)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, repo := newTestService()
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"missing weight", CreateInput{Kind: KindWeight, Date: date}},
		{"non-positive weight", CreateInput{Kind: KindWeight, Date: date, Weight: ptr(Weight(0))}},
		{"missing body condition", CreateInput{Kind: KindBodyCondition, Date: date}},
		{"blank body condition", CreateInput{Kind: KindBodyCondition, Date: date, BodyCondition: ptr("  ")}},
		{"missing date", CreateInput{Kind: KindVetVisit}},
		{"unknown kind", CreateInput{Kind: Kind("mood"), Date: date}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "pet-1", tc.in)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing stored, got %d", len(repo.byID))
	}
}

func TestService_Create_UnknownPet(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddBodyCondition(context.Background(), "missing", "3", time.Now())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_AddVetVisit_EmptyNotesStoredAsNull(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.AddVetVisit(context.Background(), "pet-1", ptr("   "), time.Now())
	if err != nil {
		t.Fatalf("AddVetVisit error: %v", err)
	}
	if v.Notes != nil {
		t.Fatalf("expected nil notes, got %q", *v.Notes)
	}
}

func TestService_List_TotalOrder(t *testing.T) {
	svc, repo := newTestService()
	d1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	for _, e := range []Entry{
		{ID: "c", PetID: "pet-1", Kind: KindWeight, Weight: 1, Date: d1},
		{ID: "b", PetID: "pet-1", Kind: KindWeight, Weight: 2, Date: d2},
		{ID: "a", PetID: "pet-1", Kind: KindWeight, Weight: 3, Date: d2},
		{ID: "z", PetID: "pet-2", Kind: KindWeight, Weight: 4, Date: d2},
	} {
		_ = repo.Create(context.Background(), e)
	}

	items, err := svc.List(context.Background(), KindWeight, "pet-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	var ids []string
	for _, e := range items {
		ids = append(ids, e.ID)
	}
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Fatalf("expected order [a b c], got %v", ids)
	}
}

func TestService_Update_PatchesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestService()
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	w, err := svc.AddWeight(context.Background(), "pet-1", 20, date)
	if err != nil {
		t.Fatalf("AddWeight error: %v", err)
	}

	updated, err := svc.Update(context.Background(), KindWeight, w.ID, UpdateInput{Weight: ptr(Weight(21.25))})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Weight != 21.25 || !updated.Date.Equal(date) {
		t.Fatalf("unexpected update result %#v", updated)
	}

	_, err = svc.Update(context.Background(), KindWeight, w.ID, UpdateInput{Weight: ptr(Weight(-1))})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	_, err = svc.Update(context.Background(), KindWeight, "missing", UpdateInput{})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_TwiceIsNotFoundAndKeepsState(t *testing.T) {
	svc, repo := newTestService()
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	a, _ := svc.AddWeight(context.Background(), "pet-1", 10, date)
	b, _ := svc.AddWeight(context.Background(), "pet-1", 11, date)

	if err := svc.Delete(context.Background(), KindWeight, a.ID); err != nil {
		t.Fatalf("Delete #1 error: %v", err)
	}
	err := svc.Delete(context.Background(), KindWeight, a.ID)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, ok := repo.byID[b.ID]; !ok || len(repo.byID) != 1 {
		t.Fatalf("expected only %s to remain, got %#v", b.ID, repo.byID)
	}
}

func TestService_ListAll_GroupsByKind(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	_, _ = svc.AddWeight(ctx, "pet-1", 10, date)
	_, _ = svc.AddBodyCondition(ctx, "pet-1", "3", date)

	all, err := svc.ListAll(ctx, "pet-1")
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(all.Weights) != 1 || len(all.BodyConditions) != 1 || len(all.VetVisits) != 0 {
		t.Fatalf("unexpected grouping %#v", all)
	}
}

func TestService_Create_CancelledContext(t *testing.T) {
	svc, repo := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AddWeight(ctx, "pet-1", 10, time.Now())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing stored after cancellation")
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"weight":         KindWeight,
		"Body":           KindBodyCondition,
		"body-condition": KindBodyCondition,
		"vet":            KindVetVisit,
		"vet-visits":     KindVetVisit,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseKind("mood"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown kind, got %v", err)
	}
}

func TestParseWeight(t *testing.T) {
	ok := map[string]Weight{"25.5": 25.5, " 26 ": 26, "25,5": 25.5}
	for in, want := range ok {
		got, err := ParseWeight(in)
		if err != nil || got != want {
			t.Fatalf("ParseWeight(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "abc", "NaN", "-3", "0"} {
		if _, err := ParseWeight(in); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("ParseWeight(%q): expected ErrValidation, got %v", in, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)

	got, err := ParseDate("2024-02-25", loc)
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if got.Location() != loc || got.Day() != 25 {
		t.Fatalf("expected 2024-02-25 in %s, got %v", loc, got)
	}

	got, err = ParseDate("2024-02-25T10:00:00Z", loc)
	if err != nil || !got.Equal(time.Date(2024, 2, 25, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected RFC3339 parse %v, %v", got, err)
	}

	// "+02:00" sin escapar en una URL se decodifica como espacio
	for _, in := range []string{"2024-02-25T12:00:00+02:00", "2024-02-25T12:00:00 02:00", "2024-02-25T12:00:00.5 02:00"} {
		got, err := ParseDate(in, loc)
		if err != nil {
			t.Fatalf("ParseDate(%q) error: %v", in, err)
		}
		if !got.Truncate(time.Second).Equal(time.Date(2024, 2, 25, 10, 0, 0, 0, time.UTC)) {
			t.Fatalf("ParseDate(%q): expected 10:00 UTC, got %v", in, got)
		}
	}

	for _, in := range []string{"", "yesterday", "2024-13-01", "2024-02-25 02:00", "2024-02-25T12:00:00 2:00"} {
		if _, err := ParseDate(in, loc); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("ParseDate(%q): expected ErrValidation, got %v", in, err)
		}
	}
}
