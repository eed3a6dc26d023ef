package records

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockRepo struct {
	created   *Record
	updated   *Record
	updatedID string
	deleted   string
	records   map[string]*Record
	summaries []Summary
	searchQ   string
	err       error
}

func (m *mockRepo) Create(_ context.Context, r *Record) error {
	if m.err != nil {
		return m.err
	}
	m.created = r
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (m *mockRepo) Update(_ context.Context, id string, r *Record) error {
	if m.err != nil {
		return m.err
	}
	m.updatedID = id
	m.updated = r
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	m.deleted = id
	return m.err
}

func (m *mockRepo) ListSummaries(_ context.Context) ([]Summary, error) {
	return m.summaries, m.err
}

func (m *mockRepo) SearchByName(_ context.Context, q string) ([]Summary, error) {
	m.searchQ = q
	return m.summaries, m.err
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestServiceCreateDerivesAge(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	rec := validRecord() // dob 2020-01-31
	if err := svc.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.created == nil {
		t.Fatal("record never reached the repository")
	}
	if repo.created.Age == nil || *repo.created.Age != "4y 1m -1d" {
		t.Errorf("derived age = %v, want 4y 1m -1d", repo.created.Age)
	}
}

func TestServiceCreateWithoutDOBLeavesAgeNil(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	rec := &Record{PatientID: "KUM-010", Name: "Ravi"}
	if err := svc.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.created.Age != nil {
		t.Errorf("age = %v, want nil", repo.created.Age)
	}
}

func TestServiceCreateRejectsInvalid(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	err := svc.Create(context.Background(), &Record{Name: "no id"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if repo.created != nil {
		t.Error("invalid record reached the repository")
	}
}

func TestServiceUpdateAppliesSameRules(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	// the update body must carry patient_id even though the row key
	// comes from the path
	err := svc.Update(context.Background(), "KUM-001", &Record{Name: "Asha"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}

	rec := validRecord()
	if err := svc.Update(context.Background(), "KUM-001", rec); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.updatedID != "KUM-001" {
		t.Errorf("updated id = %q, want KUM-001", repo.updatedID)
	}
	if repo.updated.Age == nil || *repo.updated.Age != "4y 1m -1d" {
		t.Errorf("derived age = %v, want 4y 1m -1d", repo.updated.Age)
	}
}

func TestServicePassthroughs(t *testing.T) {
	rec := validRecord()
	repo := &mockRepo{
		records:   map[string]*Record{"KUM-001": rec},
		summaries: []Summary{{PatientID: "KUM-001", Name: "Asha"}},
	}
	svc := newTestService(repo)
	ctx := context.Background()

	got, err := svc.Get(ctx, "KUM-001")
	if err != nil || got != rec {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}

	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %v, %v", list, err)
	}

	if _, err := svc.Search(ctx, "ash"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if repo.searchQ != "ash" {
		t.Errorf("search query = %q, want ash", repo.searchQ)
	}

	if err := svc.Delete(ctx, "KUM-001"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if repo.deleted != "KUM-001" {
		t.Errorf("deleted id = %q, want KUM-001", repo.deleted)
	}
}
