package records

import (
	"context"
	"time"
)

// Service validates incoming records, derives the stored age from the
// date of birth, and delegates persistence to the repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, rec *Record) error {
	if verr := Validate(rec); verr != nil {
		return verr
	}
	rec.Age = AgeFromDOB(rec.DOB, s.now())
	return s.repo.Create(ctx, rec)
}

// Update recomputes the age from the submitted date of birth and
// overwrites every stored column of the target row. The same rules as
// Create apply, so the body must carry patient_id and name.
func (s *Service) Update(ctx context.Context, id string, rec *Record) error {
	if verr := Validate(rec); verr != nil {
		return verr
	}
	rec.Age = AgeFromDOB(rec.DOB, s.now())
	return s.repo.Update(ctx, id, rec)
}

func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.ListSummaries(ctx)
}

func (s *Service) Search(ctx context.Context, q string) ([]Summary, error) {
	return s.repo.SearchByName(ctx, q)
}
