package services

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/dmitrijs2005/paybook/internal/common"
	"github.com/dmitrijs2005/paybook/internal/logging"
	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/dmitrijs2005/paybook/internal/repositories/kv"
	"github.com/dmitrijs2005/paybook/internal/snapshot"
	"github.com/google/uuid"
)

// RecordStore manages employee pay records.
//
// Contract:
//   - List never fails; no match yields an empty slice.
//   - Add and Update validate input and always recompute tax and insurance.
//   - SetStatus only moves pending -> paid; other transitions are no-ops.
//   - Update, SetStatus, Remove and Get return common.ErrNotFound for an
//     unknown id.
type RecordStore interface {
	List(ctx context.Context, filter models.Filter) []models.EmployeeRecord
	Get(ctx context.Context, id string) (models.EmployeeRecord, error)
	Add(ctx context.Context, in models.EmployeeInput) (models.EmployeeRecord, error)
	Update(ctx context.Context, id string, in models.EmployeeInput) (models.EmployeeRecord, error)
	SetStatus(ctx context.Context, id string, status models.Status) (models.EmployeeRecord, error)
	Remove(ctx context.Context, id string) error
	Positions() []string
	Months() []string
}

// newID is a seam for tests.
var newID = uuid.NewString

type recordStore struct {
	repo    kv.Repository
	log     logging.Logger
	records []models.EmployeeRecord
}

// NewRecordStore loads the employee snapshot from repo. An unreadable
// snapshot starts the store empty; records without a status load as pending.
func NewRecordStore(ctx context.Context, repo kv.Repository, log logging.Logger) (RecordStore, error) {
	records, err := snapshot.Load[models.EmployeeRecord](ctx, repo, common.KeyEmployees, log)
	if err != nil {
		return nil, err
	}
	// Records saved before payout tracking existed have no status.
	for i := range records {
		if records[i].Status == "" {
			records[i].Status = models.StatusPending
		}
	}
	return &recordStore{repo: repo, log: log.With("component", "records"), records: records}, nil
}

func (s *recordStore) List(_ context.Context, filter models.Filter) []models.EmployeeRecord {
	out := make([]models.EmployeeRecord, 0, len(s.records))
	for _, r := range s.records {
		if filter.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *recordStore) indexOf(id string) int {
	return slices.IndexFunc(s.records, func(r models.EmployeeRecord) bool { return r.ID == id })
}

func (s *recordStore) Get(_ context.Context, id string) (models.EmployeeRecord, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.EmployeeRecord{}, fmt.Errorf("record %s: %w", id, common.ErrNotFound)
	}
	return s.records[i], nil
}

// persist writes next as the new snapshot and adopts it only on success.
func (s *recordStore) persist(ctx context.Context, next []models.EmployeeRecord) error {
	if err := snapshot.Save(ctx, s.repo, common.KeyEmployees, next); err != nil {
		return err
	}
	s.records = next
	return nil
}

func (s *recordStore) Add(ctx context.Context, in models.EmployeeInput) (models.EmployeeRecord, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return models.EmployeeRecord{}, err
	}

	rec := models.EmployeeRecord{ID: newID(), Status: models.StatusPending}
	in.Apply(&rec)

	next := append(slices.Clone(s.records), rec)
	if err := s.persist(ctx, next); err != nil {
		return models.EmployeeRecord{}, err
	}

	s.log.Debug(ctx, "record added", "id", rec.ID, "month", rec.Month)
	return rec, nil
}

func (s *recordStore) Update(ctx context.Context, id string, in models.EmployeeInput) (models.EmployeeRecord, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.EmployeeRecord{}, fmt.Errorf("record %s: %w", id, common.ErrNotFound)
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return models.EmployeeRecord{}, err
	}

	next := slices.Clone(s.records)
	in.Apply(&next[i])
	if err := s.persist(ctx, next); err != nil {
		return models.EmployeeRecord{}, err
	}

	s.log.Debug(ctx, "record updated", "id", id)
	return next[i], nil
}

func (s *recordStore) SetStatus(ctx context.Context, id string, status models.Status) (models.EmployeeRecord, error) {
	if !status.Valid() {
		v := models.NewValidator()
		v.Add("status", "must be pending or paid")
		return models.EmployeeRecord{}, v.Err()
	}

	i := s.indexOf(id)
	if i < 0 {
		return models.EmployeeRecord{}, fmt.Errorf("record %s: %w", id, common.ErrNotFound)
	}

	cur := s.records[i]
	if cur.Status == status {
		return cur, nil
	}
	if cur.Status == models.StatusPaid {
		s.log.Warn(ctx, "ignoring status reversal of paid record", "id", id, "requested", status)
		return cur, nil
	}

	next := slices.Clone(s.records)
	next[i].Status = status
	if err := s.persist(ctx, next); err != nil {
		return models.EmployeeRecord{}, err
	}

	s.log.Debug(ctx, "record status changed", "id", id, "status", status)
	return next[i], nil
}

func (s *recordStore) Remove(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("record %s: %w", id, common.ErrNotFound)
	}

	next := slices.Delete(slices.Clone(s.records), i, i+1)
	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.log.Debug(ctx, "record removed", "id", id)
	return nil
}

// Positions returns the distinct positions, sorted.
func (s *recordStore) Positions() []string {
	return distinct(s.records, func(r models.EmployeeRecord) string { return r.Position })
}

// Months returns the distinct pay periods, sorted ascending.
func (s *recordStore) Months() []string {
	return distinct(s.records, func(r models.EmployeeRecord) string { return r.Month })
}

func distinct(records []models.EmployeeRecord, key func(models.EmployeeRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
