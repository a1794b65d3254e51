package record_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/kotani6053/nakatu.yasumi/internal/messaging/kafka"
	"github.com/kotani6053/nakatu.yasumi/internal/record"
	recorderrors "github.com/kotani6053/nakatu.yasumi/internal/record/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRecordRepository struct {
	withTxFn   func(tx *sql.Tx) record.Repository
	createFn   func(ctx context.Context, r *record.LeaveRecord) error
	findAllFn  func(ctx context.Context) ([]record.LeaveRecord, error)
	findByIDFn func(ctx context.Context, id string) (*record.LeaveRecord, error)
	updateFn   func(ctx context.Context, r *record.LeaveRecord) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRecordRepository) WithTx(tx *sql.Tx) record.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeRecordRepository) Create(ctx context.Context, r *record.LeaveRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeRecordRepository) FindAll(ctx context.Context) ([]record.LeaveRecord, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRecordRepository) FindByID(ctx context.Context, id string) (*record.LeaveRecord, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeRecordRepository) Update(ctx context.Context, r *record.LeaveRecord) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, r)
	}
	return nil
}

func (f *fakeRecordRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeNotifier struct {
	notified int
}

func (f *fakeNotifier) RecordsChanged(ctx context.Context) { f.notified++ }

type recordServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  record.Service
	repo     *fakeRecordRepository
	outbox   *fakeOutboxRepository
	notifier *fakeNotifier
}

func setupRecordServiceTest(t *testing.T) *recordServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeRecordRepository{}
	outbox := &fakeOutboxRepository{}
	notifier := &fakeNotifier{}
	svc := record.NewServiceWithOutbox(db, repo, outbox, notifier)

	return &recordServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		outbox:   outbox,
		notifier: notifier,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestRecordService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupRecordServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := record.SaveRecordRequest{
			Name:     "Sato",
			Category: "paid-leave",
			Reason:   "personal errand",
			Date:     "2025-04-10",
		}

		deps.repo.createFn = func(ctx context.Context, r *record.LeaveRecord) error {
			assert.NotEqual(t, uuid.Nil, r.ID)
			assert.Equal(t, "Sato", r.Name)
			assert.Equal(t, record.CategoryPaidLeave, r.Category)
			assert.Equal(t, "2025-04-10", record.FormatDay(*r.Date))
			return nil
		}

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Sato", resp.Name)
		assert.Equal(t, "paid-leave", resp.Category)
		assert.Equal(t, "2025-04-10", *resp.Date)
		assert.Equal(t, 1, deps.notifier.notified)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "record_created", deps.outbox.created[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate, nothing persisted", func(t *testing.T) {
		deps := setupRecordServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		existing := pointRecord(t, "Sato", "2025-04-10")
		deps.repo.findAllFn = func(ctx context.Context) ([]record.LeaveRecord, error) {
			return []record.LeaveRecord{existing}, nil
		}
		createCalled := false
		deps.repo.createFn = func(ctx context.Context, r *record.LeaveRecord) error {
			createCalled = true
			return nil
		}

		_, err := deps.service.Create(ctx, record.SaveRecordRequest{
			Name:     "Sato",
			Category: "paid-leave",
			Date:     "2025-04-10",
		})

		assert.ErrorIs(t, err, recorderrors.ErrDuplicateRecord)
		assert.False(t, createCalled)
		assert.Empty(t, deps.outbox.created)
		assert.Equal(t, 0, deps.notifier.notified)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative validation fails before any transaction", func(t *testing.T) {
		deps := setupRecordServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, record.SaveRecordRequest{
			Name:     "Sato",
			Category: "extended-leave",
			StartDate: "2025-04-05",
			EndDate:   "2025-04-01",
		})

		assert.ErrorIs(t, err, recorderrors.ErrInvalidDateRange)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestRecordService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps id and createdAt", func(t *testing.T) {
		deps := setupRecordServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		existing := pointRecord(t, "Sato", "2025-04-10")

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*record.LeaveRecord, error) {
			assert.Equal(t, existing.ID.String(), id)
			rec := existing
			return &rec, nil
		}
		deps.repo.findAllFn = func(ctx context.Context) ([]record.LeaveRecord, error) {
			return []record.LeaveRecord{existing}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, r *record.LeaveRecord) error {
			assert.Equal(t, existing.ID, r.ID)
			assert.Equal(t, existing.CreatedAt, r.CreatedAt)
			assert.Equal(t, record.CategoryAbsence, r.Category)
			return nil
		}

		// Same name and day as the stored record: the exclusion keeps the
		// edit from colliding with itself.
		resp, err := deps.service.Update(ctx, existing.ID.String(), record.SaveRecordRequest{
			Name:     "Sato",
			Category: "absence",
			Date:     "2025-04-10",
		})

		assert.NoError(t, err)
		assert.Equal(t, existing.ID.String(), resp.ID)
		assert.Equal(t, 1, deps.notifier.notified)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "record_updated", deps.outbox.created[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate against another record", func(t *testing.T) {
		deps := setupRecordServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		edited := pointRecord(t, "Sato", "2025-04-10")
		other := pointRecord(t, "Sato", "2025-04-11")

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*record.LeaveRecord, error) {
			rec := edited
			return &rec, nil
		}
		deps.repo.findAllFn = func(ctx context.Context) ([]record.LeaveRecord, error) {
			return []record.LeaveRecord{edited, other}, nil
		}

		// Moving the edited record onto the other record's day.
		_, err := deps.service.Update(ctx, edited.ID.String(), record.SaveRecordRequest{
			Name:     "Sato",
			Category: "paid-leave",
			Date:     "2025-04-11",
		})

		assert.ErrorIs(t, err, recorderrors.ErrDuplicateRecord)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupRecordServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, "not-a-uuid", record.SaveRecordRequest{
			Name:     "Sato",
			Category: "paid-leave",
			Date:     "2025-04-10",
		})

		assert.ErrorIs(t, err, recorderrors.ErrInvalidRecordID)
	})
}

func TestRecordService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupRecordServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		existing := pointRecord(t, "Sato", "2025-04-10")

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*record.LeaveRecord, error) {
			rec := existing
			return &rec, nil
		}
		deleted := ""
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			deleted = id
			return nil
		}

		err := deps.service.Delete(ctx, existing.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, existing.ID.String(), deleted)
		assert.Equal(t, 1, deps.notifier.notified)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "record_deleted", deps.outbox.created[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestRecordService_GetAll(t *testing.T) {
	deps := setupRecordServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllFn = func(ctx context.Context) ([]record.LeaveRecord, error) {
		return []record.LeaveRecord{
			pointRecord(t, "Sato", "2025-04-10"),
			periodRecord(t, "Tanaka", "2025-04-01", "2025-04-05", record.DisplayGroupLong),
		}, nil
	}

	resp, err := deps.service.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Sato", resp[0].Name)
	assert.Equal(t, "period", resp[1].Shape)
}
