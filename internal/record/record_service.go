package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/kotani6053/nakatu.yasumi/internal/events"
	"github.com/kotani6053/nakatu.yasumi/internal/messaging/kafka"
	recorderrors "github.com/kotani6053/nakatu.yasumi/internal/record/errors"
	"github.com/kotani6053/nakatu.yasumi/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChangeNotifier is told after every committed mutation so subscribers can
// reload the snapshot. Implementations must not block the request path.
type ChangeNotifier interface {
	RecordsChanged(ctx context.Context)
}

type noopNotifier struct{}

func (noopNotifier) RecordsChanged(context.Context) {}

//go:generate mockgen -source=record_service.go -destination=mock/record_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req SaveRecordRequest) (RecordResponse, error)
	GetAll(ctx context.Context) ([]RecordResponse, error)
	GetByID(ctx context.Context, id string) (RecordResponse, error)
	Update(ctx context.Context, id string, req SaveRecordRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	notifier ChangeNotifier
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	notifier ChangeNotifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("record.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("record.service")
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, notifier: notifier, logger: l}
}

func (s *service) Create(ctx context.Context, req SaveRecordRequest) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create record requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("category", req.Category),
	)

	rec, err := NormalizeDraft(req)
	if err != nil {
		s.logger.Warn("create record validation failed", zap.Error(err))
		return RecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create record begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	snapshot, err := qtx.FindAll(ctx)
	if err != nil {
		s.logger.Error("create record load snapshot failed", zap.Error(err))
		return RecordResponse{}, err
	}
	if HasConflict(snapshot, rec, "") {
		s.logger.Warn("create record duplicate detected",
			zap.String("name", rec.Name),
			zap.String("category", string(rec.Category)),
		)
		return RecordResponse{}, recorderrors.ErrDuplicateRecord
	}

	rec.ID = uuid.New()
	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("create record persist failed", zap.Error(err))
		return RecordResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueChangeEvent(ctx, tx, events.RecordCreated, rec); err != nil {
		return RecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create record commit failed", zap.Error(err))
		return RecordResponse{}, err
	}
	s.notifier.RecordsChanged(ctx)

	s.logger.Info("create record success",
		zap.String("record_id", rec.ID.String()),
		zap.String("name", rec.Name),
		zap.String("category", string(rec.Category)),
	)
	return ToResponse(*rec), nil
}

func (s *service) GetAll(ctx context.Context) ([]RecordResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToResponses(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (RecordResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RecordResponse{}, recorderrors.ErrInvalidRecordID
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, recorderrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}
	return ToResponse(*rec), nil
}

func (s *service) Update(ctx context.Context, id string, req SaveRecordRequest) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update record requested",
		zap.String("request_id", rid),
		zap.String("record_id", id),
		zap.String("name", req.Name),
		zap.String("category", req.Category),
	)

	if _, err := uuid.Parse(id); err != nil {
		return RecordResponse{}, recorderrors.ErrInvalidRecordID
	}

	rec, err := NormalizeDraft(req)
	if err != nil {
		s.logger.Warn("update record validation failed", zap.Error(err))
		return RecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update record begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, recorderrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}

	snapshot, err := qtx.FindAll(ctx)
	if err != nil {
		s.logger.Error("update record load snapshot failed", zap.Error(err))
		return RecordResponse{}, err
	}
	// The record being edited never blocks itself.
	if HasConflict(snapshot, rec, id) {
		s.logger.Warn("update record duplicate detected",
			zap.String("record_id", id),
			zap.String("name", rec.Name),
		)
		return RecordResponse{}, recorderrors.ErrDuplicateRecord
	}

	// Id and creation timestamp survive every edit.
	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt

	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("update record persist failed", zap.String("record_id", id), zap.Error(err))
		return RecordResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueChangeEvent(ctx, tx, events.RecordUpdated, rec); err != nil {
		return RecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update record commit failed", zap.String("record_id", id), zap.Error(err))
		return RecordResponse{}, err
	}
	s.notifier.RecordsChanged(ctx)

	s.logger.Info("update record success", zap.String("record_id", id))
	return ToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return recorderrors.ErrInvalidRecordID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return recorderrors.ErrRecordNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete record persist failed", zap.String("record_id", id), zap.Error(err))
		return err
	}

	if err := s.enqueueChangeEvent(ctx, tx, events.RecordDeleted, rec); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete record commit failed", zap.String("record_id", id), zap.Error(err))
		return err
	}
	s.notifier.RecordsChanged(ctx)

	s.logger.Info("delete record success", zap.String("record_id", id))
	return nil
}

func (s *service) enqueueChangeEvent(
	ctx context.Context,
	tx *sql.Tx,
	eventType string,
	rec *LeaveRecord,
) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.RecordChangedEvent{
		EventType:  eventType,
		RequestID:  rid,
		RecordID:   rec.ID.String(),
		Name:       rec.Name,
		OccurredAt: time.Now().UTC(),
	}
	if rec.Date != nil {
		v := FormatDay(*rec.Date)
		event.Date = &v
	}
	if rec.StartDate != nil {
		v := FormatDay(*rec.StartDate)
		event.StartDate = &v
	}
	if rec.EndDate != nil {
		v := FormatDay(*rec.EndDate)
		event.EndDate = &v
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal record event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_record",
		AggregateID:   rec.ID.String(),
		EventType:     eventType,
		Topic:         events.RecordChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("record outbox persist failed",
			zap.String("record_id", rec.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}

	return nil
}
