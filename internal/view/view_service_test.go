package view_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/kotani6053/nakatu.yasumi/internal/record"
	"github.com/kotani6053/nakatu.yasumi/internal/view"
	viewerrors "github.com/kotani6053/nakatu.yasumi/internal/view/errors"

	"github.com/stretchr/testify/assert"
)

type fakeRepository struct {
	findAllFn func(ctx context.Context) ([]record.LeaveRecord, error)
	calls     int
}

func (f *fakeRepository) WithTx(tx *sql.Tx) record.Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, r *record.LeaveRecord) error { return nil }

func (f *fakeRepository) FindAll(ctx context.Context) ([]record.LeaveRecord, error) {
	f.calls++
	return f.findAllFn(ctx)
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*record.LeaveRecord, error) {
	return nil, nil
}

func (f *fakeRepository) Update(ctx context.Context, r *record.LeaveRecord) error { return nil }

func (f *fakeRepository) Delete(ctx context.Context, id string) error { return nil }

func TestViewService_Views(t *testing.T) {
	ctx := context.Background()

	t.Run("both surfaces from one snapshot", func(t *testing.T) {
		repo := &fakeRepository{
			findAllFn: func(ctx context.Context) ([]record.LeaveRecord, error) {
				return []record.LeaveRecord{
					point(t, "Sato", "2025-04-10"),
					period(t, "Tanaka", "2025-04-08", "2025-04-12", record.DisplayGroupNormal),
					period(t, "Yamada", "2025-04-01", "2025-04-30", record.DisplayGroupLong),
				}, nil
			},
		}
		svc := view.NewService(repo, nil)

		resp, err := svc.Views(ctx, "2025-04-10", "today", "today")

		assert.NoError(t, err)
		assert.Equal(t, "2025-04-10", resp.Date)
		assert.Len(t, resp.Day, 2)
		assert.Equal(t, "Tanaka", resp.Day[0].Name)
		assert.Equal(t, "Sato", resp.Day[1].Name)
		assert.Len(t, resp.Periods, 1)
		assert.Equal(t, "Yamada", resp.Periods[0].Name)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("empty snapshot yields empty surfaces", func(t *testing.T) {
		repo := &fakeRepository{
			findAllFn: func(ctx context.Context) ([]record.LeaveRecord, error) {
				return nil, nil
			},
		}
		svc := view.NewService(repo, nil)

		resp, err := svc.Views(ctx, "2025-04-10", "all", "all")

		assert.NoError(t, err)
		assert.Empty(t, resp.Day)
		assert.Empty(t, resp.Periods)
	})

	t.Run("negative invalid mode", func(t *testing.T) {
		svc := view.NewService(&fakeRepository{}, nil)

		_, err := svc.Views(ctx, "2025-04-10", "weekly", "today")

		assert.ErrorIs(t, err, viewerrors.ErrInvalidViewMode)
	})

	t.Run("negative malformed reference date", func(t *testing.T) {
		svc := view.NewService(&fakeRepository{}, nil)

		_, err := svc.Views(ctx, "10/04/2025", "today", "today")

		assert.Error(t, err)
	})
}

func TestViewService_DayCounts(t *testing.T) {
	ctx := context.Background()

	t.Run("counts points per day, year aware", func(t *testing.T) {
		repo := &fakeRepository{
			findAllFn: func(ctx context.Context) ([]record.LeaveRecord, error) {
				return []record.LeaveRecord{
					point(t, "Sato", "2025-04-10"),
					point(t, "Abe", "2025-04-10"),
					point(t, "Mori", "2025-04-22"),
					point(t, "Old", "2024-04-10"),
					period(t, "Yamada", "2025-04-01", "2025-04-30", record.DisplayGroupLong),
				}, nil
			},
		}
		svc := view.NewService(repo, nil)

		resp, err := svc.DayCounts(ctx, 2025, 4)

		assert.NoError(t, err)
		assert.Equal(t, 2025, resp.Year)
		assert.Equal(t, 4, resp.Month)
		assert.Equal(t, map[string]int{"2025-04-10": 2, "2025-04-22": 1}, resp.Counts)
	})

	t.Run("negative invalid month", func(t *testing.T) {
		svc := view.NewService(&fakeRepository{}, nil)

		_, err := svc.DayCounts(ctx, 2025, 13)

		assert.ErrorIs(t, err, viewerrors.ErrInvalidMonth)
	})
}

func TestViewService_FormOptions(t *testing.T) {
	svc := view.NewService(&fakeRepository{}, nil)

	opts := svc.FormOptions()

	assert.Len(t, opts.Categories, 12)
	for _, c := range opts.Categories {
		assert.NotEmpty(t, c.Value)
		assert.Contains(t, []string{"point", "point-timed", "period"}, c.Shape)
	}
	assert.Len(t, opts.Reasons, 5)
	assert.Len(t, opts.TimeSlots, 102)
	assert.Equal(t, "06:00", opts.TimeSlots[0])
	assert.Equal(t, "22:50", opts.TimeSlots[len(opts.TimeSlots)-1])
}
