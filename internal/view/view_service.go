package view

import (
	"context"
	"fmt"

	"github.com/kotani6053/nakatu.yasumi/internal/record"
	viewerrors "github.com/kotani6053/nakatu.yasumi/internal/view/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=view_service.go -destination=mock/view_service_mock.go -package=mock
type Service interface {
	Views(ctx context.Context, refDate, dayMode, periodMode string) (ViewsResponse, error)
	DayCounts(ctx context.Context, year, month int) (DayCountsResponse, error)
	FormOptions() FormOptionsResponse
}

type service struct {
	repo   record.Repository
	cache  *DayCountCache
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo record.Repository, cache *DayCountCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("view.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("view.service")
	}
	return &service{repo: repo, cache: cache, sf: &singleflight.Group{}, logger: l}
}

// Views computes both display surfaces from one snapshot. Both projections
// are pure functions of (snapshot, reference date, mode); an empty result is
// a valid response, not an error.
func (s *service) Views(ctx context.Context, refDate, dayMode, periodMode string) (ViewsResponse, error) {
	ref, err := record.ParseDay(refDate)
	if err != nil {
		return ViewsResponse{}, err
	}
	dm, ok := ParseMode(dayMode)
	if !ok {
		return ViewsResponse{}, viewerrors.ErrInvalidViewMode
	}
	pm, ok := ParseMode(periodMode)
	if !ok {
		return ViewsResponse{}, viewerrors.ErrInvalidViewMode
	}

	snapshot, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("views load snapshot failed", zap.Error(err))
		return ViewsResponse{}, err
	}

	return ViewsResponse{
		Date:    record.FormatDay(ref),
		Day:     record.ToResponses(DateScoped(snapshot, ref, dm)),
		Periods: record.ToResponses(Periods(snapshot, ref, pm)),
	}, nil
}

// DayCounts returns how many single-day records fall on each day of the
// month, for the calendar grid badges. Results are cached per month and
// concurrent recomputes collapse into one snapshot load.
func (s *service) DayCounts(ctx context.Context, year, month int) (DayCountsResponse, error) {
	if year < 1 || month < 1 || month > 12 {
		return DayCountsResponse{}, viewerrors.ErrInvalidMonth
	}

	if counts, ok := s.cache.Get(ctx, year, month); ok {
		return DayCountsResponse{Year: year, Month: month, Counts: counts}, nil
	}

	key := fmt.Sprintf("daycounts:%04d-%02d", year, month)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		snapshot, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		counts := make(map[string]int)
		for i := range snapshot {
			r := &snapshot[i]
			if r.Date == nil {
				continue
			}
			if r.Date.Year() != year || int(r.Date.Month()) != month {
				continue
			}
			counts[record.FormatDay(*r.Date)]++
		}

		s.cache.Set(ctx, year, month, counts)
		return counts, nil
	})
	if err != nil {
		s.logger.Error("day counts compute failed",
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Error(err),
		)
		return DayCountsResponse{}, err
	}

	return DayCountsResponse{Year: year, Month: month, Counts: v.(map[string]int)}, nil
}

// FormOptions lists what the entry form offers: categories tagged with their
// shape, the enumerated reasons, and clock-time slots from 06:00 to 22:50 in
// ten-minute steps.
func (s *service) FormOptions() FormOptionsResponse {
	categories := make([]CategoryOption, 0, len(record.Categories()))
	for _, c := range record.Categories() {
		shape, _ := record.ShapeOf(c)
		categories = append(categories, CategoryOption{
			Value: string(c),
			Shape: shape.String(),
		})
	}

	slots := make([]string, 0, 102)
	for t := 6 * 60; t <= 22*60+50; t += 10 {
		slots = append(slots, fmt.Sprintf("%02d:%02d", t/60, t%60))
	}

	return FormOptionsResponse{
		Categories: categories,
		Reasons: []string{
			"feeling unwell",
			"personal errand",
			"doctor visit",
			"child school event",
			"caring for sick child",
		},
		TimeSlots: slots,
	}
}
