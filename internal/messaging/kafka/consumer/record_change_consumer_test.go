package consumer

import (
	"testing"

	"github.com/kotani6053/nakatu.yasumi/internal/events"

	"github.com/stretchr/testify/assert"
)

func strptr(v string) *string { return &v }

func TestAffectedMonths(t *testing.T) {
	t.Run("point record touches one month", func(t *testing.T) {
		got := affectedMonths(events.RecordChangedEvent{Date: strptr("2025-04-10")})
		assert.Equal(t, []yearMonth{{2025, 4}}, got)
	})

	t.Run("period spans every month in between", func(t *testing.T) {
		got := affectedMonths(events.RecordChangedEvent{
			StartDate: strptr("2025-03-20"),
			EndDate:   strptr("2025-05-10"),
		})
		assert.Equal(t, []yearMonth{{2025, 3}, {2025, 4}, {2025, 5}}, got)
	})

	t.Run("period across a year boundary", func(t *testing.T) {
		got := affectedMonths(events.RecordChangedEvent{
			StartDate: strptr("2025-12-28"),
			EndDate:   strptr("2026-01-03"),
		})
		assert.Equal(t, []yearMonth{{2025, 12}, {2026, 1}}, got)
	})

	t.Run("single day period touches one month", func(t *testing.T) {
		got := affectedMonths(events.RecordChangedEvent{
			StartDate: strptr("2025-04-10"),
			EndDate:   strptr("2025-04-10"),
		})
		assert.Equal(t, []yearMonth{{2025, 4}}, got)
	})

	t.Run("malformed dates invalidate nothing", func(t *testing.T) {
		assert.Nil(t, affectedMonths(events.RecordChangedEvent{Date: strptr("10/04/2025")}))
		assert.Nil(t, affectedMonths(events.RecordChangedEvent{}))
		assert.Nil(t, affectedMonths(events.RecordChangedEvent{StartDate: strptr("2025-04-10")}))
	})
}
