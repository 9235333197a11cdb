//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"therapist-management-saas/internal/usecase/queries"
	queriesmock "therapist-management-saas/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportQueries_ExportDayTimeline(t *testing.T) {
	params := queries.DayTimelineParams{ShopID: uuid.New(), Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)}
	view := &queries.DayTimelineView{Date: "2025-03-14"}

	t.Run("forces slots and names the file by date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		availability := queriesmock.NewMockAvailabilityQueries(ctrl)
		exporter := queriesmock.NewMockTimelineExporter(ctrl)

		want := params
		want.IncludeSlots = true
		availability.EXPECT().GetDayTimeline(gomock.Any(), want).Return(view, nil)
		exporter.EXPECT().Export(view).Return([]byte("xlsx"), nil)

		file, err := queries.NewExportQueries(availability, exporter).ExportDayTimeline(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, "timeline-2025-03-14.xlsx", file.Filename)
		assert.Equal(t, []byte("xlsx"), file.Content)
		assert.Contains(t, file.ContentType, "spreadsheetml")
	})

	t.Run("exporter failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		availability := queriesmock.NewMockAvailabilityQueries(ctrl)
		exporter := queriesmock.NewMockTimelineExporter(ctrl)

		availability.EXPECT().GetDayTimeline(gomock.Any(), gomock.Any()).Return(view, nil)
		exporter.EXPECT().Export(view).Return(nil, assert.AnError)

		file, err := queries.NewExportQueries(availability, exporter).ExportDayTimeline(context.Background(), params)

		assert.Nil(t, file)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
