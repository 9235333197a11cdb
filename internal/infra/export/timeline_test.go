//go:build unit

package export

import (
	"bytes"
	"testing"

	"therapist-management-saas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }

func sampleView() *queries.DayTimelineView {
	mask := make([]bool, 4)
	mask[1], mask[2] = true, true

	return &queries.DayTimelineView{
		Date:        "2025-03-14",
		Granularity: 285,
		SlotCount:   4,
		Slots: []queries.SlotView{
			{Index: 0, Offset: 0, Label: "10:00", HourStart: true},
			{Index: 1, Offset: 285, Label: "14:45"},
			{Index: 2, Offset: 570, Label: "19:30"},
			{Index: 3, Offset: 855, Label: "00:15"},
		},
		Therapists: []queries.TherapistTimelineView{
			{
				TherapistID: uuid.New(),
				Name:        "Aoi",
				HasShift:    true,
				ShiftStart:  strPtr("14:45"),
				ShiftEnd:    strPtr("00:15"),
				Mask:        mask,
				Entities: []queries.EntityView{
					{ID: uuid.New(), Kind: "shift", Label: "shift", StartSlot: 1, SlotSpan: 2, StartTime: "14:45", EndTime: "00:15"},
					{
						ID: uuid.New(), Kind: "reservation", Label: "90min", StartSlot: 2, SlotSpan: 1,
						StartTime: "19:30", EndTime: "21:00", Overlapping: true,
						Metadata: map[string]string{"customer": "Sato", "designation": "nomination", "status": "confirmed"},
					},
				},
			},
			{TherapistID: uuid.New(), Name: "Mei", Mask: make([]bool, 4), Entities: []queries.EntityView{}},
		},
	}
}

func TestXLSXTimelineExporter(t *testing.T) {
	content, err := NewXLSXTimelineExporter().Export(sampleView())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{timelineSheet, entitySheet}, f.GetSheetList())

	t.Run("grid header and rows", func(t *testing.T) {
		rows, err := f.GetRows(timelineSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Therapist", "Shift", "10:00", "14:45", "19:30", "00:15"}, rows[0])
		assert.Equal(t, "Aoi", rows[1][0])
		assert.Equal(t, "14:45-00:15", rows[1][1])
		assert.Equal(t, "-", rows[2][1])

		label, err := f.GetCellValue(timelineSheet, "E2")
		require.NoError(t, err)
		assert.Equal(t, "90min", label)
	})

	t.Run("entity list", func(t *testing.T) {
		rows, err := f.GetRows(entitySheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "reservation", rows[2][1])
		assert.Equal(t, "Sato", rows[2][5])
		assert.Equal(t, "yes", rows[2][8])
	})
}
