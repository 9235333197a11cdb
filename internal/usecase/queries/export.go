package queries

//go:generate mockgen -source=export.go -destination=../../../tests/mock/queries/export.go -package=queriesmock

import (
	"context"
	"fmt"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TimelineExporter interface {
	Export(view *DayTimelineView) ([]byte, error)
}

type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type ExportQueries interface {
	ExportDayTimeline(ctx context.Context, p DayTimelineParams) (*ExportFile, error)
}

type exportQueriesImpl struct {
	availability AvailabilityQueries
	exporter     TimelineExporter
}

func NewExportQueries(availability AvailabilityQueries, exporter TimelineExporter) ExportQueries {
	return &exportQueriesImpl{
		availability: availability,
		exporter:     exporter,
	}
}

func (q *exportQueriesImpl) ExportDayTimeline(ctx context.Context, p DayTimelineParams) (*ExportFile, error) {
	p.IncludeSlots = true
	view, err := q.availability.GetDayTimeline(ctx, p)
	if err != nil {
		return nil, err
	}

	content, err := q.exporter.Export(view)
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("timeline-%s.xlsx", view.Date),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}
