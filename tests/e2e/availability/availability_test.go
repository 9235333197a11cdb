//go:build e2e

package availability_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"therapist-management-saas/internal/handler/dto/response"
	"therapist-management-saas/tests/common/dbtest"
	"therapist-management-saas/tests/common/httptest"
	"therapist-management-saas/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

const (
	availabilityURL = "/api/shops/%s/availability?date=%s"
	exportURL       = "/api/shops/%s/availability/export?date=%s"
	gridURL         = "/api/timeline/grid"
)

type AvailabilitySuite struct {
	e2e.SharedSuite
}

func (s *AvailabilitySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAvailabilitySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AvailabilitySuite))
}

var businessDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

type day struct {
	shopID    uuid.UUID
	aoi       uuid.UUID
	mei       uuid.UUID
	first     uuid.UUID
	second    uuid.UUID
	afterHour uuid.UUID
}

// Aoi works 18:00-03:00 with two overlapping bookings and one past her shift end.
// Mei has no shift.
func (s *AvailabilitySuite) seedDay(t *testing.T) day {
	shopID := dbtest.DefaultShopID(t, s.DB)
	aoi := dbtest.CreateTestTherapist(t, s.DB, shopID, "Aoi", 1)
	mei := dbtest.CreateTestTherapist(t, s.DB, shopID, "Mei", 2)
	courseID := dbtest.CreateTestCourse(t, s.DB, shopID, "90min", 90, 10000)
	customerID := dbtest.CreateTestCustomer(t, s.DB, shopID, "Tanaka")
	dbtest.CreateTestShift(t, s.DB, shopID, aoi, businessDate, "18:00", "03:00")

	reserve := func(start, end string, minutes int) uuid.UUID {
		return dbtest.CreateTestReservation(t, s.DB, dbtest.TestReservation{
			ShopID:      shopID,
			CustomerID:  customerID,
			TherapistID: &aoi,
			CourseID:    courseID,
			Date:        businessDate,
			Start:       start,
			End:         end,
			Duration:    minutes,
			Designation: "nomination",
		})
	}

	d := day{shopID: shopID, aoi: aoi, mei: mei}
	d.first = reserve("22:00", "23:30", 90)
	d.second = reserve("23:00", "00:30", 90)
	d.afterHour = reserve("02:30", "04:00", 90)

	canceled := dbtest.CreateTestReservation(t, s.DB, dbtest.TestReservation{
		ShopID: shopID, CustomerID: customerID, TherapistID: &aoi, CourseID: courseID,
		Date: businessDate, Start: "12:00", End: "13:00", Duration: 60, Status: "canceled",
	})
	require.NotEqual(t, uuid.Nil, canceled)
	return d
}

// =============================================================================
// TestDayTimeline - availability timeline API tests
// =============================================================================

func (s *AvailabilitySuite) TestDayTimeline() {
	date := businessDate.Format("2006-01-02")

	s.Run("Normal case: lays out shifts and reservations with overlaps", func() {
		t := s.T()
		d := s.seedDay(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, d.shopID, date), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.DayTimelineResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		require.Equal(t, 228, actual.SlotCount)
		require.Nil(t, actual.NowSlot, "past business dates carry no now indicator")
		require.Len(t, actual.Therapists, 2)

		aoi := actual.Therapists[0]
		require.Equal(t, d.aoi, aoi.TherapistID)
		require.True(t, aoi.HasShift)
		require.Equal(t, 540, aoi.ShiftMinutes)

		var reservations []response.EntityResponse
		for _, e := range aoi.Entities {
			if e.Kind == "reservation" {
				reservations = append(reservations, e)
			}
		}
		expected := []response.EntityResponse{
			{ID: d.first, Kind: "reservation", StartOffset: 720, EndOffset: 810, StartSlot: 144, SlotSpan: 18, StartTime: "22:00", EndTime: "23:30", Overlapping: true},
			{ID: d.second, Kind: "reservation", StartOffset: 780, EndOffset: 870, StartSlot: 156, SlotSpan: 18, StartTime: "23:00", EndTime: "00:30", Overlapping: true},
			{ID: d.afterHour, Kind: "reservation", StartOffset: 990, EndOffset: 1080, StartSlot: 198, SlotSpan: 18, StartTime: "02:30", EndTime: "04:00", OutsideShift: true},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.EntityResponse{}, "Label", "Metadata"),
			cmpopts.SortSlices(func(a, b response.EntityResponse) bool { return a.StartOffset < b.StartOffset }),
		}
		if diff := cmp.Diff(expected, reservations, opts...); diff != "" {
			t.Errorf("reservation layout mismatch (-want +got):\n%s", diff)
		}

		require.Len(t, actual.Overlaps, 1)
		require.ElementsMatch(t, []uuid.UUID{d.first, d.second}, []uuid.UUID{actual.Overlaps[0].FirstID, actual.Overlaps[0].SecondID})

		mei := actual.Therapists[1]
		require.Equal(t, d.mei, mei.TherapistID)
		require.False(t, mei.HasShift)
		require.Empty(t, mei.Entities)
	})

	s.Run("Normal case: therapist filter narrows the day", func() {
		t := s.T()
		d := s.seedDay(t)

		url := fmt.Sprintf(availabilityURL+"&therapist_id=%s", d.shopID, date, d.mei)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.DayTimelineResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Len(t, actual.Therapists, 1)
		require.Empty(t, actual.Overlaps)
	})

	s.Run("Error case: malformed date is 400", func() {
		t := s.T()
		d := s.seedDay(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, d.shopID, "06-01-2025"), nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AvailabilitySuite) TestExport() {
	s.Run("Normal case: workbook has one row per therapist", func() {
		t := s.T()
		d := s.seedDay(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(exportURL, d.shopID, businessDate.Format("2006-01-02")), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertAttachment(t, w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "timeline-2025-06-01.xlsx")

		f, err := excelize.OpenReader(w.Body)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		rows, err := f.GetRows("Timeline")
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(rows), 3)
		require.Equal(t, "Aoi", rows[1][0])
		require.Equal(t, "Mei", rows[2][0])
	})
}

func (s *AvailabilitySuite) TestGrid() {
	s.Run("Normal case: configured grid", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, gridURL, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.GridResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, 5, actual.Granularity)
		require.Len(t, actual.Slots, 228)
		require.Equal(t, "10:00", actual.Slots[0].Label)
	})

	s.Run("Error case: granularity that does not divide the window", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, gridURL+"?granularity=7", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid granularity")
	})
}
