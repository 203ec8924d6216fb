package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worksync/attendance-system/internal/api/metrics"
	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

// AttendanceHandler handles check-in/check-out and the daily status view.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type checkInResponse struct {
	Message     string                   `json:"message"`
	Attendance  *domain.AttendanceRecord `json:"attendance"`
	CheckInTime time.Time                `json:"check_in_time"`
}

type checkOutResponse struct {
	Message      string                   `json:"message"`
	Attendance   *domain.AttendanceRecord `json:"attendance"`
	CheckOutTime time.Time                `json:"check_out_time"`
}

// checkInConflictResponse reports the existing open record on a double check-in.
type checkInConflictResponse struct {
	Error       string    `json:"error"`
	CheckInTime time.Time `json:"check_in_time"`
}

type todayResponse struct {
	Attendance   *domain.AttendanceRecord `json:"attendance"`
	IsCheckedIn  bool                     `json:"is_checked_in"`
	CheckInTime  *time.Time               `json:"check_in_time"`
	CheckOutTime *time.Time               `json:"check_out_time"`
}

// CheckIn handles POST /attendance/checkin.
//
// @Summary      Check in the authenticated employee
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  checkInResponse
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  checkInConflictResponse
// @Failure      500  {object}  errorResponse
// @Router       /attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	employeeID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.CheckIn(c.Request().Context(), employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			metrics.CheckEventsTotal.WithLabelValues("check_in", "conflict").Inc()
			// The conflict body reports when the open record was started.
			return c.JSON(http.StatusConflict, checkInConflictResponse{
				Error:       "already checked in",
				CheckInTime: result.CheckInTime,
			})
		}
		return err
	}

	metrics.CheckEventsTotal.WithLabelValues("check_in", "ok").Inc()
	return c.JSON(http.StatusCreated, checkInResponse{
		Message:     "Check-in successful",
		Attendance:  result.Record,
		CheckInTime: result.CheckInTime,
	})
}

// CheckOut handles POST /attendance/checkout.
//
// @Summary      Check out the authenticated employee
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  checkOutResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /attendance/checkout [post]
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	employeeID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.CheckOut(c.Request().Context(), employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveCheckIn) {
			metrics.CheckEventsTotal.WithLabelValues("check_out", "no_active").Inc()
		}
		return err
	}

	metrics.CheckEventsTotal.WithLabelValues("check_out", "ok").Inc()
	return c.JSON(http.StatusOK, checkOutResponse{
		Message:      "Check-out successful",
		Attendance:   result.Record,
		CheckOutTime: result.CheckOutTime,
	})
}

// Today handles GET /attendance/today.
//
// @Summary      Today's attendance for the authenticated employee
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  todayResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /attendance/today [get]
func (h *AttendanceHandler) Today(c echo.Context) error {
	employeeID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	report, err := h.service.Today(c.Request().Context(), employeeID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, todayResponse{
		Attendance:   report.Record,
		IsCheckedIn:  report.IsCheckedIn,
		CheckInTime:  report.CheckInTime,
		CheckOutTime: report.CheckOutTime,
	})
}
