package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worksync/attendance-system/internal/core/ports"
)

// SummaryHandler serves the admin dashboard aggregates.
type SummaryHandler struct {
	service ports.SummaryService
}

func NewSummaryHandler(service ports.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

type dayCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type summaryResponse struct {
	TotalEmployees int64              `json:"total_employees"`
	OnDuty         int64              `json:"on_duty"`
	TodaysCheckIns int64              `json:"todays_check_ins"`
	CheckInsPerDay []dayCountResponse `json:"check_ins_per_day"`
}

// Summary handles GET /summary (admin).
//
// @Summary      Dashboard aggregates with a 7-day check-in trend
// @Tags         summary
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  summaryResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /summary [get]
func (h *SummaryHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}

	trend := make([]dayCountResponse, 0, len(summary.CheckInsPerDay))
	for _, d := range summary.CheckInsPerDay {
		trend = append(trend, dayCountResponse{Date: d.Date, Count: d.Count})
	}

	return c.JSON(http.StatusOK, summaryResponse{
		TotalEmployees: summary.TotalEmployees,
		OnDuty:         summary.OnDuty,
		TodaysCheckIns: summary.TodaysCheckIns,
		CheckInsPerDay: trend,
	})
}
