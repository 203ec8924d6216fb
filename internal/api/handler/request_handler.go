package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worksync/attendance-system/internal/api/metrics"
	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/ports"
)

// RequestHandler handles leave request submission and admin review.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Submit handles POST /requests.
//
// @Summary      Submit a leave request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Request details"
// @Success      201   {object}  domain.LeaveRequest
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	employeeID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_date must be an ISO date")
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end_date must be an ISO date")
	}

	created, err := h.service.Submit(c.Request().Context(), ports.SubmitRequestInput{
		EmployeeID:  employeeID,
		Type:        domain.RequestType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		return err
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(req.Type).Inc()
	return c.JSON(http.StatusCreated, created)
}

// ListMine handles GET /requests/my-requests.
//
// @Summary      List the authenticated employee's requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.LeaveRequest
// @Failure      401  {object}  errorResponse
// @Router       /requests/my-requests [get]
func (h *RequestHandler) ListMine(c echo.Context) error {
	employeeID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	requests, err := h.service.ListMine(c.Request().Context(), employeeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// ListAll handles GET /requests (admin).
//
// @Summary      List all requests with their owners
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   requestWithEmployeeResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /requests [get]
func (h *RequestHandler) ListAll(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	rows, err := h.service.ListAll(c.Request().Context(), role)
	if err != nil {
		return err
	}

	resp := make([]requestWithEmployeeResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, toRequestRow(row))
	}
	return c.JSON(http.StatusOK, resp)
}

// Decide handles PATCH /requests/:id (admin).
//
// @Summary      Approve or reject a pending request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Request id"
// @Param        body  body      decideRequestRequest  true  "Verdict"
// @Success      200   {object}  domain.LeaveRequest
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /requests/{id} [patch]
func (h *RequestHandler) Decide(c echo.Context) error {
	actorID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req decideRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	decided, err := h.service.Decide(c.Request().Context(), ports.DecideRequestInput{
		ActorRole: role,
		ActorID:   actorID,
		RequestID: c.Param("id"),
		Status:    domain.RequestStatus(req.Status),
		Comments:  req.Comments,
	})
	if err != nil {
		return err
	}

	metrics.RequestDecisionsTotal.WithLabelValues(string(decided.Status)).Inc()
	return c.JSON(http.StatusOK, decided)
}
