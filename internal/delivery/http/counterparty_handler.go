package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"riskdesk/internal/delivery/http/dto"
	"riskdesk/internal/domain"
)

// CounterpartyHandler handles counterparty risk profile requests
type CounterpartyHandler struct {
	service domain.CounterpartyService
}

// NewCounterpartyHandler creates a new CounterpartyHandler
func NewCounterpartyHandler(service domain.CounterpartyService) *CounterpartyHandler {
	return &CounterpartyHandler{service: service}
}

// Create creates a new counterparty risk profile
// POST /counterparty-risk-profiles
func (h *CounterpartyHandler) Create(c echo.Context) error {
	var req dto.CounterpartyRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "invalid request payload")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return ValidationErrorResponse(c, errs)
	}

	profile, err := h.service.Create(c.Request().Context(), req.ToDetails())
	if err != nil {
		return WriteError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.FromCounterparty(profile))
}

// GetByID retrieves a counterparty risk profile by id
// GET /counterparty-risk-profiles/:id
func (h *CounterpartyHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "invalid counterparty id")
	}

	profile, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return WriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FromCounterparty(profile))
}

// GetAll retrieves one page of counterparty risk profiles
// GET /counterparty-risk-profiles?page=&size=&sort=
func (h *CounterpartyHandler) GetAll(c echo.Context) error {
	page := pageRequest(c)

	profiles, total, err := h.service.GetAll(c.Request().Context(), page)
	if err != nil {
		return WriteError(c, err)
	}

	content := make([]dto.CounterpartyResponse, 0, len(profiles))
	for _, p := range profiles {
		content = append(content, dto.FromCounterparty(p))
	}

	return c.JSON(http.StatusOK, dto.NewPageResponse(content, page, total))
}

// Update updates an existing counterparty risk profile
// PUT /counterparty-risk-profiles/:id
func (h *CounterpartyHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "invalid counterparty id")
	}

	var req dto.CounterpartyRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "invalid request payload")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return ValidationErrorResponse(c, errs)
	}

	profile, err := h.service.Update(c.Request().Context(), id, req.ToDetails())
	if err != nil {
		return WriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FromCounterparty(profile))
}

// Delete deletes a counterparty risk profile by id
// DELETE /counterparty-risk-profiles/:id
func (h *CounterpartyHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "invalid counterparty id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return WriteError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
