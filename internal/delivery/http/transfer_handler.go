package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"riskdesk/internal/delivery/http/dto"
	"riskdesk/internal/domain"
)

// TransferHandler handles transfer (transferencia) requests
type TransferHandler struct {
	service domain.TransferService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(service domain.TransferService) *TransferHandler {
	return &TransferHandler{service: service}
}

// Create creates a new transfer in PENDIENTE state
// POST /transferencias
func (h *TransferHandler) Create(c echo.Context) error {
	var req dto.CreateTransferRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "invalid request payload")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return ValidationErrorResponse(c, errs)
	}

	transfer, err := h.service.Create(c.Request().Context(), req.ToDetails())
	if err != nil {
		return WriteError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.FromTransfer(transfer))
}

// GetByID retrieves a transfer by id
// GET /transferencias/:id
func (h *TransferHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return BadRequestResponse(c, "invalid transfer id")
	}

	transfer, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return WriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FromTransfer(transfer))
}

// GetAll retrieves one page of transfers
// GET /transferencias?page=&size=&sort=
func (h *TransferHandler) GetAll(c echo.Context) error {
	page := pageRequest(c)

	transfers, total, err := h.service.GetAll(c.Request().Context(), page)
	if err != nil {
		return WriteError(c, err)
	}

	content := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		content = append(content, dto.FromTransfer(t))
	}

	return c.JSON(http.StatusOK, dto.NewPageResponse(content, page, total))
}

// Update updates an existing transfer, including its status
// PUT /transferencias/:id
func (h *TransferHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return BadRequestResponse(c, "invalid transfer id")
	}

	var req dto.UpdateTransferRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "invalid request payload")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return ValidationErrorResponse(c, errs)
	}

	transfer, err := h.service.Update(c.Request().Context(), id, req.ToUpdate())
	if err != nil {
		return WriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FromTransfer(transfer))
}

// Delete deletes a transfer by id
// DELETE /transferencias/:id
func (h *TransferHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return BadRequestResponse(c, "invalid transfer id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return WriteError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
