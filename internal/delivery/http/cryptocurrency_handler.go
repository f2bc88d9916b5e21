package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"riskdesk/internal/delivery/http/dto"
	"riskdesk/internal/domain"
)

// CryptocurrencyHandler handles cryptocurrency listing requests
type CryptocurrencyHandler struct {
	service domain.CryptocurrencyService
}

// NewCryptocurrencyHandler creates a new CryptocurrencyHandler
func NewCryptocurrencyHandler(service domain.CryptocurrencyService) *CryptocurrencyHandler {
	return &CryptocurrencyHandler{service: service}
}

// Create creates a new cryptocurrency listing
// POST /cryptocurrencies
func (h *CryptocurrencyHandler) Create(c echo.Context) error {
	var req dto.CryptocurrencyRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "invalid request payload")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return ValidationErrorResponse(c, errs)
	}

	crypto, err := h.service.Create(c.Request().Context(), req.ToDetails())
	if err != nil {
		return WriteError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.FromCryptocurrency(crypto))
}

// GetByID retrieves a cryptocurrency listing by id
// GET /cryptocurrencies/:id
func (h *CryptocurrencyHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return BadRequestResponse(c, "invalid cryptocurrency id")
	}

	crypto, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return WriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FromCryptocurrency(crypto))
}

// GetAll retrieves one page of cryptocurrency listings
// GET /cryptocurrencies?page=&size=&sort=
func (h *CryptocurrencyHandler) GetAll(c echo.Context) error {
	page := pageRequest(c)

	cryptos, total, err := h.service.GetAll(c.Request().Context(), page)
	if err != nil {
		return WriteError(c, err)
	}

	content := make([]dto.CryptocurrencyResponse, 0, len(cryptos))
	for _, crypto := range cryptos {
		content = append(content, dto.FromCryptocurrency(crypto))
	}

	return c.JSON(http.StatusOK, dto.NewPageResponse(content, page, total))
}

// Update updates an existing cryptocurrency listing
// PUT /cryptocurrencies/:id
func (h *CryptocurrencyHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return BadRequestResponse(c, "invalid cryptocurrency id")
	}

	var req dto.CryptocurrencyRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "invalid request payload")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return ValidationErrorResponse(c, errs)
	}

	crypto, err := h.service.Update(c.Request().Context(), id, req.ToDetails())
	if err != nil {
		return WriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FromCryptocurrency(crypto))
}

// Delete deletes a cryptocurrency listing by id
// DELETE /cryptocurrencies/:id
func (h *CryptocurrencyHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return BadRequestResponse(c, "invalid cryptocurrency id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return WriteError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
