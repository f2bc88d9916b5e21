package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"riskdesk/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pageRequest parses ?page=&size=&sort= query parameters. Malformed values
// fall back to defaults; size is capped at maxPageSize.
func pageRequest(c echo.Context) domain.PageRequest {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	req := domain.PageRequest{Page: page, Size: size}

	// sort=field or sort=field,desc
	if sort := c.QueryParam("sort"); sort != "" {
		parts := strings.SplitN(sort, ",", 2)
		req.SortField = strings.TrimSpace(parts[0])
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			req.SortDesc = true
		}
	}

	return req
}
