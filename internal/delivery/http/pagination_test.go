package http

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func pageFromQuery(query string) (page, size int, field string, desc bool) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?"+query, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	p := pageRequest(c)
	return p.Page, p.Size, p.SortField, p.SortDesc
}

func TestPageRequestDefaults(t *testing.T) {
	page, size, field, desc := pageFromQuery("")
	if page != 0 || size != defaultPageSize {
		t.Fatalf("expected defaults 0/%d, got %d/%d", defaultPageSize, page, size)
	}
	if field != "" || desc {
		t.Fatalf("expected no sort, got %s desc=%v", field, desc)
	}
}

func TestPageRequestParsesValues(t *testing.T) {
	page, size, field, desc := pageFromQuery("page=3&size=50&sort=legalName,desc")
	if page != 3 || size != 50 {
		t.Fatalf("expected 3/50, got %d/%d", page, size)
	}
	if field != "legalName" || !desc {
		t.Fatalf("expected legalName desc, got %s desc=%v", field, desc)
	}
}

func TestPageRequestClampsAndRecovers(t *testing.T) {
	page, size, _, _ := pageFromQuery("page=-4&size=9999")
	if page != 0 {
		t.Fatalf("expected negative page to reset, got %d", page)
	}
	if size != maxPageSize {
		t.Fatalf("expected size capped at %d, got %d", maxPageSize, size)
	}

	page, size, _, _ = pageFromQuery("page=abc&size=xyz")
	if page != 0 || size != defaultPageSize {
		t.Fatalf("expected malformed values to fall back, got %d/%d", page, size)
	}

	_, _, field, desc := pageFromQuery("sort=estado,asc")
	if field != "estado" || desc {
		t.Fatalf("expected estado asc, got %s desc=%v", field, desc)
	}
}
