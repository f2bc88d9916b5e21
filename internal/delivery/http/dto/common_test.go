package dto

import (
	"encoding/json"
	"testing"

	"riskdesk/internal/domain"
)

func TestNewPageResponse(t *testing.T) {
	page := NewPageResponse([]string{"a", "b"}, domain.PageRequest{Page: 0, Size: 20}, 45)
	if page.TotalElements != 45 {
		t.Fatalf("expected 45 total elements, got %d", page.TotalElements)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}
	if page.Page != 0 || page.Size != 20 {
		t.Fatalf("unexpected page shape: %+v", page)
	}
}

func TestNewPageResponseEmpty(t *testing.T) {
	page := NewPageResponse[string](nil, domain.PageRequest{Page: 2, Size: 10}, 0)
	if page.TotalPages != 0 {
		t.Fatalf("expected 0 total pages, got %d", page.TotalPages)
	}

	// An empty page must serialize as [] rather than null
	body, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"content":[],"page":2,"size":10,"totalElements":0,"totalPages":0}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestNewPageResponseExactFit(t *testing.T) {
	page := NewPageResponse([]int{1, 2, 3, 4, 5}, domain.PageRequest{Page: 0, Size: 5}, 10)
	if page.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
	}
}
