package dto

import (
	"riskdesk/internal/domain"
)

// FieldError is one field/message pair produced by request validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PageResponse is a bounded slice of a larger result set plus page metadata.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
}

// NewPageResponse assembles a page body. Content is never null in JSON.
func NewPageResponse[T any](content []T, page domain.PageRequest, total int64) PageResponse[T] {
	if content == nil {
		content = make([]T, 0)
	}
	totalPages := int64(0)
	if page.Size > 0 {
		totalPages = (total + int64(page.Size) - 1) / int64(page.Size)
	}
	return PageResponse[T]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
