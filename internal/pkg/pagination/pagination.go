package pagination

import (
	"math"
	"strconv"

	"library-api/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// DefaultSize is the default number of items per page
const DefaultSize = 20

// MaxSize is the maximum number of items per page
const MaxSize = 100

// Pageable describes the page that was served
type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	Offset     int `json:"offset"`
}

// Response represents a paginated response
type Response[T any] struct {
	Content       []T      `json:"content"`
	TotalElements int64    `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	First         bool     `json:"first"`
	Last          bool     `json:"last"`
	Pageable      Pageable `json:"pageable"`
}

// GetParams extracts the 0-based page index and page size from the request
func GetParams(c *fiber.Ctx) domain.PageRequest {
	size, err := strconv.Atoi(c.Query("size", strconv.Itoa(DefaultSize)))
	if err != nil || size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	// page*size must not overflow
	if maxPage := math.MaxInt / size; page > maxPage {
		page = maxPage
	}

	return domain.PageRequest{Page: page, Size: size}
}

// NewResponse converts a domain page into its wire form, mapping every item with convert
func NewResponse[S, T any](page *domain.Page[S], convert func(S) T) *Response[T] {
	content := make([]T, len(page.Content))
	for i, item := range page.Content {
		content[i] = convert(item)
	}

	totalPages := page.TotalPages()
	return &Response[T]{
		Content:       content,
		TotalElements: page.Total,
		TotalPages:    totalPages,
		First:         page.Request.Page == 0,
		Last:          page.Request.Page+1 >= totalPages,
		Pageable: Pageable{
			PageNumber: page.Request.Page,
			PageSize:   page.Request.Size,
			Offset:     page.Request.Offset(),
		},
	}
}
