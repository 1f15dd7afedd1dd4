package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoan_IsActive(t *testing.T) {
	yes, no := true, false

	assert.True(t, (&Loan{}).IsActive())
	assert.True(t, (&Loan{Returned: &no}).IsActive())
	assert.False(t, (&Loan{Returned: &yes}).IsActive())
}

func TestBook_HasID(t *testing.T) {
	var nilBook *Book

	assert.False(t, nilBook.HasID())
	assert.False(t, (&Book{ISBN: "123"}).HasID())
	assert.True(t, (&Book{ID: 1}).HasID())
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 0, 0},
	}

	for _, tt := range tests {
		page := &Page[Book]{Total: tt.total, Request: PageRequest{Size: tt.size}}
		assert.Equal(t, tt.want, page.TotalPages(), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 0, Size: 20}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 2, Size: 20}.Offset())
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2024, 3, 15, 23, 59, 59, 1, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestAsBusinessError(t *testing.T) {
	wrapped := fmt.Errorf("saving loan: %w", NewBusinessError(MsgBookAlreadyLoaned))

	be, ok := AsBusinessError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Book already loaned", be.Message)
	assert.Equal(t, "Book already loaned", be.Error())

	_, ok = AsBusinessError(ErrInvalidArgument)
	assert.False(t, ok)
}
