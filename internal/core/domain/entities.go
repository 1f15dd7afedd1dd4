package domain

import "time"

// LoanDays is how many days a book may stay out before its loan counts as late
const LoanDays = 4

// Book represents a catalog entry in the domain layer
type Book struct {
	ID     uint // Zero until storage assigns one
	ISBN   string
	Title  string
	Author string
}

// HasID reports whether storage has assigned an identifier
func (b *Book) HasID() bool {
	return b != nil && b.ID != 0
}

// Loan represents a book lent to a customer
type Loan struct {
	ID            uint
	Book          *Book // Non-owning reference to an existing book
	Customer      string
	CustomerEmail string
	LoanDate      time.Time
	Returned      *bool // nil or false means the loan is still active
}

// IsActive reports whether the loan has not been returned yet
func (l *Loan) IsActive() bool {
	return l.Returned == nil || !*l.Returned
}

// LoanFilter selects loans by book ISBN or by customer
type LoanFilter struct {
	ISBN     string
	Customer string
}

// PageRequest is a 0-based page index plus page size
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a larger result set
type Page[T any] struct {
	Content []T
	Total   int64
	Request PageRequest
}

// TotalPages returns how many pages the full result set spans
func (p *Page[T]) TotalPages() int {
	if p.Request.Size <= 0 {
		return 0
	}
	pages := int(p.Total) / p.Request.Size
	if int(p.Total)%p.Request.Size > 0 {
		pages++
	}
	return pages
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
