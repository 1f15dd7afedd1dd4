package handlers

import "library-api/internal/core/domain"

// BookDTO is the wire form of a book
type BookDTO struct {
	ID     uint   `json:"id,omitempty"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	ISBN   string `json:"isbn" validate:"required"`
}

// LoanRequest is the body of a new loan
type LoanRequest struct {
	ISBN     string `json:"isbn"`
	Customer string `json:"customer"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// LoanDTO is the wire form of a loan
type LoanDTO struct {
	ID       uint     `json:"id"`
	ISBN     string   `json:"isbn"`
	Customer string   `json:"customer"`
	Email    string   `json:"email,omitempty"`
	LoanDate string   `json:"loanDate"`
	Returned *bool    `json:"returned"`
	Book     *BookDTO `json:"book,omitempty"`
}

func toBook(dto BookDTO) *domain.Book {
	return &domain.Book{
		ID:     dto.ID,
		ISBN:   dto.ISBN,
		Title:  dto.Title,
		Author: dto.Author,
	}
}

func toBookDTO(book domain.Book) BookDTO {
	return BookDTO{
		ID:     book.ID,
		ISBN:   book.ISBN,
		Title:  book.Title,
		Author: book.Author,
	}
}

func toLoanDTO(loan domain.Loan) LoanDTO {
	dto := LoanDTO{
		ID:       loan.ID,
		Customer: loan.Customer,
		Email:    loan.CustomerEmail,
		LoanDate: loan.LoanDate.Format(dateLayout),
		Returned: loan.Returned,
	}
	if loan.Book != nil {
		book := toBookDTO(*loan.Book)
		dto.ISBN = book.ISBN
		dto.Book = &book
	}
	return dto
}

const dateLayout = "2006-01-02"
