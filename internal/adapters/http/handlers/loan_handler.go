package handlers

import (
	"strconv"

	"library-api/internal/core/domain"
	"library-api/internal/core/services"
	"library-api/internal/pkg/pagination"
	"library-api/internal/pkg/response"
	"library-api/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
	bookService *services.BookService
	validator   *validation.Validator
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService, bookService *services.BookService, validator *validation.Validator) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		bookService: bookService,
		validator:   validator,
	}
}

// Create lends the book with the given ISBN to a customer
// @Summary Create loan
// @Description Lend a book for today. Responds with the new loan id.
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body LoanRequest true "Loan data"
// @Success 201 {integer} int
// @Failure 400 {object} response.APIErrors
// @Router /loans [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var req LoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if ok, err := validateRequest(c, h.validator, req); !ok {
		return err
	}

	book, found, err := h.bookService.GetByISBN(c.UserContext(), req.ISBN)
	if err != nil {
		return handleError(c, err)
	}
	if !found {
		return response.BadRequest(c, domain.MsgBookNotFoundForISBN)
	}

	loan, err := h.loanService.Save(c.UserContext(), &domain.Loan{
		Book:          book,
		Customer:      req.Customer,
		CustomerEmail: req.Email,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(loan.ID)
}

// Get gets a loan by ID
// @Summary Get loan
// @Tags Loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} LoanDTO
// @Failure 404
// @Router /loans/{id} [get]
func (h *LoanHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.NotFound(c)
	}

	loan, found, err := h.loanService.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return handleError(c, err)
	}
	if !found {
		return response.NotFound(c)
	}

	return response.OK(c, toLoanDTO(*loan))
}

// Find lists loans by book ISBN or customer
// @Summary Find loans
// @Tags Loans
// @Produce json
// @Param isbn query string false "Book ISBN"
// @Param customer query string false "Customer name"
// @Param page query int false "Page index" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.Response[LoanDTO]
// @Router /loans [get]
func (h *LoanHandler) Find(c *fiber.Ctx) error {
	filter := domain.LoanFilter{
		ISBN:     c.Query("isbn"),
		Customer: c.Query("customer"),
	}

	page, err := h.loanService.Find(c.UserContext(), filter, pagination.GetParams(c))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, pagination.NewResponse(page, toLoanDTO))
}
