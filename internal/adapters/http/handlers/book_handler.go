package handlers

import (
	"errors"
	"strconv"

	"library-api/internal/core/domain"
	"library-api/internal/core/services"
	"library-api/internal/pkg/pagination"
	"library-api/internal/pkg/response"
	"library-api/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// BookHandler handles catalog endpoints
type BookHandler struct {
	bookService *services.BookService
	loanService *services.LoanService
	validator   *validation.Validator
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService *services.BookService, loanService *services.LoanService, validator *validation.Validator) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		loanService: loanService,
		validator:   validator,
	}
}

// Create registers a new book
// @Summary Create book
// @Description Register a new book. The ISBN must not be in the catalog yet.
// @Tags Books
// @Accept json
// @Produce json
// @Param body body BookDTO true "Book data"
// @Success 201 {object} BookDTO
// @Failure 400 {object} response.APIErrors
// @Router /books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var req BookDTO
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if ok, err := h.validate(c, req); !ok {
		return err
	}

	// The id is assigned by storage
	req.ID = 0

	book, err := h.bookService.Save(c.UserContext(), toBook(req))
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, toBookDTO(*book))
}

// Get gets a book by ID
// @Summary Get book
// @Tags Books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} BookDTO
// @Failure 404
// @Router /books/{id} [get]
func (h *BookHandler) Get(c *fiber.Ctx) error {
	book, err := h.loadBook(c)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, toBookDTO(*book))
}

// Update replaces the title and author of a book
// @Summary Update book
// @Description Only title and author change; the ISBN is immutable.
// @Tags Books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param body body BookDTO true "Book data"
// @Success 200 {object} BookDTO
// @Failure 400 {object} response.APIErrors
// @Failure 404
// @Router /books/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	var req BookDTO
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if ok, err := h.validate(c, req); !ok {
		return err
	}

	book, err := h.loadBook(c)
	if err != nil {
		return handleError(c, err)
	}

	book.Title = req.Title
	book.Author = req.Author

	updated, err := h.bookService.Update(c.UserContext(), book)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, toBookDTO(*updated))
}

// Delete deletes a book
// @Summary Delete book
// @Tags Books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 404
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	book, err := h.loadBook(c)
	if err != nil {
		return handleError(c, err)
	}

	if err := h.bookService.Delete(c.UserContext(), book); err != nil {
		return handleError(c, err)
	}

	return response.NoContent(c)
}

// Find searches books by example
// @Summary Find books
// @Description Empty filters match anything; the rest match case-insensitively by substring.
// @Tags Books
// @Produce json
// @Param title query string false "Title contains"
// @Param author query string false "Author contains"
// @Param isbn query string false "ISBN contains"
// @Param page query int false "Page index" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.Response[BookDTO]
// @Router /books [get]
func (h *BookHandler) Find(c *fiber.Ctx) error {
	filter := domain.Book{
		ISBN:   c.Query("isbn"),
		Title:  c.Query("title"),
		Author: c.Query("author"),
	}

	page, err := h.bookService.Find(c.UserContext(), filter, pagination.GetParams(c))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, pagination.NewResponse(page, toBookDTO))
}

// Loans lists the loans of a book
// @Summary Book loans
// @Tags Books
// @Produce json
// @Param id path int true "Book ID"
// @Param page query int false "Page index" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.Response[LoanDTO]
// @Failure 404
// @Router /books/{id}/loans [get]
func (h *BookHandler) Loans(c *fiber.Ctx) error {
	book, err := h.loadBook(c)
	if err != nil {
		return handleError(c, err)
	}

	page, err := h.loanService.GetLoansByBook(c.UserContext(), book, pagination.GetParams(c))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, pagination.NewResponse(page, toLoanDTO))
}

// loadBook resolves the :id path parameter, turning absence into domain.ErrNotFound
func (h *BookHandler) loadBook(c *fiber.Ctx) (*domain.Book, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	book, found, err := h.bookService.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return book, nil
}

// validate writes the 400 response itself when req is invalid
func (h *BookHandler) validate(c *fiber.Ctx, req interface{}) (bool, error) {
	return validateRequest(c, h.validator, req)
}

func validateRequest(c *fiber.Ctx, v *validation.Validator, req interface{}) (bool, error) {
	messages, err := v.Struct(req)
	if err != nil {
		return false, err
	}
	if len(messages) > 0 {
		return false, response.BadRequest(c, messages...)
	}
	return true, nil
}

// handleError renders business rule violations and missing resources; anything
// else goes to the app error handler
func handleError(c *fiber.Ctx, err error) error {
	if be, ok := domain.AsBusinessError(err); ok {
		return response.BadRequest(c, be.Message)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return response.NotFound(c)
	}
	return err
}
