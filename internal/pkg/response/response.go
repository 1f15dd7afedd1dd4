package response

import "github.com/gofiber/fiber/v2"

// APIErrors is the body of every rejected request
type APIErrors struct {
	Errors []string `json:"errors"`
}

// OK sends a 200 response with data as the body
func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// Created sends a 201 created response with data as the body
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// NoContent sends a 204 response
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Errors sends an error response listing every message in order
func Errors(c *fiber.Ctx, statusCode int, messages ...string) error {
	if messages == nil {
		messages = []string{}
	}
	return c.Status(statusCode).JSON(APIErrors{Errors: messages})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, messages ...string) error {
	return Errors(c, fiber.StatusBadRequest, messages...)
}

// NotFound sends a bare 404 with an empty body.
// SendStatus is avoided because it fills an empty body with the status text.
func NotFound(c *fiber.Ctx) error {
	c.Status(fiber.StatusNotFound)
	return nil
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Errors(c, fiber.StatusInternalServerError, message)
}
