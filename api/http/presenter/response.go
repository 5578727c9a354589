package presenter

import "github.com/gofiber/fiber/v2"

// LocalRequestID — ключ c.Locals, под которым middleware хранит id запроса.
const LocalRequestID = "requestId"

type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Error writes {"message": ...} and echoes the request id so users can quote it.
func Error(c *fiber.Ctx, status int, message string) error {
	rid, _ := c.Locals(LocalRequestID).(string)
	return JSON(c, status, ErrorResponse{Message: message, RequestID: rid})
}
