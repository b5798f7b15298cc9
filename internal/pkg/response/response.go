package response

import "github.com/gofiber/fiber/v3"

// ErrorBody is the error wire shape: a single human-readable detail string.
type ErrorBody struct {
	Detail string `json:"detail"`
}

type MessageBody struct {
	Message string `json:"message"`
}

const (
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageInternalServerError = "internal server error"
	MessageServiceUnavailable  = "service unavailable"
	MessageError               = "error"
)

// JSON writes v as the raw response body. Success shapes are not wrapped in
// an envelope; the consuming client reads objects and arrays directly.
func JSON(c fiber.Ctx, status int, v any) error {
	return c.Status(normalizeStatus(status)).JSON(v)
}

func Message(c fiber.Ctx, status int, message string) error {
	return c.Status(normalizeStatus(status)).JSON(MessageBody{Message: message})
}

func Error(c fiber.Ctx, status int, detail string) error {
	st := normalizeStatus(status)
	if detail == "" {
		detail = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorBody{Detail: detail})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	case fiber.StatusServiceUnavailable:
		return MessageServiceUnavailable
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
