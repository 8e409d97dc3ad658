// Package response holds the JSON body shapes shared by all handlers.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the envelope for outcomes that carry only a text message,
// including every error response.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes data as the response body unchanged. Entities and lists go
// straight to the client without a wrapper.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a body containing only a message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// MessageWith writes a message plus the affected entity under the given key,
// the shape mutation endpoints answer with.
func MessageWith(c echo.Context, statusCode int, message, key string, entity any) error {
	return c.JSON(statusCode, map[string]any{
		"message": message,
		key:       entity,
	})
}
