package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// AccessLog tags every request with an id and writes a single line per
// request after the handler chain finishes.
func AccessLog(logger *log.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDHeader, rid)

		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			if appErr, ok := err.(*AppError); ok {
				status = appErr.StatusCode
			} else if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		logger.Printf("HTTP access | rid=%s method=%s path=%s status=%d latency=%s",
			rid, c.Method(), c.Path(), status, latency)

		return err
	}
}
