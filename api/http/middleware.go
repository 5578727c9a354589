package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/atsmatch/api/http/presenter"
	"github.com/artem13815/atsmatch/pkg/logger"
)

// RequestLogger assigns a request id, attaches a request-scoped zerolog logger
// to the user context and writes one access line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(presenter.LocalRequestID, rid)
		c.Set(fiber.HeaderXRequestID, rid)

		l := logger.Logger.With().Str("request_id", rid).Logger()
		c.SetUserContext(l.WithContext(c.UserContext()))

		method, path := c.Method(), c.Path()
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := l.Info()
		switch {
		case status >= 500:
			ev = l.Error().Err(err)
		case status >= 400:
			ev = l.Warn()
		}
		ev.Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}
