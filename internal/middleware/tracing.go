package middleware

import (
	"agora/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
)

// TracingMiddleware starts a server span per request and stores the trace ID
// in Fiber locals so the logging middleware can attach it.
func TracingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		span, ctx := observability.NewSpan(c.UserContext(), c.Method()+" "+c.Path())
		defer span.End()

		if tid := span.TraceID(); tid != "" {
			c.Locals("traceID", tid)
		}
		c.SetUserContext(ctx)

		err := c.Next()

		span.AddAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.route", c.Route().Path),
			attribute.Int("http.status_code", c.Response().StatusCode()),
		)
		if err != nil {
			span.SetError(err)
		}
		return err
	}
}
