package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// unescapeParam decodes a path parameter. Issue-type labels carry spaces
// and slashes, so they arrive percent-encoded.
func unescapeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
