package handler

import (
	"strconv"

	"medtour/internal/service"

	"github.com/gin-gonic/gin"
)

// Client hint headers carrying the layout viewport width
var viewportHeaders = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// RequestViewport reads the viewport width from the width query parameter or
// a client hint header, falling back to fallback.
func RequestViewport(c *gin.Context, fallback int) service.FixedViewport {
	if w, err := strconv.Atoi(c.Query("width")); err == nil && w > 0 {
		return service.FixedViewport(w)
	}
	for _, h := range viewportHeaders {
		if w, err := strconv.Atoi(c.GetHeader(h)); err == nil && w > 0 {
			return service.FixedViewport(w)
		}
	}
	return service.FixedViewport(fallback)
}

// AcceptViewportHints asks browsers to send the viewport client hint
func AcceptViewportHints() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", "Sec-CH-Viewport-Width, Viewport-Width")
		c.Next()
	}
}
