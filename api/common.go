package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type message struct {
	Message string `json:"message"`
}

// readBody reads at most limit bytes. Anything past the limit is an error,
// and callers treat it like any other unreadable body.
func readBody(c *gin.Context, limit int64) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	defer c.Request.Body.Close()

	return io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
}

func writeMessage(c *gin.Context, msg string, statusCode int) {
	c.JSON(statusCode, message{Message: msg})
}
