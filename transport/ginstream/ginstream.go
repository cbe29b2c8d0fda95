// Package ginstream serves and accepts framed streams with gin.
package ginstream

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/googollee/go-framing"
	"github.com/googollee/go-framing/codec"
	"github.com/googollee/go-framing/logger"
)

// Source produces the values streamed to one request.
type Source[T any] func(c *gin.Context) (framing.StreamGenerator[T], error)

// ContentType returns the media type of a stream of s framing payloads of
// cd.
func ContentType(s framing.Strategy, cd codec.Codec) string {
	switch s.Name() {
	case "none":
		return cd.ContentType()
	case "json-seq":
		return "application/json-seq"
	case "json-array":
		return "application/json"
	case "newline":
		if cd.Name() == "json" {
			return "application/x-ndjson"
		}
	}
	return "application/octet-stream"
}

// Handler returns a gin handler which streams the values of source, each
// marshaled by cd and framed by s. Every frame is flushed to the client as
// soon as it's written.
func Handler[T any](s framing.Strategy, cd codec.Codec, source Source[T], opts ...framing.Option) gin.HandlerFunc {
	log := logger.GetLogger("ginstream")
	contentType := ContentType(s, cd)

	return func(c *gin.Context) {
		g, err := source(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Type", contentType)
		c.Header("Cache-Control", "no-cache")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Status(http.StatusOK)

		w := flushWriter{w: c.Writer}
		if err := codec.Encode(w, s, cd, g, opts...); err != nil {
			log.Error(err, "stream aborted", "path", c.FullPath(), "strategy", s.Name())
			_ = c.Error(err)
		}
	}
}

// Bind returns a Decoder over the request body of c, framed by u and
// unmarshaled by cd.
func Bind[T any](c *gin.Context, u framing.Unrenderer, cd codec.Codec, opts ...framing.Option) *codec.Decoder[T] {
	return codec.NewDecoder[T](c.Request.Body, u, cd, opts...)
}

type flushWriter struct {
	w gin.ResponseWriter
}

func (w flushWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err != nil {
		return n, err
	}
	w.w.Flush()
	return n, nil
}

var _ io.Writer = flushWriter{}
