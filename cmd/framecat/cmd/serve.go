package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/googollee/go-framing"
	"github.com/googollee/go-framing/codec"
	"github.com/googollee/go-framing/logger"
	"github.com/googollee/go-framing/metrics"
	"github.com/googollee/go-framing/transport/ginstream"
)

const shutdownTimeout = 5 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve the frames of a file over HTTP",
	Long: `Serve the frames of file at the stream path. GET streams them framed by the
strategy in the "strategy" query, the input strategy by default. POST checks
a posted stream framed by "strategy" and answers with the counts.

Example:
  framecat serve -s netstring --addr :8080 records.ns
  curl 'localhost:8080/stream?strategy=json-seq'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Serve.Addr = addr
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		reg := prometheus.NewRegistry()
		srv := &http.Server{
			Addr:    cfg.Serve.Addr,
			Handler: newRouter(data, reg),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, srv)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address, overrides serve.addr of the profile")
}

func run(ctx context.Context, srv *http.Server) error {
	log := logger.GetLogger("serve")

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newRouter(data []byte, reg *prometheus.Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	m := metrics.New(reg)
	opts := append(cfg.FramingOptions(), framing.WithObserver(m))
	// Validated in PersistentPreRunE.
	cd, _ := codec.Lookup(cfg.Codec)
	in := inputStrategy()

	r.GET(cfg.Serve.Path, func(c *gin.Context) {
		out, err := framing.Lookup(c.DefaultQuery("strategy", in.Name()))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ginstream.Handler[[]byte](out, codec.Raw, func(*gin.Context) (framing.StreamGenerator[[]byte], error) {
			var skipped int
			return wellFormed(framing.NewDecoder(bytes.NewReader(data), in, opts...), false, &skipped), nil
		}, opts...)(c)
	})

	r.POST(cfg.Serve.Path, func(c *gin.Context) {
		u, err := framing.Lookup(c.DefaultQuery("strategy", in.Name()))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rep, err := check(c.Request.Body, u, cd, opts)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"frames": rep.Frames, "bad": rep.Bad, "bytes": rep.Bytes})
	})

	r.GET(cfg.Serve.MetricsPath, gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	return r
}
