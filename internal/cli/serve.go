package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/erdgraph/internal/api"
	"github.com/matzehuels/erdgraph/pkg/store"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = time.Hour
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		dataDir string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Layouts posted to /api/layouts are stored and can be fetched again by ID.
Storage is MongoDB when ERDGRAPH_MONGO_URI is set, a directory when --data-dir
is given, and memory otherwise. ERDGRAPH_REDIS_URL selects a shared Redis
layout cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, dataDir, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr(envAddr, defaultAddr), "listen address")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "store layouts as files in this directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, dataDir string, noCache bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	st, kind, err := newStore(ctx, dataDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(runner, st, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	printKeyValue("Listening", StyleLink.Render("http://"+displayAddr(addr)))
	printKeyValue("Store", kind)
	if kind == "memory" {
		printWarning("Layouts are kept in memory and lost on restart")
	}
	prog.done("Server ready")

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go sweepExpired(sweepCtx, st, cleanupInterval, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}

// sweepExpired removes expired layouts from st every interval until ctx
// ends.
func sweepExpired(ctx context.Context, st store.Store, interval time.Duration, logger *log.Logger) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := st.Cleanup(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("store cleanup failed", "error", err)
				continue
			}
			logger.Debug("store cleanup done")
		}
	}
}

// newStore picks the layout store backend and names it for display.
func newStore(ctx context.Context, dataDir string) (store.Store, string, error) {
	if uri := os.Getenv(envMongoURI); uri != "" {
		s, err := store.NewMongoStore(ctx, uri, envOr(envMongoDB, defaultMongoDB))
		return s, "mongodb", err
	}
	if dataDir != "" {
		s, err := store.NewFileStore(dataDir)
		return s, "files in " + dataDir, err
	}
	return store.NewMemoryStore(), "memory", nil
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
