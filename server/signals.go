package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// HandleSignals shuts the server down gracefully on SIGINT and SIGTERM. The
// returned channel is closed once the shutdown has finished.
func (s *Server) HandleSignals(srv *http.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		defer close(done)
		for sig := range sigChan {
			if sig == syscall.SIGHUP {
				s.logger.Info().Msg("Received SIGHUP, but doing nothing")
				continue
			}

			s.logger.Info().Str("signal", sig.String()).Msg("Shutting down gracefully")
			signal.Stop(sigChan)

			ctx, cancel := context.WithTimeout(context.Background(), s.Config.Listen.GetGracefulTimeout())
			err := srv.Shutdown(ctx)
			cancel()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error().Err(err).Msg("Server shutdown error")
			}
			return
		}
	}()

	return done
}
