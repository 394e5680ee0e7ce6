// Package server provides an HTTP API around the Norwegian duration parser
// and formatter
package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nmeilick/juration/config"
	serverconfig "github.com/nmeilick/juration/server/config"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Commands returns the CLI commands for the server functionality
func Commands() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Run the HTTP API",
		Subcommands: []*cli.Command{
			{
				Name:  "start",
				Usage: "Start the server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to config file",
					},
				},
				Action: func(c *cli.Context) error {
					return startServer(c)
				},
			},
		},
		Action: func(c *cli.Context) error {
			return cli.ShowSubcommandHelp(c)
		},
	}
}

// Server serves the conversion API
type Server struct {
	Config       *serverconfig.Config
	Router       *gin.Engine
	accessLogger io.WriteCloser
	errorLogger  io.WriteCloser
	logger       zerolog.Logger
	configPath   string
	httpServer   *http.Server
}

// New creates a server with all routes registered. Logging goes to logger
// until SetupLogging replaces it.
func New(cfg *serverconfig.Config, logger zerolog.Logger) *Server {
	s := &Server{
		Config: cfg,
		Router: gin.New(),
		logger: logger,
	}
	s.setupRoutes()
	return s
}

func startServer(c *cli.Context) error {
	// Set Gin to release mode in production
	if os.Getenv("DEBUG") != "1" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, configPath, err := config.LoadServerConfig(c)
	if err != nil {
		return err
	}

	server := New(cfg, zerolog.Nop())
	server.configPath = configPath

	if err := server.SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer server.closeLoggers()

	listen := cfg.Listen
	server.httpServer = &http.Server{
		Addr:              listen.Address(),
		Handler:           server.Handler(),
		ReadTimeout:       listen.GetReadTimeout(),
		WriteTimeout:      listen.GetWriteTimeout(),
		IdleTimeout:       listen.GetIdleTimeout(),
		ReadHeaderTimeout: listen.GetReadHeaderTimeout(),
	}

	done := server.HandleSignals(server.httpServer)

	server.logger.Info().
		Str("address", listen.Address()).
		Str("config", configPath).
		Str("api_prefix", cfg.APIPrefix).
		Msg("Starting server")

	var serverErr error
	if cert, key := listen.GetTLSCert(), listen.GetTLSKey(); cert != "" && key != "" {
		server.logger.Info().
			Str("cert", cert).
			Str("key", key).
			Msg("TLS enabled with static certificates")
		serverErr = server.httpServer.ListenAndServeTLS(cert, key)
	} else {
		serverErr = server.httpServer.ListenAndServe()
	}

	if !errors.Is(serverErr, http.ErrServerClosed) {
		return serverErr
	}

	// Wait for the graceful shutdown to complete
	<-done
	server.logger.Info().Msg("Server stopped")
	return nil
}

func (s *Server) setupRoutes() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(s.RequestIDMiddleware())
	s.Router.Use(s.GinLogger())

	api := s.Router.Group(s.Config.APIPrefix, NoCacheMiddleware())
	api.GET("/parse", s.handleParse)
	api.GET("/stringify", s.handleStringify)
	api.GET("/humanize", s.handleStringify)
	api.GET("/units", s.handleUnits)

	s.Router.NoRoute(func(c *gin.Context) {
		ErrorHandler(c, http.StatusNotFound, "")
	})
}
