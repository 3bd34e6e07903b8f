package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avnit77/recipes/config"
	"github.com/avnit77/recipes/pkg/api"
	"github.com/avnit77/recipes/pkg/storage"
	"github.com/avnit77/recipes/pkg/storage/memory"
	"github.com/avnit77/recipes/pkg/storage/sqlstore"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	nats "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type apiServer struct {
	c      *config.Config
	quitCh chan bool
	doneCh chan bool

	db    *sqlx.DB
	store storage.Interface
	nc    *nats.Conn
	loc   *time.Location
}

func init() {
	formatter := &log.TextFormatter{
		FullTimestamp: true,
	}
	log.SetFormatter(formatter)

	// Output to stdout instead of the default stderr
	log.SetOutput(os.Stdout)

	log.SetLevel(log.InfoLevel)
}

func newAPIServer(c *config.Config) (*apiServer, error) {
	s := &apiServer{
		c:      c,
		quitCh: make(chan bool),
		doneCh: make(chan bool),
	}

	if c.LogLevel != "" {
		level, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, errors.Wrap(err, "invalid log level")
		}
		log.SetLevel(level)
	}

	loc, err := c.Location()
	if err != nil {
		return nil, errors.Wrap(err, "invalid timezone")
	}
	s.loc = loc

	store, db, err := openStore(c)
	if err != nil {
		return nil, err
	}
	s.store = store
	s.db = db

	if c.NATSServerURL != "" {
		nc, err := nats.Connect(c.NATSServerURL,
			nats.Name("recipes-api"),
			nats.DrainTimeout(10*time.Second),
			nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
				log.Error("nats: ", err)
			}),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				log.Warn("nats: disconnected: ", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				log.Info("nats: reconnected to ", nc.ConnectedUrl())
			}))
		if err != nil {
			s.Close()
			return nil, errors.Wrap(err, "failed to connect to nats")
		}
		s.nc = nc
	}

	return s, nil
}

// openStore selects the storage backend for the configured driver.
func openStore(c *config.Config) (storage.Interface, *sqlx.DB, error) {
	switch c.DatabaseDriver {
	case "", "memory":
		log.Warn("Using in-memory storage, data is lost on shutdown")
		return memory.NewStore(), nil, nil
	case "postgres", "sqlite3":
		db, err := sqlstore.Open(c.DatabaseDriver, c.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		// SQLite databases are embedded and migrated on startup
		if c.DatabaseDriver == "sqlite3" {
			db.SetMaxOpenConns(1)
			n, err := sqlstore.Migrate(db)
			if err != nil {
				db.Close()
				return nil, nil, err
			}
			log.Infof("Applied %d migrations", n)
		}
		return sqlstore.NewStore(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", c.DatabaseDriver)
	}
}

func (s *apiServer) Serve() {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(logger())

	// Register API endpoints
	h := api.NewHandler(s.nc, s.store, s.loc)
	h.RegisterRoutes(e)

	addr := fmt.Sprintf("%s:%d", s.c.BindHost, s.c.BindPort)
	go func() {
		log.WithFields(log.Fields{
			"host":     s.c.BindHost,
			"port":     s.c.BindPort,
			"driver":   s.c.DatabaseDriver,
			"timezone": s.loc.String(),
			"version":  s.c.BuildVersion,
		}).Info("Starting server")

		if err := e.Start(addr); err != nil {
			e.Logger.Info("Shutting down the server")
		}
	}()

	// Wait until receiving the quit signal
	<-s.quitCh
	log.Info("Shutdown signal received")

	// Create a 10 second timeout context
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the echo web server
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Error(err)
	}

	// We've done!
	s.doneCh <- true
}

func (s *apiServer) Shutdown() {
	// Send the quit signal to the Serve() routine
	s.quitCh <- true

	// Wait up to 10 seconds
	select {
	case <-s.doneCh:
		log.Info("Shutdown server successful")
	case <-time.After(10 * time.Second):
		log.Error("Shutdown server failed")
	}
}

func (s *apiServer) Close() {
	if s.nc != nil {
		if err := s.nc.Drain(); err != nil {
			log.Error("failed to drain nats connection: ", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Error("failed to close database: ", err)
		}
	}
}

func RunServeAPI(c *config.Config) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		s, err := newAPIServer(c)
		if err != nil {
			log.Error("failed to create new server instance: ", err)
			os.Exit(1)
		}
		defer s.Close()

		go s.Serve()

		// Wait for interrupt signal to gracefully shutdown the server
		quitCh := make(chan os.Signal, 1)
		signal.Notify(quitCh, os.Interrupt, syscall.SIGTERM)
		<-quitCh

		// Shutdown the server
		s.Shutdown()
	}
}
