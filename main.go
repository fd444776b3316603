package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/supplier-dash/cliparse"
	"github.com/danielhkuo/supplier-dash/dataset"
	"github.com/danielhkuo/supplier-dash/db"
	"github.com/danielhkuo/supplier-dash/middleware"
	"github.com/danielhkuo/supplier-dash/router"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	driver, err := db.DriverName(cfg.DatabaseType)
	if err != nil {
		slog.Error("unsupported database", "error", err)
		os.Exit(1)
	}

	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err, "driver", driver)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "driver", driver)

	// The dataset is re-read per request; a bad location only warns at startup
	source := dataset.NewSource(cfg.DatasetURL)
	if rows, err := source.Load(context.Background()); err != nil {
		slog.Warn("dataset not loadable at startup", "location", cfg.DatasetURL, "error", err)
	} else {
		slog.Info("Dataset ready", "location", cfg.DatasetURL, "rows", len(rows))
	}

	mux := router.NewRouter(dbConn, cfg, source)

	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "error", err, "addr", server.Addr)
		os.Exit(1)
	}

	// Cancelled on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Listening", "port", cfg.Port)
	if err := serve(ctx, &server, ln, 5*time.Second); err != nil {
		slog.Error("Server closed", "error", err)
		return
	}
	slog.Info("Server closed")
}
