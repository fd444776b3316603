// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/supplier-dash/cliparse"
	"github.com/danielhkuo/supplier-dash/dataset"
	"github.com/danielhkuo/supplier-dash/handlers"
	"github.com/danielhkuo/supplier-dash/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, source dataset.Source) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(source)
	votesHandler := handlers.NewVotesHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Dashboard data
	mux.HandleFunc("GET /dashboard/summary", middleware.WithLogging(dashboardHandler.GetSummary))
	mux.HandleFunc("GET /dashboard/chart", middleware.WithLogging(dashboardHandler.GetChart))
	mux.HandleFunc("GET /dashboard/table", middleware.WithLogging(dashboardHandler.GetTable))
	mux.HandleFunc("GET /dashboard/export.xlsx", middleware.WithLogging(dashboardHandler.ExportXLSX))

	// Voting
	mux.HandleFunc("POST /votes", middleware.WithLogging(votesHandler.SubmitVote))
	mux.HandleFunc("GET /votes/tally", middleware.WithLogging(votesHandler.GetTally))
	mux.HandleFunc("GET /votes/status", middleware.WithLogging(votesHandler.GetStatus))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("supplier-dash API v1"))
	})

	return mux
}
