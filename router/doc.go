// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the dashboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, dataset.NewSource(cfg.DatasetURL))

# Endpoints

Health:

	GET /health

Dashboard (aggregated sales, top 15 suppliers):

	GET /dashboard/summary     - Ranked records with raw numbers
	GET /dashboard/chart       - Chart labels and series (?series=)
	GET /dashboard/table       - Ranked rows with formatted numbers
	GET /dashboard/export.xlsx - Ranked table as a workbook

Voting (one vote per email):

	POST /votes        - Submit a for/against vote
	GET  /votes/tally  - Live counts
	GET  /votes/status - Whether an email has voted (?email=)

All API routes are wrapped with middleware.WithLogging.
*/
package router
