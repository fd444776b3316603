// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the dashboard API.

# Handler Types

  - DashboardHandler: aggregated supplier sales (summary, chart, table, export)
  - VotesHandler: email-gated for/against votes and tallies

Handlers are created via constructor functions:

	dashboard := handlers.NewDashboardHandler(dataset.NewSource(cfg.DatasetURL))
	votes := handlers.NewVotesHandler(db, cfg)

# Dashboard

Every dashboard request loads the complete dataset and aggregates it with
aggregate.Aggregate, so the response always reflects the current file:

	GET /dashboard/summary      → ranked top 15 with raw numbers
	GET /dashboard/chart        → labels plus warehouse/retail/transfers series
	GET /dashboard/table        → ranked rows formatted as "1,234.50"
	GET /dashboard/export.xlsx  → the ranked table as a workbook

The chart accepts ?series=warehouse|retail|transfers to return a single
series. If the dataset cannot be loaded, all four return 503 "Data unavailable".

# Voting

	POST /votes          → SubmitVote {email, choice}
	GET  /votes/tally    → GetTally
	GET  /votes/status   → GetStatus ?email=

Emails are trimmed and lower-cased; a second vote for the same address
returns 409.
*/
package handlers
