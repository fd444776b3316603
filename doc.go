// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the supplier sales dashboard API.

The server loads a CSV of warehouse and retail sales, ranks the top 15
suppliers by combined sales, and serves the results for a chart and a ranked
table. Visitors can also cast a single for/against vote per email address.

# Starting the Server

	DATABASE_URL=file:votes.db DATASET_URL=data/sales.csv IP_HASH_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -data https://example.com/sales.csv -ip-salt ...

A .env file in the working directory is loaded first, if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): vote store connection string
  - DATASET_URL (-data): sales CSV path or http(s) URL
  - IP_HASH_SALT (--ip-salt): secret for voter IP hashing

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

  - aggregate: supplier grouping, totals, top-15 ranking, labels
  - dataset: CSV parsing and file/HTTP sources
  - handlers: HTTP request handlers (dashboard, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Email normalization, vote IDs, IP hashing
  - db: Schema creation and driver selection
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
