// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVoteRequest: email, choice

# Response Types

Types for JSON responses:

  - SubmitVoteResponse: vote_id, message
  - VoteTally: for, against, total
  - VoteStatusResponse: has_voted, vote_id, choice
  - SummaryResponse: ranked supplier records
  - ChartResponse: labels and one value series per sales column
  - TableResponse: ranked rows with display-formatted numbers
  - ErrorResponse: error, message

# Domain Types

  - Vote: one stored vote, keyed by lower-cased email
  - RankedSummary: an aggregate.Summary with its 1-based rank
  - ChartSeries, TableRow: presentation shapes of a summary

# Constants

Vote choices:

	ChoiceFor     = "for"
	ChoiceAgainst = "against"

Chart series:

	SeriesAll       = "all"
	SeriesWarehouse = "warehouse"
	SeriesRetail    = "retail"
	SeriesTransfers = "transfers"
*/
package models
