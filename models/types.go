package models

import "time"

// Vote choice constants
const (
	ChoiceFor     = "for"
	ChoiceAgainst = "against"
)

// Chart series names
const (
	SeriesAll       = "all"
	SeriesWarehouse = "warehouse"
	SeriesRetail    = "retail"
	SeriesTransfers = "transfers"
)

// Request types

type SubmitVoteRequest struct {
	Email  string `json:"email"`
	Choice string `json:"choice"`
}

// Response types

type SubmitVoteResponse struct {
	VoteID  string `json:"vote_id"`
	Message string `json:"message"`
}

type VoteTally struct {
	For     int `json:"for"`
	Against int `json:"against"`
	Total   int `json:"total"`
}

type VoteStatusResponse struct {
	HasVoted bool    `json:"has_voted"`
	VoteID   *string `json:"vote_id,omitempty"`
	Choice   *string `json:"choice,omitempty"`
}

type SummaryResponse struct {
	Records []RankedSummary `json:"records"`
	Count   int             `json:"count"`
}

type ChartResponse struct {
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

type TableResponse struct {
	Rows []TableRow `json:"rows"`
}

// Domain types

type Vote struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Choice    string    `json:"choice"`
	CreatedAt time.Time `json:"created_at"`
	IPHash    *string   `json:"-"` // Never expose in JSON
	UserAgent *string   `json:"-"` // Never expose in JSON
}

// Dashboard types

type RankedSummary struct {
	Rank            int     `json:"rank"` // 1-indexed ranking
	Name            string  `json:"name"`
	Label           string  `json:"label"`
	WarehouseSales  float64 `json:"warehouse_sales"`
	RetailSales     float64 `json:"retail_sales"`
	RetailTransfers float64 `json:"retail_transfers"`
	Total           float64 `json:"total"`
}

type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Numbers are pre-formatted for display ("1,234.50")
type TableRow struct {
	Rank            int    `json:"rank"`
	Name            string `json:"name"`
	WarehouseSales  string `json:"warehouse_sales"`
	RetailSales     string `json:"retail_sales"`
	RetailTransfers string `json:"retail_transfers"`
	Total           string `json:"total"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
