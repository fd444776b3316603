// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/supplier-dash/auth"
	"github.com/danielhkuo/supplier-dash/cliparse"
	"github.com/danielhkuo/supplier-dash/middleware"
	"github.com/danielhkuo/supplier-dash/models"
)

type VotesHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotesHandler(db *sql.DB, cfg cliparse.Config) *VotesHandler {
	return &VotesHandler{db: db, cfg: cfg}
}

// SubmitVote handles POST /votes
// Each lower-cased email may vote exactly once
func (h *VotesHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email, err := auth.NormalizeEmail(req.Email)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	if err := auth.ValidateChoice(req.Choice); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	voteID := auth.GenerateVoteID()
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
	userAgent := r.UserAgent()

	// Primary key on email: a repeat vote inserts nothing
	result, err := h.db.Exec(`
		INSERT INTO vote (email, id, choice, created_at, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING
	`, email, voteID, req.Choice, time.Now().UTC(), ipHash, userAgent)
	if err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}
	if inserted == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "Email has already voted")
		return
	}

	slog.Info("vote submitted", "vote_id", voteID, "choice", req.Choice)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		VoteID:  voteID,
		Message: "Vote submitted successfully",
	})
}

// GetTally handles GET /votes/tally
func (h *VotesHandler) GetTally(w http.ResponseWriter, r *http.Request) {
	var tally models.VoteTally
	err := h.db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN choice = $1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN choice = $2 THEN 1 ELSE 0 END), 0)
		FROM vote
	`, models.ChoiceFor, models.ChoiceAgainst).Scan(&tally.For, &tally.Against)
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	tally.Total = tally.For + tally.Against

	middleware.JSONResponse(w, http.StatusOK, tally)
}

// GetStatus handles GET /votes/status?email=
func (h *VotesHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	email, err := auth.NormalizeEmail(r.URL.Query().Get("email"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	var vote models.Vote
	err = h.db.QueryRow(`
		SELECT id, email, choice FROM vote WHERE email = $1
	`, email).Scan(&vote.ID, &vote.Email, &vote.Choice)

	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{HasVoted: false})
		return
	}
	if err != nil {
		slog.Error("failed to query vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{
		HasVoted: true,
		VoteID:   &vote.ID,
		Choice:   &vote.Choice,
	})
}
