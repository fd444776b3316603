// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides voter identity helpers.

# Email Keys

Each email may vote once. Addresses are trimmed and lower-cased before use:

	email, err := auth.NormalizeEmail("  Bob@Example.COM ")
	// email == "bob@example.com"

Display-name forms ("Bob <bob@example.com>"), addresses without a dotted
domain, and addresses longer than 254 bytes return ErrInvalidEmail.

# Choices

	err := auth.ValidateChoice(req.Choice) // "for" or "against"

# Vote IDs

	id := auth.GenerateVoteID() // random UUID

# IP Hashing

For privacy-preserving abuse tracking:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
