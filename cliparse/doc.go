// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and environment.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

CLI flags take precedence over environment variables. main loads a .env file
(if present) before parsing, so its values act as environment defaults.

# Flags and Environment

	-p          PORT           Server port (default: 3318)
	-d          DATABASE_URL   Database connection string (required)
	-t          DATABASE_TYPE  sqlite or postgres (default: sqlite)
	-data       DATASET_URL    Sales CSV path or http(s) URL (required)
	-ip-salt    IP_HASH_SALT   Secret for voter IP hashing (required)

# Validation

ParseFlags returns an error when a required value is missing, PORT is not a
number, or DATABASE_TYPE is not one of the supported drivers.
*/
package cliparse
