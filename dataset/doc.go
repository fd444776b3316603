// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset loads the sales CSV into rows for the aggregate package.

# Sources

	src := dataset.NewSource(cfg.DatasetURL)
	rows, err := src.Load(ctx)

Locations starting with http:// or https:// are fetched with an HTTPSource;
anything else is read from disk with a FileSource. Both re-read the data on
every Load.

# Errors

Every failure (missing file, bad status, malformed CSV) wraps
ErrDataUnavailable:

	if errors.Is(err, dataset.ErrDataUnavailable) {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Data unavailable")
	}
*/
package dataset
