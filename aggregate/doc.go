// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate ranks suppliers by combined sales.

# Usage

	rows, err := source.Load(ctx)
	if err != nil {
		// data unavailable
	}
	top := aggregate.Aggregate(rows)

Each row is a map of column name to raw text, as produced by the dataset
package. Rows are grouped by the SUPPLIER column, used verbatim. Rows with an
empty or missing supplier are dropped.

# Numbers

WAREHOUSE SALES, RETAIL SALES and RETAIL TRANSFERS are parsed as float64. A
missing, malformed, NaN or infinite value contributes 0 for that field only; the
other fields of the row still count.

# Ordering

Groups are sorted by Total descending and cut to TopN (15). Equal totals keep
the order in which their supplier first appeared.

# Labels

Names longer than 20 characters are shown as their first 18 characters
followed by "…". Shorter names are unchanged.

Aggregate is a pure function and may be called concurrently.
*/
package aggregate
