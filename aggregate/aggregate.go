// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Column names read from each row
const (
	ColSupplier        = "SUPPLIER"
	ColWarehouseSales  = "WAREHOUSE SALES"
	ColRetailSales     = "RETAIL SALES"
	ColRetailTransfers = "RETAIL TRANSFERS"
)

// Output shaping constants
const (
	// TopN is the number of suppliers kept after ranking
	TopN = 15
	// LabelMaxLen is the longest name, in characters, shown unshortened
	LabelMaxLen = 20
	// LabelKeepLen is how many leading characters a shortened label keeps
	LabelKeepLen = 18
	// Ellipsis marks a shortened label
	Ellipsis = "…"
)

// RawRow maps a column name to its raw text. A missing key is an absent field.
type RawRow map[string]string

// Summary is the aggregate for one supplier.
type Summary struct {
	Name            string  `json:"name"`
	Label           string  `json:"label"`
	WarehouseSales  float64 `json:"warehouse_sales"`
	RetailSales     float64 `json:"retail_sales"`
	RetailTransfers float64 `json:"retail_transfers"`
	Total           float64 `json:"total"`
}

// Aggregate groups rows by supplier, sums the three sales columns and returns
// the TopN groups ordered by total, highest first.
// Rows without a supplier are ignored; bad numbers count as zero.
func Aggregate(rows []RawRow) []Summary {
	groups := make(map[string]*Summary)
	order := make([]*Summary, 0)

	for _, row := range rows {
		name := row[ColSupplier]
		if name == "" {
			continue
		}

		acc, ok := groups[name]
		if !ok {
			acc = &Summary{Name: name}
			groups[name] = acc
			order = append(order, acc)
		}

		acc.WarehouseSales += parseAmount(row[ColWarehouseSales])
		acc.RetailSales += parseAmount(row[ColRetailSales])
		acc.RetailTransfers += parseAmount(row[ColRetailTransfers])
	}

	for _, acc := range order {
		acc.Total = acc.WarehouseSales + acc.RetailSales + acc.RetailTransfers
	}

	// Stable so equal totals keep first-seen order
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Total > order[j].Total
	})

	if len(order) > TopN {
		order = order[:TopN]
	}

	result := make([]Summary, 0, len(order))
	for _, acc := range order {
		s := *acc
		s.Label = Label(s.Name)
		result = append(result, s)
	}

	return result
}

// Label shortens long supplier names for chart axes
func Label(name string) string {
	runes := []rune(name)
	if len(runes) > LabelMaxLen {
		return string(runes[:LabelKeepLen]) + Ellipsis
	}
	return name
}

// parseAmount returns 0 for anything that is not a finite number
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
