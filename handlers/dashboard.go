// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/supplier-dash/aggregate"
	"github.com/danielhkuo/supplier-dash/dataset"
	"github.com/danielhkuo/supplier-dash/middleware"
	"github.com/danielhkuo/supplier-dash/models"
)

// ExportSheet is the worksheet name used by ExportXLSX
const ExportSheet = "Top Warehouses"

var exportHeader = []string{"Rank", "Supplier", "Warehouse Sales", "Retail Sales", "Retail Transfers", "Total"}

type DashboardHandler struct {
	source dataset.Source
}

func NewDashboardHandler(source dataset.Source) *DashboardHandler {
	return &DashboardHandler{source: source}
}

// load aggregates the full dataset, writing a 503 on failure.
// Returns false if the response has already been written.
func (h *DashboardHandler) load(w http.ResponseWriter, r *http.Request) ([]aggregate.Summary, bool) {
	rows, err := h.source.Load(r.Context())
	if err != nil {
		if !errors.Is(err, dataset.ErrDataUnavailable) {
			slog.Error("unexpected dataset error", "error", err)
		} else {
			slog.Warn("dataset unavailable", "error", err)
		}
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Data unavailable")
		return nil, false
	}

	summaries := aggregate.Aggregate(rows)
	slog.Debug("dataset aggregated", "rows", len(rows), "groups", len(summaries))
	return summaries, true
}

// GetSummary handles GET /dashboard/summary
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summaries, ok := h.load(w, r)
	if !ok {
		return
	}

	records := make([]models.RankedSummary, 0, len(summaries))
	for i, s := range summaries {
		records = append(records, models.RankedSummary{
			Rank:            i + 1,
			Name:            s.Name,
			Label:           s.Label,
			WarehouseSales:  s.WarehouseSales,
			RetailSales:     s.RetailSales,
			RetailTransfers: s.RetailTransfers,
			Total:           s.Total,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{
		Records: records,
		Count:   len(records),
	})
}

// GetChart handles GET /dashboard/chart?series=all|warehouse|retail|transfers
// Labels line up index-for-index with every series' values
func (h *DashboardHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	series := r.URL.Query().Get("series")
	if series == "" {
		series = models.SeriesAll
	}

	switch series {
	case models.SeriesAll, models.SeriesWarehouse, models.SeriesRetail, models.SeriesTransfers:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "series must be one of: all, warehouse, retail, transfers")
		return
	}

	summaries, ok := h.load(w, r)
	if !ok {
		return
	}

	labels := make([]string, 0, len(summaries))
	warehouse := make([]float64, 0, len(summaries))
	retail := make([]float64, 0, len(summaries))
	transfers := make([]float64, 0, len(summaries))
	for _, s := range summaries {
		labels = append(labels, s.Label)
		warehouse = append(warehouse, s.WarehouseSales)
		retail = append(retail, s.RetailSales)
		transfers = append(transfers, s.RetailTransfers)
	}

	resp := models.ChartResponse{Labels: labels, Series: []models.ChartSeries{}}
	if series == models.SeriesAll || series == models.SeriesWarehouse {
		resp.Series = append(resp.Series, models.ChartSeries{Name: models.SeriesWarehouse, Values: warehouse})
	}
	if series == models.SeriesAll || series == models.SeriesRetail {
		resp.Series = append(resp.Series, models.ChartSeries{Name: models.SeriesRetail, Values: retail})
	}
	if series == models.SeriesAll || series == models.SeriesTransfers {
		resp.Series = append(resp.Series, models.ChartSeries{Name: models.SeriesTransfers, Values: transfers})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetTable handles GET /dashboard/table
func (h *DashboardHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	summaries, ok := h.load(w, r)
	if !ok {
		return
	}

	rows := make([]models.TableRow, 0, len(summaries))
	for i, s := range summaries {
		rows = append(rows, models.TableRow{
			Rank:            i + 1,
			Name:            s.Name,
			WarehouseSales:  FormatAmount(s.WarehouseSales),
			RetailSales:     FormatAmount(s.RetailSales),
			RetailTransfers: FormatAmount(s.RetailTransfers),
			Total:           FormatAmount(s.Total),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.TableResponse{Rows: rows})
}

// ExportXLSX handles GET /dashboard/export.xlsx
func (h *DashboardHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	summaries, ok := h.load(w, r)
	if !ok {
		return
	}

	f, err := buildWorkbook(summaries)
	if err != nil {
		slog.Error("failed to build workbook", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build export")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="top-warehouses.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := f.WriteTo(w); err != nil {
		slog.Error("failed to write workbook", "error", err)
	}
}

// FormatAmount renders a value with thousands separators and two decimals
func FormatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func buildWorkbook(summaries []aggregate.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		f.Close()
		return nil, err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(ExportSheet, cell, title); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, s := range summaries {
		values := []interface{}{i + 1, s.Name, s.WarehouseSales, s.RetailSales, s.RetailTransfers, s.Total}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(ExportSheet, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}
