// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/danielhkuo/supplier-dash/aggregate"
)

// ErrDataUnavailable wraps every failure to obtain or parse the dataset
var ErrDataUnavailable = errors.New("data unavailable")

// Source delivers the full set of parsed rows
type Source interface {
	Load(ctx context.Context) ([]aggregate.RawRow, error)
}

// NewSource returns an HTTPSource for http(s) locations and a FileSource otherwise
func NewSource(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{URL: location}
	}
	return &FileSource{Path: location}
}

// FileSource reads a CSV file from disk on every Load
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) ([]aggregate.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer f.Close()

	return Parse(f)
}

// HTTPSource fetches a CSV document on every Load
type HTTPSource struct {
	URL    string
	Client *http.Client // nil uses http.DefaultClient
}

func (s *HTTPSource) Load(ctx context.Context) ([]aggregate.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrDataUnavailable, resp.StatusCode)
	}

	return Parse(resp.Body)
}

// Parse reads a header-mapped CSV document into rows.
// Short records omit trailing columns; extra fields are dropped.
func Parse(r io.Reader) ([]aggregate.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err == io.EOF {
		return []aggregate.RawRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", ErrDataUnavailable, err)
	}

	for i, header := range headers {
		if i == 0 {
			header = strings.TrimPrefix(header, "\ufeff")
		}
		headers[i] = strings.TrimSpace(header)
	}

	rows := []aggregate.RawRow{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read row: %v", ErrDataUnavailable, err)
		}

		row := make(aggregate.RawRow, len(headers))
		for i, header := range headers {
			if i >= len(record) {
				break
			}
			row[header] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
