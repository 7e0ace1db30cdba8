// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.yaml.in/yaml/v3"
)

// csvHeader is the column order of CSV exports.
var csvHeader = []string{
	"title", "authors", "journal", "topic", "year", "date", "doi", "link",
	"replication_package", "replication_url", "replication_source",
}

// ExportCSV writes every stored record to resultsDir/exports/<name>.csv
// and returns the written path.
func (s *Store) ExportCSV(ctx context.Context, name string) (string, error) {
	papers, err := s.Papers(ctx)
	if err != nil {
		return "", err
	}

	path, f, err := s.createExport(name + ".csv")
	if err != nil {
		return "", err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range papers {
		record := []string{
			p.Title, p.Authors, p.Journal, p.Topic, p.Year, p.Date, p.DOI, p.Link,
			strconv.Itoa(p.ReplicationPackage), p.ReplicationURL, p.ReplicationSource,
		}
		if err := cw.Write(record); err != nil {
			return "", fmt.Errorf("writing CSV record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flushing CSV: %w", err)
	}
	return path, nil
}

// ExportYAML writes every stored record to resultsDir/exports/<name>.yaml
// and returns the written path.
func (s *Store) ExportYAML(ctx context.Context, name string) (string, error) {
	papers, err := s.Papers(ctx)
	if err != nil {
		return "", err
	}

	path, f, err := s.createExport(name + ".yaml")
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(papers); err != nil {
		return "", fmt.Errorf("encoding YAML export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("finishing YAML export: %w", err)
	}
	return path, nil
}

func (s *Store) createExport(filename string) (string, *os.File, error) {
	dir := filepath.Join(s.resultsDir, exportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("creating exports directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("creating export file: %w", err)
	}
	return path, f, nil
}
