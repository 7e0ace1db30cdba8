// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package results persists harvested papers and their resolution outcomes
// in a SQLite database and exports the accumulated records as CSV or YAML.
package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/replication-scout/pkg/types"
)

const (
	indexDir   = "index"
	exportsDir = "exports"
	dbFile     = "scout.db"
)

// Store manages the results SQLite database under the results directory.
type Store struct {
	db         *sql.DB
	resultsDir string
}

// NewStore opens or creates the results database at
// resultsDir/index/scout.db, creating the schema if needed.
func NewStore(cfg types.ResultsConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.ResultsDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, resultsDir: cfg.ResultsDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			key TEXT PRIMARY KEY,
			doi TEXT,
			title TEXT,
			authors TEXT,
			journal TEXT,
			topic TEXT,
			year TEXT,
			date TEXT,
			link TEXT,
			abstract TEXT,
			replication_package INTEGER NOT NULL DEFAULT 0,
			replication_url TEXT,
			replication_source TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_journal ON papers(journal)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_topic ON papers(topic)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// paperKey identifies a paper row: the DOI when present, the title
// otherwise (some indexed records lack a DOI).
func paperKey(p types.Paper) string {
	if p.DOI != "" {
		return p.DOI
	}
	return p.Title
}

// Upsert inserts or replaces the record for one paper. Re-running a scan
// over the same journals overwrites earlier rows in place.
func (s *Store) Upsert(ctx context.Context, p types.Paper) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO papers (key, doi, title, authors, journal, topic, year, date, link, abstract,
			replication_package, replication_url, replication_source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			doi=excluded.doi, title=excluded.title, authors=excluded.authors,
			journal=excluded.journal, topic=excluded.topic, year=excluded.year,
			date=excluded.date, link=excluded.link, abstract=excluded.abstract,
			replication_package=excluded.replication_package,
			replication_url=excluded.replication_url,
			replication_source=excluded.replication_source`,
		paperKey(p), p.DOI, p.Title, p.Authors, p.Journal, p.Topic, p.Year, p.Date,
		p.Link, p.Abstract, p.ReplicationPackage, p.ReplicationURL, p.ReplicationSource,
	)
	if err != nil {
		return fmt.Errorf("upserting paper %s: %w", paperKey(p), err)
	}
	return nil
}

// Papers returns every stored record ordered by journal then date,
// newest first within a journal.
func (s *Store) Papers(ctx context.Context) ([]types.Paper, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT doi, title, authors, journal, topic, year, date, link, abstract,
			replication_package, replication_url, replication_source
		 FROM papers ORDER BY journal, date DESC, key`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		var p types.Paper
		if err := rows.Scan(&p.DOI, &p.Title, &p.Authors, &p.Journal, &p.Topic,
			&p.Year, &p.Date, &p.Link, &p.Abstract,
			&p.ReplicationPackage, &p.ReplicationURL, &p.ReplicationSource); err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// GroupSummary aggregates paper counts for one journal, topic, or source
// grouping.
type GroupSummary struct {
	Name        string
	Papers      int
	WithPackage int
}

// Rate returns the share of the group's papers that have a package.
func (g GroupSummary) Rate() float64 {
	if g.Papers == 0 {
		return 0
	}
	return float64(g.WithPackage) / float64(g.Papers)
}

// SummaryByJournal aggregates per-journal counts, ordered by journal name.
func (s *Store) SummaryByJournal(ctx context.Context) ([]GroupSummary, error) {
	return s.groupSummary(ctx, "journal")
}

// SummaryByTopic aggregates per-topic counts, ordered by topic name.
func (s *Store) SummaryByTopic(ctx context.Context) ([]GroupSummary, error) {
	return s.groupSummary(ctx, "topic")
}

func (s *Store) groupSummary(ctx context.Context, column string) ([]GroupSummary, error) {
	// column is one of the fixed names above, never caller input.
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s, COUNT(*), COALESCE(SUM(replication_package), 0)
		 FROM papers GROUP BY %s ORDER BY %s`, column, column, column))
	if err != nil {
		return nil, fmt.Errorf("aggregating by %s: %w", column, err)
	}
	defer rows.Close()

	var summaries []GroupSummary
	for rows.Next() {
		var g GroupSummary
		if err := rows.Scan(&g.Name, &g.Papers, &g.WithPackage); err != nil {
			return nil, fmt.Errorf("scanning %s summary row: %w", column, err)
		}
		summaries = append(summaries, g)
	}
	return summaries, rows.Err()
}

// SummaryBySource counts located packages per producing source, ordered
// by source name. Papers without a package are excluded.
func (s *Store) SummaryBySource(ctx context.Context) ([]GroupSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT replication_source, COUNT(*)
		 FROM papers WHERE replication_package = 1
		 GROUP BY replication_source ORDER BY replication_source`)
	if err != nil {
		return nil, fmt.Errorf("aggregating by source: %w", err)
	}
	defer rows.Close()

	var summaries []GroupSummary
	for rows.Next() {
		var g GroupSummary
		if err := rows.Scan(&g.Name, &g.Papers); err != nil {
			return nil, fmt.Errorf("scanning source summary row: %w", err)
		}
		g.WithPackage = g.Papers
		summaries = append(summaries, g)
	}
	return summaries, rows.Err()
}
