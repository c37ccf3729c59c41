// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
	"github.com/sebastiandiazro/MLOps-1/internal/config"
	"github.com/sebastiandiazro/MLOps-1/internal/logging"
	"github.com/sebastiandiazro/MLOps-1/internal/metrics"
)

// Dataset formats understood by LoadMovies.
const (
	FormatParquet = "parquet"
	FormatCSV     = "csv"
	FormatAuto    = "auto"
)

// ResolveFormat returns the concrete format for a dataset, inferring it
// from the file extension when format is "auto" or empty.
func ResolveFormat(path, format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatParquet:
		return FormatParquet, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatAuto, "":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet", ".pq":
		return FormatParquet, nil
	case ".csv", ".tsv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: cannot infer from %q", ErrUnsupportedFormat, path)
	}
}

// sourceExpr builds the table function reading the dataset file.
func sourceExpr(path, format string) string {
	if format == FormatCSV {
		return fmt.Sprintf("read_csv_auto(%s, header = true)", quoteLiteral(path))
	}
	return fmt.Sprintf("read_parquet(%s)", quoteLiteral(path))
}

// column projects a configured column, cast to sqlType, or a typed NULL when
// the column is not configured. An empty sqlType keeps the native type.
func column(name, sqlType string) string {
	if name == "" {
		if sqlType == "" {
			return "NULL"
		}
		return "NULL::" + sqlType
	}
	if sqlType == "" {
		return quoteIdent(name)
	}
	return fmt.Sprintf("TRY_CAST(%s AS %s)", quoteIdent(name), sqlType)
}

// buildMoviesQuery returns the SELECT used by LoadMovies. Column order
// matches scanMovie.
func buildMoviesQuery(ds *config.DatasetConfig, format string) string {
	cols := []string{
		column(ds.TitleColumn, "VARCHAR"),
		column(ds.FeaturesColumn, ""),
		column(ds.CollectionColumn, ""),
		column(ds.ReleaseDateColumn, "DATE"),
		column(ds.ReleaseYearColumn, "BIGINT"),
		column(ds.PopularityColumn, "DOUBLE"),
		column(ds.VoteCountColumn, "BIGINT"),
		column(ds.VoteAverageColumn, "DOUBLE"),
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), sourceExpr(ds.Path, format))
}

// LoadMovies reads every row of the configured dataset in file order.
func (db *DB) LoadMovies(ctx context.Context, ds *config.DatasetConfig) ([]catalog.Record, error) {
	if _, err := os.Stat(ds.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, ds.Path)
		}
		return nil, fmt.Errorf("failed to stat dataset %s: %w", ds.Path, err)
	}

	format, err := ResolveFormat(ds.Path, ds.Format)
	if err != nil {
		return nil, err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	records, err := db.queryMovies(ctx, buildMoviesQuery(ds, format))
	metrics.RecordDBQuery("load_movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to load movies from %s: %w", ds.Path, err)
	}

	logging.Info().
		Str("path", ds.Path).
		Str("format", format).
		Int("rows", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")

	return records, nil
}

func (db *DB) queryMovies(ctx context.Context, query string) ([]catalog.Record, error) {
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var records []catalog.Record
	for rows.Next() {
		rec, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}
	return records, nil
}

func scanMovie(rows *sql.Rows) (catalog.Record, error) {
	var (
		title       sql.NullString
		features    any
		collection  any
		releaseDate sql.NullTime
		releaseYear sql.NullInt64
		popularity  sql.NullFloat64
		voteCount   sql.NullInt64
		voteAverage sql.NullFloat64
	)

	if err := rows.Scan(&title, &features, &collection, &releaseDate,
		&releaseYear, &popularity, &voteCount, &voteAverage); err != nil {
		return catalog.Record{}, fmt.Errorf("failed to scan movie: %w", err)
	}

	rec := catalog.Record{
		Title:       title.String,
		Features:    features,
		Collection:  collection,
		ReleaseYear: int(releaseYear.Int64),
		Popularity:  popularity.Float64,
		VoteCount:   int(voteCount.Int64),
		VoteAverage: voteAverage.Float64,
	}
	if releaseDate.Valid {
		rec.ReleaseDate = releaseDate.Time
	}
	return rec, nil
}
