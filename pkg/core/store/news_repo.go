package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sabithapaulraj/AlphaGraph/pkg/models"
)

// Cap on records returned by a company history lookup.
const companyHistoryLimit = 50

// NewsRepo handles the storage of analyzed news records.
type NewsRepo struct {
	store *Store
}

// NewNewsRepo creates a new repository instance.
func NewNewsRepo(store *Store) *NewsRepo {
	return &NewsRepo{store: store}
}

// execer is satisfied by both pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Insert appends one record. Records are append-only; identical headlines
// are not deduplicated.
func (r *NewsRepo) Insert(ctx context.Context, rec *models.NewsAnalysis) error {
	return insertOne(ctx, r.store.Pool(), rec)
}

// InsertMany appends a batch of records inside one transaction.
func (r *NewsRepo) InsertMany(ctx context.Context, recs []models.NewsAnalysis) error {
	tx, err := r.store.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i := range recs {
		if err := insertOne(ctx, tx, &recs[i]); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func insertOne(ctx context.Context, db execer, rec *models.NewsAnalysis) error {
	companies, err := json.Marshal(rec.MentionedCompanies)
	if err != nil {
		return fmt.Errorf("failed to marshal mentioned companies: %w", err)
	}
	points, err := json.Marshal(rec.KeyPoints)
	if err != nil {
		return fmt.Errorf("failed to marshal key points: %w", err)
	}

	const query = `
		INSERT INTO news_analysis
			(id, headline, content, source, url, published_date, mentioned_companies,
			 sentiment_score, sentiment_label, impact_score, key_points, analysis_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err = db.Exec(ctx, query,
		rec.ID, rec.Headline, rec.Content, rec.Source, nullIfEmpty(rec.URL),
		rec.PublishedDate, companies, rec.SentimentScore, rec.SentimentLabel,
		rec.ImpactScore, points, rec.AnalysisTimestamp)
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, most recent analysis first.
func (r *NewsRepo) ListRecent(ctx context.Context, limit int) ([]models.NewsAnalysis, error) {
	const query = selectColumns + `
		ORDER BY analysis_timestamp DESC
		LIMIT $1;
	`
	rows, err := r.store.Pool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent analyses: %w", err)
	}
	defer rows.Close()

	return scanAnalyses(rows)
}

// Trending fans out each record's mentioned companies over the given
// window, groups per company and returns the topN groups by mention count.
// The second return value is the all-time record count, unwindowed.
func (r *NewsRepo) Trending(ctx context.Context, window time.Duration, topN int) ([]models.CompanyTrend, int64, error) {
	const query = `
		SELECT c.company,
		       COUNT(*) AS mentions,
		       AVG(sentiment_score) AS avg_sentiment,
		       AVG(impact_score) AS avg_impact
		FROM news_analysis
		CROSS JOIN LATERAL jsonb_array_elements_text(mentioned_companies) AS c(company)
		WHERE analysis_timestamp >= $1
		GROUP BY c.company
		ORDER BY mentions DESC
		LIMIT $2;
	`
	since := time.Now().UTC().Add(-window)

	rows, err := r.store.Pool().Query(ctx, query, since, topN)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trends: %w", err)
	}
	defer rows.Close()

	trends := []models.CompanyTrend{}
	for rows.Next() {
		var t models.CompanyTrend
		if err := rows.Scan(&t.Company, &t.Count, &t.AvgSentiment, &t.AvgImpact); err != nil {
			return nil, 0, fmt.Errorf("failed to scan trend row: %w", err)
		}
		trends = append(trends, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read trend rows: %w", err)
	}

	var total int64
	if err := r.store.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM news_analysis;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	return trends, total, nil
}

// CompanyHistory returns records from the last N days whose mentioned
// companies contain the symbol as a case-insensitive substring, most
// recent first, capped at 50.
func (r *NewsRepo) CompanyHistory(ctx context.Context, symbol string, days int) ([]models.NewsAnalysis, error) {
	const query = selectColumns + `
		WHERE analysis_timestamp >= $1
		  AND EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(mentioned_companies) AS c(name)
			WHERE c.name ILIKE '%' || $2 || '%'
		  )
		ORDER BY analysis_timestamp DESC
		LIMIT $3;
	`
	since := time.Now().UTC().AddDate(0, 0, -days)

	rows, err := r.store.Pool().Query(ctx, query, since, symbol, companyHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query company history: %w", err)
	}
	defer rows.Close()

	return scanAnalyses(rows)
}

const selectColumns = `
	SELECT id, headline, content, source, COALESCE(url, ''), published_date,
	       mentioned_companies, sentiment_score, sentiment_label, impact_score,
	       key_points, analysis_timestamp
	FROM news_analysis
`

func scanAnalyses(rows pgx.Rows) ([]models.NewsAnalysis, error) {
	out := []models.NewsAnalysis{}
	for rows.Next() {
		var rec models.NewsAnalysis
		var companies, points []byte
		err := rows.Scan(&rec.ID, &rec.Headline, &rec.Content, &rec.Source, &rec.URL,
			&rec.PublishedDate, &companies, &rec.SentimentScore, &rec.SentimentLabel,
			&rec.ImpactScore, &points, &rec.AnalysisTimestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		if err := json.Unmarshal(companies, &rec.MentionedCompanies); err != nil {
			return nil, fmt.Errorf("failed to unmarshal mentioned companies: %w", err)
		}
		if err := json.Unmarshal(points, &rec.KeyPoints); err != nil {
			return nil, fmt.Errorf("failed to unmarshal key points: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis rows: %w", err)
	}
	return out, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
