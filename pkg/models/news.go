package models

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment labels attached to analyzed articles.
const (
	SentimentBullish = "BULLISH"
	SentimentBearish = "BEARISH"
	SentimentNeutral = "NEUTRAL"
)

// NewsAnalysis is one analyzed article. Records are write-once: created after
// an analysis completes, inserted into the store, never updated or deleted.
type NewsAnalysis struct {
	ID                 string    `json:"id"`
	Headline           string    `json:"headline"`
	Content            string    `json:"content"`
	Source             string    `json:"source"`
	URL                string    `json:"url,omitempty"`
	PublishedDate      time.Time `json:"published_date"`
	MentionedCompanies []string  `json:"mentioned_companies"`
	SentimentScore     float64   `json:"sentiment_score"` // -1 to 1
	SentimentLabel     string    `json:"sentiment_label"` // BULLISH, BEARISH, NEUTRAL
	ImpactScore        float64   `json:"impact_score"`    // 1 to 10
	KeyPoints          []string  `json:"key_points"`
	AnalysisTimestamp  time.Time `json:"analysis_timestamp"`
}

// AnalysisRequest is the body of POST /api/analyze.
type AnalysisRequest struct {
	Headline string `json:"headline"`
	Content  string `json:"content"`
	Source   string `json:"source"`
	URL      string `json:"url"`
}

// AnalysisResult is the normalized shape of one AI analysis response.
// The sentiment label is kept as the provider proposed it; only the
// per-company rollup re-derives a label from averaged scores.
type AnalysisResult struct {
	SentimentScore     float64  `json:"sentiment_score"`
	SentimentLabel     string   `json:"sentiment_label"`
	ImpactScore        float64  `json:"impact_score"`
	MentionedCompanies []string `json:"mentioned_companies"`
	KeyPoints          []string `json:"key_points"`
	Reasoning          string   `json:"reasoning,omitempty"`
}

// CompanyTrend is one aggregation group from the trending query. It is
// materialized on demand, never persisted.
type CompanyTrend struct {
	Company      string  `json:"_id"`
	Count        int64   `json:"count"`
	AvgSentiment float64 `json:"avg_sentiment"`
	AvgImpact    float64 `json:"avg_impact"`
}

// TrackedCompany is a static reference record, loaded once and read-only.
type TrackedCompany struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// NewNewsAnalysis assembles a record from the request and the normalized AI
// result. The identifier and analysis timestamp are generated here.
func NewNewsAnalysis(req AnalysisRequest, res AnalysisResult, published time.Time) NewsAnalysis {
	return NewsAnalysis{
		ID:                 uuid.NewString(),
		Headline:           req.Headline,
		Content:            req.Content,
		Source:             req.Source,
		URL:                req.URL,
		PublishedDate:      published,
		MentionedCompanies: res.MentionedCompanies,
		SentimentScore:     res.SentimentScore,
		SentimentLabel:     res.SentimentLabel,
		ImpactScore:        res.ImpactScore,
		KeyPoints:          res.KeyPoints,
		AnalysisTimestamp:  time.Now().UTC(),
	}
}
