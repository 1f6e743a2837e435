package store

import (
	"math"

	"github.com/sabithapaulraj/AlphaGraph/pkg/models"
)

// CompanySummary is the rollup over a company's matched records.
type CompanySummary struct {
	TotalMentions      int     `json:"total_mentions"`
	AvgSentimentScore  float64 `json:"avg_sentiment_score"`
	AvgImpactScore     float64 `json:"avg_impact_score"`
	SentimentLabel     string  `json:"sentiment_label"`
	AnalysisPeriodDays int     `json:"analysis_period_days"`
}

// Summarize computes mention count and score means across the matched set.
// The summary label is re-derived from the mean score and is independent of
// the per-record labels the provider proposed.
func Summarize(analyses []models.NewsAnalysis, days int) CompanySummary {
	if len(analyses) == 0 {
		return CompanySummary{SentimentLabel: models.SentimentNeutral, AnalysisPeriodDays: days}
	}

	var sentSum, impactSum float64
	for _, a := range analyses {
		sentSum += a.SentimentScore
		impactSum += a.ImpactScore
	}
	n := float64(len(analyses))
	avgSentiment := sentSum / n
	avgImpact := impactSum / n

	return CompanySummary{
		TotalMentions:      len(analyses),
		AvgSentimentScore:  roundTo(avgSentiment, 2),
		AvgImpactScore:     roundTo(avgImpact, 1),
		SentimentLabel:     SentimentLabelFor(avgSentiment),
		AnalysisPeriodDays: days,
	}
}

// SentimentLabelFor maps a mean sentiment score to a rollup label.
// Thresholds: above 0.2 bullish, below -0.2 bearish, neutral in between.
func SentimentLabelFor(meanScore float64) string {
	switch {
	case meanScore > 0.2:
		return models.SentimentBullish
	case meanScore < -0.2:
		return models.SentimentBearish
	default:
		return models.SentimentNeutral
	}
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
