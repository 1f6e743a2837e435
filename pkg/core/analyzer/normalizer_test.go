package analyzer

import (
	"reflect"
	"testing"

	"github.com/sabithapaulraj/AlphaGraph/pkg/models"
)

const validResponse = `{
	"sentiment_score": 0.8,
	"sentiment_label": "BULLISH",
	"impact_score": 8,
	"mentioned_companies": ["Apple", "AAPL"],
	"key_points": ["strong earnings", "iPhone growth"],
	"reasoning": "Record earnings beat expectations"
}`

func TestNormalizeValidJSON(t *testing.T) {
	res := Normalize(validResponse)

	if res.SentimentScore != 0.8 {
		t.Errorf("Expected sentiment score 0.8, got %f", res.SentimentScore)
	}
	if res.SentimentLabel != models.SentimentBullish {
		t.Errorf("Expected BULLISH, got %s", res.SentimentLabel)
	}
	if res.ImpactScore != 8 {
		t.Errorf("Expected impact 8, got %f", res.ImpactScore)
	}
	if !reflect.DeepEqual(res.MentionedCompanies, []string{"Apple", "AAPL"}) {
		t.Errorf("Unexpected companies: %v", res.MentionedCompanies)
	}
	if !reflect.DeepEqual(res.KeyPoints, []string{"strong earnings", "iPhone growth"}) {
		t.Errorf("Unexpected key points: %v", res.KeyPoints)
	}
	if res.Reasoning != "Record earnings beat expectations" {
		t.Errorf("Unexpected reasoning: %s", res.Reasoning)
	}
}

func TestNormalizeStripsCodeFences(t *testing.T) {
	want := Normalize(validResponse)

	wrapped := []string{
		"```json\n" + validResponse + "\n```",
		"```\n" + validResponse + "\n```",
		"  \n```json\n" + validResponse + "\n```\n  ",
	}
	for _, input := range wrapped {
		got := Normalize(input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Fenced input normalized differently.\nwant: %+v\ngot:  %+v", want, got)
		}
	}
}

func TestNormalizeMalformedReturnsFallback(t *testing.T) {
	inputs := []string{
		"",
		"I'm sorry, I cannot analyze this text.",
		"The market looks uncertain today.",
		"```json\nnot json at all\n```",
	}
	want := FallbackResult()
	for _, input := range inputs {
		got := Normalize(input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected fallback for %q, got %+v", input, got)
		}
	}
}

func TestNormalizeRepairsSloppyJSON(t *testing.T) {
	// Single quotes and a trailing comma, typical LLM sloppiness.
	input := `{'sentiment_score': 0.5, 'sentiment_label': 'BULLISH', 'impact_score': 7, 'mentioned_companies': ['Tesla'], 'key_points': ['deliveries up'],}`

	res := Normalize(input)
	if res.SentimentScore != 0.5 {
		t.Errorf("Expected repaired score 0.5, got %f", res.SentimentScore)
	}
	if res.SentimentLabel != models.SentimentBullish {
		t.Errorf("Expected repaired label BULLISH, got %s", res.SentimentLabel)
	}
	if !reflect.DeepEqual(res.MentionedCompanies, []string{"Tesla"}) {
		t.Errorf("Unexpected companies after repair: %v", res.MentionedCompanies)
	}
}

func TestNormalizeFillsMissingKeys(t *testing.T) {
	res := Normalize(`{"sentiment_score": -0.4}`)

	// Present key preserved
	if res.SentimentScore != -0.4 {
		t.Errorf("Expected score -0.4, got %f", res.SentimentScore)
	}
	// Missing keys defaulted
	if res.SentimentLabel != models.SentimentNeutral {
		t.Errorf("Expected default NEUTRAL, got %s", res.SentimentLabel)
	}
	if res.ImpactScore != 5 {
		t.Errorf("Expected default impact 5, got %f", res.ImpactScore)
	}
	if len(res.MentionedCompanies) != 0 || res.MentionedCompanies == nil {
		t.Errorf("Expected empty companies list, got %v", res.MentionedCompanies)
	}
	if len(res.KeyPoints) != 0 || res.KeyPoints == nil {
		t.Errorf("Expected empty key points, got %v", res.KeyPoints)
	}
}

func TestNormalizeEmptyObject(t *testing.T) {
	res := Normalize(`{}`)

	if res.SentimentScore != 0.0 || res.SentimentLabel != models.SentimentNeutral || res.ImpactScore != 5 {
		t.Errorf("Expected all defaults for empty object, got %+v", res)
	}
	// The fallback message is reserved for parse failures; an empty but
	// valid object gets plain defaults.
	if len(res.KeyPoints) != 0 {
		t.Errorf("Expected no key points for empty object, got %v", res.KeyPoints)
	}
}

func TestFallbackResultShape(t *testing.T) {
	fb := FallbackResult()

	if fb.SentimentScore != 0.0 {
		t.Errorf("Expected fallback score 0.0, got %f", fb.SentimentScore)
	}
	if fb.SentimentLabel != models.SentimentNeutral {
		t.Errorf("Expected fallback label NEUTRAL, got %s", fb.SentimentLabel)
	}
	if fb.ImpactScore != 5 {
		t.Errorf("Expected fallback impact 5, got %f", fb.ImpactScore)
	}
	if !reflect.DeepEqual(fb.KeyPoints, []string{"Analysis temporarily unavailable"}) {
		t.Errorf("Unexpected fallback key points: %v", fb.KeyPoints)
	}
	if fb.Reasoning != "AI analysis service temporarily unavailable" {
		t.Errorf("Unexpected fallback reasoning: %s", fb.Reasoning)
	}
}
