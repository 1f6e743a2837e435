package analyzer

import (
	"encoding/json"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"github.com/sabithapaulraj/AlphaGraph/pkg/models"
)

// Normalize turns the raw text of an AI response into a complete
// AnalysisResult. It never fails: unparseable input produces the fixed
// fallback result, and any required field missing from parseable input is
// filled with its default. Callers can rely on every field being populated.
func Normalize(raw string) models.AnalysisResult {
	obj, ok := parseObject(stripCodeFence(strings.TrimSpace(raw)))
	if !ok {
		return FallbackResult()
	}

	res := models.AnalysisResult{
		SentimentScore:     0.0,
		SentimentLabel:     models.SentimentNeutral,
		ImpactScore:        5,
		MentionedCompanies: []string{},
		KeyPoints:          []string{},
	}

	if v, ok := obj["sentiment_score"]; ok {
		if f, ok := toFloat(v); ok {
			res.SentimentScore = f
		}
	}
	if v, ok := obj["sentiment_label"].(string); ok && v != "" {
		res.SentimentLabel = v
	}
	if v, ok := obj["impact_score"]; ok {
		if f, ok := toFloat(v); ok {
			res.ImpactScore = f
		}
	}
	if v, ok := obj["mentioned_companies"]; ok {
		res.MentionedCompanies = toStringSlice(v)
	}
	if v, ok := obj["key_points"]; ok {
		res.KeyPoints = toStringSlice(v)
	}
	if v, ok := obj["reasoning"].(string); ok {
		res.Reasoning = v
	}

	return res
}

// FallbackResult is the fixed neutral placeholder substituted whenever the
// AI call or its response parsing fails.
func FallbackResult() models.AnalysisResult {
	return models.AnalysisResult{
		SentimentScore:     0.0,
		SentimentLabel:     models.SentimentNeutral,
		ImpactScore:        5,
		MentionedCompanies: []string{},
		KeyPoints:          []string{"Analysis temporarily unavailable"},
		Reasoning:          "AI analysis service temporarily unavailable",
	}
}

// stripCodeFence removes a surrounding markdown code block, tagged or not.
func stripCodeFence(text string) string {
	if strings.HasPrefix(text, "```json") {
		inner := text[len("```json"):]
		if idx := strings.Index(inner, "```"); idx >= 0 {
			inner = inner[:idx]
		}
		return strings.TrimSpace(inner)
	}
	if strings.HasPrefix(text, "```") {
		inner := text[len("```"):]
		if idx := strings.Index(inner, "```"); idx >= 0 {
			inner = inner[:idx]
		}
		return strings.TrimSpace(inner)
	}
	return text
}

// parseObject tries multiple parsing strategies to extract a JSON object.
// Order of attempts:
// 1. Standard JSON parse
// 2. JSON repair (fixes unquoted keys, single quotes, trailing commas, ...)
// 3. Hjson parse (most lenient)
// The repair strategies only run on input that at least contains an object
// literal; plain prose goes straight to failure so that refusal messages
// from the model never masquerade as an analysis.
func parseObject(text string) (map[string]interface{}, bool) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	candidate := text[start : end+1]

	if repaired, err := jsonrepair.RepairJSON(candidate); err == nil {
		if err := json.Unmarshal([]byte(repaired), &obj); err == nil {
			return obj, true
		}
	}

	var value interface{}
	if err := hjson.Unmarshal([]byte(candidate), &value); err == nil {
		// Round-trip through encoding/json to flatten hjson's node types.
		if b, err := json.Marshal(value); err == nil {
			if err := json.Unmarshal(b, &obj); err == nil {
				return obj, true
			}
		}
	}

	return nil, false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func toStringSlice(v interface{}) []string {
	out := []string{}
	items, ok := v.([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
