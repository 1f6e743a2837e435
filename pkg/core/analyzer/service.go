package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/sabithapaulraj/AlphaGraph/pkg/core/llm"
	"github.com/sabithapaulraj/AlphaGraph/pkg/models"
)

// ErrAPIKeyMissing is returned when no provider credential is configured.
// It is the only error Analyze can return; every other failure degrades to
// the fallback result.
var ErrAPIKeyMissing = errors.New("AI provider API key not configured")

// System prompt for the financial analyst agent. The schema must stay in
// sync with the required keys the normalizer fills.
const systemPrompt = `You are an expert financial analyst specializing in market sentiment analysis and company identification.

Your task is to analyze financial news and provide structured insights. Always respond with valid JSON only, no other text.

Analyze the given news and return a JSON object with these exact fields:
{
    "sentiment_score": float between -1.0 and 1.0 (-1 very bearish, 0 neutral, 1 very bullish),
    "sentiment_label": "BULLISH" or "BEARISH" or "NEUTRAL",
    "impact_score": integer between 1 and 10 (1 low impact, 10 high impact on stock prices),
    "mentioned_companies": [list of company names and stock symbols found in the text],
    "key_points": [list of 3-5 key insights that could affect stock prices],
    "reasoning": "brief explanation of the sentiment and impact assessment"
}

Focus on:
- Market-moving information
- Company-specific news
- Industry trends
- Economic indicators
- Regulatory changes
- Earnings and financial performance`

// Service performs one-shot financial news analysis through an LLM provider.
type Service struct {
	provider llm.Provider
	apiKey   string
}

// NewService wires the service to a provider. apiKey is only checked for
// presence; the provider reads its own credential from the environment.
func NewService(provider llm.Provider, apiKey string) *Service {
	return &Service{provider: provider, apiKey: apiKey}
}

// Analyze runs a single-turn analysis of one article. Each call uses a
// fresh session id; no conversation state is retained between calls.
// Provider and parse failures are absorbed into the fallback result.
func (s *Service) Analyze(ctx context.Context, headline, content string) (models.AnalysisResult, error) {
	if s.apiKey == "" {
		return models.AnalysisResult{}, ErrAPIKeyMissing
	}

	userPrompt := fmt.Sprintf(`
HEADLINE: %s

CONTENT: %s

Please analyze this financial news and provide the structured JSON response as specified in your instructions.
`, headline, content)

	options := map[string]interface{}{
		"session_id": fmt.Sprintf("analysis_%s", uuid.NewString()),
		"response_format": map[string]interface{}{
			"type": "json_object",
		},
	}

	resp, err := s.provider.GenerateResponse(ctx, userPrompt, systemPrompt, options)
	if err != nil {
		log.Printf("[ANALYZER] AI call failed, serving fallback: %v", err)
		return FallbackResult(), nil
	}

	return Normalize(resp), nil
}
