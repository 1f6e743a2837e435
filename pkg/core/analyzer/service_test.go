package analyzer

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sabithapaulraj/AlphaGraph/pkg/models"
)

type stubProvider struct {
	resp     string
	err      error
	sessions []string
}

func (p *stubProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	if id, ok := options["session_id"].(string); ok {
		p.sessions = append(p.sessions, id)
	}
	return p.resp, p.err
}

func (p *stubProvider) AdaptInstructions(raw string) string { return raw }

func TestAnalyzeReturnsNormalizedResult(t *testing.T) {
	provider := &stubProvider{resp: `{"sentiment_score":0.8,"sentiment_label":"BULLISH","impact_score":8,"mentioned_companies":["Apple","AAPL"],"key_points":["strong earnings","iPhone growth"]}`}
	svc := NewService(provider, "test-key")

	res, err := svc.Analyze(context.Background(), "Apple Reports Record Q4 Earnings", "Apple exceeded expectations...")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.SentimentScore != 0.8 || res.SentimentLabel != models.SentimentBullish || res.ImpactScore != 8 {
		t.Errorf("Unexpected result: %+v", res)
	}
	if !reflect.DeepEqual(res.MentionedCompanies, []string{"Apple", "AAPL"}) {
		t.Errorf("Unexpected companies: %v", res.MentionedCompanies)
	}
}

func TestAnalyzeMissingAPIKey(t *testing.T) {
	svc := NewService(&stubProvider{}, "")

	_, err := svc.Analyze(context.Background(), "headline", "content")
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Fatalf("Expected ErrAPIKeyMissing, got %v", err)
	}
}

func TestAnalyzeProviderFailureFallsBack(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection reset by peer")}
	svc := NewService(provider, "test-key")

	res, err := svc.Analyze(context.Background(), "headline", "content")
	if err != nil {
		t.Fatalf("Provider failure must not surface, got %v", err)
	}
	if !reflect.DeepEqual(res, FallbackResult()) {
		t.Errorf("Expected fallback result, got %+v", res)
	}
}

func TestAnalyzeUsesFreshSessionPerCall(t *testing.T) {
	provider := &stubProvider{resp: `{}`}
	svc := NewService(provider, "test-key")

	svc.Analyze(context.Background(), "first", "article")
	svc.Analyze(context.Background(), "second", "article")

	if len(provider.sessions) != 2 {
		t.Fatalf("Expected 2 session ids, got %d", len(provider.sessions))
	}
	if provider.sessions[0] == provider.sessions[1] {
		t.Errorf("Session ids must be unique per call, both were %s", provider.sessions[0])
	}
}
