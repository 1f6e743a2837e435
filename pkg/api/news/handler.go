package news

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabithapaulraj/AlphaGraph/pkg/core/companies"
	"github.com/sabithapaulraj/AlphaGraph/pkg/core/store"
	"github.com/sabithapaulraj/AlphaGraph/pkg/models"
)

const (
	defaultRecentLimit = 20
	defaultHistoryDays = 7
	trendingWindow     = 24 * time.Hour
	trendingTopN       = 10
)

// Repository is the persistence surface the handlers need.
type Repository interface {
	Insert(ctx context.Context, rec *models.NewsAnalysis) error
	InsertMany(ctx context.Context, recs []models.NewsAnalysis) error
	ListRecent(ctx context.Context, limit int) ([]models.NewsAnalysis, error)
	Trending(ctx context.Context, window time.Duration, topN int) ([]models.CompanyTrend, int64, error)
	CompanyHistory(ctx context.Context, symbol string, days int) ([]models.NewsAnalysis, error)
}

// Analyzer is the AI analysis surface the handlers need.
type Analyzer interface {
	Analyze(ctx context.Context, headline, content string) (models.AnalysisResult, error)
}

// Handler holds dependencies for the news analysis endpoints.
type Handler struct {
	svc              Analyzer
	repo             Repository
	geminiConfigured bool
}

// NewHandler creates a new news API handler.
func NewHandler(svc Analyzer, repo Repository, geminiConfigured bool) *Handler {
	return &Handler{svc: svc, repo: repo, geminiConfigured: geminiConfigured}
}

// Register mounts all routes on the given group.
func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/companies", h.Companies)
	r.POST("/analyze", h.Analyze)
	r.GET("/news/recent", h.Recent)
	r.GET("/trends", h.Trends)
	r.GET("/company/:symbol", h.Company)
	r.POST("/demo/populate", h.Populate)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "AlphaGraph Financial Analysis API is running"})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"gemini_configured": h.geminiConfigured,
	})
}

func (h *Handler) Companies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"companies": companies.Tracked})
}

// Analyze runs the AI analysis and responds immediately; persistence
// happens in the background and is never awaited by the client path.
func (h *Handler) Analyze(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Headline) == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "headline and content are required"})
		return
	}
	if req.Source == "" {
		req.Source = "manual"
	}

	result, err := h.svc.Analyze(c.Request.Context(), req.Headline, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Analysis failed: %v", err)})
		return
	}

	analysis := models.NewNewsAnalysis(req, result, time.Now().UTC())

	// Fire-and-forget: best effort, no retry, failure logged only.
	go h.saveAnalysis(analysis)

	c.JSON(http.StatusOK, analysis)
}

func (h *Handler) saveAnalysis(analysis models.NewsAnalysis) {
	if err := h.repo.Insert(context.Background(), &analysis); err != nil {
		log.Printf("[API] failed to save analysis %q: %v", truncate(analysis.Headline, 50), err)
		return
	}
	log.Printf("[API] saved analysis: %s", truncate(analysis.Headline, 50))
}

func (h *Handler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecentLimit)))
	if err != nil || limit <= 0 {
		limit = defaultRecentLimit
	}

	analyses, err := h.repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[API] failed to fetch recent analyses: %v", err)
		c.JSON(http.StatusOK, []models.NewsAnalysis{})
		return
	}
	c.JSON(http.StatusOK, analyses)
}

func (h *Handler) Trends(c *gin.Context) {
	trending, total, err := h.repo.Trending(c.Request.Context(), trendingWindow, trendingTopN)
	if err != nil {
		log.Printf("[API] failed to compute trends: %v", err)
		trending, total = []models.CompanyTrend{}, 0
	}
	c.JSON(http.StatusOK, gin.H{
		"trending_companies": trending,
		"analysis_period":    "24h",
		"total_analyses":     total,
	})
}

func (h *Handler) Company(c *gin.Context) {
	symbol := c.Param("symbol")
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultHistoryDays)))
	if err != nil || days <= 0 {
		days = defaultHistoryDays
	}

	analyses, err := h.repo.CompanyHistory(c.Request.Context(), symbol, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get company analysis: %v", err)})
		return
	}

	if len(analyses) == 0 {
		// Zero matches is a valid outcome, not an error.
		c.JSON(http.StatusOK, gin.H{
			"symbol":   symbol,
			"analyses": []models.NewsAnalysis{},
			"summary":  "No recent analysis found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":   symbol,
		"analyses": analyses,
		"summary":  store.Summarize(analyses, days),
	})
}

// Populate analyzes the built-in sample articles synchronously and inserts
// them in one batch.
func (h *Handler) Populate(c *gin.Context) {
	analyses := make([]models.NewsAnalysis, 0, len(sampleNews))
	for _, item := range sampleNews {
		result, err := h.svc.Analyze(c.Request.Context(), item.Headline, item.Content)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to populate sample data: %v", err)})
			return
		}
		req := models.AnalysisRequest{
			Headline: item.Headline,
			Content:  item.Content,
			Source:   item.Source,
			URL:      item.URL,
		}
		analyses = append(analyses, models.NewNewsAnalysis(req, result, time.Now().UTC().Add(-item.Age)))
	}

	if err := h.repo.InsertMany(c.Request.Context(), analyses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to populate sample data: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Successfully populated %d sample analyses", len(analyses)),
		"analyses": len(analyses),
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
