package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/sabithapaulraj/AlphaGraph/pkg/api/config"
	"github.com/sabithapaulraj/AlphaGraph/pkg/api/news"
	"github.com/sabithapaulraj/AlphaGraph/pkg/core/agent"
	"github.com/sabithapaulraj/AlphaGraph/pkg/core/analyzer"
	"github.com/sabithapaulraj/AlphaGraph/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize provider manager from config
	configData, err := os.ReadFile("config/models.yaml")
	if err != nil {
		log.Printf("[WARNING] Failed to read config/models.yaml, using gemini defaults: %v", err)
	}
	var agentCfg agent.Config
	if err := yaml.Unmarshal(configData, &agentCfg); err != nil {
		log.Printf("[WARNING] Failed to parse config/models.yaml, using gemini defaults: %v", err)
	}
	mgr := agent.NewManager(agentCfg)

	// Open the store for the process lifetime
	ctx := context.Background()
	st, err := store.Open(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("[FATAL] Failed to open database: %v", err)
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		log.Fatalf("[FATAL] Failed to ensure schema: %v", err)
	}
	log.Println("[STORE] Database connected")

	repo := store.NewNewsRepo(st)

	apiKey := credentialFor(mgr.GetActiveProvider())
	if apiKey == "" {
		log.Printf("[WARNING] No API key configured for provider %q; /analyze will fail until one is set", mgr.GetActiveProvider())
	}
	svc := analyzer.NewService(mgr.Provider("news_analysis"), apiKey)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(news.CORSMiddleware())

	api := r.Group("/api")
	news.NewHandler(svc, repo, os.Getenv("GEMINI_API_KEY") != "").Register(api)
	config.NewHandler(mgr).Register(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("[API] AlphaGraph server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("[FATAL] Server failed to start: %v", err)
	}
}

// credentialFor returns the env credential matching the active provider.
func credentialFor(provider string) string {
	switch provider {
	case "deepseek":
		return os.Getenv("DEEPSEEK_API_KEY")
	default:
		return os.Getenv("GEMINI_API_KEY")
	}
}
