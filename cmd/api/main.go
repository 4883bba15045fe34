package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/SalesMasterPro/sales-api/internal/assistant"
	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/config"
	dbpkg "github.com/SalesMasterPro/sales-api/internal/db"
	"github.com/SalesMasterPro/sales-api/internal/logging"
	"github.com/SalesMasterPro/sales-api/internal/maintenance"
	"github.com/SalesMasterPro/sales-api/internal/routes"
	"github.com/SalesMasterPro/sales-api/internal/session"
	"github.com/SalesMasterPro/sales-api/internal/store"
)

func main() {

	// .env é opcional; produção usa variáveis de ambiente reais
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	ctx := context.Background()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}

	st := store.New(db, log)
	if err := st.Init(ctx); err != nil {
		log.Fatal("failed to initialize store", zap.Error(err))
	}

	directory, err := session.LoadDirectory(cfg.UsersFile)
	if err != nil {
		log.Fatal("failed to load credential directory", zap.Error(err))
	}
	sessions := session.NewManager(
		directory,
		cfg.JWTSecret,
		time.Duration(cfg.SessionTTL)*time.Hour,
		log,
	)

	// Assistente é opcional: sem chave, as rotas respondem o fallback.
	var gen assistant.Generator
	if cfg.GeminiAPIKey != "" {
		g, err := assistant.NewGenAIGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("assistant disabled", zap.Error(err))
		} else {
			gen = g
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, assistant disabled")
	}
	as := assistant.New(gen, log)

	events := audit.NewDispatcher(audit.New(db), log)

	scheduler := maintenance.NewScheduler(db, log, cfg.AuditRetentionDays)
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, st, sessions, as, events)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
