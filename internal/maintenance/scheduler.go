package maintenance

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SalesMasterPro/sales-api/internal/models"
)

// Scheduler roda a manutenção diária do banco local: hoje, apenas a
// retenção da trilha de auditoria.
type Scheduler struct {
	db   *gorm.DB
	log  *zap.Logger
	days int
	cron *cron.Cron
}

func NewScheduler(db *gorm.DB, log *zap.Logger, retentionDays int) *Scheduler {
	return &Scheduler{
		db:   db,
		log:  log,
		days: retentionDays,
		cron: cron.New(),
	}
}

func (s *Scheduler) Start() {
	// Varredura na subida e depois todo dia às 3h.
	s.PurgeAuditLogs()
	s.cron.AddFunc("0 3 * * *", s.PurgeAuditLogs)

	s.cron.Start()
	s.log.Info("maintenance scheduler started",
		zap.Int("audit_retention_days", s.days),
	)
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) PurgeAuditLogs() {
	if s.days <= 0 {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.days)
	res := s.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if res.Error != nil {
		s.log.Warn("audit purge failed", zap.Error(res.Error))
		return
	}

	if res.RowsAffected > 0 {
		s.log.Info("audit logs purged",
			zap.Int64("rows", res.RowsAffected),
		)
	}
}
