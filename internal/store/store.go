package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SalesMasterPro/sales-api/internal/models"
)

// ErrNotInitialized é retornado por qualquer operação chamada antes de
// Init completar com sucesso.
var ErrNotInitialized = errors.New("store: not initialized")

// Record é qualquer registro persistível, identificado por id único.
type Record interface {
	RecordID() string
}

// Owned é um Record pertencente a exatamente um representante.
// A tabela de usuários é a única coleção sem dono.
type Owned interface {
	Record
	Owner() string
}

// Store expõe as cinco coleções (clients, appointments, sales, routes,
// users) sobre um banco embutido, com índice secundário por user_id.
type Store struct {
	db  *gorm.DB
	log *zap.Logger

	initOnce sync.Once
	initErr  error
	ready    atomic.Bool
}

func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// Init cria as tabelas e índices que ainda não existem, sem apagar dados.
// Idempotente: chamadas concorrentes observam o resultado da primeira.
func (s *Store) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.db.WithContext(ctx).AutoMigrate(
			&models.User{},
			&models.Client{},
			&models.Appointment{},
			&models.Sale{},
			&models.SavedRoute{},
			&models.AuditLog{},
		)
		if s.initErr != nil {
			s.log.Error("store migration failed", zap.Error(s.initErr))
			return
		}
		s.ready.Store(true)
		s.log.Info("store initialized")
	})
	return s.initErr
}

// DB expõe a conexão subjacente para infra auxiliar (audit, retenção).
func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) guard() error {
	if !s.ready.Load() {
		return ErrNotInitialized
	}
	return nil
}

// ListByOwner retorna todos os registros da coleção T pertencentes a
// ownerID, em ordem não especificada. Dono desconhecido resulta em
// fatia vazia, nunca erro.
func ListByOwner[T Owned](ctx context.Context, s *Store, ownerID string) ([]T, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	out := []T{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Find busca um registro por id dentro da coleção do dono.
func Find[T Owned](ctx context.Context, s *Store, ownerID, id string) (*T, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var rec T
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// Upsert insere ou substitui integralmente o registro de mesmo id.
// Transação de registro único: nunca há escrita parcial visível.
func Upsert[T Record](ctx context.Context, s *Store, rec T) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
}

// Remove apaga o registro com o id, se presente. Id ausente é no-op.
func Remove[T Record](ctx context.Context, s *Store, id string) error {
	if err := s.guard(); err != nil {
		return err
	}
	var rec T
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&rec).Error
}

// ListUsers cobre a única coleção sem índice de dono.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
