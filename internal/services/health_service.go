package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// HealthService ヘルスチェックに関するサービスインターフェース
type HealthService interface {
	GetStatus(ctx context.Context) (string, string, string)
}

// healthService HealthServiceの実装
type healthService struct {
	db        *gorm.DB
	startTime time.Time
}

// NewHealthService HealthServiceを作成
func NewHealthService(db *gorm.DB) HealthService {
	return &healthService{
		db:        db,
		startTime: time.Now(),
	}
}

// GetStatus サービスのステータス・稼働時間・時刻を取得
func (s *healthService) GetStatus(ctx context.Context) (string, string, string) {
	status := "ok"
	if err := s.pingDB(ctx); err != nil {
		status = "degraded"
	}
	uptime := time.Since(s.startTime).String()
	timestamp := time.Now().Format(time.RFC3339)

	return status, uptime, timestamp
}

func (s *healthService) pingDB(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
