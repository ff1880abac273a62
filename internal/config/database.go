package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCustomLogger(level string) logger.Interface {
	return logger.New(
		log.New(log.Writer(), "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second, // 1秒以上のクエリを遅いと判断
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true, // 404 は通常の結果として扱う
			Colorful:                  true,
		},
	)
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// dialector ドライバー名からGORMのDialectorを作成
func dialector(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.Host,
			cfg.Username,
			cfg.Password,
			cfg.DBName,
			cfg.Port)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.DBName), nil
	default:
		return nil, fmt.Errorf("未対応のデータベースドライバーです: %s", cfg.Driver)
	}
}

// InitDB データベース接続を初期化
func InitDB(cfg *Config) (*gorm.DB, error) {
	dial, err := dialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "sqlite" {
		log.Printf("データベースに接続中: sqlite %s", cfg.Database.DBName)
	} else {
		log.Printf("データベースに接続中: %s %s:%s/%s", cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	gormConfig := &gorm.Config{
		Logger: newCustomLogger(cfg.Database.LogLevel),
		// 一意制約違反を gorm.ErrDuplicatedKey として受け取る
		TranslateError: true,
	}

	db, err := gorm.Open(dial, gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 接続プールの設定
	if cfg.Database.Driver == "sqlite" {
		// インメモリDBは接続ごとに別のDBになるため1本に固定
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// 接続テスト
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("データベース接続テストに失敗: %w", err)
	}

	log.Println("データベース接続に成功しました")

	return db, nil
}
