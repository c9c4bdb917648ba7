package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"account_backend/internal/feature/account/domain/entity"
	"account_backend/internal/platform/config"
)

// OpenDB はPostgreSQLへの接続を確立しgorm.DBを返します。
// 接続はgorm配下のdatabase/sqlプールが管理するため、リクエストごとの
// 接続開閉は行いません。起動直後にDBコンテナが未起動の場合に備えて
// 一定時間リトライします。
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := cfg.DSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError: ユニーク制約違反をgorm.ErrDuplicatedKeyへ翻訳する
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（usersテーブル）
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
