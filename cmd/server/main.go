package main

import (
	"log"

	"account_backend/internal/app/router"
	accountadapters "account_backend/internal/feature/account/adapters"
	accounthandler "account_backend/internal/feature/account/transport/handler"
	accountusecase "account_backend/internal/feature/account/usecase"
	"account_backend/internal/platform/config"
	infradb "account_backend/internal/platform/db"
	"account_backend/internal/platform/mailcheck"
)

func main() {
	// 設定（起動時に一度だけ解決する）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg)

	// Repository
	userRepo := accountadapters.NewUserPostgres(db)

	// MXレコードによるメールドメイン実在チェック
	domainValidator := mailcheck.NewMXValidator(cfg.DNSTimeout)

	// Usecase
	accountUC := accountusecase.NewAccountUsecase(userRepo, domainValidator, cfg.DBTimeout)

	// Handler
	accountH := accounthandler.NewAccountHandler(accountUC)

	// ルータ生成
	router := router.NewRouter(cfg, accountH)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
