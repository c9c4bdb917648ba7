package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accounthandler "account_backend/internal/feature/account/transport/handler"
	"account_backend/internal/platform/config"
	platformhandler "account_backend/internal/platform/http/handler"
)

// NewRouter はルーティングテーブルとCORSミドルウェアを組み立てます。
func NewRouter(cfg *config.Config, accountHandler *accounthandler.AccountHandler) *gin.Engine {
	r := gin.Default()

	// CORSは環境変数で設定する（開発デフォルトは全許可）
	r.Use(cors.New(corsConfig(cfg)))

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/register", accountHandler.Register)
	// ログイン
	r.POST("/login", accountHandler.Login)

	return r
}

// corsConfig は設定値からgin-contrib/cors用のConfigを構築します。
// 「*」が指定された場合はAllowOriginFuncで全オリジンを許可します
// （AllowAllOriginsはcredentialsと併用できないため）。
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:     cfg.CORSAllowedMethods,
		AllowHeaders:     cfg.CORSAllowedHeaders,
		AllowCredentials: cfg.CORSAllowCredentials,
	}

	allowAll := false
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin == "*" {
			allowAll = true
			break
		}
	}
	if allowAll {
		c.AllowOriginFunc = func(string) bool { return true }
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}

	return c
}
