// Package handler はaccountフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/account/transport/http/dto"
	"account_backend/internal/feature/account/usecase"
)

// AccountUsecase は登録・ログイン操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AccountUsecase interface {
	// Register は指定されたメールアドレスとパスワードで新規ユーザーを登録し、ユーザーIDを返します。
	Register(ctx context.Context, email, password string) (string, error)
	// Login はユーザーを認証し、成功時にユーザーIDを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AccountHandler は登録・ログイン操作のHTTPリクエストを処理します。
// AccountUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler はAccountHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAccountUsecaseを注入します。
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド（パスワードは8〜32文字）
// - バリデーションエラー時は400を返却
// - ドメイン不正時は400、メール重複時は409、上流タイムアウト時は504を返却
// - 成功時はユーザーID付きで200を返却
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	userID, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrInvalidEmailDomain):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email domain does not exist"})
		case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Email already registered"})
		case errors.Is(err, usecase.ErrUpstreamTimeout):
			c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: "upstream timeout"})
		default:
			// 内部エラーの詳細は公開しない
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "registered", UserID: userID})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（メール未登録とパスワード不一致は区別しない）
// - 認証成功時はユーザーID付きで200を返却
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	userID, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
		case errors.Is(err, usecase.ErrUpstreamTimeout):
			c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: "upstream timeout"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "login success", UserID: userID})
}
