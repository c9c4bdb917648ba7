// Package usecase はaccountフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"account_backend/internal/feature/account/domain/entity"
)

// Credential はログインフローが使用する最小限のユーザー情報です。
type Credential struct {
	// UserID is the registered user's identifier.
	UserID string
	// PasswordHash is the stored bcrypt hash.
	PasswordHash string
}

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyRegisteredを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail は指定されたメールアドレスのユーザーが存在するかを返します。
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindCredentialByEmail はログイン検証用に (user_id, password_hash) のみを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindCredentialByEmail(ctx context.Context, email string) (*Credential, error)
}

// DomainValidator はメールドメインの実在チェックを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/mailcheck）ではなくコンシューマー（usecase）が定義します。
type DomainValidator interface {
	// HasMXRecord は指定されたドメインにMXレコードが存在するかを返します。
	// 解決失敗はエラーとして返し、呼び出し側でフェイルクローズに扱います。
	HasMXRecord(ctx context.Context, domain string) (bool, error)
}

// accountUsecase は登録・ログインのビジネスロジックを実装します。
type accountUsecase struct {
	users     UserRepository
	domains   DomainValidator
	dbTimeout time.Duration
}

// NewAccountUsecase はaccountUsecaseの新しいインスタンスを生成します。
// dbTimeoutはリポジトリ呼び出しごとのタイムアウトです（0以下で無効）。
func NewAccountUsecase(users UserRepository, domains DomainValidator, dbTimeout time.Duration) *accountUsecase {
	return &accountUsecase{
		users:     users,
		domains:   domains,
		dbTimeout: dbTimeout,
	}
}

// emailDomain はメールアドレスの最初の「@」以降をドメインとして切り出します。
// 「@」が無い、またはドメイン部が空の場合は空文字列を返します（フェイルクローズ）。
func emailDomain(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// withDBTimeout はリポジトリ呼び出し用のコンテキストを生成します。
func (u *accountUsecase) withDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.dbTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.dbTimeout)
}

// Register は新規ユーザーを登録し、採番されたユーザーIDを返します。
// フロー: ドメイン実在チェック → 重複プリチェック → パスワードハッシュ化 → INSERT。
// プリチェックは競合を減らすだけであり、最終的な裁定はDBのユニーク制約が行います。
func (u *accountUsecase) Register(ctx context.Context, email, password string) (string, error) {
	// メールドメイン実在チェック（MXレコード）
	domain := emailDomain(email)
	if domain == "" {
		return "", ErrInvalidEmailDomain
	}
	ok, err := u.domains.HasMXRecord(ctx, domain)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("mx lookup: %w", ErrUpstreamTimeout)
		}
		// タイムアウト以外の解決失敗はすべて「ドメイン不正」に集約する
		return "", ErrInvalidEmailDomain
	}
	if !ok {
		return "", ErrInvalidEmailDomain
	}

	// email 重複プリチェック
	checkCtx, cancel := u.withDBTimeout(ctx)
	exists, err := u.users.ExistsByEmail(checkCtx, email)
	cancel()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("uniqueness check: %w", ErrUpstreamTimeout)
		}
		return "", fmt.Errorf("uniqueness check: %w", err)
	}
	if exists {
		return "", ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
	}
	insertCtx, cancel := u.withDBTimeout(ctx)
	defer cancel()
	if err := u.users.Create(insertCtx, user); err != nil {
		// ユニーク制約違反はアダプタでErrEmailAlreadyRegisteredに翻訳済み
		// （プリチェックをすり抜けた同時登録もここで409相当に落ちる）
		if errors.Is(err, ErrEmailAlreadyRegistered) {
			return "", ErrEmailAlreadyRegistered
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("insert user: %w", ErrUpstreamTimeout)
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return user.UserID, nil
}

// Login はユーザーを認証し、成功時にユーザーIDを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// 「メール未登録」と「パスワード不一致」は同一のErrInvalidCredentialsに集約します。
func (u *accountUsecase) Login(ctx context.Context, email, password string) (string, error) {
	lookupCtx, cancel := u.withDBTimeout(ctx)
	cred, err := u.users.FindCredentialByEmail(lookupCtx, email)
	cancel()
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("credential lookup: %w", ErrUpstreamTimeout)
		}
		return "", fmt.Errorf("credential lookup: %w", err)
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = cred.PasswordHash
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、同一の汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	return cred.UserID, nil
}
