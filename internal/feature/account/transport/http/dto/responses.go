package dto

// StatusResponse は登録・ログイン成功時のレスポンスボディを表します。
type StatusResponse struct {
	Status string `json:"status"`
	UserID string `json:"user_id"`
}

// ErrorResponse はエラー時のレスポンスボディを表します。
// 固定の短い説明文のみを返し、内部情報は漏らしません。
type ErrorResponse struct {
	Error string `json:"error"`
}
