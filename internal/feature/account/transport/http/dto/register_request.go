// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// It uses Gin's binding tags for validation (required, email format, password length 8-32).
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=32"`
}
