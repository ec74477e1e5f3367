package controllers

import (
	"dormhub/internal/auth"
	"dormhub/internal/store"
)

// Handler holds shared dependencies for the HTTP handlers.
type Handler struct {
	Store  store.Store
	Tokens *auth.TokenService
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, tokens *auth.TokenService) *Handler {
	return &Handler{
		Store:  s,
		Tokens: tokens,
	}
}
