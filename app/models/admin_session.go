package models

import (
	"github.com/go-playground/validator/v10"
)

// AdminSessionRequest is the body of POST /api/admin-login.
type AdminSessionRequest struct {
	Action   string `json:"action" validate:"required,oneof=login verify logout"`
	Password string `json:"password" validate:"max=256"`
	Token    string `json:"token" validate:"max=128"`
}

func (r *AdminSessionRequest) Validate() error {
	v := validator.New()
	return v.Struct(r)
}

type AdminSessionResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Valid   *bool  `json:"valid,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
