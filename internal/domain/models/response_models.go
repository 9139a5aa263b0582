package models

import sim "github.com/iwtcode/stepperTorque/models"

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"404"`
		Message string `json:"message" example:"not_found"`
	} `json:"error"`
}

// MessageResponse представляет стандартный успешный ответ с сообщением.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Session deleted"`
}

// CurveResponse представляет ответ с построенными кривыми.
type CurveResponse struct {
	Status string        `json:"status" example:"ok"`
	Curves *sim.CurveSet `json:"curves"`
}

// SessionResponse представляет ответ с информацией о сессии.
type SessionResponse struct {
	Status      string       `json:"status" example:"ok"`
	SessionInfo *SessionInfo `json:"session_info"`
}

// GetSessionsResponse представляет ответ со списком всех сессий.
type GetSessionsResponse struct {
	Status   string         `json:"status" example:"ok"`
	PoolSize int            `json:"pool_size" example:"2"`
	Sessions []*SessionInfo `json:"sessions"`
}
