package errors

import (
	"errors"
	"fmt"
)

const (
	InternalServerError = "internal server error"
	BadRequest          = "bad request"
	NotFound            = "not_found"
	Conflict            = "conflict"

	InvalidDataCode         = 400
	NotFoundErrorCode       = 404
	ConflictErrorCode       = 409
	InternalServerErrorCode = 500
)

// AppError представляет собой стандартизированную структуру ошибки для API.
type AppError struct {
	Code         int    `json:"code"`    // HTTP статус код
	Message      string `json:"message"` // Сообщение для клиента
	Err          error  `json:"-"`       // Внутренняя ошибка, не для клиента
	IsUserFacing bool   `json:"-"`       // Можно ли показывать `Err`
}

func (a *AppError) Error() string {
	if a == nil {
		return ""
	}
	if a.Err != nil {
		return fmt.Sprintf("%s (code: %d): %v", a.Message, a.Code, a.Err)
	}
	return fmt.Sprintf("%s (code: %d)", a.Message, a.Code)
}

func (a *AppError) Unwrap() error {
	if a == nil {
		return nil
	}
	return a.Err
}

// NewAppError создает новый экземпляр AppError.
func NewAppError(httpCode int, message string, err error, isUserFacing bool) *AppError {
	return &AppError{
		Code:         httpCode,
		Message:      message,
		Err:          err,
		IsUserFacing: isUserFacing,
	}
}

var (
	ErrInvalidMotor      = errors.New("invalid motor")
	ErrDuplicateMotor    = errors.New("motor already selected")
	ErrMotorNotFound     = errors.New("motor not found")
	ErrInvalidParameters = errors.New("invalid simulation parameters")
	ErrSessionNotFound   = errors.New("session not found")
)

// FromError переводит доменную ошибку в AppError с подходящим HTTP кодом.
func FromError(err error) *AppError {
	var appErr *AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, ErrInvalidMotor), errors.Is(err, ErrInvalidParameters):
		return NewAppError(InvalidDataCode, BadRequest, err, true)
	case errors.Is(err, ErrMotorNotFound), errors.Is(err, ErrSessionNotFound):
		return NewAppError(NotFoundErrorCode, NotFound, err, true)
	case errors.Is(err, ErrDuplicateMotor):
		return NewAppError(ConflictErrorCode, Conflict, err, true)
	default:
		return NewAppError(InternalServerErrorCode, InternalServerError, err, false)
	}
}
