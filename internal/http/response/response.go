// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков витрины.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/apsaracreations/saree-shop/internal/visitor"
)

// Result описывает стандартную структуру JSON‑ответа.
// Поле Success показывает успех операции, Message содержит текст для посетителя.
// Data и Redirect заполняются по необходимости: данные ответа и страница перехода.
type Result struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Data     any    `json:"data,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// OK возвращает успешный Result с сообщением.
func OK(msg string) Result {
	return Result{Success: true, Message: msg}
}

// OKWithData возвращает успешный Result с данными.
func OKWithData(msg string, data any) Result {
	return Result{Success: true, Message: msg, Data: data}
}

// Fail возвращает неуспешный Result с сообщением.
func Fail(msg string) Result {
	return Result{Success: false, Message: msg}
}

// WithRedirect дополняет ответ ожидающим перенаправлением посетителя, если оно есть.
func WithRedirect(res Result, inbox *visitor.Inbox) Result {
	if inbox == nil {
		return res
	}
	if rd, ok := inbox.TakeRedirect(); ok {
		res.Redirect = rd.URL
		if res.Message == "" {
			res.Message = rd.Message
		}
	}
	return res
}

// ValidationError формирует Result на основе ошибок валидации.
// Каждое нарушение превращается в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Result {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return Result{
		Success: false,
		Message: strings.Join(errsMsgs, ", "),
	}
}
