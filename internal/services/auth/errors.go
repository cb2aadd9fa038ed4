package auth

import "errors"

// Сообщения, которые показываются посетителю как есть.
const (
	MsgFieldsRequired      = "All fields are required"
	MsgInvalidEmail        = "Please enter a valid email address"
	MsgPasswordTooShort    = "Password must be at least 6 characters long"
	MsgPasswordMismatch    = "Passwords do not match"
	MsgCredentialsRequired = "Email and password are required"
	MsgDuplicateUser       = "User with this email already exists"
	MsgInvalidCredentials  = "Invalid email or password"

	MsgLoginRequired     = "Please login to continue"
	MsgAdminRequired     = "Admin access required."
	MsgAdminPageRequired = "Admin access is required to view this page"
	MsgCheckoutRequired  = "Please login to complete your purchase"
	MsgSessionExpired    = "Your session has expired. Please login again."
)

var (
	// ErrDuplicateUser — пользователь с таким email уже зарегистрирован.
	ErrDuplicateUser = errors.New("user with this email already exists")
	// ErrInvalidCredentials — нет пары email/пароль, совпадающей точно.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError — входные данные не прошли проверку формы.
// Message предназначено для показа посетителю.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Message возвращает текст ошибки для посетителя, если ошибка относится к
// проверке данных или учётным данным. Для прочих ошибок ok == false.
func Message(err error) (msg string, ok bool) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message, true
	case errors.Is(err, ErrDuplicateUser):
		return MsgDuplicateUser, true
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials, true
	}
	return "", false
}
