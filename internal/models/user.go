// Package models содержит доменные модели витрины: пользователей, сессии,
// корзину, каталог сари и рекомендации. Структуры используются сервисами,
// стратегиями хранения и HTTP-обработчиками.
package models

import "time"

// Role — роль пользователя витрины.
type Role string

const (
	// RoleAdmin — администратор, имеет доступ к панели управления.
	RoleAdmin Role = "admin"
	// RoleUser — обычный покупатель.
	RoleUser Role = "user"
)

// User представляет зарегистрированного пользователя.
//
// Пароль хранится и сравнивается в открытом виде: так устроена исходная
// витрина, и хэширование паролей сюда сознательно не входит.
type User struct {
	ID        string    `json:"id"`        // Уникальный идентификатор
	Email     string    `json:"email"`     // Электронная почта (уникальный ключ)
	Password  string    `json:"password"`  // Пароль в открытом виде
	Role      Role      `json:"role"`      // Роль: admin или user
	Name      string    `json:"name"`      // Отображаемое имя
	CreatedAt time.Time `json:"createdAt"` // Дата создания
}

// IsAdmin сообщает, является ли пользователь администратором.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile — публичное представление пользователя без пароля.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile возвращает представление пользователя, пригодное для ответа клиенту.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// Session — запись об аутентифицированном пользователе и моменте входа.
type Session struct {
	User      User      `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}
