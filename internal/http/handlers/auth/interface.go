package auth

// Tokens выпускает bearer-токен посетителя.
type Tokens interface {
	GenerateToken(visitorID, email, role string) (string, error)
}

// Observer считает события входа и выхода. Может быть nil.
type Observer interface {
	AuthEvent(event string, ok bool)
}
