// Package jwt выпускает и проверяет токены посетителя витрины.
//
// Токен связывает API-клиента без cookie с его посетителем: в claims лежат
// идентификатор посетителя, email и роль вошедшего пользователя.
package jwt

import (
	"time"
)

// Maker описывает выпуск и разбор токенов посетителя.
type Maker interface {
	GenerateToken(visitorID, email, role string) (string, error)
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует Maker на HMAC-подписи.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена, 0 означает токен без срока.
}

// NewJWTMaker создаёт MakerImpl. Витрина выпускает токены без срока: токен
// только называет посетителя, а сессию по неактивности завершает её Store.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
