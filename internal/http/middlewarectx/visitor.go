// Package middlewarectx содержит HTTP middleware витрины: определение
// посетителя по bearer-токену или cookie и ограничение частоты запросов.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/apsaracreations/saree-shop/internal/http/response"
	"github.com/apsaracreations/saree-shop/internal/lib/jwt"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/visitor"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// VisitorKey — ключ посетителя в контексте запроса.
const VisitorKey Key = "visitor"

const visitorIDValue = "visitor_id"

// TokenParser разбирает bearer-токен посетителя.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// Resolver возвращает состояние посетителя по идентификатору.
type Resolver interface {
	Get(ctx context.Context, id string) *visitor.Visitor
}

// VisitorMiddleware определяет посетителя и кладёт его в контекст.
//
// Сначала проверяется заголовок Authorization: Bearer, затем cookie-сессия.
// Новому посетителю выдаётся cookie со свежим идентификатором. Каждый запрос
// считается активностью и продлевает сессию посетителя.
func VisitorMiddleware(log *slog.Logger, store sessions.Store, cookieName string, tokens TokenParser, registry Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.VisitorMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			var visitorID string
			if authHeader := r.Header.Get("Authorization"); authHeader != "" {
				if !strings.HasPrefix(authHeader, "Bearer ") {
					log.Error("invalid authorization header")
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Fail("invalid authorization header"))
					return
				}
				claims, err := tokens.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
				if err != nil {
					log.Error("invalid or expired token", sl.Err(err))
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Fail("invalid or expired token"))
					return
				}
				visitorID = claims.Visitor
			} else {
				session, err := store.Get(r, cookieName)
				if session == nil {
					log.Error("failed to open visitor session", sl.Err(err))
					render.Status(r, http.StatusInternalServerError)
					render.JSON(w, r, response.Fail("internal error"))
					return
				}
				if err != nil {
					// Подпись cookie не сошлась: выдаём новую сессию.
					log.Warn("failed to decode visitor cookie", sl.Err(err))
				}
				visitorID, _ = session.Values[visitorIDValue].(string)
				if visitorID == "" {
					visitorID = uuid.NewString()
					session.Values[visitorIDValue] = visitorID
					if err := session.Save(r, w); err != nil {
						log.Error("failed to save visitor cookie", sl.Err(err))
						render.Status(r, http.StatusInternalServerError)
						render.JSON(w, r, response.Fail("internal error"))
						return
					}
					log.Debug("new visitor", sl.Visitor(visitorID))
				}
			}

			v := registry.Get(r.Context(), visitorID)
			v.Auth.Touch()

			ctx := context.WithValue(r.Context(), VisitorKey, v)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VisitorFromContext возвращает посетителя, определённого VisitorMiddleware.
func VisitorFromContext(ctx context.Context) (*visitor.Visitor, bool) {
	v, ok := ctx.Value(VisitorKey).(*visitor.Visitor)
	return v, ok && v != nil
}

// NewCookieStore создаёт хранилище cookie-сессий посетителей.
// Cookie живёт до закрытия браузера, как sessionStorage вкладки.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
