package middlewares

import (
	"context"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/exceptions"
	"mindmatch-service/internal/pkg/utils"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// Authenticate rejects requests without a valid bearer token and puts the
// resolved session into the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.sessionFromRequest(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IntakeSession resolves the intake progress key for the request. Logged-in
// users get a key derived from their user ID. Guests are tracked through an
// anonymous cookie which is minted on first contact. A request that carries
// an Authorization header must carry a valid one.
func (m *Middlewares) IntakeSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if r.Header.Get(constvars.HeaderAuthorization) != "" {
			session, err := m.sessionFromRequest(r)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
			ctx = context.WithValue(ctx, constvars.CONTEXT_INTAKE_KEY, utils.BuildUserIntakeKey(session.UserID))
			ctx = context.WithValue(ctx, constvars.CONTEXT_IS_GUEST_KEY, false)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		intakeKey := ""
		if cookie, err := r.Cookie(constvars.IntakeSessionCookieName); err == nil && strings.HasPrefix(cookie.Value, constvars.IntakeAnonymousPrefix) {
			intakeKey = cookie.Value
		}
		if intakeKey == "" {
			intakeKey = utils.GenerateAnonymousIntakeKey()
			http.SetCookie(w, &http.Cookie{
				Name:     constvars.IntakeSessionCookieName,
				Value:    intakeKey,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx = context.WithValue(ctx, constvars.CONTEXT_INTAKE_KEY, intakeKey)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_GUEST_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) sessionFromRequest(r *http.Request) (*models.Session, error) {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseJWT(strings.TrimPrefix(header, bearerPrefix), m.JWTSecret)
	if err != nil {
		return nil, err
	}

	session, err := m.SessionService.GetSession(r.Context(), sessionID)
	if err != nil {
		return nil, err
	}
	return session, nil
}
