package http

import (
	"context"
	"net"
	"net/http"
	"strings"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/security"
)

// SessionCookie carries the session token between requests. The middleware
// also accepts a bearer token for non-browser clients.
const SessionCookie = "club_session"

type contextKey string

const principalKey contextKey = "principal"

// Principal is the resolved caller. Kind is authoritative; exactly one of
// Account and Manager is set.
type Principal struct {
	Kind    security.PrincipalKind
	Account *domain.Account
	Manager *domain.ClubManager
}

// SessionMiddleware resolves the session token into a Principal. Any failure
// along the way (missing token, bad signature, expired, unknown or inactive
// row) leaves the request unauthenticated; it never errors out.
type SessionMiddleware struct {
	sessions security.SessionManager
	store    repository.Store
}

func NewSessionMiddleware(sessions security.SessionManager, store repository.Store) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, store: store}
}

func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		kind, id, err := m.sessions.Resolve(token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		var principal *Principal
		switch kind {
		case security.PrincipalKindAccount:
			account, err := m.store.Accounts().GetByID(r.Context(), id)
			if err == nil && account.IsActive {
				principal = &Principal{Kind: kind, Account: account}
			}
		case security.PrincipalKindManager:
			manager, err := m.store.ClubManagers().GetByID(r.Context(), id)
			if err == nil && manager.IsActive {
				principal = &Principal{Kind: kind, Manager: manager}
			}
		}

		if principal != nil {
			r = r.WithContext(context.WithValue(r.Context(), principalKey, principal))
		}
		next.ServeHTTP(w, r)
	})
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return auth[7:]
	}
	return ""
}

func principalFrom(r *http.Request) *Principal {
	p, _ := r.Context().Value(principalKey).(*Principal)
	return p
}

// redirectToLogin sends the contextual 302: manager routes go to the manager
// login, everything else to the student/admin login.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := "/auth/login"
	if strings.HasPrefix(r.URL.Path, "/manager/") {
		target = "/manager/login"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// requireRole admits only account principals with exactly the given role.
// A manager principal is a plain 403, never a redirect.
func requireRole(role domain.AccountRole, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := principalFrom(r)
		if p == nil {
			redirectToLogin(w, r)
			return
		}
		if p.Kind != security.PrincipalKindAccount || p.Account.Role != role {
			writeErrorStatus(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		next(w, r)
	}
}

// requireManager admits only club-manager principals.
func requireManager(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := principalFrom(r)
		if p == nil {
			redirectToLogin(w, r)
			return
		}
		if p.Kind != security.PrincipalKindManager {
			writeErrorStatus(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		next(w, r)
	}
}

// clientOrigin identifies the caller for login throttling.
func clientOrigin(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
