package http

import (
	"net/http"

	"clubhub-backend/internal/domain"

	"github.com/gorilla/mux"
)

// NewRouter wires every handler behind the session middleware and the
// per-route capability gates.
func NewRouter(
	session *SessionMiddleware,
	auth *AuthHandler,
	student *StudentHandler,
	manager *ManagerHandler,
	admin *AdminHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(session.Handler)

	forStudent := func(next http.HandlerFunc) http.HandlerFunc {
		return requireRole(domain.AccountRoleStudent, next)
	}
	forAdmin := func(next http.HandlerFunc) http.HandlerFunc {
		return requireRole(domain.AccountRoleAdmin, next)
	}

	// Public auth surface. The GET login routes are the redirect targets for
	// unauthenticated requests.
	r.HandleFunc("/auth/register", auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", auth.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/auth/logout", auth.Logout).Methods(http.MethodPost)
	r.HandleFunc("/manager/login", auth.ManagerLogin).Methods(http.MethodPost)
	r.HandleFunc("/manager/login", auth.LoginPage).Methods(http.MethodGet)

	// Student surface.
	r.HandleFunc("/clubs", forStudent(student.ListClubs)).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{id}", forStudent(student.GetClub)).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{id}/announcements", forStudent(student.ListClubAnnouncements)).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{id}/membership-applications", forStudent(student.ApplyForMembership)).Methods(http.MethodPost)
	r.HandleFunc("/me/memberships", forStudent(student.ListOwnMemberships)).Methods(http.MethodGet)
	r.HandleFunc("/me/membership-applications", forStudent(student.ListOwnMembershipApplications)).Methods(http.MethodGet)
	r.HandleFunc("/club-applications", forStudent(student.SubmitClubApplication)).Methods(http.MethodPost)
	r.HandleFunc("/club-applications", forStudent(student.ListOwnClubApplications)).Methods(http.MethodGet)
	r.HandleFunc("/club-applications/{id}", forStudent(student.GetClubApplication)).Methods(http.MethodGet)
	r.HandleFunc("/club-applications/{id}/invitations", forStudent(student.InviteFounder)).Methods(http.MethodPost)
	r.HandleFunc("/invitations/{id}", forStudent(student.RemoveInvitation)).Methods(http.MethodDelete)
	r.HandleFunc("/invitations/{id}/respond", forStudent(student.RespondToInvitation)).Methods(http.MethodPost)
	r.HandleFunc("/me/invitations", forStudent(student.ListOwnInvitations)).Methods(http.MethodGet)
	r.HandleFunc("/events", forStudent(student.ListEvents)).Methods(http.MethodGet)
	r.HandleFunc("/events/{id}", forStudent(student.GetEvent)).Methods(http.MethodGet)
	r.HandleFunc("/events/{id}/registration", forStudent(student.RegisterForEvent)).Methods(http.MethodPost)
	r.HandleFunc("/events/{id}/registration", forStudent(student.CancelEventRegistration)).Methods(http.MethodDelete)
	r.HandleFunc("/me/notifications", forStudent(student.ListNotifications)).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{id}/read", forStudent(student.MarkNotificationRead)).Methods(http.MethodPost)

	// Manager surface.
	r.HandleFunc("/manager/club", requireManager(manager.GetClub)).Methods(http.MethodGet)
	r.HandleFunc("/manager/club", requireManager(manager.UpdateClub)).Methods(http.MethodPut)
	r.HandleFunc("/manager/membership-applications", requireManager(manager.ListMembershipApplications)).Methods(http.MethodGet)
	r.HandleFunc("/manager/membership-applications/{id}/decision", requireManager(manager.DecideMembershipApplication)).Methods(http.MethodPost)
	r.HandleFunc("/manager/announcements", requireManager(manager.CreateAnnouncement)).Methods(http.MethodPost)
	r.HandleFunc("/manager/announcements", requireManager(manager.ListAnnouncements)).Methods(http.MethodGet)
	r.HandleFunc("/manager/events", requireManager(manager.ProposeEvent)).Methods(http.MethodPost)
	r.HandleFunc("/manager/events", requireManager(manager.ListEvents)).Methods(http.MethodGet)
	r.HandleFunc("/manager/events/{id}/registrations", requireManager(manager.ListEventRegistrations)).Methods(http.MethodGet)

	// Admin surface.
	r.HandleFunc("/admin/club-applications", forAdmin(admin.ListPendingClubApplications)).Methods(http.MethodGet)
	r.HandleFunc("/admin/club-applications/{id}/decision", forAdmin(admin.DecideClubApplication)).Methods(http.MethodPost)
	r.HandleFunc("/admin/events", forAdmin(admin.ListPendingEvents)).Methods(http.MethodGet)
	r.HandleFunc("/admin/events/{id}/decision", forAdmin(admin.DecideEvent)).Methods(http.MethodPost)
	r.HandleFunc("/admin/clubs", forAdmin(admin.ListClubs)).Methods(http.MethodGet)
	r.HandleFunc("/admin/clubs/{id}/members", forAdmin(admin.ListClubMembers)).Methods(http.MethodGet)
	r.HandleFunc("/admin/audit-log", forAdmin(admin.ListAuditLog)).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
