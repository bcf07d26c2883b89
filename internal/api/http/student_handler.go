package http

import (
	"net/http"

	"clubhub-backend/internal/service"
)

// StudentHandler serves the student-facing surface: the club catalog, club
// and membership applications, founder invitations, events, notifications.
type StudentHandler struct {
	clubs         service.ClubService
	clubApps      service.ClubApplicationService
	memberships   service.MembershipService
	events        service.EventService
	announcements service.AnnouncementService
	notifications service.NotificationService
	pageSize      int32
}

func NewStudentHandler(
	clubs service.ClubService,
	clubApps service.ClubApplicationService,
	memberships service.MembershipService,
	events service.EventService,
	announcements service.AnnouncementService,
	notifications service.NotificationService,
	pageSize int32,
) *StudentHandler {
	return &StudentHandler{
		clubs:         clubs,
		clubApps:      clubApps,
		memberships:   memberships,
		events:        events,
		announcements: announcements,
		notifications: notifications,
		pageSize:      pageSize,
	}
}

func (h *StudentHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	clubs, total, err := h.clubs.ListApproved(r.Context(), r.URL.Query().Get("search"), page, h.pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"clubs": clubs, "total": total, "page": page})
}

func (h *StudentHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	club, err := h.clubs.GetApproved(r.Context(), clubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

func (h *StudentHandler) ListClubAnnouncements(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	announcements, err := h.announcements.ListForClub(r.Context(), clubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"announcements": announcements})
}

type membershipApplyRequest struct {
	Message string `json:"message"`
}

func (h *StudentHandler) ApplyForMembership(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req membershipApplyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	app, err := h.memberships.Apply(r.Context(), principalFrom(r).Account.ID, clubID, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *StudentHandler) ListOwnMemberships(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.memberships.ListOwnMemberships(r.Context(), principalFrom(r).Account.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"memberships": memberships})
}

func (h *StudentHandler) ListOwnMembershipApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.memberships.ListOwnApplications(r.Context(), principalFrom(r).Account.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

type clubApplicationRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	FoundersNote string `json:"founders_note"`
}

func (h *StudentHandler) SubmitClubApplication(w http.ResponseWriter, r *http.Request) {
	var req clubApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	app, err := h.clubApps.Submit(r.Context(), principalFrom(r).Account.ID, req.Name, req.Description, req.Category, req.FoundersNote)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *StudentHandler) ListOwnClubApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.clubApps.ListOwn(r.Context(), principalFrom(r).Account.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

func (h *StudentHandler) GetClubApplication(w http.ResponseWriter, r *http.Request) {
	appID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	app, invitations, err := h.clubApps.Get(r.Context(), principalFrom(r).Account.ID, appID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"application": app, "invitations": invitations})
}

type inviteFounderRequest struct {
	Email string `json:"email"`
}

func (h *StudentHandler) InviteFounder(w http.ResponseWriter, r *http.Request) {
	appID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req inviteFounderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	invite, err := h.clubApps.InviteFounder(r.Context(), principalFrom(r).Account.ID, appID, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, invite)
}

func (h *StudentHandler) RemoveInvitation(w http.ResponseWriter, r *http.Request) {
	inviteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.clubApps.RemoveInvitation(r.Context(), principalFrom(r).Account.ID, inviteID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "invitation removed"})
}

type respondInvitationRequest struct {
	Accept bool `json:"accept"`
}

func (h *StudentHandler) RespondToInvitation(w http.ResponseWriter, r *http.Request) {
	inviteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req respondInvitationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	invite, err := h.clubApps.RespondToInvitation(r.Context(), principalFrom(r).Account.ID, inviteID, req.Accept)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invite)
}

func (h *StudentHandler) ListOwnInvitations(w http.ResponseWriter, r *http.Request) {
	invites, err := h.clubApps.ListOwnInvitations(r.Context(), principalFrom(r).Account.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"invitations": invites})
}

func (h *StudentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	clubID := queryInt32(r, "club_id", 0)
	events, total, err := h.events.ListApproved(r.Context(), clubID, page, h.pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events, "total": total, "page": page})
}

func (h *StudentHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	event, registration, err := h.events.GetApproved(r.Context(), principalFrom(r).Account.ID, eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"event": event, "registration": registration})
}

func (h *StudentHandler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	registration, err := h.events.Register(r.Context(), principalFrom(r).Account.ID, eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registration)
}

func (h *StudentHandler) CancelEventRegistration(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.events.CancelRegistration(r.Context(), principalFrom(r).Account.ID, eventID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "registration cancelled"})
}

func (h *StudentHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	notes, total, err := h.notifications.List(r.Context(), principalFrom(r).Account.ID, page, h.pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notes, "total": total, "page": page})
}

func (h *StudentHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.notifications.MarkAsRead(r.Context(), principalFrom(r).Account.ID, noteID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "marked as read"})
}
