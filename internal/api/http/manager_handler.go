package http

import (
	"net/http"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// ManagerHandler serves the club-manager surface: club profile, membership
// decisions, announcements, events.
type ManagerHandler struct {
	clubs         service.ClubService
	memberships   service.MembershipService
	events        service.EventService
	announcements service.AnnouncementService
}

func NewManagerHandler(
	clubs service.ClubService,
	memberships service.MembershipService,
	events service.EventService,
	announcements service.AnnouncementService,
) *ManagerHandler {
	return &ManagerHandler{
		clubs:         clubs,
		memberships:   memberships,
		events:        events,
		announcements: announcements,
	}
}

func (h *ManagerHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubs.GetManaged(r.Context(), principalFrom(r).Manager.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

type updateClubRequest struct {
	Description  string `json:"description"`
	Category     string `json:"category"`
	ContactEmail string `json:"contact_email"`
}

func (h *ManagerHandler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	var req updateClubRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	club, err := h.clubs.UpdateManaged(r.Context(), principalFrom(r).Manager.ID, req.Description, req.Category, req.ContactEmail)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

func (h *ManagerHandler) ListMembershipApplications(w http.ResponseWriter, r *http.Request) {
	managerID := principalFrom(r).Manager.ID
	var (
		apps []domain.MembershipApplication
		err  error
	)
	if r.URL.Query().Get("status") == "decided" {
		apps, err = h.memberships.ListDecided(r.Context(), managerID)
	} else {
		apps, err = h.memberships.ListPending(r.Context(), managerID)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

type membershipDecisionRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

func (h *ManagerHandler) DecideMembershipApplication(w http.ResponseWriter, r *http.Request) {
	appID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req membershipDecisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	app, err := h.memberships.Decide(r.Context(), principalFrom(r).Manager.ID, appID, req.Approve, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

type createAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (h *ManagerHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req createAnnouncementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	announcement, err := h.announcements.Create(r.Context(), principalFrom(r).Manager.ID, req.Title, req.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, announcement)
}

func (h *ManagerHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.ListManaged(r.Context(), principalFrom(r).Manager.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"announcements": announcements})
}

type proposeEventRequest struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Location             string     `json:"location"`
	StartAt              time.Time  `json:"start_at"`
	EndAt                time.Time  `json:"end_at"`
	Capacity             *int32     `json:"capacity"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
}

func (h *ManagerHandler) ProposeEvent(w http.ResponseWriter, r *http.Request) {
	var req proposeEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event := &domain.Event{
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		StartAt:              req.StartAt,
		EndAt:                req.EndAt,
		Capacity:             req.Capacity,
		RegistrationDeadline: req.RegistrationDeadline,
	}
	event, err := h.events.Propose(r.Context(), principalFrom(r).Manager.ID, event)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *ManagerHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListManaged(r.Context(), principalFrom(r).Manager.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (h *ManagerHandler) ListEventRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	registrations, err := h.events.ListRegistrations(r.Context(), principalFrom(r).Manager.ID, eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"registrations": registrations})
}
