package http

import (
	"net/http"

	"clubhub-backend/internal/service"
)

// AdminHandler serves the admin surface: club application and event
// decisions, the club register, the audit trail.
type AdminHandler struct {
	admin    service.AdminService
	pageSize int32
}

func NewAdminHandler(admin service.AdminService, pageSize int32) *AdminHandler {
	return &AdminHandler{admin: admin, pageSize: pageSize}
}

func (h *AdminHandler) ListPendingClubApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.admin.ListPendingClubApplications(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

type clubApplicationDecisionRequest struct {
	Approve         bool   `json:"approve"`
	Comment         string `json:"comment"`
	ManagerEmail    string `json:"manager_email"`
	ManagerPassword string `json:"manager_password"`
}

func (h *AdminHandler) DecideClubApplication(w http.ResponseWriter, r *http.Request) {
	appID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req clubApplicationDecisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	app, err := h.admin.DecideClubApplication(r.Context(), principalFrom(r).Account.ID, appID, req.Approve, req.Comment, req.ManagerEmail, req.ManagerPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *AdminHandler) ListPendingEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.admin.ListPendingEvents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

type eventDecisionRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment"`
}

func (h *AdminHandler) DecideEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req eventDecisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := h.admin.DecideEvent(r.Context(), principalFrom(r).Account.ID, eventID, req.Approve, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *AdminHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.admin.ListClubs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"clubs": clubs})
}

func (h *AdminHandler) ListClubMembers(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	members, err := h.admin.ListClubMembers(r.Context(), clubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}

func (h *AdminHandler) ListAuditLog(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	entries, err := h.admin.ListAuditLog(r.Context(), page, h.pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries, "page": page})
}
