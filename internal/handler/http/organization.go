package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/handler/http/response"
)

type OrganizationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &OrganizationHandlerImpl{organizationService: organizationService}
}

// Create implements OrganizationHandler.
func (h *OrganizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req organization.CreateOrganizationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create organization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	org, err := h.organizationService.CreateOrganization(r.Context(), req)
	if err != nil {
		slog.Error("Create organization service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Organization created successfully", org)
}

// List implements OrganizationHandler.
func (h *OrganizationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.organizationService.MyOrganizations(r.Context())
	if err != nil {
		slog.Error("List organizations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, orgs)
}

// ListMembers implements OrganizationHandler.
func (h *OrganizationHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	members, err := h.organizationService.ListMembers(r.Context(), orgID)
	if err != nil {
		slog.Error("List members service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// AddMember implements OrganizationHandler.
func (h *OrganizationHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	var req organization.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	member, err := h.organizationService.AddMember(r.Context(), orgID, req)
	if err != nil {
		slog.Error("Add member service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member added successfully", member)
}
