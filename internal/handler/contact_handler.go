package handler

import (
	"net/http"
	"net/url"

	"github.com/estatehub/backend/internal/model"
	"github.com/estatehub/backend/internal/service"
)

// contactReceivedMessage is returned to the visitor after a submission.
const contactReceivedMessage = "Contact message received. We will get back to you shortly."

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected body for POST /api/contact.
// phone, type and message accept numbers or text.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   any    `json:"phone"`
	Type    any    `json:"type"`
	Message any    `json:"message"`
}

func (req *submitRequest) fromForm(form url.Values) {
	req.Name = form.Get("name")
	req.Email = form.Get("email")
	req.Phone = formValue(form, "phone")
	req.Type = formValue(form, "type")
	req.Message = formValue(form, "message")
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// name and email are required; the stored record is not echoed back.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeBody(w, r, &req, req.fromForm); err != nil {
		writeBodyError(w, err)
		return
	}

	err := h.contactService.Create(r.Context(), model.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Type:    req.Type,
		Message: req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{Success: true, Message: contactReceivedMessage})
}
