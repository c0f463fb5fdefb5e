package handler

import (
	"net/http"
	"net/url"

	"github.com/estatehub/backend/internal/model"
	"github.com/estatehub/backend/internal/service"
)

// ListingHandler serves the public listing feed and listing creation.
type ListingHandler struct {
	listingService service.ListingService
}

// NewListingHandler creates a ListingHandler with the given service.
func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// createListingRequest is the expected body for POST /api/admin/listings.
// price, beds, baths and size accept numbers or text.
type createListingRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Price    any    `json:"price"`
	Beds     any    `json:"beds"`
	Baths    any    `json:"baths"`
	Size     any    `json:"size"`
	Status   string `json:"status"`
}

func (req *createListingRequest) fromForm(form url.Values) {
	req.Title = form.Get("title")
	req.Location = form.Get("location")
	req.Price = formValue(form, "price")
	req.Beds = formValue(form, "beds")
	req.Baths = formValue(form, "baths")
	req.Size = formValue(form, "size")
	req.Status = form.Get("status")
}

type createListingResponse struct {
	Success bool           `json:"success"`
	Listing *model.Listing `json:"listing"`
}

// List handles GET /api/listings.
// Stored listings are written back exactly as persisted.
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.listingService.ListAll(r.Context()))
}

// Create handles POST /api/admin/listings.
// title, location and price are required. No authentication is applied.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := decodeBody(w, r, &req, req.fromForm); err != nil {
		writeBodyError(w, err)
		return
	}

	listing, err := h.listingService.Create(r.Context(), model.ListingInput{
		Title:    req.Title,
		Location: req.Location,
		Price:    req.Price,
		Beds:     req.Beds,
		Baths:    req.Baths,
		Size:     req.Size,
		Status:   req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, createListingResponse{Success: true, Listing: listing})
}
