package model

// DefaultListingStatus is stored when a new listing has no status.
const DefaultListingStatus = "For Sale"

// Listing is one property advertised on the site.
// Price, Beds, Baths and Size keep whatever JSON value the client sent
// (number or text); optional ones default to "".
type Listing struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Price     any    `json:"price"`
	Beds      any    `json:"beds"`
	Baths     any    `json:"baths"`
	Size      any    `json:"size"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ListingInput carries the fields accepted by POST /api/admin/listings.
type ListingInput struct {
	Title    string
	Location string
	Price    any
	Beds     any
	Baths    any
	Size     any
	Status   string
}
