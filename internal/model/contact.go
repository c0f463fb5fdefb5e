package model

// DefaultContactType is stored when the form does not name an inquiry type.
const DefaultContactType = "General"

// Contact is a message submitted via the contact form.
// Phone, Type and Message keep whatever JSON value the visitor sent;
// falsy ones are replaced by their defaults.
type Contact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     any    `json:"phone"`
	Type      any    `json:"type"`
	Message   any    `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// ContactInput carries the fields accepted by POST /api/contact.
type ContactInput struct {
	Name    string
	Email   string
	Phone   any
	Type    any
	Message any
}
