package models

// ContactAck is the acknowledgment shown after a contact submission
const ContactAck = "¡Gracias! Recibimos tu solicitud y un asesor te contactará en menos de 24 horas hábiles."

// NavState is the mobile navigation panel visibility
type NavState struct {
	Open bool
}

// Toggle flips the panel visibility
func (n *NavState) Toggle() {
	n.Open = !n.Open
}

// ContactRequest is a contact form submission. It is never transmitted.
type ContactRequest struct {
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Product string `json:"producto"`
	Message string `json:"mensaje"`
}

// ContactResponse is the acknowledgment returned for a submission
type ContactResponse struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}
