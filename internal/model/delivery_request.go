package model

// Attachment is an opaque file carried along with a delivery request.
// The bytes are relayed unmodified under the original filename; no
// content-type validation happens beyond what the transport requires.
type Attachment struct {
	Filename string
	Data     []byte
}

// DeliveryRequest holds the parameters for a single send call.
// It exists only for the duration of that call and is never persisted.
type DeliveryRequest struct {
	// Recipient is the destination email address.
	Recipient string
	Subject   string
	// Body is the plain-text email body, usually the generated draft.
	Body       string
	Attachment *Attachment
}

// MissingFields returns the names of required fields that are empty.
func (r DeliveryRequest) MissingFields() []string {
	var missing []string
	if r.Recipient == "" {
		missing = append(missing, "recipient")
	}
	if r.Subject == "" {
		missing = append(missing, "subject")
	}
	if r.Body == "" {
		missing = append(missing, "emailBody")
	}
	return missing
}
