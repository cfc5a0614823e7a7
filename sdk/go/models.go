package draftmail

// GenerateRequest contains the email parameters for a draft.
type GenerateRequest struct {
	Sender    string `json:"sender,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Subject   string `json:"subject"`
	Tone      string `json:"tone"`
	Purpose   string `json:"purpose"`
	KeyPoints string `json:"keyPoints,omitempty"`
	Length    string `json:"length,omitempty"`
}

// GenerateResponse is returned on a successful draft.
type GenerateResponse struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
}

// SendRequest contains the parameters for relaying a finished email.
type SendRequest struct {
	Recipient string
	Subject   string
	Body      string
	// AttachmentName and AttachmentData are optional; when set, the file is
	// relayed with its original filename and raw bytes.
	AttachmentName string
	AttachmentData []byte
}

// SendResponse is returned on a successful send.
type SendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
