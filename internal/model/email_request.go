package model

// Tone values accepted for a draft request.
const (
	ToneProfessional = "professional"
	ToneFriendly     = "friendly"
	ToneFormal       = "formal"
	ToneCasual       = "casual"
	TonePersuasive   = "persuasive"
)

// Length values accepted for a draft request.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// EmailRequest holds the parameters for a single draft generation call.
// It exists only for the duration of that call and is never persisted.
type EmailRequest struct {
	// Sender is the name used in place of "[your name]" in the draft.
	Sender string `json:"sender"`
	// Recipient is the recipient's display name, not their address.
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Tone      string `json:"tone"`
	Purpose   string `json:"purpose"`
	// KeyPoints is a newline-separated list of points to cover, optional.
	KeyPoints string `json:"keyPoints"`
	Length    string `json:"length"`
}

// MissingFields returns the names of required fields that are empty.
func (r EmailRequest) MissingFields() []string {
	var missing []string
	if r.Subject == "" {
		missing = append(missing, "subject")
	}
	if r.Tone == "" {
		missing = append(missing, "tone")
	}
	if r.Purpose == "" {
		missing = append(missing, "purpose")
	}
	return missing
}
