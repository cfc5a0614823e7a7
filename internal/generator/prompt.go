package generator

import (
	"strings"

	"github.com/draftmail/draftmail/internal/model"
)

// BuildPrompt renders the instruction block sent to the completion
// provider. The output is deterministic for a given request: every field
// appears literally, and the key-points block is omitted entirely when no
// key points were supplied.
func BuildPrompt(req model.EmailRequest) string {
	var b strings.Builder

	b.WriteString("You are an AI assistant that generates professional emails.\n")
	b.WriteString("Write an email (and nothing else) with the following details:\n")
	b.WriteString("- Sender (replaces [your name]): " + req.Sender + "\n")
	b.WriteString("- Recipient: " + req.Recipient + "\n")
	b.WriteString("- Subject: " + req.Subject + "\n")
	b.WriteString("- Tone: " + req.Tone + "\n")
	b.WriteString("- Length: " + req.Length + "\n")
	b.WriteString("- Purpose: " + req.Purpose + "\n")

	if points := formatKeyPoints(req.KeyPoints); points != "" {
		b.WriteString("\n- Key Points:\n")
		b.WriteString(points)
		b.WriteString("\n")
	}

	b.WriteString("\nRespond only with the email body, not with explanations or notes.\n")
	b.WriteString("Include a proper email structure with greeting and closing.")

	return b.String()
}

// formatKeyPoints renders each non-blank line as a dash-prefixed entry.
func formatKeyPoints(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, "- "+line)
	}
	return strings.Join(lines, "\n")
}
