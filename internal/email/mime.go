package email

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const mixedBoundary = "boundary_draftmail_mixed"

// BuildMIME renders the RFC 822 message relayed to the provider. Messages
// without an attachment are plain text; with one they become
// multipart/mixed, the attachment carried base64-encoded under its
// original filename.
func BuildMIME(from string, msg Message) string {
	headers := []string{
		"From: " + from,
		"To: " + msg.To,
		"Subject: " + msg.Subject,
		"MIME-Version: 1.0",
	}

	if msg.Attachment == nil {
		return strings.Join(append(headers,
			"Content-Type: text/plain; charset=UTF-8",
			"Content-Transfer-Encoding: 7bit",
			"",
			msg.TextBody,
		), "\r\n")
	}

	return strings.Join(append(headers,
		"Content-Type: multipart/mixed; boundary="+mixedBoundary,
		"",
		"--"+mixedBoundary,
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Transfer-Encoding: 7bit",
		"",
		msg.TextBody,
		"",
		"--"+mixedBoundary,
		fmt.Sprintf("Content-Type: application/octet-stream; name=%q", msg.Attachment.Filename),
		"Content-Transfer-Encoding: base64",
		fmt.Sprintf("Content-Disposition: attachment; filename=%q", msg.Attachment.Filename),
		"",
		encodeBase64Wrapped(msg.Attachment.Data),
		"",
		"--"+mixedBoundary+"--",
	), "\r\n")
}

// encodeBase64Wrapped encodes data with RFC 2045 line wrapping.
func encodeBase64Wrapped(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	const lineLen = 76
	var b strings.Builder
	for len(encoded) > lineLen {
		b.WriteString(encoded[:lineLen])
		b.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	b.WriteString(encoded)
	return b.String()
}
