package email_test

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/draftmail/draftmail/internal/email"
	"github.com/draftmail/draftmail/internal/model"
)

func TestBuildMIMEPlainText(t *testing.T) {
	raw := email.BuildMIME("DraftMail <drafts@example.com>", email.Message{
		To:       "bob@example.com",
		Subject:  "Hello",
		TextBody: "Hi Bob,\n\nAll the best.",
	})

	for _, want := range []string{
		"From: DraftMail <drafts@example.com>",
		"To: bob@example.com",
		"Subject: Hello",
		"Content-Type: text/plain; charset=UTF-8",
		"Hi Bob,",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("message missing %q:\n%s", want, raw)
		}
	}
	if strings.Contains(raw, "multipart/mixed") {
		t.Fatal("plain message must not be multipart")
	}
}

func TestBuildMIMEWithAttachment(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x0A}
	raw := email.BuildMIME("drafts@example.com", email.Message{
		To:       "bob@example.com",
		Subject:  "Contract",
		TextBody: "See attached.",
		Attachment: &model.Attachment{
			Filename: "contract v2.pdf",
			Data:     payload,
		},
	})

	if !strings.Contains(raw, "multipart/mixed") {
		t.Fatalf("attachment message must be multipart/mixed:\n%s", raw)
	}
	if !strings.Contains(raw, `filename="contract v2.pdf"`) {
		t.Fatalf("original filename missing:\n%s", raw)
	}
	if !strings.Contains(raw, "See attached.") {
		t.Fatalf("body missing:\n%s", raw)
	}

	// The base64 part must decode back to the exact original bytes.
	idx := strings.Index(raw, "Content-Transfer-Encoding: base64")
	if idx == -1 {
		t.Fatalf("base64 section missing:\n%s", raw)
	}
	section := raw[idx:]
	var encoded []string
	for _, line := range strings.Split(section, "\r\n")[1:] {
		if line == "" || strings.HasPrefix(line, "Content-") {
			continue
		}
		if strings.HasPrefix(line, "--") {
			break
		}
		encoded = append(encoded, line)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.Join(encoded, ""))
	if err != nil {
		t.Fatalf("attachment section is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Fatalf("attachment bytes mutated: got %v want %v", decoded, payload)
	}
}

func TestBuildMIMELongAttachmentWraps(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 600)
	raw := email.BuildMIME("drafts@example.com", email.Message{
		To:       "bob@example.com",
		Subject:  "Big file",
		TextBody: "body",
		Attachment: &model.Attachment{
			Filename: "blob.bin",
			Data:     payload,
		},
	})

	for _, line := range strings.Split(raw, "\r\n") {
		if len(line) > 78 {
			t.Fatalf("line exceeds transport-safe length (%d): %q", len(line), line)
		}
	}
}
