package draftmail_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	draftmail "github.com/draftmail/draftmail/sdk/go"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-email" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}

		var req draftmail.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Subject != "Project Kickoff" {
			t.Fatalf("unexpected subject: %q", req.Subject)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(draftmail.GenerateResponse{Success: true, Email: "Hi team, ..."})
	}))
	defer srv.Close()

	client := draftmail.NewClient(draftmail.Config{BaseURL: srv.URL})
	text, err := client.Generate(context.Background(), draftmail.GenerateRequest{
		Subject: "Project Kickoff",
		Tone:    "friendly",
		Purpose: "introduce the team",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Hi team, ..." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestGenerateValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"subject is a required field"}`))
	}))
	defer srv.Close()

	client := draftmail.NewClient(draftmail.Config{BaseURL: srv.URL})
	_, err := client.Generate(context.Background(), draftmail.GenerateRequest{Tone: "formal"})

	apiErr, ok := draftmail.IsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", apiErr.StatusCode)
	}
	if apiErr.Message != "subject is a required field" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestSendWithAttachment(t *testing.T) {
	payload := []byte{0x01, 0x02, 0xFF}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send-email" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("recipient"); got != "bob@example.com" {
			t.Fatalf("unexpected recipient: %q", got)
		}
		if got := r.FormValue("emailBody"); got != "Hi Bob" {
			t.Fatalf("unexpected body: %q", got)
		}

		file, header, err := r.FormFile("attachment")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "notes.bin" {
			t.Fatalf("unexpected filename: %q", header.Filename)
		}
		data, err := io.ReadAll(file)
		if err != nil {
			t.Fatalf("read attachment: %v", err)
		}
		if !bytes.Equal(data, payload) {
			t.Fatalf("attachment bytes changed: %v", data)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(draftmail.SendResponse{Success: true, Message: "Email sent successfully"})
	}))
	defer srv.Close()

	client := draftmail.NewClient(draftmail.Config{BaseURL: srv.URL})
	err := client.Send(context.Background(), draftmail.SendRequest{
		Recipient:      "bob@example.com",
		Subject:        "Hello",
		Body:           "Hi Bob",
		AttachmentName: "notes.bin",
		AttachmentData: payload,
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer srv.Close()

	client := draftmail.NewClient(draftmail.Config{BaseURL: srv.URL})
	healthy, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if !healthy {
		t.Fatal("expected healthy")
	}
}
