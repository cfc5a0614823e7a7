package generator_test

import (
	"strings"
	"testing"

	"github.com/draftmail/draftmail/internal/generator"
	"github.com/draftmail/draftmail/internal/model"
)

func TestBuildPromptContainsAllFields(t *testing.T) {
	req := model.EmailRequest{
		Sender:    "Alice Smith",
		Recipient: "Bob Jones",
		Subject:   "Quarterly Review",
		Tone:      "professional",
		Purpose:   "schedule the quarterly review meeting",
		KeyPoints: "Revenue numbers\nHiring plan",
		Length:    "medium",
	}

	prompt := generator.BuildPrompt(req)

	for _, want := range []string{
		"Alice Smith",
		"Bob Jones",
		"Quarterly Review",
		"professional",
		"schedule the quarterly review meeting",
		"medium",
		"- Revenue numbers",
		"- Hiring plan",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptOmitsKeyPointsWhenEmpty(t *testing.T) {
	req := model.EmailRequest{
		Subject: "Hello",
		Tone:    "casual",
		Purpose: "say hi",
	}

	prompt := generator.BuildPrompt(req)

	if strings.Contains(prompt, "Key Points") {
		t.Fatalf("prompt should omit key-points block when none supplied:\n%s", prompt)
	}
}

func TestBuildPromptOmitsKeyPointsWhenBlank(t *testing.T) {
	req := model.EmailRequest{
		Subject:   "Hello",
		Tone:      "casual",
		Purpose:   "say hi",
		KeyPoints: "  \n\t\n",
	}

	prompt := generator.BuildPrompt(req)

	if strings.Contains(prompt, "Key Points") {
		t.Fatalf("prompt should omit key-points block for blank input:\n%s", prompt)
	}
}

func TestBuildPromptDashPrefixesEachKeyPoint(t *testing.T) {
	req := model.EmailRequest{
		Subject:   "Project Kickoff",
		Tone:      "friendly",
		Purpose:   "introduce the team",
		KeyPoints: "Meet on Monday\nReview goals",
	}

	prompt := generator.BuildPrompt(req)

	if !strings.Contains(prompt, "- Meet on Monday") {
		t.Fatalf("prompt missing dash-prefixed first key point:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Review goals") {
		t.Fatalf("prompt missing dash-prefixed second key point:\n%s", prompt)
	}
}

func TestBuildPromptHandlesWindowsLineEndings(t *testing.T) {
	req := model.EmailRequest{
		Subject:   "Hello",
		Tone:      "formal",
		Purpose:   "confirm the agenda",
		KeyPoints: "First point\r\nSecond point",
	}

	prompt := generator.BuildPrompt(req)

	if !strings.Contains(prompt, "- First point\n- Second point") {
		t.Fatalf("carriage returns should be stripped from key points:\n%s", prompt)
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	req := model.EmailRequest{
		Sender:    "Alice",
		Subject:   "Hello",
		Tone:      "casual",
		Purpose:   "say hi",
		KeyPoints: "one\ntwo",
		Length:    "short",
	}

	if generator.BuildPrompt(req) != generator.BuildPrompt(req) {
		t.Fatal("identical requests must produce identical prompts")
	}
}
