// Package web serves the embedded browser form that drives the draft and
// delivery endpoints. Styling is incidental; the page owns the transient
// form state and the two user-triggered calls.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// Index serves the email form page.
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
