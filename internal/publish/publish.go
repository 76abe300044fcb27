// Package publish posts generated content to social platforms by driving the
// user's own logged-in browser session over the DevTools protocol. There is
// no credential handling here: if the session is not logged in, publishing
// reports a structured failure instead.
package publish

import (
	"context"
	"fmt"
)

// Result is the outcome of a publish attempt, shaped for direct serialization
// back to the calling agent.
type Result struct {
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Errors  []ResultError `json:"errors,omitempty"`
}

// ResultError carries one failure message inside a failed Result.
type ResultError struct {
	Message string `json:"message"`
}

// Success builds a successful Result with the given message.
func Success(message string) *Result {
	return &Result{Status: "success", Message: message}
}

// Failure builds a failed Result from one or more error messages.
func Failure(messages ...string) *Result {
	r := &Result{Status: "failed"}
	for _, m := range messages {
		r.Errors = append(r.Errors, ResultError{Message: m})
	}
	return r
}

// LoginStatus reports whether the browser session is authenticated and, when
// it is, the display name of the logged-in account.
type LoginStatus struct {
	IsLoggedIn bool   `json:"is_logged_in"`
	FullName   string `json:"full_name,omitempty"`
}

// Publisher publishes text posts to one platform.
type Publisher interface {
	// CheckLoggedIn reports whether the browser session is authenticated.
	CheckLoggedIn(ctx context.Context) (*LoginStatus, error)
	// Publish posts text. A nil error with a failed Result means the
	// platform refused the post (e.g. not logged in); a non-nil error means
	// the browser automation itself broke.
	Publish(ctx context.Context, text string) (*Result, error)
}

// Error reports a browser automation failure during publishing.
type Error struct {
	Platform string
	Stage    string
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("publish to %s failed at %s: %v", e.Platform, e.Stage, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
