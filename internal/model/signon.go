package model

import (
	"strings"
	"time"

	"github.com/cleared-dev/ofxparse/internal/ofxtime"
)

// SignOn is the sign-on response of a document.
type SignOn struct {
	Status     Status
	ServerDate string // raw DTSERVER
	Language   string
	Institute  Institute
}

// Date parses ServerDate.
func (s *SignOn) Date() (time.Time, bool) { return ofxtime.Parse(s.ServerDate) }

// Institute identifies the financial institution.
type Institute struct {
	Name string
	ID   string
}

// statusCodes describes the sign-on status codes we know about.
var statusCodes = map[string]string{
	"0":     "Success",
	"2000":  "General error",
	"15000": "Must change USERPASS",
	"15500": "Signon invalid",
	"15501": "Customer account already in use",
	"15502": "USERPASS Lockout",
}

// Status is a response status aggregate.
type Status struct {
	RawCode  string
	Severity string
	Message  string
}

// Code returns the trimmed status code.
func (s Status) Code() string { return strings.TrimSpace(s.RawCode) }

// CodeDesc returns the human-readable description of Code. Unknown codes
// return ok == false.
func (s Status) CodeDesc() (string, bool) {
	desc, ok := statusCodes[s.Code()]
	return desc, ok
}
