package calendarific

import "encoding/json"

// Envelope is the top-level body of every Calendarific response. Response is
// kept raw: on errors the service sends an empty array instead of an object.
type Envelope struct {
	Meta     Meta            `json:"meta"`
	Response json.RawMessage `json:"response"`
}

// Meta carries the API-level status, which may differ from the HTTP status.
type Meta struct {
	Code        int    `json:"code"`
	ErrorType   string `json:"error_type,omitempty"`
	ErrorDetail string `json:"error_detail,omitempty"`
}

// HolidaysResponse is the "response" object of /holidays. Entries stay raw so
// that callers can validate field types themselves.
type HolidaysResponse struct {
	Holidays []json.RawMessage `json:"holidays"`
}

// Holiday is the subset of a holiday entry this client understands.
type Holiday struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PrimaryType string `json:"primary_type"`
	Locations   string `json:"locations"`
	Date        struct {
		ISO string `json:"iso"`
	} `json:"date"`
}
