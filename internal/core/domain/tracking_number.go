package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Accepted La Poste identifiers:
//
//	1 digit + 1 letter + 11 digits
//	2 letters + 11 digits
//	2 letters + 9 digits + 2 letters
//	15 digits
//	14 digits + 1 letter
var trackingNumberPattern = regexp.MustCompile(
	`^(?:\d[a-zA-Z]\d{11}|[a-zA-Z]{2}\d{11}|[a-zA-Z]{2}\d{9}[a-zA-Z]{2}|\d{15}|\d{14}[a-zA-Z])$`,
)

// TrackingNumber is a validated La Poste identifier. The zero value is empty
// and never produced by ParseTrackingNumber.
type TrackingNumber struct {
	value string
}

// ParseTrackingNumber trims raw and checks it against the accepted formats.
// Case is preserved.
func ParseTrackingNumber(raw string) (TrackingNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if !trackingNumberPattern.MatchString(trimmed) {
		return TrackingNumber{}, fmt.Errorf("%w: %q", ErrInvalidTrackingNumber, raw)
	}
	return TrackingNumber{value: trimmed}, nil
}

func (t TrackingNumber) String() string {
	return t.value
}

func (t TrackingNumber) IsZero() bool {
	return t.value == ""
}

func (t TrackingNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}
