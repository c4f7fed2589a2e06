package models

import "strings"

// DateRange is an inclusive pair of free-text dates as entered by a user.
type DateRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// IsBlank reports whether both endpoints are empty.
func (r *DateRange) IsBlank() bool {
	return r == nil || (strings.TrimSpace(r.Start) == "" && strings.TrimSpace(r.End) == "")
}
