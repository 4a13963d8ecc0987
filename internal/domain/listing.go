package domain

import "strings"

// Listing is the raw output of the directory listing utility.
type Listing struct {
	Text       string
	WorkingDir string
	Command    string
}

// IsEmpty reports whether the listing leaves nothing to organize.
// An empty marker of "" disables the marker check.
func (l Listing) IsEmpty(marker string) bool {
	if strings.TrimSpace(l.Text) == "" {
		return true
	}
	return marker != "" && strings.Contains(l.Text, marker)
}
