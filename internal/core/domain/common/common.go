package common

import "strings"

type Email string

// NewEmail keeps the address exactly as given apart from surrounding
// whitespace; lookups are case-sensitive.
func NewEmail(rawEmail string) Email {
	return Email(strings.TrimSpace(rawEmail))
}

func (e Email) String() string {
	return string(e)
}
