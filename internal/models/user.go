// Package models defines the ledger's persisted records and derived report
// rows.
package models

import (
	"strings"
	"time"
)

type UserAccount struct {
	UserName     string
	PasswordHash []byte
	Interests    []string
	CreatedAt    time.Time
}

// NormalizeInterests turns raw input into an ordered set: values are
// trimmed, blanks dropped, and later duplicates removed. The result is
// never nil.
func NormalizeInterests(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
