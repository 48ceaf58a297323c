package models

import (
	"fmt"
	"time"
)

var defaultQuotes = []struct {
	text     string
	category string
}{
	{"The only way to do great work is to love what you do.", "motivation"},
	{"Life is what happens to you while you're busy making other plans.", "life"},
	{"The future belongs to those who believe in the beauty of their dreams.", "dreams"},
	{"Innovation distinguishes between a leader and a follower.", "innovation"},
	{"The only impossible journey is the one you never begin.", "motivation"},
	{"Happiness is not something ready made. It comes from your own actions.", "happiness"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "success"},
	{"The best time to plant a tree was 20 years ago. The second best time is now.", "wisdom"},
}

// DefaultQuotes returns the built-in set used when nothing is persisted yet.
// Ids are stable so that a reset never produces duplicates of the defaults.
func DefaultQuotes(now time.Time) []Quote {
	quotes := make([]Quote, 0, len(defaultQuotes))
	for i, d := range defaultQuotes {
		quotes = append(quotes, Quote{
			ID:           fmt.Sprintf("%s%d", DefaultIDPrefix, i+1),
			Text:         d.text,
			Category:     d.category,
			DateAdded:    now,
			LastModified: now,
			Source:       SourceLocal,
		})
	}
	return quotes
}
