// Package highscore defines high score records and the text file store.
package highscore

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// MaxNameLength is the longest player name that is stored.
const MaxNameLength = 15

// DateLayout is the format of Record.Date.
const DateLayout = "2006-01-02"

// Record is a single high score entry.
type Record struct {
	Name       string
	Score      int
	Date       string
	Difficulty string // Not persisted by FileStore
}

// Store persists high score records.
type Store interface {
	// Load returns all records ordered by score, highest first.
	// Records with equal scores keep their insertion order.
	Load() ([]Record, error)

	// Append adds one record.
	Append(r Record) error
}

// Best returns the highest recorded score. A nil store or a load failure
// counts as "no scores yet".
func Best(s Store) int {
	if s == nil {
		return 0
	}
	records, err := s.Load()
	if err != nil || len(records) == 0 {
		return 0
	}
	return records[0].Score
}

// IsNewHigh reports whether score beats the best recorded score.
func IsNewHigh(s Store, score int) bool {
	return score > Best(s)
}

// Sort orders records by score descending, keeping the relative order of ties.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
}

// Today formats t as a record date.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidNameRune reports whether r may appear in a player name.
func ValidNameRune(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-')
}

// ValidName reports whether name is non-empty, short enough and contains only
// valid characters.
func ValidName(name string) bool {
	if name == "" || len(name) > MaxNameLength {
		return false
	}
	for _, r := range name {
		if !ValidNameRune(r) {
			return false
		}
	}
	return true
}

// SanitizeName trims whitespace, cuts the name to MaxNameLength and drops
// every character that is not a letter, digit, space, underscore or hyphen.
// The result never contains the file store's field delimiter.
func SanitizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) > MaxNameLength {
		trimmed = trimmed[:MaxNameLength]
	}

	var b strings.Builder
	for _, r := range trimmed {
		if ValidNameRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
