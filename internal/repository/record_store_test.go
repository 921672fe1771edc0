package repository

import (
	"strings"
	"testing"
	"time"
)

func TestRecordKeyOrdersNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	older := recordKey(base, "a")
	newer := recordKey(base.Add(time.Second), "b")
	newest := recordKey(base.Add(time.Hour), "c")

	// Lexicographic listing order must be reverse-chronological.
	if !(newest < newer && newer < older) {
		t.Errorf("keys not in newest-first order:\n%s\n%s\n%s", newest, newer, older)
	}
}

func TestRecordKeyShape(t *testing.T) {
	key := recordKey(time.Now(), "2f1c")
	if !strings.HasPrefix(key, recordPrefix) {
		t.Errorf("key %q missing prefix %q", key, recordPrefix)
	}
	if !strings.HasSuffix(key, "-2f1c.json") {
		t.Errorf("key %q missing id suffix", key)
	}
}
