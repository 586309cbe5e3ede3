package scheduler

import (
	"fmt"
	"strings"
)

// Mode says whether the draft is a new record or an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// AllModes returns the known modes.
func AllModes() []Mode {
	return []Mode{ModeCreate, ModeEdit}
}

// ParseMode resolves a stored or typed mode. Empty means ModeCreate.
func ParseMode(raw string) (Mode, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return ModeCreate, nil
	}
	for _, m := range AllModes() {
		if string(m) == v {
			return m, nil
		}
	}
	return "", fmt.Errorf("scheduler: unknown mode %q", raw)
}

func (m Mode) String() string {
	return string(m)
}

// Editing reports whether m is ModeEdit.
func (m Mode) Editing() bool {
	return m == ModeEdit
}
