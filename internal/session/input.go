package session

import (
	"strconv"
	"strings"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/engine"
)

// InputMapper translates what a human types into dispatcher action IDs.
// Menus carry their action IDs invisibly; clients show numbered options
// and players answer with a number. The mapper remembers the most
// recent menu and resolves those numbers. Anything else passes through
// untouched, so typing the raw action ID (or a free-text name at a
// prompt) still works.
type InputMapper struct {
	items []engine.MenuItem
}

// Observe scans a batch of emitted events and remembers the last menu.
// A prompt forgets the menu: the next reply is free text, and a numeric
// name must not select a stale option.
func (m *InputMapper) Observe(events []engine.Event) {
	for _, e := range events {
		switch menu := e.(type) {
		case *engine.MenuEvent:
			m.items = menu.Items
		case *engine.PromptEvent:
			m.items = nil
		}
	}
}

// Resolve maps a raw reply onto an action ID.
func (m *InputMapper) Resolve(input string) string {
	trimmed := strings.TrimSpace(input)
	if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= len(m.items) {
		return m.items[n-1].ID
	}
	return trimmed
}

// Items exposes the current menu, for clients that render their own
// option lists or reply keyboards.
func (m *InputMapper) Items() []engine.MenuItem {
	return m.items
}
