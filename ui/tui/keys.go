package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common"
)

func commandBindings(mode common.InputMode) []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "rotate left")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "rotate right")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "flip vertical")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "flip horizontal")),
		key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "undo")),
	}
	if mode == common.SingleKeyInput {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("0", "esc"), key.WithHelp("0/esc", "quit")))
	} else {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space/enter", "confirm")),
			key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "erase")),
			key.NewBinding(key.WithKeys("0", "esc"), key.WithHelp("0/esc", "quit")))
	}
	return bindings
}

func categoryBindings(categories *apitype.CategorySet) []key.Binding {
	bindings := make([]key.Binding, 0, categories.Len())
	for _, category := range categories.Categories() {
		id := fmt.Sprintf("%d", category.Id())
		bindings = append(bindings, key.NewBinding(key.WithKeys(id), key.WithHelp(id, category.Name())))
	}
	return bindings
}
