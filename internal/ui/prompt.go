// Package ui holds the interactive prompt implementations shared by the
// commands.
package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/llamaup/llamaup/internal/provisioning"
)

// ConfirmPrompter asks yes/no questions through a huh form.
type ConfirmPrompter struct{}

var _ provisioning.Prompter = (*ConfirmPrompter)(nil)

// Confirm implements provisioning.Prompter. An aborted form (Esc, Ctrl+C)
// counts as "no", not as an error.
func (ConfirmPrompter) Confirm(ctx context.Context, title, description string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// DeclinePrompter answers no to everything. Used on non-interactive runs,
// where nothing destructive may happen without a terminal to ask on.
type DeclinePrompter struct{}

var _ provisioning.Prompter = (*DeclinePrompter)(nil)

// Confirm implements provisioning.Prompter.
func (DeclinePrompter) Confirm(ctx context.Context, title, description string) (bool, error) {
	return false, nil
}
