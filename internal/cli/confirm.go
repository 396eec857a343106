package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// confirmDestructive asks before a destructive command-line action.
// assumeYes (--yes) skips the prompt. A declined or aborted prompt returns
// false with no error; the caller aborts silently.
func confirmDestructive(prompt string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(sitedeskHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}
