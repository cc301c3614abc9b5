package options

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

var promptTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} : ",
	Valid:   "{{ . | green }} : ",
	Invalid: "{{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

// Interactive reports whether stdin is a terminal a prompt can read from.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PromptMissing asks for value when it is empty and stdin is a terminal. Without a
// terminal the value stays empty and the form reports what is missing.
func PromptMissing(label string, value *string, valid func(string) bool, invalid string) error {
	if *value != "" || !Interactive() {
		return nil
	}
	prompt := promptui.Prompt{
		Label:     label,
		Templates: promptTemplates,
		Validate: func(input string) error {
			if !valid(input) {
				return errors.New(invalid)
			}
			return nil
		},
	}
	result, err := prompt.Run()
	if err != nil {
		return err
	}
	*value = result
	return nil
}
