package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

// surveyPrompter implements app.Prompter on top of survey. Cancelling a
// prompt (Ctrl-C) surfaces as terminal.InterruptErr, which the callers
// translate into an immediate non-zero exit.
type surveyPrompter struct{}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	result := def
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var result string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: def,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}
