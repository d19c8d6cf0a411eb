package utils

import (
	"fmt"
	"sort"

	"github.com/AlecAivazis/survey/v2"

	"github.com/seqweaver/hintcfg/pkg/extrinsic"
)

// PromptString asks for a free-form value.
func PromptString(message, defaultValue string, required bool) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}

	var result string
	var validators []survey.Validator
	if required {
		validators = append(validators, survey.Required)
	}
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.ComposeValidators(validators...))); err != nil {
		return "", err
	}
	return result, nil
}

// PromptSelect asks the user to pick one of the options.
func PromptSelect(message string, options []string) (string, error) {
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

// PromptConfirm asks a yes/no question.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}

	var result bool
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// PromptSources asks the user to pick evidence sources. Options show
// the code together with the kind of evidence it carries; the returned
// slice holds the bare codes in catalog order.
func PromptSources(defaults []string) ([]string, error) {
	ordered := []string{"M", "P", "E", "C", "D", "R", "RM", "T", "W"}

	options := make([]string, len(ordered))
	byOption := make(map[string]string, len(ordered))
	var defaultOptions []string
	for i, code := range ordered {
		opt := fmt.Sprintf("%-2s  %s", code, extrinsic.SourceDescriptions[code])
		options[i] = opt
		byOption[opt] = code
		for _, d := range defaults {
			if d == code {
				defaultOptions = append(defaultOptions, opt)
			}
		}
	}

	prompt := &survey.MultiSelect{
		Message: "Evidence sources:",
		Options: options,
		Default: defaultOptions,
	}

	var selected []string
	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.MinItems(1))); err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(selected))
	for _, code := range ordered {
		for _, opt := range selected {
			if byOption[opt] == code {
				codes = append(codes, code)
			}
		}
	}
	return codes, nil
}

// PromptSourceParameters collects [SOURCE-PARAMETERS] flags for the
// chosen sources, one at a time.
func PromptSourceParameters(sources []string) ([]extrinsic.SourceParameter, error) {
	var params []extrinsic.SourceParameter

	flags := make([]string, 0, len(extrinsic.KnownFlags))
	for flag := range extrinsic.KnownFlags {
		flags = append(flags, flag)
	}
	sort.Strings(flags)

	for {
		more, err := PromptConfirm("Attach a source parameter flag?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			return params, nil
		}

		code, err := PromptSelect("Source:", sources)
		if err != nil {
			return nil, err
		}
		flag, err := PromptSelect("Flag:", flags)
		if err != nil {
			return nil, err
		}
		params = append(params, extrinsic.SourceParameter{Code: code, Flag: flag})
	}
}
