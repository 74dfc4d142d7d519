package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/mindscreen-cli/internal/adapters/answers"
	"github.com/bnema/mindscreen-cli/internal/application"
	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errSurveyAborted = errors.New("survey input ended before submission")

func newSurveyCmd(app *app) *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Fill in and submit the screening survey",
		Long:  "Prompts for every survey page in order. With --answers, reads the answers from a toml, yaml or json file instead.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := newView(cmd, viewOptions{})
			identity, err := app.guard.Guard(cmd.Context(), view)
			if err != nil {
				return err
			}

			view.AttachForm(app.form)
			wizard := application.NewWizard(app.form, identity, view, app.api, app.log.Named("survey"))

			if answersPath != "" {
				err = runSurveyFromFile(cmd, wizard, answersPath)
			} else {
				err = runSurveyPrompts(cmd, wizard)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Survey submitted. Run `ms pipeline` to get your result.")
			return err
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", "File with prepared answers (toml, yaml or json)")

	return cmd
}

func runSurveyFromFile(cmd *cobra.Command, wizard *application.Wizard, path string) error {
	form := wizard.Form()
	values, err := answers.Load(path, form)
	if err != nil {
		return err
	}

	for key, value := range values {
		if err := wizard.SetValue(key, value); err != nil {
			return err
		}
	}

	for page := 0; page < form.LastPage(); page++ {
		if err := wizard.Next(page); err != nil {
			return err
		}
	}

	return wizard.Submit(cmd.Context())
}

type surveyAction int

const (
	actionNext surveyAction = iota
	actionPrev
	actionSubmit
)

func runSurveyPrompts(cmd *cobra.Command, wizard *application.Wizard) error {
	form := wizard.Form()
	prompter := &prompter{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.ErrOrStderr()}

	for {
		current := wizard.CurrentPage()
		back, err := prompter.fillPage(wizard, form.Pages[current])
		if err != nil {
			return err
		}
		if back {
			if current > 0 {
				_ = wizard.Prev(current)
			}
			continue
		}

		action, err := prompter.askAction(current, form.LastPage())
		if err != nil {
			return err
		}

		switch action {
		case actionPrev:
			if current > 0 {
				_ = wizard.Prev(current)
			}
		case actionNext:
			_ = wizard.Next(current)
		case actionSubmit:
			err := wizard.Submit(cmd.Context())
			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				continue
			}
			return err
		}
	}
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// fillPage asks for every field on the page. It reports true when the user
// asked to go back with "<".
func (p *prompter) fillPage(wizard *application.Wizard, page domain.Page) (bool, error) {
	form := wizard.Form()
	for _, field := range page.Fields {
		for {
			answer, err := p.ask(fieldPrompt(form, field, wizard.Value(field.Key)))
			if err != nil {
				return false, err
			}
			if answer == "<" {
				return true, nil
			}
			if answer == "" {
				break
			}

			value, ok := normalizeAnswer(field, answer)
			if !ok {
				_, _ = fmt.Fprintf(p.out, "%q is not a valid answer for %s\n", answer, form.Label(field.Key))
				continue
			}
			if err := wizard.SetValue(field.Key, value); err != nil {
				return false, err
			}
			break
		}
	}

	return false, nil
}

func (p *prompter) askAction(current, last int) (surveyAction, error) {
	question := "[n]ext, [p]revious? (n) "
	fallback := actionNext
	switch {
	case current == 0:
		question = "[n]ext? (n) "
	case current == last:
		question = "[s]ubmit, [p]revious? (s) "
		fallback = actionSubmit
	}

	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}

		switch strings.ToLower(answer) {
		case "":
			return fallback, nil
		case "n", "next":
			if current < last {
				return actionNext, nil
			}
		case "p", "prev", "previous", "<":
			if current > 0 {
				return actionPrev, nil
			}
		case "s", "submit":
			if current == last {
				return actionSubmit, nil
			}
		}
	}
}

func (p *prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errSurveyAborted
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func fieldPrompt(form domain.Form, field domain.Field, current string) string {
	var b strings.Builder
	b.WriteString(form.Label(field.Key))
	if !field.Required {
		b.WriteString(" (optional)")
	}
	if len(field.Options) > 0 {
		options := make([]string, 0, len(field.Options))
		for i, option := range field.Options {
			options = append(options, fmt.Sprintf("%d) %s", i+1, option))
		}
		b.WriteString(" [" + strings.Join(options, ", ") + "]")
	}
	if current != "" {
		b.WriteString(" <" + current + ">")
	}
	b.WriteString(": ")

	return b.String()
}

// normalizeAnswer accepts an option by number or by case-insensitive text for
// selects, and numeric input for number fields.
func normalizeAnswer(field domain.Field, answer string) (string, bool) {
	switch field.Kind {
	case domain.FieldKindSelect:
		for i, option := range field.Options {
			if answer == strconv.Itoa(i+1) || strings.EqualFold(answer, option) {
				return option, true
			}
		}
		return "", false
	case domain.FieldKindNumber:
		if _, err := strconv.ParseFloat(answer, 64); err != nil {
			return "", false
		}
		return answer, true
	default:
		return answer, true
	}
}
