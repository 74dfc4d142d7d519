package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"go.uber.org/zap"
)

var ErrUnknownField = errors.New("unknown survey field")

// Wizard drives the multi-page survey. Exactly one page is shown at a time and
// values live only in the wizard until Submit.
type Wizard struct {
	form     domain.Form
	values   domain.FormValues
	current  int
	identity domain.Identity
	view     ports.SurveyView
	api      ports.ScreeningAPI
	log      *zap.Logger
}

func NewWizard(form domain.Form, identity domain.Identity, view ports.SurveyView, api ports.ScreeningAPI, log *zap.Logger) *Wizard {
	w := &Wizard{
		form:     form,
		values:   domain.FormValues{},
		identity: identity,
		view:     view,
		api:      api,
		log:      loggerOrNop(log),
	}
	w.show(0)

	return w
}

func (w *Wizard) Form() domain.Form {
	return w.form
}

func (w *Wizard) CurrentPage() int {
	return w.current
}

func (w *Wizard) Value(key string) string {
	return w.values[key]
}

func (w *Wizard) SetValue(key, value string) error {
	if _, ok := w.form.Labels[key]; !ok {
		return fmt.Errorf("%q: %w", key, ErrUnknownField)
	}

	w.values[key] = value
	return nil
}

// Next moves from page index to index+1 when every required field on the
// page is filled in.
func (w *Wizard) Next(index int) error {
	if index < 0 || index >= w.form.LastPage() {
		return fmt.Errorf("next from page %d: %w", index, domain.ErrNoSuchPage)
	}

	if err := w.validate(index); err != nil {
		return err
	}

	w.show(index + 1)
	return nil
}

func (w *Wizard) Prev(index int) error {
	if index < 1 || index > w.form.LastPage() {
		return fmt.Errorf("previous from page %d: %w", index, domain.ErrNoSuchPage)
	}

	w.show(index - 1)
	return nil
}

// Submit validates the page on screen and posts the whole form.
func (w *Wizard) Submit(ctx context.Context) error {
	if err := w.validate(w.current); err != nil {
		return err
	}

	response := w.form.BuildResponse(w.values, w.identity)
	w.log.Debug("submitting survey", zap.Int("fields", len(response)))

	reply, err := w.api.SubmitSurvey(ctx, response)
	if err != nil {
		return reportRequestFailure(w.view, w.log, "submit survey", err)
	}

	if !reply.Success {
		w.view.Alert(messageOrDefault(reply.Message, msgSubmissionFailed))
		return fmt.Errorf("submit survey: %w", domain.ErrSubmissionRejected)
	}

	return nil
}

func (w *Wizard) validate(index int) error {
	err := w.form.ValidatePage(index, w.values)
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		w.view.Alert(validationErr.Error())
	}

	return err
}

func (w *Wizard) show(index int) {
	w.current = index
	w.view.ShowPage(index)
}
