package application

import (
	"context"
	"testing"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"github.com/bnema/mindscreen-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testIdentity = domain.Identity{Name: "Ana", ID: 1}

func completeAnswers() map[string]string {
	return map[string]string{
		"gender":             "Female",
		"age":                "24",
		"city":               "Pune",
		"wps":                "Student",
		"profession":         "",
		"degree":             "B.Tech",
		"academic_pressure":  "4",
		"work_pressure":      "",
		"CGPA":               "8.1",
		"study_satisfaction": "3",
		"job_satisfaction":   "",
		"sleep_duration":     "5-6 hours",
		"diet":               "Moderate",
		"suicidal":           "No",
		"wsh":                "9",
		"financial_stress":   "2",
		"family":             "No",
	}
}

func newTestWizard(t *testing.T, api ports.ScreeningAPI) (*Wizard, *recordingView) {
	t.Helper()

	view := &recordingView{}
	return NewWizard(domain.ScreeningForm(), testIdentity, view, api, nil), view
}

func fill(t *testing.T, w *Wizard, answers map[string]string) {
	t.Helper()

	for key, value := range answers {
		require.NoError(t, w.SetValue(key, value))
	}
}

func TestWizardStartsOnFirstPage(t *testing.T) {
	w, view := newTestWizard(t, mocks.NewMockScreeningAPI(t))

	assert.Equal(t, 0, w.CurrentPage())
	assert.Equal(t, []int{0}, view.pages)
}

func TestWizardNextWalksEveryPageWithValidInput(t *testing.T) {
	w, view := newTestWizard(t, mocks.NewMockScreeningAPI(t))
	fill(t, w, completeAnswers())

	for i := 0; i < w.Form().LastPage(); i++ {
		require.NoError(t, w.Next(i))
		assert.Equal(t, i+1, w.CurrentPage())
		assert.Equal(t, i+1, view.visiblePage())
	}

	assert.Empty(t, view.alerts)
	assert.Equal(t, 8, w.CurrentPage())
}

func TestWizardNextRejectsFirstMissingFieldInPageOrder(t *testing.T) {
	testCases := []struct {
		name      string
		page      int
		blank     []string
		wantLabel string
	}{
		{name: "select before input", page: 0, blank: []string{"gender", "age"}, wantLabel: "Gender"},
		{name: "input only", page: 0, blank: []string{"age"}, wantLabel: "Age"},
		{name: "select after input in markup", page: 1, blank: []string{"city", "wps"}, wantLabel: "Working Professional or Student"},
		{name: "whitespace counts as blank", page: 2, blank: []string{"degree"}, wantLabel: "Degree"},
		{name: "long label", page: 6, blank: []string{"suicidal"}, wantLabel: "Have you ever had suicidal thoughts ?"},
		{name: "two selects", page: 6, blank: []string{"diet", "suicidal"}, wantLabel: "Dietary Habits"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, view := newTestWizard(t, mocks.NewMockScreeningAPI(t))
			answers := completeAnswers()
			for _, key := range tc.blank {
				answers[key] = "   "
			}
			fill(t, w, answers)
			for i := 0; i < tc.page; i++ {
				require.NoError(t, w.Next(i))
			}

			err := w.Next(tc.page)
			require.Error(t, err)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantLabel, validationErr.Label)
			assert.Equal(t, []string{"Please fill out the required field: " + tc.wantLabel}, view.alerts)
			assert.Equal(t, tc.page, w.CurrentPage())
			assert.Equal(t, tc.page, view.visiblePage())
		})
	}
}

func TestWizardOptionalFieldsDoNotBlockNext(t *testing.T) {
	w, _ := newTestWizard(t, mocks.NewMockScreeningAPI(t))
	answers := completeAnswers()
	answers["profession"] = ""
	fill(t, w, answers)

	require.NoError(t, w.Next(0))
	require.NoError(t, w.Next(1))
	require.NoError(t, w.Next(2))
	assert.Equal(t, 3, w.CurrentPage())
}

func TestWizardPrevIgnoresValidity(t *testing.T) {
	w, view := newTestWizard(t, mocks.NewMockScreeningAPI(t))
	fill(t, w, completeAnswers())
	require.NoError(t, w.Next(0))
	require.NoError(t, w.Next(1))
	require.NoError(t, w.SetValue("degree", ""))

	require.NoError(t, w.Prev(2))
	assert.Equal(t, 1, w.CurrentPage())
	require.NoError(t, w.Prev(1))
	assert.Equal(t, 0, w.CurrentPage())
	assert.Equal(t, 0, view.visiblePage())
	assert.Empty(t, view.alerts)
}

func TestWizardRejectsOutOfRangeNavigation(t *testing.T) {
	w, _ := newTestWizard(t, mocks.NewMockScreeningAPI(t))

	assert.ErrorIs(t, w.Next(-1), domain.ErrNoSuchPage)
	assert.ErrorIs(t, w.Next(8), domain.ErrNoSuchPage)
	assert.ErrorIs(t, w.Prev(0), domain.ErrNoSuchPage)
	assert.ErrorIs(t, w.Prev(9), domain.ErrNoSuchPage)
	assert.Equal(t, 0, w.CurrentPage())
}

func TestWizardSetValueRejectsUnknownField(t *testing.T) {
	w, _ := newTestWizard(t, mocks.NewMockScreeningAPI(t))

	err := w.SetValue("shoe_size", "42")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestWizardSubmitPostsLabelledFormWithIdentity(t *testing.T) {
	api := mocks.NewMockScreeningAPI(t)
	w, view := newTestWizard(t, api)
	fill(t, w, completeAnswers())
	for i := 0; i < w.Form().LastPage(); i++ {
		require.NoError(t, w.Next(i))
	}

	api.EXPECT().SubmitSurvey(mockAnyContext(), mock.MatchedBy(func(response domain.SurveyResponse) bool {
		return response["Gender"] == "Female" &&
			response["Have you ever had suicidal thoughts ?"] == "No" &&
			response["Work/Study Hours"] == "9" &&
			response["Profession"] == "" &&
			response["id"] == int64(1) &&
			response["Name"] == "Ana" &&
			len(response) == 19
	})).Return(ports.SubmitReply{Success: true}, nil)

	require.NoError(t, w.Submit(context.Background()))
	assert.Empty(t, view.alerts)
	assert.Equal(t, 8, w.CurrentPage())
}

func TestWizardSubmitValidatesCurrentPageFirst(t *testing.T) {
	api := mocks.NewMockScreeningAPI(t)
	w, view := newTestWizard(t, api)
	answers := completeAnswers()
	answers["family"] = ""
	fill(t, w, answers)
	for i := 0; i < w.Form().LastPage(); i++ {
		require.NoError(t, w.Next(i))
	}

	err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"Please fill out the required field: Family History of Mental Illness"}, view.alerts)
	assert.Equal(t, 8, w.CurrentPage())
	api.AssertNotCalled(t, "SubmitSurvey", mock.Anything, mock.Anything)
}

func TestWizardSubmitRejectedAlertsMessage(t *testing.T) {
	testCases := []struct {
		name      string
		message   string
		wantAlert string
	}{
		{name: "server message", message: "user not found", wantAlert: "user not found"},
		{name: "default message", wantAlert: msgSubmissionFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := mocks.NewMockScreeningAPI(t)
			w, view := newTestWizard(t, api)
			fill(t, w, completeAnswers())

			api.EXPECT().SubmitSurvey(mockAnyContext(), mock.Anything).
				Return(ports.SubmitReply{Success: false, Message: tc.message}, nil)

			err := w.Submit(context.Background())
			require.ErrorIs(t, err, domain.ErrSubmissionRejected)
			assert.Equal(t, []string{tc.wantAlert}, view.alerts)
		})
	}
}

func TestWizardSubmitHTTPFailureAlertsServerError(t *testing.T) {
	api := mocks.NewMockScreeningAPI(t)
	w, view := newTestWizard(t, api)
	fill(t, w, completeAnswers())

	api.EXPECT().SubmitSurvey(mockAnyContext(), mock.Anything).
		Return(ports.SubmitReply{}, &domain.HTTPStatusError{Endpoint: "/submit-survey", StatusCode: 502})

	err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{msgServerError}, view.alerts)
}
