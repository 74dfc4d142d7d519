package screening

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, router http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := NewClient(Options{BaseURL: server.URL, HTTPClient: server.Client(), Timeout: time.Second})
	require.NoError(t, err)
	return client
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestLoginPostsCredentialsAndParsesIdentity(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, map[string]any{"id": float64(1), "name": "Ana"}, decodeBody(t, r))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Login Successful","success":true,"name":"Ana","id":1}`))
	})

	reply, err := newTestClient(t, router).Login(context.Background(), 1, "Ana")
	require.NoError(t, err)
	assert.Equal(t, ports.AuthReply{Success: true, Name: "Ana", ID: 1, Message: "Login Successful"}, reply)
}

func TestLoginParsesLogicalFailure(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ID or Name is wrong","success":false}`))
	})

	reply, err := newTestClient(t, router).Login(context.Background(), 1, "Ana")
	require.NoError(t, err)
	assert.False(t, reply.Success)
	assert.Equal(t, "ID or Name is wrong", reply.Message)
}

func TestRegisterAcceptsStringID(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, map[string]any{"name": "Cleo"}, decodeBody(t, r))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"User registered successfully","id":"482913","name":"Cleo","success":true}`))
	})

	reply, err := newTestClient(t, router).Register(context.Background(), "Cleo")
	require.NoError(t, err)
	assert.True(t, reply.Success)
	assert.Equal(t, domain.UserID(482913), reply.ID)
}

func TestNonSuccessStatusReturnsHTTPStatusError(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Name is required"}`))
	})

	_, err := newTestClient(t, router).Register(context.Background(), "")
	require.Error(t, err)

	var statusErr *domain.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, PathRegister, statusErr.Endpoint)
}

func TestTransportFailureWrapsErrTransport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(Options{BaseURL: baseURL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.Login(context.Background(), 1, "Ana")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := newTestClient(t, router).Login(context.Background(), 1, "Ana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode /login response")
	assert.NotErrorIs(t, err, domain.ErrTransport)
}

func TestSubmitSurveySendsLabelledBody(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/submit-survey", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "Female", body["Gender"])
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "Ana", body["Name"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"data_received","success":true}`))
	})

	reply, err := newTestClient(t, router).SubmitSurvey(context.Background(), domain.SurveyResponse{
		"Gender": "Female",
		"id":     int64(1),
		"Name":   "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, ports.SubmitReply{Success: true, Message: "data_received"}, reply)
}

func TestRunPipelineSendsRunIDAndParsesResult(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/run_pipeline", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, map[string]any{"userid": float64(1), "username": "Ana", "run_id": "run-1"}, decodeBody(t, r))
		_, _ = w.Write([]byte(`{"success":true,"prediction":"Yes","interpretation":"<p>Sleep matters</p>"}`))
	})

	reply, err := newTestClient(t, router).RunPipeline(context.Background(), ports.PipelineRequest{
		Identity: domain.Identity{Name: "Ana", ID: 1},
		RunID:    "run-1",
	})
	require.NoError(t, err)
	assert.True(t, reply.Success)
	assert.Equal(t, domain.ScreeningResult{Prediction: domain.PredictionYes, Interpretation: "<p>Sleep matters</p>"}, reply.Result)
}

func TestRightToEraseIgnoresReplyBody(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/right_to_erase", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, map[string]any{"id": float64(7)}, decodeBody(t, r))
		_, _ = w.Write([]byte(`not json at all`))
	})

	require.NoError(t, newTestClient(t, router).RightToErase(context.Background(), 7))
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		baseURL string
		wantErr string
	}{
		{name: "empty", baseURL: "", wantErr: "server base url is required"},
		{name: "scheme", baseURL: "ftp://host", wantErr: "must use http or https"},
		{name: "host", baseURL: "http://", wantErr: "host is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClient(Options{BaseURL: tc.baseURL})
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestFlexibleIDDecoding(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw  string
		want flexibleID
	}{
		{raw: `1`, want: 1},
		{raw: `"482913"`, want: 482913},
		{raw: `null`, want: 0},
		{raw: `""`, want: 0},
	}

	for _, tc := range testCases {
		var id flexibleID
		require.NoError(t, id.UnmarshalJSON([]byte(tc.raw)), tc.raw)
		assert.Equal(t, tc.want, id, tc.raw)
	}

	var id flexibleID
	assert.Error(t, id.UnmarshalJSON([]byte(`"abc"`)))
}
