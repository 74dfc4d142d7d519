package screening

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/bnema/mindscreen-cli/internal/ports"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	PathLogin        = "/login"
	PathRegister     = "/register"
	PathSubmitSurvey = "/submit-survey"
	PathRunPipeline  = "/run_pipeline"
	PathRightToErase = "/right_to_erase"

	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
	requestIDHeader       = "X-Request-ID"
)

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks JSON over HTTP to the screening server. Requests are never
// retried.
type Client struct {
	http *resty.Client
	log  *zap.Logger
}

var _ ports.ScreeningAPI = (*Client)(nil)

func NewClient(opts Options) (*Client, error) {
	if err := validateBaseURL(opts.BaseURL); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	rc := resty.New()
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	}
	rc.SetBaseURL(opts.BaseURL).
		SetTimeout(timeout).
		SetLogger(log.Sugar()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader(requestIDHeader, uuid.NewString())
			return nil
		})

	return &Client{http: rc, log: log}, nil
}

func (c *Client) Login(ctx context.Context, id domain.UserID, name string) (ports.AuthReply, error) {
	var out authResponse
	if err := c.post(ctx, PathLogin, loginRequest{ID: int64(id), Name: name}, &out); err != nil {
		return ports.AuthReply{}, err
	}

	return out.toReply(), nil
}

func (c *Client) Register(ctx context.Context, name string) (ports.AuthReply, error) {
	var out authResponse
	if err := c.post(ctx, PathRegister, registerRequest{Name: name}, &out); err != nil {
		return ports.AuthReply{}, err
	}

	return out.toReply(), nil
}

func (c *Client) SubmitSurvey(ctx context.Context, response domain.SurveyResponse) (ports.SubmitReply, error) {
	var out submitResponse
	if err := c.post(ctx, PathSubmitSurvey, response, &out); err != nil {
		return ports.SubmitReply{}, err
	}

	return ports.SubmitReply{Success: out.Success, Message: out.Message}, nil
}

func (c *Client) RunPipeline(ctx context.Context, req ports.PipelineRequest) (ports.PipelineReply, error) {
	var out pipelineResponse
	body := pipelineRequest{
		UserID:   int64(req.Identity.ID),
		Username: req.Identity.Name,
		RunID:    req.RunID,
	}
	if err := c.post(ctx, PathRunPipeline, body, &out); err != nil {
		return ports.PipelineReply{}, err
	}

	return ports.PipelineReply{
		Success: out.Success,
		Message: out.Message,
		Result: domain.ScreeningResult{
			Prediction:     domain.Prediction(out.Prediction),
			Interpretation: out.Interpretation,
		},
	}, nil
}

// RightToErase only reports whether the request was delivered.
func (c *Client) RightToErase(ctx context.Context, id domain.UserID) error {
	return c.post(ctx, PathRightToErase, eraseRequest{ID: int64(id)}, nil)
}

func (c *Client) post(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", endpoint, err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("post %s: %w: %w", endpoint, domain.ErrTransport, err)
	}

	c.log.Debug("screening server replied",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", resp.Time()),
	)

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return &domain.HTTPStatusError{Endpoint: endpoint, StatusCode: resp.StatusCode()}
	}

	if out == nil {
		return nil
	}

	raw := resp.Body()
	if len(raw) > maxResponseBytes {
		return fmt.Errorf("decode %s response: body exceeds %d bytes", endpoint, maxResponseBytes)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	return nil
}

func (r authResponse) toReply() ports.AuthReply {
	return ports.AuthReply{
		Success: r.Success,
		Name:    r.Name,
		ID:      domain.UserID(r.ID),
		Message: r.Message,
	}
}

func validateBaseURL(baseURL string) error {
	if baseURL == "" {
		return errors.New("server base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse server base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("server base url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("server base url host is required")
	}

	return nil
}
