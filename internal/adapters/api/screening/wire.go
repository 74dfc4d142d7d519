package screening

import (
	"bytes"
	"fmt"
	"strconv"
)

type loginRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type registerRequest struct {
	Name string `json:"name"`
}

type authResponse struct {
	Success bool       `json:"success"`
	Name    string     `json:"name"`
	ID      flexibleID `json:"id"`
	Message string     `json:"message"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type pipelineRequest struct {
	UserID   int64  `json:"userid"`
	Username string `json:"username"`
	RunID    string `json:"run_id,omitempty"`
}

type pipelineResponse struct {
	Success        bool   `json:"success"`
	Prediction     string `json:"prediction"`
	Interpretation string `json:"interpretation"`
	Message        string `json:"message"`
}

type eraseRequest struct {
	ID int64 `json:"id"`
}

// flexibleID accepts ids sent either as JSON numbers or numeric strings.
type flexibleID int64

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*id = 0
		return nil
	}

	raw = bytes.Trim(raw, `"`)
	if len(raw) == 0 {
		*id = 0
		return nil
	}

	parsed, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("decode id %s: %w", data, err)
	}

	*id = flexibleID(parsed)
	return nil
}
