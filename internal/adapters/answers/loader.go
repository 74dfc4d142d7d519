// Package answers reads prepared survey answers from a toml, yaml or json
// file so the survey can run without prompts.
package answers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/spf13/viper"
)

var ErrUnknownAnswer = errors.New("answer file has an unknown field")

// Load maps the file's top-level keys onto the form's field keys. Keys are
// matched case-insensitively; absent fields stay empty.
func Load(path string, form domain.Form) (domain.FormValues, error) {
	if path == "" {
		return nil, errors.New("answer file path is required")
	}

	cfg := viper.New()
	cfg.SetConfigFile(path)
	if err := cfg.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read answer file: %w", err)
	}

	known := make(map[string]string, len(form.Labels))
	for _, key := range form.FieldKeys() {
		known[strings.ToLower(key)] = key
	}

	var unknown []string
	for _, key := range cfg.AllKeys() {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownAnswer, strings.Join(unknown, ", "))
	}

	values := domain.FormValues{}
	for lower, key := range known {
		if !cfg.IsSet(lower) {
			continue
		}
		values[key] = strings.TrimSpace(cfg.GetString(lower))
	}

	return values, nil
}
