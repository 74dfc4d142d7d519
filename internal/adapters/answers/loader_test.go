package answers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "answers.toml", `
gender = "Female"
age = 21
CGPA = 8.5
city = " Pune "
`)

	values, err := Load(path, domain.ScreeningForm())
	require.NoError(t, err)
	assert.Equal(t, domain.FormValues{
		"gender": "Female",
		"age":    "21",
		"CGPA":   "8.5",
		"city":   "Pune",
	}, values)
}

func TestLoadYAMLAndJSON(t *testing.T) {
	t.Parallel()

	yamlPath := writeFile(t, "answers.yaml", "gender: Male\nsleep_duration: 5-6 hours\n")
	values, err := Load(yamlPath, domain.ScreeningForm())
	require.NoError(t, err)
	assert.Equal(t, "Male", values["gender"])
	assert.Equal(t, "5-6 hours", values["sleep_duration"])

	jsonPath := writeFile(t, "answers.json", `{"family":"Yes","wsh":"7"}`)
	values, err = Load(jsonPath, domain.ScreeningForm())
	require.NoError(t, err)
	assert.Equal(t, domain.FormValues{"family": "Yes", "wsh": "7"}, values)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "answers.toml", "gender = \"Female\"\nshoe_size = 42\n")

	_, err := Load(path, domain.ScreeningForm())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAnswer)
	assert.Contains(t, err.Error(), "shoe_size")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), domain.ScreeningForm())
	require.Error(t, err)

	_, err = Load("", domain.ScreeningForm())
	require.Error(t, err)
}
