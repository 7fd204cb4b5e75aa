package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devx/internal/adapters/config"
	"go.trai.ch/devx/internal/core/domain"
)

// clearEnv blanks every DEVX_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DEVX_MARKER", "DEVX_SYSTEMS_DIR", "DEVX_SCRIPTING_DIR", "DEVX_DOCS_SCRIPT",
		"DEVX_INTERPRETERS", "DEVX_LOG_FORMAT", "DEVX_OUTPUT",
	} {
		t.Setenv(name, "")
	}
}

func TestLoader_Defaults(t *testing.T) {
	clearEnv(t)

	got, err := config.NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestLoader_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVX_MARKER", ".hg")
	t.Setenv("DEVX_SYSTEMS_DIR", "crates/app")
	t.Setenv("DEVX_SCRIPTING_DIR", "scripts")
	t.Setenv("DEVX_DOCS_SCRIPT", "scripts/docs.py")
	t.Setenv("DEVX_LOG_FORMAT", "JSON")
	t.Setenv("DEVX_OUTPUT", "plain")

	got, err := config.NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, ".hg", got.Marker)
	assert.Equal(t, "crates/app", got.SystemsDir)
	assert.Equal(t, "scripts", got.ScriptingDir)
	assert.Equal(t, "scripts/docs.py", got.DocsScript)
	assert.Equal(t, domain.LogFormatJSON, got.LogFormat)
	assert.Equal(t, domain.OutputPlain, got.Output)
}

func TestLoader_Interpreters(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "space separated", value: "python3 python", want: []string{"python3", "python"}},
		{name: "comma separated", value: "pypy3,python3", want: []string{"pypy3", "python3"}},
		{name: "single", value: "python3.12", want: []string{"python3.12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DEVX_INTERPRETERS", tt.value)

			got, err := config.NewLoader().Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Interpreters)
		})
	}
}

func TestLoader_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "absolute systems dir",
			env:  map[string]string{"DEVX_SYSTEMS_DIR": "/opt/rust"},
			want: `DEVX_SYSTEMS_DIR="/opt/rust": must be relative to the repository root`,
		},
		{
			name: "escaping scripting dir",
			env:  map[string]string{"DEVX_SCRIPTING_DIR": "../elsewhere"},
			want: `DEVX_SCRIPTING_DIR="../elsewhere": must not escape the repository root`,
		},
		{
			name: "escaping docs script",
			env:  map[string]string{"DEVX_DOCS_SCRIPT": "a/../../gen.py"},
			want: `DEVX_DOCS_SCRIPT="a/../../gen.py": must not escape the repository root`,
		},
		{
			name: "blank interpreters",
			env:  map[string]string{"DEVX_INTERPRETERS": " , "},
			want: "DEVX_INTERPRETERS",
		},
		{
			name: "unknown log format",
			env:  map[string]string{"DEVX_LOG_FORMAT": "xml"},
			want: `DEVX_LOG_FORMAT="xml": expected pretty or json`,
		},
		{
			name: "unknown output",
			env:  map[string]string{"DEVX_OUTPUT": "loud"},
			want: `DEVX_OUTPUT="loud": expected auto, color or plain`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.NewLoader().Load()
			require.Error(t, err)
			assert.ErrorContains(t, err, "invalid configuration")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
