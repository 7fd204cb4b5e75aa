// Package config loads devx settings from DEVX_* environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"go.trai.ch/devx/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is prepended to every setting key to form its environment variable.
const EnvPrefix = "DEVX"

const (
	keyMarker       = "marker"
	keySystemsDir   = "systems_dir"
	keyScriptingDir = "scripting_dir"
	keyDocsScript   = "docs_script"
	keyInterpreters = "interpreters"
	keyLogFormat    = "log_format"
	keyOutput       = "output"
)

// Loader reads settings from the process environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with every key defaulted.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := domain.DefaultSettings()
	v.SetDefault(keyMarker, defaults.Marker)
	v.SetDefault(keySystemsDir, defaults.SystemsDir)
	v.SetDefault(keyScriptingDir, defaults.ScriptingDir)
	v.SetDefault(keyDocsScript, defaults.DocsScript)
	v.SetDefault(keyInterpreters, defaults.Interpreters)
	v.SetDefault(keyLogFormat, defaults.LogFormat)
	v.SetDefault(keyOutput, defaults.Output)

	return &Loader{v: v}
}

// Load decodes and validates the current settings.
func (l *Loader) Load() (*domain.Settings, error) {
	var settings domain.Settings
	err := l.v.Unmarshal(&settings, viper.DecodeHook(fieldsHook()))
	if err != nil {
		return nil, zerr.Wrap(err, "invalid configuration")
	}

	settings.LogFormat = strings.ToLower(strings.TrimSpace(settings.LogFormat))
	settings.Output = strings.ToLower(strings.TrimSpace(settings.Output))

	if err := validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// fieldsHook splits a string into a slice on commas and whitespace,
// so DEVX_INTERPRETERS="python python3" and "python,python3" agree.
func fieldsHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
			return data, nil
		}
		raw := reflect.ValueOf(data).String()
		return strings.FieldsFunc(raw, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		}), nil
	}
}

func validate(s *domain.Settings) error {
	if strings.TrimSpace(s.Marker) == "" {
		return invalid(keyMarker, s.Marker, "must not be empty")
	}

	for key, value := range map[string]string{
		keySystemsDir:   s.SystemsDir,
		keyScriptingDir: s.ScriptingDir,
		keyDocsScript:   s.DocsScript,
	} {
		if err := validateRelative(key, value); err != nil {
			return err
		}
	}

	if len(s.Interpreters) == 0 {
		return invalid(keyInterpreters, "", "at least one interpreter is required")
	}

	if !slices.Contains([]string{domain.LogFormatPretty, domain.LogFormatJSON}, s.LogFormat) {
		return invalid(keyLogFormat, s.LogFormat, "expected pretty or json")
	}

	if !slices.Contains([]string{domain.OutputAuto, domain.OutputColor, domain.OutputPlain}, s.Output) {
		return invalid(keyOutput, s.Output, "expected auto, color or plain")
	}

	return nil
}

// validateRelative rejects paths that would leave the repository root.
func validateRelative(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(key, value, "must not be empty")
	}
	native := filepath.FromSlash(value)
	if filepath.IsAbs(native) || strings.HasPrefix(value, "/") {
		return invalid(key, value, "must be relative to the repository root")
	}
	clean := filepath.Clean(native)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return invalid(key, value, "must not escape the repository root")
	}
	return nil
}

// invalid names the variable in the message itself; zerr metadata is not part of Error().
func invalid(key, value, reason string) error {
	variable := EnvPrefix + "_" + strings.ToUpper(key)
	err := zerr.Wrap(domain.ErrInvalidConfig, fmt.Sprintf("%s=%q: %s", variable, value, reason))
	err = zerr.With(err, "variable", variable)
	return zerr.With(err, "value", value)
}
