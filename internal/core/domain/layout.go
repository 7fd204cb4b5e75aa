package domain

import "path/filepath"

const (
	// DefaultMarker is the entry whose presence identifies the repository root.
	DefaultMarker = ".git"

	// DefaultSystemsDir is the systems-language project, relative to the root.
	DefaultSystemsDir = "rust/devx_cli"

	// DefaultScriptingDir is the scripting-language project, relative to the root.
	DefaultScriptingDir = "python/tools"

	// DefaultDocsScript is the documentation generator, relative to the root.
	DefaultDocsScript = "python/tools/tools/gen_docs.py"

	// ProbeArg is passed to candidate binaries to check that they are usable.
	ProbeArg = "--version"

	// LogFormatPretty selects the coloured human-readable log handler.
	LogFormatPretty = "pretty"
	// LogFormatJSON selects the JSON log handler.
	LogFormatJSON = "json"

	// OutputAuto picks coloured status output when attached to a terminal.
	OutputAuto = "auto"
	// OutputColor forces coloured status output.
	OutputColor = "color"
	// OutputPlain disables colours in status output.
	OutputPlain = "plain"
)

// DefaultInterpreters are the scripting-language interpreter names, in preference order.
func DefaultInterpreters() []string {
	return []string{"python", "python3"}
}

// Layout describes where things live inside the repository.
type Layout struct {
	Marker       string   `mapstructure:"marker"`
	SystemsDir   string   `mapstructure:"systems_dir"`
	ScriptingDir string   `mapstructure:"scripting_dir"`
	DocsScript   string   `mapstructure:"docs_script"`
	Interpreters []string `mapstructure:"interpreters"`
}

// DefaultLayout returns the layout used when nothing is overridden.
func DefaultLayout() Layout {
	return Layout{
		Marker:       DefaultMarker,
		SystemsDir:   DefaultSystemsDir,
		ScriptingDir: DefaultScriptingDir,
		DocsScript:   DefaultDocsScript,
		Interpreters: DefaultInterpreters(),
	}
}

// Dir returns the absolute working directory for loc under root.
func (l Layout) Dir(root string, loc Location) string {
	switch loc {
	case LocationRoot:
		return root
	case LocationSystems:
		return filepath.Join(root, filepath.FromSlash(l.SystemsDir))
	case LocationScripting:
		return filepath.Join(root, filepath.FromSlash(l.ScriptingDir))
	default:
		return ""
	}
}

// Settings is the complete runtime configuration.
type Settings struct {
	Layout    `mapstructure:",squash"`
	LogFormat string `mapstructure:"log_format"`
	Output    string `mapstructure:"output"`
}

// DefaultSettings returns the settings used when no environment overrides are present.
func DefaultSettings() *Settings {
	return &Settings{
		Layout:    DefaultLayout(),
		LogFormat: LogFormatPretty,
		Output:    OutputAuto,
	}
}
