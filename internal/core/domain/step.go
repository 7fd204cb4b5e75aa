package domain

import "strings"

// Location names the directory a step runs in.
type Location int

const (
	// LocationNone marks steps that do not need the repository root.
	LocationNone Location = iota
	// LocationRoot is the repository root itself.
	LocationRoot
	// LocationSystems is the systems-language project directory.
	LocationSystems
	// LocationScripting is the scripting-language project directory.
	LocationScripting
)

// String returns a short name for the location.
func (l Location) String() string {
	switch l {
	case LocationRoot:
		return "root"
	case LocationSystems:
		return "systems"
	case LocationScripting:
		return "scripting"
	default:
		return "none"
	}
}

// StepKind distinguishes steps that run a tool from steps that only probe for one.
type StepKind int

const (
	// StepRun resolves the tool up front and runs it with the step arguments.
	StepRun StepKind = iota
	// StepProbe tries each candidate with the step arguments until one succeeds.
	StepProbe
)

// Tool is a logical tool with an ordered list of acceptable executable names.
type Tool struct {
	Name       string
	Candidates []string
}

// Single returns a tool that has exactly one candidate binary.
func Single(name string) Tool {
	return Tool{Name: name, Candidates: []string{name}}
}

// Step is one external-process invocation before tool resolution.
type Step struct {
	Name string
	Kind StepKind
	Tool Tool
	Args []string
	Dir  Location
}

// Describe renders the step as a human-readable command line.
func (s Step) Describe() string {
	bin := strings.Join(s.Tool.Candidates, "|")
	if len(s.Args) == 0 {
		return bin
	}
	return bin + " " + strings.Join(s.Args, " ")
}

// Pipeline is the ordered list of steps implementing a task.
// Every step runs regardless of earlier failures.
type Pipeline struct {
	Task  TaskID
	Steps []Step
}

// Concat builds a pipeline for task from the steps of parts, in order.
func Concat(task TaskID, parts ...Pipeline) Pipeline {
	p := Pipeline{Task: task}
	for _, part := range parts {
		p.Steps = append(p.Steps, part.Steps...)
	}
	return p
}

// NeedsRoot reports whether any step runs inside the repository.
func (p Pipeline) NeedsRoot() bool {
	for _, s := range p.Steps {
		if s.Dir != LocationNone {
			return true
		}
	}
	return false
}

// StepNames returns the step names in execution order.
func (p Pipeline) StepNames() []string {
	names := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		names[i] = s.Name
	}
	return names
}

// Tools returns the distinct tools needed by run steps, in first-use order.
func (p Pipeline) Tools() []Tool {
	seen := make(map[string]struct{})
	var tools []Tool
	for _, s := range p.Steps {
		if s.Kind != StepRun {
			continue
		}
		if _, ok := seen[s.Tool.Name]; ok {
			continue
		}
		seen[s.Tool.Name] = struct{}{}
		tools = append(tools, s.Tool)
	}
	return tools
}
