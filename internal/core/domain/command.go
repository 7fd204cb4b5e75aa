package domain

// Command is a resolved external-process invocation.
type Command struct {
	// Name is the binary name or path to execute.
	Name string
	// Args are passed to the binary verbatim.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Quiet discards the child's output instead of inheriting the standard streams.
	Quiet bool
}
