package domain

// Target represents a named unit of build work.
// It uses InternedString for fields that are frequently compared during resolution.
type Target struct {
	Name         InternedString
	Description  string
	Dependencies []InternedString
	Requirements []Requirement
	Command      []string
	Environment  map[string]string
	WorkingDir   string
}

// RequirementKind identifies what a requirement checks.
type RequirementKind string

const (
	// RequirementParameter requires a build parameter to have a non-empty value.
	RequirementParameter RequirementKind = "param"
	// RequirementEnv requires an environment variable to be set.
	RequirementEnv RequirementKind = "env"
	// RequirementFile requires a path relative to the build root to exist.
	RequirementFile RequirementKind = "file"
)

// Requirement is a pre-condition a target declares before it may run.
type Requirement struct {
	Kind  RequirementKind
	Value string
}

// String returns the requirement in its build file notation.
func (r Requirement) String() string {
	return string(r.Kind) + ":" + r.Value
}

// Parameter is a declared, injectable build value.
type Parameter struct {
	Name        string
	Description string
	Default     string
	Required    bool
	Secret      bool
}
