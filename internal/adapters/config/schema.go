package config

// Buildfile represents the structure of the rig.yaml build file.
type Buildfile struct {
	Version    string                   `yaml:"version"`
	Root       string                   `yaml:"root"`
	Default    string                   `yaml:"default"`
	Parameters map[string]*ParameterDTO `yaml:"parameters"`
	Targets    map[string]*TargetDTO    `yaml:"targets"`
}

// ParameterDTO represents a parameter declaration in the build file.
type ParameterDTO struct {
	Description string `yaml:"description"`
	Default     string `yaml:"default"`
	Required    bool   `yaml:"required"`
	Secret      bool   `yaml:"secret"`
}

// TargetDTO represents a target definition in the build file.
type TargetDTO struct {
	Description string            `yaml:"description"`
	DependsOn   []string          `yaml:"dependsOn"`
	Requires    []string          `yaml:"requires"`
	Cmd         []string          `yaml:"cmd"`
	Environment map[string]string `yaml:"environment"`
	WorkingDir  string            `yaml:"workingDir"`
}
