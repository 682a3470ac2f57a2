// Package config creates build definitions from rig.yaml build files.
package config

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the build file searched for.
	FileName = "rig.yaml"
	// FileEnv overrides build file discovery with an explicit path.
	FileEnv = "RIG_BUILD_FILE"

	supportedVersion = "1"
)

var (
	validTargetNameRegex    = regexp.MustCompile("^[a-zA-Z0-9_-]+$")
	validParameterNameRegex = regexp.MustCompile("^[a-zA-Z][a-zA-Z0-9_-]*$")

	// reservedTargetNames clash with subcommands of the CLI.
	reservedTargetNames = []string{"version"}
	// reservedParameterNames clash with built-in arguments.
	reservedParameterNames = []string{"help", "h", "graph", "target", "skip", "parallelism"}
)

// Factory implements ports.BuildFactory by reading a rig.yaml build file.
type Factory struct {
	Logger ports.Logger
}

// NewFactory creates a new Factory with the given logger.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{Logger: logger}
}

// Create locates and reads the build file for inv and returns a fresh build definition.
func (f *Factory) Create(_ context.Context, inv domain.Invocation, selector domain.TargetSelector) (*domain.Build, error) {
	path, err := findBuildFile(inv)
	if err != nil {
		return nil, err
	}

	var file Buildfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "file", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		f.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", FileName, file.Version, supportedVersion))
	}

	b := domain.NewBuild(resolveRoot(path, file.Root))
	b.File = path
	b.DeclaredDefault = domain.NewInternedString(file.Default)

	if err := addParameters(b, file.Parameters); err != nil {
		return nil, err
	}

	if err := addTargets(b, file.Targets); err != nil {
		return nil, err
	}

	if err := selectInvokedTargets(b, inv.Args, selector); err != nil {
		return nil, err
	}

	return b, nil
}

func findBuildFile(inv domain.Invocation) (string, error) {
	if override, ok := inv.Getenv(FileEnv); ok && override != "" {
		if !filepath.IsAbs(override) {
			override = filepath.Join(inv.WorkDir, override)
		}
		if _, err := os.Stat(override); err != nil {
			return "", zerr.With(domain.ErrBuildFileNotFound, "path", override)
		}
		return override, nil
	}

	currentDir := inv.WorkDir
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrBuildFileNotFound, "cwd", inv.WorkDir)
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is discovered or given explicitly by the user
	content, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrBuildFileReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(content, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrBuildFileParseFailed.Error())
	}

	return nil
}

func resolveRoot(path, configuredRoot string) string {
	dir := filepath.Dir(path)
	if configuredRoot == "" {
		return dir
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Join(dir, configuredRoot)
}

func addParameters(b *domain.Build, dtos map[string]*ParameterDTO) error {
	seen := make(map[string]bool, len(dtos))
	for _, name := range slices.Sorted(maps.Keys(dtos)) {
		if err := validateParameterName(name); err != nil {
			return err
		}
		// Command line flags match parameters regardless of case.
		if seen[strings.ToLower(name)] {
			return zerr.With(domain.ErrDuplicateParameter, "parameter_name", name)
		}
		seen[strings.ToLower(name)] = true

		p := domain.Parameter{Name: name}
		if dto := dtos[name]; dto != nil {
			p.Description = dto.Description
			p.Default = dto.Default
			p.Required = dto.Required
			p.Secret = dto.Secret
		}

		b.Parameters = append(b.Parameters, p)
		if p.Default != "" {
			b.Values[name] = p.Default
		}
	}
	return nil
}

func addTargets(b *domain.Build, dtos map[string]*TargetDTO) error {
	for _, name := range slices.Sorted(maps.Keys(dtos)) {
		if err := validateTargetName(name); err != nil {
			return err
		}

		dto := dtos[name]
		if dto == nil {
			dto = &TargetDTO{}
		}

		for _, dep := range dto.DependsOn {
			if _, ok := dtos[dep]; !ok {
				err := zerr.With(domain.ErrMissingDependency, "missing_dependency", dep)
				return zerr.With(err, "target", name)
			}
		}

		requirements, err := parseRequirements(b, dto.Requires)
		if err != nil {
			return zerr.With(err, "target", name)
		}

		target := &domain.Target{
			Name:         domain.NewInternedString(name),
			Description:  dto.Description,
			Dependencies: domain.InternStrings(dto.DependsOn),
			Requirements: requirements,
			Command:      dto.Cmd,
			Environment:  dto.Environment,
			WorkingDir:   resolveWorkingDir(b.Root, dto.WorkingDir),
		}

		if err := b.Targets.AddTarget(target); err != nil {
			return err
		}
	}
	return nil
}

func parseRequirements(b *domain.Build, raw []string) ([]domain.Requirement, error) {
	requirements := make([]domain.Requirement, 0, len(raw))
	for _, entry := range raw {
		kind, value, ok := strings.Cut(entry, ":")
		if !ok || value == "" {
			return nil, zerr.With(domain.ErrInvalidRequirement, "requirement", entry)
		}

		r := domain.Requirement{Kind: domain.RequirementKind(kind), Value: value}
		switch r.Kind {
		case domain.RequirementParameter:
			if _, declared := b.Parameter(value); !declared {
				return nil, zerr.With(domain.ErrUnknownRequirementParameter, "parameter", value)
			}
		case domain.RequirementEnv, domain.RequirementFile:
		default:
			return nil, zerr.With(domain.ErrInvalidRequirement, "requirement", entry)
		}

		requirements = append(requirements, r)
	}
	return requirements, nil
}

func resolveWorkingDir(root, configured string) string {
	if configured == "" {
		return root
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(root, configured)
}

// selectInvokedTargets records the positional arguments preceding the first
// flag as invoked targets, or asks selector for the default target.
func selectInvokedTargets(b *domain.Build, args []string, selector domain.TargetSelector) error {
	var positional []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			break
		}
		positional = append(positional, arg)
	}

	if len(positional) > 0 {
		b.InvokedTargets = domain.InternStrings(positional)
		return nil
	}

	if selector == nil {
		selector = domain.SelectDeclaredDefault()
	}

	target, err := selector(b)
	if errors.Is(err, domain.ErrNoDefaultTarget) {
		// An explicit --target, --help or --graph may still make this a valid invocation.
		return nil
	}
	if err != nil {
		return err
	}

	b.DefaultTarget = target
	b.InvokedTargets = []domain.InternedString{target}
	return nil
}

// validateTargetName checks if the target name is reserved or contains invalid characters.
func validateTargetName(name string) error {
	if slices.Contains(reservedTargetNames, name) {
		return zerr.With(domain.ErrReservedTargetName, "target_name", name)
	}
	if !validTargetNameRegex.MatchString(name) {
		return zerr.With(domain.ErrInvalidTargetName, "target_name", name)
	}
	return nil
}

// validateParameterName checks if the parameter name shadows a built-in argument or contains invalid characters.
func validateParameterName(name string) error {
	if slices.Contains(reservedParameterNames, strings.ToLower(name)) {
		return zerr.With(domain.ErrReservedParameterName, "parameter_name", name)
	}
	if !validParameterNameRegex.MatchString(name) {
		return zerr.With(domain.ErrInvalidParameterName, "parameter_name", name)
	}
	return nil
}
