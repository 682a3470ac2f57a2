package domain

import (
	"context"
	"slices"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// Build is the definition of a single build run: the declared targets and
// parameters loaded from the build file and the values injected for this
// invocation. A Build is created once per invocation and never reused.
type Build struct {
	// Root is the absolute directory containing the build file.
	Root string
	// File is the absolute path of the build file.
	File string

	Targets    *Graph
	Parameters []Parameter
	// Values holds the effective value of every parameter that has one.
	Values map[string]string
	// Env is the environment of the invocation, keyed by variable name.
	Env map[string]string

	// DeclaredDefault is the default target named by the build file, if any.
	DeclaredDefault InternedString
	// DefaultTarget is the target chosen by the invocation's TargetSelector.
	DefaultTarget InternedString

	InvokedTargets []InternedString
	SkippedTargets []InternedString

	// Help requests the targets and parameters help text instead of a run.
	Help bool
	// Graph requests the dependency graph instead of a run.
	Graph bool

	// Parallelism bounds how many independent targets run at once. Zero means one per CPU.
	Parallelism int
}

// NewBuild creates an empty Build rooted at root.
func NewBuild(root string) *Build {
	return &Build{
		Root:    root,
		Targets: NewGraph(),
		Values:  make(map[string]string),
		Env:     make(map[string]string),
	}
}

// Parameter returns the declared parameter with the given name.
func (b *Build) Parameter(name string) (Parameter, bool) {
	for _, p := range b.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Value returns the injected value of a parameter.
func (b *Build) Value(name string) (string, bool) {
	v, ok := b.Values[name]
	return v, ok
}

// Environ returns the parameter values in KEY=VALUE form, keyed by EnvVar and sorted.
func (b *Build) Environ() []string {
	env := make([]string, 0, len(b.Values))
	for name, value := range b.Values {
		env = append(env, EnvVar(name)+"="+value)
	}
	slices.Sort(env)
	return env
}

// IsSkipped reports whether the invocation asked to skip the named target.
func (b *Build) IsSkipped(name InternedString) bool {
	for _, s := range b.SkippedTargets {
		if s == name {
			return true
		}
	}
	return false
}

type buildKey struct{}

// WithBuild publishes b as the current build of the run carried by ctx.
func WithBuild(ctx context.Context, b *Build) context.Context {
	return context.WithValue(ctx, buildKey{}, b)
}

// BuildFrom returns the current build published into ctx, if any.
func BuildFrom(ctx context.Context) (*Build, bool) {
	b, ok := ctx.Value(buildKey{}).(*Build)
	return b, ok && b != nil
}

// TargetSelector picks the implicit default target of a build, used when the
// caller requests no target explicitly.
type TargetSelector func(b *Build) (InternedString, error)

// SelectTarget returns a TargetSelector that always picks the named target.
func SelectTarget(name string) TargetSelector {
	return func(b *Build) (InternedString, error) {
		target := NewInternedString(name)
		if _, ok := b.Targets.Target(target); !ok {
			return InternedString{}, zerr.With(ErrDefaultTargetNotFound, "target", name)
		}
		return target, nil
	}
}

// SelectDeclaredDefault returns a TargetSelector that picks the default declared by the build file.
func SelectDeclaredDefault() TargetSelector {
	return func(b *Build) (InternedString, error) {
		if b.DeclaredDefault.IsZero() || b.DeclaredDefault.String() == "" {
			return InternedString{}, ErrNoDefaultTarget
		}
		return SelectTarget(b.DeclaredDefault.String())(b)
	}
}

// Invocation describes how the tool was called.
type Invocation struct {
	// Args are the raw command line arguments after the program name.
	Args []string
	// WorkDir is the directory the tool was started in.
	WorkDir string
	// Environ is the process environment in KEY=VALUE form.
	Environ []string
}

// Getenv returns the value of key in the invocation environment.
// The last assignment wins, as it does for a process environment.
func (inv Invocation) Getenv(key string) (string, bool) {
	value, found := "", false
	for _, kv := range inv.Environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k == key {
			value, found = v, true
		}
	}
	return value, found
}

// EnvPrefix prefixes the environment variable of every parameter.
const EnvPrefix = "RIG_"

// EnvVar returns the environment variable that carries the parameter name,
// e.g. ApiKey becomes RIG_API_KEY.
func EnvVar(name string) string {
	var sb strings.Builder
	sb.WriteString(EnvPrefix)

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '-':
			sb.WriteRune('_')
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])):
			sb.WriteRune('_')
			sb.WriteRune(r)
		default:
			sb.WriteRune(unicode.ToUpper(r))
		}
	}
	return sb.String()
}
