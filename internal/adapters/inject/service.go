// Package inject populates build definitions with parameter values and
// invocation flags taken from the command line, the environment and .env files.
package inject

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvFileName is the dotenv file read from the build root.
const EnvFileName = ".env"

// Service implements ports.Injector.
//
// Values are applied from lowest to highest precedence: declared defaults,
// the .env file in the build root, the process environment, and finally the
// command line.
type Service struct {
	Logger ports.Logger
}

// NewService creates a new Service with the given logger.
func NewService(logger ports.Logger) *Service {
	return &Service{Logger: logger}
}

// Inject fills b in place from the sources of inv.
func (s *Service) Inject(_ context.Context, b *domain.Build, inv domain.Invocation) error {
	dotenv, err := readEnvFile(b.Root)
	if err != nil {
		return err
	}

	b.Env = environ(inv)
	for _, p := range b.Parameters {
		if v, ok := lookup(dotenv, p.Name); ok {
			b.Values[p.Name] = v
		}
		if v, ok := lookup(b.Env, p.Name); ok {
			b.Values[p.Name] = v
		}
	}

	if err := s.applyArguments(b, inv.Args); err != nil {
		return err
	}

	if b.Help || b.Graph {
		return nil
	}

	return checkRequired(b)
}

// skipAll is the value a bare --skip stands for.
const skipAll = "*"

// arguments holds the command line flags of one invocation.
type arguments struct {
	help        bool
	graph       bool
	targets     []string
	skip        []string
	parallelism int
	values      map[string]*string
}

// newFlagSet declares the built-in flags and one string flag per parameter.
// Flag names are matched case-insensitively.
func newFlagSet(b *domain.Build) (*pflag.FlagSet, *arguments, error) {
	fs := pflag.NewFlagSet("rig", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	a := &arguments{values: make(map[string]*string, len(b.Parameters))}
	fs.BoolVarP(&a.help, "help", "h", false, "show targets and parameters")
	fs.BoolVar(&a.graph, "graph", false, "show the dependency graph")
	fs.StringSliceVar(&a.targets, "target", nil, "targets to run")
	fs.StringSliceVar(&a.skip, "skip", nil, "targets to skip")
	fs.IntVar(&a.parallelism, "parallelism", 0, "maximum number of targets running at once")

	for _, p := range b.Parameters {
		if fs.Lookup(p.Name) != nil {
			return nil, nil, zerr.With(domain.ErrDuplicateParameter, "parameter_name", p.Name)
		}
		a.values[p.Name] = fs.String(p.Name, "", p.Description)
	}

	return fs, a, nil
}

func (s *Service) applyArguments(b *domain.Build, args []string) error {
	fs, a, err := newFlagSet(b)
	if err != nil {
		return err
	}

	args = expandBareSkip(args)
	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}
	// Positional target names are only accepted in front of the first flag.
	if extra := fs.Args()[leadingPositional(args):]; len(extra) > 0 {
		return zerr.With(domain.ErrUnexpectedArgument, "argument", extra[0])
	}

	b.Help = b.Help || a.help
	b.Graph = b.Graph || a.graph

	if fs.Changed("target") {
		if len(a.targets) == 0 {
			return zerr.With(domain.ErrMissingArgumentValue, "argument", "--target")
		}
		b.InvokedTargets = domain.InternStrings(a.targets)
	}

	if fs.Changed("parallelism") {
		if a.parallelism < 1 {
			return zerr.With(domain.ErrInvalidParallelism, "value", a.parallelism)
		}
		b.Parallelism = a.parallelism
	}

	for _, p := range b.Parameters {
		if !fs.Changed(p.Name) {
			continue
		}
		if p.Secret {
			s.Logger.Warn(fmt.Sprintf("secret parameter %s was passed on the command line", p.Name))
		}
		b.Values[p.Name] = *a.values[p.Name]
	}

	if !fs.Changed("skip") {
		return nil
	}
	if !slices.Contains(a.skip, skipAll) {
		b.SkippedTargets = append(b.SkippedTargets, domain.InternStrings(a.skip)...)
		return nil
	}
	// A bare --skip skips every target that was not invoked directly.
	for _, name := range b.Targets.Names() {
		if !slices.Contains(b.InvokedTargets, name) && !b.IsSkipped(name) {
			b.SkippedTargets = append(b.SkippedTargets, name)
		}
	}
	return nil
}

// expandBareSkip rewrites a --skip that has no value into --skip=*.
func expandBareSkip(args []string) []string {
	out := slices.Clone(args)
	for i, arg := range out {
		if !strings.EqualFold(arg, "--skip") {
			continue
		}
		if i+1 == len(out) || strings.HasPrefix(out[i+1], "-") {
			out[i] = "--skip=" + skipAll
		}
	}
	return out
}

func leadingPositional(args []string) int {
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return i
		}
	}
	return len(args)
}

// parseError converts a flag parsing error into one of the argument errors.
func parseError(err error) error {
	var (
		notExist      *pflag.NotExistError
		valueRequired *pflag.ValueRequiredError
		invalidValue  *pflag.InvalidValueError
		invalidSyntax *pflag.InvalidSyntaxError
	)

	switch {
	case errors.As(err, &notExist):
		return zerr.With(domain.ErrUnknownArgument, "argument", flagName(notExist.GetSpecifiedName(), notExist.GetSpecifiedShortnames()))
	case errors.As(err, &valueRequired):
		return zerr.With(domain.ErrMissingArgumentValue, "argument", flagName(valueRequired.GetSpecifiedName(), valueRequired.GetSpecifiedShortnames()))
	case errors.As(err, &invalidValue):
		if invalidValue.GetFlag().Name == "parallelism" {
			return zerr.With(domain.ErrInvalidParallelism, "value", invalidValue.GetValue())
		}
		return zerr.With(zerr.With(domain.ErrInvalidArgumentValue, "argument", "--"+invalidValue.GetFlag().Name), "value", invalidValue.GetValue())
	case errors.As(err, &invalidSyntax):
		return zerr.With(domain.ErrUnknownArgument, "argument", invalidSyntax.GetSpecifiedFlag())
	default:
		return zerr.Wrap(err, domain.ErrUnknownArgument.Error())
	}
}

func flagName(name, shorthands string) string {
	if shorthands != "" {
		return "-" + name
	}
	return "--" + name
}

func checkRequired(b *domain.Build) error {
	var errs []error
	for _, p := range b.Parameters {
		if !p.Required {
			continue
		}
		if v, ok := b.Value(p.Name); ok && v != "" {
			continue
		}
		errs = append(errs, zerr.New("missing parameter "+p.Name))
	}
	return errors.Join(errs...)
}

func readEnvFile(root string) (map[string]string, error) {
	path := filepath.Join(root, EnvFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "file", path)
	}
	return values, nil
}

func environ(inv domain.Invocation) map[string]string {
	env := make(map[string]string, len(inv.Environ))
	for _, kv := range inv.Environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// lookup finds the value of a parameter by its prefixed variable name or, failing that, by its exact name.
func lookup(source map[string]string, name string) (string, bool) {
	if v, ok := source[domain.EnvVar(name)]; ok {
		return v, true
	}
	v, ok := source[name]
	return v, ok
}
