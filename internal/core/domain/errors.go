package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildFileNotFound is returned when no build file can be found from the working directory upwards.
	ErrBuildFileNotFound = zerr.New("could not find rig.yaml")

	// ErrBuildFileReadFailed is returned when the build file cannot be read.
	ErrBuildFileReadFailed = zerr.New("failed to read build file")

	// ErrBuildFileParseFailed is returned when the build file cannot be parsed.
	ErrBuildFileParseFailed = zerr.New("failed to parse build file")

	// ErrFailedToGetRoot is returned when the build root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of build root")

	// ErrNoBuildDefinition is returned when the build factory yields no build definition.
	ErrNoBuildDefinition = zerr.New("no build definition was created")

	// ErrPhasePanicked is returned when a lifecycle phase panics.
	ErrPhasePanicked = zerr.New("unexpected panic")

	// ErrTargetAlreadyExists is returned when attempting to add a target with a name that already exists.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrMissingDependency is returned when a target references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the target dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not declared.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrNoTargets is returned when an invocation resolves to no targets at all.
	ErrNoTargets = zerr.New("no targets invoked")

	// ErrNoDefaultTarget is returned when no target was requested and the build file declares no default.
	ErrNoDefaultTarget = zerr.New("no default target declared")

	// ErrDefaultTargetNotFound is returned when the selected default target is not declared.
	ErrDefaultTargetNotFound = zerr.New("default target not found")

	// ErrInvalidTargetName is returned when a target name contains invalid characters.
	ErrInvalidTargetName = zerr.New("invalid target name")

	// ErrReservedTargetName is returned when a target uses a name reserved by the CLI.
	ErrReservedTargetName = zerr.New("target name is reserved")

	// ErrInvalidParameterName is returned when a parameter name contains invalid characters.
	ErrInvalidParameterName = zerr.New("invalid parameter name")

	// ErrReservedParameterName is returned when a parameter shadows a built-in argument.
	ErrReservedParameterName = zerr.New("parameter name is reserved")

	// ErrInvalidRequirement is returned when a requirement is not of the form kind:value.
	ErrInvalidRequirement = zerr.New("invalid requirement, expected 'param:<name>', 'env:<name>' or 'file:<path>'")

	// ErrUnknownRequirementParameter is returned when a requirement references an undeclared parameter.
	ErrUnknownRequirementParameter = zerr.New("requirement references an undeclared parameter")

	// ErrUnknownArgument is returned when the command line contains an unrecognised flag.
	ErrUnknownArgument = zerr.New("unknown argument")

	// ErrUnexpectedArgument is returned when a positional argument follows a flag.
	ErrUnexpectedArgument = zerr.New("unexpected argument")

	// ErrInvalidArgumentValue is returned when a flag value cannot be parsed.
	ErrInvalidArgumentValue = zerr.New("invalid value for argument")

	// ErrDuplicateParameter is returned when two parameter names differ only in case.
	ErrDuplicateParameter = zerr.New("parameter declared twice")

	// ErrMissingArgumentValue is returned when a flag that takes a value has none.
	ErrMissingArgumentValue = zerr.New("missing value for argument")

	// ErrInvalidParallelism is returned when the parallelism argument is not a positive integer.
	ErrInvalidParallelism = zerr.New("parallelism must be a positive integer")

	// ErrEnvFileLoadFailed is returned when the .env file exists but cannot be parsed.
	ErrEnvFileLoadFailed = zerr.New("failed to load .env file")

	// ErrRequirementNotMet is returned when a target's declared requirement does not hold.
	ErrRequirementNotMet = zerr.New("requirement not met")

	// ErrCommandFailed is returned when a target's command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrMetricsWriteFailed is returned when run metrics cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write run metrics")
)
