// Package requirement checks the declared pre-conditions of executable targets.
package requirement

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validator implements ports.RequirementValidator.
// Environment requirements are checked against the invocation environment
// carried by the build, file requirements against the file system.
type Validator struct{}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks every requirement of every target that is not skipped.
// All unmet requirements are joined into one error.
func (v *Validator) Validate(_ context.Context, targets []*domain.ExecutableTarget, b *domain.Build) error {
	var errs []error
	for _, et := range targets {
		if et.Status() == domain.StatusSkipped {
			continue
		}
		for _, req := range et.Target.Requirements {
			if holds(req, b) {
				continue
			}
			err := zerr.With(domain.ErrRequirementNotMet, "requirement", req.String())
			errs = append(errs, zerr.With(err, "target", et.Name().String()))
		}
	}
	return errors.Join(errs...)
}

func holds(req domain.Requirement, b *domain.Build) bool {
	switch req.Kind {
	case domain.RequirementParameter:
		value, ok := b.Value(req.Value)
		return ok && value != ""
	case domain.RequirementEnv:
		_, ok := b.Env[req.Value]
		return ok
	case domain.RequirementFile:
		path := req.Value
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.Root, path)
		}
		_, err := os.Stat(path)
		return err == nil
	default:
		return false
	}
}
