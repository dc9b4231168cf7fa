package plan

import (
	"context"

	"github.com/confimport/confimport/object"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// A Validator checks that a configuration can be imported.
type Validator struct {
	// Logger is used for logging. If not set, logs are discarded.
	Logger *zap.Logger
}

// ValidationResult contains the findings of a successful validation.
type ValidationResult struct {
	// Resolved holds every reference looked up in the repository during
	// validation. Absent objects map to nil.
	Resolved map[object.Reference]*object.Record

	// Unchangeable lists existing objects whose desired state changes fields
	// that cannot be changed.
	Unchangeable []UnchangeableProperties
}

// Validate checks that every dependency resolves either in the
// configuration or in the repository, and that every object that does not
// exist yet has all mandatory properties set.
//
// All violations are collected before returning. The returned error wraps an
// *UnresolvedReferenceError, a *MandatoryPropertiesError or both, combined
// with multierr.
func (v *Validator) Validate(ctx context.Context, cfg *object.Configuration, repo Repository) (*ValidationResult, error) {
	logger := v.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	res := &ValidationResult{Resolved: make(map[object.Reference]*object.Record)}
	resolve := func(ref object.Reference) (*object.Record, error) {
		if rec, ok := res.Resolved[ref]; ok {
			return rec, nil
		}
		rec, err := repo.Resolve(ctx, ref)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve %s", ref.ConsoleString())
		}
		res.Resolved[ref] = rec
		return rec, nil
	}

	var (
		missingDeps  []MissingDependency
		missingProps []MissingProperties
	)
	for _, obj := range cfg.Objects() {
		ref := obj.Reference()
		existing, err := resolve(ref)
		if err != nil {
			return nil, err
		}

		if existing == nil {
			if fields := obj.MandatoryProperties(); len(fields) > 0 {
				missingProps = append(missingProps, MissingProperties{Object: ref, Fields: fields})
			}
		} else if fields := obj.UnchangeableProperties(existing); len(fields) > 0 {
			logger.Warn("Unchangeable properties differ",
				zap.String("ref", ref.ConsoleString()),
				zap.Strings("fields", fields),
			)
			res.Unchangeable = append(res.Unchangeable, UnchangeableProperties{Object: ref, Fields: fields})
		}

		for _, dep := range obj.Dependencies() {
			if cfg.Has(dep) {
				continue
			}
			rec, err := resolve(dep)
			if err != nil {
				return nil, err
			}
			if rec == nil {
				missingDeps = append(missingDeps, MissingDependency{Object: ref, Reference: dep})
			}
		}
	}

	var errs error
	if len(missingDeps) > 0 {
		errs = multierr.Append(errs, &UnresolvedReferenceError{Missing: missingDeps})
	}
	if len(missingProps) > 0 {
		errs = multierr.Append(errs, &MandatoryPropertiesError{Missing: missingProps})
	}
	if errs != nil {
		logger.Debug("Validation failed",
			zap.Int("missing_dependencies", len(missingDeps)),
			zap.Int("missing_properties", len(missingProps)),
		)
		return nil, errs
	}
	return res, nil
}
