package document

import (
	"context"
	"io/ioutil"
	"strings"

	"github.com/confimport/confimport/object"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// A Loader reads documents from disk and merges them into a configuration.
//
// The zero value is ready to load files without variables.
type Loader struct {
	// Variables are the values available for interpolation.
	Variables map[string]string

	// Logger is used for logging. If not set, logs are discarded.
	Logger *zap.Logger
}

// Load reads and decodes the given files concurrently. Documents are merged
// in argument order. Decoding errors of all files are reported together.
func (l *Loader) Load(ctx context.Context, files ...string) (*object.Configuration, error) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	docs := make([]*Document, len(files))
	errs := make([]error, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := ioutil.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "read %s", name)
			}
			docs[i], errs[i] = Parse(name, src, l.Variables)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	var objs []object.Object
	for i, doc := range docs {
		logger.Debug("Loaded document",
			zap.String("file", files[i]),
			zap.Int("count", doc.Len()),
			zap.Any("metadata", doc.Metadata),
		)
		objs = append(objs, doc.Objects()...)
	}
	cfg, err := object.NewConfiguration(objs...)
	if err != nil {
		return nil, err
	}
	logger.Info("Configuration loaded", zap.Int("files", len(files)), zap.Int("count", cfg.Len()))
	return cfg, nil
}

// Variables builds the interpolation variables from environment entries and
// name=value assignments. Assignments take precedence.
func Variables(env, assignments []string) (map[string]string, error) {
	vars := make(map[string]string, len(env)+len(assignments))
	for _, kv := range env {
		if i := strings.IndexByte(kv, '='); i > 0 {
			vars[kv[:i]] = kv[i+1:]
		}
	}
	for _, kv := range assignments {
		i := strings.IndexByte(kv, '=')
		if i <= 0 {
			return nil, errors.Errorf("invalid variable %q, expected name=value", kv)
		}
		vars[kv[:i]] = kv[i+1:]
	}
	return vars, nil
}
