package document

import (
	"github.com/hashicorp/hcl2/hcl"
	"github.com/hashicorp/hcl2/hcl/hclsyntax"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"go.uber.org/multierr"
)

// Interpolate evaluates src as a template, replacing ${name} with the value
// of the variable. All undefined variables are reported.
//
// Values are inserted verbatim, without JSON or YAML quoting, so a value
// containing quotes or newlines changes the document structure.
func Interpolate(filename string, src []byte, vars map[string]string) ([]byte, error) {
	expr, diags := hclsyntax.ParseTemplate(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, "parse template")
	}

	values := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		values[k] = cty.StringVal(v)
	}

	var errs error
	for _, t := range expr.Variables() {
		name := t.RootName()
		if _, ok := values[name]; ok {
			continue
		}
		rng := t.SourceRange()
		errs = multierr.Append(errs, &UndefinedVariableError{
			Name:   name,
			File:   rng.Filename,
			Line:   rng.Start.Line,
			Column: rng.Start.Column,
		})
	}
	if errs != nil {
		return nil, errs
	}

	val, diags := expr.Value(&hcl.EvalContext{Variables: values})
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, "evaluate template")
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, errors.Wrap(err, "convert template result")
	}
	if val.IsNull() {
		return nil, nil
	}
	return []byte(val.AsString()), nil
}
