package document

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/go-playground/validator.v9"
	"gopkg.in/yaml.v3"
)

var check = validator.New()

func init() {
	check.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
}

// Parse decodes a document. The format is chosen by the file extension:
// .json, .yaml or .yml.
func Parse(filename string, src []byte, vars map[string]string) (*Document, error) {
	src, err := Interpolate(filename, src, vars)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
	case ".yaml", ".yml":
		src, err = yamlToJSON(src)
		if err != nil {
			return nil, errors.Wrap(err, filename)
		}
	default:
		return nil, errors.Errorf("%s: unsupported file extension %q", filename, ext)
	}

	return decode(filename, src)
}

func yamlToJSON(src []byte) ([]byte, error) {
	var v interface{}
	if err := yaml.Unmarshal(src, &v); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if v == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "convert yaml")
	}
	return b, nil
}

func decode(filename string, src []byte) (*Document, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return &Document{}, nil
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(src, &sections); err != nil {
		return nil, errors.Wrapf(err, "%s: decode document", filename)
	}
	var errs error
	for _, key := range sortedKeys(sections) {
		if key == metadataKey || isSection(key) {
			continue
		}
		errs = multierr.Append(errs, &UnknownSectionError{File: filename, Section: key})
	}
	if errs != nil {
		return nil, errs
	}

	doc := &Document{}
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, errors.Wrapf(err, "%s: decode document", filename)
	}

	if err := check.Struct(doc); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, errors.Wrapf(err, "%s: validate document", filename)
		}
		for _, fe := range verrs {
			errs = multierr.Append(errs, &FieldError{
				File:  filename,
				Field: strings.TrimPrefix(fe.Namespace(), "Document."),
				Tag:   fe.Tag(),
			})
		}
		return nil, errs
	}
	return doc, nil
}

func isSection(key string) bool {
	for _, s := range Sections {
		if s == key {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
