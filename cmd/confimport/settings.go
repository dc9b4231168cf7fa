package main

import (
	"os"

	"github.com/confimport/confimport/document"
	"github.com/confimport/confimport/storage/kvbackend"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/go-playground/validator.v9"
)

type settings struct {
	State       string `validate:"required_without=Memory"`
	Memory      bool
	LogLevel    string `validate:"oneof=debug info warn error"`
	MetricsFile string
	Vars        []string `validate:"dive,contains=="`
	EnvVars     bool
}

var check = validator.New()

func readSettings(flags *pflag.FlagSet) (*settings, error) {
	s := &settings{}
	var err error
	if s.State, err = flags.GetString("state"); err != nil {
		return nil, err
	}
	if s.Memory, err = flags.GetBool("memory"); err != nil {
		return nil, err
	}
	if s.LogLevel, err = flags.GetString("log-level"); err != nil {
		return nil, err
	}
	if s.MetricsFile, err = flags.GetString("metrics-file"); err != nil {
		return nil, err
	}
	if s.Vars, err = flags.GetStringArray("var"); err != nil {
		return nil, err
	}
	if s.EnvVars, err = flags.GetBool("env-vars"); err != nil {
		return nil, err
	}
	if s.State == "" && !s.Memory {
		// Left empty when the home directory is unknown; validate reports it.
		s.State, _ = kvbackend.DefaultBoltFile()
	}
	return s, nil
}

func (s *settings) validate() error {
	err := check.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(err, "validate settings")
	}
	switch fe := verrs[0]; fe.Tag() {
	case "required_without":
		return errors.New("--state must be set when --memory is not used")
	case "oneof":
		return errors.Errorf("invalid --log-level %q", s.LogLevel)
	case "contains":
		return errors.Errorf("invalid --var %q, expected name=value", fe.Value())
	default:
		return errors.Wrap(err, "validate settings")
	}
}

// variables returns the interpolation variables.
func (s *settings) variables() (map[string]string, error) {
	var env []string
	if s.EnvVars {
		env = os.Environ()
	}
	return document.Variables(env, s.Vars)
}
