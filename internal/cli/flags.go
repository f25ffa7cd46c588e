package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/spf13/pflag"
)

// clockFlag is an HH:MM flag value. Set rejects anything that does not parse
// as a time of day.
type clockFlag struct {
	value string
}

var _ pflag.Value = (*clockFlag)(nil)

func (f *clockFlag) String() string { return f.value }

func (f *clockFlag) Set(s string) error {
	s = strings.TrimSpace(s)
	tod, ok := domain.ParseTimeOfDay(s)
	if !ok {
		return fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	f.value = tod.String()
	return nil
}

func (f *clockFlag) Type() string { return "HH:MM" }

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(s string) error {
	switch f := outputFormat(strings.ToLower(s)); f {
	case outputTable, outputJSON, outputYAML:
		*o = f
		return nil
	default:
		return fmt.Errorf("unknown output format %q (valid: table, json, yaml)", s)
	}
}

func (o *outputFormat) Type() string { return "format" }
