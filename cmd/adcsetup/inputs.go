package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// inputOptions are the flags shared by calc and explain: where the request
// record comes from and how the operator inputs are supplied.
type inputOptions struct {
	spType       string
	requestPath  string
	operatorPath string
	sets         []string
}

func addInputFlags(fs *pflag.FlagSet, o *inputOptions) {
	fs.StringVar(&o.spType, "type", "DAR8", "SP type variant")
	fs.StringVar(&o.requestPath, "request", "", "path to the request record (YAML or JSON)")
	fs.StringVar(&o.operatorPath, "operator", "", "path to an operator inputs file (YAML or JSON)")
	fs.StringArrayVar(&o.sets, "set", nil, "operator input as key=value, repeatable")
}

// loadRecord reads a flat key-value record from a YAML or JSON file.
func loadRecord(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	record := map[string]any{}
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to parse record JSON: %w", err)
		}
		return record, nil
	}
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse record YAML: %w", err)
	}
	return record, nil
}

// operatorInputs combines an optional operator file with --set overrides.
func (o *inputOptions) operatorInputs() (map[string]any, error) {
	operator, err := loadRecord(o.operatorPath)
	if err != nil {
		return nil, err
	}
	for _, kv := range o.sets {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want key=value", kv)
		}
		operator[key] = value
	}
	return operator, nil
}
