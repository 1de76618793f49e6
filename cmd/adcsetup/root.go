package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/adcworks/adcsetup/internal/config"
	"github.com/adcworks/adcsetup/internal/setupparam"
	"github.com/adcworks/adcsetup/internal/setupparam/dar8"
)

var configPath string

// Execute runs the adcsetup CLI.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "adcsetup",
		Short: "Setup-parameter calculations for bioconjugation protocols",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to adcsetup YAML config")

	root.AddCommand(calcCmd())
	root.AddCommand(explainCmd())
	root.AddCommand(docsCmd())
	root.AddCommand(typesCmd())
	root.AddCommand(serveCmd(ctx))
	return root.ExecuteContext(ctx)
}

// buildRegistry wires the concrete SP variants and declares the planned ones.
func buildRegistry() *setupparam.TypeRegistry {
	reg := setupparam.NewTypeRegistry()
	reg.MustRegister("DAR8", dar8.Definition())
	for _, name := range []string{"DAR4", "Deblocking", "Thiomab"} {
		reg.Declare(name)
	}
	return reg
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}
