package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/adcworks/adcsetup/internal/setupparam"
)

func calcCmd() *cobra.Command {
	var opts inputOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the full setup-parameter set for a request",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, def, err := runCalculation(&opts)
			if err != nil {
				return err
			}
			printResult(def, res)
			return nil
		},
	}
	addInputFlags(cmd.Flags(), &opts)
	return cmd
}

// runCalculation resolves the SP type, loads inputs, and runs the engine.
// Shared by calc and explain.
func runCalculation(opts *inputOptions) (*setupparam.Result, setupparam.Definition, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, setupparam.Definition{}, err
	}

	def, err := buildRegistry().Resolve(opts.spType)
	if err != nil {
		return nil, setupparam.Definition{}, err
	}

	request, err := loadRecord(opts.requestPath)
	if err != nil {
		return nil, setupparam.Definition{}, err
	}
	operator, err := opts.operatorInputs()
	if err != nil {
		return nil, setupparam.Definition{}, err
	}
	operator = cfg.MergeOperatorDefaults(opts.spType, operator)

	res, err := def.Calculate(setupparam.Inputs{Request: request, Operator: operator})
	if err != nil {
		return nil, setupparam.Definition{}, err
	}

	log.Info().Str("sp_type", opts.spType).Int("fields", def.Catalog.Len()).Msg("calculation complete")
	return res, def, nil
}

func printResult(def setupparam.Definition, res *setupparam.Result) {
	currentGroup := ""
	for _, item := range res.Items() {
		if item.Meta.Group != currentGroup {
			currentGroup = item.Meta.Group
			title := def.GroupTitles[currentGroup]
			if title == "" {
				title = currentGroup
			}
			fmt.Printf("\n%s\n", title)
		}

		name := item.Meta.DisplayName
		if item.Meta.Unit != "" {
			name = fmt.Sprintf("%s (%s)", name, item.Meta.Unit)
		}
		marker := "  "
		if item.Meta.Important {
			marker = "* "
		}
		fmt.Printf("%s%-48s %s\n", marker, name, item.Value.Format())
	}
}
