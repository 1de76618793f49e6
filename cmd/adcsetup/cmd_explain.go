package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adcworks/adcsetup/internal/setupparam"
)

func explainCmd() *cobra.Command {
	var opts inputOptions
	var key string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain one computed field: value, formula, and direct dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := runCalculation(&opts)
			if err != nil {
				return err
			}
			exp, err := setupparam.Explain(res, key)
			if err != nil {
				return err
			}
			fmt.Print(exp.Render())
			return nil
		},
	}
	addInputFlags(cmd.Flags(), &opts)
	cmd.Flags().StringVar(&key, "key", "", "field key to explain")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
