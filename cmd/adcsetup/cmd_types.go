package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List SP type variants and their support status",
		Run: func(cmd *cobra.Command, args []string) {
			reg := buildRegistry()
			for _, name := range reg.Types() {
				status := "not yet supported"
				if reg.Supported(name) {
					status = "supported"
				}
				fmt.Printf("%-12s %s\n", name, status)
			}
		},
	}
}
