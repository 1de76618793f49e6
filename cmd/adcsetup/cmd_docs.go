package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/adcworks/adcsetup/internal/setupparam"
)

func docsCmd() *cobra.Command {
	var spType string
	var outPath string

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render the field catalog as markdown reference documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := buildRegistry().Resolve(spType)
			if err != nil {
				return err
			}

			doc := setupparam.RenderCatalogMarkdown(def.Catalog, def.GroupTitles)
			if outPath == "" {
				fmt.Print(doc)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("failed to write docs: %w", err)
			}
			log.Info().Str("sp_type", spType).Str("path", outPath).Msg("catalog documentation written")
			return nil
		},
	}
	cmd.Flags().StringVar(&spType, "type", "DAR8", "SP type variant")
	cmd.Flags().StringVar(&outPath, "out", "", "output file, stdout when empty")
	return cmd
}
