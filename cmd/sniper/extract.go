package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/quota-sniper/internal/cli"
	"github.com/Veraticus/quota-sniper/internal/config"
	"github.com/Veraticus/quota-sniper/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Parse pasted listings into quotas",
		Long: `Parse marketplace listings into quotas and print them.

Listings are read from the file argument, or from stdin when it is omitted
or "-". Blocks that do not describe a usable offer are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().String("csv", "", "Also write the quotas to this CSV file")

	_ = viper.BindPFlag("extract.csv", cmd.Flags().Lookup("csv"))

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	quotas, _, err := loadQuotas(cmd.Context(), args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%d quotas extracted", len(quotas))))
	fmt.Fprintln(out, cli.RenderQuotaTable(quotas))

	if path := viper.GetString("extract.csv"); path != "" {
		w := &export.CSVWriter{}
		if err := w.WriteQuotasFile(config.ExpandPath(path), quotas); err != nil {
			return fmt.Errorf("failed to export quotas: %w", err)
		}
		slog.Info(cli.FormatSuccess("Quotas exported"), "path", path)
	}

	return nil
}
