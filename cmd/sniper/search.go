package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/quota-sniper/internal/cli"
	"github.com/Veraticus/quota-sniper/internal/config"
	"github.com/Veraticus/quota-sniper/internal/export"
	"github.com/Veraticus/quota-sniper/internal/match"
	"github.com/Veraticus/quota-sniper/internal/model"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [file]",
		Short: "Find quota bundles that fit a budget",
		Long: `Parse marketplace listings, then search every administrator's quotas for
bundles of up to six quotas whose combined credit, down payment and
installment fit the buyer's budget. Bundles are ranked by real cost: the
premium paid over the credit through down payment and remaining balance.

Down payment and installment ceilings allow 5% slack.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSearch,
	}

	// Budget flags
	cmd.Flags().Float64("min-credit", 0, "Minimum combined credit")
	cmd.Flags().Float64("max-credit", 0, "Maximum combined credit (required)")
	cmd.Flags().Float64("max-down-payment", 0, "Maximum combined down payment (required)")
	cmd.Flags().Float64("max-installment", 0, "Maximum combined installment (required)")
	cmd.Flags().Float64("max-cost-ratio", 0.5, "Maximum real cost as a fraction of credit (0.5 = 50%)")
	cmd.Flags().String("type", model.TypeFilterAll, "Asset type: all, Property, Vehicle, Heavy or General")

	// Output flags
	cmd.Flags().Int("limit", 50, "Show at most this many bundles (0 shows all)")
	cmd.Flags().String("csv", "", "Also write every bundle to this CSV file")

	// Bind to viper
	_ = viper.BindPFlag("buyer.min_credit", cmd.Flags().Lookup("min-credit"))
	_ = viper.BindPFlag("buyer.max_credit", cmd.Flags().Lookup("max-credit"))
	_ = viper.BindPFlag("buyer.max_down_payment", cmd.Flags().Lookup("max-down-payment"))
	_ = viper.BindPFlag("buyer.max_installment", cmd.Flags().Lookup("max-installment"))
	_ = viper.BindPFlag("buyer.max_cost_ratio", cmd.Flags().Lookup("max-cost-ratio"))
	_ = viper.BindPFlag("buyer.type", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("report.limit", cmd.Flags().Lookup("limit"))
	_ = viper.BindPFlag("report.csv", cmd.Flags().Lookup("csv"))

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	constraints, err := buyerConstraints()
	if err != nil {
		return err
	}

	quotas, cfg, err := loadQuotas(cmd.Context(), args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := slog.With("run_id", runID)
	logger.Info("Searching bundles",
		"quotas", len(quotas),
		"max_combo_size", cfg.Search.MaxComboSize,
		"max_combinations", cfg.Search.MaxCombinations)

	bar := cli.NewProgressBar(cmd.ErrOrStderr())
	result := match.New(cfg.Search).Search(quotas, constraints, bar)
	bar.Finish()

	rows := make([]model.CombinationResult, len(result.Rows))
	copy(rows, result.Rows)
	match.SortByCost(rows)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Administrator pools"))
	fmt.Fprintln(out, cli.RenderPoolSummary(result.Pools))
	if result.Capped() {
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf(
			"Some pools hit the %d combination cap; cheaper bundles may exist beyond it",
			cfg.Search.MaxCombinations)))
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("No bundle fits the budget"))
	} else {
		fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%d bundles found", len(rows))))
		fmt.Fprintln(out, cli.RenderResultTable(rows, viper.GetInt("report.limit")))
	}

	if path := viper.GetString("report.csv"); path != "" {
		w := &export.CSVWriter{IncludeHeader: true, RunID: runID}
		if err := w.WriteResultsFile(config.ExpandPath(path), rows); err != nil {
			return fmt.Errorf("failed to export bundles: %w", err)
		}
		logger.Info(cli.FormatSuccess("Bundles exported"), "path", path, "rows", len(rows))
	}

	return nil
}
