package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Veraticus/quota-sniper/internal/cli"
	"github.com/Veraticus/quota-sniper/internal/common"
	"github.com/Veraticus/quota-sniper/internal/config"
	"github.com/Veraticus/quota-sniper/internal/extract"
	"github.com/Veraticus/quota-sniper/internal/model"
	"github.com/spf13/viper"
)

// inputPath returns the listings file argument, or "" for stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// loadQuotas reads listings and extracts quotas with the configured vocabulary.
func loadQuotas(ctx context.Context, args []string, stdin io.Reader) ([]model.Quota, *config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	text, err := cli.ReadListings(ctx, inputPath(args), stdin)
	if err != nil {
		return nil, nil, err
	}

	quotas := extract.NewExtractor(cfg.Extraction).Extract(text)
	if len(quotas) == 0 {
		return nil, nil, common.NewUserError("no quota recognized in the listings", common.ErrEmptyExtraction)
	}
	return quotas, cfg, nil
}

// buyerConstraints reads the buyer's budget from flags, env and config.
func buyerConstraints() (model.Constraints, error) {
	c := model.Constraints{
		MinCredit:      viper.GetFloat64("buyer.min_credit"),
		MaxCredit:      viper.GetFloat64("buyer.max_credit"),
		MaxDownPayment: viper.GetFloat64("buyer.max_down_payment"),
		MaxInstallment: viper.GetFloat64("buyer.max_installment"),
		MaxCostRatio:   viper.GetFloat64("buyer.max_cost_ratio"),
		TypeFilter:     viper.GetString("buyer.type"),
	}

	required := []struct {
		flag  string
		value float64
	}{
		{"--max-credit", c.MaxCredit},
		{"--max-down-payment", c.MaxDownPayment},
		{"--max-installment", c.MaxInstallment},
	}
	for _, r := range required {
		if r.value <= 0 {
			return model.Constraints{}, common.NewUserError(fmt.Sprintf("%s must be greater than zero", r.flag), common.ErrInvalidConstraints)
		}
	}

	if err := c.Validate(); err != nil {
		return model.Constraints{}, common.NewUserError(err.Error(), common.ErrInvalidConstraints)
	}
	return c, nil
}
