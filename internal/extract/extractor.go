// Package extract turns pasted marketplace listings into quota records.
package extract

import (
	"log/slog"

	"github.com/Veraticus/quota-sniper/internal/model"
)

// balanceEstimateFactor estimates what is still owed when a block lists no
// installment plan: credit*1.3 minus the down payment.
const balanceEstimateFactor = 1.3

// Config holds the vocabulary the extractor recognizes.
type Config struct {
	CurrencyMarker  string     `mapstructure:"currency_marker"`
	Administrators  []string   `mapstructure:"administrators"` // first match wins
	SegmentKeywords []string   `mapstructure:"segment_keywords"`
	TypeRules       []TypeRule `mapstructure:"type_rules"` // first match wins
}

// DefaultConfig returns the vocabulary of the Brazilian contemplated-quota marketplaces.
func DefaultConfig() Config {
	return Config{
		CurrencyMarker: "r$",
		Administrators: []string{
			"BRADESCO", "SANTANDER", "ITAÚ", "ITAU", "PORTO", "CAIXA",
			"BANCO DO BRASIL", "BB", "RODOBENS", "EMBRACON", "ANCORA", "ÂNCORA",
			"MYCON", "SICREDI", "SICOOB", "MAPFRE", "HS", "YAMAHA", "ZEMA",
			"BANCORBRÁS", "BANCORBRAS", "SERVOPA",
		},
		SegmentKeywords: []string{
			"imóvel", "imovel", "automóvel", "automovel", "veículo", "caminhão", "moto",
			"directions", "selecionar",
		},
		TypeRules: []TypeRule{
			{Type: model.AssetProperty, Keywords: []string{"imóvel", "imovel"}},
			{Type: model.AssetVehicle, Keywords: []string{"automóvel", "automovel", "veículo", "carro"}},
			{Type: model.AssetHeavy, Keywords: []string{"caminhão", "pesado"}},
			{Type: model.AssetVehicle, Keywords: []string{"moto"}},
			{Type: model.AssetVehicle, Keywords: []string{"directions_car"}},
		},
	}
}

// Extractor parses pasted listings with a fixed vocabulary.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor. Empty fields of cfg fall back to DefaultConfig.
func NewExtractor(cfg Config) *Extractor {
	def := DefaultConfig()
	if cfg.CurrencyMarker == "" {
		cfg.CurrencyMarker = def.CurrencyMarker
	}
	if len(cfg.Administrators) == 0 {
		cfg.Administrators = def.Administrators
	}
	if len(cfg.SegmentKeywords) == 0 {
		cfg.SegmentKeywords = def.SegmentKeywords
	}
	if len(cfg.TypeRules) == 0 {
		cfg.TypeRules = def.TypeRules
	}
	return &Extractor{cfg: cfg}
}

// Config returns the vocabulary in use.
func (e *Extractor) Config() Config {
	return e.cfg
}

// Extract returns the quotas found in text, numbered from 1 in the order they
// appear. Blocks that do not yield a valid quota are skipped.
func (e *Extractor) Extract(text string) []model.Quota {
	blocks := Segment(text, e.cfg.SegmentKeywords)

	quotas := make([]model.Quota, 0, len(blocks))
	var skipped int
	for _, block := range blocks {
		q, ok := e.ParseBlock(block)
		if !ok {
			skipped++
			continue
		}
		q.ID = len(quotas) + 1
		quotas = append(quotas, q)
	}

	slog.Debug("Extracted quotas",
		"blocks", len(blocks),
		"quotas", len(quotas),
		"skipped", skipped)

	return quotas
}

// ParseBlock reads one block. The returned quota has no ID; ok is false when
// the block does not describe a usable offer.
func (e *Extractor) ParseBlock(block string) (model.Quota, bool) {
	admin := DetectAdmin(block, e.cfg.Administrators)
	if admin == model.AdminOther && !HasCurrencyMarker(block, e.cfg.CurrencyMarker) {
		return model.Quota{}, false
	}

	credit := ExtractCredit(block)
	downPayment := ExtractDownPayment(block)
	schedule := ExtractSchedule(block)

	q := model.Quota{
		Admin:             admin,
		Type:              ClassifyType(block, e.cfg.TypeRules),
		Credit:            credit.Value,
		CreditSource:      credit.Source,
		DownPayment:       downPayment.Value,
		DownPaymentSource: downPayment.Source,
		Installment:       schedule.Installment,
		Term:              schedule.Term,
		RemainingBalance:  schedule.RemainingBalance,
		BalanceSource:     model.SourceSchedule,
	}
	if err := q.Validate(); err != nil {
		slog.Debug("Skipping block", "admin", admin, "reason", err)
		return model.Quota{}, false
	}

	if q.RemainingBalance == 0 {
		q.RemainingBalance = q.Credit*balanceEstimateFactor - q.DownPayment
		q.BalanceSource = model.SourceEstimated
	}
	return q, true
}
