// Package profile loads and validates the YAML conversion profile: the
// CSV dialect, column-to-field mapping, account metadata, balances,
// statement period and per-row review decisions for one conversion.
package profile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/daterange"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/model"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/normalize"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/txbuilder"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("decimalsep", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "." || s == ","
	})
}

// Profile is the top-level csv2ofx.yaml configuration. It is built once
// and passed into the pipeline as read-only input.
type Profile struct {
	Source  SourceConfig  `yaml:"source"`
	Mapping MappingConfig `yaml:"mapping"`
	Account AccountConfig `yaml:"account"`
	Balance BalanceConfig `yaml:"balance"`
	Period  PeriodConfig  `yaml:"period"`
	Review  ReviewConfig  `yaml:"review"`
}

// SourceConfig describes the CSV dialect of the input file.
type SourceConfig struct {
	Delimiter        string `yaml:"delimiter" validate:"required,len=1"`
	DecimalSeparator string `yaml:"decimal_separator" validate:"required,decimalsep"`
	InvertValues     bool   `yaml:"invert_values"`
}

// MappingConfig names which source columns feed each transaction field.
type MappingConfig struct {
	Date                 string   `yaml:"date" validate:"required"`
	Amount               string   `yaml:"amount" validate:"required"`
	Description          string   `yaml:"description"`
	DescriptionColumns   []string `yaml:"description_columns"`
	DescriptionSeparator string   `yaml:"description_separator"`
	UseComposite         bool     `yaml:"use_composite"`
	Type                 string   `yaml:"type"` // optional DEBIT/CREDIT column
	ID                   string   `yaml:"id"`   // optional external id column
}

// AccountConfig identifies the statement account.
type AccountConfig struct {
	ID       string `yaml:"id" validate:"required"`
	Bank     string `yaml:"bank" validate:"required"`
	Currency string `yaml:"currency" validate:"required,len=3"`
}

// BalanceConfig holds the opening balance and an optional explicit
// closing balance, both as plain decimal strings.
type BalanceConfig struct {
	Initial string `yaml:"initial"`
	Final   string `yaml:"final,omitempty"`
}

// PeriodConfig is the optional statement period for date validation.
type PeriodConfig struct {
	Enabled bool   `yaml:"enabled"`
	Start   string `yaml:"start,omitempty"`
	End     string `yaml:"end,omitempty"`
}

// ReviewConfig carries the user's per-row choices gathered before
// conversion: rows to drop entirely and explicit out-of-range decisions.
type ReviewConfig struct {
	DeletedRows []int          `yaml:"deleted_rows,omitempty"`
	Decisions   map[int]string `yaml:"decisions,omitempty"` // row index -> keep|adjust|exclude
}

// Load reads and validates a profile file. Any configuration problem is
// reported here, before a single row is processed.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes a profile to a YAML file.
func Save(path string, p *Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Default returns a starter profile for a Brazilian-dialect export.
func Default() *Profile {
	return &Profile{
		Source: SourceConfig{
			Delimiter:        ";",
			DecimalSeparator: ",",
		},
		Mapping: MappingConfig{
			Date:        "Data",
			Amount:      "Valor",
			Description: "Descricao",
		},
		Account: AccountConfig{
			ID:       "00000",
			Bank:     "Banco",
			Currency: "BRL",
		},
		Balance: BalanceConfig{
			Initial: "0.00",
		},
	}
}

// Validate checks structural constraints plus every derived value the
// pipeline will need, so conversion never starts with a broken profile.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if _, err := p.InitialBalance(); err != nil {
		return err
	}
	if _, err := p.ManualFinal(); err != nil {
		return err
	}
	if _, err := p.PeriodRange(); err != nil {
		return err
	}
	if _, err := p.DecisionMap(); err != nil {
		return err
	}
	return nil
}

// Delimiter returns the CSV field delimiter as a rune.
func (p *Profile) Delimiter() rune {
	return []rune(p.Source.Delimiter)[0]
}

// InitialBalance parses the opening balance; empty means zero.
func (p *Profile) InitialBalance() (decimal.Decimal, error) {
	if p.Balance.Initial == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(p.Balance.Initial)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid initial balance %q: %w", p.Balance.Initial, err)
	}
	return d, nil
}

// ManualFinal parses the optional explicit closing balance; nil when the
// profile leaves it blank.
func (p *Profile) ManualFinal() (*decimal.Decimal, error) {
	if p.Balance.Final == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(p.Balance.Final)
	if err != nil {
		return nil, fmt.Errorf("invalid final balance %q: %w", p.Balance.Final, err)
	}
	return &d, nil
}

// PeriodRange builds the statement period, or nil when validation is
// disabled. A start after end is rejected here, aborting the run before
// any row is touched.
func (p *Profile) PeriodRange() (*daterange.Range, error) {
	if !p.Period.Enabled {
		return nil, nil
	}
	start, err := normalize.Date(p.Period.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid period start: %w", err)
	}
	end, err := normalize.Date(p.Period.End)
	if err != nil {
		return nil, fmt.Errorf("invalid period end: %w", err)
	}
	r, err := daterange.New(start, end)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DeletedSet returns the user exclusion set keyed by row index.
func (p *Profile) DeletedSet() map[int]bool {
	set := make(map[int]bool, len(p.Review.DeletedRows))
	for _, idx := range p.Review.DeletedRows {
		set[idx] = true
	}
	return set
}

// DecisionMap converts the review decisions into typed values.
func (p *Profile) DecisionMap() (map[int]model.Decision, error) {
	out := make(map[int]model.Decision, len(p.Review.Decisions))
	for idx, raw := range p.Review.Decisions {
		d, err := model.ParseDecision(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", idx, err)
		}
		out[idx] = d
	}
	return out, nil
}

// BuilderSpec assembles the transaction-builder mapping from the profile.
func (p *Profile) BuilderSpec() txbuilder.Spec {
	return txbuilder.Spec{
		DateColumn:   p.Mapping.Date,
		AmountColumn: p.Mapping.Amount,
		Description: txbuilder.DescriptionSpec{
			Column:           p.Mapping.Description,
			CompositeColumns: p.Mapping.DescriptionColumns,
			Separator:        p.Mapping.DescriptionSeparator,
			UseComposite:     p.Mapping.UseComposite,
		},
		TypeColumn:       p.Mapping.Type,
		IDColumn:         p.Mapping.ID,
		DecimalSeparator: p.Source.DecimalSeparator,
		InvertValues:     p.Source.InvertValues,
		AccountID:        p.Account.ID,
	}
}
