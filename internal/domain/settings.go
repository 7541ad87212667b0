package domain

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// BudgetPercentages overrides the default 50/30/20 split, in whole percents
type BudgetPercentages struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// Valid reports whether every share is within 0..100 and the shares add up to 100
func (p BudgetPercentages) Valid() bool {
	for _, v := range []float64{p.Needs, p.Wants, p.Savings} {
		if v < 0 || v > 100 {
			return false
		}
	}
	sum := p.Needs + p.Wants + p.Savings
	return sum > 99.999 && sum < 100.001
}

type Settings struct {
	Theme             Theme              `json:"theme"`
	Currency          string             `json:"currency"`
	BudgetPercentages *BudgetPercentages `json:"budgetPercentages,omitempty"`
}

// DefaultSettings returns the settings used when none are stored
func DefaultSettings() *Settings {
	return &Settings{
		Theme:    ThemeSystem,
		Currency: "EUR",
	}
}

type SettingsRepository interface {
	Get() (*Settings, error)
	Save(settings *Settings) (*Settings, error)
}
