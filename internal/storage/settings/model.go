package settings

const DefaultBudgetWarningThreshold = 80

type Settings struct {
	Currency               string `json:"currency"`
	Notifications          bool   `json:"notifications"`
	BudgetWarningThreshold int    `json:"budgetWarningThreshold"`
}

func Default() Settings {
	return Settings{
		Currency:               "USD",
		Notifications:          true,
		BudgetWarningThreshold: DefaultBudgetWarningThreshold,
	}
}
