package rtr

import "time"

// Transaction is a financial transaction booked against a customer account.
type Transaction struct {
	ID                int            `json:"id"                          yaml:"id"`
	Amount            int            `json:"amount"                      yaml:"amount"`
	Customer          string         `json:"customer"                    yaml:"customer"`
	Date              time.Time      `json:"date"                        yaml:"date"`
	Currency          string         `json:"currency"                    yaml:"currency"`
	ProcessID         int            `json:"processId"                   yaml:"processId"`
	ProcessType       string         `json:"processType"                 yaml:"processType"`
	ProcessIdentifier string         `json:"processIdentifier"           yaml:"processIdentifier"`
	ProcessAction     string         `json:"processAction"               yaml:"processAction"`
	ChargesPerAccount map[string]int `json:"chargesPerAccount,omitempty" yaml:"chargesPerAccount,omitempty"`
	Billables         []Billable     `json:"billables,omitempty"         yaml:"billables,omitempty"`
}

// ExchangeRate lists conversion rates from one currency to others.
type ExchangeRate struct {
	Currency      string             `json:"currency"      yaml:"currency"`
	ExchangeRates map[string]float64 `json:"exchangerates" yaml:"exchangerates"`
}

// AccountBalance is the balance of one currency account.
type AccountBalance struct {
	Balance     int    `json:"balance"               yaml:"balance"`
	Currency    string `json:"currency"              yaml:"currency"`
	Reservation int    `json:"reservation,omitempty" yaml:"reservation,omitempty"`
}

// Credit lists the accounts of a customer.
type Credit struct {
	Accounts []AccountBalance `json:"accounts" yaml:"accounts"`
}

// Price is the price of one product action.
type Price struct {
	Product  string         `json:"product"  yaml:"product"`
	Action   BillableAction `json:"action"   yaml:"action"`
	Currency string         `json:"currency" yaml:"currency"`
	Price    int            `json:"price"    yaml:"price"`
}

// PriceChange is a scheduled price.
type PriceChange struct {
	Price `yaml:",inline"`

	FromDate time.Time `json:"fromDate" yaml:"fromDate"`
}

// Promo is a temporary promotional price.
type Promo struct {
	PriceChange `yaml:",inline"`

	EndDate time.Time `json:"endDate" yaml:"endDate"`
	Active  bool      `json:"active"  yaml:"active"`
}

// PriceList holds the current prices of a customer together with scheduled
// changes and promotions.
type PriceList struct {
	Prices       []Price       `json:"prices"                 yaml:"prices"`
	PriceChanges []PriceChange `json:"priceChanges,omitempty" yaml:"priceChanges,omitempty"`
	Promos       []Promo       `json:"promos,omitempty"       yaml:"promos,omitempty"`
}
