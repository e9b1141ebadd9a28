package model

// Contract is the summary record shown in the contracts table.
type Contract struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Parties string `json:"parties" yaml:"parties"`
	Expiry  string `json:"expiry" yaml:"expiry"`
	Status  string `json:"status" yaml:"status"`
	Risk    string `json:"risk" yaml:"risk"`
}

// ContractDetail is the full record for the detail view.
type ContractDetail struct {
	Contract `yaml:",inline"`
	Start    string     `json:"start" yaml:"start"`
	Clauses  []Clause   `json:"clauses" yaml:"clauses"`
	Insights []Insight  `json:"insights" yaml:"insights"`
	Evidence []Evidence `json:"evidence" yaml:"evidence"`
}

// Clause is an extracted contract clause with an extraction confidence.
type Clause struct {
	Title      string  `json:"title" yaml:"title"`
	Summary    string  `json:"summary" yaml:"summary"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Insight is a risk finding attached to a contract.
type Insight struct {
	Risk    string `json:"risk" yaml:"risk"`
	Message string `json:"message" yaml:"message"`
}

// Evidence is a sourced snippet supporting an insight or clause.
type Evidence struct {
	Source    string  `json:"source" yaml:"source"`
	Snippet   string  `json:"snippet" yaml:"snippet"`
	Relevance float64 `json:"relevance" yaml:"relevance"`
}

// Contract status constants
const (
	StatusActive     = "Active"
	StatusExpired    = "Expired"
	StatusRenewalDue = "Renewal Due"
)

// Risk level constants
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)
