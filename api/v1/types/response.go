package types

// GenerateResponse is the public response for POST /generate
type GenerateResponse struct {
	Selection SelectionDTO `json:"selection"`

	// Source is "template", "heuristic" or "offline"
	Source      string  `json:"source"`
	TemplateKey string  `json:"templateKey,omitempty"`
	Bill        BillDTO `json:"bill"`
}

// BillDTO is a priced selection
type BillDTO struct {
	Lines []LineDTO `json:"lines"`

	// Total as decimal string (e.g., "15490000")
	Total string `json:"total"`

	// TotalFormatted is the display form (e.g., "15.490.000 ₫")
	TotalFormatted string `json:"totalFormatted"`

	// Remaining is budget minus total, present when a budget is known
	Remaining string `json:"remaining,omitempty"`
}

// LineDTO is one bill row
type LineDTO struct {
	Category  string `json:"category"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Amount    string `json:"amount"`
	Missing   bool   `json:"missing,omitempty"`
}

// OptionsResponse is the public response for GET /options/{category}
type OptionsResponse struct {
	Category string `json:"category"`

	// Locked means an upstream part must be chosen first
	Locked bool `json:"locked"`

	// Empty means the category is enabled but nothing is compatible
	Empty    bool        `json:"empty"`
	Filtered bool        `json:"filtered"`
	Records  []RecordDTO `json:"records"`
}

// HealthResponse is the public response for GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Store   string `json:"store"`
	Time    string `json:"time"`
}

// ErrorResponse wraps every non-2xx body
type ErrorResponse struct {
	Error ErrorDTO `json:"error"`
}

// ErrorDTO describes one failure
type ErrorDTO struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}
