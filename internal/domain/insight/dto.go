package insight

// CostEstimateRequest mirrors the deployment cost estimator form.
type CostEstimateRequest struct {
	NumUsers           string `json:"num_users"`
	EntriesPerUser     string `json:"entries_per_user"`
	SummaryGenerations string `json:"summary_generations"`
	CloudProvider      string `json:"cloud_provider"`
	DatabaseType       string `json:"database_type"`
	Redundancy         string `json:"redundancy"`
}

type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Result is the outcome of a generative call. Text is always populated;
// on service failure it carries a placeholder rather than an error.
type Result struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

type AskRequest struct {
	Prompt string `json:"prompt"`
}
