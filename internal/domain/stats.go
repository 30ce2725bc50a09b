package domain

// Stats mirrors the upstream /stats aggregate payload.
type Stats struct {
	TotalRecords           int            `json:"total_records"`
	UniqueProjects         int            `json:"unique_projects"`
	InstallStatusBreakdown map[string]int `json:"install_status_breakdown"`
	MonthlyBreakdown       []MonthlyCount `json:"monthly_breakdown"`
	TopBrands              map[string]int `json:"top_brands"`
}

type MonthlyCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// EmptyStats is the all-zero fallback substituted when upstream is unreachable.
func EmptyStats() *Stats {
	return &Stats{
		InstallStatusBreakdown: map[string]int{},
		MonthlyBreakdown:       []MonthlyCount{},
		TopBrands:              map[string]int{},
	}
}

type ProjectList struct {
	Projects []string `json:"projects"`
}

type StatusCount struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type StatusSummary struct {
	StatusSummary []StatusCount `json:"status_summary"`
}
