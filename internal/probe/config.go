package probe

import (
	"encoding/json"
	"time"
)

// Config holds configuration for a dashboard sweep.
type Config struct {
	BaseURL string        // Base URL of the dashboard
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	Mode    string        // Size mode requested from every chart
	Country string        // Country selected for the performance flow
	Sports  []string      // Sports to sweep; empty means every offered sport
	Verbose bool          // Log every response
}

// Stats holds sweep statistics.
type Stats struct {
	SportsSwept int
	Requests    int
	OK          int
	NoData      int
	Failed      int
	Violations  int
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

// envelope is the response shape of every /api route.
type envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	SizeColumn string          `json:"size_column"`
	Data       json.RawMessage `json:"data"`
	Code       string          `json:"code"`
}

type options struct {
	Sports []string `json:"sports"`
}

type flowEdge struct {
	Source int      `json:"source"`
	Target int      `json:"target"`
	Count  int      `json:"count"`
	Value  *float64 `json:"value"`
}

type flowCountry struct {
	NOC   string `json:"noc"`
	Total int    `json:"total"`
}

type flow struct {
	Edges     []flowEdge    `json:"edges"`
	Countries []flowCountry `json:"countries"`
}

type ageCount struct {
	Year       int      `json:"year"`
	AgeGroup   string   `json:"age_group"`
	Count      int      `json:"count"`
	Percentage *float64 `json:"percentage"`
}

type ageDistribution struct {
	Counts []ageCount `json:"counts"`
}
