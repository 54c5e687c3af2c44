package models

// SimulateRequest is the request body for running a scenario simulation.
//
// The config and scenario list ride along as YAML strings in the same shape
// the CLI reads from disk, so a config file works unchanged in either
// surface. Both are optional: an empty config falls back to the built-in
// baseline, an empty scenario list to the stock scenarios.
type SimulateRequest struct {
	ConfigYAML    string          `json:"config_yaml,omitempty"`
	ScenariosYAML string          `json:"scenarios_yaml,omitempty"`
	Scenarios     []string        `json:"scenarios,omitempty"` // filter by name; empty = all
	Options       SimulateOptions `json:"options,omitempty"`
}

// SimulateOptions are optional run parameters.
type SimulateOptions struct {
	StartYear      int  `json:"start_year,omitempty"` // overrides the config window
	EndYear        int  `json:"end_year,omitempty"`
	Parallel       bool `json:"parallel,omitempty"`        // one goroutine per scenario
	IncludeRecords bool `json:"include_records,omitempty"` // inline the year records; default: false
}
