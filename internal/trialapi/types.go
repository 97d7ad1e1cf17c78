package trialapi

import "github.com/tricolab/fieldrank/pkg/rank"

// Response is the envelope the trial-management service wraps every JSON
// payload in.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ObservationsResponse is one trial's tricot observation set.
type ObservationsResponse struct {
	TrialID      string                   `json:"trial_id"`
	Items        []string                 `json:"items"`
	Observations []rank.TricotObservation `json:"observations"`
}

// TrialExport is the full gzipped export of a trial.
type TrialExport struct {
	TrialID      string                   `json:"trial_id"`
	Crop         string                   `json:"crop"`
	Season       string                   `json:"season,omitempty"`
	Items        []string                 `json:"items"`
	Observations []rank.TricotObservation `json:"observations"`
}
