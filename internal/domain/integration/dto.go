package integration

import "time"

type StatusResponse struct {
	Name        string            `json:"name"`
	Connected   bool              `json:"connected"`
	APIDomain   string            `json:"api_domain,omitempty"`
	ExpiresAt   *time.Time        `json:"expires_at,omitempty"`
	RecentSyncs []SyncRunResponse `json:"recent_syncs,omitempty"`
}

// SyncRunResponse is one audited sync run, newest first.
type SyncRunResponse struct {
	Detail    map[string]interface{} `json:"detail,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// SyncResult summarizes one sync run of an external platform. Per-record
// errors accumulate; the run continues past them.
type SyncResult struct {
	Integration string    `json:"integration"`
	Fetched     int       `json:"fetched"`
	Upserted    int       `json:"upserted"`
	Failed      int       `json:"failed"`
	Errors      []string  `json:"errors,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}
