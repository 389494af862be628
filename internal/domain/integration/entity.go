package integration

import "time"

// Integration names. Each external platform has exactly one settings row.
const (
	NameBooks     = "books"
	NamePeopleHub = "peoplehub"
)

// Settings holds the persisted OAuth state for one external platform.
type Settings struct {
	ID           string
	Name         string
	AccessToken  string
	RefreshToken string
	APIDomain    string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// refreshWindow: tokens within this window of expiry are treated as stale.
const refreshWindow = 5 * time.Minute

// NeedsRefresh reports whether the access token is expired or expiring
// within five minutes.
func (s Settings) NeedsRefresh(now time.Time) bool {
	return now.Add(refreshWindow).After(s.ExpiresAt)
}

// AuditLog records a mutating operation. Best effort: a failed audit write
// never fails the operation it records.
type AuditLog struct {
	ID        string
	ActorID   *string
	Action    string
	Entity    string
	EntityID  string
	Detail    map[string]interface{}
	CreatedAt time.Time
}
