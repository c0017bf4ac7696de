package reconcile

import "time"

// Result is the reconciliation outcome for a single object key.
type Result struct {
	// Key is the object name inside the bucket.
	Key string `json:"key"`

	// Referenced is set when at least one database row points at the key.
	Referenced bool `json:"referenced"`

	// Stored is set when the object exists in storage.
	Stored bool `json:"stored"`

	// Owners lists the referencing rows as "table:id", sorted.
	Owners []string `json:"owners,omitempty"`
}

// Spec bundles the adapter with cache and listing settings.
type Spec struct {
	// Adapter provides source-specific loading.
	Adapter Adapter

	// CacheTTL is the time-to-live for cached indices.
	// If zero, caching is disabled.
	CacheTTL time.Duration

	// StoragePrefix restricts listing to keys under it.
	StoragePrefix string
}

// CacheKey returns a unique key for caching based on spec parameters.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name() + "|" + s.StoragePrefix
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDeleteStorage removes an object nothing references.
	ActionDeleteStorage ActionType = "delete_storage"
)

// Action represents a planned mutation operation.
type Action struct {
	Type   ActionType `json:"type"`
	Key    string     `json:"key"`
	Reason string     `json:"reason"`
}

// Plan contains reconciliation results and planned actions.
type Plan struct {
	Results []Result    `json:"results"`
	Actions []Action    `json:"actions"`
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate counts.
type PlanSummary struct {
	// TotalItems is the number of distinct keys across both sources.
	TotalItems int `json:"total_items"`

	// MissingStorage counts referenced keys with no stored object.
	MissingStorage int `json:"missing_storage"`

	// Unreferenced counts stored objects no row points at.
	Unreferenced int `json:"unreferenced"`

	// PurgeActions counts planned deletions.
	PurgeActions int `json:"purge_actions"`
}

// Options controls planning and execution.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoPurge plans deletion of unreferenced objects.
	DoPurge bool

	// Confirmed must be set for ApplyPlan to touch storage.
	Confirmed bool
}
