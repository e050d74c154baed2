package models

// AccessEntry is one permitted action/URL granted to a user by the access
// control tables. Entries are consumed by the menu composer, never written.
type AccessEntry struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	URL  string `db:"url" json:"url"`
	Icon string `db:"icon" json:"icon"`
}

// MenuItem is a single navigation leaf inside a menu group.
type MenuItem struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// MenuGroup is a derived, request-scoped navigation group. A group either
// navigates directly (Path set, no children) or collapses into its items.
type MenuGroup struct {
	ID          int64      `json:"id"`
	Label       string     `json:"label"`
	Icon        string     `json:"icon"`
	Path        string     `json:"path,omitempty"`
	Collapsible bool       `json:"collapsible"`
	Items       []MenuItem `json:"items"`
}
