package domain

import "encoding/json"

// CampaignIdea is one brainstormed campaign concept, always scoped to
// exactly one brand. A single brainstorm trigger may yield up to three
// ideas in one datastore row.
type CampaignIdea struct {
	// IdeaName is the concept title. It doubles as the loose join key
	// from creatives back to ideas, since the datastore has no stable
	// foreign key.
	IdeaName string `json:"idea_name"`

	// OneLiner is the concept summary.
	OneLiner string `json:"one_liner"`

	// PrimaryChannels lists the target channels, e.g. "instagram".
	PrimaryChannels []string `json:"primary_channels,omitempty"`

	// Extra holds any free-form supporting fields the brainstorm
	// workflow emitted beyond the known ones.
	Extra map[string]json.RawMessage `json:"-"`
}

// Valid reports whether the idea carries the required fields. Rows
// missing either are skipped during parsing.
func (i *CampaignIdea) Valid() bool {
	return i.IdeaName != "" && i.OneLiner != ""
}

// IdeaSet is the full idea history for one brand, in datastore row
// order (oldest first).
type IdeaSet struct {
	Ideas []CampaignIdea `json:"ideas"`
}

// Len returns the number of ideas. A nil set has length zero, which is
// how the history-growth polling fallback compares snapshots.
func (s *IdeaSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Ideas)
}
