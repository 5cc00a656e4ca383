package domain

// CreativeSource tags where a creative came from.
type CreativeSource string

const (
	// SourceCustom marks a creative produced from a user prompt.
	SourceCustom CreativeSource = "custom"

	// SourceBatch marks a creative auto-generated from a campaign idea.
	SourceBatch CreativeSource = "batch"
)

// Creative is one generated image. Batch creatives join back to their
// CampaignIdea only through IdeaName (fuzzy, containment-based); there
// is no stable foreign key in the backing store.
type Creative struct {
	ImageURL string `json:"image_url"`

	// IdeaName is the originating idea name for batch creatives, or
	// the user prompt for custom ones.
	IdeaName string `json:"prompt"`

	// Size is the aspect ratio, e.g. "1:1".
	Size string `json:"size,omitempty"`

	Header       string `json:"header,omitempty"`
	Description  string `json:"description,omitempty"`
	CallToAction string `json:"call_to_action,omitempty"`

	Source CreativeSource `json:"source"`
}

// AnimationMap maps an idea name to its animated video URL.
//
// Animations are keyed by idea, not by individual creative: one video
// arriving for an idea satisfies every pending animation request for
// that idea at once. This mirrors the upstream workflow's observed
// behavior and is a documented limitation, not a bug to fix here.
type AnimationMap map[string]string
