package domain

// Brand is the extracted identity of a business, produced by the
// external extraction workflow in response to a URL submission and
// read back from the brand directory tab. Brands are read-only from
// this system's perspective and uniqued by NormalizeURL(URL) with the
// latest datastore row winning.
type Brand struct {
	// Slug is a URL-safe identifier derived from the name.
	Slug string `json:"slug"`

	// Name is the human-readable brand name.
	Name string `json:"name"`

	// URL is the brand's canonical website URL as written by the
	// extraction workflow. The normalized form is the identity key.
	URL string `json:"url"`

	Tagline          string `json:"tagline,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`

	// Verbal identity, each a list of short strings.
	Values     []string `json:"values,omitempty"`
	Aesthetics []string `json:"aesthetics,omitempty"`
	Tone       []string `json:"tone,omitempty"`

	// Visual identity.
	Logo        string   `json:"logo,omitempty"`
	Favicon     string   `json:"favicon,omitempty"`
	Colors      []string `json:"colors,omitempty"` // up to 6
	HeadingFont string   `json:"heading_font,omitempty"`
	BodyFont    string   `json:"body_font,omitempty"`

	// Elements is the ordered visual asset repository.
	Elements []Asset `json:"elements,omitempty"`

	// Socials maps platform name ("linkedin", "twitter", ...) to URL.
	Socials map[string]string `json:"socials,omitempty"`

	// Locale fields.
	Industry string `json:"industry,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Asset is one element of a brand's visual repository.
type Asset struct {
	URL string `json:"url"`

	// Metadata carries optional per-asset fields the workflow emits
	// alongside the URL.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Key returns the brand's identity key (normalized URL).
func (b *Brand) Key() string {
	return NormalizeURL(b.URL)
}

// Essence returns the subset of brand DNA sent on generation payloads.
// Heavy fields (elements, descriptions) are excluded to keep trigger
// bodies small.
func (b *Brand) Essence() map[string]any {
	return map[string]any{
		"name":   b.Name,
		"colors": b.Colors,
		"fonts":  []string{b.HeadingFont, b.BodyFont},
		"vibe":   b.Aesthetics,
	}
}
