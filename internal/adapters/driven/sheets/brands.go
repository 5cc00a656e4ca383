package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// socialColumns maps platform names to their directory columns.
var socialColumns = map[string]string{
	"linkedin":  "Linkedin",
	"twitter":   "Twitter",
	"instagram": "Instagram",
	"facebook":  "Facebook",
	"youtube":   "YouTube",
	"github":    "Github",
	"discord":   "Discord",
}

// FetchBrands reads the brand directory tab. Rows are deduplicated by
// normalized URL with the last row winning (physical row order is the
// only recency proxy the sheet offers), then returned newest first.
func (c *Client) FetchBrands(ctx context.Context, cfg domain.SheetConfig) ([]domain.Brand, error) {
	rows, err := c.fetchTab(ctx, cfg.SpreadsheetID, cfg.InputURLWorksheetID)
	if err != nil {
		return nil, fmt.Errorf("fetch brands: %w", err)
	}

	byURL := make(map[string]int)
	var unique []domain.Brand
	for i, r := range rows {
		brand := parseBrand(r, i)
		key := brand.Key()
		if key == "" {
			continue
		}
		if at, seen := byURL[key]; seen {
			unique[at] = brand
			continue
		}
		byURL[key] = len(unique)
		unique = append(unique, brand)
	}

	// Newest entries sit at the bottom of the sheet.
	for i, j := 0, len(unique)-1; i < j; i, j = i+1, j-1 {
		unique[i], unique[j] = unique[j], unique[i]
	}
	return unique, nil
}

func parseBrand(r row, index int) domain.Brand {
	name := r.get("Brand Name")
	slug := fmt.Sprintf("brand-%d", index)
	if name != "" {
		slug = domain.Slugify(name)
	} else {
		name = "Unknown Brand"
	}

	colors := make([]string, 0, 6)
	for i := 1; i <= 6; i++ {
		if c := r.get(fmt.Sprintf("Color-%d", i)); c != "" {
			colors = append(colors, c)
		}
	}

	socials := make(map[string]string)
	for platform, column := range socialColumns {
		if v := r.get(column); v != "" {
			socials[platform] = v
		}
	}

	bodyFont := r.get("Body font")
	if bodyFont == "" {
		bodyFont = "Inter"
	}
	headingFont := r.get("Heading Font")
	if headingFont == "" {
		headingFont = "Inter"
	}

	return domain.Brand{
		Slug:             slug,
		Name:             name,
		URL:              r.get("URL"),
		Tagline:          r.get("Tag Line"),
		ShortDescription: r.get("Short Description"),
		LongDescription:  r.get("Long Description"),
		Values:           splitList(r.get("Brand Values")),
		Aesthetics:       splitList(r.get("Brand Aesthetics")),
		Tone:             splitList(r.get("Brand Tone of voice")),
		Logo:             r.get("Logo-1"),
		Favicon:          r.get("Favicon-1"),
		Colors:           colors,
		BodyFont:         bodyFont,
		HeadingFont:      headingFont,
		Elements:         parseElements(r.get("Elements"), name),
		Socials:          socials,
		Industry:         r.find("industry domain"),
		City:             r.get("City"),
		State:            r.get("State"),
		Country:          r.get("Country"),
	}
}

// parseElements decodes the asset repository cell. The workflow writes
// either a JSON array (of URL strings or {url: ...} objects) or a bare
// comma-separated URL list; a malformed cell yields no assets.
func parseElements(raw, brandName string) []domain.Asset {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(strings.ReplaceAll(raw, `""`, `"`)), &items); err != nil {
			logger.Warn("sheets: bad elements JSON for %s: %v", brandName, err)
			return nil
		}

		assets := make([]domain.Asset, 0, len(items))
		for _, item := range items {
			var url string
			if err := json.Unmarshal(item, &url); err == nil {
				if url != "" {
					assets = append(assets, domain.Asset{URL: url})
				}
				continue
			}
			var obj map[string]any
			if err := json.Unmarshal(item, &obj); err != nil {
				continue
			}
			url, _ = obj["url"].(string)
			if url == "" {
				continue
			}
			delete(obj, "url")
			var meta map[string]any
			if len(obj) > 0 {
				meta = obj
			}
			assets = append(assets, domain.Asset{URL: url, Metadata: meta})
		}
		return assets
	}

	var assets []domain.Asset
	for _, item := range strings.Split(raw, ",") {
		url := strings.Trim(strings.TrimSpace(item), `"`)
		if url != "" {
			assets = append(assets, domain.Asset{URL: url})
		}
	}
	return assets
}
