package sheets

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// row is one parsed CSV record, keyed by the header row.
type row map[string]string

// parseCSV reads a CSV snapshot using the first record as the header.
// Ragged records are tolerated (short rows leave cells absent) and
// fully empty rows are dropped.
func parseCSV(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single malformed record must not abort the snapshot.
			logger.Warn("sheets: skipping malformed record: %v", err)
			continue
		}

		rec := make(row, len(header))
		empty := true
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			rec[header[i]] = cell
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, rec)
		}
	}
	return rows, nil
}

// get returns the first present column among names, exact match.
func (r row) get(names ...string) string {
	for _, name := range names {
		if v, ok := r[name]; ok && v != "" {
			return v
		}
	}
	return ""
}

// find resolves a column whose header contains target, comparing
// case-insensitively with embedded newlines folded to spaces. Sheet
// headers drift in case and whitespace between tenants; substring
// matching absorbs that.
func (r row) find(target string) string {
	target = strings.ToLower(target)
	for header, v := range r {
		folded := strings.ToLower(strings.NewReplacer("\n", " ", "\r", " ").Replace(header))
		if strings.Contains(folded, target) {
			if v != "" {
				return v
			}
		}
	}
	return ""
}

// findExact resolves a column whose trimmed, lower-cased header equals
// one of the candidates.
func (r row) findExact(candidates ...string) string {
	for header, v := range r {
		norm := strings.ToLower(strings.TrimSpace(header))
		for _, want := range candidates {
			if norm == want {
				return v
			}
		}
	}
	return ""
}

// normalizeJSONCell prepares a cell holding an embedded JSON string:
// one layer of wrapping quotes is removed and doubled quotes (the
// sheet export's escaping) are collapsed back to plain quotes.
func normalizeJSONCell(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.ReplaceAll(s, `""`, `"`)
}

// parseIdeaCell decodes one idea column. Returns nil if the cell is
// empty, malformed, or missing required fields; malformed cells are
// logged and skipped, never fatal.
func parseIdeaCell(raw, column string) *domain.CampaignIdea {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	payload := []byte(normalizeJSONCell(raw))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		logger.Warn("sheets: bad idea JSON in %s: %v", column, err)
		return nil
	}

	idea := domain.CampaignIdea{Extra: fields}
	if v, ok := fields["idea_name"]; ok {
		_ = json.Unmarshal(v, &idea.IdeaName)
		delete(fields, "idea_name")
	}
	if v, ok := fields["one_liner"]; ok {
		_ = json.Unmarshal(v, &idea.OneLiner)
		delete(fields, "one_liner")
	}
	if v, ok := fields["primary_channels"]; ok {
		_ = json.Unmarshal(v, &idea.PrimaryChannels)
		delete(fields, "primary_channels")
	}

	if !idea.Valid() {
		return nil
	}
	return &idea
}

// ideaNameFromCell extracts the idea name from a "Campaign idea" cell
// that may hold either an embedded JSON object or a raw string.
func ideaNameFromCell(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	var obj struct {
		IdeaName string `json:"idea_name"`
	}
	if err := json.Unmarshal([]byte(normalizeJSONCell(raw)), &obj); err == nil && obj.IdeaName != "" {
		return obj.IdeaName
	}
	return strings.TrimSpace(raw)
}

// splitList breaks a comma-separated cell into trimmed non-empty
// items.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// isHTTPURL reports whether a result cell holds a populated URL. An
// empty or non-URL cell means the row exists but the workflow has not
// written its result yet.
func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http")
}
