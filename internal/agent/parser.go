package agent

import (
	"sort"
	"strings"

	"github.com/paperlens/backend/internal/models"
)

// MissingSectionContent is the placeholder shown for a heading the model
// left out of its reply.
const MissingSectionContent = "⚠ Section not found in model output"

// ParseSections splits a raw model reply into the twelve framework
// sections. Headings are located as "N) Label" lines (leading markdown
// decoration tolerated); the content of a section runs to the next
// recognized heading. A heading absent from the reply yields a placeholder
// section flagged Missing. If no heading matches at all the reply is
// unusable and an error is returned.
func ParseSections(reply string) ([]models.Section, error) {
	specs := models.Framework()
	lines := strings.Split(reply, "\n")

	headingLine := make([]int, len(specs))
	headingRest := make([]string, len(specs))
	for i := range headingLine {
		headingLine[i] = -1
	}

	for n, raw := range lines {
		line := trimDecoration(raw)
		for i, spec := range specs {
			if headingLine[i] >= 0 {
				continue
			}
			if marker := spec.Marker(); strings.HasPrefix(line, marker) {
				headingLine[i] = n
				headingRest[i] = trimDecoration(line[len(marker):])
				break
			}
		}
	}

	// Section content ends where the next recognized heading begins,
	// regardless of which heading that is.
	var boundaries []int
	for _, n := range headingLine {
		if n >= 0 {
			boundaries = append(boundaries, n)
		}
	}
	if len(boundaries) == 0 {
		return nil, ErrUnrecognizedReply
	}
	sort.Ints(boundaries)

	sections := make([]models.Section, 0, len(specs))
	for i, spec := range specs {
		section := models.Section{
			Index: spec.Index,
			Key:   spec.Key,
			Label: spec.Label,
		}

		start := headingLine[i]
		if start < 0 {
			section.Content = MissingSectionContent
			section.Missing = true
			sections = append(sections, section)
			continue
		}

		end := len(lines)
		for _, b := range boundaries {
			if b > start {
				end = b
				break
			}
		}

		parts := make([]string, 0, end-start)
		if headingRest[i] != "" {
			parts = append(parts, headingRest[i])
		}
		parts = append(parts, lines[start+1:end]...)
		content := strings.TrimSpace(strings.Join(parts, "\n"))

		section.Content = content
		section.Cautions = strings.Count(content, "⚠")
		section.Inferred = strings.Contains(content, "(Inference)")
		sections = append(sections, section)
	}

	return sections, nil
}

// trimDecoration strips whitespace and markdown heading/bold markers so
// replies like "**3) Dataset**" still match.
func trimDecoration(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "#*")
	return strings.TrimSpace(s)
}
