// Package specparser turns free-form diameter specification text into
// PipeSpecification values and provides the tolerant matching primitives
// used by machine assignment.
package specparser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vsinha/pipesched/pkg/domain/entities"
)

const rangeSeparator = "-"

var (
	diameterMarkers = []string{"Φ", "φ", "Ø", "ø", "Ф"}
	oversizeMarkers = []string{"(大)", "（大）", "大"}
	coneMarkers     = []string{"(锥)", "（锥）", "锥形", "锥"}
	listSeparators  = []string{"、", "，", ","}
	pairSeparators  = []string{"/", "／"}

	modelCodePattern = regexp.MustCompile(`^[A-Za-z0-9]+-(\d+(?:\.\d+)?)/(\d+(?:\.\d+)?)-\S+$`)
)

// Parse converts a specification string such as "130/154-204/226",
// "102、113、120/137", "90" or "180、200/217 (大)" into specifications.
// Items that cannot be parsed are omitted; blank or wholly unparseable input
// yields an empty slice.
func Parse(text string) []entities.PipeSpecification {
	body, oversize, cone := stripMarkers(text)
	if body == "" {
		return []entities.PipeSpecification{}
	}

	var items []string
	switch {
	case strings.Contains(body, rangeSeparator):
		items = strings.SplitN(body, rangeSeparator, 2)
	case containsAny(body, listSeparators):
		items = splitAny(body, listSeparators)
	default:
		items = []string{body}
	}

	specs := make([]entities.PipeSpecification, 0, len(items))
	for _, item := range items {
		spec, ok := parseItem(item)
		if !ok {
			continue
		}
		spec.Oversize = oversize
		spec.Cone = cone
		specs = append(specs, spec)
	}
	return specs
}

// ParseModelCode extracts the diameters from a model code of the form
// PREFIX-<outer>/<inner>-<suffix>. The second return is false on no match.
func ParseModelCode(code string) (entities.PipeSpecification, bool) {
	m := modelCodePattern.FindStringSubmatch(strings.TrimSpace(code))
	if m == nil {
		return entities.PipeSpecification{}, false
	}
	outer, err := decimal.NewFromString(m[1])
	if err != nil {
		return entities.PipeSpecification{}, false
	}
	inner, err := decimal.NewFromString(m[2])
	if err != nil {
		return entities.PipeSpecification{}, false
	}
	return entities.NewPipeSpecification(inner, outer), true
}

// stripMarkers removes whitespace and the diameter symbol and reports the
// oversize and cone tags. Oversize wins when both appear.
func stripMarkers(text string) (string, bool, bool) {
	body := strings.Join(strings.Fields(text), "")
	for _, m := range diameterMarkers {
		body = strings.ReplaceAll(body, m, "")
	}

	oversize, cone := false, false
	for _, m := range oversizeMarkers {
		if strings.Contains(body, m) {
			oversize = true
			body = strings.ReplaceAll(body, m, "")
		}
	}
	for _, m := range coneMarkers {
		if strings.Contains(body, m) {
			cone = !oversize
			body = strings.ReplaceAll(body, m, "")
		}
	}
	return body, oversize, cone
}

func parseItem(item string) (entities.PipeSpecification, bool) {
	item = strings.TrimSpace(item)
	if item == "" {
		return entities.PipeSpecification{}, false
	}

	for _, sep := range pairSeparators {
		if !strings.Contains(item, sep) {
			continue
		}
		parts := strings.SplitN(item, sep, 2)
		inner, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
		if err != nil || inner.IsNegative() {
			return entities.PipeSpecification{}, false
		}
		outer, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil || !outer.IsPositive() {
			return entities.PipeSpecification{}, false
		}
		return entities.NewPipeSpecification(inner, outer), true
	}

	outer, err := decimal.NewFromString(item)
	if err != nil || !outer.IsPositive() {
		return entities.PipeSpecification{}, false
	}
	return entities.NewPipeSpecification(decimal.Zero, outer), true
}

func containsAny(s string, seps []string) bool {
	for _, sep := range seps {
		if strings.Contains(s, sep) {
			return true
		}
	}
	return false
}

func splitAny(s string, seps []string) []string {
	for _, sep := range seps[1:] {
		s = strings.ReplaceAll(s, sep, seps[0])
	}
	return strings.Split(s, seps[0])
}
