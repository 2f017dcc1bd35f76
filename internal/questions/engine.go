package questions

import (
	"strings"

	"benefit-engine/internal/model"
)

// Next returns the first question in declaration order that has not been
// answered and whose condition holds for p, or nil once the catalog is
// exhausted.
func (c Catalog) Next(p *model.Profile, answered map[string]bool) *Question {
	for i := range c {
		q := &c[i]
		if answered[q.ID] {
			continue
		}
		if !q.Visible(p) {
			continue
		}
		return q
	}
	return nil
}

// Apply stores the answer to q and returns the resulting snapshot; p is left
// untouched. The answer is trimmed and passed through the question's
// transform first.
func Apply(p *model.Profile, q *Question, raw string) *model.Profile {
	next := p.Clone()
	value := strings.TrimSpace(raw)
	if q.Transform != nil && value != "" {
		value = q.Transform(value)
	}
	q.Target.Set(next, value)
	return next
}
