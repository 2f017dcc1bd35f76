package mapping

import (
	"sort"
	"time"
)

type ValueKind int

const (
	KindText ValueKind = iota
	KindCheckbox
)

// Value is either a text value or a checked checkbox.
type Value struct {
	Kind ValueKind
	Text string
}

func Text(s string) Value { return Value{Kind: KindText, Text: s} }

func Checked() Value { return Value{Kind: KindCheckbox} }

func (v Value) IsCheckbox() bool { return v.Kind == KindCheckbox }

// FieldMap is keyed by template field name. Absent names leave the template
// field untouched.
type FieldMap map[string]Value

// setText writes non-empty values only.
func (m FieldMap) setText(name, value string) {
	if value == "" {
		return
	}
	m[name] = Text(value)
}

func (m FieldMap) check(name string) {
	m[name] = Checked()
}

// Names returns the field names in sorted order.
func (m FieldMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// choiceGroup maps enum values onto one checkbox each. Applying it sets at
// most one box.
type choiceGroup[T ~string] map[T]string

func (g choiceGroup[T]) apply(m FieldMap, value T) {
	if name, ok := g[value]; ok {
		m.check(name)
	}
}

// FormatDate renders d as DD.MM.YYYY.
func FormatDate(d time.Time) string {
	return d.Format("02.01.2006")
}
