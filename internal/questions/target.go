package questions

import "benefit-engine/internal/model"

type TargetKind int

const (
	// KindText stores the answer as entered.
	KindText TargetKind = iota
	// KindFlag coerces "true" to true and everything else to false.
	KindFlag
	// KindTrigger only steers the flow and never writes to the profile.
	KindTrigger
)

// Target is a typed accessor for one profile field. Path is informational
// and mirrors the JSON layout of the profile.
type Target struct {
	Path string
	Kind TargetKind
	get  func(p *model.Profile) string
	set  func(p *model.Profile, value string)
}

// Get reads the current value as a string; flags read as "true"/"false".
func (t Target) Get(p *model.Profile) string {
	if t.get == nil {
		return ""
	}
	return t.get(p)
}

// Set writes value into p. Triggers are no-ops.
func (t Target) Set(p *model.Profile, value string) {
	if t.set == nil {
		return
	}
	t.set(p, value)
}

func text[T ~string](path string, field func(p *model.Profile) *T) Target {
	return Target{
		Path: path,
		Kind: KindText,
		get:  func(p *model.Profile) string { return string(*field(p)) },
		set:  func(p *model.Profile, v string) { *field(p) = T(v) },
	}
}

func flag(path string, field func(p *model.Profile) *bool) Target {
	return Target{
		Path: path,
		Kind: KindFlag,
		get:  func(p *model.Profile) string { return formatBool(*field(p)) },
		set:  func(p *model.Profile, v string) { *field(p) = parseBool(v) },
	}
}

// partnerText reads "" while no partner record exists and creates the record
// on first write.
func partnerText[T ~string](path string, field func(partner *model.Partner) *T) Target {
	return Target{
		Path: path,
		Kind: KindText,
		get: func(p *model.Profile) string {
			if p.Family.Partner == nil {
				return ""
			}
			return string(*field(p.Family.Partner))
		},
		set: func(p *model.Profile, v string) { *field(p.EnsurePartner()) = T(v) },
	}
}

func hasPartner() Target {
	return Target{
		Path: "family.has_partner",
		Kind: KindFlag,
		get:  func(p *model.Profile) string { return formatBool(p.Family.HasPartner) },
		set:  func(p *model.Profile, v string) { p.SetHasPartner(parseBool(v)) },
	}
}

func trigger(path string) Target {
	return Target{Path: path, Kind: KindTrigger}
}

func parseBool(v string) bool {
	return v == "true"
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
