package model

// HouseholdSize is the applicant plus a present partner plus every child.
func (p *Profile) HouseholdSize() int {
	n := 1 + len(p.Family.Children)
	if p.Family.HasPartner {
		n++
	}
	return n
}

// RecountResidents restores the resident count invariant.
func (p *Profile) RecountResidents() {
	p.Housing.ResidentCount = p.HouseholdSize()
}

// PartnerPresent reports whether the household has a partner with a record.
// Stale partner flags on their own never count.
func (p *Profile) PartnerPresent() bool {
	return p.Family.HasPartner && p.Family.Partner != nil
}

// SetHasPartner toggles the partner. Turning it on creates an empty partner
// record; turning it off drops the record together with the partner's income.
func (p *Profile) SetHasPartner(has bool) {
	p.Family.HasPartner = has
	if has {
		p.EnsurePartner()
	} else {
		p.Family.Partner = nil
		p.Income.PartnerHasIncome = false
		p.Income.PartnerEmployer = ""
		p.Income.PartnerGross = ""
		p.Income.PartnerNet = ""
	}
	p.RecountResidents()
}

// EnsurePartner lazily creates the partner record and returns it.
func (p *Profile) EnsurePartner() *Partner {
	if p.Family.Partner == nil {
		p.Family.Partner = &Partner{Nationality: DefaultNationality}
	}
	return p.Family.Partner
}

// AddChild appends a child and returns its index.
func (p *Profile) AddChild(c Child) int {
	p.Family.Children = append(p.Family.Children, c)
	p.RecountResidents()
	return len(p.Family.Children) - 1
}

// RemoveChild deletes the child at i; out of range indexes are ignored.
func (p *Profile) RemoveChild(i int) {
	if i < 0 || i >= len(p.Family.Children) {
		return
	}
	p.Family.Children = append(p.Family.Children[:i], p.Family.Children[i+1:]...)
	p.RecountResidents()
}

// Child returns the child at i, or nil.
func (p *Profile) Child(i int) *Child {
	if i < 0 || i >= len(p.Family.Children) {
		return nil
	}
	return &p.Family.Children[i]
}

// Normalize repairs the derived parts of a profile received from outside the
// question flow. A partner record or partner income without the partner flag
// is dropped and the resident count is recomputed.
func (p *Profile) Normalize() {
	if p.Family.Children == nil {
		p.Family.Children = []Child{}
	}
	if !p.Family.HasPartner && p.Family.Partner != nil {
		p.Family.Partner = nil
	}
	if !p.Family.HasPartner {
		p.Income.PartnerHasIncome = false
	}
	p.RecountResidents()
}
