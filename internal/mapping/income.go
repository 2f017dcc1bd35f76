package mapping

import (
	"time"

	"benefit-engine/internal/forms"
	"benefit-engine/internal/model"
)

// IncomeAnnex maps the income annex (EK) for the applicant or the partner.
// The header always names the applicant.
type IncomeAnnex struct{}

func (IncomeAnnex) Map(p *model.Profile, s forms.Subject, now time.Time) FieldMap {
	m := FieldMap{}
	inc := p.Income

	header(m, p)

	if s.Kind == forms.SubjectPartner && p.Family.Partner != nil {
		partner := p.Family.Partner
		m.setText(fieldMemberFirstName, partner.FirstName)
		m.setText(fieldMemberLastName, partner.LastName)
		m.setText(fieldMemberBirthDate, partner.BirthDate)
		m.setText("txtfAGName", inc.PartnerEmployer)
	} else {
		m.setText(fieldMemberFirstName, p.Personal.FirstName)
		m.setText(fieldMemberLastName, p.Personal.LastName)
		m.setText(fieldMemberBirthDate, p.Personal.BirthDate)
		m.setText("txtfAGName", inc.Employer)
	}

	if inc.ChildBenefit != "" {
		m.check("chbxEinnahmeKindergeld")
	}
	if inc.Alimony != "" {
		m.check("chbxEinnahmeUnterhalt")
	}

	m.setText(fieldSignatureDate, FormatDate(now))
	return m
}
