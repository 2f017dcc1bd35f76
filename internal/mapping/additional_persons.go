package mapping

import (
	"time"

	"benefit-engine/internal/forms"
	"benefit-engine/internal/model"
)

// AdditionalPersonsAnnex maps the additional persons annex (WEP) for the
// partner or for a child aged 15 or older.
type AdditionalPersonsAnnex struct{}

func (AdditionalPersonsAnnex) Map(p *model.Profile, s forms.Subject, now time.Time) FieldMap {
	m := FieldMap{}
	header(m, p)

	switch s.Kind {
	case forms.SubjectPartner:
		if partner := p.Family.Partner; partner != nil {
			m.setText(fieldMemberFirstName, partner.FirstName)
			m.setText(fieldMemberLastName, partner.LastName)
			m.setText(fieldMemberBirthDate, partner.BirthDate)
			m.setText(fieldMemberNationality, orDefaultNationality(partner.Nationality))
			memberGender.apply(m, partner.Gender)
			memberMaritalStatus.apply(m, p.Family.MaritalStatus)
		}
	case forms.SubjectChild:
		if child := p.Child(s.ChildIndex); child != nil {
			m.setText(fieldMemberFirstName, child.FirstName)
			m.setText(fieldMemberLastName, child.LastName)
			m.setText(fieldMemberBirthDate, child.BirthDate)
			m.setText(fieldMemberNationality, model.DefaultNationality)
			memberGender.apply(m, child.Gender)
			memberMaritalStatus.apply(m, model.MaritalSingle)
		}
	}

	m.setText(fieldSignatureDate, FormatDate(now))
	return m
}
