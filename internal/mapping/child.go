package mapping

import (
	"time"

	"benefit-engine/internal/forms"
	"benefit-engine/internal/model"
)

// ChildAnnex maps the child annex (KI) for a child under 15.
type ChildAnnex struct{}

func (ChildAnnex) Map(p *model.Profile, s forms.Subject, now time.Time) FieldMap {
	m := FieldMap{}
	header(m, p)

	if child := p.Child(s.ChildIndex); s.Kind == forms.SubjectChild && child != nil {
		m.setText("txtfKindVorname", child.FirstName)
		m.setText("txtfKindNachname", child.LastName)
		m.setText("dateKindGebDatum", child.BirthDate)
		m.setText("txtfKindStaatsangehoerigkeit", model.DefaultNationality)
		memberGender.apply(m, child.Gender)
		m.check("chbxKindLeiblich")
	}

	m.setText(fieldSignatureDate, FormatDate(now))
	return m
}
