package mapping

import (
	"time"

	"benefit-engine/internal/forms"
	"benefit-engine/internal/model"
)

// MainApplication maps the main application (HA).
type MainApplication struct{}

func (MainApplication) Map(p *model.Profile, _ forms.Subject, now time.Time) FieldMap {
	m := FieldMap{}
	per := p.Personal

	header(m, p)
	m.setText("txtfPersonStaatsangehoerigkeit", per.Nationality)
	m.setText("txtfPersonStr", per.Street)
	m.setText("txtfPersonHausnr", per.HouseNumber)
	m.setText("txtfPersonPlz", per.PostalCode)
	m.setText("txtfPersonOrt", per.City)
	m.setText("txtfPersonTel", per.Phone)
	applicantGender.apply(m, per.Gender)

	m.setText("txtfKontoinhaber", p.Bank.AccountHolder)
	m.setText("txtfIBAN", p.Bank.IBAN)

	applicantMaritalStatus.apply(m, p.Family.MaritalStatus)

	// benefits are requested from the day of application
	m.check("chbxPersonAntragBUEGSofort")

	if p.Family.HasPartner {
		m.check("chbxPersonWohnenEhegatte")
	}
	if len(p.Family.Children) > 0 {
		m.check("chbxPersonWohnenKind")
	}

	m.setText(fieldSignatureDate, FormatDate(now))
	return m
}
