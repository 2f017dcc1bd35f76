package mapping

import (
	"time"

	"benefit-engine/internal/forms"
	"benefit-engine/internal/model"
)

// AssetsAnnex maps the assets annex (VM). Assets go into the template's
// table rows: label in Z1, amount in Z2 of the same column.
type AssetsAnnex struct{}

func (AssetsAnnex) Map(p *model.Profile, _ forms.Subject, now time.Time) FieldMap {
	m := FieldMap{}
	a := p.Assets

	header(m, p)

	if a.BankBalance != "" {
		m.setText("txtareaTabVermoegen_Z1_S2", "Bankguthaben")
		m.setText("numfTabVermoegen_Z2_S2", a.BankBalance)
	}
	if a.LifeInsurance != "" {
		m.setText("txtareaTabVermoegen_Z1_S3", "Lebensversicherung")
		m.setText("numfTabVermoegen_Z2_S3", a.LifeInsurance)
	}
	if a.Car != "" {
		m.setText("txtareaTabKFZ_Z1_S2", a.Car)
		m.setText("numfTabKFZ_Z2_S2", a.CarValue)
	}

	m.setText(fieldSignatureDate, FormatDate(now))
	return m
}
