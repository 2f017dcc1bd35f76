package mapping

import (
	"strconv"
	"time"

	"benefit-engine/internal/forms"
	"benefit-engine/internal/model"
)

// HousingCostsAnnex maps the housing and heating costs annex (KDU).
type HousingCostsAnnex struct{}

func (HousingCostsAnnex) Map(p *model.Profile, _ forms.Subject, now time.Time) FieldMap {
	m := FieldMap{}
	h := p.Housing

	header(m, p)
	m.setText("txtfPersonStr", p.Personal.Street)
	m.setText("txtfPersonHausNr", p.Personal.HouseNumber)
	m.setText("txtfPersonPlz", p.Personal.PostalCode)
	m.setText("txtfPersonOrt", p.Personal.City)

	m.setText("numfUnterkunftAnzahlPersonen", strconv.Itoa(p.HouseholdSize()))
	m.setText("numfUnterkunftAnzahlRaum", h.RoomCount)
	m.setText("numfUnterkunftGesamt", h.LivingArea)

	switch h.Tenancy {
	case model.TenancyRented:
		m.check("chbxWohnenMiete")
		costLine(m, "Grundmiete", h.ColdRent)
		costLine(m, "Nebenkosten", h.UtilityCosts)
		costLine(m, "Heizkosten", h.HeatingCosts)
	case model.TenancyOwned:
		m.check("chbxWohnenEigentum")
	}

	energySources.apply(m, h.EnergySource)
	heatingSystems.apply(m, h.HeatingSystem)

	m.setText(fieldSignatureDate, FormatDate(now))
	return m
}

// costLine ticks a cost row and fills in its amount.
func costLine(m FieldMap, row, amount string) {
	if amount == "" {
		return
	}
	m.check("chbxBedarf" + row)
	m.setText("numfBedarf"+row, amount)
}
