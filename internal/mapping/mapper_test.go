package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefit-engine/internal/forms"
	"benefit-engine/internal/model"
)

var now = time.Date(2026, time.October, 3, 9, 30, 0, 0, time.UTC)

func household() *model.Profile {
	p := model.NewProfile()
	p.Personal = model.Personal{
		FirstName:   "Maria",
		LastName:    "Müller",
		BirthDate:   "15.03.1985",
		Gender:      model.GenderFemale,
		Nationality: "deutsch",
		Phone:       "0170 1234567",
		Street:      "Hauptstraße",
		HouseNumber: "42a",
		PostalCode:  "10115",
		City:        "Berlin",
	}
	p.Housing.Tenancy = model.TenancyRented
	p.Housing.ColdRent = "450"
	p.Housing.UtilityCosts = "120"
	p.Housing.HeatingCosts = "80"
	p.Housing.LivingArea = "65"
	p.Housing.RoomCount = "3"
	p.Housing.EnergySource = model.EnergyGas
	p.Housing.HeatingSystem = model.HeatingCentral
	p.Family.MaritalStatus = model.MaritalMarried
	p.SetHasPartner(true)
	p.Family.Partner.FirstName = "Lena"
	p.Family.Partner.LastName = "Müller"
	p.Family.Partner.BirthDate = "01.02.1984"
	p.Family.Partner.Gender = model.GenderFemale
	p.Family.Partner.Nationality = ""
	p.AddChild(model.Child{FirstName: "Emma", LastName: "Müller", BirthDate: "01.06.2016", Gender: model.GenderFemale})
	p.AddChild(model.Child{FirstName: "Lara", LastName: "Müller", BirthDate: "10.10.2008", Gender: model.GenderFemale})
	p.Income.HasIncome = true
	p.Income.Employer = "Stadtwerke"
	p.Income.ChildBenefit = "500"
	p.Income.PartnerHasIncome = true
	p.Income.PartnerEmployer = "Bäckerei Kurz"
	p.Assets.BankBalance = "2500"
	p.Assets.LifeInsurance = "5000"
	p.Assets.Car = "VW Golf, Baujahr 2012"
	p.Assets.CarValue = "4000"
	p.Bank = model.Bank{AccountHolder: "Maria Müller", IBAN: "DE89370400440532013000"}
	return p
}

func text(t *testing.T, m FieldMap, name string) string {
	t.Helper()
	v, ok := m[name]
	require.True(t, ok, "field %s missing", name)
	require.False(t, v.IsCheckbox(), "field %s is a checkbox", name)
	return v.Text
}

func checked(m FieldMap, name string) bool {
	v, ok := m[name]
	return ok && v.IsCheckbox()
}

func countChecked(m FieldMap, names ...string) int {
	n := 0
	for _, name := range names {
		if checked(m, name) {
			n++
		}
	}
	return n
}

func groupNames[T ~string](g choiceGroup[T]) []string {
	names := make([]string, 0, len(g))
	for _, name := range g {
		names = append(names, name)
	}
	return names
}

func TestScenarioDFemaleInEveryForm(t *testing.T) {
	p := household()
	genderFields := append(groupNames(applicantGender), groupNames(memberGender)...)

	required := forms.RequiredFormsAt(p, now)
	require.Len(t, required, 8)
	for _, f := range required {
		m := MapForm(p, f, now)
		switch f.Template {
		case forms.TemplateMainApplication:
			assert.Equal(t, 1, countChecked(m, genderFields...), f.ID)
			assert.True(t, checked(m, "chbxPersonWeiblich"), f.ID)
		case forms.TemplateAdditionalPersons, forms.TemplateChild:
			assert.Equal(t, 1, countChecked(m, genderFields...), f.ID)
			assert.True(t, checked(m, "chbxBGWeiblich"), f.ID)
		default:
			assert.LessOrEqual(t, countChecked(m, genderFields...), 1, f.ID)
		}
	}
}

func TestGenderGroupsAreExclusive(t *testing.T) {
	for _, g := range []model.Gender{model.GenderMale, model.GenderFemale, model.GenderDiverse, model.GenderUnset, "unknown"} {
		p := household()
		p.Personal.Gender = g
		m := MainApplication{}.Map(p, forms.Applicant(), now)
		n := countChecked(m, groupNames(applicantGender)...)
		if _, known := applicantGender[g]; known {
			assert.Equal(t, 1, n, g)
		} else {
			assert.Zero(t, n, g)
		}
	}
}

func TestMaritalStatusIsExclusive(t *testing.T) {
	p := household()
	for status := range applicantMaritalStatus {
		p.Family.MaritalStatus = status
		m := MainApplication{}.Map(p, forms.Applicant(), now)
		assert.Equal(t, 1, countChecked(m, groupNames(applicantMaritalStatus)...), status)
		assert.True(t, checked(m, applicantMaritalStatus[status]), status)
	}
}

func TestSignatureDateOnEveryTemplate(t *testing.T) {
	p := household()
	for _, tmpl := range forms.Templates() {
		m, ok := Get(tmpl)
		require.True(t, ok, tmpl)
		fields := m.Map(p, forms.Child(0), now)
		assert.Equal(t, "03.10.2026", text(t, fields, fieldSignatureDate), tmpl)
		assert.Equal(t, "Maria", text(t, fields, fieldApplicantFirstName), tmpl)
	}
}

func TestMainApplication(t *testing.T) {
	m := MainApplication{}.Map(household(), forms.Applicant(), now)

	assert.Equal(t, "Müller", text(t, m, "txtfPersonNachname"))
	assert.Equal(t, "15.03.1985", text(t, m, "datePersonGebDatum"))
	assert.Equal(t, "Hauptstraße", text(t, m, "txtfPersonStr"))
	assert.Equal(t, "42a", text(t, m, "txtfPersonHausnr"))
	assert.Equal(t, "10115", text(t, m, "txtfPersonPlz"))
	assert.Equal(t, "Berlin", text(t, m, "txtfPersonOrt"))
	assert.Equal(t, "0170 1234567", text(t, m, "txtfPersonTel"))
	assert.Equal(t, "DE89370400440532013000", text(t, m, "txtfIBAN"))
	assert.Equal(t, "Maria Müller", text(t, m, "txtfKontoinhaber"))
	assert.True(t, checked(m, "chbxPersonAntragBUEGSofort"))
	assert.True(t, checked(m, "chbxPersonWohnenEhegatte"))
	assert.True(t, checked(m, "chbxPersonWohnenKind"))
	assert.True(t, checked(m, "chbxPersonFamStandVerheiratet"))
}

func TestMainApplicationAloneOmitsHouseholdFlags(t *testing.T) {
	p := model.NewProfile()
	m := MainApplication{}.Map(p, forms.Applicant(), now)
	assert.False(t, checked(m, "chbxPersonWohnenEhegatte"))
	assert.False(t, checked(m, "chbxPersonWohnenKind"))
	_, ok := m["txtfPersonVorname"]
	assert.False(t, ok, "empty values are never written")
}

func TestHousingCostsRented(t *testing.T) {
	m := HousingCostsAnnex{}.Map(household(), forms.Applicant(), now)

	assert.Equal(t, "4", text(t, m, "numfUnterkunftAnzahlPersonen"))
	assert.Equal(t, "3", text(t, m, "numfUnterkunftAnzahlRaum"))
	assert.Equal(t, "65", text(t, m, "numfUnterkunftGesamt"))
	assert.True(t, checked(m, "chbxWohnenMiete"))
	assert.False(t, checked(m, "chbxWohnenEigentum"))
	assert.True(t, checked(m, "chbxBedarfGrundmiete"))
	assert.Equal(t, "450", text(t, m, "numfBedarfGrundmiete"))
	assert.Equal(t, "120", text(t, m, "numfBedarfNebenkosten"))
	assert.Equal(t, "80", text(t, m, "numfBedarfHeizkosten"))
	assert.True(t, checked(m, "chbxEnergiequellenGas"))
	assert.True(t, checked(m, "chbxHeizungZentralheizung"))
	assert.Equal(t, 1, countChecked(m, groupNames(energySources)...))
}

func TestHousingCostsOwned(t *testing.T) {
	p := household()
	p.Housing.Tenancy = model.TenancyOwned
	m := HousingCostsAnnex{}.Map(p, forms.Applicant(), now)

	assert.True(t, checked(m, "chbxWohnenEigentum"))
	assert.False(t, checked(m, "chbxWohnenMiete"))
	_, ok := m["numfBedarfGrundmiete"]
	assert.False(t, ok)
}

func TestAssets(t *testing.T) {
	m := AssetsAnnex{}.Map(household(), forms.Applicant(), now)
	assert.Equal(t, "Bankguthaben", text(t, m, "txtareaTabVermoegen_Z1_S2"))
	assert.Equal(t, "2500", text(t, m, "numfTabVermoegen_Z2_S2"))
	assert.Equal(t, "Lebensversicherung", text(t, m, "txtareaTabVermoegen_Z1_S3"))
	assert.Equal(t, "5000", text(t, m, "numfTabVermoegen_Z2_S3"))
	assert.Equal(t, "VW Golf, Baujahr 2012", text(t, m, "txtareaTabKFZ_Z1_S2"))
	assert.Equal(t, "4000", text(t, m, "numfTabKFZ_Z2_S2"))

	empty := AssetsAnnex{}.Map(model.NewProfile(), forms.Applicant(), now)
	assert.Equal(t, []string{fieldSignatureDate}, empty.Names())
}

func TestIncomeSwitchesSubject(t *testing.T) {
	p := household()

	self := IncomeAnnex{}.Map(p, forms.Applicant(), now)
	assert.Equal(t, "Maria", text(t, self, fieldMemberFirstName))
	assert.Equal(t, "Stadtwerke", text(t, self, "txtfAGName"))

	partner := IncomeAnnex{}.Map(p, forms.Partner(), now)
	assert.Equal(t, "Lena", text(t, partner, fieldMemberFirstName))
	assert.Equal(t, "01.02.1984", text(t, partner, fieldMemberBirthDate))
	assert.Equal(t, "Bäckerei Kurz", text(t, partner, "txtfAGName"))

	// the header always names the applicant
	assert.Equal(t, "Maria", text(t, partner, fieldApplicantFirstName))
	assert.True(t, checked(partner, "chbxEinnahmeKindergeld"))
	assert.False(t, checked(partner, "chbxEinnahmeUnterhalt"))
}

func TestAdditionalPersonsPartner(t *testing.T) {
	m := AdditionalPersonsAnnex{}.Map(household(), forms.Partner(), now)
	assert.Equal(t, "Lena", text(t, m, fieldMemberFirstName))
	assert.Equal(t, model.DefaultNationality, text(t, m, fieldMemberNationality))
	assert.True(t, checked(m, "chbxFamilienstandVerheiratet"))
	assert.Equal(t, 1, countChecked(m, groupNames(memberMaritalStatus)...))
}

func TestAdditionalPersonsChild(t *testing.T) {
	m := AdditionalPersonsAnnex{}.Map(household(), forms.Child(1), now)
	assert.Equal(t, "Lara", text(t, m, fieldMemberFirstName))
	assert.Equal(t, "10.10.2008", text(t, m, fieldMemberBirthDate))
	assert.Equal(t, model.DefaultNationality, text(t, m, fieldMemberNationality))
	assert.True(t, checked(m, "chbxFamilienstandLedig"))
	assert.True(t, checked(m, "chbxBGWeiblich"))
}

func TestChildAnnex(t *testing.T) {
	m := ChildAnnex{}.Map(household(), forms.Child(0), now)
	assert.Equal(t, "Emma", text(t, m, "txtfKindVorname"))
	assert.Equal(t, "Müller", text(t, m, "txtfKindNachname"))
	assert.Equal(t, "01.06.2016", text(t, m, "dateKindGebDatum"))
	assert.Equal(t, model.DefaultNationality, text(t, m, "txtfKindStaatsangehoerigkeit"))
	assert.True(t, checked(m, "chbxKindLeiblich"))
}

func TestMissingSubjectLeavesFieldsOut(t *testing.T) {
	p := model.NewProfile()
	for _, m := range []FieldMap{
		ChildAnnex{}.Map(p, forms.Child(3), now),
		AdditionalPersonsAnnex{}.Map(p, forms.Child(3), now),
		AdditionalPersonsAnnex{}.Map(p, forms.Partner(), now),
	} {
		assert.Equal(t, []string{fieldSignatureDate}, m.Names())
	}
}

func TestUnknownTemplateMapsToEmpty(t *testing.T) {
	m := MapForm(household(), forms.RequiredForm{Template: "unknown.pdf"}, now)
	assert.Empty(t, m)
}

func TestMappingIsDeterministic(t *testing.T) {
	p := household()
	for _, f := range forms.RequiredFormsAt(p, now) {
		assert.Equal(t, MapForm(p, f, now), MapForm(p, f, now), f.ID)
	}
}
