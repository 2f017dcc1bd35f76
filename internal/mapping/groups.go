package mapping

import "benefit-engine/internal/model"

// Field names shared by several templates.
const (
	fieldApplicantFirstName = "txtfPersonVorname"
	fieldApplicantLastName  = "txtfPersonNachname"
	fieldApplicantBirthDate = "datePersonGebDatum"
	fieldSignatureDate      = "dateUnterschriftPerson"

	fieldMemberFirstName   = "txtfBGVorname"
	fieldMemberLastName    = "txtfBGNachname"
	fieldMemberBirthDate   = "dateBGGebDatum"
	fieldMemberNationality = "txtfBGStaatsangehoerigkeit"
)

var applicantGender = choiceGroup[model.Gender]{
	model.GenderMale:    "chbxPersonMaennlich",
	model.GenderFemale:  "chbxPersonWeiblich",
	model.GenderDiverse: "chbxPersonDivers",
}

// memberGender is used for partners and children on the annexes.
var memberGender = choiceGroup[model.Gender]{
	model.GenderMale:    "chbxBGMaennlich",
	model.GenderFemale:  "chbxBGWeiblich",
	model.GenderDiverse: "chbxBGDivers",
}

var applicantMaritalStatus = choiceGroup[model.MaritalStatus]{
	model.MaritalSingle:      "chbxPersonFamStandLedig",
	model.MaritalMarried:     "chbxPersonFamStandVerheiratet",
	model.MaritalWidowed:     "chbxPersonFamStandVerwitwet",
	model.MaritalPartnership: "chbxPersonFamStandEingetrLeben",
	model.MaritalSeparated:   "chbxPersonFamStandGetrennt",
	model.MaritalDivorced:    "chbxPersonFamStandGeschieden",
}

// The additional persons annex only offers these three boxes.
var memberMaritalStatus = choiceGroup[model.MaritalStatus]{
	model.MaritalSingle:      "chbxFamilienstandLedig",
	model.MaritalMarried:     "chbxFamilienstandVerheiratet",
	model.MaritalPartnership: "chbxFamilienstandLebenspartnerschaft",
}

var energySources = choiceGroup[string]{
	model.EnergyGas:         "chbxEnergiequellenGas",
	model.EnergyElectricity: "chbxEnergiequellenStrom",
	model.EnergyOil:         "chbxEnergiequellenOel",
	model.EnergyDistrict:    "chbxEnergiequellenFernwaerme",
}

var heatingSystems = choiceGroup[string]{
	model.HeatingCentral: "chbxHeizungZentralheizung",
	model.HeatingStove:   "chbxHeizungsartEinzelofen",
}

// header writes the applicant's identity, present on every template.
func header(m FieldMap, p *model.Profile) {
	m.setText(fieldApplicantFirstName, p.Personal.FirstName)
	m.setText(fieldApplicantLastName, p.Personal.LastName)
	m.setText(fieldApplicantBirthDate, p.Personal.BirthDate)
}

func orDefaultNationality(n string) string {
	if n == "" {
		return model.DefaultNationality
	}
	return n
}
