package questions

import (
	"strconv"
	"strings"

	"benefit-engine/internal/model"
)

// Flow-control questions. They are recorded in the history but never write
// into the profile.
const (
	IDHasChildren = "hatKinder"
	IDChildCount  = "anzahlKinder"
	IDHasAssets   = "hatVermoegen"
)

const (
	SectionPersonal = iota
	SectionAddress
	SectionHousing
	SectionFamily
	SectionIncome
	SectionAssets
	SectionBank
	SectionSummary

	TotalSections = SectionSummary + 1
)

var sectionLabels = [TotalSections]string{
	"Persönliche Daten",
	"Adresse & Kontakt",
	"Wohnsituation",
	"Haushalt & Familie",
	"Einkommen",
	"Vermögen",
	"Bankverbindung",
	"Zusammenfassung",
}

// SectionLabel returns the progress label of a section index.
func SectionLabel(section int) string {
	if section < 0 || section >= TotalSections {
		return ""
	}
	return sectionLabels[section]
}

// Answer used by yes/no choices.
const (
	Yes = "true"
	No  = "false"
)

// GenderOptions is shared by every gender question, including the child flow.
var GenderOptions = []Option{
	{Value: string(model.GenderFemale), Label: "Weiblich"},
	{Value: string(model.GenderMale), Label: "Männlich"},
	{Value: string(model.GenderDiverse), Label: "Divers"},
}

func yesNo(yes, no string) []Option {
	return []Option{{Value: Yes, Label: yes}, {Value: No, Label: no}}
}

// Catalog is the ordered list of questions. Declaration order is the only
// ordering rule.
type Catalog []Question

var defaultCatalog = Catalog{
	// Persönliche Daten
	{
		ID: "vorname", Section: SectionPersonal, Type: TypeText, Required: true,
		Text:        "Wie heißen Sie mit Vornamen?",
		Subtext:     "Wir beginnen mit den Grundlagen für Ihren Antrag.",
		Placeholder: "z.B. Maria",
		Target:      text("personal.first_name", func(p *model.Profile) *string { return &p.Personal.FirstName }),
	},
	{
		ID: "nachname", Section: SectionPersonal, Type: TypeText, Required: true,
		Text:        "Und Ihr Nachname?",
		Placeholder: "z.B. Müller",
		Target:      text("personal.last_name", func(p *model.Profile) *string { return &p.Personal.LastName }),
	},
	{
		ID: "geburtsdatum", Section: SectionPersonal, Type: TypeDate, Required: true,
		Text:        "Wann sind Sie geboren?",
		Subtext:     "Bitte im Format TT.MM.JJJJ eingeben.",
		Placeholder: "z.B. 15.03.1985",
		Target:      text("personal.birth_date", func(p *model.Profile) *string { return &p.Personal.BirthDate }),
	},
	{
		ID: "geschlecht", Section: SectionPersonal, Type: TypeChoice, Required: true,
		Text:    "Welches Geschlecht soll im Antrag stehen?",
		Options: GenderOptions,
		Target:  text("personal.gender", func(p *model.Profile) *model.Gender { return &p.Personal.Gender }),
	},
	{
		ID: "staatsangehoerigkeit", Section: SectionPersonal, Type: TypeText, Required: true,
		Text:        "Welche Staatsangehörigkeit haben Sie?",
		Placeholder: "z.B. deutsch",
		Target:      text("personal.nationality", func(p *model.Profile) *string { return &p.Personal.Nationality }),
		AutoFill:    func(p *model.Profile) string { return p.Personal.Nationality },
	},

	// Adresse & Kontakt
	{
		ID: "strasse", Section: SectionAddress, Type: TypeText, Required: true,
		Text:        "In welcher Straße wohnen Sie?",
		Subtext:     "Ihre Adresse wird für alle Formulare benötigt.",
		Placeholder: "z.B. Hauptstraße",
		Target:      text("personal.street", func(p *model.Profile) *string { return &p.Personal.Street }),
	},
	{
		ID: "hausnummer", Section: SectionAddress, Type: TypeText, Required: true,
		Text:        "Hausnummer?",
		Placeholder: "z.B. 42a",
		Target:      text("personal.house_number", func(p *model.Profile) *string { return &p.Personal.HouseNumber }),
	},
	{
		ID: "plz", Section: SectionAddress, Type: TypeText, Required: true,
		Text:        "Postleitzahl?",
		Placeholder: "z.B. 10115",
		Target:      text("personal.postal_code", func(p *model.Profile) *string { return &p.Personal.PostalCode }),
	},
	{
		ID: "ort", Section: SectionAddress, Type: TypeText, Required: true,
		Text:        "Ort?",
		Placeholder: "z.B. Berlin",
		Target:      text("personal.city", func(p *model.Profile) *string { return &p.Personal.City }),
	},
	{
		ID: "telefon", Section: SectionAddress, Type: TypePhone,
		Text:        "Unter welcher Telefonnummer sind Sie erreichbar?",
		Subtext:     "Das Jobcenter kontaktiert Sie ggf. telefonisch.",
		Placeholder: "z.B. 0170 1234567",
		Target:      text("personal.phone", func(p *model.Profile) *string { return &p.Personal.Phone }),
		Transform:   collapseSpaces,
	},

	// Wohnsituation
	{
		ID: "wohnart", Section: SectionHousing, Type: TypeChoice, Required: true,
		Text:    "Wohnen Sie zur Miete oder im Eigentum?",
		Subtext: "Ihre Wohnkosten werden im Antrag berücksichtigt.",
		Options: []Option{
			{Value: string(model.TenancyRented), Label: "Zur Miete"},
			{Value: string(model.TenancyOwned), Label: "Eigentum"},
		},
		Target: text("housing.tenancy", func(p *model.Profile) *model.Tenancy { return &p.Housing.Tenancy }),
	},
	{
		ID: "grundmiete", Section: SectionHousing, Type: TypeNumber, Required: true,
		Text:        "Wie hoch ist Ihre Kaltmiete pro Monat?",
		Subtext:     "Die Grundmiete ohne Nebenkosten und Heizung.",
		Placeholder: "z.B. 450",
		Target:      text("housing.cold_rent", func(p *model.Profile) *string { return &p.Housing.ColdRent }),
		Condition:   rents,
	},
	{
		ID: "nebenkosten", Section: SectionHousing, Type: TypeNumber, Required: true,
		Text:        "Wie hoch sind die Nebenkosten pro Monat?",
		Subtext:     "Wasser, Müll, Hausmeister usw. ohne Heizung.",
		Placeholder: "z.B. 120",
		Target:      text("housing.utility_costs", func(p *model.Profile) *string { return &p.Housing.UtilityCosts }),
		Condition:   rents,
	},
	{
		ID: "heizkosten", Section: SectionHousing, Type: TypeNumber, Required: true,
		Text:        "Und die Heizkosten pro Monat?",
		Placeholder: "z.B. 80",
		Target:      text("housing.heating_costs", func(p *model.Profile) *string { return &p.Housing.HeatingCosts }),
		Condition:   rents,
	},
	{
		ID: "wohnflaeche", Section: SectionHousing, Type: TypeNumber,
		Text:        "Wie groß ist Ihre Wohnung in m²?",
		Placeholder: "z.B. 65",
		Target:      text("housing.living_area", func(p *model.Profile) *string { return &p.Housing.LivingArea }),
	},
	{
		ID: "anzahlRaeume", Section: SectionHousing, Type: TypeNumber,
		Text:        "Wie viele Zimmer hat die Wohnung?",
		Subtext:     "Ohne Küche und Bad.",
		Placeholder: "z.B. 3",
		Target:      text("housing.room_count", func(p *model.Profile) *string { return &p.Housing.RoomCount }),
	},
	{
		ID: "energiequelle", Section: SectionHousing, Type: TypeChoice,
		Text: "Womit wird Ihre Wohnung beheizt?",
		Options: []Option{
			{Value: model.EnergyGas, Label: "Gas"},
			{Value: model.EnergyElectricity, Label: "Strom"},
			{Value: model.EnergyOil, Label: "Öl"},
			{Value: model.EnergyDistrict, Label: "Fernwärme"},
		},
		Target: text("housing.energy_source", func(p *model.Profile) *string { return &p.Housing.EnergySource }),
	},
	{
		ID: "heizungsart", Section: SectionHousing, Type: TypeChoice,
		Text: "Welche Art von Heizung haben Sie?",
		Options: []Option{
			{Value: model.HeatingCentral, Label: "Zentralheizung"},
			{Value: model.HeatingStove, Label: "Einzelofen"},
		},
		Target: text("housing.heating_system", func(p *model.Profile) *string { return &p.Housing.HeatingSystem }),
	},

	// Haushalt & Familie
	{
		ID: "familienstand", Section: SectionFamily, Type: TypeChoice, Required: true,
		Text: "Wie ist Ihr Familienstand?",
		Options: []Option{
			{Value: string(model.MaritalSingle), Label: "Ledig"},
			{Value: string(model.MaritalMarried), Label: "Verheiratet"},
			{Value: string(model.MaritalPartnership), Label: "Lebenspartnerschaft"},
			{Value: string(model.MaritalSeparated), Label: "Getrennt lebend"},
			{Value: string(model.MaritalDivorced), Label: "Geschieden"},
			{Value: string(model.MaritalWidowed), Label: "Verwitwet"},
		},
		Target: text("family.marital_status", func(p *model.Profile) *model.MaritalStatus { return &p.Family.MaritalStatus }),
	},
	{
		ID: "hatPartner", Section: SectionFamily, Type: TypeChoice, Required: true,
		Text:    "Leben Sie mit einem Partner oder einer Partnerin zusammen?",
		Subtext: "Auch ohne Ehe: wenn Sie zusammen wohnen und wirtschaften, bilden Sie eine Bedarfsgemeinschaft.",
		Options: yesNo("Ja, mit Partner/in", "Nein, allein"),
		Target:  hasPartner(),
	},
	{
		ID: "partner_vorname", Section: SectionFamily, Type: TypeText, Required: true,
		Text:        "Wie heißt Ihr/e Partner/in mit Vornamen?",
		Placeholder: "Vorname",
		Target:      partnerText("family.partner.first_name", func(p *model.Partner) *string { return &p.FirstName }),
		Condition:   livesWithPartner,
	},
	{
		ID: "partner_nachname", Section: SectionFamily, Type: TypeText, Required: true,
		Text:        "Nachname Ihres Partners / Ihrer Partnerin?",
		Placeholder: "Nachname",
		Target:      partnerText("family.partner.last_name", func(p *model.Partner) *string { return &p.LastName }),
		Condition:   livesWithPartner,
	},
	{
		ID: "partner_geburtsdatum", Section: SectionFamily, Type: TypeDate, Required: true,
		Text:        "Geburtsdatum Ihres Partners / Ihrer Partnerin?",
		Placeholder: "TT.MM.JJJJ",
		Target:      partnerText("family.partner.birth_date", func(p *model.Partner) *string { return &p.BirthDate }),
		Condition:   livesWithPartner,
	},
	{
		ID: "partner_geschlecht", Section: SectionFamily, Type: TypeChoice, Required: true,
		Text:      "Geschlecht Ihres Partners / Ihrer Partnerin?",
		Options:   GenderOptions,
		Target:    partnerText("family.partner.gender", func(p *model.Partner) *model.Gender { return &p.Gender }),
		Condition: livesWithPartner,
	},
	{
		ID: "partner_staatsangehoerigkeit", Section: SectionFamily, Type: TypeText,
		Text:        "Staatsangehörigkeit Ihres Partners / Ihrer Partnerin?",
		Placeholder: "z.B. deutsch",
		Target:      partnerText("family.partner.nationality", func(p *model.Partner) *string { return &p.Nationality }),
		Condition:   livesWithPartner,
		AutoFill:    func(*model.Profile) string { return model.DefaultNationality },
	},
	{
		ID: IDHasChildren, Section: SectionFamily, Type: TypeChoice, Required: true,
		Text:    "Haben Sie Kinder, die bei Ihnen leben?",
		Options: yesNo("Ja", "Nein"),
		Target:  trigger("_has_children"),
	},
	{
		ID: IDChildCount, Section: SectionFamily, Type: TypeNumber, Required: true,
		Text:        "Wie viele Kinder leben bei Ihnen?",
		Placeholder: "z.B. 2",
		Target:      trigger("_child_count"),
		Condition:   hasChildren,
		AutoFill:    func(p *model.Profile) string { return strconv.Itoa(len(p.Family.Children)) },
	},

	// Einkommen
	{
		ID: "hatEinkommen", Section: SectionIncome, Type: TypeChoice, Required: true,
		Text:    "Sind Sie derzeit erwerbstätig?",
		Subtext: "Also haben Sie einen Job, Minijob oder sind selbstständig?",
		Options: yesNo("Ja, ich arbeite", "Nein"),
		Target:  flag("income.has_income", func(p *model.Profile) *bool { return &p.Income.HasIncome }),
	},
	{
		ID: "arbeitgeber", Section: SectionIncome, Type: TypeText, Required: true,
		Text:        "Bei wem sind Sie angestellt?",
		Placeholder: "Name des Arbeitgebers",
		Target:      text("income.employer", func(p *model.Profile) *string { return &p.Income.Employer }),
		Condition:   earns,
	},
	{
		ID: "brutto", Section: SectionIncome, Type: TypeNumber, Required: true,
		Text:        "Wie hoch ist Ihr Bruttoeinkommen pro Monat?",
		Placeholder: "z.B. 1200",
		Target:      text("income.gross", func(p *model.Profile) *string { return &p.Income.Gross }),
		Condition:   earns,
	},
	{
		ID: "netto", Section: SectionIncome, Type: TypeNumber, Required: true,
		Text:        "Und das Nettoeinkommen?",
		Subtext:     "Der Betrag, der auf Ihrem Konto ankommt.",
		Placeholder: "z.B. 950",
		Target:      text("income.net", func(p *model.Profile) *string { return &p.Income.Net }),
		Condition:   earns,
	},
	{
		ID: "kindergeld", Section: SectionIncome, Type: TypeNumber,
		Text:        "Erhalten Sie Kindergeld?",
		Subtext:     "Falls ja, geben Sie den monatlichen Gesamtbetrag ein. Falls nein, lassen Sie das Feld leer.",
		Placeholder: "z.B. 500",
		Target:      text("income.child_benefit", func(p *model.Profile) *string { return &p.Income.ChildBenefit }),
		Condition:   hasChildren,
	},
	{
		ID: "unterhalt", Section: SectionIncome, Type: TypeNumber,
		Text:        "Erhalten Sie Unterhaltszahlungen?",
		Subtext:     "Falls ja, monatlicher Betrag. Falls nein, überspringen.",
		Placeholder: "z.B. 300",
		Target:      text("income.alimony", func(p *model.Profile) *string { return &p.Income.Alimony }),
	},
	{
		ID: "partnerHatEinkommen", Section: SectionIncome, Type: TypeChoice,
		Text:      "Ist Ihr/e Partner/in erwerbstätig?",
		Options:   yesNo("Ja", "Nein"),
		Target:    flag("income.partner_has_income", func(p *model.Profile) *bool { return &p.Income.PartnerHasIncome }),
		Condition: livesWithPartner,
	},
	{
		ID: "partnerArbeitgeber", Section: SectionIncome, Type: TypeText,
		Text:        "Bei wem ist Ihr/e Partner/in angestellt?",
		Placeholder: "Name des Arbeitgebers",
		Target:      text("income.partner_employer", func(p *model.Profile) *string { return &p.Income.PartnerEmployer }),
		Condition:   partnerEarns,
	},
	{
		ID: "partnerBrutto", Section: SectionIncome, Type: TypeNumber,
		Text:        "Bruttoeinkommen Ihres Partners / Ihrer Partnerin?",
		Placeholder: "z.B. 1500",
		Target:      text("income.partner_gross", func(p *model.Profile) *string { return &p.Income.PartnerGross }),
		Condition:   partnerEarns,
	},
	{
		ID: "partnerNetto", Section: SectionIncome, Type: TypeNumber,
		Text:        "Nettoeinkommen Ihres Partners / Ihrer Partnerin?",
		Placeholder: "z.B. 1100",
		Target:      text("income.partner_net", func(p *model.Profile) *string { return &p.Income.PartnerNet }),
		Condition:   partnerEarns,
	},

	// Vermögen
	{
		ID: IDHasAssets, Section: SectionAssets, Type: TypeChoice, Required: true,
		Text:    "Besitzen Sie oder Ihre Bedarfsgemeinschaft Vermögen über 40.000 €?",
		Subtext: "In der Karenzzeit (erstes Jahr) gilt ein Freibetrag von 40.000 € für die erste Person + 15.000 € für jede weitere.",
		Options: yesNo("Ja, über 40.000 €", "Nein, darunter"),
		Target:  trigger("_has_assets"),
	},
	{
		ID: "bankguthaben", Section: SectionAssets, Type: TypeNumber,
		Text:        "Wie hoch ist Ihr gesamtes Bankguthaben?",
		Subtext:     "Alle Konten zusammen (Girokonto, Sparkonto, etc.).",
		Placeholder: "z.B. 2500",
		Target:      text("assets.bank_balance", func(p *model.Profile) *string { return &p.Assets.BankBalance }),
	},
	{
		ID: "auto", Section: SectionAssets, Type: TypeText,
		Text:        "Besitzen Sie ein Auto? Wenn ja, welches?",
		Subtext:     "Ein angemessenes KFZ (bis ca. 15.000 €) wird nicht angerechnet. Falls nein, überspringen.",
		Placeholder: "z.B. VW Golf, Baujahr 2012",
		Target:      text("assets.car", func(p *model.Profile) *string { return &p.Assets.Car }),
	},
	{
		ID: "autoWert", Section: SectionAssets, Type: TypeNumber,
		Text:        "Ungefährer Wert des Autos?",
		Placeholder: "z.B. 8000",
		Target:      text("assets.car_value", func(p *model.Profile) *string { return &p.Assets.CarValue }),
		Condition:   func(p *model.Profile) bool { return p.Assets.Car != "" },
	},
	{
		ID: "lebensversicherung", Section: SectionAssets, Type: TypeNumber,
		Text:        "Haben Sie eine Lebensversicherung? Wenn ja, aktueller Rückkaufswert?",
		Subtext:     "Falls nein, einfach überspringen.",
		Placeholder: "z.B. 5000",
		Target:      text("assets.life_insurance", func(p *model.Profile) *string { return &p.Assets.LifeInsurance }),
	},
	{
		ID: "immobilien", Section: SectionAssets, Type: TypeChoice,
		Text:    "Besitzen Sie weitere Immobilien (außer der selbst bewohnten)?",
		Options: yesNo("Ja", "Nein"),
		Target:  flag("assets.owns_other_real_estate", func(p *model.Profile) *bool { return &p.Assets.OwnsOtherRealEstate }),
	},

	// Bankverbindung
	{
		ID: "kontoinhaber", Section: SectionBank, Type: TypeText, Required: true,
		Text:        "Auf welches Konto soll das Bürgergeld überwiesen werden?",
		Subtext:     "Name des Kontoinhabers (meistens Ihr eigener Name).",
		Placeholder: "z.B. Maria Müller",
		Target:      text("bank.account_holder", func(p *model.Profile) *string { return &p.Bank.AccountHolder }),
		AutoFill: func(p *model.Profile) string {
			if p.Personal.FirstName == "" || p.Personal.LastName == "" {
				return ""
			}
			return p.Personal.FullName()
		},
	},
	{
		ID: "iban", Section: SectionBank, Type: TypeIBAN, Required: true,
		Text:        "Wie lautet Ihre IBAN?",
		Subtext:     "Die IBAN finden Sie auf Ihrer Bankkarte oder im Online-Banking.",
		Placeholder: "DE89 3704 0044 0532 0130 00",
		Target:      text("bank.iban", func(p *model.Profile) *string { return &p.Bank.IBAN }),
		Transform:   compactIBAN,
	},
}

func init() {
	for i := range defaultCatalog {
		defaultCatalog[i].SectionLabel = SectionLabel(defaultCatalog[i].Section)
	}
}

// Default returns the built-in catalog. The slice is shared; treat it as
// read-only.
func Default() Catalog {
	return defaultCatalog
}

// Lookup finds a catalog question by id.
func (c Catalog) Lookup(id string) (*Question, bool) {
	for i := range c {
		if c[i].ID == id {
			return &c[i], true
		}
	}
	return nil, false
}

func rents(p *model.Profile) bool            { return p.Housing.Tenancy == model.TenancyRented }
func livesWithPartner(p *model.Profile) bool { return p.Family.HasPartner }
func hasChildren(p *model.Profile) bool      { return len(p.Family.Children) > 0 }
func earns(p *model.Profile) bool            { return p.Income.HasIncome }
func partnerEarns(p *model.Profile) bool     { return p.Family.HasPartner && p.Income.PartnerHasIncome }

func collapseSpaces(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

func compactIBAN(v string) string {
	return strings.ToUpper(strings.Join(strings.Fields(v), ""))
}
