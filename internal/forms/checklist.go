package forms

import (
	"fmt"
	"strings"

	"benefit-engine/internal/model"
)

// DocumentChecklist lists the supporting documents for p. It shares its
// conditions with RequiredForms but is resolved independently.
func DocumentChecklist(p *model.Profile) []string {
	docs := []string{"Personalausweis oder Reisepass (Kopie)"}

	if p.Housing.Tenancy == model.TenancyRented {
		docs = append(docs, "Mietvertrag (Kopie)", "Letzte Nebenkostenabrechnung")
	}
	if p.Income.HasIncome {
		docs = append(docs, "Lohnabrechnungen der letzten 3 Monate", "Arbeitsvertrag (Kopie)")
	}
	if p.Income.ChildBenefit != "" {
		docs = append(docs, "Kindergeldbescheid")
	}
	if p.Assets.BankBalance != "" {
		docs = append(docs, "Kontoauszüge der letzten 3 Monate (alle Konten)")
	}
	if p.Assets.Car != "" {
		docs = append(docs, "KFZ-Schein / Fahrzeugbrief (Kopie)")
	}
	if p.Assets.LifeInsurance != "" {
		docs = append(docs, "Nachweis Lebensversicherung")
	}
	if p.Family.HasPartner {
		docs = append(docs, "Personalausweis Partner/in (Kopie)")
		if p.Family.MaritalStatus == model.MaritalMarried {
			docs = append(docs, "Heiratsurkunde (Kopie)")
		}
	}
	if len(p.Family.Children) > 0 {
		docs = append(docs, "Geburtsurkunde(n) der Kinder")
	}

	return append(docs,
		"Bescheid über Arbeitslosengeld I (falls vorhanden)",
		"Krankenversicherungsnachweis",
	)
}

// ChecklistFilename is the archive entry holding ChecklistText.
const ChecklistFilename = "Checkliste.txt"

// ChecklistText renders the checklist shipped alongside the filled forms.
func ChecklistText(docs []string, forms []RequiredForm) string {
	var b strings.Builder
	b.WriteString("CHECKLISTE - Dokumente für Ihren Bürgergeld-Antrag\n")
	b.WriteString(strings.Repeat("=", 55))
	b.WriteString("\n\nBitte legen Sie folgende Unterlagen bei:\n\n")
	for i, doc := range docs {
		fmt.Fprintf(&b, "☐ %d. %s\n", i+1, doc)
	}
	b.WriteString("\n\nGenerierte Formulare:\n\n")
	for _, f := range forms {
		if f.ForPerson != "" {
			fmt.Fprintf(&b, "✓ %s (%s)\n", f.Name, f.ForPerson)
			continue
		}
		fmt.Fprintf(&b, "✓ %s\n", f.Name)
	}
	return b.String()
}
