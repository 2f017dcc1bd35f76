package forms

import (
	"fmt"
	"time"

	"benefit-engine/internal/model"
)

// RequiredForms resolves the forms for p as of today.
func RequiredForms(p *model.Profile) []RequiredForm {
	return RequiredFormsAt(p, time.Now())
}

// RequiredFormsAt resolves the forms for p, classifying children by their age
// on ref. Each rule is evaluated on its own; rule order is output order.
func RequiredFormsAt(p *model.Profile, ref time.Time) []RequiredForm {
	forms := []RequiredForm{
		{
			ID:          "hauptantrag",
			Name:        "Hauptantrag (HA)",
			Template:    TemplateMainApplication,
			Description: "Hauptantrag auf Bürgergeld",
			Subject:     Applicant(),
		},
		{
			ID:          "anlage-kdu",
			Name:        "Anlage KDU",
			Template:    TemplateHousingCosts,
			Description: "Kosten der Unterkunft und Heizung",
			Subject:     Applicant(),
		},
		{
			ID:          "anlage-vm",
			Name:        "Anlage VM",
			Template:    TemplateAssets,
			Description: "Vermögen",
			Subject:     Applicant(),
		},
	}

	if p.Income.HasIncome {
		forms = append(forms, RequiredForm{
			ID:          "anlage-ek",
			Name:        "Anlage EK",
			Template:    TemplateIncome,
			Description: "Einkommen",
			ForPerson:   p.Personal.FullName(),
			Subject:     Applicant(),
		})
	}

	if p.Income.PartnerHasIncome && p.PartnerPresent() {
		forms = append(forms, RequiredForm{
			ID:          "anlage-ek-partner",
			Name:        "Anlage EK (Partner/in)",
			Template:    TemplateIncome,
			Description: "Einkommen Partner/in",
			ForPerson:   p.Family.Partner.FullName(),
			Subject:     Partner(),
		})
	}

	if p.PartnerPresent() {
		forms = append(forms, RequiredForm{
			ID:          "anlage-wep-partner",
			Name:        "Anlage WEP (Partner/in)",
			Template:    TemplateAdditionalPersons,
			Description: "Weitere Personen der Bedarfsgemeinschaft",
			ForPerson:   p.Family.Partner.FullName(),
			Subject:     Partner(),
		})
	}

	for i := range p.Family.Children {
		child := &p.Family.Children[i]
		if AgeAt(child.BirthDate, ref) < ChildAnnexAgeLimit {
			forms = append(forms, RequiredForm{
				ID:          fmt.Sprintf("anlage-ki-%d", i),
				Name:        fmt.Sprintf("Anlage KI (%s)", child.FirstName),
				Template:    TemplateChild,
				Description: "Kind unter 15: " + child.FullName(),
				ForPerson:   child.FullName(),
				Subject:     Child(i),
			})
			continue
		}
		forms = append(forms, RequiredForm{
			ID:          fmt.Sprintf("anlage-wep-kind-%d", i),
			Name:        fmt.Sprintf("Anlage WEP (%s)", child.FirstName),
			Template:    TemplateAdditionalPersons,
			Description: "Kind ab 15: " + child.FullName(),
			ForPerson:   child.FullName(),
			Subject:     Child(i),
		})
	}

	return forms
}
