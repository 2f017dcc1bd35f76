package mapping

import (
	"time"

	"benefit-engine/internal/forms"
	"benefit-engine/internal/model"
)

// Mapper turns a profile into the field map of one template. Subject selects
// the household member for per-person templates; now stamps the signature
// date. Mappers never fail: missing source values leave fields out.
type Mapper interface {
	Map(p *model.Profile, s forms.Subject, now time.Time) FieldMap
}

var registry = map[forms.Template]Mapper{
	forms.TemplateMainApplication:   MainApplication{},
	forms.TemplateHousingCosts:      HousingCostsAnnex{},
	forms.TemplateAssets:            AssetsAnnex{},
	forms.TemplateIncome:            IncomeAnnex{},
	forms.TemplateAdditionalPersons: AdditionalPersonsAnnex{},
	forms.TemplateChild:             ChildAnnex{},
}

func Get(t forms.Template) (Mapper, bool) {
	m, ok := registry[t]
	return m, ok
}

// MapForm maps p onto the template of f. Unknown templates yield an empty map.
func MapForm(p *model.Profile, f forms.RequiredForm, now time.Time) FieldMap {
	m, ok := Get(f.Template)
	if !ok {
		return FieldMap{}
	}
	return m.Map(p, f.Subject, now)
}
