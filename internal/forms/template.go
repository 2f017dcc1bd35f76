package forms

// Template identifies one of the fixed PDF templates. The value is the
// template's file name.
type Template string

const (
	TemplateMainApplication   Template = "hauptantrag.pdf"
	TemplateHousingCosts      Template = "anlage-kdu.pdf"
	TemplateAssets            Template = "anlage-vm.pdf"
	TemplateIncome            Template = "anlage-ek.pdf"
	TemplateAdditionalPersons Template = "anlage-wep.pdf"
	TemplateChild             Template = "anlage-ki.pdf"
)

// Templates lists every template the engine can fill.
func Templates() []Template {
	return []Template{
		TemplateMainApplication,
		TemplateHousingCosts,
		TemplateAssets,
		TemplateIncome,
		TemplateAdditionalPersons,
		TemplateChild,
	}
}

func (t Template) Filename() string {
	return string(t)
}

type SubjectKind int

const (
	SubjectApplicant SubjectKind = iota
	SubjectPartner
	SubjectChild
)

// Subject names the household member a per-person form is about.
type Subject struct {
	Kind       SubjectKind
	ChildIndex int
}

func Applicant() Subject { return Subject{Kind: SubjectApplicant} }

func Partner() Subject { return Subject{Kind: SubjectPartner} }

func Child(index int) Subject { return Subject{Kind: SubjectChild, ChildIndex: index} }

// RequiredForm is one document the applicant has to hand in.
type RequiredForm struct {
	ID          string
	Name        string
	Template    Template
	Description string
	ForPerson   string
	Subject     Subject
}

func (f RequiredForm) Filename() string {
	return f.Template.Filename()
}
