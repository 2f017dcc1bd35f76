package flow

import (
	"fmt"

	"benefit-engine/internal/model"
	"benefit-engine/internal/questions"
)

// ChildField is one step of the per-child micro sequence.
type ChildField string

const (
	ChildFirstName ChildField = "vorname"
	ChildBirthDate ChildField = "geburtsdatum"
	ChildGender    ChildField = "geschlecht"
)

// State is one of MainFlow, CollectingChild or AwaitingMoreChildren.
type State interface {
	isState()
}

// MainFlow asks catalog questions in declaration order.
type MainFlow struct{}

// CollectingChild asks Field for the child at Index.
type CollectingChild struct {
	Index int
	Field ChildField
}

// AwaitingMoreChildren asks whether another child follows the one at Index.
type AwaitingMoreChildren struct {
	Index int
}

func (MainFlow) isState()             {}
func (CollectingChild) isState()      {}
func (AwaitingMoreChildren) isState() {}

// childQuestion synthesises the prompt for one child field. It is not part of
// the catalog and only exists for display and history.
func childQuestion(s CollectingChild, p *model.Profile) *questions.Question {
	q := &questions.Question{
		ID:           fmt.Sprintf("child_%d_%s", s.Index, s.Field),
		Section:      questions.SectionFamily,
		SectionLabel: questions.SectionLabel(questions.SectionFamily),
		Required:     true,
	}
	name := "das Kind"
	if c := p.Child(s.Index); c != nil && c.FirstName != "" {
		name = c.FirstName
	}
	switch s.Field {
	case ChildFirstName:
		q.Type = questions.TypeText
		q.Text = fmt.Sprintf("Wie heißt Ihr %d. Kind mit Vornamen?", s.Index+1)
		q.Placeholder = "z.B. Emma"
	case ChildBirthDate:
		q.Type = questions.TypeDate
		q.Text = fmt.Sprintf("Wann ist %s geboren? (TT.MM.JJJJ)", name)
		q.Placeholder = "TT.MM.JJJJ"
	case ChildGender:
		q.Type = questions.TypeChoice
		q.Text = fmt.Sprintf("Geschlecht von %s?", name)
		q.Options = questions.GenderOptions
	}
	return q
}

func moreChildrenQuestion(s AwaitingMoreChildren) *questions.Question {
	return &questions.Question{
		ID:           fmt.Sprintf("child_more_%d", s.Index),
		Section:      questions.SectionFamily,
		SectionLabel: questions.SectionLabel(questions.SectionFamily),
		Text:         "Haben Sie noch ein weiteres Kind?",
		Type:         questions.TypeChoice,
		Required:     true,
		Options: []questions.Option{
			{Value: questions.Yes, Label: "Ja, noch ein Kind"},
			{Value: questions.No, Label: "Nein, das waren alle"},
		},
	}
}
