package flow

import (
	"errors"
	"strings"

	"benefit-engine/internal/model"
	"benefit-engine/internal/questions"
)

var ErrFlowComplete = errors.New("conversation is complete")

// SkippedDisplay is shown in the history for skipped optional questions.
const SkippedDisplay = "Übersprungen"

// AnsweredQuestion pairs a prompt with the stored and the displayed answer.
type AnsweredQuestion struct {
	Question *questions.Question
	Answer   string
	Display  string
}

// Conversation drives one applicant through the catalog. It is not safe for
// concurrent use; answers are applied one at a time.
type Conversation struct {
	catalog  questions.Catalog
	profile  *model.Profile
	history  []AnsweredQuestion
	answered map[string]bool
	state    State
}

func New(catalog questions.Catalog) *Conversation {
	c := &Conversation{catalog: catalog}
	c.Restart()
	return c
}

// Restart discards every answer.
func (c *Conversation) Restart() {
	c.profile = model.NewProfile()
	c.history = nil
	c.answered = make(map[string]bool)
	c.state = MainFlow{}
}

// Profile returns the current snapshot. Snapshots are replaced, never
// modified, so the caller may keep it but must not change it.
func (c *Conversation) Profile() *model.Profile {
	return c.profile
}

func (c *Conversation) State() State {
	return c.state
}

// History returns the answers in the order they were given.
func (c *Conversation) History() []AnsweredQuestion {
	out := make([]AnsweredQuestion, len(c.history))
	copy(out, c.history)
	return out
}

// Current returns the question awaiting an answer, or nil when done.
func (c *Conversation) Current() *questions.Question {
	switch s := c.state.(type) {
	case CollectingChild:
		return childQuestion(s, c.profile)
	case AwaitingMoreChildren:
		return moreChildrenQuestion(s)
	default:
		return c.catalog.Next(c.profile, c.answered)
	}
}

// Done reports whether every applicable question has been answered.
func (c *Conversation) Done() bool {
	return c.Current() == nil
}

// Section is the progress section of the current question.
func (c *Conversation) Section() int {
	if q := c.Current(); q != nil {
		return q.Section
	}
	return questions.SectionSummary
}

// Skip answers the current question with an empty value. Required questions
// cannot be skipped.
func (c *Conversation) Skip() error {
	return c.Submit("", SkippedDisplay)
}

// Submit answers the current question. display overrides the text recorded
// in the history; empty means the option label or the value itself.
func (c *Conversation) Submit(value, display string) error {
	q := c.Current()
	if q == nil {
		return ErrFlowComplete
	}
	value = strings.TrimSpace(value)
	if err := q.Check(value); err != nil {
		return err
	}
	if display == "" {
		display = q.DisplayValue(value)
	}

	switch s := c.state.(type) {
	case CollectingChild:
		c.profile = applyChildField(c.profile, s, value)
		c.state = s.next()
	case AwaitingMoreChildren:
		if value == questions.Yes {
			c.state = CollectingChild{Index: s.Index + 1, Field: ChildFirstName}
		} else {
			c.state = MainFlow{}
		}
	default:
		c.profile = questions.Apply(c.profile, q, value)
		c.answered[q.ID] = true
		if q.ID == questions.IDHasChildren && value == questions.Yes {
			c.state = CollectingChild{Index: len(c.profile.Family.Children), Field: ChildFirstName}
		}
	}

	c.history = append(c.history, AnsweredQuestion{Question: q, Answer: value, Display: display})
	return nil
}

func (s CollectingChild) next() State {
	switch s.Field {
	case ChildFirstName:
		return CollectingChild{Index: s.Index, Field: ChildBirthDate}
	case ChildBirthDate:
		return CollectingChild{Index: s.Index, Field: ChildGender}
	default:
		return AwaitingMoreChildren{Index: s.Index}
	}
}

func applyChildField(p *model.Profile, s CollectingChild, value string) *model.Profile {
	next := p.Clone()
	if s.Field == ChildFirstName {
		// the child's index is the next free slot
		next.AddChild(model.Child{FirstName: value, LastName: next.Personal.LastName})
		return next
	}
	child := next.Child(s.Index)
	if child == nil {
		return next
	}
	switch s.Field {
	case ChildBirthDate:
		child.BirthDate = value
	case ChildGender:
		child.Gender = model.Gender(value)
		next.RecountResidents()
	}
	return next
}
