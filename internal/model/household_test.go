package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func residentsInvariant(t *testing.T, p *Profile) {
	t.Helper()
	want := 1 + len(p.Family.Children)
	if p.Family.HasPartner {
		want++
	}
	require.Equal(t, want, p.Housing.ResidentCount)
}

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile()
	assert.Equal(t, DefaultNationality, p.Personal.Nationality)
	assert.Equal(t, 1, p.Housing.ResidentCount)
	assert.NotNil(t, p.Family.Children)
	assert.Nil(t, p.Family.Partner)
}

func TestResidentCountFollowsHousehold(t *testing.T) {
	p := NewProfile()
	residentsInvariant(t, p)

	steps := []func(){
		func() { p.SetHasPartner(true) },
		func() { p.AddChild(Child{FirstName: "Emma"}) },
		func() { p.AddChild(Child{FirstName: "Ben"}) },
		func() { p.SetHasPartner(false) },
		func() { p.RemoveChild(0) },
		func() { p.RemoveChild(7) },
		func() { p.SetHasPartner(true) },
		func() { p.RemoveChild(0) },
	}
	for _, step := range steps {
		step()
		residentsInvariant(t, p)
	}
	assert.Equal(t, 2, p.Housing.ResidentCount)
}

func TestSetHasPartnerFalseDropsPartnerData(t *testing.T) {
	p := NewProfile()
	p.SetHasPartner(true)
	require.NotNil(t, p.Family.Partner)
	assert.Equal(t, DefaultNationality, p.Family.Partner.Nationality)

	p.Family.Partner.FirstName = "Lena"
	p.Income.PartnerHasIncome = true
	p.Income.PartnerEmployer = "Bäckerei Kurz"

	p.SetHasPartner(false)
	assert.Nil(t, p.Family.Partner)
	assert.False(t, p.Income.PartnerHasIncome)
	assert.Empty(t, p.Income.PartnerEmployer)
	assert.False(t, p.PartnerPresent())
}

func TestEnsurePartnerKeepsExistingRecord(t *testing.T) {
	p := NewProfile()
	first := p.EnsurePartner()
	first.FirstName = "Lena"
	assert.Same(t, first, p.EnsurePartner())
}

func TestCloneIsDeep(t *testing.T) {
	p := NewProfile()
	p.SetHasPartner(true)
	p.Family.Partner.FirstName = "Lena"
	p.AddChild(Child{FirstName: "Emma"})

	c := p.Clone()
	c.Family.Partner.FirstName = "Other"
	c.Family.Children[0].FirstName = "Other"
	c.AddChild(Child{FirstName: "Ben"})

	assert.Equal(t, "Lena", p.Family.Partner.FirstName)
	assert.Equal(t, "Emma", p.Family.Children[0].FirstName)
	assert.Len(t, p.Family.Children, 1)
	assert.Nil(t, (*Profile)(nil).Clone())
}

func TestNormalizeRepairsStaleState(t *testing.T) {
	p := &Profile{
		Family: Family{Partner: &Partner{FirstName: "Lena"}},
		Income: Income{PartnerHasIncome: true},
	}
	p.Normalize()
	assert.Nil(t, p.Family.Partner)
	assert.False(t, p.Income.PartnerHasIncome)
	assert.NotNil(t, p.Family.Children)
	residentsInvariant(t, p)
}

func TestChildOutOfRange(t *testing.T) {
	p := NewProfile()
	assert.Nil(t, p.Child(0))
	assert.Nil(t, p.Child(-1))
	p.AddChild(Child{FirstName: "Emma"})
	require.NotNil(t, p.Child(0))
	assert.Equal(t, "Emma", p.Child(0).FirstName)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Maria Müller", (&Personal{FirstName: "Maria", LastName: "Müller"}).FullName())
	assert.Equal(t, "Maria", (&Personal{FirstName: "Maria"}).FullName())
	assert.Equal(t, "Müller", (&Child{LastName: "Müller"}).FullName())
	assert.Equal(t, "", (&Partner{}).FullName())
}
