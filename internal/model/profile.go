package model

// Gender values match the choice options offered by the question catalog.
type Gender string

const (
	GenderUnset   Gender = ""
	GenderMale    Gender = "maennlich"
	GenderFemale  Gender = "weiblich"
	GenderDiverse Gender = "divers"
)

type MaritalStatus string

const (
	MaritalUnset       MaritalStatus = ""
	MaritalSingle      MaritalStatus = "ledig"
	MaritalMarried     MaritalStatus = "verheiratet"
	MaritalDivorced    MaritalStatus = "geschieden"
	MaritalSeparated   MaritalStatus = "getrennt"
	MaritalWidowed     MaritalStatus = "verwitwet"
	MaritalPartnership MaritalStatus = "lebenspartnerschaft"
)

type Tenancy string

const (
	TenancyUnset  Tenancy = ""
	TenancyRented Tenancy = "miete"
	TenancyOwned  Tenancy = "eigentum"
)

const (
	EnergyGas         = "gas"
	EnergyElectricity = "strom"
	EnergyOil         = "oel"
	EnergyDistrict    = "fernwaerme"

	HeatingCentral = "zentral"
	HeatingStove   = "einzel"
)

// DefaultNationality is the household default used when none was given.
const DefaultNationality = "deutsch"

// Profile is the applicant's complete answer set. Resolvers and mappers only
// read it; the question flow replaces it with a fresh snapshot per answer.
type Profile struct {
	Personal Personal `json:"personal"`
	Housing  Housing  `json:"housing"`
	Family   Family   `json:"family"`
	Income   Income   `json:"income"`
	Assets   Assets   `json:"assets"`
	Bank     Bank     `json:"bank"`
}

type Personal struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"` // DD.MM.YYYY
	Gender      Gender `json:"gender"`
	Nationality string `json:"nationality"`
	Phone       string `json:"phone"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
}

// Housing amounts are kept as entered; they are only meaningful when rented.
type Housing struct {
	Tenancy       Tenancy `json:"tenancy"`
	ColdRent      string  `json:"cold_rent"`
	UtilityCosts  string  `json:"utility_costs"`
	HeatingCosts  string  `json:"heating_costs"`
	LivingArea    string  `json:"living_area"`
	RoomCount     string  `json:"room_count"`
	ResidentCount int     `json:"resident_count"`
	EnergySource  string  `json:"energy_source"`
	HeatingSystem string  `json:"heating_system"`
}

type Family struct {
	MaritalStatus MaritalStatus `json:"marital_status"`
	HasPartner    bool          `json:"has_partner"`
	Partner       *Partner      `json:"partner,omitempty"`
	Children      []Child       `json:"children"`
}

type Partner struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	Gender      Gender `json:"gender"`
	Nationality string `json:"nationality"`
}

type Child struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Gender    Gender `json:"gender"`
}

type Income struct {
	HasIncome        bool   `json:"has_income"`
	Employer         string `json:"employer"`
	Gross            string `json:"gross"`
	Net              string `json:"net"`
	ChildBenefit     string `json:"child_benefit"`
	Alimony          string `json:"alimony"`
	OtherIncome      string `json:"other_income"`
	PartnerHasIncome bool   `json:"partner_has_income"`
	PartnerEmployer  string `json:"partner_employer"`
	PartnerGross     string `json:"partner_gross"`
	PartnerNet       string `json:"partner_net"`
}

type Assets struct {
	BankBalance         string `json:"bank_balance"`
	Car                 string `json:"car"`
	CarValue            string `json:"car_value"`
	LifeInsurance       string `json:"life_insurance"`
	OwnsOtherRealEstate bool   `json:"owns_other_real_estate"`
}

type Bank struct {
	AccountHolder string `json:"account_holder"`
	IBAN          string `json:"iban"`
}

// NewProfile returns the empty profile a conversation starts from.
func NewProfile() *Profile {
	return &Profile{
		Personal: Personal{Nationality: DefaultNationality},
		Housing:  Housing{ResidentCount: 1},
		Family:   Family{Children: []Child{}},
	}
}

// Clone returns a deep copy; mutating it never affects p.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	if p.Family.Partner != nil {
		partner := *p.Family.Partner
		c.Family.Partner = &partner
	}
	c.Family.Children = make([]Child, len(p.Family.Children))
	copy(c.Family.Children, p.Family.Children)
	return &c
}

func (p *Personal) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

func (p *Partner) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

func (c *Child) FullName() string {
	return joinName(c.FirstName, c.LastName)
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
