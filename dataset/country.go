package dataset

// FieldCountryName is the field under which a Country reports its name.
// It equals FieldCountry so country-level and company-level records can be
// filtered with the same spec.
const FieldCountryName = FieldCountry

// Country is one row of the digital-prosperity dataset: a country name and
// named numeric indicators such as internet penetration or GDP per capita.
type Country struct {
	Name    string             `json:"country"`
	Metrics map[string]float64 `json:"metrics"`
}

var _ Record = Country{}

// Field implements Record. "country" returns the name; any other name is
// looked up in Metrics.
func (c Country) Field(name string) (FieldValue, bool) {
	if name == FieldCountryName {
		return String(c.Name), true
	}

	v, ok := c.Metrics[name]
	if !ok {
		return FieldValue{}, false
	}

	return Number(v), true
}
