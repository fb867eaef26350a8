package dataset

// Fortune-500 field names accepted by Company.Field.
const (
	FieldRank              = "rank"
	FieldCompany           = "company"
	FieldTicker            = "ticker"
	FieldSector            = "sector"
	FieldIndustry          = "industry"
	FieldProfitable        = "profitable"
	FieldCEO               = "ceo"
	FieldFounderIsCEO      = "founderIsCEO"
	FieldFemaleCEO         = "femaleCEO"
	FieldCompanyType       = "companyType"
	FieldWorldsMostAdmired = "worldsMostAdmired"
	FieldBestToWorkFor     = "bestToWorkFor"
	FieldNumberOfEmployees = "numberOfEmployees"
	FieldCountry           = "country"
	FieldWebsite           = "website"
	FieldWCGrade           = "wcGrade"
	FieldSustainableEnergy = "sustainableEnergy"
	FieldWCCO2PerVisit     = "wcCO2PerVisit"
	FieldMonthlyTrafficK   = "monthlyTrafficK"
	FieldTotalEmissions    = "totalEmissions"
)

// CompanyFields lists every Company field name in schema order.
var CompanyFields = []string{
	FieldRank, FieldCompany, FieldTicker, FieldSector, FieldIndustry,
	FieldProfitable, FieldCEO, FieldFounderIsCEO, FieldFemaleCEO,
	FieldCompanyType, FieldWorldsMostAdmired, FieldBestToWorkFor,
	FieldNumberOfEmployees, FieldCountry, FieldWebsite, FieldWCGrade,
	FieldSustainableEnergy, FieldWCCO2PerVisit, FieldMonthlyTrafficK,
	FieldTotalEmissions,
}

// Company is one Fortune-500 company with its website carbon metrics.
// TotalEmissions is in tonnes of CO2 per year; WCCO2PerVisit in grams.
// The metrics are nil when the source left them null or absent.
type Company struct {
	Rank              int      `json:"rank"`
	Company           string   `json:"company"`
	Ticker            string   `json:"ticker"`
	Sector            string   `json:"sector"`
	Industry          string   `json:"industry"`
	Profitable        bool     `json:"profitable"`
	CEO               string   `json:"ceo"`
	FounderIsCEO      bool     `json:"founderIsCEO"`
	FemaleCEO         bool     `json:"femaleCEO"`
	CompanyType       string   `json:"companyType"`
	WorldsMostAdmired bool     `json:"worldsMostAdmired"`
	BestToWorkFor     bool     `json:"bestToWorkFor"`
	NumberOfEmployees int      `json:"numberOfEmployees"`
	Country           string   `json:"country"`
	Website           string   `json:"website"`
	WCGrade           string   `json:"wcGrade"`
	SustainableEnergy bool     `json:"sustainableEnergy"`
	WCCO2PerVisit     *float64 `json:"wcCO2PerVisit"`
	MonthlyTrafficK   *float64 `json:"monthlyTrafficK"`
	TotalEmissions    *float64 `json:"totalEmissions"`
}

var _ Record = Company{}

// Metric returns a pointer to v, for filling Company metrics in code.
func Metric(v float64) *float64 {
	return &v
}

func metric(v *float64) (FieldValue, bool) {
	if v == nil {
		return FieldValue{}, false
	}

	return Number(*v), true
}

// Field implements Record.
func (c Company) Field(name string) (FieldValue, bool) {
	switch name {
	case FieldRank:
		return Number(float64(c.Rank)), true
	case FieldCompany:
		return String(c.Company), true
	case FieldTicker:
		return String(c.Ticker), true
	case FieldSector:
		return String(c.Sector), true
	case FieldIndustry:
		return String(c.Industry), true
	case FieldProfitable:
		return Bool(c.Profitable), true
	case FieldCEO:
		return String(c.CEO), true
	case FieldFounderIsCEO:
		return Bool(c.FounderIsCEO), true
	case FieldFemaleCEO:
		return Bool(c.FemaleCEO), true
	case FieldCompanyType:
		return String(c.CompanyType), true
	case FieldWorldsMostAdmired:
		return Bool(c.WorldsMostAdmired), true
	case FieldBestToWorkFor:
		return Bool(c.BestToWorkFor), true
	case FieldNumberOfEmployees:
		return Number(float64(c.NumberOfEmployees)), true
	case FieldCountry:
		return String(c.Country), true
	case FieldWebsite:
		return String(c.Website), true
	case FieldWCGrade:
		return String(c.WCGrade), true
	case FieldSustainableEnergy:
		return Bool(c.SustainableEnergy), true
	case FieldWCCO2PerVisit:
		return metric(c.WCCO2PerVisit)
	case FieldMonthlyTrafficK:
		return metric(c.MonthlyTrafficK)
	case FieldTotalEmissions:
		return metric(c.TotalEmissions)
	default:
		return FieldValue{}, false
	}
}

// Row projects c into a generic Row. Missing metrics are left out.
func (c Company) Row() Row {
	row := make(Row, len(CompanyFields))
	for _, name := range CompanyFields {
		if v, ok := c.Field(name); ok {
			row[name] = v
		}
	}

	return row
}
