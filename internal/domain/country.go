package domain

// Country is the normalized country record produced by the country data
// client. It lives only for the duration of the request that fetched it and
// is never persisted.
type Country struct {
	// CommonName is the everyday name of the country (e.g. "Brazil").
	CommonName string `json:"name"`

	// OfficialName is the formal name (e.g. "Federative Republic of Brazil").
	OfficialName string `json:"officialName"`

	// Capitals lists the capital cities in upstream order. May be empty;
	// the first entry, when present, is the canonical capital.
	Capitals []string `json:"capitals"`

	Population int64  `json:"population"`
	Region     string `json:"region"`
	Subregion  string `json:"subregion"`

	// Currencies maps ISO currency codes to their name and symbol.
	Currencies map[string]Currency `json:"currencies"`

	// FlagURL is the PNG flag image URL.
	FlagURL string `json:"flag"`

	// Timezones holds IANA timezone strings.
	Timezones []string `json:"timezones"`
}

// Currency describes a single currency of a country.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Capital returns the canonical capital city: the first entry in the capital
// list, or CapitalNone when the country has none.
func (c *Country) Capital() string {
	if len(c.Capitals) == 0 || c.Capitals[0] == "" {
		return CapitalNone
	}
	return c.Capitals[0]
}

// CapitalNone is the sentinel used in responses for countries without a
// capital city.
const CapitalNone = "N/A"

// CurrencyInfo is the flattened currency shape used in aggregated responses.
type CurrencyInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CountryWithWeather is the union view returned by the aggregation engine:
// all country fields flattened, the capital narrowed to a single string, and
// an optional weather record. Weather is nil when the country has no capital
// or the weather lookup failed; its absence is not an error.
type CountryWithWeather struct {
	Name         string         `json:"name"`
	OfficialName string         `json:"officialName"`
	Capital      string         `json:"capital"`
	Population   int64          `json:"population"`
	Region       string         `json:"region"`
	Subregion    string         `json:"subregion"`
	Currencies   []CurrencyInfo `json:"currencies"`
	Flag         string         `json:"flag"`
	Timezones    []string       `json:"timezones"`
	Weather      *Weather       `json:"weather,omitempty"`
}

// CountrySummary is the field-reduced shape used by the paginated listing.
type CountrySummary struct {
	Name       string `json:"name"`
	Capital    string `json:"capital"`
	Population int64  `json:"population"`
	Region     string `json:"region"`
	Flag       string `json:"flag"`
}

// CountryPage is a single page of country summaries sliced client-side from
// the full upstream listing.
type CountryPage struct {
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
	Countries  []CountrySummary `json:"countries"`
}
