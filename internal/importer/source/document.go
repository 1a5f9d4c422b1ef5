package source

// CountryDocument is one country object from the upstream corpus, decoded
// into a fully typed record. Every field is optional upstream; a missing
// field simply leaves its zero value here, so downstream mapping never has
// to guard individual accesses.
type CountryDocument struct {
	Name struct {
		Common     string                 `json:"common"`
		Official   string                 `json:"official"`
		NativeName map[string]NameVariant `json:"nativeName"`
	} `json:"name"`

	TLD         []string `json:"tld"`
	CCA2        string   `json:"cca2"`
	CCN3        string   `json:"ccn3"`
	CCA3        string   `json:"cca3"`
	CIOC        string   `json:"cioc"`
	Independent bool     `json:"independent"`
	Status      string   `json:"status"`
	UNMember    bool     `json:"unMember"`

	IDD struct {
		Root     string   `json:"root"`
		Suffixes []string `json:"suffixes"`
	} `json:"idd"`

	Capital      []string `json:"capital"`
	AltSpellings []string `json:"altSpellings"`
	Region       string   `json:"region"`
	Subregion    string   `json:"subregion"`

	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`

	Languages    map[string]string            `json:"languages"`
	Translations map[string]NameVariant       `json:"translations"`
	Demonyms     map[string]map[string]string `json:"demonyms"`

	LatLng     []float64 `json:"latlng"`
	Landlocked bool      `json:"landlocked"`
	Borders    []string  `json:"borders"`
	Area       float64   `json:"area"`
	Flag       string    `json:"flag"`

	Maps struct {
		GoogleMaps     string `json:"googleMaps"`
		OpenStreetMaps string `json:"openStreetMaps"`
	} `json:"maps"`

	Population int64              `json:"population"`
	Gini       map[string]float64 `json:"gini"`
	FIFA       string             `json:"fifa"`

	Car struct {
		Signs []string `json:"signs"`
		Side  string   `json:"side"`
	} `json:"car"`

	Timezones  []string `json:"timezones"`
	Continents []string `json:"continents"`

	Flags struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
		Alt string `json:"alt"`
	} `json:"flags"`

	CoatOfArms struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"coatOfArms"`

	StartOfWeek string `json:"startOfWeek"`

	CapitalInfo *struct {
		LatLng []float64 `json:"latlng"`
	} `json:"capitalInfo"`

	PostalCode struct {
		Format string `json:"format"`
		Regex  string `json:"regex"`
	} `json:"postalCode"`
}

type NameVariant struct {
	Official string `json:"official"`
	Common   string `json:"common"`
}

// Latitude returns the first element of the country-level latlng pair.
func (d *CountryDocument) Latitude() *float64 {
	if len(d.LatLng) < 2 {
		return nil
	}
	v := d.LatLng[0]
	return &v
}

// Longitude returns the second element of the country-level latlng pair.
func (d *CountryDocument) Longitude() *float64 {
	if len(d.LatLng) < 2 {
		return nil
	}
	v := d.LatLng[1]
	return &v
}

// CapitalLatLng returns the capital coordinates only when the capitalInfo
// block was present upstream.
func (d *CountryDocument) CapitalLatLng() []float64 {
	if d.CapitalInfo == nil {
		return nil
	}
	return d.CapitalInfo.LatLng
}
