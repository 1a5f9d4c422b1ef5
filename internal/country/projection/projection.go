// Package projection reassembles the relational country graph into the
// nested document shape clients expect. It is a pure mapping over loaded
// rows so it can be tested against literal fixtures.
package projection

import "github.com/smallbiznis/atlas/internal/country/domain"

type Document struct {
	UID          string                       `json:"uid"`
	Name         Name                         `json:"name"`
	TLD          []string                     `json:"tld"`
	CCA2         string                       `json:"cca2"`
	CCN3         string                       `json:"ccn3"`
	CIOC         string                       `json:"cioc"`
	Independent  bool                         `json:"independent"`
	Status       string                       `json:"status"`
	UNMember     bool                         `json:"un_member"`
	Currencies   map[string]Currency          `json:"currencies"`
	IDD          IDD                          `json:"idd"`
	Capital      []string                     `json:"capital"`
	AltSpellings []string                     `json:"alt_spellings"`
	Region       string                       `json:"region"`
	Subregion    string                       `json:"subregion"`
	Languages    map[string]string            `json:"languages"`
	LatLng       []*float64                   `json:"latlng"`
	Landlocked   bool                         `json:"landlocked"`
	Borders      []string                     `json:"borders"`
	Area         int64                        `json:"area"`
	Demonyms     map[string]map[string]string `json:"demonyms"`
	CCA3         string                       `json:"cca3"`
	Translations map[string]Translation       `json:"translations"`
	Flag         string                       `json:"flag"`
	Maps         Maps                         `json:"maps"`
	Population   int64                        `json:"population"`
	Gini         map[string]any               `json:"gini"`
	FIFA         string                       `json:"fifa"`
	Car          Car                          `json:"car"`
	Timezones    []string                     `json:"timezones"`
	Continents   []string                     `json:"continents"`
	Flags        Flags                        `json:"flags"`
	CoatOfArms   CoatOfArms                   `json:"coatOfArms"`
	StartOfWeek  string                       `json:"start_of_week"`
	CapitalInfo  CapitalInfo                  `json:"capitalInfo"`
	PostalCode   PostalCode                   `json:"postalCode"`
}

type Name struct {
	Common     string                 `json:"common"`
	Official   string                 `json:"official"`
	NativeName map[string]Translation `json:"nativeName"`
}

type Translation struct {
	Official string `json:"official"`
	Common   string `json:"common"`
}

type Currency struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type IDD struct {
	Root     string   `json:"root"`
	Suffixes []string `json:"suffixes"`
}

type Maps struct {
	GoogleMaps     string `json:"googleMaps"`
	OpenStreetMaps string `json:"openStreetMaps"`
}

type Car struct {
	Signs []string `json:"signs"`
	Side  string   `json:"side"`
}

type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt"`
}

type CoatOfArms struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
}

type CapitalInfo struct {
	LatLng []float64 `json:"latlng"`
}

type PostalCode struct {
	Format string `json:"format"`
	Regex  string `json:"regex"`
}

// Project maps one loaded country graph into its client-facing document.
func Project(country *domain.Country) Document {
	doc := Document{
		UID:          country.UID,
		Name:         projectName(country),
		TLD:          country.TLD,
		CCA2:         country.CCA2,
		CCN3:         country.CCN3,
		CIOC:         country.CIOC,
		Independent:  country.Independent,
		Status:       country.Status,
		UNMember:     country.UNMember,
		Currencies:   projectCurrencies(country.Currencies),
		IDD:          projectIDD(country),
		Capital:      country.Capital,
		AltSpellings: country.AltSpellings,
		Region:       country.Region,
		Subregion:    country.Subregion,
		Languages:    projectLanguages(country.Languages),
		LatLng:       []*float64{country.Latitude, country.Longitude},
		Landlocked:   country.Landlocked,
		Borders:      country.Borders,
		Area:         country.Area,
		Demonyms:     projectDemonyms(country.Demonyms),
		CCA3:         country.CCA3,
		Translations: projectTranslations(country.Translations),
		Flag:         country.Flag,
		Maps: Maps{
			GoogleMaps:     country.GoogleMaps,
			OpenStreetMaps: country.OpenStreetMaps,
		},
		Population: country.Population,
		Gini:       country.Gini,
		FIFA:       country.FIFA,
		Car: Car{
			Signs: country.CarSigns,
			Side:  country.CarSide,
		},
		Timezones:  country.Timezones,
		Continents: country.Continents,
		Flags: Flags{
			PNG: country.FlagPNG,
			SVG: country.FlagSVG,
			Alt: country.FlagAlt,
		},
		CoatOfArms: CoatOfArms{
			PNG: country.CoatOfArmsPNG,
			SVG: country.CoatOfArmsSVG,
		},
		StartOfWeek: country.StartOfWeek,
		CapitalInfo: CapitalInfo{LatLng: country.CapitalLatLng},
		PostalCode: PostalCode{
			Format: country.PostalCodeFormat,
			Regex:  country.PostalCodeRegex,
		},
	}
	return doc
}

// ProjectAll maps a listing, preserving the given order.
func ProjectAll(countries []*domain.Country) []Document {
	docs := make([]Document, 0, len(countries))
	for _, country := range countries {
		docs = append(docs, Project(country))
	}
	return docs
}

func projectName(country *domain.Country) Name {
	native := make(map[string]Translation, len(country.NativeNames))
	for _, name := range country.NativeNames {
		native[name.LanguageCode] = Translation{
			Official: name.OfficialName,
			Common:   name.CommonName,
		}
	}
	return Name{
		Common:     country.NameCommon,
		Official:   country.NameOfficial,
		NativeName: native,
	}
}

func projectCurrencies(currencies []domain.Currency) map[string]Currency {
	out := make(map[string]Currency, len(currencies))
	for _, currency := range currencies {
		out[currency.Code] = Currency{
			Symbol: currency.Symbol,
			Name:   currency.Name,
		}
	}
	return out
}

func projectIDD(country *domain.Country) IDD {
	suffixes := []string(country.IDDSuffixes)
	if suffixes == nil {
		suffixes = []string{}
	}
	return IDD{
		Root:     country.IDDRoot,
		Suffixes: suffixes,
	}
}

func projectLanguages(links []domain.CountryLanguage) map[string]string {
	out := make(map[string]string, len(links))
	for _, link := range links {
		out[link.Language.Code] = link.Language.Name
	}
	return out
}

// projectDemonyms merges gendered rows into one object per language code,
// male first, so a code with a single gender yields a single-key object.
func projectDemonyms(demonyms []domain.Demonym) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, gender := range []string{domain.GenderMale, domain.GenderFemale} {
		for _, demonym := range demonyms {
			if demonym.Gender != gender {
				continue
			}
			if out[demonym.LanguageCode] == nil {
				out[demonym.LanguageCode] = make(map[string]string, 2)
			}
			out[demonym.LanguageCode][gender] = demonym.Name
		}
	}
	return out
}

func projectTranslations(translations []domain.CountryTranslation) map[string]Translation {
	out := make(map[string]Translation, len(translations))
	for _, translation := range translations {
		out[translation.LanguageCode] = Translation{
			Official: translation.OfficialName,
			Common:   translation.CommonName,
		}
	}
	return out
}
