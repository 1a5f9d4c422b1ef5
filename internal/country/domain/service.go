package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type NameInput struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

type NativeNameInput struct {
	LanguageCode string `json:"language_code"`
	OfficialName string `json:"official_name"`
	CommonName   string `json:"common_name"`
}

type CurrencyInput struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type LanguageInput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type DemonymInput struct {
	LanguageCode string `json:"language_code"`
	Gender       string `json:"gender"`
	Name         string `json:"name"`
}

type TranslationInput struct {
	LanguageCode string `json:"language_code"`
	OfficialName string `json:"official_name"`
	CommonName   string `json:"common_name"`
}

// CreateCountryRequest is the write document: the country's flat columns
// plus the optional satellite lists fanned out in one transaction.
type CreateCountryRequest struct {
	Name NameInput `json:"name"`

	TLD         []string `json:"tld"`
	CCA2        string   `json:"cca2"`
	CCN3        string   `json:"ccn3"`
	CIOC        string   `json:"cioc"`
	Independent bool     `json:"independent"`
	Status      string   `json:"status"`
	UNMember    bool     `json:"un_member"`

	IDDRoot     string   `json:"idd_root"`
	IDDSuffixes []string `json:"idd_suffixes"`

	Capital      []string `json:"capital"`
	AltSpellings []string `json:"alt_spellings"`
	Region       string   `json:"region"`
	Subregion    string   `json:"subregion"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Landlocked bool     `json:"landlocked"`
	Borders    []string `json:"borders"`
	Area       int64    `json:"area"`
	CCA3       string   `json:"cca3"`
	Flag       string   `json:"flag"`

	GoogleMaps     string `json:"google_maps"`
	OpenStreetMaps string `json:"openstreetmaps"`

	Population int64          `json:"population"`
	Gini       map[string]any `json:"gini"`
	FIFA       string         `json:"fifa"`
	CarSigns   []string       `json:"car_signs"`
	CarSide    string         `json:"car_side"`
	Timezones  []string       `json:"timezones"`
	Continents []string       `json:"continents"`

	FlagPNG       string `json:"flag_png"`
	FlagSVG       string `json:"flag_svg"`
	FlagAlt       string `json:"flag_alt"`
	CoatOfArmsPNG string `json:"coat_of_arms_png"`
	CoatOfArmsSVG string `json:"coat_of_arms_svg"`

	StartOfWeek      string    `json:"start_of_week"`
	CapitalLatLng    []float64 `json:"capital_latlng"`
	PostalCodeFormat string    `json:"postal_code_format"`
	PostalCodeRegex  string    `json:"postal_code_regex"`

	NativeNames  []NativeNameInput  `json:"native_names"`
	Currencies   []CurrencyInput    `json:"currencies"`
	Languages    []LanguageInput    `json:"languages"`
	Demonyms     []DemonymInput     `json:"demonyms"`
	Translations []TranslationInput `json:"translations"`
}

type Service interface {
	Create(ctx context.Context, req CreateCountryRequest) (*Country, error)
	// CreateIn runs the same fan-out inside a caller-owned transaction; the
	// bulk importer uses it under its per-country savepoints.
	CreateIn(ctx context.Context, tx *gorm.DB, req CreateCountryRequest) (*Country, error)
	List(ctx context.Context) ([]*Country, error)
	GetByUID(ctx context.Context, uid string) (*Country, error)
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidGender  = errors.New("invalid_gender")
	ErrDuplicateEntry = errors.New("duplicate_entry")
	ErrNotFound       = errors.New("not_found")
)
