package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Base carries the identity and bookkeeping columns shared by every entity.
// The snowflake ID is the internal key and never leaves the service; UID is
// the externally addressable identifier.
type Base struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"-"`
	UID       string       `gorm:"type:uuid;uniqueIndex;not null" json:"uid"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type Country struct {
	Base

	NameCommon   string `gorm:"not null" json:"name_common"`
	NameOfficial string `gorm:"not null" json:"name_official"`

	TLD         datatypes.JSONSlice[string] `gorm:"column:tld" json:"tld"`
	CCA2        string                      `gorm:"column:cca2;type:varchar(2)" json:"cca2"`
	CCN3        string                      `gorm:"column:ccn3;type:varchar(3)" json:"ccn3"`
	CIOC        string                      `gorm:"column:cioc;type:varchar(3)" json:"cioc"`
	Independent bool                        `gorm:"not null;default:false" json:"independent"`
	Status      string                      `json:"status"`
	UNMember    bool                        `gorm:"column:un_member;not null;default:false" json:"un_member"`

	IDDRoot     string                      `gorm:"column:idd_root;type:varchar(5)" json:"idd_root"`
	IDDSuffixes datatypes.JSONSlice[string] `gorm:"column:idd_suffixes" json:"idd_suffixes"`

	Capital      datatypes.JSONSlice[string] `json:"capital"`
	AltSpellings datatypes.JSONSlice[string] `json:"alt_spellings"`
	Region       string                      `json:"region"`
	Subregion    string                      `json:"subregion"`

	// Approximate center of the country.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Landlocked bool                        `gorm:"not null;default:false" json:"landlocked"`
	Borders    datatypes.JSONSlice[string] `json:"borders"`
	Area       int64                       `gorm:"not null;default:0" json:"area"`
	CCA3       string                      `gorm:"column:cca3;type:varchar(3)" json:"cca3"`
	Flag       string                      `json:"flag"`

	GoogleMaps     string `json:"google_maps"`
	OpenStreetMaps string `gorm:"column:openstreetmaps" json:"openstreetmaps"`

	Population int64                       `gorm:"not null;default:0" json:"population"`
	Gini       datatypes.JSONMap           `json:"gini"`
	FIFA       string                      `gorm:"column:fifa;type:varchar(3)" json:"fifa"`
	CarSigns   datatypes.JSONSlice[string] `json:"car_signs"`
	CarSide    string                      `gorm:"type:varchar(5)" json:"car_side"`
	Timezones  datatypes.JSONSlice[string] `json:"timezones"`
	Continents datatypes.JSONSlice[string] `json:"continents"`

	FlagPNG       string `gorm:"column:flag_png" json:"flag_png"`
	FlagSVG       string `gorm:"column:flag_svg" json:"flag_svg"`
	FlagAlt       string `json:"flag_alt"`
	CoatOfArmsPNG string `gorm:"column:coat_of_arms_png" json:"coat_of_arms_png"`
	CoatOfArmsSVG string `gorm:"column:coat_of_arms_svg" json:"coat_of_arms_svg"`

	StartOfWeek      string                       `json:"start_of_week"`
	CapitalLatLng    datatypes.JSONSlice[float64] `gorm:"column:capital_latlng" json:"capital_latlng"`
	PostalCodeFormat string                       `json:"postal_code_format"`
	PostalCodeRegex  string                       `json:"postal_code_regex"`

	NativeNames  []NativeName        `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE" json:"native_names,omitempty"`
	Currencies   []Currency          `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE" json:"currencies,omitempty"`
	Languages    []CountryLanguage   `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE" json:"languages,omitempty"`
	Demonyms     []Demonym           `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE" json:"demonyms,omitempty"`
	Translations []CountryTranslation `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
}

func (Country) TableName() string { return "countries" }

type NativeName struct {
	Base

	CountryID    snowflake.ID `gorm:"not null;uniqueIndex:ux_native_names_country_lang" json:"-"`
	LanguageCode string       `gorm:"type:varchar(10);not null;uniqueIndex:ux_native_names_country_lang" json:"language_code"`
	OfficialName string       `json:"official_name"`
	CommonName   string       `json:"common_name"`
}

func (NativeName) TableName() string { return "native_names" }

type Currency struct {
	Base

	CountryID snowflake.ID `gorm:"not null;index" json:"-"`
	Code      string       `gorm:"type:varchar(10);not null" json:"code"`
	Name      string       `json:"name"`
	Symbol    string       `gorm:"type:varchar(10)" json:"symbol"`
}

func (Currency) TableName() string { return "currencies" }

// Language is global and deduplicated: one row per code, shared by every
// country that speaks it.
type Language struct {
	Base

	Code string `gorm:"type:varchar(10);uniqueIndex;not null" json:"code"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Language) TableName() string { return "languages" }

type CountryLanguage struct {
	Base

	CountryID  snowflake.ID `gorm:"not null;uniqueIndex:ux_country_languages_pair" json:"-"`
	LanguageID snowflake.ID `gorm:"not null;uniqueIndex:ux_country_languages_pair" json:"-"`
	Language   Language     `gorm:"foreignKey:LanguageID;constraint:OnDelete:CASCADE" json:"language"`
}

func (CountryLanguage) TableName() string { return "country_languages" }

const (
	GenderMale   = "m"
	GenderFemale = "f"
)

type Demonym struct {
	Base

	CountryID    snowflake.ID `gorm:"not null;uniqueIndex:ux_demonyms_country_lang_gender" json:"-"`
	LanguageCode string       `gorm:"type:varchar(10);not null;uniqueIndex:ux_demonyms_country_lang_gender" json:"language_code"`
	Gender       string       `gorm:"type:varchar(1);not null;uniqueIndex:ux_demonyms_country_lang_gender" json:"gender"`
	Name         string       `json:"name"`
}

func (Demonym) TableName() string { return "demonyms" }

type CountryTranslation struct {
	Base

	CountryID    snowflake.ID `gorm:"not null;uniqueIndex:ux_country_translations_country_lang" json:"-"`
	LanguageCode string       `gorm:"type:varchar(10);not null;uniqueIndex:ux_country_translations_country_lang" json:"language_code"`
	OfficialName string       `json:"official_name"`
	CommonName   string       `json:"common_name"`
}

func (CountryTranslation) TableName() string { return "country_translations" }

// Entities lists every model in migration order, countries first.
func Entities() []any {
	return []any{
		&Country{},
		&Language{},
		&NativeName{},
		&Currency{},
		&CountryLanguage{},
		&Demonym{},
		&CountryTranslation{},
	}
}
