package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/smallbiznis/atlas/internal/country/domain"
	"github.com/smallbiznis/atlas/internal/country/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(domain.Entities()...))
	return conn
}

func newService(t *testing.T, conn *gorm.DB) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func testlandRequest() domain.CreateCountryRequest {
	lat := 12.5
	lng := -70.1
	return domain.CreateCountryRequest{
		Name: domain.NameInput{
			Common:   "Testland",
			Official: "Republic of Testland",
		},
		TLD:          []string{".tl"},
		CCA2:         "TL",
		CCN3:         "999",
		CIOC:         "TLD",
		Independent:  true,
		Status:       "officially-assigned",
		UNMember:     true,
		IDDRoot:      "+9",
		IDDSuffixes:  []string{"99"},
		Capital:      []string{"Test City"},
		AltSpellings: []string{"TL", "Land of Tests"},
		Region:       "Testing",
		Subregion:    "Unit Testing",
		Latitude:     &lat,
		Longitude:    &lng,
		Landlocked:   false,
		Borders:      []string{"EXA"},
		Area:         1234,
		CCA3:         "TLD",
		Flag:         "🏳️",
		GoogleMaps:   "https://maps.example.com/testland",
		Population:   42000,
		Gini:         map[string]any{"2020": 30.5},
		FIFA:         "TLD",
		CarSigns:     []string{"TL"},
		CarSide:      "right",
		Timezones:    []string{"UTC+09:00"},
		Continents:   []string{"Testia"},
		FlagPNG:      "https://flags.example.com/tl.png",
		FlagSVG:      "https://flags.example.com/tl.svg",
		FlagAlt:      "A plain white flag",
		StartOfWeek:      "monday",
		CapitalLatLng:    []float64{12.52, -70.03},
		PostalCodeFormat: "#####",
		PostalCodeRegex:  `^(\d{5})$`,
		NativeNames: []domain.NativeNameInput{
			{LanguageCode: "tst", OfficialName: "Testlandia Officiale", CommonName: "Testlandia"},
		},
		Currencies: []domain.CurrencyInput{
			{Code: "TST", Name: "Test Dollar", Symbol: "T$"},
		},
		Languages: []domain.LanguageInput{
			{Code: "tst", Name: "Testish"},
		},
		Demonyms: []domain.DemonymInput{
			{LanguageCode: "eng", Gender: domain.GenderMale, Name: "Testlander"},
			{LanguageCode: "eng", Gender: domain.GenderFemale, Name: "Testlander"},
		},
		Translations: []domain.TranslationInput{
			{LanguageCode: "fra", OfficialName: "République de Testlande", CommonName: "Testlande"},
		},
	}
}

func TestCreateAndGetCountry(t *testing.T) {
	conn := setupDB(t)
	svc := newService(t, conn)
	ctx := context.Background()

	created, err := svc.Create(ctx, testlandRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.UID)

	got, err := svc.GetByUID(ctx, created.UID)
	require.NoError(t, err)

	assert.Equal(t, "Testland", got.NameCommon)
	assert.Equal(t, "Republic of Testland", got.NameOfficial)
	assert.Equal(t, "TL", got.CCA2)
	assert.Equal(t, []string{"Test City"}, []string(got.Capital))
	assert.Equal(t, int64(42000), got.Population)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, 12.5, *got.Latitude, 0.001)
	assert.Equal(t, []float64{12.52, -70.03}, []float64(got.CapitalLatLng))

	require.Len(t, got.NativeNames, 1)
	assert.Equal(t, "tst", got.NativeNames[0].LanguageCode)
	assert.Equal(t, "Testlandia", got.NativeNames[0].CommonName)

	require.Len(t, got.Currencies, 1)
	assert.Equal(t, "TST", got.Currencies[0].Code)
	assert.Equal(t, "T$", got.Currencies[0].Symbol)

	require.Len(t, got.Languages, 1)
	assert.Equal(t, "tst", got.Languages[0].Language.Code)
	assert.Equal(t, "Testish", got.Languages[0].Language.Name)

	require.Len(t, got.Demonyms, 2)

	require.Len(t, got.Translations, 1)
	assert.Equal(t, "fra", got.Translations[0].LanguageCode)
}

func TestCreateRejectsMissingName(t *testing.T) {
	conn := setupDB(t)
	svc := newService(t, conn)

	req := testlandRequest()
	req.Name.Official = "  "

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreateRejectsUnknownGender(t *testing.T) {
	conn := setupDB(t)
	svc := newService(t, conn)

	req := testlandRequest()
	req.Demonyms = []domain.DemonymInput{
		{LanguageCode: "eng", Gender: "x", Name: "Nobody"},
	}

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidGender)
}

func TestCreateDuplicateNativeNameRollsBackCountry(t *testing.T) {
	conn := setupDB(t)
	svc := newService(t, conn)

	req := testlandRequest()
	req.NativeNames = append(req.NativeNames, domain.NativeNameInput{
		LanguageCode: "tst",
		OfficialName: "Second Official",
		CommonName:   "Second Common",
	})

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	var count int64
	require.NoError(t, conn.Model(&domain.Country{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, conn.Model(&domain.NativeName{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLanguageRowSharedAcrossCountries(t *testing.T) {
	conn := setupDB(t)
	svc := newService(t, conn)
	ctx := context.Background()

	first := testlandRequest()
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := testlandRequest()
	second.Name.Common = "Otherland"
	second.Name.Official = "Kingdom of Otherland"
	second.CCA2 = "OT"
	second.CCA3 = "OTH"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	var count int64
	require.NoError(t, conn.Model(&domain.Language{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, conn.Model(&domain.CountryLanguage{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGetByUIDErrors(t *testing.T) {
	conn := setupDB(t)
	svc := newService(t, conn)
	ctx := context.Background()

	_, err := svc.GetByUID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByUID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrdersNewestFirst(t *testing.T) {
	conn := setupDB(t)
	svc := newService(t, conn)
	ctx := context.Background()

	first := testlandRequest()
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := testlandRequest()
	second.Name.Common = "Otherland"
	second.Name.Official = "Kingdom of Otherland"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	countries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Otherland", countries[0].NameCommon)
	assert.Equal(t, "Testland", countries[1].NameCommon)
}
