package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/atlas/internal/config"
	"github.com/smallbiznis/atlas/internal/country/domain"
	"github.com/smallbiznis/atlas/internal/country/repository"
	"github.com/smallbiznis/atlas/internal/country/service"
	"github.com/smallbiznis/atlas/internal/importer/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const corpusFixture = `[
  {
    "name": {
      "common": "Testland",
      "official": "Republic of Testland",
      "nativeName": {
        "tst": {"official": "Testlandia Officiale", "common": "Testlandia"}
      }
    },
    "tld": [".tl"],
    "cca2": "TL",
    "cca3": "TLD",
    "independent": true,
    "unMember": true,
    "idd": {"root": "+9", "suffixes": ["99"]},
    "capital": ["Test City", "Old Test City"],
    "region": "Testing",
    "currencies": {"TST": {"name": "Test Dollar", "symbol": "T$"}},
    "languages": {"tst": "Testish"},
    "translations": {
      "fra": {"official": "République de Testlande", "common": "Testlande"}
    },
    "demonyms": {"eng": {"m": "Testlander", "f": "Testlander"}},
    "latlng": [12.5, -70.1],
    "area": 1234.0,
    "population": 42000,
    "gini": {"2020": 30.5},
    "car": {"signs": ["TL"], "side": "right"},
    "timezones": ["UTC+09:00"],
    "continents": ["Testia"],
    "flags": {"png": "https://flags.example.com/tl.png"},
    "startOfWeek": "monday",
    "capitalInfo": {"latlng": [12.52, -70.03]}
  },
  {
    "name": {"common": "Otherland", "official": "Kingdom of Otherland"},
    "cca2": "OT",
    "cca3": "OTH",
    "languages": {"oth": "Otherish"},
    "latlng": [1.0, 2.0]
  }
]`

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(domain.Entities()...))
	return conn
}

func newImporter(t *testing.T, conn *gorm.DB, sourceURL string) *Importer {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{SourceURL: sourceURL, SourceTimeoutSeconds: 5}
	log := zap.NewNop()
	repo := repository.Provide()
	svc := service.New(service.Params{
		DB:    conn,
		Log:   log,
		GenID: node,
		Repo:  repo,
	})

	return New(Params{
		DB:     conn,
		Log:    log,
		Repo:   repo,
		Svc:    svc,
		Source: source.NewClient(cfg, log),
	})
}

func fixtureServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestImportPopulatesCatalog(t *testing.T) {
	conn := setupDB(t)
	ts := fixtureServer(t, corpusFixture)
	imp := newImporter(t, conn, ts.URL)
	ctx := context.Background()

	require.NoError(t, imp.Run(ctx))

	var count int64
	require.NoError(t, conn.Model(&domain.Country{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var testland domain.Country
	require.NoError(t, conn.Where("name_common = ?", "Testland").First(&testland).Error)
	assert.Equal(t, "TL", testland.CCA2)
	assert.Equal(t, "TLD", testland.CCA3)
	assert.Equal(t, []string{"Test City", "Old Test City"}, []string(testland.Capital))
	assert.Equal(t, int64(1234), testland.Area)
	require.NotNil(t, testland.Latitude)
	assert.InDelta(t, 12.5, *testland.Latitude, 0.001)
	assert.Equal(t, []float64{12.52, -70.03}, []float64(testland.CapitalLatLng))

	require.NoError(t, conn.Model(&domain.Language{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	require.NoError(t, conn.Model(&domain.Demonym{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestImportIsIdempotent(t *testing.T) {
	conn := setupDB(t)
	ts := fixtureServer(t, corpusFixture)
	imp := newImporter(t, conn, ts.URL)
	ctx := context.Background()

	require.NoError(t, imp.Run(ctx))
	firstRun := tableCounts(t, conn)

	require.NoError(t, imp.Run(ctx))
	secondRun := tableCounts(t, conn)

	assert.Equal(t, firstRun, secondRun)
	assert.Equal(t, int64(2), secondRun["countries"])
}

func tableCounts(t *testing.T, conn *gorm.DB) map[string]int64 {
	t.Helper()

	models := map[string]any{
		"countries":            &domain.Country{},
		"languages":            &domain.Language{},
		"native_names":         &domain.NativeName{},
		"currencies":           &domain.Currency{},
		"country_languages":    &domain.CountryLanguage{},
		"demonyms":             &domain.Demonym{},
		"country_translations": &domain.CountryTranslation{},
	}

	counts := make(map[string]int64, len(models))
	for table, model := range models {
		var count int64
		require.NoError(t, conn.Model(model).Count(&count).Error)
		counts[table] = count
	}
	return counts
}

func TestImportReplacesPreviousCatalog(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()

	first := fixtureServer(t, corpusFixture)
	require.NoError(t, newImporter(t, conn, first.URL).Run(ctx))

	smaller := fixtureServer(t, `[
	  {"name": {"common": "Soleland", "official": "State of Soleland"}, "cca2": "SL"}
	]`)
	require.NoError(t, newImporter(t, conn, smaller.URL).Run(ctx))

	var count int64
	require.NoError(t, conn.Model(&domain.Country{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var remaining domain.Country
	require.NoError(t, conn.First(&remaining).Error)
	assert.Equal(t, "Soleland", remaining.NameCommon)

	require.NoError(t, conn.Model(&domain.Language{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestImportMissingCapitalInfoStoresNull(t *testing.T) {
	conn := setupDB(t)
	ts := fixtureServer(t, corpusFixture)
	imp := newImporter(t, conn, ts.URL)

	require.NoError(t, imp.Run(context.Background()))

	var otherland domain.Country
	require.NoError(t, conn.Where("name_common = ?", "Otherland").First(&otherland).Error)
	assert.Nil(t, otherland.CapitalLatLng)
}

func TestImportFetchFailureLeavesStoreUntouched(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()

	good := fixtureServer(t, corpusFixture)
	require.NoError(t, newImporter(t, conn, good.URL).Run(ctx))

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)

	err := newImporter(t, conn, broken.URL).Run(ctx)
	require.Error(t, err)

	var count int64
	require.NoError(t, conn.Model(&domain.Country{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestImportSkipsCountryFailingConstraints(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()

	// Two distinct language codes share one globally unique language name,
	// so the second country's language insert fails and only that country
	// is dropped from the batch.
	ts := fixtureServer(t, `[
	  {
	    "name": {"common": "Firstland", "official": "Republic of Firstland"},
	    "languages": {"aaa": "Shared Tongue"}
	  },
	  {
	    "name": {"common": "Secondland", "official": "Republic of Secondland"},
	    "languages": {"bbb": "Shared Tongue"}
	  }
	]`)

	require.NoError(t, newImporter(t, conn, ts.URL).Run(ctx))

	var count int64
	require.NoError(t, conn.Model(&domain.Country{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var remaining domain.Country
	require.NoError(t, conn.First(&remaining).Error)
	assert.Equal(t, "Firstland", remaining.NameCommon)
}
