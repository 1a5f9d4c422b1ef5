// Package importer replaces the whole country catalog from the upstream
// corpus: one fetch, one transaction that purges and repopulates every
// table, with a savepoint per country so a bad document is skipped instead
// of aborting the batch.
package importer

import (
	"context"
	"sort"
	"time"

	"github.com/smallbiznis/atlas/internal/country/domain"
	"github.com/smallbiznis/atlas/internal/importer/source"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Repo   domain.Repository
	Svc    domain.Service
	Source *source.Client
}

type Importer struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
	svc  domain.Service
	src  *source.Client
}

func New(p Params) *Importer {
	return &Importer{
		db:   p.DB,
		log:  p.Log.Named("importer"),
		repo: p.Repo,
		svc:  p.Svc,
		src:  p.Source,
	}
}

// Run executes one full-replace import. A fetch failure aborts before any
// store mutation; once fetched, the purge and repopulation commit together.
func (i *Importer) Run(ctx context.Context) error {
	start := time.Now()
	i.log.Info("starting countries import")

	docs, err := i.src.FetchAll(ctx)
	if err != nil {
		i.log.Error("failed to import countries data", zap.Error(err))
		return err
	}
	i.log.Info("fetched countries data", zap.Int("countries", len(docs)))

	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		i.log.Info("clearing existing data")
		if err := i.repo.PurgeAll(ctx, tx); err != nil {
			return err
		}

		for idx := range docs {
			doc := &docs[idx]
			// Nested transaction = savepoint: a failing country rolls back
			// to here and the loop moves on.
			err := tx.Transaction(func(sub *gorm.DB) error {
				_, createErr := i.svc.CreateIn(ctx, sub, buildRequest(doc))
				return createErr
			})
			if err != nil {
				i.log.Warn("error processing country",
					zap.String("country", doc.Name.Common),
					zap.Error(err),
				)
			}
		}
		return nil
	})
	if err != nil {
		i.log.Error("failed to import countries data", zap.Error(err))
		return err
	}

	count, err := i.repo.CountCountries(ctx, i.db)
	if err != nil {
		return err
	}
	i.log.Info("data import completed",
		zap.Int64("countries", count),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// buildRequest maps one source document onto the write path's request.
// Map-shaped source fields are flattened into lists in sorted key order so
// repeated imports insert rows deterministically.
func buildRequest(doc *source.CountryDocument) domain.CreateCountryRequest {
	req := domain.CreateCountryRequest{
		Name: domain.NameInput{
			Common:   doc.Name.Common,
			Official: doc.Name.Official,
		},
		TLD:              doc.TLD,
		CCA2:             doc.CCA2,
		CCN3:             doc.CCN3,
		CIOC:             doc.CIOC,
		Independent:      doc.Independent,
		Status:           doc.Status,
		UNMember:         doc.UNMember,
		IDDRoot:          doc.IDD.Root,
		IDDSuffixes:      doc.IDD.Suffixes,
		Capital:          doc.Capital,
		AltSpellings:     doc.AltSpellings,
		Region:           doc.Region,
		Subregion:        doc.Subregion,
		Latitude:         doc.Latitude(),
		Longitude:        doc.Longitude(),
		Landlocked:       doc.Landlocked,
		Borders:          doc.Borders,
		Area:             int64(doc.Area),
		CCA3:             doc.CCA3,
		Flag:             doc.Flag,
		GoogleMaps:       doc.Maps.GoogleMaps,
		OpenStreetMaps:   doc.Maps.OpenStreetMaps,
		Population:       doc.Population,
		Gini:             giniMap(doc.Gini),
		FIFA:             doc.FIFA,
		CarSigns:         doc.Car.Signs,
		CarSide:          doc.Car.Side,
		Timezones:        doc.Timezones,
		Continents:       doc.Continents,
		FlagPNG:          doc.Flags.PNG,
		FlagSVG:          doc.Flags.SVG,
		FlagAlt:          doc.Flags.Alt,
		CoatOfArmsPNG:    doc.CoatOfArms.PNG,
		CoatOfArmsSVG:    doc.CoatOfArms.SVG,
		StartOfWeek:      doc.StartOfWeek,
		CapitalLatLng:    doc.CapitalLatLng(),
		PostalCodeFormat: doc.PostalCode.Format,
		PostalCodeRegex:  doc.PostalCode.Regex,
	}

	for _, code := range sortedKeys(doc.Name.NativeName) {
		variant := doc.Name.NativeName[code]
		req.NativeNames = append(req.NativeNames, domain.NativeNameInput{
			LanguageCode: code,
			OfficialName: variant.Official,
			CommonName:   variant.Common,
		})
	}

	for _, code := range sortedKeys(doc.Currencies) {
		currency := doc.Currencies[code]
		req.Currencies = append(req.Currencies, domain.CurrencyInput{
			Code:   code,
			Name:   currency.Name,
			Symbol: currency.Symbol,
		})
	}

	for _, code := range sortedKeys(doc.Languages) {
		req.Languages = append(req.Languages, domain.LanguageInput{
			Code: code,
			Name: doc.Languages[code],
		})
	}

	for _, code := range sortedKeys(doc.Demonyms) {
		byGender := doc.Demonyms[code]
		for _, gender := range []string{domain.GenderMale, domain.GenderFemale} {
			name, ok := byGender[gender]
			if !ok {
				continue
			}
			req.Demonyms = append(req.Demonyms, domain.DemonymInput{
				LanguageCode: code,
				Gender:       gender,
				Name:         name,
			})
		}
	}

	for _, code := range sortedKeys(doc.Translations) {
		variant := doc.Translations[code]
		req.Translations = append(req.Translations, domain.TranslationInput{
			LanguageCode: code,
			OfficialName: variant.Official,
			CommonName:   variant.Common,
		})
	}

	return req
}

func giniMap(gini map[string]float64) map[string]any {
	if len(gini) == 0 {
		return nil
	}
	out := make(map[string]any, len(gini))
	for year, value := range gini {
		out[year] = value
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
