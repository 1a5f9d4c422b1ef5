package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/smallbiznis/atlas/internal/country/domain"
	"github.com/smallbiznis/atlas/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("country.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCountryRequest) (*domain.Country, error) {
	var uid string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		country, err := s.CreateIn(ctx, tx, req)
		if err != nil {
			return err
		}
		uid = country.UID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByUID(ctx, uid)
}

// CreateIn fans one write document out into the country row and its
// satellites using the supplied transaction. Constraint violations bubble up
// so the enclosing transaction (or savepoint) rolls back as a unit.
func (s *Service) CreateIn(ctx context.Context, tx *gorm.DB, req domain.CreateCountryRequest) (*domain.Country, error) {
	if strings.TrimSpace(req.Name.Common) == "" || strings.TrimSpace(req.Name.Official) == "" {
		return nil, domain.ErrInvalidName
	}
	for _, demonym := range req.Demonyms {
		if demonym.Gender != domain.GenderMale && demonym.Gender != domain.GenderFemale {
			return nil, domain.ErrInvalidGender
		}
	}

	country := &domain.Country{
		Base:             s.newBase(),
		NameCommon:       req.Name.Common,
		NameOfficial:     req.Name.Official,
		TLD:              req.TLD,
		CCA2:             req.CCA2,
		CCN3:             req.CCN3,
		CIOC:             req.CIOC,
		Independent:      req.Independent,
		Status:           req.Status,
		UNMember:         req.UNMember,
		IDDRoot:          req.IDDRoot,
		IDDSuffixes:      req.IDDSuffixes,
		Capital:          req.Capital,
		AltSpellings:     req.AltSpellings,
		Region:           req.Region,
		Subregion:        req.Subregion,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Landlocked:       req.Landlocked,
		Borders:          req.Borders,
		Area:             req.Area,
		CCA3:             req.CCA3,
		Flag:             req.Flag,
		GoogleMaps:       req.GoogleMaps,
		OpenStreetMaps:   req.OpenStreetMaps,
		Population:       req.Population,
		Gini:             datatypes.JSONMap(req.Gini),
		FIFA:             req.FIFA,
		CarSigns:         req.CarSigns,
		CarSide:          req.CarSide,
		Timezones:        req.Timezones,
		Continents:       req.Continents,
		FlagPNG:          req.FlagPNG,
		FlagSVG:          req.FlagSVG,
		FlagAlt:          req.FlagAlt,
		CoatOfArmsPNG:    req.CoatOfArmsPNG,
		CoatOfArmsSVG:    req.CoatOfArmsSVG,
		StartOfWeek:      req.StartOfWeek,
		CapitalLatLng:    req.CapitalLatLng,
		PostalCodeFormat: req.PostalCodeFormat,
		PostalCodeRegex:  req.PostalCodeRegex,
	}

	if err := s.repo.Insert(ctx, tx, country); err != nil {
		return nil, s.classify(err)
	}

	for _, input := range req.NativeNames {
		name := &domain.NativeName{
			Base:         s.newBase(),
			CountryID:    country.ID,
			LanguageCode: input.LanguageCode,
			OfficialName: input.OfficialName,
			CommonName:   input.CommonName,
		}
		if err := s.repo.InsertNativeName(ctx, tx, name); err != nil {
			return nil, s.classify(err)
		}
	}

	for _, input := range req.Currencies {
		currency := &domain.Currency{
			Base:      s.newBase(),
			CountryID: country.ID,
			Code:      input.Code,
			Name:      input.Name,
			Symbol:    input.Symbol,
		}
		if err := s.repo.InsertCurrency(ctx, tx, currency); err != nil {
			return nil, s.classify(err)
		}
	}

	for _, input := range req.Languages {
		language, err := s.getOrCreateLanguage(ctx, tx, input.Code, input.Name)
		if err != nil {
			return nil, s.classify(err)
		}
		link := &domain.CountryLanguage{
			Base:       s.newBase(),
			CountryID:  country.ID,
			LanguageID: language.ID,
		}
		if err := s.repo.InsertCountryLanguage(ctx, tx, link); err != nil {
			return nil, s.classify(err)
		}
	}

	for _, input := range req.Translations {
		translation := &domain.CountryTranslation{
			Base:         s.newBase(),
			CountryID:    country.ID,
			LanguageCode: input.LanguageCode,
			OfficialName: input.OfficialName,
			CommonName:   input.CommonName,
		}
		if err := s.repo.InsertTranslation(ctx, tx, translation); err != nil {
			return nil, s.classify(err)
		}
	}

	for _, input := range req.Demonyms {
		demonym := &domain.Demonym{
			Base:         s.newBase(),
			CountryID:    country.ID,
			LanguageCode: input.LanguageCode,
			Gender:       input.Gender,
			Name:         input.Name,
		}
		if err := s.repo.InsertDemonym(ctx, tx, demonym); err != nil {
			return nil, s.classify(err)
		}
	}

	return country, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Country, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) GetByUID(ctx context.Context, uid string) (*domain.Country, error) {
	uid = strings.TrimSpace(uid)
	// A malformed uid can never match a row, so skip the lookup.
	if _, err := uuid.Parse(uid); err != nil {
		return nil, domain.ErrNotFound
	}

	country, err := s.repo.FindByUID(ctx, s.db, uid)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.ErrNotFound
	}
	return country, nil
}

// getOrCreateLanguage reuses the global language row for a code, creating it
// with the supplied name only when new. A duplicate-key error from a
// concurrent writer means the row exists now, so re-fetch instead of failing.
func (s *Service) getOrCreateLanguage(ctx context.Context, tx *gorm.DB, code, name string) (*domain.Language, error) {
	language, err := s.repo.FindLanguageByCode(ctx, tx, code)
	if err != nil {
		return nil, err
	}
	if language != nil {
		return language, nil
	}

	language = &domain.Language{
		Base: s.newBase(),
		Code: code,
		Name: name,
	}
	insertErr := s.repo.InsertLanguage(ctx, tx, language)
	if insertErr == nil {
		return language, nil
	}
	if !db.IsDuplicateKeyErr(insertErr) {
		return nil, insertErr
	}

	language, err = s.repo.FindLanguageByCode(ctx, tx, code)
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, insertErr
	}
	return language, nil
}

func (s *Service) classify(err error) error {
	if db.IsDuplicateKeyErr(err) {
		return domain.ErrDuplicateEntry
	}
	return err
}

func (s *Service) newBase() domain.Base {
	now := time.Now().UTC()
	return domain.Base{
		ID:        s.genID.Generate(),
		UID:       uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
