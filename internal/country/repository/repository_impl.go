package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/atlas/internal/country/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, country *domain.Country) error {
	return db.WithContext(ctx).Omit("NativeNames", "Currencies", "Languages", "Demonyms", "Translations").Create(country).Error
}

func (r *repo) InsertNativeName(ctx context.Context, db *gorm.DB, name *domain.NativeName) error {
	return db.WithContext(ctx).Create(name).Error
}

func (r *repo) InsertCurrency(ctx context.Context, db *gorm.DB, currency *domain.Currency) error {
	return db.WithContext(ctx).Create(currency).Error
}

func (r *repo) InsertCountryLanguage(ctx context.Context, db *gorm.DB, link *domain.CountryLanguage) error {
	return db.WithContext(ctx).Omit("Language").Create(link).Error
}

func (r *repo) InsertDemonym(ctx context.Context, db *gorm.DB, demonym *domain.Demonym) error {
	return db.WithContext(ctx).Create(demonym).Error
}

func (r *repo) InsertTranslation(ctx context.Context, db *gorm.DB, translation *domain.CountryTranslation) error {
	return db.WithContext(ctx).Create(translation).Error
}

func (r *repo) InsertLanguage(ctx context.Context, db *gorm.DB, language *domain.Language) error {
	return db.WithContext(ctx).Create(language).Error
}

func (r *repo) FindLanguageByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Language, error) {
	var language domain.Language
	err := db.WithContext(ctx).Where("code = ?", code).First(&language).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *repo) FindByUID(ctx context.Context, db *gorm.DB, uid string) (*domain.Country, error) {
	var country domain.Country
	err := withGraph(db.WithContext(ctx)).Where("countries.uid = ?", uid).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Country, error) {
	var countries []*domain.Country
	err := withGraph(db.WithContext(ctx)).
		Order("created_at desc, id desc").
		Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *repo) CountCountries(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Country{}).Count(&count).Error
	return count, err
}

// PurgeAll empties every table ahead of a full-replace import. Satellites go
// first so no row ever points at a missing country.
func (r *repo) PurgeAll(ctx context.Context, db *gorm.DB) error {
	tables := []any{
		&domain.Currency{},
		&domain.CountryLanguage{},
		&domain.CountryTranslation{},
		&domain.NativeName{},
		&domain.Demonym{},
		&domain.Country{},
		&domain.Language{},
	}
	for _, table := range tables {
		if err := db.WithContext(ctx).Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func withGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("NativeNames", orderByCreation).
		Preload("Currencies", orderByCreation).
		Preload("Languages", orderByCreation).
		Preload("Languages.Language").
		Preload("Demonyms", orderByCreation).
		Preload("Translations", orderByCreation)
}

func orderByCreation(db *gorm.DB) *gorm.DB {
	return db.Order("created_at asc, id asc")
}
