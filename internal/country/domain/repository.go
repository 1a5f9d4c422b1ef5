package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository receives the *gorm.DB per call so service code can route
// everything through one transaction.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, country *Country) error
	InsertNativeName(ctx context.Context, db *gorm.DB, name *NativeName) error
	InsertCurrency(ctx context.Context, db *gorm.DB, currency *Currency) error
	InsertCountryLanguage(ctx context.Context, db *gorm.DB, link *CountryLanguage) error
	InsertDemonym(ctx context.Context, db *gorm.DB, demonym *Demonym) error
	InsertTranslation(ctx context.Context, db *gorm.DB, translation *CountryTranslation) error

	InsertLanguage(ctx context.Context, db *gorm.DB, language *Language) error
	FindLanguageByCode(ctx context.Context, db *gorm.DB, code string) (*Language, error)

	FindByUID(ctx context.Context, db *gorm.DB, uid string) (*Country, error)
	List(ctx context.Context, db *gorm.DB) ([]*Country, error)
	CountCountries(ctx context.Context, db *gorm.DB) (int64, error)

	PurgeAll(ctx context.Context, db *gorm.DB) error
}
