// Package catalog holds the create, update, query and delete workflows
// for catalog entities. Handlers call into it and map its errors onto
// HTTP responses.
package catalog

import (
	"context"
	"fmt"

	"shopadmin/media"
	"shopadmin/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Event describes a committed catalog change.
type Event struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
}

// Notifier is told about every committed change. Publish must not block.
type Notifier interface {
	Publish(Event)
}

type nopNotifier struct{}

func (nopNotifier) Publish(Event) {}

type base struct {
	db       *gorm.DB
	uploader media.Uploader
	notifier Notifier
	log      zerolog.Logger
}

func (b *base) publish(entity, action string, id uint) {
	b.notifier.Publish(Event{Type: entity + "." + action, ID: id})
}

// exists reports whether a row of model's table has the given id.
func (b *base) exists(ctx context.Context, model interface{}, id uint) (bool, error) {
	var n int64
	if err := b.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, storageErr("check reference", err)
	}
	return n > 0, nil
}

// requireRef fails validation when id is set and names no row.
func (b *base) requireRef(ctx context.Context, field string, model interface{}, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := b.exists(ctx, model, *id)
	if err != nil {
		return err
	}
	if !ok {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s %d does not exist.", field, *id)}
	}
	return nil
}

// countRefs counts rows of model whose column equals id.
func (b *base) countRefs(ctx context.Context, model interface{}, column string, id uint) (int64, error) {
	var n int64
	if err := b.db.WithContext(ctx).Model(model).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return 0, storageErr("check references", err)
	}
	return n, nil
}

// Catalog bundles the per-entity services.
type Catalog struct {
	Categories    *CategoryService
	Posters       *PosterService
	Products      *ProductService
	SubCategories *LookupService[models.SubCategory]
	Brands        *LookupService[models.Brand]
	VariantTypes  *LookupService[models.VariantType]
	Variants      *LookupService[models.Variant]
}

// New wires every service to the same store, uploader and notifier.
// A nil notifier discards events.
func New(db *gorm.DB, uploader media.Uploader, notifier Notifier, log zerolog.Logger) *Catalog {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	b := base{db: db, uploader: uploader, notifier: notifier, log: log}
	return &Catalog{
		Categories:    &CategoryService{base: b},
		Posters:       &PosterService{base: b},
		Products:      &ProductService{base: b},
		SubCategories: &LookupService[models.SubCategory]{base: b, rules: subCategoryRules},
		Brands:        &LookupService[models.Brand]{base: b, rules: brandRules},
		VariantTypes:  &LookupService[models.VariantType]{base: b, rules: variantTypeRules},
		Variants:      &LookupService[models.Variant]{base: b, rules: variantRules},
	}
}
