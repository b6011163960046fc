package catalog

import (
	"context"
	"strings"

	"shopadmin/models"

	"gorm.io/gorm/clause"
)

// parentRef is a reference a lookup record holds to another table.
type parentRef struct {
	field string
	model interface{}
	id    uint
}

// blocker is a table whose rows keep a lookup record from being deleted.
type blocker struct {
	model     interface{}
	column    string
	reference string
}

type lookupRules[T any] struct {
	entity   string
	preload  []string
	id       func(*T) uint
	parents  func(*T) []parentRef
	blockers []blocker
}

// LookupService serves the small reference tables products point at.
type LookupService[T any] struct {
	base
	rules lookupRules[T]
}

func (s *LookupService[T]) event() string {
	return strings.ToLower(strings.ReplaceAll(s.rules.entity, " ", ""))
}

func (s *LookupService[T]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	q := s.db.WithContext(ctx)
	for _, p := range s.rules.preload {
		q = q.Preload(p)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, storageErr("list "+s.event(), err)
	}
	return items, nil
}

func (s *LookupService[T]) Get(ctx context.Context, id uint) (*T, error) {
	item := new(T)
	q := s.db.WithContext(ctx)
	for _, p := range s.rules.preload {
		q = q.Preload(p)
	}
	if err := q.First(item, id).Error; err != nil {
		return nil, lookupErr(s.rules.entity, err)
	}
	return item, nil
}

func (s *LookupService[T]) Create(ctx context.Context, item *T) error {
	if err := validate.Struct(item); err != nil {
		return validationErr(err)
	}
	if err := s.checkParents(ctx, item); err != nil {
		return err
	}
	// Parents are referenced by id only; nested records in the body are not written.
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return storageErr("create "+s.event(), err)
	}
	s.publish(s.event(), "created", s.rules.id(item))
	return nil
}

// Update writes the non-zero fields of patch over the stored record.
func (s *LookupService[T]) Update(ctx context.Context, id uint, patch *T) error {
	existing := new(T)
	if err := s.db.WithContext(ctx).First(existing, id).Error; err != nil {
		return lookupErr(s.rules.entity, err)
	}
	if pid := s.rules.id(patch); pid != 0 && pid != id {
		return &ValidationError{Field: "id", Message: "id does not match the path."}
	}
	if err := s.checkParents(ctx, patch); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Model(existing).
		Omit("id", "created_at", clause.Associations).
		Updates(patch).Error
	if err != nil {
		return storageErr("update "+s.event(), err)
	}
	s.publish(s.event(), "updated", id)
	return nil
}

func (s *LookupService[T]) Delete(ctx context.Context, id uint) error {
	for _, b := range s.rules.blockers {
		n, err := s.countRefs(ctx, b.model, b.column, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return &ConflictError{Entity: s.rules.entity, Reference: b.reference}
		}
	}

	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return storageErr("delete "+s.event(), res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: s.rules.entity}
	}
	s.publish(s.event(), "deleted", id)
	return nil
}

func (s *LookupService[T]) checkParents(ctx context.Context, item *T) error {
	if s.rules.parents == nil {
		return nil
	}
	for _, p := range s.rules.parents(item) {
		if p.id == 0 {
			continue
		}
		id := p.id
		if err := s.requireRef(ctx, p.field, p.model, &id); err != nil {
			return err
		}
	}
	return nil
}

var subCategoryRules = lookupRules[models.SubCategory]{
	entity:  "Subcategory",
	preload: []string{"Category"},
	id:      func(m *models.SubCategory) uint { return m.ID },
	parents: func(m *models.SubCategory) []parentRef {
		return []parentRef{{field: "categoryId", model: &models.Category{}, id: m.CategoryID}}
	},
	blockers: []blocker{
		{model: &models.Brand{}, column: "sub_category_id", reference: "Brands"},
		{model: &models.Product{}, column: "sub_category_id", reference: "Products"},
	},
}

var brandRules = lookupRules[models.Brand]{
	entity:  "Brand",
	preload: []string{"SubCategory"},
	id:      func(m *models.Brand) uint { return m.ID },
	parents: func(m *models.Brand) []parentRef {
		return []parentRef{{field: "subcategoryId", model: &models.SubCategory{}, id: m.SubCategoryID}}
	},
	blockers: []blocker{
		{model: &models.Product{}, column: "brand_id", reference: "Products"},
	},
}

var variantTypeRules = lookupRules[models.VariantType]{
	entity: "Variant Type",
	id:     func(m *models.VariantType) uint { return m.ID },
	blockers: []blocker{
		{model: &models.Variant{}, column: "variant_type_id", reference: "Variants"},
		{model: &models.Product{}, column: "variant_type_id", reference: "Products"},
	},
}

var variantRules = lookupRules[models.Variant]{
	entity:  "Variant",
	preload: []string{"VariantType"},
	id:      func(m *models.Variant) uint { return m.ID },
	parents: func(m *models.Variant) []parentRef {
		return []parentRef{{field: "variantTypeId", model: &models.VariantType{}, id: m.VariantTypeID}}
	},
	blockers: []blocker{
		{model: &models.Product{}, column: "variant_id", reference: "Products"},
	},
}
