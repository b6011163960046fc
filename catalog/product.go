package catalog

import (
	"context"

	"shopadmin/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductService struct {
	base
}

// expanded loads a product query with every reference trimmed to its
// display fields and images in slot order.
func (s *ProductService) expanded(ctx context.Context) *gorm.DB {
	idName := func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }
	return s.db.WithContext(ctx).
		Preload("Category", idName).
		Preload("SubCategory", idName).
		Preload("Brand", idName).
		Preload("VariantType", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "type") }).
		Preload("Variant", idName).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("slot") })
}

func (s *ProductService) List(ctx context.Context) ([]models.ProductView, error) {
	var products []models.Product
	if err := s.expanded(ctx).Find(&products).Error; err != nil {
		return nil, storageErr("list products", err)
	}
	views := make([]models.ProductView, 0, len(products))
	for i := range products {
		views = append(views, view(&products[i]))
	}
	return views, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.ProductView, error) {
	var product models.Product
	if err := s.expanded(ctx).First(&product, id).Error; err != nil {
		return nil, lookupErr("Product", err)
	}
	v := view(&product)
	return &v, nil
}

// Create stores a new product. Slot uploads run one after another in slot
// order; a failed slot is logged and left out. The request fails only when
// no slot could be uploaded.
func (s *ProductService) Create(ctx context.Context, form ProductForm) error {
	if err := validate.Struct(form); err != nil {
		return validationErr(err)
	}
	if err := form.required(); err != nil {
		return err
	}

	var product models.Product
	if err := s.apply(ctx, &product, form); err != nil {
		return err
	}

	images := form.Images()
	var firstErr error
	for _, slot := range sortedSlots(images) {
		url, err := s.uploader.Upload(ctx, images[slot])
		if err != nil {
			s.log.Warn().Err(err).Int("slot", slot).Msg("product image upload failed, slot skipped")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		product.Images = append(product.Images, models.ProductImage{Slot: slot, URL: url})
	}
	if len(product.Images) == 0 {
		return firstErr
	}

	if err := s.db.WithContext(ctx).Omit("Category", "SubCategory", "Brand", "VariantType", "Variant").Create(&product).Error; err != nil {
		return storageErr("create product", err)
	}
	s.log.Info().Uint("product_id", product.ID).Int("images", len(product.Images)).Msg("product created")
	s.publish("product", "created", product.ID)
	return nil
}

// Update patches the supplied fields and upserts the supplied image slots.
// Every upload finishes before anything is written; one failure aborts.
func (s *ProductService) Update(ctx context.Context, id uint, form ProductForm) error {
	var product models.Product
	if err := s.db.WithContext(ctx).Preload("Images").First(&product, id).Error; err != nil {
		return lookupErr("Product", err)
	}

	if err := validate.Struct(form); err != nil {
		return validationErr(err)
	}
	if err := s.apply(ctx, &product, form); err != nil {
		return err
	}

	images := form.Images()
	uploaded := make(map[int]string, len(images))
	for _, slot := range sortedSlots(images) {
		url, err := s.uploader.Upload(ctx, images[slot])
		if err != nil {
			return err
		}
		uploaded[slot] = url
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&product).Error; err != nil {
			return err
		}
		for _, slot := range sortedSlots(uploaded) {
			var i int
			product.Images, i = UpsertSlot(product.Images, slot, uploaded[slot])
			img := &product.Images[i]
			img.ProductID = product.ID

			q := tx
			if img.ID == 0 {
				// A concurrent update may have filled the slot since it was loaded.
				q = tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "product_id"}, {Name: "slot"}},
					DoUpdates: clause.AssignmentColumns([]string{"url", "updated_at"}),
				})
			}
			if err := q.Save(img).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storageErr("update product", err)
	}
	s.publish("product", "updated", product.ID)
	return nil
}

// Delete removes the product together with its image slots.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return storageErr("delete product images", err)
		}
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return storageErr("delete product", res.Error)
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: "Product"}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publish("product", "deleted", id)
	return nil
}

// apply copies every non-empty form field onto product and checks that
// the references it names exist.
func (s *ProductService) apply(ctx context.Context, product *models.Product, form ProductForm) error {
	if form.Name != "" {
		product.Name = form.Name
	}
	if form.Description != "" {
		product.Description = form.Description
	}
	if form.Quantity != "" {
		n, err := parseInt("quantity", form.Quantity)
		if err != nil {
			return err
		}
		product.Quantity = n
	}
	if form.Price != "" {
		p, err := parseFloat("price", form.Price)
		if err != nil {
			return err
		}
		product.Price = p
	}
	if form.OfferPrice != "" {
		p, err := parseFloat("offerPrice", form.OfferPrice)
		if err != nil {
			return err
		}
		product.OfferPrice = &p
	}

	refs := []struct {
		field string
		value string
		model interface{}
		set   func(uint)
	}{
		{"proCategoryId", form.ProCategoryID, &models.Category{}, func(id uint) { product.CategoryID = id }},
		{"proSubCategoryId", form.ProSubCategoryID, &models.SubCategory{}, func(id uint) { product.SubCategoryID = id }},
		{"proBrandId", form.ProBrandID, &models.Brand{}, func(id uint) { product.BrandID = &id }},
		{"proVariantTypeId", form.ProVariantTypeID, &models.VariantType{}, func(id uint) { product.VariantTypeID = &id }},
		{"proVariantId", form.ProVariantID, &models.Variant{}, func(id uint) { product.VariantID = &id }},
	}
	for _, ref := range refs {
		id, err := parseOptionalID(ref.field, ref.value)
		if err != nil {
			return err
		}
		if id == nil {
			continue
		}
		if err := s.requireRef(ctx, ref.field, ref.model, id); err != nil {
			return err
		}
		ref.set(*id)
	}
	return nil
}

func view(p *models.Product) models.ProductView {
	v := models.ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		OfferPrice:  p.OfferPrice,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if v.Images == nil {
		v.Images = []models.ProductImage{}
	}
	if p.Category != nil {
		v.ProCategoryID = &models.RefSummary{ID: p.Category.ID, Name: p.Category.Name}
	}
	if p.SubCategory != nil {
		v.ProSubCategoryID = &models.RefSummary{ID: p.SubCategory.ID, Name: p.SubCategory.Name}
	}
	if p.Brand != nil {
		v.ProBrandID = &models.RefSummary{ID: p.Brand.ID, Name: p.Brand.Name}
	}
	if p.VariantType != nil {
		v.ProVariantTypeID = &models.RefSummary{ID: p.VariantType.ID, Name: p.VariantType.Name, Type: p.VariantType.Type}
	}
	if p.Variant != nil {
		v.ProVariantID = &models.RefSummary{ID: p.Variant.ID, Name: p.Variant.Name}
	}
	return v
}
