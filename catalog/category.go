package catalog

import (
	"context"

	"shopadmin/models"
)

type CategoryService struct {
	base
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, storageErr("list categories", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, lookupErr("Category", err)
	}
	return &category, nil
}

// Create uploads the image and stores the category. An upload failure
// aborts before anything is written.
func (s *CategoryService) Create(ctx context.Context, form CategoryForm) error {
	if err := validate.Struct(form); err != nil {
		return validationErr(err)
	}

	url, err := s.uploader.Upload(ctx, form.ImageBase64)
	if err != nil {
		return err
	}

	category := models.Category{Name: form.Name, Image: url}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return storageErr("create category", err)
	}
	s.log.Info().Uint("category_id", category.ID).Msg("category created")
	s.publish("category", "created", category.ID)
	return nil
}

// Update overwrites the supplied fields only. A new image is uploaded
// before the record is touched.
func (s *CategoryService) Update(ctx context.Context, id uint, form CategoryForm) error {
	category, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if form.Name != "" {
		category.Name = form.Name
	}
	if form.ImageBase64 != "" {
		url, err := s.uploader.Upload(ctx, form.ImageBase64)
		if err != nil {
			return err
		}
		category.Image = url
	}

	if err := s.db.WithContext(ctx).Save(category).Error; err != nil {
		return storageErr("update category", err)
	}
	s.publish("category", "updated", category.ID)
	return nil
}

// Delete refuses while any subcategory or product still points at the
// category.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	n, err := s.countRefs(ctx, &models.SubCategory{}, "category_id", id)
	if err != nil {
		return err
	}
	if n > 0 {
		return &ConflictError{Entity: "Category", Reference: "Subcategories"}
	}

	n, err = s.countRefs(ctx, &models.Product{}, "category_id", id)
	if err != nil {
		return err
	}
	if n > 0 {
		return &ConflictError{Entity: "Category", Reference: "Products"}
	}

	res := s.db.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return storageErr("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "Category"}
	}
	s.publish("category", "deleted", id)
	return nil
}
