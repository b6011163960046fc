package catalog

import (
	"context"

	"shopadmin/models"
)

type PosterService struct {
	base
}

func (s *PosterService) List(ctx context.Context) ([]models.Poster, error) {
	posters := []models.Poster{}
	if err := s.db.WithContext(ctx).Find(&posters).Error; err != nil {
		return nil, storageErr("list posters", err)
	}
	return posters, nil
}

func (s *PosterService) Get(ctx context.Context, id uint) (*models.Poster, error) {
	var poster models.Poster
	if err := s.db.WithContext(ctx).First(&poster, id).Error; err != nil {
		return nil, lookupErr("Poster", err)
	}
	return &poster, nil
}

func (s *PosterService) Create(ctx context.Context, form PosterForm) error {
	if err := validate.Struct(form); err != nil {
		return validationErr(err)
	}

	url, err := s.uploader.Upload(ctx, form.ImageBase64)
	if err != nil {
		return err
	}

	poster := models.Poster{PosterName: form.PosterName, ImageURL: url}
	if err := s.db.WithContext(ctx).Create(&poster).Error; err != nil {
		return storageErr("create poster", err)
	}
	s.log.Info().Uint("poster_id", poster.ID).Msg("poster created")
	s.publish("poster", "created", poster.ID)
	return nil
}

func (s *PosterService) Update(ctx context.Context, id uint, form PosterForm) error {
	poster, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if form.PosterName != "" {
		poster.PosterName = form.PosterName
	}
	if form.ImageBase64 != "" {
		url, err := s.uploader.Upload(ctx, form.ImageBase64)
		if err != nil {
			return err
		}
		poster.ImageURL = url
	}

	if err := s.db.WithContext(ctx).Save(poster).Error; err != nil {
		return storageErr("update poster", err)
	}
	s.publish("poster", "updated", poster.ID)
	return nil
}

func (s *PosterService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Poster{}, id)
	if res.Error != nil {
		return storageErr("delete poster", res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "Poster"}
	}
	s.publish("poster", "deleted", id)
	return nil
}
