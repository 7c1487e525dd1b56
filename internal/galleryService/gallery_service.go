package gallery

import (
	"context"
	"fmt"
	"time"

	"gallery-auction/internal/apperrors"
	model "gallery-auction/internal/models"
	"gallery-auction/internal/repository"
	"gallery-auction/internal/storage"
	"gallery-auction/utils"
)

// AuctionCascader removes whatever auction references a picture; deleting
// a picture must also remove its auction. Wired to the auction service.
type AuctionCascader interface {
	DeleteAuctionForPicture(pictureID string) error
}

// UploadPictureInput carries a new catalog picture
type UploadPictureInput struct {
	Title        string
	Description  string
	Price        float64
	Type         string
	CategoryName string
	IsBanner     bool
	Image        []byte
	ContentType  string
	UploadedBy   string
}

// GalleryService owns the picture catalog and its categories
type GalleryService struct {
	catalog  repository.CatalogStore
	objects  storage.ObjectStore
	auctions AuctionCascader
}

// NewGalleryService creates a new GalleryService instance
func NewGalleryService(catalog repository.CatalogStore, objects storage.ObjectStore, auctions AuctionCascader) *GalleryService {
	return &GalleryService{
		catalog:  catalog,
		objects:  objects,
		auctions: auctions,
	}
}

// UploadPicture stores the image and creates the catalog record. Banner
// images carry no title, price or category.
func (s *GalleryService) UploadPicture(ctx context.Context, in UploadPictureInput) (model.Picture, error) {
	if len(in.Image) == 0 {
		return model.Picture{}, fmt.Errorf("service: %w - no file uploaded", apperrors.ErrInvalidInput)
	}

	picture := model.Picture{
		PictureID:  utils.GenerateID(),
		UploadedBy: in.UploadedBy,
		IsBanner:   in.IsBanner,
		CreatedAt:  time.Now().UTC(),
	}

	if !in.IsBanner {
		if in.Title == "" || in.Description == "" || in.Price <= 0 || in.Type == "" || in.CategoryName == "" {
			return model.Picture{}, fmt.Errorf("service: %w - title, description, price, type and category are required", apperrors.ErrInvalidInput)
		}
		category, err := s.catalog.GetCategoryByName(in.CategoryName)
		if err != nil {
			return model.Picture{}, fmt.Errorf("service: failed to resolve category %q: %w", in.CategoryName, err)
		}
		picture.Title = in.Title
		picture.Description = in.Description
		picture.Price = in.Price
		picture.Type = in.Type
		picture.CategoryID = category.CategoryID
	}

	url, err := s.objects.Upload(ctx, pictureObjectName(picture.PictureID), in.Image, in.ContentType)
	if err != nil {
		return model.Picture{}, fmt.Errorf("service: failed to upload picture: %w", err)
	}
	picture.PictureURL = url

	if err := s.catalog.AddPicture(picture); err != nil {
		return model.Picture{}, fmt.Errorf("service: failed to store picture: %w", err)
	}

	utils.Info("picture uploaded", map[string]any{
		"picture_id": picture.PictureID,
		"is_banner":  picture.IsBanner,
	})
	return picture, nil
}

// ListPictures returns pictures, optionally filtered by category and type
func (s *GalleryService) ListPictures(categoryID, pictureType string) ([]model.Picture, error) {
	pictures, err := s.catalog.ListPictures(categoryID, pictureType)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list pictures: %w", err)
	}
	return pictures, nil
}

// GetPicture returns one picture by ID
func (s *GalleryService) GetPicture(pictureID string) (model.Picture, error) {
	picture, err := s.catalog.GetPicture(pictureID)
	if err != nil {
		return model.Picture{}, fmt.Errorf("service: failed to get picture %s: %w", pictureID, err)
	}
	return picture, nil
}

// UpdatePicture patches the editable picture fields
func (s *GalleryService) UpdatePicture(pictureID string, fields model.PictureUpdate) (model.Picture, error) {
	if pictureID == "" {
		return model.Picture{}, fmt.Errorf("service: %w - empty picture ID", apperrors.ErrInvalidInput)
	}
	picture, err := s.catalog.UpdatePicture(pictureID, fields)
	if err != nil {
		return model.Picture{}, fmt.Errorf("service: failed to update picture %s: %w", pictureID, err)
	}
	return picture, nil
}

// DeletePicture removes the stored object, the catalog record and, through
// the cascader, any auction referencing the picture. The cascade runs last
// so a storage failure never leaves a dangling auction.
func (s *GalleryService) DeletePicture(ctx context.Context, pictureID string) error {
	if pictureID == "" {
		return fmt.Errorf("service: %w - empty picture ID", apperrors.ErrInvalidInput)
	}

	if _, err := s.catalog.GetPicture(pictureID); err != nil {
		return fmt.Errorf("service: failed to get picture %s: %w", pictureID, err)
	}

	if err := s.objects.Delete(ctx, pictureObjectName(pictureID)); err != nil {
		return fmt.Errorf("service: failed to delete picture object %s: %w", pictureID, err)
	}
	if _, err := s.catalog.DeletePicture(pictureID); err != nil {
		return fmt.Errorf("service: failed to delete picture %s: %w", pictureID, err)
	}
	if err := s.auctions.DeleteAuctionForPicture(pictureID); err != nil {
		return fmt.Errorf("service: failed to cascade auction delete for picture %s: %w", pictureID, err)
	}

	utils.Info("picture deleted", map[string]any{"picture_id": pictureID})
	return nil
}

// AddCategory creates a category with a unique name
func (s *GalleryService) AddCategory(name, description string) (model.Category, error) {
	if name == "" || description == "" {
		return model.Category{}, fmt.Errorf("service: %w - name and description are required", apperrors.ErrInvalidInput)
	}

	category := model.Category{
		CategoryID:  utils.GenerateID(),
		Name:        name,
		Description: description,
	}
	if err := s.catalog.AddCategory(category); err != nil {
		return model.Category{}, fmt.Errorf("service: failed to create category %q: %w", name, err)
	}
	return category, nil
}

// ListCategories returns all categories
func (s *GalleryService) ListCategories() ([]model.Category, error) {
	categories, err := s.catalog.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory removes a category by ID
func (s *GalleryService) DeleteCategory(categoryID string) error {
	if categoryID == "" {
		return fmt.Errorf("service: %w - empty category ID", apperrors.ErrInvalidInput)
	}
	if err := s.catalog.DeleteCategory(categoryID); err != nil {
		return fmt.Errorf("service: failed to delete category %s: %w", categoryID, err)
	}
	return nil
}

func pictureObjectName(pictureID string) string {
	return "pictures/" + pictureID
}
