package repository

import (
	"fmt"
	"sort"
	"sync"

	"gallery-auction/internal/apperrors"
	model "gallery-auction/internal/models"
)

// CatalogStore defines storage for pictures and categories
type CatalogStore interface {
	AddPicture(picture model.Picture) error
	GetPicture(pictureID string) (model.Picture, error)
	ListPictures(categoryID, pictureType string) ([]model.Picture, error)
	UpdatePicture(pictureID string, fields model.PictureUpdate) (model.Picture, error)
	DeletePicture(pictureID string) (model.Picture, error)
	AddCategory(category model.Category) error
	GetCategoryByName(name string) (model.Category, error)
	GetCategory(categoryID string) (model.Category, error)
	ListCategories() ([]model.Category, error)
	DeleteCategory(categoryID string) error
}

// MemoryCatalogStore is a concurrency-safe in-memory implementation of CatalogStore
type MemoryCatalogStore struct {
	mu         sync.RWMutex
	pictures   map[string]model.Picture  // key: pictureID
	categories map[string]model.Category // key: categoryID
}

// NewMemoryCatalogStore creates an empty catalog store
func NewMemoryCatalogStore() *MemoryCatalogStore {
	return &MemoryCatalogStore{
		pictures:   make(map[string]model.Picture),
		categories: make(map[string]model.Category),
	}
}

// AddPicture stores a new picture
func (s *MemoryCatalogStore) AddPicture(picture model.Picture) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pictures[picture.PictureID] = picture
	return nil
}

// GetPicture returns the picture by ID
func (s *MemoryCatalogStore) GetPicture(pictureID string) (model.Picture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	picture, ok := s.pictures[pictureID]
	if !ok {
		return model.Picture{}, fmt.Errorf("picture %s: %w", pictureID, apperrors.ErrPictureNotFound)
	}
	return picture, nil
}

// ListPictures returns pictures newest first, optionally filtered.
// Filter semantics: "all" (or empty) matches everything; a concrete type
// also matches pictures typed "both"; asking for "both" matches pictures
// typed "auction" or "homePage".
func (s *MemoryCatalogStore) ListPictures(categoryID, pictureType string) ([]model.Picture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pictures := make([]model.Picture, 0, len(s.pictures))
	for _, p := range s.pictures {
		if categoryID != "" && categoryID != "all" && p.CategoryID != categoryID {
			continue
		}
		if !matchesType(p.Type, pictureType) {
			continue
		}
		pictures = append(pictures, p)
	}

	sort.Slice(pictures, func(i, j int) bool {
		return pictures[i].CreatedAt.After(pictures[j].CreatedAt)
	})
	return pictures, nil
}

func matchesType(have, want string) bool {
	if want == "" || want == "all" {
		return true
	}
	if want == "both" {
		return have == "auction" || have == "homePage" || have == "both"
	}
	return have == want || have == "both"
}

// UpdatePicture patches the given fields on an existing picture
func (s *MemoryCatalogStore) UpdatePicture(pictureID string, fields model.PictureUpdate) (model.Picture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	picture, ok := s.pictures[pictureID]
	if !ok {
		return model.Picture{}, fmt.Errorf("update picture %s: %w", pictureID, apperrors.ErrPictureNotFound)
	}

	if fields.Title != nil {
		picture.Title = *fields.Title
	}
	if fields.Description != nil {
		picture.Description = *fields.Description
	}
	if fields.Price != nil {
		picture.Price = *fields.Price
	}
	if fields.Type != nil {
		picture.Type = *fields.Type
	}
	if fields.CategoryID != nil {
		picture.CategoryID = *fields.CategoryID
	}

	s.pictures[pictureID] = picture
	return picture, nil
}

// DeletePicture removes the picture and returns the removed record
func (s *MemoryCatalogStore) DeletePicture(pictureID string) (model.Picture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	picture, ok := s.pictures[pictureID]
	if !ok {
		return model.Picture{}, fmt.Errorf("delete picture %s: %w", pictureID, apperrors.ErrPictureNotFound)
	}
	delete(s.pictures, pictureID)
	return picture, nil
}

// AddCategory stores a new category, enforcing name uniqueness
func (s *MemoryCatalogStore) AddCategory(category model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == category.Name {
			return fmt.Errorf("add category %s: %w", category.Name, apperrors.ErrCategoryExists)
		}
	}
	s.categories[category.CategoryID] = category
	return nil
}

// GetCategoryByName looks a category up by its unique name
func (s *MemoryCatalogStore) GetCategoryByName(name string) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return model.Category{}, fmt.Errorf("category %q: %w", name, apperrors.ErrCategoryNotFound)
}

// GetCategory returns the category by ID
func (s *MemoryCatalogStore) GetCategory(categoryID string) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[categoryID]
	if !ok {
		return model.Category{}, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrCategoryNotFound)
	}
	return category, nil
}

// ListCategories returns all categories sorted by name
func (s *MemoryCatalogStore) ListCategories() ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// DeleteCategory removes the category by ID
func (s *MemoryCatalogStore) DeleteCategory(categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[categoryID]; !ok {
		return fmt.Errorf("delete category %s: %w", categoryID, apperrors.ErrCategoryNotFound)
	}
	delete(s.categories, categoryID)
	return nil
}
