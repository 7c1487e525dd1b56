package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"gallery-auction/internal/auth"
	gallery "gallery-auction/internal/galleryService"
	model "gallery-auction/internal/models"
	"gallery-auction/services/gallery/helpers"
	"gallery-auction/utils"

	"github.com/gin-gonic/gin"
)

type GalleryServiceInterface interface {
	UploadPicture(ctx context.Context, in gallery.UploadPictureInput) (model.Picture, error)
	ListPictures(categoryID, pictureType string) ([]model.Picture, error)
	GetPicture(pictureID string) (model.Picture, error)
	UpdatePicture(pictureID string, fields model.PictureUpdate) (model.Picture, error)
	DeletePicture(ctx context.Context, pictureID string) error
	AddCategory(name, description string) (model.Category, error)
	ListCategories() ([]model.Category, error)
	DeleteCategory(categoryID string) error
}

type GalleryHandler struct {
	service GalleryServiceInterface
}

func NewGalleryHandler(service GalleryServiceInterface) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// UploadPictureHandler handles POST /admin/pictures (multipart form)
func (h *GalleryHandler) UploadPictureHandler(c *gin.Context) {
	in := gallery.UploadPictureInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Type:         c.PostForm("type"),
		CategoryName: c.PostForm("category"),
		IsBanner:     c.PostForm("is_banner") == "true",
		UploadedBy:   c.GetString(auth.ContextUserID),
	}

	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			helpers.HandleBindError(c, "UploadPictureHandler", fmt.Errorf("price %q is not a number", raw))
			return
		}
		in.Price = price
	}

	image, contentType, err := utils.ReadFormFile(c, "image")
	if err != nil {
		helpers.HandleBindError(c, "UploadPictureHandler", fmt.Errorf("image file is required: %w", err))
		return
	}
	in.Image = image
	in.ContentType = contentType

	created, err := h.service.UploadPicture(c.Request.Context(), in)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UploadPictureHandler: failed to upload picture", map[string]any{
			"handler": "UploadPictureHandler",
			"title":   in.Title,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "picture uploaded successfully")
	helpers.LogSuccess("UploadPictureHandler", "picture uploaded successfully", map[string]any{
		"picture_id": created.PictureID,
		"is_banner":  created.IsBanner,
	})
}

// ListPicturesHandler handles GET /admin/pictures with optional
// category and type query filters
func (h *GalleryHandler) ListPicturesHandler(c *gin.Context) {
	categoryID := c.Query("category")
	pictureType := c.Query("type")

	pictures, err := h.service.ListPictures(categoryID, pictureType)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListPicturesHandler: error retrieving pictures", map[string]any{"error": err.Error()})
		return
	}

	if pictures == nil {
		pictures = []model.Picture{}
	}

	utils.JSONResponse(c, http.StatusOK, pictures, "pictures retrieved successfully")
	helpers.LogSuccess("ListPicturesHandler", "pictures retrieved successfully", map[string]any{
		"count":    len(pictures),
		"category": categoryID,
		"type":     pictureType,
	})
}

// UpdatePictureHandler handles PUT /admin/pictures/:picture_id
func (h *GalleryHandler) UpdatePictureHandler(c *gin.Context) {
	var req helpers.UpdatePictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePictureHandler", err)
		return
	}

	pictureID := c.Param("picture_id")
	updated, err := h.service.UpdatePicture(pictureID, model.PictureUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdatePictureHandler: failed to update picture", map[string]any{
			"handler":    "UpdatePictureHandler",
			"picture_id": pictureID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "picture updated successfully")
	helpers.LogSuccess("UpdatePictureHandler", "picture updated successfully", map[string]any{
		"picture_id": updated.PictureID,
	})
}

// DeletePictureHandler handles DELETE /admin/pictures/:picture_id.
// Deleting a picture also removes any auction attached to it.
func (h *GalleryHandler) DeletePictureHandler(c *gin.Context) {
	pictureID := c.Param("picture_id")
	if err := h.service.DeletePicture(c.Request.Context(), pictureID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeletePictureHandler: failed to delete picture", map[string]any{
			"handler":    "DeletePictureHandler",
			"picture_id": pictureID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "picture deleted successfully")
	helpers.LogSuccess("DeletePictureHandler", "picture deleted successfully", map[string]any{
		"picture_id": pictureID,
	})
}

// AddCategoryHandler handles POST /admin/categories
func (h *GalleryHandler) AddCategoryHandler(c *gin.Context) {
	var req helpers.AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCategoryHandler", err)
		return
	}

	created, err := h.service.AddCategory(req.Name, req.Description)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AddCategoryHandler: failed to add category", map[string]any{
			"handler": "AddCategoryHandler",
			"name":    req.Name,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "category created successfully")
	helpers.LogSuccess("AddCategoryHandler", "category created successfully", map[string]any{
		"category_id": created.CategoryID,
		"name":        created.Name,
	})
}

// ListCategoriesHandler handles GET /admin/categories
func (h *GalleryHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.ListCategories()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListCategoriesHandler: error retrieving categories", map[string]any{"error": err.Error()})
		return
	}

	if categories == nil {
		categories = []model.Category{}
	}

	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
	helpers.LogSuccess("ListCategoriesHandler", "categories retrieved successfully", map[string]any{
		"count": len(categories),
	})
}

// DeleteCategoryHandler handles DELETE /admin/categories/:category_id
func (h *GalleryHandler) DeleteCategoryHandler(c *gin.Context) {
	categoryID := c.Param("category_id")
	if err := h.service.DeleteCategory(categoryID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeleteCategoryHandler: failed to delete category", map[string]any{
			"handler":     "DeleteCategoryHandler",
			"category_id": categoryID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "category deleted successfully")
	helpers.LogSuccess("DeleteCategoryHandler", "category deleted successfully", map[string]any{
		"category_id": categoryID,
	})
}
