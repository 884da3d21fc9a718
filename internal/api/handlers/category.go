package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/inventory-catalog/internal/errors"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/logging"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	service "github.com/aaravmahajanofficial/inventory-catalog/internal/services"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/utils"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/utils/response"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *utils.Validator
}

func NewCategoryHandler(categoryService service.CategoryService, validator *utils.Validator) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator}
}

// CreateCategory godoc
//
//	@Summary	Create a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		models.CreateCategoryRequest	true	"Category"
//	@Success	201			{object}	models.Category
//	@Failure	400			{object}	response.ErrorResponse
//	@Failure	409			{object}	response.ErrorResponse
//	@Router		/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateCategoryRequest
		if err := utils.ParseAndValidate(r, &req, h.validator); err != nil {
			response.Error(w, r, err)
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		logging.FromContext(r.Context()).Info("Category created successfully",
			slog.Int64("categoryId", category.ID),
			slog.String("name", category.Name),
		)
		response.Success(w, http.StatusCreated, category)
	}
}

// ListCategories godoc
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Param		first	query		int	false	"1-based position of the first category"
//	@Param		last	query		int	false	"1-based position of the last category"
//	@Success	200		{object}	models.CategoryCollection
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := utils.ParseWindow(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		categories, err := h.categoryService.ListCategories(r.Context(), window)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, models.CategoryCollection{Categories: categories})
	}
}

// GetCategoryByID godoc
//
//	@Summary	Get a category by id
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		int	true	"Category id"
//	@Success	200	{object}	models.Category
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/category/id/{id} [get]
func (h *CategoryHandler) GetCategoryByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r.PathValue("id"), "category")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		category, err := h.categoryService.GetCategoryByID(r.Context(), id)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// GetCategoryByName godoc
//
//	@Summary	Get a category by name
//	@Tags		categories
//	@Produce	json
//	@Param		name	path		string	true	"Category name"
//	@Success	200		{object}	models.Category
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/category/name/{name} [get]
func (h *CategoryHandler) GetCategoryByName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := h.categoryService.GetCategoryByName(r.Context(), r.PathValue("name"))
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//
//	@Summary	Delete a category
//	@Description	Member products stay in the store.
//	@Tags		categories
//	@Param		id	path	int	true	"Category id"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/category/{id} [delete]
func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r.PathValue("id"), "category")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			response.Error(w, r, err)
			return
		}

		logging.FromContext(r.Context()).Info("Category deleted", slog.Int64("categoryId", id))
		response.NoContent(w)
	}
}

// AddProducts godoc
//
//	@Summary	Add existing products to a category
//	@Tags		categories
//	@Produce	json
//	@Param		categoryId	path		int		true	"Category id"
//	@Param		ids			path		string	true	"Comma separated product ids"
//	@Success	200			{object}	models.Category
//	@Failure	404			{object}	response.ErrorResponse
//	@Router		/category/{categoryId}/products/{ids} [put]
func (h *CategoryHandler) AddProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, productIDs, err := parseMembership(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		category, err := h.categoryService.AddProducts(r.Context(), categoryID, productIDs)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		logging.FromContext(r.Context()).Info("Products added to category",
			slog.Int64("categoryId", categoryID),
			slog.Any("productIds", productIDs),
		)
		response.Success(w, http.StatusOK, category)
	}
}

// AddNewProducts godoc
//
//	@Summary	Create products inside a category
//	@Description	An empty or null list leaves the category unchanged.
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		categoryId	path		int							true	"Category id"
//	@Param		products	body		[]models.CreateProductRequest	false	"New products"
//	@Success	200			{object}	models.Category
//	@Failure	400			{object}	response.ErrorResponse
//	@Failure	404			{object}	response.ErrorResponse
//	@Router		/category/{categoryId}/products [put]
func (h *CategoryHandler) AddNewProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := utils.ParseID(r.PathValue("categoryId"), "category")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		products, err := h.decodeNewProducts(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		category, err := h.categoryService.AddNewProducts(r.Context(), categoryID, products)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		logging.FromContext(r.Context()).Info("New products added to category",
			slog.Int64("categoryId", categoryID),
			slog.Int("count", len(products)),
		)
		response.Success(w, http.StatusOK, category)
	}
}

// decodeNewProducts reads the optional product list. A missing body means no products.
func (h *CategoryHandler) decodeNewProducts(r *http.Request) ([]*models.CreateProductRequest, error) {
	var products []*models.CreateProductRequest

	if err := utils.DecodeJSONBody(r, &products); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return nil, nil
		}
		return nil, appErrors.BadRequestError(err.Error()).WithError(err)
	}

	for _, product := range products {
		if product == nil {
			return nil, appErrors.BadRequestError("product entries cannot be null")
		}

		if err := utils.Validate(product, h.validator); err != nil {
			return nil, err
		}
	}

	return products, nil
}

// RemoveProducts godoc
//
//	@Summary	Remove products from a category
//	@Tags		categories
//	@Param		categoryId	path	int		true	"Category id"
//	@Param		ids			path	string	true	"Comma separated product ids"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/category/{categoryId}/products/{ids} [delete]
func (h *CategoryHandler) RemoveProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, productIDs, err := parseMembership(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := h.categoryService.RemoveProducts(r.Context(), categoryID, productIDs); err != nil {
			response.Error(w, r, err)
			return
		}

		logging.FromContext(r.Context()).Info("Products removed from category",
			slog.Int64("categoryId", categoryID),
			slog.Any("productIds", productIDs),
		)
		response.NoContent(w)
	}
}

func parseMembership(r *http.Request) (int64, []int64, error) {
	categoryID, err := utils.ParseID(r.PathValue("categoryId"), "category")
	if err != nil {
		return 0, nil, err
	}

	productIDs, err := utils.ParseIDList(r.PathValue("ids"), "product")
	if err != nil {
		return 0, nil, err
	}

	return categoryID, productIDs, nil
}
