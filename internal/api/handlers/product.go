package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/logging"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	service "github.com/aaravmahajanofficial/inventory-catalog/internal/services"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/utils"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *utils.Validator
}

func NewProductHandler(productService service.ProductService, validator *utils.Validator) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator}
}

// CreateProduct godoc
//
//	@Summary	Create a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		models.CreateProductRequest	true	"Product"
//	@Success	201		{object}	models.Product
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	409		{object}	response.ErrorResponse
//	@Router		/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := logging.FromContext(r.Context())

		var req models.CreateProductRequest
		if err := utils.ParseAndValidate(r, &req, h.validator); err != nil {
			response.Error(w, r, err)
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		logger.Info("Product created successfully", slog.Int64("productId", product.ID), slog.String("sku", product.SKU))
		response.Success(w, http.StatusCreated, product)
	}
}

// ListProducts godoc
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Param		first	query		int	false	"1-based position of the first product"
//	@Param		last	query		int	false	"1-based position of the last product"
//	@Success	200		{object}	models.ProductCollection
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := utils.ParseWindow(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		products, err := h.productService.ListProducts(r.Context(), window)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, models.ProductCollection{Products: products})
	}
}

// GetProductByID godoc
//
//	@Summary	Get a product by id
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	models.Product
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/product/id/{id} [get]
func (h *ProductHandler) GetProductByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r.PathValue("id"), "product")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// GetProductBySKU godoc
//
//	@Summary	Get a product by sku
//	@Tags		products
//	@Produce	json
//	@Param		sku	path		string	true	"Product sku"
//	@Success	200	{object}	models.Product
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/product/sku/{sku} [get]
func (h *ProductHandler) GetProductBySKU() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := h.productService.GetProductBySKU(r.Context(), r.PathValue("sku"))
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// GetProductByName godoc
//
//	@Summary	Get a product by name
//	@Tags		products
//	@Produce	json
//	@Param		name	path		string	true	"Product name"
//	@Success	200		{object}	models.Product
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/product/name/{name} [get]
func (h *ProductHandler) GetProductByName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := h.productService.GetProductByName(r.Context(), r.PathValue("name"))
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListProductCategories godoc
//
//	@Summary	List the categories containing a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	models.CategoryCollection
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/product/id/{id}/categories [get]
func (h *ProductHandler) ListProductCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r.PathValue("id"), "product")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		categories, err := h.productService.ListProductCategories(r.Context(), id)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, models.CategoryCollection{Categories: categories})
	}
}

// UpdateProductByID godoc
//
//	@Summary	Update a product by id
//	@Description	Omitted fields keep their stored value. The last updated date becomes today.
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Product id"
//	@Param		product	body		models.UpdateProductRequest	true	"Replacement fields"
//	@Success	200		{object}	models.Product
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/product/id/{id} [put]
func (h *ProductHandler) UpdateProductByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r.PathValue("id"), "product")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		var req models.UpdateProductRequest
		if err := utils.ParseAndValidate(r, &req, h.validator); err != nil {
			response.Error(w, r, err)
			return
		}

		product, err := h.productService.UpdateProductByID(r.Context(), id, &req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		logging.FromContext(r.Context()).Info("Product updated successfully", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProductBySKU godoc
//
//	@Summary	Update a product by sku
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		sku		path		string						true	"Product sku"
//	@Param		product	body		models.UpdateProductRequest	true	"Replacement fields"
//	@Success	200		{object}	models.Product
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/product/sku/{sku} [put]
func (h *ProductHandler) UpdateProductBySKU() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateProductRequest
		if err := utils.ParseAndValidate(r, &req, h.validator); err != nil {
			response.Error(w, r, err)
			return
		}

		product, err := h.productService.UpdateProductBySKU(r.Context(), r.PathValue("sku"), &req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		logging.FromContext(r.Context()).Info("Product updated successfully", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProductByID godoc
//
//	@Summary	Delete a product by id
//	@Tags		products
//	@Param		id	path	int	true	"Product id"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/product/id/{id} [delete]
func (h *ProductHandler) DeleteProductByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r.PathValue("id"), "product")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := h.productService.DeleteProductByID(r.Context(), id); err != nil {
			response.Error(w, r, err)
			return
		}

		logging.FromContext(r.Context()).Info("Product deleted", slog.Int64("productId", id))
		response.NoContent(w)
	}
}

// DeleteProductBySKU godoc
//
//	@Summary	Delete a product by sku
//	@Tags		products
//	@Param		sku	path	string	true	"Product sku"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/product/sku/{sku} [delete]
func (h *ProductHandler) DeleteProductBySKU() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sku := r.PathValue("sku")

		if err := h.productService.DeleteProductBySKU(r.Context(), sku); err != nil {
			response.Error(w, r, err)
			return
		}

		logging.FromContext(r.Context()).Info("Product deleted", slog.String("sku", sku))
		response.NoContent(w)
	}
}
