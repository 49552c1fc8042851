package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"sklep-api/internal/database"
	"sklep-api/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jaevor/go-nanoid"
)

const maxUploadBytes = 1 << 30

// presignProductImages swaps every stored image key for a fresh time-limited
// read URL. Links are generated at read time so their validity window always
// starts now, never at upload time.
func (s *Server) presignProductImages(ctx context.Context, products []models.Product) error {
	for i := range products {
		if products[i].ProductImage == nil {
			continue
		}
		url, err := s.storage.PresignGet(ctx, *products[i].ProductImage, s.config.S3.PresignTTL())
		if err != nil {
			return err
		}
		products[i].ProductImage = &url
	}
	return nil
}

func paginationParams(r *http.Request) (limit, offset int64) {
	limit = 10
	if parsed, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil && parsed > 0 {
		limit = parsed
	}

	// "offset" is a 1-based page number, kept for client compatibility.
	page := int64(1)
	if parsed, err := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 64); err == nil && parsed > 0 {
		page = parsed
	}

	return limit, (page - 1) * limit
}

// @Summary      List products
// @Description  Returns a page of products with category names and presigned image links.
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (default 10)"
// @Param        offset  query     int  false  "Page number, 1-based (default 1)"
// @Success      200     {object}  map[string]interface{}
// @Failure      401     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /product [get]
func (s *Server) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	total, err := s.store.CountProducts(r.Context())
	if err != nil {
		respondDBError(w, err)
		return
	}

	products, err := s.store.ListProducts(r.Context(), limit, offset)
	if err != nil {
		respondDBError(w, err)
		return
	}

	if err := s.presignProductImages(r.Context(), products); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate presigned URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    products,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// @Summary      Get one product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        productID  path      string  true  "Product ID"
// @Success      200        {object}  map[string]interface{}
// @Failure      404        {object}  errorResponse
// @Router       /product/{productID} [get]
func (s *Server) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := s.store.GetProductByID(r.Context(), productID)
	if err != nil {
		respondDBError(w, err)
		return
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	single := []models.Product{*product}
	if err := s.presignProductImages(r.Context(), single); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate presigned URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    single[0],
	})
}

// @Summary      Create a product
// @Description  Multipart form with fields product_name, price, stock, sku, category_id and file field product_image. Any other field is rejected.
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /product [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	form, err := s.scanProductForm(r, rejectUnknownFields)
	if err != nil {
		respondFormError(w, err)
		return
	}

	if form.ProductName == nil || *form.ProductName == "" {
		respondError(w, http.StatusBadRequest, "Product name is required")
		return
	}

	generateID, err := nanoid.Standard(21)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate product ID")
		return
	}

	params := database.CreateProductParams{
		ProductID:    generateID(),
		ProductName:  *form.ProductName,
		CategoryID:   form.CategoryID,
		ProductImage: form.ImageKey,
	}
	if form.PriceCents != nil {
		params.PriceCents = *form.PriceCents
	}
	if form.Stock != nil {
		params.Stock = *form.Stock
	}
	if form.SKU != nil {
		params.SKU = *form.SKU
	}

	product, err := s.store.CreateProduct(r.Context(), params)
	if err != nil {
		if errors.Is(err, database.ErrCategoryNotFound) {
			respondError(w, http.StatusBadRequest, "Category does not exist")
			return
		}
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    product,
	})
}

// @Summary      Update a product
// @Description  Multipart form; only the fields present are applied, unknown fields are skipped.
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        productID  path      string  true  "Product ID"
// @Success      200        {object}  map[string]bool
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /product/{productID} [patch]
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	form, err := s.scanProductForm(r, skipUnknownFields)
	if err != nil {
		respondFormError(w, err)
		return
	}

	err = s.store.UpdateProduct(r.Context(), productID, database.UpdateProductParams{
		ProductName:  form.ProductName,
		PriceCents:   form.PriceCents,
		Stock:        form.Stock,
		SKU:          form.SKU,
		CategoryID:   form.CategoryID,
		ProductImage: form.ImageKey,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		if errors.Is(err, database.ErrCategoryNotFound) {
			respondError(w, http.StatusBadRequest, "Category does not exist")
			return
		}
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        productID  path      string  true  "Product ID"
// @Success      200        {object}  map[string]bool
// @Failure      500        {object}  errorResponse
// @Router       /product/{productID} [delete]
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := s.store.DeleteProduct(r.Context(), productID); err != nil {
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func respondFormError(w http.ResponseWriter, err error) {
	var fe formError
	if errors.As(err, &fe) {
		respondError(w, http.StatusBadRequest, fe.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
