package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CategoryRequest struct {
	CategoryName string `json:"category_name" example:"Elektronika"`
}

// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (default 10)"
// @Param        offset  query     int  false  "Page number, 1-based (default 1)"
// @Success      200     {object}  map[string]interface{}
// @Failure      500     {object}  errorResponse
// @Router       /category [get]
func (s *Server) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	total, err := s.store.CountCategories(r.Context())
	if err != nil {
		respondDBError(w, err)
		return
	}

	categories, err := s.store.ListCategories(r.Context(), limit, offset)
	if err != nil {
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    categories,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        categoryRequest  body      CategoryRequest  true  "Category"
// @Success      201              {object}  map[string]interface{}
// @Failure      400              {object}  errorResponse
// @Router       /category [post]
func (s *Server) CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.CategoryName) == "" {
		respondError(w, http.StatusBadRequest, "Category name cannot be empty")
		return
	}

	category, err := s.store.CreateCategory(r.Context(), req.CategoryName)
	if err != nil {
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    category,
	})
}

// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        categoryID       path      string           true  "Category ID"
// @Param        categoryRequest  body      CategoryRequest  true  "Category"
// @Success      200              {object}  map[string]bool
// @Failure      404              {object}  errorResponse
// @Router       /category/{categoryID} [patch]
func (s *Server) UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.store.UpdateCategory(r.Context(), categoryID, req.CategoryName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        categoryID  path      string  true  "Category ID"
// @Success      200         {object}  map[string]bool
// @Failure      500         {object}  errorResponse
// @Router       /category/{categoryID} [delete]
func (s *Server) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := s.store.DeleteCategory(r.Context(), categoryID); err != nil {
		respondDBError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
