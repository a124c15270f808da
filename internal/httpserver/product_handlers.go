package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"megacart/internal/service"
)

// @Summary      List products
// @Description  List catalog entries, optionally filtered
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Filter by category name"
// @Param        search    query  string  false  "Substring match over name and description"
// @Param        in_stock  query  bool    false  "Filter by stock availability"
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  map[string]string
// @Router       /api/products/ [get]
func handleListProducts(catalogSvc *service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := service.ProductFilter{
			Category: q.Get("category"),
			Search:   q.Get("search"),
		}
		if v := q.Get("in_stock"); v != "" {
			inStock, err := strconv.ParseBool(v)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid in_stock value"})
				return
			}
			filter.InStock = &inStock
		}

		products, err := catalogSvc.ListProducts(r.Context(), filter)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch products"})
			return
		}
		writeJSON(w, http.StatusOK, products)
	}
}

// @Summary      Get product
// @Description  Get a single catalog entry by id
// @Tags         products
// @Produce      json
// @Param        productID  path  int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{productID} [get]
func handleGetProduct(catalogSvc *service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "productID")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
			return
		}

		product, err := catalogSvc.GetProduct(r.Context(), id)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch product"})
			return
		}
		if product == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

// @Summary      List categories
// @Description  Return the fixed category name list
// @Tags         products
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/categories/ [get]
func handleListCategories(catalogSvc *service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalogSvc.Categories())
	}
}
