package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shoplane/catalog-service/internal/app/catalog/queries/admin_list_products"
	"github.com/shoplane/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/shoplane/catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/shoplane/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/shoplane/catalog-service/internal/app/catalog/usecases/create_product"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	Create *create_product.Interactor
}

// Queries groups read handlers.
type Queries struct {
	List       *list_products.Handler
	AdminList  *admin_list_products.Handler
	Categories *list_categories.Handler
	Get        *get_product.Handler
}

// Handler is a thin HTTP transport adapter. It validates input, maps JSON
// <-> application DTOs and delegates to the application handlers.
type Handler struct {
	commands Commands
	queries  Queries
	logger   *zap.Logger
}

func NewHandler(cmd Commands, qry Queries, logger *zap.Logger) *Handler {
	return &Handler{commands: cmd, queries: qry, logger: logger}
}

// RegisterRoutes mounts the catalog API on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.listCategories)
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/{productID}", h.getProduct)
	r.Get("/admin/products", h.adminListProducts)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.queries.Categories.Execute(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r, false)
	if err != nil {
		respondErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.queries.List.Execute(r.Context(), q)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) adminListProducts(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r, true)
	if err != nil {
		respondErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.queries.AdminList.Execute(r.Context(), q)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		respondErrorMessage(w, http.StatusBadRequest, "productID is required")
		return
	}

	resp, err := h.queries.Get.Execute(r.Context(), productID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body createProductBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateCreateProduct(&body); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.commands.Create.Execute(r.Context(), body.toRequest())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}
