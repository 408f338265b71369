package controllers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"catalog-service/models"
	"catalog-service/repository"
	"catalog-service/services"
	"catalog-service/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductController handles HTTP requests for the catalog UI and API.
type ProductController struct {
	catalogService services.CatalogService
	cache          *CacheManager
	templates      *template.Template
}

// NewProductController creates a new ProductController.
func NewProductController(svc services.CatalogService, cache *CacheManager) *ProductController {
	return &ProductController{
		catalogService: svc,
		cache:          cache,
		templates:      web.Templates(),
	}
}

// Index handles GET / and renders the full catalog page.
func (pc *ProductController) Index(ctx *gin.Context) {
	products, err := pc.catalogService.ListProducts(ctx.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	ctx.HTML(http.StatusOK, "index.html", gin.H{"Products": products})
}

// ListProducts handles GET /products and returns the product table
// fragment. A non-empty q param searches by title; otherwise sort/dir
// select the ordering (invalid values silently fall back to the default).
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	sort := ctx.Query("sort")
	dir := ctx.Query("dir")
	query := ctx.Query("q")

	if fragment, ok := pc.cache.GetListFragment(ctx.Request.Context(), sort, dir, query); ok {
		ctx.Data(http.StatusOK, "text/html; charset=utf-8", fragment)
		return
	}

	var products []models.Product
	var err error
	switch {
	case query != "":
		products, err = pc.catalogService.SearchProducts(ctx.Request.Context(), query)
	case sort != "":
		products, err = pc.catalogService.ListProductsSortedBy(ctx.Request.Context(), sort, dir)
	default:
		products, err = pc.catalogService.ListProducts(ctx.Request.Context())
	}
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	var buf bytes.Buffer
	if err := pc.templates.ExecuteTemplate(&buf, "product_table", gin.H{"Products": products}); err != nil {
		zap.L().Error("Failed to render product table", zap.Error(err))
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	pc.cache.SetListFragmentAsync(sort, dir, query, buf.Bytes())
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// GetProduct handles GET /products/:id and returns the product as JSON.
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	product, err := pc.catalogService.GetProduct(ctx.Request.Context(), id)
	if errors.Is(err, repository.ErrProductNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		zap.L().Error("Failed to get product", zap.Int64("id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product := req.ToProduct()
	if _, err := pc.catalogService.CreateProduct(ctx.Request.Context(), product); err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	pc.cache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id.
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	err := pc.catalogService.UpdateProduct(ctx.Request.Context(), req.ToProduct(), id)
	if errors.Is(err, repository.ErrProductNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		zap.L().Error("Failed to update product", zap.Int64("id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	pc.cache.Invalidate(ctx.Request.Context())

	updated, err := pc.catalogService.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to reload updated product", zap.Int64("id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteProduct handles DELETE /products/:id. Deleting an unknown id is a
// no-op and still answers 204.
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := pc.catalogService.DeleteProduct(ctx.Request.Context(), id); err != nil {
		zap.L().Error("Failed to delete product", zap.Int64("id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	pc.cache.Invalidate(ctx.Request.Context())
	ctx.Status(http.StatusNoContent)
}

func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return 0, false
	}
	return id, true
}
