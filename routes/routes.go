package routes

import (
	"net/http"

	"catalog-service/controllers"
	"catalog-service/web"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the catalog UI, the product API and static assets.
func RegisterRoutes(r *gin.Engine, pc *controllers.ProductController) {
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", http.FS(web.StaticFS()))

	r.GET("/", pc.Index)

	products := r.Group("/products")
	{
		products.GET("", pc.ListProducts)
		products.GET("/:id", pc.GetProduct)
		products.POST("", pc.CreateProduct)
		products.PUT("/:id", pc.UpdateProduct)
		products.DELETE("/:id", pc.DeleteProduct)
	}
}
