// internal/ui/rest/router/docs.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/greeter/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterDocsRoutes serves the API description: the raw document at
// /openapi.json and Swagger UI under /swagger, with /docs as a shortcut.
func RegisterDocsRoutes(r *gin.Engine) {
	r.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}
