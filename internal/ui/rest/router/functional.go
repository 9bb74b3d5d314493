// internal/ui/rest/router/functional.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/khedhrije/greeter/internal/ui/rest/handlers"
)

// RegisterFunctionalRoutes wires the greeting endpoints at the engine root.
func RegisterFunctionalRoutes(r gin.IRoutes, h handlers.Greeting) {
	r.GET("/", h.Root())
	r.GET("/hello/", h.Welcome())
	r.GET("/say_hello_to_name/:name", h.SayHelloToName())
	r.GET("/say_hello_to_gender/:gender", h.SayHelloToGender())
}
