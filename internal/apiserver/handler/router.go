package handler

import (
	"github.com/distrilink/fieldsales/internal/apiserver/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the HTTP surface. The customer catalog and the
// auth endpoints are public; everything else requires a valid token, and
// destructive or administrative operations additionally pass the Admin gate.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/signin", h.Signin)

	// customer-facing catalog
	api.GET("/catalog/products", h.ListProductsForUser)
	api.GET("/catalog/products/:id", h.GetProductForUser)

	// no authorization gate on sectors or order limits, matching the
	// legacy surface
	api.POST("/sectors", h.CreateSector)
	api.GET("/sectors", h.ListSectors)
	api.GET("/sectors/:id", h.GetSector)
	api.PUT("/sectors/:id", h.UpdateSector)
	api.DELETE("/sectors/:id", h.DeleteSector)

	api.POST("/order-limits", h.CreateOrderLimit)
	api.GET("/order-limits", h.ListOrderLimits)
	api.PUT("/order-limits/:id", h.UpdateOrderLimit)
	api.DELETE("/order-limits/:id", h.DeleteOrderLimit)

	secured := api.Group("")
	secured.Use(middleware.JWTAuthMiddleware(h.jwtService))

	secured.GET("/users", middleware.AdminOnlyMiddleware(), h.ListUsers)

	secured.POST("/feedback", h.CreateFeedback)
	secured.GET("/feedback/hierarchy/:higher_role_id", h.GetFeedbackForHierarchy)
	secured.GET("/feedback/customer/:customer_id", h.GetFeedbackForCustomer)

	secured.POST("/products", h.CreateProduct)
	secured.GET("/products", h.ListProducts)
	secured.GET("/products/:id", h.GetProduct)
	secured.PUT("/products/:id", h.UpdateProduct)
	secured.DELETE("/products/:id", middleware.AdminOnlyMiddleware(), h.DeleteProduct)

	secured.POST("/orders", h.CreateOrder)
	secured.GET("/orders/:id", h.GetOrder)
	secured.PUT("/orders/:id/status", h.UpdateOrderStatus)

	secured.GET("/sales-targets", h.ListSalesTargets)
	secured.GET("/sales-targets/:role", h.GetSalesTarget)
	secured.POST("/sales-targets", middleware.AdminOnlyMiddleware(), h.CreateSalesTarget)
	secured.PUT("/sales-targets/:role", middleware.AdminOnlyMiddleware(), h.UpdateSalesTarget)
	secured.DELETE("/sales-targets/:role", middleware.AdminOnlyMiddleware(), h.DeleteSalesTarget)
}
