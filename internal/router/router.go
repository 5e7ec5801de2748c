package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "payvlo/docs"
	"payvlo/internal/handler"
	"payvlo/internal/metrics"
	"payvlo/internal/middleware"
)

// Handlers groups every HTTP handler mounted by Setup.
type Handlers struct {
	Health   *handler.HealthHandler
	GST      *handler.GSTHandler
	Company  *handler.CompanyHandler
	Customer *handler.CustomerHandler
	Product  *handler.ProductHandler
	State    *handler.StateHandler
	Invoice  *handler.InvoiceHandler
	Stats    *handler.StatsHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, m *metrics.Metrics, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger(m))
	r.Use(middleware.CORS(allowedOrigins))

	// Operational endpoints
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	g := v1.Group("/gst")
	g.POST("/calculate", h.GST.Calculate)
	g.POST("/line-item", h.GST.LineItem)
	g.POST("/totals", h.GST.Totals)
	g.GET("/gstin/:gstin", h.GST.ValidateGSTIN)
	g.GET("/hsn-sac/:code", h.GST.ValidateHSNSAC)
	g.GET("/invoice-number/preview", h.GST.PreviewInvoiceNumber)
	g.GET("/amount-in-words", h.GST.AmountInWords)
	g.GET("/rates", h.GST.Rates)

	v1.GET("/company", h.Company.Get)
	v1.PUT("/company", h.Company.Save)

	customers := v1.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.GetByID)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", h.Customer.Delete)

	products := v1.Group("/products")
	products.POST("", h.Product.Create)
	products.GET("", h.Product.List)
	products.GET("/:id", h.Product.GetByID)
	products.PUT("/:id", h.Product.Update)
	products.DELETE("/:id", h.Product.Delete)

	v1.GET("/states", h.State.List)
	v1.GET("/states/:code", h.State.GetByCode)

	invoices := v1.Group("/invoices")
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/export", h.Invoice.Export)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.PUT("/:id/status", h.Invoice.UpdateStatus)
	invoices.POST("/:id/pdf", h.Invoice.GeneratePDF)
	invoices.GET("/:id/pdf", h.Invoice.DownloadURL)
	invoices.GET("/:id/pdf/file", h.Invoice.Download)
	invoices.POST("/:id/send", h.Invoice.Send)

	v1.GET("/stats/counts", h.Stats.Counts)

	return r
}
