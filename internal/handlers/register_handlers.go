package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
	"github.com/schoolworks/fees_ledger_app/internal/middleware"
	"github.com/schoolworks/fees_ledger_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerStudentRoutes(v1, services.Student, services.Ledger)
	registerFeeStructureRoutes(v1, services.Structure)
	registerFeeAssignmentRoutes(v1, services.Ledger, services.Payment)
	RegisterPaymentRoutes(v1, services.Payment)
	registerReportingRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// init exposes the domain enum checks as binding tags so request DTOs can
// use them directly.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("feetype", func(fl validator.FieldLevel) bool {
		return domain.ValidFeeType(domain.FeeType(fl.Field().String()))
	})
	_ = v.RegisterValidation("frequency", func(fl validator.FieldLevel) bool {
		return domain.ValidFrequency(domain.Frequency(fl.Field().String()))
	})
	_ = v.RegisterValidation("paymethod", func(fl validator.FieldLevel) bool {
		return domain.ValidPaymentMethod(domain.PaymentMethod(fl.Field().String()))
	})
}
