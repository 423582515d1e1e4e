package router

import (
	"github.com/MotoWorkShop/MWSBackend/internal/config"
	"github.com/MotoWorkShop/MWSBackend/internal/handler"
	"github.com/MotoWorkShop/MWSBackend/internal/middleware"
	"github.com/MotoWorkShop/MWSBackend/internal/model"
	"github.com/MotoWorkShop/MWSBackend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Clientes    *handler.ClienteHandler
	MotosCli    *handler.MotoClienteHandler
	MotosMerc   *handler.MotoMercadoHandler
	Marcas      *handler.MarcaHandler
	Servicios   *handler.ServicioHandler
	Proveedores *handler.ProveedorHandler
	Repuestos   *handler.RepuestoHandler
	Ordenes     *handler.OrdenHandler
	Ventas      *handler.VentaHandler
	Facturas    *handler.FacturaHandler
}

// New wires middleware and the /v1 route tree. Deletion endpoints and user
// management are gated to ADMIN.
func New(cfg *config.Config, auth service.AuthService, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.ErrorHandler(),
		middleware.CORS(),
	)

	r.GET("/health", h.Health.Check)
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/v1")

	publico := v1.Group("/auth")
	publico.Use(middleware.RateLimiter(2, 10))
	{
		publico.POST("/login", h.Auth.Login)
		publico.POST("/refresh", h.Auth.Refresh)
	}

	api := v1.Group("")
	api.Use(middleware.JWTAuth(auth))

	soloAdmin := middleware.RequireRole(model.RolAdmin)

	clientes := api.Group("/clientes")
	{
		clientes.POST("", h.Clientes.Crear)
		clientes.GET("", h.Clientes.Listar)
		clientes.GET("/:id", h.Clientes.Obtener)
		clientes.PUT("/:id", h.Clientes.Actualizar)
		clientes.DELETE("/:id", soloAdmin, h.Clientes.Eliminar)
	}

	motosCliente := api.Group("/motos-cliente")
	{
		motosCliente.POST("", h.MotosCli.Crear)
		motosCliente.GET("", h.MotosCli.Listar)
		motosCliente.GET("/:id", h.MotosCli.Obtener)
		motosCliente.PUT("/:id", h.MotosCli.Actualizar)
		motosCliente.DELETE("/:id", soloAdmin, h.MotosCli.Eliminar)
	}

	motosMercado := api.Group("/motos-mercado")
	{
		motosMercado.POST("", h.MotosMerc.Crear)
		motosMercado.GET("", h.MotosMerc.Listar)
		motosMercado.GET("/:id", h.MotosMerc.Obtener)
		motosMercado.PUT("/:id", h.MotosMerc.Actualizar)
		motosMercado.DELETE("/:id", soloAdmin, h.MotosMerc.Eliminar)
	}

	marcas := api.Group("/marcas-repuesto")
	{
		marcas.POST("", h.Marcas.Crear)
		marcas.GET("", h.Marcas.Listar)
		marcas.GET("/:id", h.Marcas.Obtener)
		marcas.PUT("/:id", h.Marcas.Actualizar)
		marcas.DELETE("/:id", soloAdmin, h.Marcas.Eliminar)
	}

	servicios := api.Group("/servicios")
	{
		servicios.POST("", h.Servicios.Crear)
		servicios.GET("", h.Servicios.Listar)
		servicios.GET("/:id", h.Servicios.Obtener)
		servicios.PUT("/:id", h.Servicios.Actualizar)
		servicios.DELETE("/:id", soloAdmin, h.Servicios.Eliminar)
	}

	proveedores := api.Group("/proveedores")
	{
		proveedores.POST("", h.Proveedores.Crear)
		proveedores.GET("", h.Proveedores.Listar)
		proveedores.GET("/:id", h.Proveedores.Obtener)
		proveedores.PUT("/:id", h.Proveedores.Actualizar)
		proveedores.DELETE("/:id", soloAdmin, h.Proveedores.Eliminar)
	}

	repuestos := api.Group("/repuestos")
	{
		repuestos.POST("", h.Repuestos.Crear)
		repuestos.GET("", h.Repuestos.Listar)
		repuestos.GET("/barcode/:codigo", h.Repuestos.ConsultarBarcode)
		repuestos.GET("/:id", h.Repuestos.Obtener)
		repuestos.PUT("/:id", h.Repuestos.Actualizar)
		repuestos.DELETE("/:id", soloAdmin, h.Repuestos.Eliminar)
	}

	ordenes := api.Group("/ordenes-servicio")
	{
		ordenes.POST("", h.Ordenes.Crear)
		ordenes.GET("", h.Ordenes.Listar)
		ordenes.GET("/:id", h.Ordenes.Obtener)
		ordenes.PUT("/:id", h.Ordenes.Actualizar)
		ordenes.DELETE("/:id", soloAdmin, h.Ordenes.Eliminar)
	}

	ventas := api.Group("/ventas-directas")
	{
		ventas.POST("", h.Ventas.Crear)
		ventas.GET("", h.Ventas.Listar)
		ventas.GET("/:id", h.Ventas.Obtener)
		ventas.PUT("/:id", h.Ventas.Actualizar)
		ventas.DELETE("/:id", soloAdmin, h.Ventas.Eliminar)
	}

	facturas := api.Group("/facturas")
	{
		facturas.GET("", h.Facturas.Listar)
		facturas.GET("/:id", h.Facturas.Obtener)
		facturas.GET("/:id/pdf", h.Facturas.DescargarPDF)
	}

	usuarios := api.Group("/usuarios", soloAdmin)
	{
		usuarios.POST("", h.Auth.CrearUsuario)
		usuarios.GET("", h.Auth.ListarUsuarios)
		usuarios.GET("/:id", h.Auth.ObtenerUsuario)
		usuarios.PUT("/:id", h.Auth.ActualizarUsuario)
		usuarios.DELETE("/:id", h.Auth.EliminarUsuario)
	}

	return r
}
