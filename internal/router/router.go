package router

import (
	"time"

	"moteldb/internal/config"
	"moteldb/internal/handler"
	"moteldb/internal/middleware"
	"moteldb/internal/repository"
	"moteldb/internal/service"
	"moteldb/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	habitacionRepo := repository.NewHabitacionRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	jornadaRepo := repository.NewJornadaRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	impresoraRepo := repository.NewImpresoraRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	jornadaSvc := service.NewJornadaService(jornadaRepo, usuarioRepo)
	reservaSvc := service.NewReservaService(reservaRepo, habitacionRepo, clienteRepo, servicioRepo, jornadaSvc, dispatcher)
	habitacionSvc := service.NewHabitacionService(habitacionRepo, reservaRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	catalogoSvc := service.NewCatalogoService(servicioRepo, catalogoRepo)
	impresoraSvc := service.NewImpresoraService(impresoraRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, jornadaSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	habitacionesH := handler.NewHabitacionesHandler(habitacionSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	reservasH := handler.NewReservasHandler(reservaSvc)
	jornadasH := handler.NewJornadasHandler(jornadaSvc)
	catalogosH := handler.NewCatalogosHandler(catalogoSvc)
	impresorasH := handler.NewImpresorasHandler(impresoraSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	todos := middleware.RequireRole("recepcionista", "supervisor", "administrador")
	supervisores := middleware.RequireRole("supervisor", "administrador")
	admin := middleware.RequireRole("administrador")

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/dashboard", todos, dashboardH.Resumen)

		// Reservas — check-in, checkout y consulta para todo el mostrador
		v1.POST("/reservas", todos, reservasH.Crear)
		v1.GET("/reservas", todos, reservasH.Listar)
		v1.GET("/reservas/:id", todos, reservasH.ObtenerPorID)
		v1.POST("/reservas/:id/checkout", todos, reservasH.Checkout)
		v1.POST("/reservas/:id/cancelar", supervisores, reservasH.Cancelar)

		// Jornadas
		v1.GET("/jornadas/activa", todos, jornadasH.EstadoActual)
		v1.POST("/jornadas/abrir", todos, jornadasH.Abrir)
		v1.POST("/jornadas/:id/cerrar", supervisores, jornadasH.Cerrar)
		v1.GET("/jornadas", todos, jornadasH.ListarDefiniciones)
		jornadas := v1.Group("/jornadas", admin)
		{
			jornadas.POST("", jornadasH.CrearDefinicion)
			jornadas.PUT("/:id", jornadasH.ActualizarDefinicion)
		}

		// Habitaciones — lectura para el mostrador, escritura administrador
		v1.GET("/habitaciones", todos, habitacionesH.Listar)
		v1.GET("/habitaciones/:id", todos, habitacionesH.ObtenerPorID)
		habitaciones := v1.Group("/habitaciones", admin)
		{
			habitaciones.POST("", habitacionesH.Crear)
			habitaciones.PUT("/:id", habitacionesH.Actualizar)
			habitaciones.DELETE("/:id", habitacionesH.Desactivar)
		}

		// Clientes
		v1.GET("/clientes", todos, clientesH.Listar)
		v1.GET("/clientes/:id", todos, clientesH.ObtenerPorID)
		v1.GET("/clientes/documento/:documento", todos, clientesH.ObtenerPorDocumento)
		v1.POST("/clientes", todos, clientesH.Crear)
		v1.PUT("/clientes/:id", supervisores, clientesH.Actualizar)
		v1.DELETE("/clientes/:id", admin, clientesH.Eliminar)

		// Servicios adicionales
		v1.GET("/servicios", todos, catalogosH.ListarServicios)
		v1.GET("/servicios/:id", todos, catalogosH.ObtenerServicio)
		servicios := v1.Group("/servicios", admin)
		{
			servicios.POST("", catalogosH.CrearServicio)
			servicios.PUT("/:id", catalogosH.ActualizarServicio)
		}

		// Catalogos fijos
		v1.GET("/tipos-estadia", todos, catalogosH.ListarTiposEstadia)
		v1.POST("/tipos-estadia", admin, catalogosH.CrearTipoEstadia)
		v1.GET("/tipos-iva", todos, catalogosH.ListarTiposIVA)
		v1.POST("/tipos-iva", admin, catalogosH.CrearTipoIVA)
		v1.GET("/metodos-pago", todos, catalogosH.ListarMetodosPago)
		v1.POST("/metodos-pago", admin, catalogosH.CrearMetodoPago)
		v1.GET("/tipos-cambio", todos, catalogosH.ListarTiposCambio)
		v1.POST("/tipos-cambio", supervisores, catalogosH.CrearTipoCambio)

		// Impresoras
		v1.GET("/impresoras", todos, impresorasH.Listar)
		v1.GET("/impresoras/:id", todos, impresorasH.ObtenerPorID)
		impresoras := v1.Group("/impresoras", admin)
		{
			impresoras.POST("", impresorasH.Crear)
			impresoras.PUT("/:id", impresorasH.Actualizar)
			impresoras.PATCH("/:id/defecto", impresorasH.MarcarDefecto)
		}

		// Usuarios — solo administrador
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
