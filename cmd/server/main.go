package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MotoWorkShop/MWSBackend/internal/config"
	"github.com/MotoWorkShop/MWSBackend/internal/handler"
	"github.com/MotoWorkShop/MWSBackend/internal/infra"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"
	"github.com/MotoWorkShop/MWSBackend/internal/router"
	"github.com/MotoWorkShop/MWSBackend/internal/service"
	"github.com/MotoWorkShop/MWSBackend/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuración")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := infra.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a redis")
	}

	// Repositories
	clienteRepo := repository.NewClienteRepository(db)
	motoClienteRepo := repository.NewMotoClienteRepository(db)
	motoMercadoRepo := repository.NewMotoMercadoRepository(db)
	marcaRepo := repository.NewMarcaRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	repuestoRepo := repository.NewRepuestoRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// Infra
	cache := infra.NewCacheBarcode(rdb)
	pdf := infra.NewGeneradorPDF(cfg.NombreTaller)
	mailer := infra.NewMailer(*cfg)
	breaker := infra.NewCircuitBreaker(5, 2*time.Minute)
	encolador := worker.NewEncolador(rdb)

	// Services
	stockSvc := service.NewStockService(repuestoRepo)
	facturaSvc := service.NewFacturaService(facturaRepo, ordenRepo, ventaRepo, pdf)
	ordenSvc := service.NewOrdenService(ordenRepo, motoClienteRepo, stockSvc, facturaSvc, encolador)
	ventaSvc := service.NewVentaService(ventaRepo, clienteRepo, stockSvc, facturaSvc, encolador)
	clienteSvc := service.NewClienteService(clienteRepo)
	motoClienteSvc := service.NewMotoClienteService(motoClienteRepo, clienteRepo)
	motoMercadoSvc := service.NewMotoMercadoService(motoMercadoRepo)
	marcaSvc := service.NewMarcaService(marcaRepo)
	servicioSvc := service.NewServicioService(servicioRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	repuestoSvc := service.NewRepuestoService(repuestoRepo, marcaRepo, motoMercadoRepo, proveedorRepo, cache)
	authSvc := service.NewAuthService(usuarioRepo, cfg)

	// Background workers
	emailWorker := worker.NewEmailFacturaWorker(facturaSvc, mailer, breaker)
	pool := worker.NewPool(rdb, emailWorker, cfg.WorkerPoolSize)
	pool.Start(ctx)

	engine := router.New(cfg, authSvc, router.Handlers{
		Health:      handler.NewHealthHandler(db, breaker),
		Auth:        handler.NewAuthHandler(authSvc),
		Clientes:    handler.NewClienteHandler(clienteSvc),
		MotosCli:    handler.NewMotoClienteHandler(motoClienteSvc),
		MotosMerc:   handler.NewMotoMercadoHandler(motoMercadoSvc),
		Marcas:      handler.NewMarcaHandler(marcaSvc),
		Servicios:   handler.NewServicioHandler(servicioSvc),
		Proveedores: handler.NewProveedorHandler(proveedorSvc),
		Repuestos:   handler.NewRepuestoHandler(repuestoSvc),
		Ordenes:     handler.NewOrdenHandler(ordenSvc),
		Ventas:      handler.NewVentaHandler(ventaSvc),
		Facturas:    handler.NewFacturaHandler(facturaSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("el servidor terminó con error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("apagando el servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado forzoso del servidor")
	}

	pool.Wait()
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("error cerrando redis")
	}
	log.Info().Msg("servidor detenido")
}
