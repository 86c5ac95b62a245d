package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pingui001/Crud-y-DB/internal/config"
	"github.com/pingui001/Crud-y-DB/internal/handlers"
	"github.com/pingui001/Crud-y-DB/internal/repository"
	"github.com/pingui001/Crud-y-DB/internal/services"
	xhttp "github.com/pingui001/Crud-y-DB/pkg/http"
	"github.com/pingui001/Crud-y-DB/pkg/logger"
	"github.com/pingui001/Crud-y-DB/pkg/pg"
	"github.com/pingui001/Crud-y-DB/pkg/prom"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 30))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	host, _ := os.Hostname()
	if err := prom.Create(host, config.Get().AppEnv, config.Get().PromNamespace); err != nil {
		logger.Error("failed creating metrics", "error", err)
	}

	uploadDir := config.Get().UploadDir
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}

	customerRepo := repository.NewCustomerRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	bulkRepo := repository.NewBulkRepository(db)

	// services
	customerService := services.NewCustomerService(customerRepo)
	transactionService := services.NewTransactionService(transactionRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	ingestService := services.NewIngestService(bulkRepo)
	healthService := services.NewHealthService()

	// handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	uploadHandler := handlers.NewUploadHandler(ingestService, uploadDir, config.Get().UploadMaxFiles)
	healthHandler := handlers.NewHealthHandler(healthService)

	handlers.RegisterCustomerRoutes(s.Router, customerHandler)
	handlers.RegisterTransactionRoutes(s.Router, transactionHandler)
	handlers.RegisterInvoiceRoutes(s.Router, invoiceHandler)
	handlers.RegisterUploadRoutes(s.Router, uploadHandler)
	handlers.RegisterHealthRoutes(s.Router, healthHandler)
	s.Router.GET("/metrics", prom.Handler())

	// anything that is not an API route falls back to the front-end
	s.Router.NotFound = xhttp.StaticHandler(config.Get().StaticDir)

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
