package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/travelbook/internal/api"
	db "github.com/glkeru/travelbook/internal/db"
	interf "github.com/glkeru/travelbook/internal/interfaces"
	service "github.com/glkeru/travelbook/internal/services"
	tracer "github.com/glkeru/travelbook/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("PAY_PORT")
	if port == "" {
		panic("env PAY_PORT is not set")
	}

	// трассировка, если задан endpoint
	tracing := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
	if tracing {
		shutdown := tracer.InitTracer(context.Background())
		defer shutdown()
	}

	// реестр: Mongo, иначе память с демо-данными
	var store interf.Store
	if os.Getenv("PAY_MONGO") != "" {
		mg, err := db.NewMongoStore()
		if err != nil {
			panic(err)
		}
		store = mg
	} else {
		mem := db.NewMemoryStore()
		mem.Seed()
		store = mem
	}

	// кэш балансов, опционально
	var cache interf.Cache
	if os.Getenv("PAY_CACHE_URL") != "" {
		c, err := db.NewCacheService()
		if err != nil {
			panic(err)
		}
		cache = c
	}

	// журнал транзакций, опционально
	var ledger interf.Ledger
	if os.Getenv("PAY_LEDGER_DB") != "" {
		l, err := db.NewLedgerDB(logger)
		if err != nil {
			panic(err)
		}
		ledger = l
	}

	// api handlers
	serv := service.NewPaymentService(store, cache, ledger, logger)
	r := api.NewHandler(store, serv, logger)

	var handler http.Handler = r
	if tracing {
		handler = otelhttp.NewHandler(r, "travelbook")
	}

	srv := &http.Server{
		Handler:      handler,
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
