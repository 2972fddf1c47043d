// seed carga el archivo de transacciones en PostgreSQL sin levantar el servidor HTTP.
//
// Uso: go run ./cmd/seed [ruta/transacciones.csv]
// Sin argumento usa SEED_FILE y, si está vacío, el fixture embebido.
// La codificación se toma de SEED_ENCODING (utf-8, latin1, windows-1252).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/recaudo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/recaudo-api/internal/infrastructure/seed"
	"github.com/jhoicas/recaudo-api/pkg/config"
	"github.com/jhoicas/recaudo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.Seed.File = os.Args[1]
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configurar PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	db := postgres.NewDB(pool, postgres.DBOptions{MaxConns: cfg.DB.MaxConns, QueryTimeout: cfg.DB.QueryTimeout})
	defer db.Close()

	s := seed.New(db, seed.Options{File: cfg.Seed.File, Encoding: cfg.Seed.Encoding}, log.Named("seed"))
	summary, err := s.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carga fallida: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Filas leídas: %d\n", summary.Rows)
	fmt.Printf("Plataformas: %d, clientes: %d, facturas: %d, transacciones nuevas: %d\n",
		summary.Platforms, summary.Customers, summary.Invoices, summary.Transactions)
}
