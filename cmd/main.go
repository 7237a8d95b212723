// Package main is the entry point for the box issuance service.
//
// @title           Box Issuance API
// @version         1.0.0
// @description     API for issuing boxes from scanned barcodes and rendering the
//
//	current batch as an ordered list with a running weight total.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/TonmoyBishwas/web-scanner-sub001
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, prefixed with "Bearer ".
//
// @tag.name        Batch
// @tag.description Barcode scanning and batch list operations
//
// @tag.name        Catalog
// @tag.description Box catalog management
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/TonmoyBishwas/web-scanner-sub001/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/TonmoyBishwas/web-scanner-sub001/config"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
