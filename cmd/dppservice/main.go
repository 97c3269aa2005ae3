/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package main implements the Digital Product Passport Service server.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	assetapi "github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/api"
	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/persistence"
	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/persistence/mongodb"
	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/service"
	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/templates"
	"github.com/eclipse-basyx/dpp-go-components/internal/common"
	"github.com/eclipse-basyx/dpp-go-components/internal/dpp"
	dppapi "github.com/eclipse-basyx/dpp-go-components/internal/dpp/api"
)

//go:embed openapi.json
var openapiSpec []byte

func runServer(ctx context.Context, configPath string) error {
	log.Default().Println("Loading Digital Product Passport Service...")
	log.Default().Println("Config Path:", configPath)

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return err
	}
	common.PrintConfiguration(config)

	r := chi.NewRouter()

	common.AddCorsMiddleware(r, config)
	common.AddHealthEndpoint(r, config)
	common.AddSwaggerEndpoint(r, config, openapiSpec)

	// ==== Persistence ====

	var db persistence.AssetDatabase
	if config.Mongo.Enabled {
		mongoDB, disconnect, err := mongodb.NewMongoAssetDatabase(ctx, config.Mongo.URI, config.Mongo.Database)
		if err != nil {
			return err
		}
		defer func() {
			if err := disconnect(context.Background()); err != nil {
				log.Printf("Mongo disconnect error: %v", err)
			}
		}()
		db = mongoDB
	} else {
		sqlDB, err := common.InitializeDatabase(config.Postgres)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		db, err = persistence.NewPostgreSQLAssetDatabase(sqlDB)
		if err != nil {
			return err
		}
	}

	// ==== Template Catalog ====

	catalog, err := templates.NewDirectoryCatalog(config.Templates.Dir)
	if err != nil {
		return err
	}
	log.Printf("Template catalog: %d templates from %s", len(catalog.List()), config.Templates.Dir)

	// ==== Asset Repository Service ====

	assetService := service.NewAssetService(db, catalog)
	assetapi.NewAssetRepositoryAPI(assetService).RegisterRoutes(r, config.Server.ContextPath)

	// ==== Digital Product Passport Service ====

	dppService := dpp.NewDPPService(assetService)
	dppapi.NewDPPAPI(dppService).RegisterRoutes(r, config.Server.ContextPath)

	// Start the server
	addr := "0.0.0.0:" + fmt.Sprintf("%d", config.Server.Port)
	log.Printf("▶️  Digital Product Passport Service listening on %s\n", addr)
	go func() {
		//nolint:gosec // implementing this fix would cause errors.
		if err := http.ListenAndServe(addr, r); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	if err := runServer(ctx, configPath); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
