/*
 * Copyright (c) 2025, Hubsight (https://hubsight.io).
 *
 * Hubsight licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the Hubsight server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/hubsight/hubsight/internal/github"
	"github.com/hubsight/hubsight/internal/system/cache"
	"github.com/hubsight/hubsight/internal/system/config"
	"github.com/hubsight/hubsight/internal/system/log"
	"github.com/hubsight/hubsight/internal/system/middleware"
)

func main() {
	logger := log.GetLogger()

	hubsightHome := getHubsightHome(logger)
	cfg := initConfigurations(logger, hubsightHome)

	store := cache.NewStore(cfg.Cache)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close cache store", log.Error(err))
		}
	}()
	store.StartCleanupRoutine(5 * time.Minute)

	client := github.NewClient(cfg.GitHub, store)

	mux := http.NewServeMux()
	registerServices(mux, cfg, store, client)

	startHTTPServer(logger, cfg, mux)
}

// getHubsightHome retrieves and returns the Hubsight home directory.
func getHubsightHome(logger *log.Logger) string {
	projectHome := ""
	projectHomeFlag := flag.String("hubsightHome", "", "Path to Hubsight home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using hubsightHome from command line argument",
			log.String("hubsightHome", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initConfigurations loads the configurations and initializes the runtime.
func initConfigurations(logger *log.Logger, hubsightHome string) *config.Config {
	configFilePath := path.Join(hubsightHome, "conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeHubsightRuntime(hubsightHome, cfg); err != nil {
		logger.Fatal("Failed to initialize hubsight runtime", log.Error(err))
	}

	return cfg
}

// startHTTPServer starts the HTTP server.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	// Wrap the multiplexer with the request ID and access log handlers.
	wrappedMux := log.AccessLogHandler(logger, middleware.WithRequestID(mux))

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("Hubsight server started...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}
