// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"access-building-block/core"
	"access-building-block/driven/storage"
	"access-building-block/driver/web"

	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "access"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)

	level := os.Getenv("ACCESS_LOG_LEVEL")
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	port := os.Getenv("ACCESS_PORT")
	if port == "" {
		port = "80"
	}
	host := getEnvKey(logger, "ACCESS_HOST")

	// mongoDB adapter
	mongoDBAuth := getEnvKey(logger, "ACCESS_MONGO_AUTH")
	mongoDBName := getEnvKey(logger, "ACCESS_MONGO_DATABASE")
	mongoTimeout := os.Getenv("ACCESS_MONGO_TIMEOUT")
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("cannot start the mongoDB adapter - %s", err.Error())
	}

	// core
	coreAPIs := core.NewCoreAPIs(Version, Build, storageAdapter, logger)
	coreAPIs.Start()

	// web adapter
	jwtKey := getEnvKey(logger, "ACCESS_JWT_KEY")
	webAdapter := web.NewWebAdapter(coreAPIs, host, port, jwtKey, logger)
	webAdapter.Start()
}

func getEnvKey(logger *logs.Logger, key string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		logger.Fatalf("missing required environment variable - %s", key)
	}
	return value
}
