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

package core

import (
	"github.com/rokwire/logging-library-go/v2/logs"
)

// application represents the core application code based on hexagonal architecture
type application struct {
	version string
	build   string

	storage Storage
	logger  *logs.Logger

	listeners []ApplicationListener
}

// start starts the core part of the application
func (app *application) start() {
	storageListener := storageListenerImpl{app: app}
	app.storage.RegisterStorageListener(&storageListener)
}

// addListener adds application listener
func (app *application) addListener(listener ApplicationListener) {
	app.listeners = append(app.listeners, listener)
}

// storageListenerImpl implements the StorageListener interface
type storageListenerImpl struct {
	app *application
}

// OnOrganizationsUpdated notifies that the organizations collection has changed
func (s *storageListenerImpl) OnOrganizationsUpdated() {
	s.app.logger.Info("organizations updated")
}
