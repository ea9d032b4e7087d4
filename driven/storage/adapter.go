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

package storage

import (
	"strconv"
	"sync"
	"time"

	"access-building-block/core"
	"access-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/syncmap"
	validator "gopkg.in/go-playground/validator.v9"
)

// Adapter implements the core.Storage interface on MongoDB
type Adapter struct {
	db     *database
	logger *logs.Logger

	//organizations are confirmed on every guarded operation - keep them cached
	cachedOrganizations *syncmap.Map
	organizationsLock   *sync.RWMutex
}

// Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "storage adapter", nil, err)
	}

	sa.db.onOrganizationsChanged = sa.onOrganizationsChanged

	err = sa.cacheOrganizations()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCache, model.TypeOrganization, nil, err)
	}

	return nil
}

// RegisterStorageListener registers a data change listener with the storage adapter
func (sa *Adapter) RegisterStorageListener(listener core.StorageListener) {
	sa.db.listeners = append(sa.db.listeners, listener)
}

func (sa *Adapter) onOrganizationsChanged() {
	err := sa.cacheOrganizations()
	if err != nil {
		sa.logger.Errorf("error re-caching organizations: %s", err)
	}
}

// cacheOrganizations loads the organizations collection into the cache
func (sa *Adapter) cacheOrganizations() error {
	sa.logger.Info("cacheOrganizations..")

	var organizations []model.Organization
	err := sa.db.organizations.Find(bson.D{}, &organizations, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionLoad, model.TypeOrganization, nil, err)
	}

	sa.setCachedOrganizations(organizations)
	return nil
}

func (sa *Adapter) setCachedOrganizations(organizations []model.Organization) {
	sa.organizationsLock.Lock()
	defer sa.organizationsLock.Unlock()

	sa.cachedOrganizations = &syncmap.Map{}
	validate := validator.New()

	for _, org := range organizations {
		err := validate.Struct(org)
		if err == nil {
			sa.cachedOrganizations.Store(org.ID, org)
		} else {
			sa.logger.Errorf("failed to validate and cache organization %s: %s", org.ID, err.Error())
		}
	}
}

func (sa *Adapter) getCachedOrganization(orgID string) (*model.Organization, error) {
	sa.organizationsLock.RLock()
	defer sa.organizationsLock.RUnlock()

	item, _ := sa.cachedOrganizations.Load(orgID)
	if item != nil {
		organization, ok := item.(model.Organization)
		if !ok {
			return nil, errors.ErrorAction(logutils.ActionCast, model.TypeOrganization, &logutils.FieldArgs{"org_id": orgID})
		}
		return &organization, nil
	}
	return nil, nil
}

// NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("Setting default Mongo timeout - 2000")
		timeoutInt = 2000
	}
	timeout := time.Millisecond * time.Duration(timeoutInt)

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeout,
		bulkTimeout: timeout * 4, logger: logger}
	return &Adapter{db: db, logger: logger, cachedOrganizations: &syncmap.Map{}, organizationsLock: &sync.RWMutex{}}
}

func (sa *Adapter) abortTransaction(sessionContext mongo.SessionContext) {
	err := sessionContext.AbortTransaction(sessionContext)
	if err != nil {
		sa.logger.Errorf("error aborting a transaction - %s", err)
	}
}
