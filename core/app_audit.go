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
	"strings"
	"time"

	"access-building-block/core/model"
	"access-building-block/utils"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	defaultAuditLimit int64 = 50
	maxAuditLimit     int64 = 200
)

// auditLog appends one audit entry for an already applied mutation. The
// mutation is not rolled back if the write fails; the failure is logged so an
// operator can reconcile.
func (app *application) auditLog(orgID string, actorID string, action string, targetType string, targetID *string, details map[string]interface{}) {
	entry := model.AuditEntry{ID: uuid.NewString(), OrganizationID: orgID, ActorID: actorID,
		Action: action, TargetType: targetType, TargetID: targetID, Details: details,
		DateCreated: time.Now().UTC()}

	err := app.storage.InsertAuditEntry(entry)
	if err != nil {
		app.logger.Errorf("error writing audit entry %s %s for org %s - %s", action, targetType, orgID, err)
	}
}

// serRecordAudit records a domain event on behalf of another service. The
// actor must be a member of the organization.
func (app *application) serRecordAudit(actorID string, orgID string, action string, targetType string, targetID *string, details map[string]interface{}) error {
	if !utils.IsValidID(actorID) || !utils.IsValidID(orgID) {
		return errors.ErrorData(logutils.StatusInvalid, logutils.TypeArg,
			&logutils.FieldArgs{"actor_id": actorID, "org_id": orgID}).SetStatus(utils.ErrorStatusInvalid)
	}
	if strings.TrimSpace(action) == "" || strings.TrimSpace(targetType) == "" {
		return errors.ErrorData(logutils.StatusMissing, logutils.TypeArg,
			&logutils.FieldArgs{"action": action, "target_type": targetType}).SetStatus(utils.ErrorStatusInvalid)
	}

	membership, err := app.storage.FindMembership(actorID, orgID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, nil, err)
	}
	if membership == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeMembership,
			&logutils.FieldArgs{"user_id": actorID, "org_id": orgID}).SetStatus(utils.ErrorStatusNotAllowed)
	}

	entry := model.AuditEntry{ID: uuid.NewString(), OrganizationID: orgID, ActorID: actorID,
		Action: action, TargetType: targetType, TargetID: targetID, Details: details,
		DateCreated: time.Now().UTC()}

	err = app.storage.InsertAuditEntry(entry)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeAuditEntry, nil, err)
	}
	return nil
}

// serQueryAuditLog returns a page of the organization's audit trail, newest
// first.
func (app *application) serQueryAuditLog(actorID string, orgID string, filter model.AuditFilter, skip int64, limit int64) (*model.AuditPage, error) {
	err := app.authorize(actorID, orgID, model.ResourceAuditLog, model.ActionView)
	if err != nil {
		return nil, err
	}

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	page, err := app.storage.FindAuditEntries(orgID, filter, skip, limit)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAuditEntry, nil, err)
	}
	return page, nil
}
