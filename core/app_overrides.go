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
	"time"

	"access-building-block/core/model"
	"access-building-block/utils"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// admSetPermissionOverride records an explicit allow or deny directly against a
// principal. Upsert semantics on the (assignee, resource, action, resource id)
// composite key.
func (app *application) admSetPermissionOverride(actorID string, orgID string, assigneeType model.AssigneeType, assigneeID string,
	resource model.Resource, action model.Action, allow bool, resourceID *string) (*model.PermissionOverride, error) {
	err := app.authorize(actorID, orgID, model.ResourceRoles, model.ActionManage)
	if err != nil {
		return nil, err
	}

	if err := model.ValidateAssigneeType(assigneeType); err != nil {
		return nil, err
	}
	if err := model.ValidateResource(resource); err != nil {
		return nil, err
	}
	if err := model.ValidateAction(action); err != nil {
		return nil, err
	}

	err = app.checkAssignee(orgID, assigneeType, assigneeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	override := model.PermissionOverride{ID: uuid.NewString(), OrganizationID: orgID,
		AssigneeType: assigneeType, AssigneeID: assigneeID, Resource: resource, Action: action,
		Allow: allow, ResourceID: resourceID, CreatedBy: actorID, DateCreated: now}

	inserted, err := app.storage.UpsertPermissionOverride(override)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypePermissionOverride, nil, err)
	}

	auditAction := model.AuditActionUpdate
	if inserted {
		auditAction = model.AuditActionCreate
	}
	details := map[string]interface{}{"assignee_type": assigneeType, "assignee_id": assigneeID,
		"resource": resource, "action": action, "allow": allow}
	if resourceID != nil {
		details["resource_id"] = *resourceID
	}
	app.auditLog(orgID, actorID, auditAction, model.AuditTargetPermission, &override.ID, details)

	return &override, nil
}

func (app *application) admDeletePermissionOverride(actorID string, orgID string, overrideID string) error {
	err := app.authorize(actorID, orgID, model.ResourceRoles, model.ActionManage)
	if err != nil {
		return err
	}

	override, err := app.storage.FindPermissionOverrideByID(orgID, overrideID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypePermissionOverride, nil, err)
	}
	if override == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypePermissionOverride,
			&logutils.FieldArgs{"id": overrideID}).SetStatus(utils.ErrorStatusNotFound)
	}

	deleted, err := app.storage.DeletePermissionOverride(orgID, overrideID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypePermissionOverride, nil, err)
	}
	if !deleted {
		return nil
	}

	app.auditLog(orgID, actorID, model.AuditActionDelete, model.AuditTargetPermission, &overrideID,
		map[string]interface{}{"assignee_type": override.AssigneeType, "assignee_id": override.AssigneeID,
			"resource": override.Resource, "action": override.Action})

	return nil
}

func (app *application) admGetPermissionOverrides(actorID string, orgID string, assigneeType *model.AssigneeType, assigneeID *string) ([]model.PermissionOverride, error) {
	err := app.authorize(actorID, orgID, model.ResourceRoles, model.ActionView)
	if err != nil {
		return nil, err
	}

	return app.storage.FindPermissionOverrides(orgID, assigneeType, assigneeID)
}

// checkAssignee verifies the override target exists in the organization
func (app *application) checkAssignee(orgID string, assigneeType model.AssigneeType, assigneeID string) error {
	switch assigneeType {
	case model.AssigneeTypeUser:
		membership, err := app.storage.FindMembership(assigneeID, orgID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, nil, err)
		}
		if membership == nil {
			return errors.ErrorData(logutils.StatusMissing, model.TypeMembership,
				&logutils.FieldArgs{"user_id": assigneeID}).SetStatus(utils.ErrorStatusNotFound)
		}
	case model.AssigneeTypeTeam:
		team, err := app.storage.FindTeam(orgID, assigneeID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeTeam, nil, err)
		}
		if team == nil {
			return errors.ErrorData(logutils.StatusMissing, model.TypeTeam,
				&logutils.FieldArgs{"id": assigneeID}).SetStatus(utils.ErrorStatusNotFound)
		}
	case model.AssigneeTypeRole:
		role, err := app.storage.FindRole(orgID, assigneeID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, nil, err)
		}
		if role == nil {
			return errors.ErrorData(logutils.StatusMissing, model.TypeRole,
				&logutils.FieldArgs{"id": assigneeID}).SetStatus(utils.ErrorStatusNotFound)
		}
	}
	return nil
}
