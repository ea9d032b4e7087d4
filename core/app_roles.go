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

func (app *application) serGetRoles(userID string, orgID string) ([]model.Role, error) {
	err := app.authorize(userID, orgID, model.ResourceRoles, model.ActionView)
	if err != nil {
		return nil, err
	}

	roles, err := app.storage.FindRoles(orgID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, nil, err)
	}
	if len(roles) == 0 {
		return roles, nil
	}

	//attach the bindings
	roleIDs := make([]string, len(roles))
	for i, role := range roles {
		roleIDs[i] = role.ID
	}
	bindings, err := app.storage.FindRolePermissions(orgID, roleIDs, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRolePermission, nil, err)
	}
	byRole := map[string][]model.RolePermission{}
	for _, b := range bindings {
		byRole[b.RoleID] = append(byRole[b.RoleID], b)
	}
	for i := range roles {
		roles[i].Permissions = byRole[roles[i].ID]
	}
	return roles, nil
}

func (app *application) serGetRolePermissions(userID string, orgID string, roleID string) ([]model.RolePermission, error) {
	err := app.authorize(userID, orgID, model.ResourceRoles, model.ActionView)
	if err != nil {
		return nil, err
	}

	role, err := app.storage.FindRole(orgID, roleID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, nil, err)
	}
	if role == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeRole,
			&logutils.FieldArgs{"id": roleID}).SetStatus(utils.ErrorStatusNotFound)
	}

	return app.storage.FindRolePermissions(orgID, []string{roleID}, nil)
}

// admCreateRole creates a custom role with its initial bindings. The trimmed
// name must be unique within the organization, case-sensitive.
func (app *application) admCreateRole(actorID string, orgID string, name string, description string, permissions []model.RolePermission) (*model.Role, error) {
	err := app.authorize(actorID, orgID, model.ResourceRoles, model.ActionCreate)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeRole, logutils.StringArgs("name")).SetStatus(utils.ErrorStatusInvalid)
	}
	err = validatePermissionTuples(permissions)
	if err != nil {
		return nil, err
	}

	existing, err := app.storage.FindRoleByName(orgID, name)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, nil, err)
	}
	if existing != nil {
		return nil, errors.ErrorData(logutils.StatusFound, model.TypeRole,
			&logutils.FieldArgs{"name": name}).SetStatus(utils.ErrorStatusAlreadyExists)
	}

	now := time.Now().UTC()
	role := model.Role{ID: uuid.NewString(), OrganizationID: orgID, Name: name, Description: strings.TrimSpace(description),
		IsCustom: true, CreatedBy: actorID, DateCreated: now}

	bindings := make([]model.RolePermission, len(permissions))
	for i, p := range permissions {
		bindings[i] = model.RolePermission{ID: uuid.NewString(), OrganizationID: orgID, RoleID: role.ID,
			Resource: p.Resource, Action: p.Action, Allow: p.Allow, ResourceID: p.ResourceID, DateCreated: now}
	}

	err = app.storage.InsertRole(role, bindings)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeRole, nil, err)
	}

	app.auditLog(orgID, actorID, model.AuditActionCreate, model.AuditTargetRole, &role.ID,
		map[string]interface{}{"name": name, "description": description, "permissions": permissionDetails(bindings)})

	role.Permissions = bindings
	return &role, nil
}

// admUpdateRolePermissions atomically replaces the full binding set of a custom
// role. Default role permissions are immutable - they are the fallback safety
// net when the custom RBAC data is incomplete.
func (app *application) admUpdateRolePermissions(actorID string, orgID string, roleID string, permissions []model.RolePermission) error {
	err := app.authorize(actorID, orgID, model.ResourceRoles, model.ActionEdit)
	if err != nil {
		return err
	}

	err = validatePermissionTuples(permissions)
	if err != nil {
		return err
	}

	role, err := app.storage.FindRole(orgID, roleID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, nil, err)
	}
	if role == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeRole,
			&logutils.FieldArgs{"id": roleID}).SetStatus(utils.ErrorStatusNotFound)
	}
	if !role.IsCustom {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeRole,
			&logutils.FieldArgs{"id": roleID, "is_custom": false}).SetStatus(utils.ErrorStatusNotAllowed)
	}

	now := time.Now().UTC()
	bindings := make([]model.RolePermission, len(permissions))
	for i, p := range permissions {
		bindings[i] = model.RolePermission{ID: uuid.NewString(), OrganizationID: orgID, RoleID: roleID,
			Resource: p.Resource, Action: p.Action, Allow: p.Allow, ResourceID: p.ResourceID, DateCreated: now}
	}

	err = app.storage.ReplaceRolePermissions(orgID, roleID, bindings)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeRolePermission, &logutils.FieldArgs{"role_id": roleID}, err)
	}

	//the audit entry captures the full new permission list for forensic replay
	app.auditLog(orgID, actorID, model.AuditActionUpdate, model.AuditTargetRolePermissions, &roleID,
		map[string]interface{}{"role_name": role.Name, "permissions": permissionDetails(bindings)})

	return nil
}

// admDeleteRole deletes a custom role and cascades over its bindings and every
// user and team assignment referencing it. The audit entry is written only
// after the cascade succeeds - a failed cascade is a fully failed operation.
func (app *application) admDeleteRole(actorID string, orgID string, roleID string) error {
	err := app.authorize(actorID, orgID, model.ResourceRoles, model.ActionDelete)
	if err != nil {
		return err
	}

	role, err := app.storage.FindRole(orgID, roleID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, nil, err)
	}
	if role == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeRole,
			&logutils.FieldArgs{"id": roleID}).SetStatus(utils.ErrorStatusNotFound)
	}
	if role.IsDefault {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeRole,
			&logutils.FieldArgs{"id": roleID, "is_default": true}).SetStatus(utils.ErrorStatusNotAllowed)
	}

	err = app.storage.DeleteRoleCascade(orgID, roleID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRole, &logutils.FieldArgs{"id": roleID}, err)
	}

	app.auditLog(orgID, actorID, model.AuditActionDelete, model.AuditTargetRole, &roleID,
		map[string]interface{}{"name": role.Name})

	return nil
}

func validatePermissionTuples(permissions []model.RolePermission) error {
	for _, p := range permissions {
		if err := model.ValidateResource(p.Resource); err != nil {
			return errors.WrapErrorAction(logutils.ActionValidate, model.TypeRolePermission, nil, err).SetStatus(utils.ErrorStatusInvalid)
		}
		if err := model.ValidateAction(p.Action); err != nil {
			return errors.WrapErrorAction(logutils.ActionValidate, model.TypeRolePermission, nil, err).SetStatus(utils.ErrorStatusInvalid)
		}
	}
	return nil
}

func permissionDetails(bindings []model.RolePermission) []map[string]interface{} {
	details := make([]map[string]interface{}, len(bindings))
	for i, b := range bindings {
		detail := map[string]interface{}{"resource": b.Resource, "action": b.Action, "allow": b.Allow}
		if b.ResourceID != nil {
			detail["resource_id"] = *b.ResourceID
		}
		details[i] = detail
	}
	return details
}
