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

// admAssignRole links a principal to a role. Assigning an already-held role is
// a no-op success and does not produce a second audit entry.
func (app *application) admAssignRole(actorID string, orgID string, principalType model.PrincipalType, principalID string, roleID string, resourceID *string) error {
	err := app.authorize(actorID, orgID, model.ResourceRoles, model.ActionAssign)
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

	err = app.checkPrincipal(orgID, principalType, principalID)
	if err != nil {
		return err
	}

	assignment := model.RoleAssignment{ID: uuid.NewString(), OrganizationID: orgID,
		PrincipalType: principalType, PrincipalID: principalID, RoleID: roleID, ResourceID: resourceID,
		AssignedBy: actorID, AssignedAt: time.Now().UTC()}

	inserted, err := app.storage.UpsertRoleAssignment(assignment)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeRoleAssignment, nil, err)
	}
	if !inserted {
		return nil //idempotent re-assignment, no state change, no audit entry
	}

	app.auditLog(orgID, actorID, model.AuditActionAssign, assignmentTarget(principalType), &roleID,
		assignmentDetails(principalType, principalID, role.Name, resourceID))

	return nil
}

// admUnassignRole removes the link; removing an absent assignment is a no-op
// success.
func (app *application) admUnassignRole(actorID string, orgID string, principalType model.PrincipalType, principalID string, roleID string, resourceID *string) error {
	err := app.authorize(actorID, orgID, model.ResourceRoles, model.ActionAssign)
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

	deleted, err := app.storage.DeleteRoleAssignment(orgID, principalType, principalID, roleID, resourceID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRoleAssignment, nil, err)
	}
	if !deleted {
		return nil
	}

	app.auditLog(orgID, actorID, model.AuditActionUnassign, assignmentTarget(principalType), &roleID,
		assignmentDetails(principalType, principalID, role.Name, resourceID))

	return nil
}

func (app *application) admGetRoleAssignments(actorID string, orgID string, principalType *model.PrincipalType, principalID *string) ([]model.RoleAssignment, error) {
	err := app.authorize(actorID, orgID, model.ResourceRoles, model.ActionView)
	if err != nil {
		return nil, err
	}

	return app.storage.FindRoleAssignments(orgID, principalType, principalID)
}

// checkPrincipal verifies the assignment target exists in the organization
func (app *application) checkPrincipal(orgID string, principalType model.PrincipalType, principalID string) error {
	switch principalType {
	case model.PrincipalTypeUser:
		membership, err := app.storage.FindMembership(principalID, orgID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, nil, err)
		}
		if membership == nil {
			return errors.ErrorData(logutils.StatusMissing, model.TypeMembership,
				&logutils.FieldArgs{"user_id": principalID}).SetStatus(utils.ErrorStatusNotFound)
		}
	case model.PrincipalTypeTeam:
		team, err := app.storage.FindTeam(orgID, principalID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeTeam, nil, err)
		}
		if team == nil {
			return errors.ErrorData(logutils.StatusMissing, model.TypeTeam,
				&logutils.FieldArgs{"id": principalID}).SetStatus(utils.ErrorStatusNotFound)
		}
	default:
		return errors.ErrorData(logutils.StatusInvalid, model.TypeRoleAssignment,
			&logutils.FieldArgs{"principal_type": principalType}).SetStatus(utils.ErrorStatusInvalid)
	}
	return nil
}

func assignmentTarget(principalType model.PrincipalType) string {
	if principalType == model.PrincipalTypeTeam {
		return model.AuditTargetTeamRole
	}
	return model.AuditTargetUserRole
}

func assignmentDetails(principalType model.PrincipalType, principalID string, roleName string, resourceID *string) map[string]interface{} {
	details := map[string]interface{}{"principal_type": principalType, "principal_id": principalID, "role_name": roleName}
	if resourceID != nil {
		details["resource_id"] = *resourceID
	}
	return details
}
