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

// admCreateOrganization transactionally creates the organization, one default
// role per legacy role with its seeded bindings, the owner membership and the
// owner user-role assignment. A user already holding a membership cannot create
// a second organization.
func (app *application) admCreateOrganization(name string, ownerUserID string) (*model.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, logutils.StringArgs("name")).SetStatus(utils.ErrorStatusInvalid)
	}
	if !utils.IsValidID(ownerUserID) {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeMembership, logutils.StringArgs("owner user id")).SetStatus(utils.ErrorStatusInvalid)
	}

	existing, err := app.storage.FindMembershipByUser(ownerUserID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, nil, err)
	}
	if existing != nil {
		return nil, errors.ErrorData(logutils.StatusFound, model.TypeMembership,
			&logutils.FieldArgs{"user_id": ownerUserID}).SetStatus(utils.ErrorStatusAlreadyExists)
	}

	now := time.Now().UTC()
	organization := model.Organization{ID: uuid.NewString(), Name: name, OwnerID: ownerUserID, DateCreated: now}

	//seed one default role per legacy role, with its built-in bindings
	var roles []model.Role
	var bindings []model.RolePermission
	roleIDs := map[model.LegacyRole]string{}
	for _, legacyRole := range model.LegacyRoles() {
		role := model.Role{ID: uuid.NewString(), OrganizationID: organization.ID, Name: string(legacyRole),
			IsCustom: false, IsDefault: true, DateCreated: now}
		roles = append(roles, role)
		roleIDs[legacyRole] = role.ID

		for _, key := range model.DefaultRolePermissions(legacyRole) {
			bindings = append(bindings, model.RolePermission{ID: uuid.NewString(), OrganizationID: organization.ID,
				RoleID: role.ID, Resource: key.Resource, Action: key.Action, Allow: true, DateCreated: now})
		}
	}

	membership := model.Membership{ID: uuid.NewString(), UserID: ownerUserID, OrganizationID: organization.ID,
		LegacyRole: model.LegacyRoleOwner, DateCreated: now}
	ownerAssignment := model.RoleAssignment{ID: uuid.NewString(), OrganizationID: organization.ID,
		PrincipalType: model.PrincipalTypeUser, PrincipalID: ownerUserID, RoleID: roleIDs[model.LegacyRoleOwner],
		AssignedBy: ownerUserID, AssignedAt: now}

	err = app.storage.InsertOrganization(organization, roles, bindings, membership, ownerAssignment)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
	}

	app.auditLog(organization.ID, ownerUserID, model.AuditActionCreate, model.AuditTargetOrganization, &organization.ID,
		map[string]interface{}{"name": name})

	return &organization, nil
}
