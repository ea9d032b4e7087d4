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
	"access-building-block/core/model"
	"access-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// evaluate decides whether the user may perform the action on the resource
// within the organization. It is the only authorization path in the system:
// every mutation guards itself through it.
//
// Precedence, first decisive match wins:
//  1. explicit user overrides
//  2. legacy membership role built-in table (grants only)
//  3. direct user-role bindings, union across roles
//  4. team-role bindings, union across teams and roles
//  5. deny
//
// It reads and decides only - no side effects. Any storage failure surfaces as
// an error and every caller treats it as deny.
func (app *application) evaluate(userID string, orgID string, resource model.Resource, action model.Action, resourceID *string) (bool, error) {
	if !utils.IsValidID(userID) || !utils.IsValidID(orgID) {
		return false, errors.ErrorData(logutils.StatusInvalid, model.TypePermissionCheck,
			&logutils.FieldArgs{"user_id": userID, "organization_id": orgID}).SetStatus(utils.ErrorStatusInvalid)
	}
	if err := model.ValidateResource(resource); err != nil {
		return false, errors.WrapErrorAction(logutils.ActionValidate, model.TypeResource, nil, err).SetStatus(utils.ErrorStatusInvalid)
	}
	if err := model.ValidateAction(action); err != nil {
		return false, errors.WrapErrorAction(logutils.ActionValidate, model.TypeAction, nil, err).SetStatus(utils.ErrorStatusInvalid)
	}

	//unknown principal is a plain deny, never an error
	membership, err := app.storage.FindMembership(userID, orgID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, nil, err)
	}
	if membership == nil {
		return false, nil
	}

	//1. explicit overrides on the user
	decided, allow, err := app.checkOverrides(userID, orgID, resource, action, resourceID)
	if err != nil {
		return false, err
	}
	if decided {
		return allow, nil
	}

	//2. legacy membership role built-in table
	if model.LegacyRoleGrants(membership.LegacyRole, resource, action) {
		return true, nil
	}

	//3. direct user-role assignments
	assignments, err := app.storage.FindRoleAssignments(orgID, principalTypePtr(model.PrincipalTypeUser), &userID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeRoleAssignment, nil, err)
	}
	granted, err := app.checkRoleBindings(orgID, assignments, resource, action, resourceID)
	if err != nil {
		return false, err
	}
	if granted {
		return true, nil
	}

	//4. team-role assignments
	teamMemberships, err := app.storage.FindTeamMemberships(userID, orgID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeTeamMember, nil, err)
	}
	if len(teamMemberships) > 0 {
		teamIDs := make([]string, len(teamMemberships))
		for i, tm := range teamMemberships {
			teamIDs[i] = tm.TeamID
		}
		teamAssignments, err := app.storage.FindTeamRoleAssignments(orgID, teamIDs)
		if err != nil {
			return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeRoleAssignment, nil, err)
		}
		granted, err = app.checkRoleBindings(orgID, teamAssignments, resource, action, resourceID)
		if err != nil {
			return false, err
		}
		if granted {
			return true, nil
		}
	}

	//5. deny by default
	return false, nil
}

// checkOverrides looks for a decisive explicit override on the user. A grant
// scoped to the exact resource instance wins over an organization-wide one, and
// an exact action match wins over a manage wildcard. Only an allow=true manage
// override is decisive - a manage deny does not blanket-revoke other actions.
func (app *application) checkOverrides(userID string, orgID string, resource model.Resource, action model.Action, resourceID *string) (bool, bool, error) {
	overrides, err := app.storage.FindUserOverrides(orgID, userID, resource)
	if err != nil {
		return false, false, errors.WrapErrorAction(logutils.ActionFind, model.TypePermissionOverride, nil, err)
	}
	if len(overrides) == 0 {
		return false, false, nil
	}

	var decided, allow bool
	bestRank := -1
	for _, o := range overrides {
		if !o.AppliesTo(resourceID) {
			continue
		}
		var rank int
		switch {
		case o.Action == action && o.ResourceID != nil:
			rank = 3
		case o.Action == action:
			rank = 2
		case o.Action == model.ActionManage && o.Allow && o.ResourceID != nil:
			rank = 1
		case o.Action == model.ActionManage && o.Allow:
			rank = 0
		default:
			continue
		}
		if rank > bestRank {
			bestRank = rank
			decided = true
			allow = o.Allow
		}
	}
	return decided, allow, nil
}

// checkRoleBindings unions the permission bindings of every role the
// assignments carry and reports whether any allow=true binding satisfies the
// requested (resource, action) for the instance.
func (app *application) checkRoleBindings(orgID string, assignments []model.RoleAssignment, resource model.Resource, action model.Action, resourceID *string) (bool, error) {
	if len(assignments) == 0 {
		return false, nil
	}

	roleIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		if !a.AppliesTo(resourceID) {
			continue
		}
		roleIDs = append(roleIDs, a.RoleID)
	}
	if len(roleIDs) == 0 {
		return false, nil
	}

	bindings, err := app.storage.FindRolePermissions(orgID, roleIDs, &resource)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeRolePermission, nil, err)
	}
	for _, b := range bindings {
		if b.Allow && b.Key().Satisfies(resource, action) && b.AppliesTo(resourceID) {
			return true, nil
		}
	}
	return false, nil
}

// authorize guards a mutation: it evaluates the actor and returns a
// not-allowed error when the evaluation denies or fails (fail-closed).
func (app *application) authorize(actorID string, orgID string, resource model.Resource, action model.Action) error {
	//the organization lookup is served from the storage adapter's cache
	organization, err := app.storage.FindOrganization(orgID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": orgID}, err)
	}
	if organization == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization,
			&logutils.FieldArgs{"id": orgID}).SetStatus(utils.ErrorStatusNotFound)
	}

	allowed, err := app.evaluate(actorID, orgID, resource, action, nil)
	if err != nil {
		return errors.WrapErrorAction("authorizing", model.TypePermissionCheck,
			&logutils.FieldArgs{"actor_id": actorID, "resource": resource, "action": action}, err)
	}
	if !allowed {
		return errors.Newf("not allowed: %s:%s", resource, action).SetStatus(utils.ErrorStatusNotAllowed)
	}
	return nil
}

// getEffectivePermissions merges every grant the user holds in the organization
// into one set: legacy table, role bindings, team role bindings, then overrides
// applied last so a deny override removes the pair.
func (app *application) getEffectivePermissions(userID string, orgID string) ([]model.PermissionKey, error) {
	if !utils.IsValidID(userID) || !utils.IsValidID(orgID) {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypePermissionCheck,
			&logutils.FieldArgs{"user_id": userID, "organization_id": orgID}).SetStatus(utils.ErrorStatusInvalid)
	}

	membership, err := app.storage.FindMembership(userID, orgID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, nil, err)
	}
	if membership == nil {
		return []model.PermissionKey{}, nil
	}

	perms := map[model.PermissionKey]bool{}
	for _, key := range model.DefaultRolePermissions(membership.LegacyRole) {
		perms[key] = true
	}

	//direct and team roles
	assignments, err := app.storage.FindRoleAssignments(orgID, principalTypePtr(model.PrincipalTypeUser), &userID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRoleAssignment, nil, err)
	}
	teamMemberships, err := app.storage.FindTeamMemberships(userID, orgID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTeamMember, nil, err)
	}
	if len(teamMemberships) > 0 {
		teamIDs := make([]string, len(teamMemberships))
		for i, tm := range teamMemberships {
			teamIDs[i] = tm.TeamID
		}
		teamAssignments, err := app.storage.FindTeamRoleAssignments(orgID, teamIDs)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRoleAssignment, nil, err)
		}
		assignments = append(assignments, teamAssignments...)
	}
	if len(assignments) > 0 {
		roleIDs := make([]string, 0, len(assignments))
		for _, a := range assignments {
			if a.ResourceID != nil {
				continue //instance-scoped grants are not organization-wide permissions
			}
			roleIDs = append(roleIDs, a.RoleID)
		}
		if len(roleIDs) > 0 {
			bindings, err := app.storage.FindRolePermissions(orgID, roleIDs, nil)
			if err != nil {
				return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRolePermission, nil, err)
			}
			for _, b := range bindings {
				if b.Allow && b.ResourceID == nil {
					perms[b.Key()] = true
				}
			}
		}
	}

	//overrides win
	assigneeType := model.AssigneeTypeUser
	overrides, err := app.storage.FindPermissionOverrides(orgID, &assigneeType, &userID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypePermissionOverride, nil, err)
	}
	for _, o := range overrides {
		if o.ResourceID != nil {
			continue
		}
		key := model.PermissionKey{Resource: o.Resource, Action: o.Action}
		if o.Allow {
			perms[key] = true
		} else {
			delete(perms, key)
		}
	}

	result := make([]model.PermissionKey, 0, len(perms))
	for key := range perms {
		result = append(result, key)
	}
	return result, nil
}

func principalTypePtr(pt model.PrincipalType) *model.PrincipalType {
	return &pt
}
