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
)

// Services exposes APIs for the driver adapters
type Services interface {
	SerCheckPermission(userID string, orgID string, resource model.Resource, action model.Action, resourceID *string) (bool, error)
	SerGetEffectivePermissions(userID string, orgID string) ([]model.PermissionKey, error)

	SerGetRoles(userID string, orgID string) ([]model.Role, error)
	SerGetRolePermissions(userID string, orgID string, roleID string) ([]model.RolePermission, error)

	SerRecordAudit(actorID string, orgID string, action string, targetType string, targetID *string, details map[string]interface{}) error
	SerQueryAuditLog(actorID string, orgID string, filter model.AuditFilter, skip int64, limit int64) (*model.AuditPage, error)
}

// Administration exposes administration APIs for the driver adapters
type Administration interface {
	AdmCreateOrganization(name string, ownerUserID string) (*model.Organization, error)

	AdmCreateRole(actorID string, orgID string, name string, description string, permissions []model.RolePermission) (*model.Role, error)
	AdmUpdateRolePermissions(actorID string, orgID string, roleID string, permissions []model.RolePermission) error
	AdmDeleteRole(actorID string, orgID string, roleID string) error

	AdmAssignRoleToUser(actorID string, orgID string, userID string, roleID string, resourceID *string) error
	AdmUnassignRoleFromUser(actorID string, orgID string, userID string, roleID string, resourceID *string) error
	AdmAssignRoleToTeam(actorID string, orgID string, teamID string, roleID string, resourceID *string) error
	AdmUnassignRoleFromTeam(actorID string, orgID string, teamID string, roleID string, resourceID *string) error
	AdmGetRoleAssignments(actorID string, orgID string, principalType *model.PrincipalType, principalID *string) ([]model.RoleAssignment, error)

	AdmSetPermissionOverride(actorID string, orgID string, assigneeType model.AssigneeType, assigneeID string,
		resource model.Resource, action model.Action, allow bool, resourceID *string) (*model.PermissionOverride, error)
	AdmDeletePermissionOverride(actorID string, orgID string, overrideID string) error
	AdmGetPermissionOverrides(actorID string, orgID string, assigneeType *model.AssigneeType, assigneeID *string) ([]model.PermissionOverride, error)

	AdmCreateTeam(actorID string, orgID string, name string, description string) (*model.Team, error)
	AdmDeleteTeam(actorID string, orgID string, teamID string) error
	AdmGetTeams(actorID string, orgID string) ([]model.Team, error)
	AdmAddTeamMember(actorID string, orgID string, teamID string, userID string) error
	AdmRemoveTeamMember(actorID string, orgID string, teamID string, userID string) error
	AdmGetTeamMembers(actorID string, orgID string, teamID string) ([]model.TeamMember, error)
}

// Storage is used by core to store data - DB storage adapter
type Storage interface {
	RegisterStorageListener(listener StorageListener)

	//Organizations
	InsertOrganization(organization model.Organization, roles []model.Role, bindings []model.RolePermission,
		membership model.Membership, ownerAssignment model.RoleAssignment) error
	FindOrganization(id string) (*model.Organization, error)
	FindMembership(userID string, orgID string) (*model.Membership, error)
	FindMembershipByUser(userID string) (*model.Membership, error)

	//Roles
	InsertRole(role model.Role, permissions []model.RolePermission) error
	FindRole(orgID string, roleID string) (*model.Role, error)
	FindRoleByName(orgID string, name string) (*model.Role, error)
	FindRoles(orgID string) ([]model.Role, error)
	FindRolePermissions(orgID string, roleIDs []string, resource *model.Resource) ([]model.RolePermission, error)
	ReplaceRolePermissions(orgID string, roleID string, permissions []model.RolePermission) error
	DeleteRoleCascade(orgID string, roleID string) error

	//Role assignments
	UpsertRoleAssignment(assignment model.RoleAssignment) (bool, error)
	DeleteRoleAssignment(orgID string, principalType model.PrincipalType, principalID string, roleID string, resourceID *string) (bool, error)
	FindRoleAssignments(orgID string, principalType *model.PrincipalType, principalID *string) ([]model.RoleAssignment, error)
	FindTeamRoleAssignments(orgID string, teamIDs []string) ([]model.RoleAssignment, error)

	//Permission overrides
	UpsertPermissionOverride(override model.PermissionOverride) (bool, error)
	FindPermissionOverrideByID(orgID string, id string) (*model.PermissionOverride, error)
	FindPermissionOverrides(orgID string, assigneeType *model.AssigneeType, assigneeID *string) ([]model.PermissionOverride, error)
	FindUserOverrides(orgID string, userID string, resource model.Resource) ([]model.PermissionOverride, error)
	DeletePermissionOverride(orgID string, id string) (bool, error)

	//Teams
	InsertTeam(team model.Team) error
	FindTeam(orgID string, teamID string) (*model.Team, error)
	FindTeams(orgID string) ([]model.Team, error)
	DeleteTeamCascade(orgID string, teamID string) error
	UpsertTeamMember(member model.TeamMember) (bool, error)
	DeleteTeamMember(orgID string, teamID string, userID string) (bool, error)
	FindTeamMemberships(userID string, orgID string) ([]model.TeamMember, error)
	FindTeamMembers(orgID string, teamID string) ([]model.TeamMember, error)

	//Audit log
	InsertAuditEntry(entry model.AuditEntry) error
	FindAuditEntries(orgID string, filter model.AuditFilter, skip int64, limit int64) (*model.AuditPage, error)
}

// StorageListener listens for storage change events
type StorageListener interface {
	OnOrganizationsUpdated()
}

// ApplicationListener represents application listener
type ApplicationListener interface {
}
