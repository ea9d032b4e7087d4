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

	"github.com/rokwire/logging-library-go/v2/logs"
)

// APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Services       Services       //expose to the drivers adapters
	Administration Administration //expose to the drivers adapters

	app *application
}

// Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

// AddListener adds application listener
func (c *APIs) AddListener(listener ApplicationListener) {
	c.app.addListener(listener)
}

// GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

// NewCoreAPIs creates new APIs
func NewCoreAPIs(version string, build string, storage Storage, logger *logs.Logger) *APIs {
	application := application{version: version, build: build, storage: storage, logger: logger, listeners: []ApplicationListener{}}

	servicesImpl := &servicesImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}

	coreAPIs := APIs{Services: servicesImpl, Administration: administrationImpl, app: &application}
	return &coreAPIs
}

///

// servicesImpl
type servicesImpl struct {
	app *application
}

func (s *servicesImpl) SerCheckPermission(userID string, orgID string, resource model.Resource, action model.Action, resourceID *string) (bool, error) {
	return s.app.evaluate(userID, orgID, resource, action, resourceID)
}

func (s *servicesImpl) SerGetEffectivePermissions(userID string, orgID string) ([]model.PermissionKey, error) {
	return s.app.getEffectivePermissions(userID, orgID)
}

func (s *servicesImpl) SerGetRoles(userID string, orgID string) ([]model.Role, error) {
	return s.app.serGetRoles(userID, orgID)
}

func (s *servicesImpl) SerGetRolePermissions(userID string, orgID string, roleID string) ([]model.RolePermission, error) {
	return s.app.serGetRolePermissions(userID, orgID, roleID)
}

func (s *servicesImpl) SerRecordAudit(actorID string, orgID string, action string, targetType string, targetID *string, details map[string]interface{}) error {
	return s.app.serRecordAudit(actorID, orgID, action, targetType, targetID, details)
}

func (s *servicesImpl) SerQueryAuditLog(actorID string, orgID string, filter model.AuditFilter, skip int64, limit int64) (*model.AuditPage, error) {
	return s.app.serQueryAuditLog(actorID, orgID, filter, skip, limit)
}

///

// administrationImpl
type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmCreateOrganization(name string, ownerUserID string) (*model.Organization, error) {
	return s.app.admCreateOrganization(name, ownerUserID)
}

func (s *administrationImpl) AdmCreateRole(actorID string, orgID string, name string, description string, permissions []model.RolePermission) (*model.Role, error) {
	return s.app.admCreateRole(actorID, orgID, name, description, permissions)
}

func (s *administrationImpl) AdmUpdateRolePermissions(actorID string, orgID string, roleID string, permissions []model.RolePermission) error {
	return s.app.admUpdateRolePermissions(actorID, orgID, roleID, permissions)
}

func (s *administrationImpl) AdmDeleteRole(actorID string, orgID string, roleID string) error {
	return s.app.admDeleteRole(actorID, orgID, roleID)
}

func (s *administrationImpl) AdmAssignRoleToUser(actorID string, orgID string, userID string, roleID string, resourceID *string) error {
	return s.app.admAssignRole(actorID, orgID, model.PrincipalTypeUser, userID, roleID, resourceID)
}

func (s *administrationImpl) AdmUnassignRoleFromUser(actorID string, orgID string, userID string, roleID string, resourceID *string) error {
	return s.app.admUnassignRole(actorID, orgID, model.PrincipalTypeUser, userID, roleID, resourceID)
}

func (s *administrationImpl) AdmAssignRoleToTeam(actorID string, orgID string, teamID string, roleID string, resourceID *string) error {
	return s.app.admAssignRole(actorID, orgID, model.PrincipalTypeTeam, teamID, roleID, resourceID)
}

func (s *administrationImpl) AdmUnassignRoleFromTeam(actorID string, orgID string, teamID string, roleID string, resourceID *string) error {
	return s.app.admUnassignRole(actorID, orgID, model.PrincipalTypeTeam, teamID, roleID, resourceID)
}

func (s *administrationImpl) AdmGetRoleAssignments(actorID string, orgID string, principalType *model.PrincipalType, principalID *string) ([]model.RoleAssignment, error) {
	return s.app.admGetRoleAssignments(actorID, orgID, principalType, principalID)
}

func (s *administrationImpl) AdmSetPermissionOverride(actorID string, orgID string, assigneeType model.AssigneeType, assigneeID string,
	resource model.Resource, action model.Action, allow bool, resourceID *string) (*model.PermissionOverride, error) {
	return s.app.admSetPermissionOverride(actorID, orgID, assigneeType, assigneeID, resource, action, allow, resourceID)
}

func (s *administrationImpl) AdmDeletePermissionOverride(actorID string, orgID string, overrideID string) error {
	return s.app.admDeletePermissionOverride(actorID, orgID, overrideID)
}

func (s *administrationImpl) AdmGetPermissionOverrides(actorID string, orgID string, assigneeType *model.AssigneeType, assigneeID *string) ([]model.PermissionOverride, error) {
	return s.app.admGetPermissionOverrides(actorID, orgID, assigneeType, assigneeID)
}

func (s *administrationImpl) AdmCreateTeam(actorID string, orgID string, name string, description string) (*model.Team, error) {
	return s.app.admCreateTeam(actorID, orgID, name, description)
}

func (s *administrationImpl) AdmDeleteTeam(actorID string, orgID string, teamID string) error {
	return s.app.admDeleteTeam(actorID, orgID, teamID)
}

func (s *administrationImpl) AdmGetTeams(actorID string, orgID string) ([]model.Team, error) {
	return s.app.admGetTeams(actorID, orgID)
}

func (s *administrationImpl) AdmAddTeamMember(actorID string, orgID string, teamID string, userID string) error {
	return s.app.admAddTeamMember(actorID, orgID, teamID, userID)
}

func (s *administrationImpl) AdmRemoveTeamMember(actorID string, orgID string, teamID string, userID string) error {
	return s.app.admRemoveTeamMember(actorID, orgID, teamID, userID)
}

func (s *administrationImpl) AdmGetTeamMembers(actorID string, orgID string, teamID string) ([]model.TeamMember, error) {
	return s.app.admGetTeamMembers(actorID, orgID, teamID)
}
