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

package core_test

import (
	"testing"

	core "access-building-block/core"
	genmocks "access-building-block/core/mocks"
	"access-building-block/core/model"
	"access-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

var (
	testOrgID  = "8a4566a3-3c9c-4a15-9b7e-1a8a2f6c5d01"
	testUserID = "c7d2b86a-0f51-4a39-8d21-4b9e3f7a2c02"
	testTeamID = "5e91f0cd-7b26-4c88-a1d4-6c0d8e2b9f03"
	testRoleID = "2f6a9c14-d85e-47b2-9e03-7a1b4c8d5e04"
)

func strPtr(s string) *string {
	return &s
}

// stubMember wires the lookups every evaluation performs for the given user
func stubMember(storage *genmocks.Storage, userID string, legacyRole model.LegacyRole) {
	organization := model.Organization{ID: testOrgID, Name: "acme"}
	storage.On("FindOrganization", testOrgID).Return(&organization, nil)
	membership := model.Membership{ID: "m-" + userID, UserID: userID, OrganizationID: testOrgID, LegacyRole: legacyRole}
	storage.On("FindMembership", userID, testOrgID).Return(&membership, nil)
	storage.On("FindUserOverrides", testOrgID, userID, mock.Anything).Return([]model.PermissionOverride{}, nil)
}

// stubNoRoles makes the user carry no role assignments and no team memberships
func stubNoRoles(storage *genmocks.Storage, userID string) {
	storage.On("FindRoleAssignments", testOrgID, mock.Anything, &userID).Return([]model.RoleAssignment{}, nil)
	storage.On("FindTeamMemberships", userID, testOrgID).Return([]model.TeamMember{}, nil)
}

func TestGetVersion(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	assert.Equal(t, coreAPIs.GetVersion(), "1.0.0", "version is different")
}

//Permission evaluation

func TestCheckPermissionDefaultDeny(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleViewer)
	stubNoRoles(&storage, testUserID)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	allowed, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceLeads, model.ActionDelete, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "no authority source grants the pair, must deny")
}

func TestCheckPermissionUnknownPrincipal(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindMembership", testUserID, testOrgID).Return(nil, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	allowed, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceLeads, model.ActionView, nil)
	assert.NilError(t, err, "unknown principal is a plain deny, never an error")
	assert.Equal(t, allowed, false)
}

func TestCheckPermissionInvalidVocabulary(t *testing.T) {
	storage := genmocks.Storage{}
	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	_, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.Resource("cars"), model.ActionView, nil)
	assert.Assert(t, err != nil, "unknown resource must error")

	_, err = coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceLeads, model.Action("fly"), nil)
	assert.Assert(t, err != nil, "unknown action must error")
}

func TestCheckPermissionLegacyAdminWildcard(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	allowed, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceSettings, model.ActionManage, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "legacy admin grants everything")
}

func TestCheckPermissionOverrideDenyBeatsLegacyGrant(t *testing.T) {
	storage := genmocks.Storage{}
	membership := model.Membership{ID: "m1", UserID: testUserID, OrganizationID: testOrgID, LegacyRole: model.LegacyRoleOwner}
	storage.On("FindMembership", testUserID, testOrgID).Return(&membership, nil)
	deny := model.PermissionOverride{ID: "o1", OrganizationID: testOrgID, AssigneeType: model.AssigneeTypeUser,
		AssigneeID: testUserID, Resource: model.ResourceLeads, Action: model.ActionView, Allow: false}
	storage.On("FindUserOverrides", testOrgID, testUserID, model.ResourceLeads).Return([]model.PermissionOverride{deny}, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	allowed, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceLeads, model.ActionView, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "explicit deny wins over the legacy owner grant")
}

func TestCheckPermissionOverrideInstanceScopeWins(t *testing.T) {
	storage := genmocks.Storage{}
	membership := model.Membership{ID: "m1", UserID: testUserID, OrganizationID: testOrgID, LegacyRole: model.LegacyRoleViewer}
	storage.On("FindMembership", testUserID, testOrgID).Return(&membership, nil)

	leadID := "lead-42"
	orgWideDeny := model.PermissionOverride{ID: "o1", OrganizationID: testOrgID, AssigneeType: model.AssigneeTypeUser,
		AssigneeID: testUserID, Resource: model.ResourceLeads, Action: model.ActionEdit, Allow: false}
	instanceAllow := model.PermissionOverride{ID: "o2", OrganizationID: testOrgID, AssigneeType: model.AssigneeTypeUser,
		AssigneeID: testUserID, Resource: model.ResourceLeads, Action: model.ActionEdit, Allow: true, ResourceID: &leadID}
	storage.On("FindUserOverrides", testOrgID, testUserID, model.ResourceLeads).
		Return([]model.PermissionOverride{orgWideDeny, instanceAllow}, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	allowed, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceLeads, model.ActionEdit, &leadID)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "the instance scoped allow outranks the organization wide deny")

	allowed, err = coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceLeads, model.ActionEdit, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "without the instance only the organization wide deny applies")
}

func TestCheckPermissionRoleUnion(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleViewer)

	roleA := "11111111-1111-4111-8111-111111111111"
	roleB := "22222222-2222-4222-8222-222222222222"
	assignments := []model.RoleAssignment{
		{ID: "a1", OrganizationID: testOrgID, PrincipalType: model.PrincipalTypeUser, PrincipalID: testUserID, RoleID: roleA},
		{ID: "a2", OrganizationID: testOrgID, PrincipalType: model.PrincipalTypeUser, PrincipalID: testUserID, RoleID: roleB},
	}
	storage.On("FindRoleAssignments", testOrgID, mock.Anything, &testUserID).Return(assignments, nil)
	//only the second role carries the binding - the union still grants
	bindings := []model.RolePermission{
		{ID: "b1", OrganizationID: testOrgID, RoleID: roleB, Resource: model.ResourceLeads, Action: model.ActionEdit, Allow: true},
	}
	storage.On("FindRolePermissions", testOrgID, []string{roleA, roleB}, mock.Anything).Return(bindings, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	allowed, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceLeads, model.ActionEdit, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "permissions are the union across held roles")
}

func TestCheckPermissionManageCoversAllActions(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleViewer)

	assignments := []model.RoleAssignment{
		{ID: "a1", OrganizationID: testOrgID, PrincipalType: model.PrincipalTypeUser, PrincipalID: testUserID, RoleID: testRoleID},
	}
	storage.On("FindRoleAssignments", testOrgID, mock.Anything, &testUserID).Return(assignments, nil)
	storage.On("FindTeamMemberships", testUserID, testOrgID).Return([]model.TeamMember{}, nil)
	bindings := []model.RolePermission{
		{ID: "b1", OrganizationID: testOrgID, RoleID: testRoleID, Resource: model.ResourceForms, Action: model.ActionManage, Allow: true},
	}
	storage.On("FindRolePermissions", testOrgID, []string{testRoleID}, mock.Anything).Return(bindings, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	allowed, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceForms, model.ActionDelete, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "a manage grant covers every action on its resource")

	allowed, err = coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceLeads, model.ActionDelete, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, false, "manage does not cross resources")
}

func TestCheckPermissionThroughTeam(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleViewer)
	storage.On("FindRoleAssignments", testOrgID, mock.Anything, &testUserID).Return([]model.RoleAssignment{}, nil)

	teamMemberships := []model.TeamMember{
		{ID: "tm1", OrganizationID: testOrgID, TeamID: testTeamID, UserID: testUserID},
	}
	storage.On("FindTeamMemberships", testUserID, testOrgID).Return(teamMemberships, nil)
	teamAssignments := []model.RoleAssignment{
		{ID: "a1", OrganizationID: testOrgID, PrincipalType: model.PrincipalTypeTeam, PrincipalID: testTeamID, RoleID: testRoleID},
	}
	storage.On("FindTeamRoleAssignments", testOrgID, []string{testTeamID}).Return(teamAssignments, nil)
	bindings := []model.RolePermission{
		{ID: "b1", OrganizationID: testOrgID, RoleID: testRoleID, Resource: model.ResourceWebsites, Action: model.ActionEdit, Allow: true},
	}
	storage.On("FindRolePermissions", testOrgID, []string{testRoleID}, mock.Anything).Return(bindings, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	allowed, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceWebsites, model.ActionEdit, nil)
	assert.NilError(t, err)
	assert.Equal(t, allowed, true, "team role assignments confer on members")
}

func TestCheckPermissionFailsClosedOnStorageError(t *testing.T) {
	storage := genmocks.Storage{}
	membership := model.Membership{ID: "m1", UserID: testUserID, OrganizationID: testOrgID, LegacyRole: model.LegacyRoleOwner}
	storage.On("FindMembership", testUserID, testOrgID).Return(&membership, nil)
	storage.On("FindUserOverrides", testOrgID, testUserID, mock.Anything).Return(nil, errors.Newf("connection reset"))

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	allowed, err := coreAPIs.Services.SerCheckPermission(testUserID, testOrgID, model.ResourceLeads, model.ActionView, nil)
	assert.Assert(t, err != nil, "storage failure must surface, never silently grant")
	assert.Equal(t, allowed, false)
}

//Effective permissions

func TestGetEffectivePermissionsDenyOverrideRemovesPair(t *testing.T) {
	storage := genmocks.Storage{}
	membership := model.Membership{ID: "m1", UserID: testUserID, OrganizationID: testOrgID, LegacyRole: model.LegacyRoleViewer}
	storage.On("FindMembership", testUserID, testOrgID).Return(&membership, nil)
	stubNoRoles(&storage, testUserID)

	deny := model.PermissionOverride{ID: "o1", OrganizationID: testOrgID, AssigneeType: model.AssigneeTypeUser,
		AssigneeID: testUserID, Resource: model.ResourceLeads, Action: model.ActionView, Allow: false}
	storage.On("FindPermissionOverrides", testOrgID, mock.Anything, &testUserID).Return([]model.PermissionOverride{deny}, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	perms, err := coreAPIs.Services.SerGetEffectivePermissions(testUserID, testOrgID)
	assert.NilError(t, err)
	assert.Assert(t, len(perms) > 0)
	for _, key := range perms {
		if key.Resource == model.ResourceLeads && key.Action == model.ActionView {
			t.Errorf("deny override must remove the pair from the effective set")
		}
	}
}

func TestGetEffectivePermissionsUnknownPrincipal(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindMembership", testUserID, testOrgID).Return(nil, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	perms, err := coreAPIs.Services.SerGetEffectivePermissions(testUserID, testOrgID)
	assert.NilError(t, err)
	assert.Equal(t, len(perms), 0)
}

//Roles

func TestAdmUpdateRolePermissionsDefaultRoleImmutable(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	defaultRole := model.Role{ID: testRoleID, OrganizationID: testOrgID, Name: "viewer", IsCustom: false, IsDefault: true}
	storage.On("FindRole", testOrgID, testRoleID).Return(&defaultRole, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmUpdateRolePermissions(testUserID, testOrgID, testRoleID, []model.RolePermission{
		{Resource: model.ResourceLeads, Action: model.ActionView, Allow: true},
	})
	assert.Assert(t, err != nil, "default role bindings are immutable")
	loggingErr, ok := err.(*errors.Error)
	assert.Assert(t, ok)
	assert.Equal(t, loggingErr.Status(), utils.ErrorStatusNotAllowed)
	storage.AssertNotCalled(t, "ReplaceRolePermissions", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmUpdateRolePermissionsAlwaysReplacesAndAudits(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	customRole := model.Role{ID: testRoleID, OrganizationID: testOrgID, Name: "sales", IsCustom: true}
	storage.On("FindRole", testOrgID, testRoleID).Return(&customRole, nil)
	storage.On("ReplaceRolePermissions", testOrgID, testRoleID, mock.Anything).Return(nil)

	auditEntries := 0
	storage.On("InsertAuditEntry", mock.Anything).Run(func(args mock.Arguments) {
		auditEntries++
	}).Return(nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	//a submitted set identical to the stored one still replaces and audits
	err := coreAPIs.Administration.AdmUpdateRolePermissions(testUserID, testOrgID, testRoleID, []model.RolePermission{
		{Resource: model.ResourceLeads, Action: model.ActionEdit, Allow: true},
	})
	assert.NilError(t, err)
	storage.AssertCalled(t, "ReplaceRolePermissions", testOrgID, testRoleID, mock.Anything)
	assert.Equal(t, auditEntries, 1, "every successful replace writes exactly one audit entry")
}

func TestAdmDeleteRoleDefaultRoleImmutable(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	defaultRole := model.Role{ID: testRoleID, OrganizationID: testOrgID, Name: "member", IsCustom: false, IsDefault: true}
	storage.On("FindRole", testOrgID, testRoleID).Return(&defaultRole, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmDeleteRole(testUserID, testOrgID, testRoleID)
	assert.Assert(t, err != nil, "default roles cannot be deleted")
	storage.AssertNotCalled(t, "DeleteRoleCascade", mock.Anything, mock.Anything)
}

func TestAdmDeleteRoleCascades(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	customRole := model.Role{ID: testRoleID, OrganizationID: testOrgID, Name: "sales", IsCustom: true}
	storage.On("FindRole", testOrgID, testRoleID).Return(&customRole, nil)
	storage.On("DeleteRoleCascade", testOrgID, testRoleID).Return(nil)
	storage.On("InsertAuditEntry", mock.Anything).Return(nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmDeleteRole(testUserID, testOrgID, testRoleID)
	assert.NilError(t, err)
	storage.AssertCalled(t, "DeleteRoleCascade", testOrgID, testRoleID)
	storage.AssertCalled(t, "InsertAuditEntry", mock.Anything)
}

func TestAdmDeleteRoleCascadeFailureSkipsAudit(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	customRole := model.Role{ID: testRoleID, OrganizationID: testOrgID, Name: "sales", IsCustom: true}
	storage.On("FindRole", testOrgID, testRoleID).Return(&customRole, nil)
	storage.On("DeleteRoleCascade", testOrgID, testRoleID).Return(errors.Newf("transaction aborted"))

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmDeleteRole(testUserID, testOrgID, testRoleID)
	assert.Assert(t, err != nil)
	storage.AssertNotCalled(t, "InsertAuditEntry", mock.Anything)
}

func TestAdmCreateRoleDuplicateName(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	existing := model.Role{ID: "r-existing", OrganizationID: testOrgID, Name: "sales", IsCustom: true}
	storage.On("FindRoleByName", testOrgID, "sales").Return(&existing, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	_, err := coreAPIs.Administration.AdmCreateRole(testUserID, testOrgID, "  sales ", "", nil)
	assert.Assert(t, err != nil, "role names are unique within the organization")
	loggingErr, ok := err.(*errors.Error)
	assert.Assert(t, ok)
	assert.Equal(t, loggingErr.Status(), utils.ErrorStatusAlreadyExists)
}

func TestAdmCreateRoleUnauthorized(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleViewer)
	stubNoRoles(&storage, testUserID)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	_, err := coreAPIs.Administration.AdmCreateRole(testUserID, testOrgID, "sales", "", nil)
	assert.Assert(t, err != nil, "a viewer cannot create roles")
	storage.AssertNotCalled(t, "InsertRole", mock.Anything, mock.Anything)
}

func TestAdmCreateRoleUnknownOrganization(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", testOrgID).Return(nil, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	_, err := coreAPIs.Administration.AdmCreateRole(testUserID, testOrgID, "sales", "", nil)
	assert.Assert(t, err != nil, "operations in an unknown organization must fail")
	loggingErr, ok := err.(*errors.Error)
	assert.Assert(t, ok)
	assert.Equal(t, loggingErr.Status(), utils.ErrorStatusNotFound)
	storage.AssertNotCalled(t, "FindMembership", mock.Anything, mock.Anything)
}

//Assignments

func TestAdmAssignRoleWritesAudit(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	targetUser := "99999999-9999-4999-8999-999999999999"
	role := model.Role{ID: testRoleID, OrganizationID: testOrgID, Name: "sales", IsCustom: true}
	storage.On("FindRole", testOrgID, testRoleID).Return(&role, nil)
	targetMembership := model.Membership{ID: "m2", UserID: targetUser, OrganizationID: testOrgID, LegacyRole: model.LegacyRoleMember}
	storage.On("FindMembership", targetUser, testOrgID).Return(&targetMembership, nil)
	storage.On("UpsertRoleAssignment", mock.Anything).Return(true, nil)
	storage.On("InsertAuditEntry", mock.Anything).Return(nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmAssignRoleToUser(testUserID, testOrgID, targetUser, testRoleID, nil)
	assert.NilError(t, err)
	storage.AssertCalled(t, "InsertAuditEntry", mock.Anything)
}

func TestAdmAssignRoleIdempotent(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	targetUser := "99999999-9999-4999-8999-999999999999"
	role := model.Role{ID: testRoleID, OrganizationID: testOrgID, Name: "sales", IsCustom: true}
	storage.On("FindRole", testOrgID, testRoleID).Return(&role, nil)
	targetMembership := model.Membership{ID: "m2", UserID: targetUser, OrganizationID: testOrgID, LegacyRole: model.LegacyRoleMember}
	storage.On("FindMembership", targetUser, testOrgID).Return(&targetMembership, nil)
	//the assignment already exists - the upsert reports no insert
	storage.On("UpsertRoleAssignment", mock.Anything).Return(false, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmAssignRoleToUser(testUserID, testOrgID, targetUser, testRoleID, nil)
	assert.NilError(t, err, "re-assigning a held role is a no-op success")
	storage.AssertNotCalled(t, "InsertAuditEntry", mock.Anything)
}

func TestAdmUnassignRoleAbsentIsNoOp(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	targetUser := "99999999-9999-4999-8999-999999999999"
	role := model.Role{ID: testRoleID, OrganizationID: testOrgID, Name: "sales", IsCustom: true}
	storage.On("FindRole", testOrgID, testRoleID).Return(&role, nil)
	storage.On("DeleteRoleAssignment", testOrgID, model.PrincipalTypeUser, targetUser, testRoleID, mock.Anything).Return(false, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmUnassignRoleFromUser(testUserID, testOrgID, targetUser, testRoleID, nil)
	assert.NilError(t, err)
	storage.AssertNotCalled(t, "InsertAuditEntry", mock.Anything)
}

func TestAdmAssignRoleUnknownRole(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)
	storage.On("FindRole", testOrgID, testRoleID).Return(nil, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmAssignRoleToUser(testUserID, testOrgID, testUserID, testRoleID, nil)
	assert.Assert(t, err != nil)
	loggingErr, ok := err.(*errors.Error)
	assert.Assert(t, ok)
	assert.Equal(t, loggingErr.Status(), utils.ErrorStatusNotFound)
}

//Organizations

func TestAdmCreateOrganizationSeedsDefaults(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindMembershipByUser", testUserID).Return(nil, nil)

	var seededRoles []model.Role
	var seededMembership model.Membership
	storage.On("InsertOrganization", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			seededRoles = args.Get(1).([]model.Role)
			seededMembership = args.Get(3).(model.Membership)
		}).Return(nil)
	storage.On("InsertAuditEntry", mock.Anything).Return(nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	organization, err := coreAPIs.Administration.AdmCreateOrganization("Acme", testUserID)
	assert.NilError(t, err)
	assert.Assert(t, organization != nil)
	assert.Equal(t, organization.Name, "Acme")
	assert.Equal(t, len(seededRoles), 4, "one default role per legacy role")
	for _, role := range seededRoles {
		assert.Equal(t, role.IsDefault, true)
		assert.Equal(t, role.IsCustom, false)
	}
	assert.Equal(t, seededMembership.LegacyRole, model.LegacyRoleOwner)
	storage.AssertCalled(t, "InsertAuditEntry", mock.Anything)
}

func TestAdmCreateOrganizationExistingMembership(t *testing.T) {
	storage := genmocks.Storage{}
	membership := model.Membership{ID: "m1", UserID: testUserID, OrganizationID: testOrgID, LegacyRole: model.LegacyRoleMember}
	storage.On("FindMembershipByUser", testUserID).Return(&membership, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	_, err := coreAPIs.Administration.AdmCreateOrganization("Acme", testUserID)
	assert.Assert(t, err != nil, "a user already in an organization cannot create another")
	loggingErr, ok := err.(*errors.Error)
	assert.Assert(t, ok)
	assert.Equal(t, loggingErr.Status(), utils.ErrorStatusAlreadyExists)
	storage.AssertNotCalled(t, "InsertOrganization", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

//Audit log

func TestSerQueryAuditLogRequiresView(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleMember)
	stubNoRoles(&storage, testUserID)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	_, err := coreAPIs.Services.SerQueryAuditLog(testUserID, testOrgID, model.AuditFilter{}, 0, 10)
	assert.Assert(t, err != nil, "a member cannot read the audit log")
	storage.AssertNotCalled(t, "FindAuditEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSerQueryAuditLogOwner(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleOwner)

	page := model.AuditPage{Entries: []model.AuditEntry{{ID: "e1", OrganizationID: testOrgID}}, Total: 1, Skip: 0, Limit: 50}
	storage.On("FindAuditEntries", testOrgID, mock.Anything, int64(0), int64(50)).Return(&page, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	//limit 0 falls back to the default page size
	got, err := coreAPIs.Services.SerQueryAuditLog(testUserID, testOrgID, model.AuditFilter{}, 0, 0)
	assert.NilError(t, err)
	assert.Equal(t, got.Total, int64(1))
}

func TestSerRecordAuditRequiresMembership(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindMembership", testUserID, testOrgID).Return(nil, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Services.SerRecordAudit(testUserID, testOrgID, "create", "lead", strPtr("lead-1"), nil)
	assert.Assert(t, err != nil)
	storage.AssertNotCalled(t, "InsertAuditEntry", mock.Anything)
}

//Overrides

func TestAdmSetPermissionOverrideUnknownAssignee(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	targetUser := "99999999-9999-4999-8999-999999999999"
	storage.On("FindMembership", targetUser, testOrgID).Return(nil, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	_, err := coreAPIs.Administration.AdmSetPermissionOverride(testUserID, testOrgID, model.AssigneeTypeUser, targetUser,
		model.ResourceLeads, model.ActionView, true, nil)
	assert.Assert(t, err != nil, "the override target must exist")
	storage.AssertNotCalled(t, "UpsertPermissionOverride", mock.Anything)
}

func TestAdmSetPermissionOverrideAuditsCreate(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	targetUser := "99999999-9999-4999-8999-999999999999"
	targetMembership := model.Membership{ID: "m2", UserID: targetUser, OrganizationID: testOrgID, LegacyRole: model.LegacyRoleMember}
	storage.On("FindMembership", targetUser, testOrgID).Return(&targetMembership, nil)
	storage.On("UpsertPermissionOverride", mock.Anything).Return(true, nil)
	storage.On("InsertAuditEntry", mock.Anything).Return(nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	override, err := coreAPIs.Administration.AdmSetPermissionOverride(testUserID, testOrgID, model.AssigneeTypeUser, targetUser,
		model.ResourceLeads, model.ActionDelete, false, nil)
	assert.NilError(t, err)
	assert.Assert(t, override != nil)
	assert.Equal(t, override.Allow, false)
	storage.AssertCalled(t, "InsertAuditEntry", mock.Anything)
}

//Teams

func TestAdmAddTeamMemberIdempotent(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	targetUser := "99999999-9999-4999-8999-999999999999"
	team := model.Team{ID: testTeamID, OrganizationID: testOrgID, Name: "Sales"}
	storage.On("FindTeam", testOrgID, testTeamID).Return(&team, nil)
	targetMembership := model.Membership{ID: "m2", UserID: targetUser, OrganizationID: testOrgID, LegacyRole: model.LegacyRoleMember}
	storage.On("FindMembership", targetUser, testOrgID).Return(&targetMembership, nil)
	storage.On("UpsertTeamMember", mock.Anything).Return(false, nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmAddTeamMember(testUserID, testOrgID, testTeamID, targetUser)
	assert.NilError(t, err, "re-adding an existing member is a no-op success")
	storage.AssertNotCalled(t, "InsertAuditEntry", mock.Anything)
}

func TestAdmDeleteTeamCascades(t *testing.T) {
	storage := genmocks.Storage{}
	stubMember(&storage, testUserID, model.LegacyRoleAdmin)

	team := model.Team{ID: testTeamID, OrganizationID: testOrgID, Name: "Sales"}
	storage.On("FindTeam", testOrgID, testTeamID).Return(&team, nil)
	storage.On("DeleteTeamCascade", testOrgID, testTeamID).Return(nil)
	storage.On("InsertAuditEntry", mock.Anything).Return(nil)

	coreAPIs := core.NewCoreAPIs("1.0.0", "build", &storage, nil)

	err := coreAPIs.Administration.AdmDeleteTeam(testUserID, testOrgID, testTeamID)
	assert.NilError(t, err)
	storage.AssertCalled(t, "DeleteTeamCascade", testOrgID, testTeamID)
}
