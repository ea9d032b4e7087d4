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

package model

import (
	"testing"

	"gotest.tools/assert"
)

func TestPermissionKeySatisfies(t *testing.T) {
	manage := PermissionKey{Resource: ResourceForms, Action: ActionManage}
	assert.Equal(t, manage.Satisfies(ResourceForms, ActionDelete), true, "manage covers every action on its resource")
	assert.Equal(t, manage.Satisfies(ResourceLeads, ActionDelete), false, "manage does not cross resources")

	view := PermissionKey{Resource: ResourceLeads, Action: ActionView}
	assert.Equal(t, view.Satisfies(ResourceLeads, ActionView), true)
	assert.Equal(t, view.Satisfies(ResourceLeads, ActionEdit), false)
}

func TestLegacyRoleGrants(t *testing.T) {
	tests := []struct {
		role     LegacyRole
		resource Resource
		action   Action
		want     bool
	}{
		{LegacyRoleAdmin, ResourceSettings, ActionManage, true},
		{LegacyRoleAdmin, ResourceAuditLog, ActionDelete, true},
		{LegacyRoleOwner, ResourceLeads, ActionDelete, true},
		{LegacyRoleOwner, ResourceAuditLog, ActionView, true},
		{LegacyRoleOwner, ResourceSettings, ActionDelete, true}, //settings manage covers delete
		{LegacyRoleMember, ResourceLeads, ActionEdit, true},
		{LegacyRoleMember, ResourceLeads, ActionDelete, false},
		{LegacyRoleMember, ResourceAuditLog, ActionView, false},
		{LegacyRoleViewer, ResourceForms, ActionView, true},
		{LegacyRoleViewer, ResourceForms, ActionCreate, false},
		{LegacyRole("stranger"), ResourceLeads, ActionView, false},
	}
	for _, tt := range tests {
		got := LegacyRoleGrants(tt.role, tt.resource, tt.action)
		if got != tt.want {
			t.Errorf("LegacyRoleGrants(%s, %s, %s) = %v, want %v", tt.role, tt.resource, tt.action, got, tt.want)
		}
	}
}

func TestDefaultRolePermissionsAdminExpandsWildcard(t *testing.T) {
	keys := DefaultRolePermissions(LegacyRoleAdmin)
	assert.Equal(t, len(keys), len(Resources())*len(Actions()), "admin expands over the full vocabulary")
}

func TestDefaultRolePermissionsViewer(t *testing.T) {
	keys := DefaultRolePermissions(LegacyRoleViewer)
	assert.Equal(t, len(keys), len(Resources())-1, "viewer holds view on everything but the audit log")
	for _, key := range keys {
		assert.Equal(t, key.Action, ActionView)
	}
}

func TestRoleAssignmentAppliesTo(t *testing.T) {
	leadID := "lead-1"
	otherID := "lead-2"

	orgWide := RoleAssignment{ID: "a1"}
	assert.Equal(t, orgWide.AppliesTo(nil), true)
	assert.Equal(t, orgWide.AppliesTo(&leadID), true)

	scoped := RoleAssignment{ID: "a2", ResourceID: &leadID}
	assert.Equal(t, scoped.AppliesTo(&leadID), true)
	assert.Equal(t, scoped.AppliesTo(&otherID), false)
	assert.Equal(t, scoped.AppliesTo(nil), false, "a scoped assignment never covers an organization wide check")
}

func TestValidateVocabulary(t *testing.T) {
	assert.NilError(t, ValidateResource(ResourceSubmissions))
	assert.Assert(t, ValidateResource(Resource("cars")) != nil)
	assert.NilError(t, ValidateAction(ActionAssign))
	assert.Assert(t, ValidateAction(Action("fly")) != nil)
	assert.NilError(t, ValidateAssigneeType(AssigneeTypeRole))
	assert.Assert(t, ValidateAssigneeType(AssigneeType("org")) != nil)
}
