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

// LegacyRole is the single-role-per-membership label kept as a fallback
// authority source
type LegacyRole string

// The legacy membership roles
const (
	LegacyRoleOwner  LegacyRole = "owner"
	LegacyRoleAdmin  LegacyRole = "admin"
	LegacyRoleMember LegacyRole = "member"
	LegacyRoleViewer LegacyRole = "viewer"
)

// LegacyRoles lists the legacy membership roles in seeding order
func LegacyRoles() []LegacyRole {
	return []LegacyRole{LegacyRoleOwner, LegacyRoleAdmin, LegacyRoleMember, LegacyRoleViewer}
}

var allCRUD = []Action{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionManage}

// defaultRolePermissions is the built-in permission table for the legacy
// membership roles. The admin role is absent on purpose: it carries the legacy
// wildcard and is handled by LegacyRoleGrants directly.
var defaultRolePermissions = map[LegacyRole]map[Resource][]Action{
	LegacyRoleOwner: {
		ResourceMembers:     allCRUD,
		ResourceTeams:       allCRUD,
		ResourceRoles:       allCRUD,
		ResourceForms:       allCRUD,
		ResourceLeads:       allCRUD,
		ResourceWebsites:    allCRUD,
		ResourceSubmissions: allCRUD,
		ResourceSettings:    {ActionView, ActionEdit, ActionManage},
		ResourceAuditLog:    {ActionView},
	},
	LegacyRoleMember: {
		ResourceMembers:     {ActionView},
		ResourceTeams:       {ActionView},
		ResourceRoles:       {ActionView},
		ResourceForms:       {ActionView, ActionCreate, ActionEdit},
		ResourceLeads:       {ActionView, ActionCreate, ActionEdit},
		ResourceWebsites:    {ActionView},
		ResourceSubmissions: {ActionView, ActionCreate},
		ResourceSettings:    {ActionView},
		ResourceAuditLog:    {},
	},
	LegacyRoleViewer: {
		ResourceMembers:     {ActionView},
		ResourceTeams:       {ActionView},
		ResourceRoles:       {ActionView},
		ResourceForms:       {ActionView},
		ResourceLeads:       {ActionView},
		ResourceWebsites:    {ActionView},
		ResourceSubmissions: {ActionView},
		ResourceSettings:    {ActionView},
		ResourceAuditLog:    {},
	},
}

// LegacyRoleGrants reports whether the built-in table for the legacy role grants
// the (resource, action) pair. The admin role carries the legacy wildcard and
// grants everything.
func LegacyRoleGrants(role LegacyRole, resource Resource, action Action) bool {
	if role == LegacyRoleAdmin {
		return true
	}
	actions, ok := defaultRolePermissions[role][resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action || a == ActionManage {
			return true
		}
	}
	return false
}

// DefaultRolePermissions returns the built-in (resource, action) pairs seeded
// for the legacy role when an organization is created. For the admin role this
// expands the wildcard over the full vocabulary.
func DefaultRolePermissions(role LegacyRole) []PermissionKey {
	var keys []PermissionKey
	if role == LegacyRoleAdmin {
		for _, resource := range Resources() {
			for _, action := range Actions() {
				keys = append(keys, PermissionKey{Resource: resource, Action: action})
			}
		}
		return keys
	}
	for _, resource := range Resources() {
		for _, action := range defaultRolePermissions[role][resource] {
			keys = append(keys, PermissionKey{Resource: resource, Action: action})
		}
	}
	return keys
}
