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
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeResource resource type
	TypeResource logutils.MessageDataType = "resource"
	//TypeAction action type
	TypeAction logutils.MessageDataType = "action"
	//TypeRolePermission role permission binding type
	TypeRolePermission logutils.MessageDataType = "role permission"
	//TypePermissionOverride permission override type
	TypePermissionOverride logutils.MessageDataType = "permission override"
	//TypePermissionCheck permission check type
	TypePermissionCheck logutils.MessageDataType = "permission check"
)

// Resource is a protected noun in the system
type Resource string

// Action is a verb applied to a resource
type Action string

// The closed resource vocabulary
const (
	ResourceMembers     Resource = "members"
	ResourceTeams       Resource = "teams"
	ResourceRoles       Resource = "roles"
	ResourceForms       Resource = "forms"
	ResourceLeads       Resource = "leads"
	ResourceWebsites    Resource = "websites"
	ResourceSubmissions Resource = "submissions"
	ResourceSettings    Resource = "settings"
	ResourceAuditLog    Resource = "audit_log"
)

// The closed action vocabulary
const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
	ActionAssign Action = "assign"
)

// Resources lists every valid resource
func Resources() []Resource {
	return []Resource{ResourceMembers, ResourceTeams, ResourceRoles, ResourceForms, ResourceLeads,
		ResourceWebsites, ResourceSubmissions, ResourceSettings, ResourceAuditLog}
}

// Actions lists every valid action
func Actions() []Action {
	return []Action{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionManage, ActionAssign}
}

// ValidateResource checks the resource against the closed vocabulary
func ValidateResource(resource Resource) error {
	for _, r := range Resources() {
		if r == resource {
			return nil
		}
	}
	return errors.ErrorData(logutils.StatusInvalid, TypeResource, logutils.StringArgs(string(resource)))
}

// ValidateAction checks the action against the closed vocabulary
func ValidateAction(action Action) error {
	for _, a := range Actions() {
		if a == action {
			return nil
		}
	}
	return errors.ErrorData(logutils.StatusInvalid, TypeAction, logutils.StringArgs(string(action)))
}

// PermissionKey identifies one (resource, action) pair. It is used as a map key
// instead of a concatenated "resource:action" string.
type PermissionKey struct {
	Resource Resource
	Action   Action
}

// Satisfies reports whether a grant on the key covers the requested pair.
// A manage grant covers every action on its resource.
func (k PermissionKey) Satisfies(resource Resource, action Action) bool {
	if k.Resource != resource {
		return false
	}
	return k.Action == action || k.Action == ActionManage
}

// RolePermission is a (role, resource, action, allow) binding, optionally scoped
// to one resource instance
type RolePermission struct {
	ID             string `json:"id" bson:"_id"`
	OrganizationID string `json:"organization_id" bson:"organization_id"`
	RoleID         string `json:"role_id" bson:"role_id"`

	Resource Resource `json:"resource" bson:"resource" validate:"required"`
	Action   Action   `json:"action" bson:"action" validate:"required"`
	Allow    bool     `json:"allow" bson:"allow"`

	ResourceID *string `json:"resource_id,omitempty" bson:"resource_id,omitempty"`

	DateCreated time.Time `json:"date_created" bson:"date_created"`
}

// Key returns the binding's permission key
func (rp RolePermission) Key() PermissionKey {
	return PermissionKey{Resource: rp.Resource, Action: rp.Action}
}

// AppliesTo reports whether the binding covers the requested instance. A binding
// without a resource id is organization wide.
func (rp RolePermission) AppliesTo(resourceID *string) bool {
	if rp.ResourceID == nil {
		return true
	}
	return resourceID != nil && *rp.ResourceID == *resourceID
}

// AssigneeType is the kind of principal an override is recorded against
type AssigneeType string

// Supported assignee types
const (
	AssigneeTypeUser AssigneeType = "user"
	AssigneeTypeTeam AssigneeType = "team"
	AssigneeTypeRole AssigneeType = "role"
)

// ValidateAssigneeType checks the assignee type vocabulary
func ValidateAssigneeType(assigneeType AssigneeType) error {
	switch assigneeType {
	case AssigneeTypeUser, AssigneeTypeTeam, AssigneeTypeRole:
		return nil
	}
	return errors.ErrorData(logutils.StatusInvalid, TypePermissionOverride, &logutils.FieldArgs{"assignee_type": assigneeType})
}

// PermissionOverride is an explicit allow or deny recorded directly against a
// principal. It is the highest precedence authority source: it can grant beyond
// role defaults and revoke below them.
type PermissionOverride struct {
	ID             string `json:"id" bson:"_id"`
	OrganizationID string `json:"organization_id" bson:"organization_id"`

	AssigneeType AssigneeType `json:"assignee_type" bson:"assignee_type" validate:"required"`
	AssigneeID   string       `json:"assignee_id" bson:"assignee_id" validate:"required"`

	Resource Resource `json:"resource" bson:"resource" validate:"required"`
	Action   Action   `json:"action" bson:"action" validate:"required"`
	Allow    bool     `json:"allow" bson:"allow"`

	ResourceID *string `json:"resource_id,omitempty" bson:"resource_id,omitempty"`

	CreatedBy   string     `json:"created_by" bson:"created_by"`
	DateCreated time.Time  `json:"date_created" bson:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty" bson:"date_updated,omitempty"`
}

// AppliesTo reports whether the override covers the requested instance
func (po PermissionOverride) AppliesTo(resourceID *string) bool {
	if po.ResourceID == nil {
		return true
	}
	return resourceID != nil && *po.ResourceID == *resourceID
}
