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

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeRole role type
	TypeRole logutils.MessageDataType = "role"
	//TypeRoleAssignment role assignment type
	TypeRoleAssignment logutils.MessageDataType = "role assignment"
)

// Role is a named permission set within an organization. Default roles are
// seeded at organization creation and are immutable; custom roles are created
// on demand and carry a name unique within the organization.
type Role struct {
	ID             string `json:"id" bson:"_id"`
	OrganizationID string `json:"organization_id" bson:"organization_id"`

	Name        string `json:"name" bson:"name" validate:"required"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	IsCustom  bool `json:"is_custom" bson:"is_custom"`
	IsDefault bool `json:"is_default" bson:"is_default"`

	CreatedBy string `json:"created_by,omitempty" bson:"created_by,omitempty"`

	DateCreated time.Time  `json:"date_created" bson:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty" bson:"date_updated,omitempty"`

	Permissions []RolePermission `json:"permissions,omitempty" bson:"-"`
}

// PrincipalType is the kind of principal a role is assigned to
type PrincipalType string

// Supported principal types
const (
	PrincipalTypeUser PrincipalType = "user"
	PrincipalTypeTeam PrincipalType = "team"
)

// RoleAssignment links a principal (a user or a team) to a role, optionally
// scoped to one resource instance. A principal may hold several roles; its
// permissions are the union across them.
type RoleAssignment struct {
	ID             string `json:"id" bson:"_id"`
	OrganizationID string `json:"organization_id" bson:"organization_id"`

	PrincipalType PrincipalType `json:"principal_type" bson:"principal_type"`
	PrincipalID   string        `json:"principal_id" bson:"principal_id"`
	RoleID        string        `json:"role_id" bson:"role_id"`

	ResourceID *string `json:"resource_id,omitempty" bson:"resource_id,omitempty"`

	AssignedBy string    `json:"assigned_by" bson:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at" bson:"assigned_at"`
}

// AppliesTo reports whether the assignment covers the requested instance. An
// assignment without a resource id is an organization wide grant.
func (ra RoleAssignment) AppliesTo(resourceID *string) bool {
	if ra.ResourceID == nil {
		return true
	}
	return resourceID != nil && *ra.ResourceID == *resourceID
}
