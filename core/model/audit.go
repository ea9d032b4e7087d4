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
	//TypeAuditEntry audit entry type
	TypeAuditEntry logutils.MessageDataType = "audit entry"
)

// Audit actions
const (
	AuditActionCreate   = "create"
	AuditActionUpdate   = "update"
	AuditActionDelete   = "delete"
	AuditActionAssign   = "assign"
	AuditActionUnassign = "unassign"
)

// Audit target types
const (
	AuditTargetOrganization    = "organization"
	AuditTargetRole            = "role"
	AuditTargetRolePermissions = "role_permissions"
	AuditTargetUserRole        = "user_role"
	AuditTargetTeamRole        = "team_role"
	AuditTargetTeam            = "team"
	AuditTargetTeamMember      = "team_member"
	AuditTargetMember          = "member"
	AuditTargetPermission      = "permission"
	AuditTargetLead            = "lead"
)

// AuditEntry is one record of the append-only audit log. Entries are written
// synchronously as the last step of every permission-relevant mutation and are
// never updated or deleted.
type AuditEntry struct {
	ID             string `json:"id" bson:"_id"`
	OrganizationID string `json:"organization_id" bson:"organization_id"`
	ActorID        string `json:"actor_id" bson:"actor_id"`

	Action     string  `json:"action" bson:"action"`
	TargetType string  `json:"target_type" bson:"target_type"`
	TargetID   *string `json:"target_id,omitempty" bson:"target_id,omitempty"`

	Details map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`

	DateCreated time.Time `json:"date_created" bson:"date_created"`
}

// AuditFilter narrows an audit log query. Organization scoping is mandatory and
// carried separately; every field here is optional.
type AuditFilter struct {
	ActorID    *string
	Action     *string
	TargetType *string
	TargetID   *string
	From       *time.Time
	To         *time.Time
}

// AuditPage is one page of audit entries with the total count for the filter
type AuditPage struct {
	Entries []AuditEntry `json:"entries"`
	Total   int64        `json:"total"`
	Skip    int64        `json:"skip"`
	Limit   int64        `json:"limit"`
}
