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
	//TypeTeam team type
	TypeTeam logutils.MessageDataType = "team"
	//TypeTeamMember team member type
	TypeTeamMember logutils.MessageDataType = "team member"
)

// Team is a named grouping within an organization. Team membership confers
// every role assigned to the team to every member, for as long as both the
// team-role assignment and the membership exist.
type Team struct {
	ID             string `json:"id" bson:"_id"`
	OrganizationID string `json:"organization_id" bson:"organization_id"`

	Name        string `json:"name" bson:"name" validate:"required"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	CreatedBy string `json:"created_by" bson:"created_by"`

	DateCreated time.Time  `json:"date_created" bson:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty" bson:"date_updated,omitempty"`
}

// TeamMember links a user to a team
type TeamMember struct {
	ID             string `json:"id" bson:"_id"`
	OrganizationID string `json:"organization_id" bson:"organization_id"`
	TeamID         string `json:"team_id" bson:"team_id"`
	UserID         string `json:"user_id" bson:"user_id"`

	AddedBy     string    `json:"added_by" bson:"added_by"`
	DateCreated time.Time `json:"date_created" bson:"date_created"`
}
