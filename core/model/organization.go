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
	"fmt"
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeOrganization organization type
	TypeOrganization logutils.MessageDataType = "organization"
	//TypeMembership membership type
	TypeMembership logutils.MessageDataType = "membership"
)

// Organization is the tenant boundary. Every role, assignment, permission and
// audit entry is scoped by organization id.
type Organization struct {
	ID      string `json:"id" bson:"_id"`
	Name    string `json:"name" bson:"name" validate:"required"`
	OwnerID string `json:"owner_id" bson:"owner_id"`

	DateCreated time.Time  `json:"date_created" bson:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty" bson:"date_updated,omitempty"`
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tOwner:%s]", o.ID, o.Name, o.OwnerID)
}

// Membership links a user to an organization with one legacy role label.
// It is unique per (user, organization) pair.
type Membership struct {
	ID             string     `json:"id" bson:"_id"`
	UserID         string     `json:"user_id" bson:"user_id"`
	OrganizationID string     `json:"organization_id" bson:"organization_id"`
	LegacyRole     LegacyRole `json:"role" bson:"role"`

	DateCreated time.Time  `json:"date_created" bson:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty" bson:"date_updated,omitempty"`
}
