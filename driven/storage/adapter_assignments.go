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

package storage

import (
	"access-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// assignmentsColl routes to the user_roles or team_roles collection by the
// principal kind
func (sa *Adapter) assignmentsColl(principalType model.PrincipalType) *collectionWrapper {
	if principalType == model.PrincipalTypeTeam {
		return sa.db.teamRoles
	}
	return sa.db.userRoles
}

// UpsertRoleAssignment inserts the assignment unless the principal already
// holds it. Returns whether a new record was inserted.
func (sa *Adapter) UpsertRoleAssignment(assignment model.RoleAssignment) (bool, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: assignment.OrganizationID},
		primitive.E{Key: "principal_id", Value: assignment.PrincipalID},
		primitive.E{Key: "role_id", Value: assignment.RoleID},
		primitive.E{Key: "resource_id", Value: assignment.ResourceID}}
	update := bson.M{"$setOnInsert": assignment}

	opts := options.Update().SetUpsert(true)
	res, err := sa.assignmentsColl(assignment.PrincipalType).UpdateOne(filter, update, opts)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionInsert, model.TypeRoleAssignment, nil, err)
	}
	return res.UpsertedCount > 0, nil
}

// DeleteRoleAssignment removes the assignment. Returns whether a record existed.
func (sa *Adapter) DeleteRoleAssignment(orgID string, principalType model.PrincipalType, principalID string, roleID string, resourceID *string) (bool, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID},
		primitive.E{Key: "principal_id", Value: principalID},
		primitive.E{Key: "role_id", Value: roleID},
		primitive.E{Key: "resource_id", Value: resourceID}}

	res, err := sa.assignmentsColl(principalType).DeleteOne(filter, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionDelete, model.TypeRoleAssignment, nil, err)
	}
	return res.DeletedCount > 0, nil
}

// FindRoleAssignments finds assignments within the organization, optionally
// narrowed by principal kind and principal id. Without a principal kind it
// spans both the user and the team collections.
func (sa *Adapter) FindRoleAssignments(orgID string, principalType *model.PrincipalType, principalID *string) ([]model.RoleAssignment, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID}}
	if principalID != nil {
		filter = append(filter, primitive.E{Key: "principal_id", Value: *principalID})
	}

	colls := []*collectionWrapper{sa.db.userRoles, sa.db.teamRoles}
	if principalType != nil {
		colls = []*collectionWrapper{sa.assignmentsColl(*principalType)}
	}

	var assignments []model.RoleAssignment
	for _, coll := range colls {
		var result []model.RoleAssignment
		err := coll.Find(filter, &result, nil)
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRoleAssignment,
				&logutils.FieldArgs{"organization_id": orgID}, err)
		}
		assignments = append(assignments, result...)
	}
	return assignments, nil
}

// FindTeamRoleAssignments finds the role assignments of the given teams
func (sa *Adapter) FindTeamRoleAssignments(orgID string, teamIDs []string) ([]model.RoleAssignment, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID},
		primitive.E{Key: "principal_id", Value: bson.M{"$in": teamIDs}}}

	var result []model.RoleAssignment
	err := sa.db.teamRoles.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRoleAssignment,
			&logutils.FieldArgs{"organization_id": orgID}, err)
	}
	return result, nil
}
