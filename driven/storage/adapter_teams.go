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
	"context"

	"access-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertTeam creates a team
func (sa *Adapter) InsertTeam(team model.Team) error {
	_, err := sa.db.teams.InsertOne(team)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeTeam, nil, err)
	}
	return nil
}

// FindTeam finds a team by id within the organization
func (sa *Adapter) FindTeam(orgID string, teamID string) (*model.Team, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: teamID}, primitive.E{Key: "organization_id", Value: orgID}}
	var result []model.Team
	err := sa.db.teams.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTeam,
			&logutils.FieldArgs{"id": teamID, "organization_id": orgID}, err)
	}
	if len(result) == 0 {
		//no record
		return nil, nil
	}
	return &result[0], nil
}

// FindTeams finds all teams of the organization
func (sa *Adapter) FindTeams(orgID string) ([]model.Team, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID}}
	var result []model.Team
	err := sa.db.teams.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTeam, &logutils.FieldArgs{"organization_id": orgID}, err)
	}
	return result, nil
}

// DeleteTeamCascade deletes the team together with its memberships and its role
// assignments, so no orphaned authority survives
func (sa *Adapter) DeleteTeamCascade(orgID string, teamID string) error {
	// transaction
	return sa.db.dbClient.UseSession(context.Background(), func(sessionContext mongo.SessionContext) error {
		err := sessionContext.StartTransaction()
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}

		teamFilter := bson.D{primitive.E{Key: "_id", Value: teamID}, primitive.E{Key: "organization_id", Value: orgID}}
		res, err := sa.db.teams.DeleteOneWithContext(sessionContext, teamFilter, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeTeam, nil, err)
		}
		if res.DeletedCount == 0 {
			sa.abortTransaction(sessionContext)
			return errors.ErrorData(logutils.StatusMissing, model.TypeTeam, &logutils.FieldArgs{"id": teamID})
		}

		membersFilter := bson.D{primitive.E{Key: "organization_id", Value: orgID}, primitive.E{Key: "team_id", Value: teamID}}
		_, err = sa.db.teamMembers.DeleteManyWithContext(sessionContext, membersFilter, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeTeamMember, nil, err)
		}

		assignmentsFilter := bson.D{primitive.E{Key: "organization_id", Value: orgID}, primitive.E{Key: "principal_id", Value: teamID}}
		_, err = sa.db.teamRoles.DeleteManyWithContext(sessionContext, assignmentsFilter, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRoleAssignment, nil, err)
		}

		overridesFilter := bson.D{primitive.E{Key: "organization_id", Value: orgID},
			primitive.E{Key: "assignee_type", Value: model.AssigneeTypeTeam}, primitive.E{Key: "assignee_id", Value: teamID}}
		_, err = sa.db.permissions.DeleteManyWithContext(sessionContext, overridesFilter, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypePermissionOverride, nil, err)
		}

		err = sessionContext.CommitTransaction(sessionContext)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}
		return nil
	})
}

// UpsertTeamMember adds the user to the team unless already a member. Returns
// whether a new record was inserted.
func (sa *Adapter) UpsertTeamMember(member model.TeamMember) (bool, error) {
	filter := bson.D{primitive.E{Key: "team_id", Value: member.TeamID}, primitive.E{Key: "user_id", Value: member.UserID}}
	update := bson.M{"$setOnInsert": member}

	opts := options.Update().SetUpsert(true)
	res, err := sa.db.teamMembers.UpdateOne(filter, update, opts)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionInsert, model.TypeTeamMember, nil, err)
	}
	return res.UpsertedCount > 0, nil
}

// DeleteTeamMember removes the user from the team. Returns whether a record
// existed.
func (sa *Adapter) DeleteTeamMember(orgID string, teamID string, userID string) (bool, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID},
		primitive.E{Key: "team_id", Value: teamID}, primitive.E{Key: "user_id", Value: userID}}
	res, err := sa.db.teamMembers.DeleteOne(filter, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionDelete, model.TypeTeamMember, nil, err)
	}
	return res.DeletedCount > 0, nil
}

// FindTeamMemberships finds the team memberships of the user in the organization
func (sa *Adapter) FindTeamMemberships(userID string, orgID string) ([]model.TeamMember, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID}, primitive.E{Key: "user_id", Value: userID}}
	var result []model.TeamMember
	err := sa.db.teamMembers.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTeamMember,
			&logutils.FieldArgs{"organization_id": orgID, "user_id": userID}, err)
	}
	return result, nil
}

// FindTeamMembers finds the members of the team
func (sa *Adapter) FindTeamMembers(orgID string, teamID string) ([]model.TeamMember, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID}, primitive.E{Key: "team_id", Value: teamID}}
	var result []model.TeamMember
	err := sa.db.teamMembers.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTeamMember,
			&logutils.FieldArgs{"organization_id": orgID, "team_id": teamID}, err)
	}
	return result, nil
}
