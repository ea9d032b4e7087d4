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

package core

import (
	"strings"
	"time"

	"access-building-block/core/model"
	"access-building-block/utils"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

func (app *application) admCreateTeam(actorID string, orgID string, name string, description string) (*model.Team, error) {
	err := app.authorize(actorID, orgID, model.ResourceTeams, model.ActionCreate)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, logutils.TypeString,
			&logutils.FieldArgs{"name": name}).SetStatus(utils.ErrorStatusInvalid)
	}

	now := time.Now().UTC()
	team := model.Team{ID: uuid.NewString(), OrganizationID: orgID, Name: name,
		Description: description, CreatedBy: actorID, DateCreated: now}

	err = app.storage.InsertTeam(team)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeTeam, nil, err)
	}

	app.auditLog(orgID, actorID, model.AuditActionCreate, model.AuditTargetTeam, &team.ID,
		map[string]interface{}{"name": name})

	return &team, nil
}

// admDeleteTeam removes a team together with its memberships and its role
// assignments in one transaction, so no orphaned authority survives the team.
func (app *application) admDeleteTeam(actorID string, orgID string, teamID string) error {
	err := app.authorize(actorID, orgID, model.ResourceTeams, model.ActionDelete)
	if err != nil {
		return err
	}

	team, err := app.storage.FindTeam(orgID, teamID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeTeam, nil, err)
	}
	if team == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeTeam,
			&logutils.FieldArgs{"id": teamID}).SetStatus(utils.ErrorStatusNotFound)
	}

	err = app.storage.DeleteTeamCascade(orgID, teamID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeTeam, &logutils.FieldArgs{"id": teamID}, err)
	}

	app.auditLog(orgID, actorID, model.AuditActionDelete, model.AuditTargetTeam, &teamID,
		map[string]interface{}{"name": team.Name})

	return nil
}

func (app *application) admGetTeams(actorID string, orgID string) ([]model.Team, error) {
	err := app.authorize(actorID, orgID, model.ResourceTeams, model.ActionView)
	if err != nil {
		return nil, err
	}

	return app.storage.FindTeams(orgID)
}

func (app *application) admAddTeamMember(actorID string, orgID string, teamID string, userID string) error {
	err := app.authorize(actorID, orgID, model.ResourceTeams, model.ActionEdit)
	if err != nil {
		return err
	}

	team, err := app.storage.FindTeam(orgID, teamID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeTeam, nil, err)
	}
	if team == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeTeam,
			&logutils.FieldArgs{"id": teamID}).SetStatus(utils.ErrorStatusNotFound)
	}

	membership, err := app.storage.FindMembership(userID, orgID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, nil, err)
	}
	if membership == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeMembership,
			&logutils.FieldArgs{"user_id": userID}).SetStatus(utils.ErrorStatusNotFound)
	}

	now := time.Now().UTC()
	member := model.TeamMember{ID: uuid.NewString(), OrganizationID: orgID, TeamID: teamID,
		UserID: userID, AddedBy: actorID, DateCreated: now}

	inserted, err := app.storage.UpsertTeamMember(member)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeTeamMember, nil, err)
	}
	if !inserted {
		//already a member, nothing changed
		return nil
	}

	app.auditLog(orgID, actorID, model.AuditActionAssign, model.AuditTargetTeamMember, &teamID,
		map[string]interface{}{"user_id": userID, "team_id": teamID})

	return nil
}

func (app *application) admRemoveTeamMember(actorID string, orgID string, teamID string, userID string) error {
	err := app.authorize(actorID, orgID, model.ResourceTeams, model.ActionEdit)
	if err != nil {
		return err
	}

	deleted, err := app.storage.DeleteTeamMember(orgID, teamID, userID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeTeamMember, nil, err)
	}
	if !deleted {
		return nil
	}

	app.auditLog(orgID, actorID, model.AuditActionUnassign, model.AuditTargetTeamMember, &teamID,
		map[string]interface{}{"user_id": userID, "team_id": teamID})

	return nil
}

func (app *application) admGetTeamMembers(actorID string, orgID string, teamID string) ([]model.TeamMember, error) {
	err := app.authorize(actorID, orgID, model.ResourceTeams, model.ActionView)
	if err != nil {
		return nil, err
	}

	return app.storage.FindTeamMembers(orgID, teamID)
}
