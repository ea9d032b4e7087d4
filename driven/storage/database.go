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
	"time"

	"access-building-block/core"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration
	bulkTimeout  time.Duration

	logger *logs.Logger

	db       *mongo.Database
	dbClient *mongo.Client

	organizations *collectionWrapper
	memberships   *collectionWrapper

	roles           *collectionWrapper
	rolePermissions *collectionWrapper
	userRoles       *collectionWrapper
	teamRoles       *collectionWrapper

	permissions *collectionWrapper

	teams       *collectionWrapper
	teamMembers *collectionWrapper

	auditLogs *collectionWrapper

	listeners              []core.StorageListener
	onOrganizationsChanged func()
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	organizations := &collectionWrapper{database: m, coll: db.Collection("organizations")}
	err = m.applyOrganizationsChecks(organizations)
	if err != nil {
		return err
	}

	memberships := &collectionWrapper{database: m, coll: db.Collection("memberships")}
	err = m.applyMembershipsChecks(memberships)
	if err != nil {
		return err
	}

	roles := &collectionWrapper{database: m, coll: db.Collection("roles")}
	err = m.applyRolesChecks(roles)
	if err != nil {
		return err
	}

	rolePermissions := &collectionWrapper{database: m, coll: db.Collection("role_permissions")}
	err = m.applyRolePermissionsChecks(rolePermissions)
	if err != nil {
		return err
	}

	userRoles := &collectionWrapper{database: m, coll: db.Collection("user_roles")}
	err = m.applyAssignmentsChecks(userRoles)
	if err != nil {
		return err
	}

	teamRoles := &collectionWrapper{database: m, coll: db.Collection("team_roles")}
	err = m.applyAssignmentsChecks(teamRoles)
	if err != nil {
		return err
	}

	permissions := &collectionWrapper{database: m, coll: db.Collection("permissions")}
	err = m.applyPermissionsChecks(permissions)
	if err != nil {
		return err
	}

	teams := &collectionWrapper{database: m, coll: db.Collection("teams")}
	err = m.applyTeamsChecks(teams)
	if err != nil {
		return err
	}

	teamMembers := &collectionWrapper{database: m, coll: db.Collection("team_members")}
	err = m.applyTeamMembersChecks(teamMembers)
	if err != nil {
		return err
	}

	auditLogs := &collectionWrapper{database: m, coll: db.Collection("audit_logs")}
	err = m.applyAuditLogsChecks(auditLogs)
	if err != nil {
		return err
	}

	//assign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.organizations = organizations
	m.memberships = memberships
	m.roles = roles
	m.rolePermissions = rolePermissions
	m.userRoles = userRoles
	m.teamRoles = teamRoles
	m.permissions = permissions
	m.teams = teams
	m.teamMembers = teamMembers
	m.auditLogs = auditLogs

	go organizations.Watch(nil, m.logger)

	return nil
}

func (m *database) applyOrganizationsChecks(organizations *collectionWrapper) error {
	m.logger.Info("apply organizations checks.....")

	//add name index - unique
	err := organizations.AddIndex(bson.D{primitive.E{Key: "name", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("organizations checks passed")
	return nil
}

func (m *database) applyMembershipsChecks(memberships *collectionWrapper) error {
	m.logger.Info("apply memberships checks.....")

	//one membership per user per organization
	err := memberships.AddIndex(bson.D{primitive.E{Key: "user_id", Value: 1}, primitive.E{Key: "organization_id", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("memberships checks passed")
	return nil
}

func (m *database) applyRolesChecks(roles *collectionWrapper) error {
	m.logger.Info("apply roles checks.....")

	//role names are unique within the organization
	err := roles.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "name", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("roles checks passed")
	return nil
}

func (m *database) applyRolePermissionsChecks(rolePermissions *collectionWrapper) error {
	m.logger.Info("apply role permissions checks.....")

	//one binding per (role, resource, action, resource instance)
	err := rolePermissions.AddIndex(bson.D{primitive.E{Key: "role_id", Value: 1}, primitive.E{Key: "resource", Value: 1},
		primitive.E{Key: "action", Value: 1}, primitive.E{Key: "resource_id", Value: 1}}, true)
	if err != nil {
		return err
	}
	err = rolePermissions.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "role_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("role permissions checks passed")
	return nil
}

func (m *database) applyAssignmentsChecks(assignments *collectionWrapper) error {
	m.logger.Info("apply role assignments checks.....")

	//one assignment per (principal, role, resource instance)
	err := assignments.AddIndex(bson.D{primitive.E{Key: "principal_id", Value: 1}, primitive.E{Key: "role_id", Value: 1},
		primitive.E{Key: "resource_id", Value: 1}}, true)
	if err != nil {
		return err
	}
	err = assignments.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "principal_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("role assignments checks passed")
	return nil
}

func (m *database) applyPermissionsChecks(permissions *collectionWrapper) error {
	m.logger.Info("apply permissions checks.....")

	//one override per (assignee, resource, action, resource instance)
	err := permissions.AddIndex(bson.D{primitive.E{Key: "assignee_type", Value: 1}, primitive.E{Key: "assignee_id", Value: 1},
		primitive.E{Key: "resource", Value: 1}, primitive.E{Key: "action", Value: 1}, primitive.E{Key: "resource_id", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("permissions checks passed")
	return nil
}

func (m *database) applyTeamsChecks(teams *collectionWrapper) error {
	m.logger.Info("apply teams checks.....")

	err := teams.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("teams checks passed")
	return nil
}

func (m *database) applyTeamMembersChecks(teamMembers *collectionWrapper) error {
	m.logger.Info("apply team members checks.....")

	//one membership per user per team
	err := teamMembers.AddIndex(bson.D{primitive.E{Key: "team_id", Value: 1}, primitive.E{Key: "user_id", Value: 1}}, true)
	if err != nil {
		return err
	}
	err = teamMembers.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "user_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("team members checks passed")
	return nil
}

func (m *database) applyAuditLogsChecks(auditLogs *collectionWrapper) error {
	m.logger.Info("apply audit logs checks.....")

	//the query path is always org scoped, newest first
	err := auditLogs.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "date_created", Value: -1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("audit logs checks passed")
	return nil
}

func (m *database) onDataChanged(changeDoc map[string]interface{}) {
	if changeDoc == nil {
		return
	}
	ns := changeDoc["ns"]
	if ns == nil {
		return
	}
	nsMap := ns.(map[string]interface{})
	coll := nsMap["coll"]

	if coll == "organizations" {
		m.logger.Info("organizations collection changed")

		if m.onOrganizationsChanged != nil {
			m.onOrganizationsChanged()
		}
		for _, listener := range m.listeners {
			go listener.OnOrganizationsUpdated()
		}
	}
}
