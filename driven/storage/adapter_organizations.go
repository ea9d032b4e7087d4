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
)

// InsertOrganization creates the organization together with its seeded default
// roles, bindings, the owner membership and the owner assignment in one
// transaction. A partial seed never becomes visible.
func (sa *Adapter) InsertOrganization(organization model.Organization, roles []model.Role, bindings []model.RolePermission,
	membership model.Membership, ownerAssignment model.RoleAssignment) error {
	// transaction
	err := sa.db.dbClient.UseSession(context.Background(), func(sessionContext mongo.SessionContext) error {
		err := sessionContext.StartTransaction()
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}

		_, err = sa.db.organizations.InsertOneWithContext(sessionContext, organization)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
		}

		rolesDocs := make([]interface{}, len(roles))
		for i, role := range roles {
			rolesDocs[i] = role
		}
		_, err = sa.db.roles.InsertManyWithContext(sessionContext, rolesDocs, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeRole, nil, err)
		}

		if len(bindings) > 0 {
			bindingsDocs := make([]interface{}, len(bindings))
			for i, binding := range bindings {
				bindingsDocs[i] = binding
			}
			_, err = sa.db.rolePermissions.InsertManyWithContext(sessionContext, bindingsDocs, nil)
			if err != nil {
				sa.abortTransaction(sessionContext)
				return errors.WrapErrorAction(logutils.ActionInsert, model.TypeRolePermission, nil, err)
			}
		}

		_, err = sa.db.memberships.InsertOneWithContext(sessionContext, membership)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeMembership, nil, err)
		}

		_, err = sa.db.userRoles.InsertOneWithContext(sessionContext, ownerAssignment)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeRoleAssignment, nil, err)
		}

		err = sessionContext.CommitTransaction(sessionContext)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	//keep the cache warm for the new organization
	sa.onOrganizationsChanged()

	return nil
}

// FindOrganization finds an organization by id, served from the cache
func (sa *Adapter) FindOrganization(id string) (*model.Organization, error) {
	cached, err := sa.getCachedOrganization(id)
	if err != nil {
		sa.logger.Warn(err.Error())
	}
	if cached != nil {
		return cached, nil
	}

	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	var result []model.Organization
	err = sa.db.organizations.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	if len(result) == 0 {
		//no record
		return nil, nil
	}
	return &result[0], nil
}

// FindMembership finds the user's membership in the organization
func (sa *Adapter) FindMembership(userID string, orgID string) (*model.Membership, error) {
	filter := bson.D{primitive.E{Key: "user_id", Value: userID}, primitive.E{Key: "organization_id", Value: orgID}}
	var result []model.Membership
	err := sa.db.memberships.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership,
			&logutils.FieldArgs{"user_id": userID, "organization_id": orgID}, err)
	}
	if len(result) == 0 {
		//no record
		return nil, nil
	}
	return &result[0], nil
}

// FindMembershipByUser finds any membership the user holds, in any organization
func (sa *Adapter) FindMembershipByUser(userID string) (*model.Membership, error) {
	filter := bson.D{primitive.E{Key: "user_id", Value: userID}}
	var result []model.Membership
	err := sa.db.memberships.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, &logutils.FieldArgs{"user_id": userID}, err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	return &result[0], nil
}
