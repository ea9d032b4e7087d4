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

// InsertRole creates the role with its initial bindings in one transaction
func (sa *Adapter) InsertRole(role model.Role, permissions []model.RolePermission) error {
	// transaction
	return sa.db.dbClient.UseSession(context.Background(), func(sessionContext mongo.SessionContext) error {
		err := sessionContext.StartTransaction()
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}

		_, err = sa.db.roles.InsertOneWithContext(sessionContext, role)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeRole, nil, err)
		}

		if len(permissions) > 0 {
			docs := make([]interface{}, len(permissions))
			for i, permission := range permissions {
				docs[i] = permission
			}
			_, err = sa.db.rolePermissions.InsertManyWithContext(sessionContext, docs, nil)
			if err != nil {
				sa.abortTransaction(sessionContext)
				return errors.WrapErrorAction(logutils.ActionInsert, model.TypeRolePermission, nil, err)
			}
		}

		err = sessionContext.CommitTransaction(sessionContext)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}
		return nil
	})
}

// FindRole finds a role by id within the organization
func (sa *Adapter) FindRole(orgID string, roleID string) (*model.Role, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: roleID}, primitive.E{Key: "organization_id", Value: orgID}}
	var result []model.Role
	err := sa.db.roles.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole,
			&logutils.FieldArgs{"id": roleID, "organization_id": orgID}, err)
	}
	if len(result) == 0 {
		//no record
		return nil, nil
	}
	return &result[0], nil
}

// FindRoleByName finds a role by its exact name within the organization
func (sa *Adapter) FindRoleByName(orgID string, name string) (*model.Role, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID}, primitive.E{Key: "name", Value: name}}
	var result []model.Role
	err := sa.db.roles.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole,
			&logutils.FieldArgs{"organization_id": orgID, "name": name}, err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	return &result[0], nil
}

// FindRoles finds all roles of the organization
func (sa *Adapter) FindRoles(orgID string) ([]model.Role, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID}}
	var result []model.Role
	err := sa.db.roles.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRole, &logutils.FieldArgs{"organization_id": orgID}, err)
	}
	return result, nil
}

// FindRolePermissions finds the permission bindings of the given roles,
// optionally narrowed to one resource
func (sa *Adapter) FindRolePermissions(orgID string, roleIDs []string, resource *model.Resource) ([]model.RolePermission, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID},
		primitive.E{Key: "role_id", Value: bson.M{"$in": roleIDs}}}
	if resource != nil {
		filter = append(filter, primitive.E{Key: "resource", Value: *resource})
	}

	var result []model.RolePermission
	err := sa.db.rolePermissions.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRolePermission,
			&logutils.FieldArgs{"organization_id": orgID}, err)
	}
	return result, nil
}

// ReplaceRolePermissions atomically swaps the full binding set of the role
func (sa *Adapter) ReplaceRolePermissions(orgID string, roleID string, permissions []model.RolePermission) error {
	// transaction
	return sa.db.dbClient.UseSession(context.Background(), func(sessionContext mongo.SessionContext) error {
		err := sessionContext.StartTransaction()
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}

		//clear the current bindings
		delFilter := bson.D{primitive.E{Key: "organization_id", Value: orgID}, primitive.E{Key: "role_id", Value: roleID}}
		_, err = sa.db.rolePermissions.DeleteManyWithContext(sessionContext, delFilter, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRolePermission, nil, err)
		}

		//add the new ones
		if len(permissions) > 0 {
			docs := make([]interface{}, len(permissions))
			for i, permission := range permissions {
				docs[i] = permission
			}
			_, err = sa.db.rolePermissions.InsertManyWithContext(sessionContext, docs, nil)
			if err != nil {
				sa.abortTransaction(sessionContext)
				return errors.WrapErrorAction(logutils.ActionInsert, model.TypeRolePermission, nil, err)
			}
		}

		err = sessionContext.CommitTransaction(sessionContext)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}
		return nil
	})
}

// DeleteRoleCascade deletes the role together with its bindings, every user and
// team assignment referencing it and every override recorded against it
func (sa *Adapter) DeleteRoleCascade(orgID string, roleID string) error {
	// transaction
	return sa.db.dbClient.UseSession(context.Background(), func(sessionContext mongo.SessionContext) error {
		err := sessionContext.StartTransaction()
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}

		roleFilter := bson.D{primitive.E{Key: "_id", Value: roleID}, primitive.E{Key: "organization_id", Value: orgID}}
		res, err := sa.db.roles.DeleteOneWithContext(sessionContext, roleFilter, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRole, nil, err)
		}
		if res.DeletedCount == 0 {
			sa.abortTransaction(sessionContext)
			return errors.ErrorData(logutils.StatusMissing, model.TypeRole, &logutils.FieldArgs{"id": roleID})
		}

		refFilter := bson.D{primitive.E{Key: "organization_id", Value: orgID}, primitive.E{Key: "role_id", Value: roleID}}
		_, err = sa.db.rolePermissions.DeleteManyWithContext(sessionContext, refFilter, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRolePermission, nil, err)
		}
		_, err = sa.db.userRoles.DeleteManyWithContext(sessionContext, refFilter, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRoleAssignment, nil, err)
		}
		_, err = sa.db.teamRoles.DeleteManyWithContext(sessionContext, refFilter, nil)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRoleAssignment, nil, err)
		}

		overridesFilter := bson.D{primitive.E{Key: "organization_id", Value: orgID},
			primitive.E{Key: "assignee_type", Value: model.AssigneeTypeRole}, primitive.E{Key: "assignee_id", Value: roleID}}
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
