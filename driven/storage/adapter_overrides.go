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
	"time"

	"access-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertPermissionOverride inserts or updates the override on its composite
// key. Returns whether a new record was inserted.
func (sa *Adapter) UpsertPermissionOverride(override model.PermissionOverride) (bool, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: override.OrganizationID},
		primitive.E{Key: "assignee_type", Value: override.AssigneeType},
		primitive.E{Key: "assignee_id", Value: override.AssigneeID},
		primitive.E{Key: "resource", Value: override.Resource},
		primitive.E{Key: "action", Value: override.Action},
		primitive.E{Key: "resource_id", Value: override.ResourceID}}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{"allow": override.Allow, "date_updated": now},
		"$setOnInsert": bson.M{"_id": override.ID, "organization_id": override.OrganizationID,
			"assignee_type": override.AssigneeType, "assignee_id": override.AssigneeID,
			"resource": override.Resource, "action": override.Action,
			"resource_id": override.ResourceID, "created_by": override.CreatedBy, "date_created": now},
	}

	opts := options.Update().SetUpsert(true)
	res, err := sa.db.permissions.UpdateOne(filter, update, opts)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionInsert, model.TypePermissionOverride, nil, err)
	}
	return res.UpsertedCount > 0, nil
}

// FindPermissionOverrideByID finds an override by id within the organization
func (sa *Adapter) FindPermissionOverrideByID(orgID string, id string) (*model.PermissionOverride, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: id}, primitive.E{Key: "organization_id", Value: orgID}}
	var result []model.PermissionOverride
	err := sa.db.permissions.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypePermissionOverride,
			&logutils.FieldArgs{"id": id, "organization_id": orgID}, err)
	}
	if len(result) == 0 {
		//no record
		return nil, nil
	}
	return &result[0], nil
}

// FindPermissionOverrides finds overrides within the organization, optionally
// narrowed to one assignee
func (sa *Adapter) FindPermissionOverrides(orgID string, assigneeType *model.AssigneeType, assigneeID *string) ([]model.PermissionOverride, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID}}
	if assigneeType != nil {
		filter = append(filter, primitive.E{Key: "assignee_type", Value: *assigneeType})
	}
	if assigneeID != nil {
		filter = append(filter, primitive.E{Key: "assignee_id", Value: *assigneeID})
	}

	var result []model.PermissionOverride
	err := sa.db.permissions.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypePermissionOverride,
			&logutils.FieldArgs{"organization_id": orgID}, err)
	}
	return result, nil
}

// FindUserOverrides finds the overrides recorded directly against the user for
// one resource. This is the evaluation hot path.
func (sa *Adapter) FindUserOverrides(orgID string, userID string, resource model.Resource) ([]model.PermissionOverride, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: orgID},
		primitive.E{Key: "assignee_type", Value: model.AssigneeTypeUser},
		primitive.E{Key: "assignee_id", Value: userID},
		primitive.E{Key: "resource", Value: resource}}

	var result []model.PermissionOverride
	err := sa.db.permissions.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypePermissionOverride,
			&logutils.FieldArgs{"organization_id": orgID, "assignee_id": userID}, err)
	}
	return result, nil
}

// DeletePermissionOverride removes the override. Returns whether a record
// existed.
func (sa *Adapter) DeletePermissionOverride(orgID string, id string) (bool, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: id}, primitive.E{Key: "organization_id", Value: orgID}}
	res, err := sa.db.permissions.DeleteOne(filter, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionDelete, model.TypePermissionOverride, nil, err)
	}
	return res.DeletedCount > 0, nil
}
