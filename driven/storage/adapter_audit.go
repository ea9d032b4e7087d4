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

// InsertAuditEntry appends one entry to the audit log. The log has no update or
// delete surface.
func (sa *Adapter) InsertAuditEntry(entry model.AuditEntry) error {
	_, err := sa.db.auditLogs.InsertOne(entry)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeAuditEntry, nil, err)
	}
	return nil
}

// FindAuditEntries returns one page of the organization's audit trail, newest
// first, with the total count for the filter
func (sa *Adapter) FindAuditEntries(orgID string, filter model.AuditFilter, skip int64, limit int64) (*model.AuditPage, error) {
	queryFilter := bson.D{primitive.E{Key: "organization_id", Value: orgID}}
	if filter.ActorID != nil {
		queryFilter = append(queryFilter, primitive.E{Key: "actor_id", Value: *filter.ActorID})
	}
	if filter.Action != nil {
		queryFilter = append(queryFilter, primitive.E{Key: "action", Value: *filter.Action})
	}
	if filter.TargetType != nil {
		queryFilter = append(queryFilter, primitive.E{Key: "target_type", Value: *filter.TargetType})
	}
	if filter.TargetID != nil {
		queryFilter = append(queryFilter, primitive.E{Key: "target_id", Value: *filter.TargetID})
	}
	if filter.From != nil || filter.To != nil {
		dateFilter := bson.M{}
		if filter.From != nil {
			dateFilter["$gte"] = *filter.From
		}
		if filter.To != nil {
			dateFilter["$lte"] = *filter.To
		}
		queryFilter = append(queryFilter, primitive.E{Key: "date_created", Value: dateFilter})
	}

	total, err := sa.db.auditLogs.CountDocuments(queryFilter)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAuditEntry,
			&logutils.FieldArgs{"organization_id": orgID}, err)
	}

	findOptions := options.Find().SetSort(bson.D{primitive.E{Key: "date_created", Value: -1}}).SetSkip(skip).SetLimit(limit)
	var entries []model.AuditEntry
	err = sa.db.auditLogs.Find(queryFilter, &entries, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAuditEntry,
			&logutils.FieldArgs{"organization_id": orgID}, err)
	}
	if entries == nil {
		entries = []model.AuditEntry{}
	}

	return &model.AuditPage{Entries: entries, Total: total, Skip: skip, Limit: limit}, nil
}
