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

package web

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"access-building-block/core"
	"access-building-block/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"gopkg.in/go-playground/validator.v9"
)

// ServicesApisHandler handles the APIs used by the other building blocks on
// behalf of signed-in users
type ServicesApisHandler struct {
	coreAPIs *core.APIs
}

func (h ServicesApisHandler) version(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	return l.HTTPResponseSuccessMessage(h.coreAPIs.GetVersion())
}

type checkPermissionResponse struct {
	Allowed bool `json:"allowed"`
}

func (h ServicesApisHandler) checkPermission(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	resource := r.URL.Query().Get("resource")
	if resource == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("resource"), nil, http.StatusBadRequest, false)
	}
	action := r.URL.Query().Get("action")
	if action == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeQueryParam, logutils.StringArgs("action"), nil, http.StatusBadRequest, false)
	}
	var resourceID *string
	if value := r.URL.Query().Get("resource_id"); value != "" {
		resourceID = &value
	}

	allowed, err := h.coreAPIs.Services.SerCheckPermission(claims.UserID(), claims.OrgID,
		model.Resource(resource), model.Action(action), resourceID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypePermissionCheck, nil, err, errorStatusCode(err), true)
	}

	data, err := json.Marshal(checkPermissionResponse{Allowed: allowed})
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePermissionCheck, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(data)
}

type permissionKeyResponse struct {
	Resource model.Resource `json:"resource"`
	Action   model.Action   `json:"action"`
}

func (h ServicesApisHandler) getEffectivePermissions(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	keys, err := h.coreAPIs.Services.SerGetEffectivePermissions(claims.UserID(), claims.OrgID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypePermissionCheck, nil, err, errorStatusCode(err), true)
	}

	response := make([]permissionKeyResponse, len(keys))
	for i, key := range keys {
		response[i] = permissionKeyResponse{Resource: key.Resource, Action: key.Action}
	}

	data, err := json.Marshal(response)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePermissionCheck, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) getRoles(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	roles, err := h.coreAPIs.Services.SerGetRoles(claims.UserID(), claims.OrgID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeRole, nil, err, errorStatusCode(err), true)
	}

	data, err := json.Marshal(roles)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeRole, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) getRolePermissions(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	roleID := params["id"]
	if len(roleID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	permissions, err := h.coreAPIs.Services.SerGetRolePermissions(claims.UserID(), claims.OrgID, roleID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeRolePermission, nil, err, errorStatusCode(err), true)
	}

	data, err := json.Marshal(permissions)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeRolePermission, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(data)
}

type recordAuditRequest struct {
	Action     string                 `json:"action" validate:"required"`
	TargetType string                 `json:"target_type" validate:"required"`
	TargetID   *string                `json:"target_id,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

func (h ServicesApisHandler) recordAudit(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData recordAuditRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	err = h.coreAPIs.Services.SerRecordAudit(claims.UserID(), claims.OrgID, requestData.Action,
		requestData.TargetType, requestData.TargetID, requestData.Details)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionInsert, model.TypeAuditEntry, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

func (h ServicesApisHandler) queryAuditLog(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	query := r.URL.Query()

	filter := model.AuditFilter{}
	if value := query.Get("actor_id"); value != "" {
		filter.ActorID = &value
	}
	if value := query.Get("action"); value != "" {
		filter.Action = &value
	}
	if value := query.Get("target_type"); value != "" {
		filter.TargetType = &value
	}
	if value := query.Get("target_id"); value != "" {
		filter.TargetID = &value
	}
	if value := query.Get("from"); value != "" {
		from, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("from"), err, http.StatusBadRequest, false)
		}
		filter.From = &from
	}
	if value := query.Get("to"); value != "" {
		to, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("to"), err, http.StatusBadRequest, false)
		}
		filter.To = &to
	}

	var skip, limit int64
	if value := query.Get("skip"); value != "" {
		skip, _ = strconv.ParseInt(value, 10, 64)
	}
	if value := query.Get("limit"); value != "" {
		limit, _ = strconv.ParseInt(value, 10, 64)
	}

	page, err := h.coreAPIs.Services.SerQueryAuditLog(claims.UserID(), claims.OrgID, filter, skip, limit)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionFind, model.TypeAuditEntry, nil, err, errorStatusCode(err), true)
	}

	data, err := json.Marshal(page)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeAuditEntry, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(data)
}

// NewServicesApisHandler creates new services Handler instance
func NewServicesApisHandler(coreAPIs *core.APIs) ServicesApisHandler {
	return ServicesApisHandler{coreAPIs: coreAPIs}
}
