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

	"access-building-block/core"
	"access-building-block/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"gopkg.in/go-playground/validator.v9"
)

// AdminApisHandler handles the admin APIs implementation
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

type createOrganizationRequest struct {
	Name        string `json:"name" validate:"required"`
	OwnerUserID string `json:"owner_user_id" validate:"required"`
}

func (h AdminApisHandler) createOrganization(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData createOrganizationRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	organization, err := h.coreAPIs.Administration.AdmCreateOrganization(requestData.Name, requestData.OwnerUserID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeOrganization, nil, err, errorStatusCode(err), true)
	}

	respData, err := json.Marshal(organization)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(respData)
}

type permissionTupleRequest struct {
	Resource   string  `json:"resource" validate:"required"`
	Action     string  `json:"action" validate:"required"`
	Allow      *bool   `json:"allow,omitempty"`
	ResourceID *string `json:"resource_id,omitempty"`
}

func permissionTuplesFromRequest(tuples []permissionTupleRequest) []model.RolePermission {
	permissions := make([]model.RolePermission, len(tuples))
	for i, tuple := range tuples {
		allow := true
		if tuple.Allow != nil {
			allow = *tuple.Allow
		}
		permissions[i] = model.RolePermission{Resource: model.Resource(tuple.Resource),
			Action: model.Action(tuple.Action), Allow: allow, ResourceID: tuple.ResourceID}
	}
	return permissions
}

type createRoleRequest struct {
	Name        string                   `json:"name" validate:"required"`
	Description string                   `json:"description,omitempty"`
	Permissions []permissionTupleRequest `json:"permissions" validate:"required,dive"`
}

func (h AdminApisHandler) createRole(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData createRoleRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	role, err := h.coreAPIs.Administration.AdmCreateRole(claims.UserID(), claims.OrgID, requestData.Name,
		requestData.Description, permissionTuplesFromRequest(requestData.Permissions))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeRole, nil, err, errorStatusCode(err), true)
	}

	respData, err := json.Marshal(role)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeRole, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(respData)
}

type updateRolePermissionsRequest struct {
	Permissions []permissionTupleRequest `json:"permissions" validate:"required,dive"`
}

func (h AdminApisHandler) updateRolePermissions(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	roleID := params["id"]
	if len(roleID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData updateRolePermissionsRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	err = h.coreAPIs.Administration.AdmUpdateRolePermissions(claims.UserID(), claims.OrgID, roleID,
		permissionTuplesFromRequest(requestData.Permissions))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeRolePermission, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) deleteRole(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	roleID := params["id"]
	if len(roleID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmDeleteRole(claims.UserID(), claims.OrgID, roleID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeRole, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) getRoleAssignments(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	query := r.URL.Query()

	var principalType *model.PrincipalType
	if value := query.Get("principal_type"); value != "" {
		pType := model.PrincipalType(value)
		if pType != model.PrincipalTypeUser && pType != model.PrincipalTypeTeam {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("principal_type"), nil, http.StatusBadRequest, false)
		}
		principalType = &pType
	}
	var principalID *string
	if value := query.Get("principal_id"); value != "" {
		principalID = &value
	}

	assignments, err := h.coreAPIs.Administration.AdmGetRoleAssignments(claims.UserID(), claims.OrgID, principalType, principalID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionFind, model.TypeRoleAssignment, nil, err, errorStatusCode(err), true)
	}

	respData, err := json.Marshal(assignments)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeRoleAssignment, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(respData)
}

type assignRoleRequest struct {
	RoleID     string  `json:"role_id" validate:"required"`
	ResourceID *string `json:"resource_id,omitempty"`
}

func (h AdminApisHandler) assignUserRole(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	userID := params["id"]
	if len(userID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData assignRoleRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	err = h.coreAPIs.Administration.AdmAssignRoleToUser(claims.UserID(), claims.OrgID, userID, requestData.RoleID, requestData.ResourceID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionInsert, model.TypeRoleAssignment, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) unassignUserRole(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	userID := params["id"]
	if len(userID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}
	roleID := params["role-id"]
	if len(roleID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("role-id"), nil, http.StatusBadRequest, false)
	}
	var resourceID *string
	if value := r.URL.Query().Get("resource_id"); value != "" {
		resourceID = &value
	}

	err := h.coreAPIs.Administration.AdmUnassignRoleFromUser(claims.UserID(), claims.OrgID, userID, roleID, resourceID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeRoleAssignment, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) assignTeamRole(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	teamID := params["id"]
	if len(teamID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData assignRoleRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	err = h.coreAPIs.Administration.AdmAssignRoleToTeam(claims.UserID(), claims.OrgID, teamID, requestData.RoleID, requestData.ResourceID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionInsert, model.TypeRoleAssignment, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) unassignTeamRole(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	teamID := params["id"]
	if len(teamID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}
	roleID := params["role-id"]
	if len(roleID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("role-id"), nil, http.StatusBadRequest, false)
	}
	var resourceID *string
	if value := r.URL.Query().Get("resource_id"); value != "" {
		resourceID = &value
	}

	err := h.coreAPIs.Administration.AdmUnassignRoleFromTeam(claims.UserID(), claims.OrgID, teamID, roleID, resourceID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeRoleAssignment, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

type setPermissionOverrideRequest struct {
	AssigneeType string  `json:"assignee_type" validate:"required"`
	AssigneeID   string  `json:"assignee_id" validate:"required"`
	Resource     string  `json:"resource" validate:"required"`
	Action       string  `json:"action" validate:"required"`
	Allow        *bool   `json:"allow" validate:"required"`
	ResourceID   *string `json:"resource_id,omitempty"`
}

func (h AdminApisHandler) setPermissionOverride(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData setPermissionOverrideRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	override, err := h.coreAPIs.Administration.AdmSetPermissionOverride(claims.UserID(), claims.OrgID,
		model.AssigneeType(requestData.AssigneeType), requestData.AssigneeID,
		model.Resource(requestData.Resource), model.Action(requestData.Action), *requestData.Allow, requestData.ResourceID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionSave, model.TypePermissionOverride, nil, err, errorStatusCode(err), true)
	}

	respData, err := json.Marshal(override)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePermissionOverride, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(respData)
}

func (h AdminApisHandler) getPermissionOverrides(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	query := r.URL.Query()

	var assigneeType *model.AssigneeType
	if value := query.Get("assignee_type"); value != "" {
		aType := model.AssigneeType(value)
		if err := model.ValidateAssigneeType(aType); err != nil {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("assignee_type"), err, http.StatusBadRequest, false)
		}
		assigneeType = &aType
	}
	var assigneeID *string
	if value := query.Get("assignee_id"); value != "" {
		assigneeID = &value
	}

	overrides, err := h.coreAPIs.Administration.AdmGetPermissionOverrides(claims.UserID(), claims.OrgID, assigneeType, assigneeID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionFind, model.TypePermissionOverride, nil, err, errorStatusCode(err), true)
	}

	respData, err := json.Marshal(overrides)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePermissionOverride, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(respData)
}

func (h AdminApisHandler) deletePermissionOverride(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	overrideID := params["id"]
	if len(overrideID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmDeletePermissionOverride(claims.UserID(), claims.OrgID, overrideID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypePermissionOverride, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

type createTeamRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

func (h AdminApisHandler) createTeam(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData createTeamRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	team, err := h.coreAPIs.Administration.AdmCreateTeam(claims.UserID(), claims.OrgID, requestData.Name, requestData.Description)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeTeam, nil, err, errorStatusCode(err), true)
	}

	respData, err := json.Marshal(team)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeTeam, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(respData)
}

func (h AdminApisHandler) getTeams(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	teams, err := h.coreAPIs.Administration.AdmGetTeams(claims.UserID(), claims.OrgID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionFind, model.TypeTeam, nil, err, errorStatusCode(err), true)
	}

	respData, err := json.Marshal(teams)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeTeam, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(respData)
}

func (h AdminApisHandler) deleteTeam(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	teamID := params["id"]
	if len(teamID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmDeleteTeam(claims.UserID(), claims.OrgID, teamID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeTeam, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

type addTeamMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (h AdminApisHandler) addTeamMember(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	teamID := params["id"]
	if len(teamID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData addTeamMemberRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	err = h.coreAPIs.Administration.AdmAddTeamMember(claims.UserID(), claims.OrgID, teamID, requestData.UserID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionInsert, model.TypeTeamMember, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

func (h AdminApisHandler) getTeamMembers(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	teamID := params["id"]
	if len(teamID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	members, err := h.coreAPIs.Administration.AdmGetTeamMembers(claims.UserID(), claims.OrgID, teamID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionFind, model.TypeTeamMember, nil, err, errorStatusCode(err), true)
	}

	respData, err := json.Marshal(members)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeTeamMember, nil, err, http.StatusInternalServerError, false)
	}

	return l.HTTPResponseSuccessJSON(respData)
}

func (h AdminApisHandler) removeTeamMember(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	teamID := params["id"]
	if len(teamID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}
	userID := params["user-id"]
	if len(userID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("user-id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Administration.AdmRemoveTeamMember(claims.UserID(), claims.OrgID, teamID, userID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeTeamMember, nil, err, errorStatusCode(err), true)
	}

	return l.HTTPResponseSuccess()
}

// NewAdminApisHandler creates new admin Handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}
