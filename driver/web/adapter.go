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
	"fmt"
	"net/http"

	"access-building-block/core"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Adapter entity
type Adapter struct {
	host string
	port string

	auth   *Auth
	logger *logs.Logger

	servicesApisHandler ServicesApisHandler
	adminApisHandler    AdminApisHandler

	coreAPIs *core.APIs
}

type handlerFunc = func(*logs.Log, *http.Request, *Claims) logs.HTTPResponse

// @title Access Building Block API
// @description Permission evaluation and audit API Documentation.
// @version 1.0.0
// @host localhost:80
// @BasePath /access
// @schemes https http

// Start starts the module
func (we Adapter) Start() {
	//add listener to the application
	we.coreAPIs.AddListener(&AppListener{&we})

	router := mux.NewRouter().StrictSlash(true)

	subRouter := router.PathPrefix("/access").Subrouter()
	subRouter.PathPrefix("/doc/ui").Handler(we.serveDocUI())
	subRouter.HandleFunc("/doc", we.serveDoc)
	subRouter.HandleFunc("/version", we.wrapFunc(we.servicesApisHandler.version, false)).Methods("GET")

	///services ///
	servicesSubRouter := subRouter.PathPrefix("/services").Subrouter()
	servicesSubRouter.HandleFunc("/permissions/check", we.wrapFunc(we.servicesApisHandler.checkPermission, true)).Methods("GET")
	servicesSubRouter.HandleFunc("/permissions/effective", we.wrapFunc(we.servicesApisHandler.getEffectivePermissions, true)).Methods("GET")
	servicesSubRouter.HandleFunc("/roles", we.wrapFunc(we.servicesApisHandler.getRoles, true)).Methods("GET")
	servicesSubRouter.HandleFunc("/roles/{id}/permissions", we.wrapFunc(we.servicesApisHandler.getRolePermissions, true)).Methods("GET")
	servicesSubRouter.HandleFunc("/audit", we.wrapFunc(we.servicesApisHandler.recordAudit, true)).Methods("POST")
	servicesSubRouter.HandleFunc("/audit", we.wrapFunc(we.servicesApisHandler.queryAuditLog, true)).Methods("GET")
	///

	///admin ///
	adminSubrouter := subRouter.PathPrefix("/admin").Subrouter()
	adminSubrouter.HandleFunc("/organizations", we.wrapFunc(we.adminApisHandler.createOrganization, true)).Methods("POST")

	adminSubrouter.HandleFunc("/roles", we.wrapFunc(we.adminApisHandler.createRole, true)).Methods("POST")
	adminSubrouter.HandleFunc("/roles/{id}", we.wrapFunc(we.adminApisHandler.deleteRole, true)).Methods("DELETE")
	adminSubrouter.HandleFunc("/roles/{id}/permissions", we.wrapFunc(we.adminApisHandler.updateRolePermissions, true)).Methods("PUT")

	adminSubrouter.HandleFunc("/role-assignments", we.wrapFunc(we.adminApisHandler.getRoleAssignments, true)).Methods("GET")
	adminSubrouter.HandleFunc("/users/{id}/roles", we.wrapFunc(we.adminApisHandler.assignUserRole, true)).Methods("POST")
	adminSubrouter.HandleFunc("/users/{id}/roles/{role-id}", we.wrapFunc(we.adminApisHandler.unassignUserRole, true)).Methods("DELETE")

	adminSubrouter.HandleFunc("/teams", we.wrapFunc(we.adminApisHandler.createTeam, true)).Methods("POST")
	adminSubrouter.HandleFunc("/teams", we.wrapFunc(we.adminApisHandler.getTeams, true)).Methods("GET")
	adminSubrouter.HandleFunc("/teams/{id}", we.wrapFunc(we.adminApisHandler.deleteTeam, true)).Methods("DELETE")
	adminSubrouter.HandleFunc("/teams/{id}/roles", we.wrapFunc(we.adminApisHandler.assignTeamRole, true)).Methods("POST")
	adminSubrouter.HandleFunc("/teams/{id}/roles/{role-id}", we.wrapFunc(we.adminApisHandler.unassignTeamRole, true)).Methods("DELETE")
	adminSubrouter.HandleFunc("/teams/{id}/members", we.wrapFunc(we.adminApisHandler.addTeamMember, true)).Methods("POST")
	adminSubrouter.HandleFunc("/teams/{id}/members", we.wrapFunc(we.adminApisHandler.getTeamMembers, true)).Methods("GET")
	adminSubrouter.HandleFunc("/teams/{id}/members/{user-id}", we.wrapFunc(we.adminApisHandler.removeTeamMember, true)).Methods("DELETE")

	adminSubrouter.HandleFunc("/permission-overrides", we.wrapFunc(we.adminApisHandler.setPermissionOverride, true)).Methods("POST")
	adminSubrouter.HandleFunc("/permission-overrides", we.wrapFunc(we.adminApisHandler.getPermissionOverrides, true)).Methods("GET")
	adminSubrouter.HandleFunc("/permission-overrides/{id}", we.wrapFunc(we.adminApisHandler.deletePermissionOverride, true)).Methods("DELETE")
	///

	err := http.ListenAndServe(":"+we.port, router)
	if err != nil {
		we.logger.Fatalf("error on listen and server - %s", err.Error())
	}
}

func (we Adapter) serveDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("access-control-allow-origin", "*")
	http.ServeFile(w, r, "./docs/swagger.yaml")
}

func (we Adapter) serveDocUI() http.Handler {
	url := fmt.Sprintf("%s/doc", we.host)
	return httpSwagger.Handler(httpSwagger.URL(url))
}

func (we Adapter) wrapFunc(handler handlerFunc, authenticated bool) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logObj := we.logger.NewRequestLog(req)
		logObj.RequestReceived()

		var response logs.HTTPResponse
		if authenticated {
			claims, err := we.auth.check(req)
			if err != nil {
				response = logObj.HTTPResponseError("Unauthorized", err, http.StatusUnauthorized, true)
			} else {
				response = handler(logObj, req, claims)
			}
		} else {
			response = handler(logObj, req, nil)
		}

		logObj.SendHTTPResponse(w, response)
		logObj.RequestComplete()
	}
}

// NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(coreAPIs *core.APIs, host string, port string, jwtKey string, logger *logs.Logger) Adapter {
	auth := NewAuth(jwtKey)

	servicesApisHandler := NewServicesApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)
	return Adapter{host: host, port: port, auth: auth, logger: logger,
		servicesApisHandler: servicesApisHandler, adminApisHandler: adminApisHandler, coreAPIs: coreAPIs}
}

// AppListener implements core.ApplicationListener interface
type AppListener struct {
	adapter *Adapter
}
