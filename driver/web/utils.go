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
	"net/http"

	"access-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
)

// errorStatusCode maps an application error status to the HTTP status the
// caller should see. Unknown statuses stay an internal error so that storage
// failures never read as a decision.
func errorStatusCode(err error) int {
	if loggingErr, ok := err.(*errors.Error); ok {
		switch loggingErr.Status() {
		case utils.ErrorStatusNotAllowed:
			return http.StatusForbidden
		case utils.ErrorStatusNotFound:
			return http.StatusNotFound
		case utils.ErrorStatusAlreadyExists, utils.ErrorStatusInvalid:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
