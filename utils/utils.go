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

package utils

import (
	"github.com/google/uuid"
)

// Error statuses carried by application errors so that the driver adapters can
// map them to caller-visible results
const (
	//ErrorStatusInvalid invalid
	ErrorStatusInvalid string = "invalid"
	//ErrorStatusNotFound not found
	ErrorStatusNotFound string = "not-found"
	//ErrorStatusAlreadyExists already exists
	ErrorStatusAlreadyExists string = "already-exists"
	//ErrorStatusNotAllowed not allowed
	ErrorStatusNotAllowed string = "not-allowed"
	//ErrorStatusUnavailable storage unavailable
	ErrorStatusUnavailable string = "unavailable"
)

// IsValidID checks that the value parses as an identifier generated by the system
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
