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
	"strings"

	"access-building-block/core/model"
	"access-building-block/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// Claims are the bearer token claims the block trusts: who the caller is,
// which organization the request is scoped to and the caller's legacy role.
// Identity is established by an external collaborator; this block only
// verifies the signature.
type Claims struct {
	OrgID      string `json:"org_id"`
	LegacyRole string `json:"role"`

	jwt.RegisteredClaims
}

// UserID is the token subject
func (c *Claims) UserID() string {
	return c.Subject
}

// Auth handles the bearer token verification for the web adapter
type Auth struct {
	jwtKey []byte
}

// NewAuth creates new auth instance
func NewAuth(jwtKey string) *Auth {
	return &Auth{jwtKey: []byte(jwtKey)}
}

// check verifies the bearer token and extracts the claims
func (auth *Auth) check(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, logutils.TypeString, logutils.StringArgs("Authorization header"))
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeString, logutils.StringArgs("Authorization header"))
	}

	claims := Claims{}
	token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeToken,
				&logutils.FieldArgs{"alg": token.Header["alg"]})
		}
		return auth.jwtKey, nil
	})
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionValidate, logutils.TypeToken, nil, err)
	}
	if !token.Valid {
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeToken, nil)
	}

	if !utils.IsValidID(claims.Subject) || !utils.IsValidID(claims.OrgID) {
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeClaim,
			&logutils.FieldArgs{"sub": claims.Subject, "org_id": claims.OrgID})
	}
	switch model.LegacyRole(claims.LegacyRole) {
	case model.LegacyRoleOwner, model.LegacyRoleAdmin, model.LegacyRoleMember, model.LegacyRoleViewer:
	default:
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeClaim, &logutils.FieldArgs{"role": claims.LegacyRole})
	}

	return &claims, nil
}
