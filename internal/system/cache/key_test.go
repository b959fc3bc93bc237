/*
 * Copyright (c) 2025, Hubsight (https://hubsight.io).
 *
 * Hubsight licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type KeyTestSuite struct {
	suite.Suite
}

func TestKeySuite(t *testing.T) {
	suite.Run(t, new(KeyTestSuite))
}

func (suite *KeyTestSuite) TestDeriveKeyDeterminism() {
	testCases := []struct {
		name      string
		namespace string
		args      []string
		params    map[string]string
	}{
		{
			name:      "NamespaceOnly",
			namespace: "user",
		},
		{
			name:      "PositionalArgs",
			namespace: "user",
			args:      []string{"octocat"},
		},
		{
			name:      "PositionalAndNamedArgs",
			namespace: "user_repos",
			args:      []string{"octocat"},
			params:    map[string]string{"page": "1", "per_page": "30"},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			first := DeriveKey(tc.namespace, tc.args, tc.params)
			second := DeriveKey(tc.namespace, tc.args, tc.params)

			assert.Equal(t, first, second)
			// SHA-256 hex output.
			assert.Len(t, first, 64)
		})
	}
}

func (suite *KeyTestSuite) TestDeriveKeyNamedArgumentOrderInvariance() {
	// Maps iterate in random order; repeated derivations with many named
	// arguments would differ if ordering leaked into the key.
	params := map[string]string{
		"page":     "2",
		"per_page": "50",
		"sort":     "updated",
		"state":    "open",
		"type":     "owner",
	}

	reference := DeriveKey("user_repos", []string{"octocat"}, params)
	for i := 0; i < 50; i++ {
		assert.Equal(suite.T(), reference, DeriveKey("user_repos", []string{"octocat"}, params))
	}
}

func (suite *KeyTestSuite) TestDeriveKeyDistinctInputs() {
	testCases := []struct {
		name  string
		left  string
		right string
	}{
		{
			name:  "DifferentNamespace",
			left:  DeriveKey("user", []string{"octocat"}, nil),
			right: DeriveKey("user_repos", []string{"octocat"}, nil),
		},
		{
			name:  "DifferentPositionalArgs",
			left:  DeriveKey("user", []string{"octocat"}, nil),
			right: DeriveKey("user", []string{"hubot"}, nil),
		},
		{
			name:  "DifferentNamedArgs",
			left:  DeriveKey("user_repos", []string{"octocat"}, map[string]string{"page": "1"}),
			right: DeriveKey("user_repos", []string{"octocat"}, map[string]string{"page": "2"}),
		},
		{
			name:  "NamedArgNameMatters",
			left:  DeriveKey("q", nil, map[string]string{"a": "1"}),
			right: DeriveKey("q", nil, map[string]string{"b": "1"}),
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, tc.left, tc.right)
		})
	}
}
