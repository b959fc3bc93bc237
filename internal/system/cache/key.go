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
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// DeriveKey derives an opaque cache key from a namespace, positional argument
// values, and named argument values. Named arguments are sorted by name so that
// identical inputs always produce the identical key regardless of map iteration
// order. Keys are never parsed back into their components.
func DeriveKey(namespace string, args []string, params map[string]string) string {
	parts := make([]string, 0, 1+len(args)+len(params))
	parts = append(parts, namespace)
	parts = append(parts, args...)

	if len(params) > 0 {
		names := make([]string, 0, len(params))
		for name := range params {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			parts = append(parts, name+":"+params[name])
		}
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, keyPartSeparator)))
	return hex.EncodeToString(sum[:])
}
