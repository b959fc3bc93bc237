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

package github

import "time"

const (
	// defaultBaseURL is the GitHub REST API base URL used when none is configured.
	defaultBaseURL = "https://api.github.com"
	// acceptHeaderValue is the GitHub REST API media type.
	acceptHeaderValue = "application/vnd.github.v3+json"
	// userAgentValue identifies this service to the upstream provider.
	userAgentValue = "hubsight/1.0"

	// userCacheTTL is the cache TTL for user profile reads.
	userCacheTTL = 5 * time.Minute
	// userReposCacheTTL is the cache TTL for user repository listings.
	userReposCacheTTL = 10 * time.Minute

	// cacheNamespaceUser prefixes cache keys for user profile reads.
	cacheNamespaceUser = "user"
	// cacheNamespaceUserRepos prefixes cache keys for user repository listings.
	cacheNamespaceUserRepos = "user_repos"

	// statsPageSize is the page size used when collecting repositories for
	// per-user aggregation.
	statsPageSize = 100
	// topRepositoriesSize is the number of repositories surfaced in the
	// per-user statistics summary.
	topRepositoriesSize = 5
	// recentActivitySize is the number of recently updated repositories
	// surfaced in the per-user repositories summary.
	recentActivitySize = 5

	// defaultIssueState filters issue and pull request listings when the
	// caller does not specify a state.
	defaultIssueState = "open"
)
