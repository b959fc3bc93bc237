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

package aggregate

import "time"

// User represents a GitHub user account. Wire tags follow the GitHub REST API.
type User struct {
	ID              int64      `json:"id"`
	Login           string     `json:"login"`
	Name            string     `json:"name,omitempty"`
	Email           string     `json:"email,omitempty"`
	AvatarURL       string     `json:"avatar_url,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	Location        string     `json:"location,omitempty"`
	Company         string     `json:"company,omitempty"`
	Blog            string     `json:"blog,omitempty"`
	TwitterUsername string     `json:"twitter_username,omitempty"`
	PublicRepos     int        `json:"public_repos"`
	PublicGists     int        `json:"public_gists"`
	Followers       int        `json:"followers"`
	Following       int        `json:"following"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	Type            string     `json:"type,omitempty"`
	SiteAdmin       bool       `json:"site_admin"`
}

// Repository is the repository record over which summaries are derived.
// Aggregation treats these records as read-only input. Wire tags follow the
// GitHub REST API.
type Repository struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	Description     string     `json:"description,omitempty"`
	Private         bool       `json:"private"`
	Fork            bool       `json:"fork"`
	Language        string     `json:"language,omitempty"`
	Size            int64      `json:"size"`
	StargazersCount int        `json:"stargazers_count"`
	WatchersCount   int        `json:"watchers_count"`
	ForksCount      int        `json:"forks_count"`
	OpenIssuesCount int        `json:"open_issues_count"`
	DefaultBranch   string     `json:"default_branch,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	PushedAt        *time.Time `json:"pushed_at,omitempty"`
	Homepage        string     `json:"homepage,omitempty"`
	Topics          []string   `json:"topics,omitempty"`
	Archived        bool       `json:"archived"`
	Disabled        bool       `json:"disabled"`
	Owner           *User      `json:"owner,omitempty"`
}
