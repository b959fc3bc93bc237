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

import (
	"time"

	"github.com/hubsight/hubsight/internal/aggregate"
)

// RepositoryBreakdown counts a user's repositories by kind.
type RepositoryBreakdown struct {
	Total    int `json:"total"`
	Public   int `json:"public"`
	Private  int `json:"private"`
	Forked   int `json:"forked"`
	Original int `json:"original"`
}

// ActivityStats holds the activity totals over a user's repositories.
type ActivityStats struct {
	TotalStars          int     `json:"total_stars"`
	TotalForks          int     `json:"total_forks"`
	TotalIssues         int     `json:"total_issues"`
	AverageStarsPerRepo float64 `json:"average_stars_per_repo"`
}

// LanguageUsage holds the top languages of a user ranked by repository count.
type LanguageUsage struct {
	TopLanguages   []aggregate.LanguageCount `json:"top_languages"`
	TotalLanguages int                       `json:"total_languages"`
}

// RepositoryRef is a compact reference to a repository in a statistics summary.
type RepositoryRef struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language,omitempty"`
}

// UserStats is the per-user statistics summary composed from the user profile
// and the aggregation over their repositories.
type UserStats struct {
	User            User                `json:"user"`
	Repositories    RepositoryBreakdown `json:"repositories"`
	Activity        ActivityStats       `json:"activity"`
	Languages       LanguageUsage       `json:"languages"`
	TopRepositories []RepositoryRef     `json:"top_repositories"`
}

// RepositoryActivity is a compact reference to a repository ordered by its
// last update time.
type RepositoryActivity struct {
	Name        string     `json:"name"`
	FullName    string     `json:"full_name"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Language    string     `json:"language,omitempty"`
	Description string     `json:"description,omitempty"`
}

// RepositoriesSummary is the per-user repository summary: totals, language
// histogram, the most starred repositories and the most recently updated ones.
type RepositoriesSummary struct {
	Username        string                               `json:"username"`
	Summary         aggregate.Summary                    `json:"summary"`
	Languages       map[string]aggregate.LanguageSummary `json:"languages"`
	TopRepositories []RepositoryRef                      `json:"top_repositories"`
	RecentActivity  []RepositoryActivity                 `json:"recent_activity"`
}
