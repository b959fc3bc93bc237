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

// Summary holds the totals derived from a set of repositories.
type Summary struct {
	TotalRepositories int     `json:"total_repositories"`
	PublicCount       int     `json:"public_count"`
	PrivateCount      int     `json:"private_count"`
	ForkedCount       int     `json:"forked_count"`
	OriginalCount     int     `json:"original_count"`
	TotalStars        int     `json:"total_stars"`
	TotalForks        int     `json:"total_forks"`
	TotalWatchers     int     `json:"total_watchers"`
	TotalOpenIssues   int     `json:"total_open_issues"`
	TotalSize         int64   `json:"total_size"`
	AverageStars      float64 `json:"average_stars_per_repo"`
}

// LanguageSummary holds the occurrence count of a language among a repository
// set and the percentage of the set sharing it. Percentages across all
// languages need not sum to 100 when repositories without a language exist.
type LanguageSummary struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// LanguageCount is a (language, repository count) pair in a leaderboard.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}
