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

// Package aggregate derives summaries from in-memory collections of repository
// records. All functions are deterministic, side-effect-free and re-entrant;
// they perform no I/O and hold no shared state.
package aggregate

import (
	"math"
	"sort"
)

// leaderboardSize is the fixed top size of the language leaderboard.
const leaderboardSize = 5

// Summarize computes the totals over a repository set. Empty input yields a
// summary with all numeric fields zero.
func Summarize(repositories []Repository) Summary {
	summary := Summary{
		TotalRepositories: len(repositories),
	}

	for _, repo := range repositories {
		if repo.Private {
			summary.PrivateCount++
		} else {
			summary.PublicCount++
		}
		if repo.Fork {
			summary.ForkedCount++
		} else {
			summary.OriginalCount++
		}
		summary.TotalStars += repo.StargazersCount
		summary.TotalForks += repo.ForksCount
		summary.TotalWatchers += repo.WatchersCount
		summary.TotalOpenIssues += repo.OpenIssuesCount
		summary.TotalSize += repo.Size
	}

	if len(repositories) > 0 {
		summary.AverageStars = roundTwo(float64(summary.TotalStars) / float64(len(repositories)))
	}

	return summary
}

// LanguageHistogram maps each language to its occurrence count and the
// percentage of the set sharing it. Repositories without a language are
// excluded from the histogram but still count toward the percentage
// denominator.
func LanguageHistogram(repositories []Repository) map[string]LanguageSummary {
	histogram := make(map[string]LanguageSummary)
	if len(repositories) == 0 {
		return histogram
	}

	counts := make(map[string]int)
	for _, repo := range repositories {
		if repo.Language == "" {
			continue
		}
		counts[repo.Language]++
	}

	total := float64(len(repositories))
	for language, count := range counts {
		histogram[language] = LanguageSummary{
			Name:       language,
			Count:      count,
			Percentage: roundTwo(float64(count) / total * 100),
		}
	}

	return histogram
}

// TopByStars returns up to n repositories ordered descending by star count.
// The sort is stable: ties keep their original relative order.
func TopByStars(repositories []Repository, n int) []Repository {
	ordered := make([]Repository, len(repositories))
	copy(ordered, repositories)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StargazersCount > ordered[j].StargazersCount
	})

	return truncate(ordered, n)
}

// MostRecentlyUpdated returns up to n repositories ordered descending by last
// update time. A repository without an update timestamp sorts as the earliest
// possible value and never outranks one that has a timestamp.
func MostRecentlyUpdated(repositories []Repository, n int) []Repository {
	ordered := make([]Repository, len(repositories))
	copy(ordered, repositories)

	sort.SliceStable(ordered, func(i, j int) bool {
		left, right := ordered[i].UpdatedAt, ordered[j].UpdatedAt
		switch {
		case left == nil:
			return false
		case right == nil:
			return true
		default:
			return left.After(*right)
		}
	})

	return truncate(ordered, n)
}

// LanguageLeaderboard returns the top languages by repository count,
// descending, truncated to a fixed size. Ties keep the first-seen order of the
// languages during iteration. The ranking is count-based rather than
// byte-weighted.
func LanguageLeaderboard(repositories []Repository) []LanguageCount {
	counts := make(map[string]int)
	firstSeen := make([]string, 0)

	for _, repo := range repositories {
		if repo.Language == "" {
			continue
		}
		if _, seen := counts[repo.Language]; !seen {
			firstSeen = append(firstSeen, repo.Language)
		}
		counts[repo.Language]++
	}

	leaderboard := make([]LanguageCount, 0, len(firstSeen))
	for _, language := range firstSeen {
		leaderboard = append(leaderboard, LanguageCount{
			Language: language,
			Count:    counts[language],
		})
	}

	sort.SliceStable(leaderboard, func(i, j int) bool {
		return leaderboard[i].Count > leaderboard[j].Count
	})

	return truncate(leaderboard, leaderboardSize)
}

// truncate limits a slice to at most n elements.
func truncate[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}

// roundTwo rounds a float to two decimal places.
func roundTwo(value float64) float64 {
	return math.Round(value*100) / 100
}
