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

// Package github provides the domain models and the upstream client for the
// GitHub REST API, with cache-aside reads for repeated lookups.
package github

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	nethttp "net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hubsight/hubsight/internal/aggregate"
	"github.com/hubsight/hubsight/internal/system/cache"
	"github.com/hubsight/hubsight/internal/system/config"
	"github.com/hubsight/hubsight/internal/system/constants"
	"github.com/hubsight/hubsight/internal/system/http"
	"github.com/hubsight/hubsight/internal/system/log"
)

const loggerComponentName = "GitHubClient"

// Client is the upstream client for the GitHub REST API. It is explicitly
// constructed with its cache store and HTTP client injected.
type Client struct {
	baseURL    string
	token      string
	httpClient http.HTTPClientInterface
	store      *cache.Store
}

// NewClient creates a new GitHub API client.
func NewClient(cfg config.GitHubConfig, store *cache.Store) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	var httpClient http.HTTPClientInterface
	if cfg.RequestTimeout > 0 {
		httpClient = http.NewHTTPClientWithTimeout(time.Duration(cfg.RequestTimeout) * time.Second)
	} else {
		httpClient = http.GetHTTPClient()
	}

	return &Client{
		baseURL:    baseURL,
		token:      cfg.Token,
		httpClient: httpClient,
		store:      store,
	}
}

// fetch performs an outbound GET against the upstream provider and returns the
// raw response body. It fails on non-success HTTP status, network failure, or
// an unreadable response.
func (c *Client) fetch(path string, query url.Values) ([]byte, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := nethttp.NewRequest(nethttp.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set(constants.AcceptHeaderName, acceptHeaderValue)
	req.Header.Set(constants.UserAgentHeaderName, userAgentValue)
	if c.token != "" {
		req.Header.Set(constants.AuthorizationHeaderName, "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Debug("Failed to close upstream response body", log.Error(cerr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Path: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}
	return body, nil
}

// fetchAs performs an upstream GET and decodes the JSON response into T.
func fetchAs[T any](c *Client, path string, query url.Values) (T, error) {
	var value T

	body, err := c.fetch(path, query)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(body, &value); err != nil {
		return value, fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return value, nil
}

// GetUser retrieves a user profile, cached for a short interval.
func (c *Client) GetUser(username string) (User, error) {
	key := cache.DeriveKey(cacheNamespaceUser, []string{username}, nil)

	return cache.GetOrCompute(c.store, key, userCacheTTL, func() (User, error) {
		return fetchAs[User](c, "/users/"+url.PathEscape(username), nil)
	})
}

// GetUserRepositories retrieves one page of a user's repositories, cached per
// (username, page, per_page).
func (c *Client) GetUserRepositories(username string, page, perPage int) ([]Repository, error) {
	page, perPage = clampPagination(page, perPage)

	key := cache.DeriveKey(cacheNamespaceUserRepos, []string{username}, map[string]string{
		"page":     strconv.Itoa(page),
		"per_page": strconv.Itoa(perPage),
	})

	return cache.GetOrCompute(c.store, key, userReposCacheTTL, func() ([]Repository, error) {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(perPage))
		query.Set("sort", "updated")
		return fetchAs[[]Repository](c, "/users/"+url.PathEscape(username)+"/repos", query)
	})
}

// GetRepository retrieves a single repository.
func (c *Client) GetRepository(owner, repo string) (Repository, error) {
	return fetchAs[Repository](c, repoPath(owner, repo), nil)
}

// GetRepositoryLanguages retrieves the languages of a repository with
// byte-weighted percentages.
func (c *Client) GetRepositoryLanguages(owner, repo string) (map[string]Language, error) {
	bytesByLanguage, err := fetchAs[map[string]int64](c, repoPath(owner, repo)+"/languages", nil)
	if err != nil {
		return nil, err
	}

	var totalBytes int64
	for _, count := range bytesByLanguage {
		totalBytes += count
	}

	languages := make(map[string]Language, len(bytesByLanguage))
	for name, count := range bytesByLanguage {
		percentage := 0.0
		if totalBytes > 0 {
			percentage = roundTwo(float64(count) / float64(totalBytes) * 100)
		}
		languages[name] = Language{
			Name:       name,
			Bytes:      count,
			Percentage: percentage,
		}
	}
	return languages, nil
}

// GetRepositoryEvents retrieves one page of a repository's activity events.
func (c *Client) GetRepositoryEvents(owner, repo string, page, perPage int) ([]Event, error) {
	return fetchAs[[]Event](c, repoPath(owner, repo)+"/events", paginationQuery(page, perPage))
}

// GetRepositoryCommits retrieves one page of a repository's commits.
func (c *Client) GetRepositoryCommits(owner, repo string, page, perPage int) ([]Commit, error) {
	return fetchAs[[]Commit](c, repoPath(owner, repo)+"/commits", paginationQuery(page, perPage))
}

// GetRepositoryIssues retrieves one page of a repository's issues filtered by
// state (open, closed or all).
func (c *Client) GetRepositoryIssues(owner, repo, state string, page, perPage int) ([]Issue, error) {
	query := paginationQuery(page, perPage)
	if state == "" {
		state = defaultIssueState
	}
	query.Set("state", state)

	return fetchAs[[]Issue](c, repoPath(owner, repo)+"/issues", query)
}

// GetRepositoryPullRequests retrieves one page of a repository's pull requests
// filtered by state (open, closed or all).
func (c *Client) GetRepositoryPullRequests(owner, repo, state string, page, perPage int) ([]PullRequest, error) {
	query := paginationQuery(page, perPage)
	if state == "" {
		state = defaultIssueState
	}
	query.Set("state", state)

	return fetchAs[[]PullRequest](c, repoPath(owner, repo)+"/pulls", query)
}

// SearchRepositories searches repositories, ordered by stars.
func (c *Client) SearchRepositories(searchQuery string, page, perPage int) ([]Repository, error) {
	query := paginationQuery(page, perPage)
	query.Set("q", searchQuery)
	query.Set("sort", "stars")

	result, err := fetchAs[searchResult[Repository]](c, "/search/repositories", query)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// SearchUsers searches user accounts.
func (c *Client) SearchUsers(searchQuery string, page, perPage int) ([]User, error) {
	query := paginationQuery(page, perPage)
	query.Set("q", searchQuery)

	result, err := fetchAs[searchResult[User]](c, "/search/users", query)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// GetUserLanguages retrieves the languages a user works in, ranked across
// their repositories. The percentage field carries the repository count for
// each language rather than a byte volume; this count-based policy is kept
// for compatibility with existing consumers.
func (c *Client) GetUserLanguages(username string) (map[string]Language, error) {
	repositories, err := c.GetUserRepositories(username, 1, statsPageSize)
	if err != nil {
		return nil, err
	}

	languages := make(map[string]Language)
	for name, summary := range aggregate.LanguageHistogram(repositories) {
		languages[name] = Language{
			Name:       name,
			Percentage: float64(summary.Count),
		}
	}
	return languages, nil
}

// GetUserRepositoriesSummary aggregates a user's repositories into a single
// summary: totals, the language histogram, the most starred repositories and
// the most recently updated ones. An empty repository set yields a summary
// with zero totals and empty collections.
func (c *Client) GetUserRepositoriesSummary(username string) (RepositoriesSummary, error) {
	repositories, err := c.GetUserRepositories(username, 1, statsPageSize)
	if err != nil {
		return RepositoriesSummary{}, err
	}

	topRepos := make([]RepositoryRef, 0, topRepositoriesSize)
	for _, repo := range aggregate.TopByStars(repositories, topRepositoriesSize) {
		topRepos = append(topRepos, RepositoryRef{
			Name:        repo.Name,
			FullName:    repo.FullName,
			Description: repo.Description,
			Stars:       repo.StargazersCount,
			Forks:       repo.ForksCount,
			Language:    repo.Language,
		})
	}

	recentActivity := make([]RepositoryActivity, 0, recentActivitySize)
	for _, repo := range aggregate.MostRecentlyUpdated(repositories, recentActivitySize) {
		recentActivity = append(recentActivity, RepositoryActivity{
			Name:        repo.Name,
			FullName:    repo.FullName,
			UpdatedAt:   repo.UpdatedAt,
			Language:    repo.Language,
			Description: repo.Description,
		})
	}

	return RepositoriesSummary{
		Username:        username,
		Summary:         aggregate.Summarize(repositories),
		Languages:       aggregate.LanguageHistogram(repositories),
		TopRepositories: topRepos,
		RecentActivity:  recentActivity,
	}, nil
}

// GetUserStats composes the per-user statistics summary from the user profile
// and the aggregation over their repositories.
func (c *Client) GetUserStats(username string) (UserStats, error) {
	user, err := c.GetUser(username)
	if err != nil {
		return UserStats{}, err
	}

	repositories, err := c.GetUserRepositories(username, 1, statsPageSize)
	if err != nil {
		return UserStats{}, err
	}

	summary := aggregate.Summarize(repositories)
	leaderboard := aggregate.LanguageLeaderboard(repositories)

	topRepos := make([]RepositoryRef, 0, topRepositoriesSize)
	for _, repo := range aggregate.TopByStars(repositories, topRepositoriesSize) {
		topRepos = append(topRepos, RepositoryRef{
			Name:        repo.Name,
			FullName:    repo.FullName,
			Description: repo.Description,
			Stars:       repo.StargazersCount,
			Forks:       repo.ForksCount,
			Language:    repo.Language,
		})
	}

	return UserStats{
		User: user,
		Repositories: RepositoryBreakdown{
			Total:    summary.TotalRepositories,
			Public:   summary.PublicCount,
			Private:  summary.PrivateCount,
			Forked:   summary.ForkedCount,
			Original: summary.OriginalCount,
		},
		Activity: ActivityStats{
			TotalStars:          summary.TotalStars,
			TotalForks:          summary.TotalForks,
			TotalIssues:         summary.TotalOpenIssues,
			AverageStarsPerRepo: summary.AverageStars,
		},
		Languages: LanguageUsage{
			TopLanguages:   leaderboard,
			TotalLanguages: len(aggregate.LanguageHistogram(repositories)),
		},
		TopRepositories: topRepos,
	}, nil
}

// repoPath builds the escaped base path for a repository.
func repoPath(owner, repo string) string {
	return "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo)
}

// clampPagination applies the pagination defaults for out-of-range values.
func clampPagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 30
	}
	return page, perPage
}

// paginationQuery clamps the pagination values and encodes them as query
// parameters.
func paginationQuery(page, perPage int) url.Values {
	page, perPage = clampPagination(page, perPage)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	return query
}

// roundTwo rounds a float to two decimal places.
func roundTwo(value float64) float64 {
	return math.Round(value*100) / 100
}
