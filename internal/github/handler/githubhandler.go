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

// Package handler provides HTTP handlers for the GitHub data API requests.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hubsight/hubsight/internal/github"
	"github.com/hubsight/hubsight/internal/system/log"
	"github.com/hubsight/hubsight/internal/system/utils"
)

const (
	defaultPageSize = 30
	maxPageSize     = 100
)

// GitHubHandler defines the handler for the GitHub data API requests.
type GitHubHandler struct {
	client *github.Client
}

// NewGitHubHandler creates a new instance of GitHubHandler.
func NewGitHubHandler(client *github.Client) *GitHubHandler {
	return &GitHubHandler{
		client: client,
	}
}

// HandleGetUserRequest handles the user profile request.
func (gh *GitHubHandler) HandleGetUserRequest(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	user, err := gh.client.GetUser(username)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to fetch user "+username)
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}

// HandleGetUserRepositoriesRequest handles the paged user repository listing request.
func (gh *GitHubHandler) HandleGetUserRepositoriesRequest(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	page, perPage := parsePagination(r)

	repositories, err := gh.client.GetUserRepositories(username, page, perPage)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to fetch repositories for user "+username)
		return
	}

	utils.WriteJSON(w, http.StatusOK, repositories)
}

// HandleGetUserLanguagesRequest handles the per-user language usage request.
func (gh *GitHubHandler) HandleGetUserLanguagesRequest(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	languages, err := gh.client.GetUserLanguages(username)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to fetch languages for user "+username)
		return
	}

	utils.WriteJSON(w, http.StatusOK, languages)
}

// HandleGetUserStatsRequest handles the per-user statistics summary request.
func (gh *GitHubHandler) HandleGetUserStatsRequest(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	stats, err := gh.client.GetUserStats(username)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to compute stats for user "+username)
		return
	}

	utils.WriteJSON(w, http.StatusOK, stats)
}

// HandleGetUserRepositoriesSummaryRequest handles the aggregated per-user
// repositories summary request.
func (gh *GitHubHandler) HandleGetUserRepositoriesSummaryRequest(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	summary, err := gh.client.GetUserRepositoriesSummary(username)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to summarize repositories for user "+username)
		return
	}

	utils.WriteJSON(w, http.StatusOK, summary)
}

// HandleGetRepositoryRequest handles the single repository request.
func (gh *GitHubHandler) HandleGetRepositoryRequest(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	repo := r.PathValue("repo")

	repository, err := gh.client.GetRepository(owner, repo)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to fetch repository "+owner+"/"+repo)
		return
	}

	utils.WriteJSON(w, http.StatusOK, repository)
}

// HandleGetRepositoryLanguagesRequest handles the repository language breakdown request.
func (gh *GitHubHandler) HandleGetRepositoryLanguagesRequest(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	repo := r.PathValue("repo")

	languages, err := gh.client.GetRepositoryLanguages(owner, repo)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to fetch languages for repository "+owner+"/"+repo)
		return
	}

	utils.WriteJSON(w, http.StatusOK, languages)
}

// HandleGetRepositoryEventsRequest handles the paged repository events request.
func (gh *GitHubHandler) HandleGetRepositoryEventsRequest(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	repo := r.PathValue("repo")
	page, perPage := parsePagination(r)

	events, err := gh.client.GetRepositoryEvents(owner, repo, page, perPage)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to fetch events for repository "+owner+"/"+repo)
		return
	}

	utils.WriteJSON(w, http.StatusOK, events)
}

// HandleGetRepositoryCommitsRequest handles the paged repository commits request.
func (gh *GitHubHandler) HandleGetRepositoryCommitsRequest(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	repo := r.PathValue("repo")
	page, perPage := parsePagination(r)

	commits, err := gh.client.GetRepositoryCommits(owner, repo, page, perPage)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to fetch commits for repository "+owner+"/"+repo)
		return
	}

	utils.WriteJSON(w, http.StatusOK, commits)
}

// HandleGetRepositoryIssuesRequest handles the paged repository issues request.
// The optional state query parameter filters by open, closed or all.
func (gh *GitHubHandler) HandleGetRepositoryIssuesRequest(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	repo := r.PathValue("repo")
	state := r.URL.Query().Get("state")
	page, perPage := parsePagination(r)

	issues, err := gh.client.GetRepositoryIssues(owner, repo, state, page, perPage)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to fetch issues for repository "+owner+"/"+repo)
		return
	}

	utils.WriteJSON(w, http.StatusOK, issues)
}

// HandleGetRepositoryPullRequestsRequest handles the paged repository pull
// request listing. The optional state query parameter filters by open, closed
// or all.
func (gh *GitHubHandler) HandleGetRepositoryPullRequestsRequest(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	repo := r.PathValue("repo")
	state := r.URL.Query().Get("state")
	page, perPage := parsePagination(r)

	pulls, err := gh.client.GetRepositoryPullRequests(owner, repo, state, page, perPage)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to fetch pull requests for repository "+owner+"/"+repo)
		return
	}

	utils.WriteJSON(w, http.StatusOK, pulls)
}

// HandleSearchRepositoriesRequest handles the repository search request.
func (gh *GitHubHandler) HandleSearchRepositoriesRequest(w http.ResponseWriter, r *http.Request) {
	searchQuery := r.URL.Query().Get("q")
	if searchQuery == "" {
		utils.WriteJSONError(w, "invalid_request", "Query parameter q is required",
			http.StatusBadRequest, nil)
		return
	}
	page, perPage := parsePagination(r)

	repositories, err := gh.client.SearchRepositories(searchQuery, page, perPage)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to search repositories")
		return
	}

	utils.WriteJSON(w, http.StatusOK, repositories)
}

// HandleSearchUsersRequest handles the user search request.
func (gh *GitHubHandler) HandleSearchUsersRequest(w http.ResponseWriter, r *http.Request) {
	searchQuery := r.URL.Query().Get("q")
	if searchQuery == "" {
		utils.WriteJSONError(w, "invalid_request", "Query parameter q is required",
			http.StatusBadRequest, nil)
		return
	}
	page, perPage := parsePagination(r)

	users, err := gh.client.SearchUsers(searchQuery, page, perPage)
	if err != nil {
		gh.writeUpstreamError(w, err, "Failed to search users")
		return
	}

	utils.WriteJSON(w, http.StatusOK, users)
}

// writeUpstreamError maps an upstream client error to an API error response.
func (gh *GitHubHandler) writeUpstreamError(w http.ResponseWriter, err error, desc string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "GitHubHandler"))
	logger.Error("Upstream request failed", log.Error(err))

	var upstreamErr *github.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.StatusCode == http.StatusNotFound {
			utils.WriteJSONError(w, "not_found", desc, http.StatusNotFound, nil)
			return
		}
		utils.WriteJSONError(w, "upstream_error", desc, http.StatusBadGateway, nil)
		return
	}

	utils.WriteJSONError(w, "server_error", desc, http.StatusInternalServerError, nil)
}

// parsePagination reads the page and per_page query parameters, applying the
// defaults and the upstream page size cap.
func parsePagination(r *http.Request) (page, perPage int) {
	page = 1
	perPage = defaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			page = parsed
		}
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			perPage = parsed
		}
	}
	if perPage > maxPageSize {
		perPage = maxPageSize
	}
	return page, perPage
}
