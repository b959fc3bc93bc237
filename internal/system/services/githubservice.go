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

package services

import (
	"net/http"

	"github.com/hubsight/hubsight/internal/github"
	"github.com/hubsight/hubsight/internal/github/handler"
	"github.com/hubsight/hubsight/internal/system/middleware"
)

// GitHubService defines the service for handling GitHub data API requests.
type GitHubService struct {
	githubHandler *handler.GitHubHandler
	apiKeyAuth    *middleware.APIKeyAuth
	rateLimiter   *middleware.RateLimiter
}

// NewGitHubService creates a new instance of GitHubService.
func NewGitHubService(mux *http.ServeMux, client *github.Client, apiKeyAuth *middleware.APIKeyAuth,
	rateLimiter *middleware.RateLimiter) ServiceInterface {
	instance := &GitHubService{
		githubHandler: handler.NewGitHubHandler(client),
		apiKeyAuth:    apiKeyAuth,
		rateLimiter:   rateLimiter,
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the GitHubService.
func (g *GitHubService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization, X-API-Key",
		AllowCredentials: true,
	}

	routes := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{"GET /api/v1/users/{username}", g.githubHandler.HandleGetUserRequest},
		{"GET /api/v1/users/{username}/repositories", g.githubHandler.HandleGetUserRepositoriesRequest},
		{"GET /api/v1/users/{username}/repositories/summary", g.githubHandler.HandleGetUserRepositoriesSummaryRequest},
		{"GET /api/v1/users/{username}/languages", g.githubHandler.HandleGetUserLanguagesRequest},
		{"GET /api/v1/users/{username}/stats", g.githubHandler.HandleGetUserStatsRequest},
		{"GET /api/v1/repos/{owner}/{repo}", g.githubHandler.HandleGetRepositoryRequest},
		{"GET /api/v1/repos/{owner}/{repo}/languages", g.githubHandler.HandleGetRepositoryLanguagesRequest},
		{"GET /api/v1/repos/{owner}/{repo}/events", g.githubHandler.HandleGetRepositoryEventsRequest},
		{"GET /api/v1/repos/{owner}/{repo}/commits", g.githubHandler.HandleGetRepositoryCommitsRequest},
		{"GET /api/v1/repos/{owner}/{repo}/issues", g.githubHandler.HandleGetRepositoryIssuesRequest},
		{"GET /api/v1/repos/{owner}/{repo}/pulls", g.githubHandler.HandleGetRepositoryPullRequestsRequest},
		{"GET /api/v1/search/repositories", g.githubHandler.HandleSearchRepositoriesRequest},
		{"GET /api/v1/search/users", g.githubHandler.HandleSearchUsersRequest},
	}

	for _, route := range routes {
		wrapped := g.apiKeyAuth.Wrap(g.rateLimiter.Wrap(route.handler))
		mux.HandleFunc(middleware.WithCORS(route.pattern, wrapped, opts))
	}

	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/v1/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
