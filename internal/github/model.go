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
	"encoding/json"
	"time"

	"github.com/hubsight/hubsight/internal/aggregate"
)

// User and Repository are the records shared with the aggregation engine;
// the types live there so that both packages can consume them.
type (
	// User represents a GitHub user account.
	User = aggregate.User
	// Repository represents a GitHub repository.
	Repository = aggregate.Repository
)

// Language represents a programming language measured within a repository or
// across a user's repositories.
type Language struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// Event represents an activity event on a repository. The repo and payload
// shapes vary per event type and are passed through undecoded.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Actor     *User           `json:"actor,omitempty"`
	Repo      json.RawMessage `json:"repo,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Public    bool            `json:"public"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
}

// Commit represents a commit on a repository. The nested commit object and
// parent list are passed through undecoded.
type Commit struct {
	SHA         string          `json:"sha"`
	NodeID      string          `json:"node_id,omitempty"`
	Commit      json.RawMessage `json:"commit"`
	URL         string          `json:"url,omitempty"`
	HTMLURL     string          `json:"html_url,omitempty"`
	CommentsURL string          `json:"comments_url,omitempty"`
	Author      *User           `json:"author,omitempty"`
	Committer   *User           `json:"committer,omitempty"`
	Parents     json.RawMessage `json:"parents,omitempty"`
}

// Issue represents an issue on a repository.
type Issue struct {
	ID                int64           `json:"id"`
	Number            int             `json:"number"`
	Title             string          `json:"title"`
	Body              string          `json:"body,omitempty"`
	State             string          `json:"state"`
	Locked            bool            `json:"locked"`
	User              *User           `json:"user,omitempty"`
	Assignee          *User           `json:"assignee,omitempty"`
	Assignees         []User          `json:"assignees,omitempty"`
	Labels            json.RawMessage `json:"labels,omitempty"`
	Milestone         json.RawMessage `json:"milestone,omitempty"`
	Comments          int             `json:"comments"`
	AuthorAssociation string          `json:"author_association,omitempty"`
	CreatedAt         *time.Time      `json:"created_at,omitempty"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
	ClosedAt          *time.Time      `json:"closed_at,omitempty"`
}

// PullRequest represents a pull request on a repository.
type PullRequest struct {
	ID                 int64           `json:"id"`
	Number             int             `json:"number"`
	Title              string          `json:"title"`
	Body               string          `json:"body,omitempty"`
	State              string          `json:"state"`
	Locked             bool            `json:"locked"`
	User               *User           `json:"user,omitempty"`
	Assignee           *User           `json:"assignee,omitempty"`
	Assignees          []User          `json:"assignees,omitempty"`
	RequestedReviewers []User          `json:"requested_reviewers,omitempty"`
	Labels             json.RawMessage `json:"labels,omitempty"`
	Milestone          json.RawMessage `json:"milestone,omitempty"`
	Comments           int             `json:"comments"`
	ReviewComments     int             `json:"review_comments"`
	Commits            int             `json:"commits"`
	Additions          int             `json:"additions"`
	Deletions          int             `json:"deletions"`
	ChangedFiles       int             `json:"changed_files"`
	MergeCommitSHA     string          `json:"merge_commit_sha,omitempty"`
	AuthorAssociation  string          `json:"author_association,omitempty"`
	CreatedAt          *time.Time      `json:"created_at,omitempty"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
	ClosedAt           *time.Time      `json:"closed_at,omitempty"`
	MergedAt           *time.Time      `json:"merged_at,omitempty"`
}

// searchResult is the envelope returned by the GitHub search endpoints.
type searchResult[T any] struct {
	TotalCount int  `json:"total_count"`
	Items      []T  `json:"items"`
	Incomplete bool `json:"incomplete_results"`
}
