package trigger

import (
	"encoding/json"
	"fmt"
	"os"
)

// GitHub workflow event names that can carry a trigger phrase.
const (
	EventIssueComment             = "issue_comment"
	EventPullRequestReviewComment = "pull_request_review_comment"
	EventPullRequestReview        = "pull_request_review"
	EventIssues                   = "issues"
	EventPullRequest              = "pull_request"
	EventPullRequestTarget        = "pull_request_target"
)

// EventContext carries the event name and the candidate body fields from a
// GitHub webhook payload. At most one body field is relevant per event name.
type EventContext struct {
	// EventName is the workflow event name (GITHUB_EVENT_NAME).
	EventName string
	// CommentBody is the comment or review body for comment-driven events.
	CommentBody string
	// IssueBody is the issue body for "issues" events.
	IssueBody string
	// PRBody is the pull request body for pull_request events.
	PRBody string
}

// eventPayload mirrors the subset of a GitHub webhook payload we read.
// Review events put the text under "review", comments under "comment".
type eventPayload struct {
	Comment *struct {
		Body string `json:"body"`
	} `json:"comment"`
	Review *struct {
		Body string `json:"body"`
	} `json:"review"`
	Issue *struct {
		Body string `json:"body"`
	} `json:"issue"`
	PullRequest *struct {
		Body string `json:"body"`
	} `json:"pull_request"`
}

// LoadEventContext reads the webhook payload file written by the runner
// (GITHUB_EVENT_PATH) and builds an EventContext for eventName.
func LoadEventContext(eventName, payloadPath string) (EventContext, error) {
	evt := EventContext{EventName: eventName}

	raw, err := os.ReadFile(payloadPath)
	if err != nil {
		return evt, fmt.Errorf("read event payload %q: %w", payloadPath, err)
	}

	var payload eventPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return evt, fmt.Errorf("decode event payload %q: %w", payloadPath, err)
	}

	if payload.Comment != nil {
		evt.CommentBody = payload.Comment.Body
	} else if payload.Review != nil {
		// pull_request_review carries the submitted review text instead.
		evt.CommentBody = payload.Review.Body
	}
	if payload.Issue != nil {
		evt.IssueBody = payload.Issue.Body
	}
	if payload.PullRequest != nil {
		evt.PRBody = payload.PullRequest.Body
	}
	return evt, nil
}
