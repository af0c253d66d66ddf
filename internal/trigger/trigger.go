// Package trigger extracts the user's actual request from GitHub event bodies.
//
// CI workflows invoke the agent when a trigger phrase (typically an
// at-mention such as "@claude") appears in a comment, issue, or pull request
// body. The surrounding conversation is noise; the agent should only see the
// text the user typed after the phrase.
package trigger

import (
	"regexp"
	"strings"
)

// DefaultRequest is the fallback returned when no usable request text can be
// extracted from the triggering event.
const DefaultRequest = "Please analyze the context and help with this request."

// ExtractUserRequest returns the text following the first occurrence of
// triggerPhrase in body, trimmed of surrounding whitespace.
//
// The phrase is matched literally (regex metacharacters in it carry no
// meaning), case-insensitively, and anywhere in the body. The captured tail
// spans line breaks, so multi-line requests survive intact. The second
// return value is false when the body is empty, the phrase never occurs, or
// nothing but whitespace follows it.
func ExtractUserRequest(body, triggerPhrase string) (string, bool) {
	if body == "" {
		return "", false
	}

	// (?is) makes the match case-insensitive and lets "." cross newlines.
	re, err := regexp.Compile(`(?is)` + regexp.QuoteMeta(triggerPhrase) + `(.*)`)
	if err != nil {
		return "", false
	}

	m := re.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}

	request := strings.TrimSpace(m[1])
	if request == "" {
		return "", false
	}
	return request, true
}

// ExtractFromEvent selects the relevant body field for the event and applies
// ExtractUserRequest to it. It is total: unknown event names, missing body
// fields, and failed extractions all yield DefaultRequest.
func ExtractFromEvent(evt EventContext, triggerPhrase string) string {
	var body string
	switch evt.EventName {
	case EventIssueComment, EventPullRequestReviewComment, EventPullRequestReview:
		body = evt.CommentBody
	case EventIssues:
		body = evt.IssueBody
	case EventPullRequest, EventPullRequestTarget:
		body = evt.PRBody
	default:
		return DefaultRequest
	}

	if request, ok := ExtractUserRequest(body, triggerPhrase); ok {
		return request
	}
	return DefaultRequest
}
