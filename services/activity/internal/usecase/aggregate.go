package usecase

import (
	"fmt"
	"sort"

	"socialhub/services/activity/internal/entity"
)

const (
	// ActivityPostLimit bounds how many of the subject's posts are scanned.
	ActivityPostLimit = 40
	// ActivityMaxEvents bounds the merged result.
	ActivityMaxEvents = 60

	SnippetLength    = 140
	FollowSnippet    = "Started following you"
	keyCommentLength = 30
)

type TimestampPolicy string

const (
	// TimestampsApproximate stamps likes with the post's update time and
	// follows with the subject's update time.
	TimestampsApproximate TimestampPolicy = "approximate"
	// TimestampsExact uses the recorded like and follow times.
	TimestampsExact TimestampPolicy = "exact"
)

func ParseTimestampPolicy(s string) TimestampPolicy {
	if TimestampPolicy(s) == TimestampsExact {
		return TimestampsExact
	}
	return TimestampsApproximate
}

// Aggregate merges like, comment and follow events for subject, newest
// first, capped at ActivityMaxEvents. Events whose actor is the subject are
// dropped. Equal timestamps keep the order likes, comments, follows.
func Aggregate(subject entity.Subject, posts []entity.Post, followers []entity.Follower, policy TimestampPolicy) []entity.Notification {
	events := make([]entity.Notification, 0)

	for _, post := range posts {
		postID := post.ID
		snippet := Snippet(post.Content)
		// newest liker first so ties on post.UpdatedAt favour the latest like
		for i := len(post.Likers) - 1; i >= 0; i-- {
			liker := post.Likers[i]
			if liker.ID == subject.ID {
				continue
			}
			at := post.UpdatedAt
			if policy == TimestampsExact {
				at = liker.LikedAt
			}
			events = append(events, entity.Notification{
				Type:        entity.KindLike,
				Actor:       liker.Profile,
				PostID:      &postID,
				PostContent: snippet,
				CreatedAt:   at,
			})
		}
	}

	for _, post := range posts {
		postID := post.ID
		snippet := Snippet(post.Content)
		for _, comment := range post.Comments {
			if comment.Author.ID == subject.ID {
				continue
			}
			events = append(events, entity.Notification{
				Type:        entity.KindComment,
				Actor:       comment.Author,
				PostID:      &postID,
				PostContent: snippet,
				CommentText: comment.Content,
				CreatedAt:   comment.CreatedAt,
			})
		}
	}

	for _, follower := range followers {
		if follower.ID == subject.ID {
			continue
		}
		at := subject.UpdatedAt
		if policy == TimestampsExact {
			at = follower.FollowedAt
		}
		events = append(events, entity.Notification{
			Type:        entity.KindFollow,
			Actor:       follower.Profile,
			PostContent: FollowSnippet,
			CreatedAt:   at,
		})
	}

	events = Merge(events, ActivityMaxEvents)
	for i := range events {
		events[i].Key = Key(events[i])
	}
	return events
}

// Merge stable-sorts events newest first and keeps at most max of them.
func Merge(events []entity.Notification, max int) []entity.Notification {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	if len(events) > max {
		events = events[:max]
	}
	return events
}

func Snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= SnippetLength {
		return content
	}
	return string(runes[:SnippetLength])
}

// Key identifies a notification for dismissal. Follow keys carry no
// timestamp since a follower produces at most one follow event.
func Key(n entity.Notification) string {
	if n.Type == entity.KindFollow {
		return fmt.Sprintf("%s:%s", n.Type, n.Actor.ID)
	}
	postPart := "none"
	if n.PostID != nil {
		postPart = *n.PostID
	}
	commentPart := "no-comment"
	if n.CommentText != "" {
		runes := []rune(n.CommentText)
		if len(runes) > keyCommentLength {
			runes = runes[:keyCommentLength]
		}
		commentPart = string(runes)
	}
	return fmt.Sprintf("%s:%s:%s:%s:%d", n.Type, n.Actor.ID, postPart, commentPart, n.CreatedAt.UTC().UnixNano())
}

func filterKind(events []entity.Notification, kind entity.Kind) []entity.Notification {
	filtered := make([]entity.Notification, 0, len(events))
	for _, e := range events {
		if e.Type == kind {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
