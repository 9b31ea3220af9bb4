package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix      = "user:%s"
	postKeyPrefix      = "post:%d"
	communityKeyPrefix = "community:%s:posts:%s"
)

// communitySorts enumerates every sort variant a community feed is cached
// under, so invalidation can clear them all.
var communitySorts = []string{"new", "top"}

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
	ListTTL = 1 * time.Minute
)

// UserKey returns the cache key for a user profile, keyed by username since
// that is how the actor identity addresses users.
func UserKey(username string) string {
	return fmt.Sprintf(userKeyPrefix, username)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// CommunityPostsKey returns the cache key for the first page of a community
// feed under the given sort.
func CommunityPostsKey(community, sort string) string {
	return fmt.Sprintf(communityKeyPrefix, community, sort)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, username string) {
	Invalidate(ctx, UserKey(username))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateCommunityPosts(ctx context.Context, community string) {
	for _, sort := range communitySorts {
		Invalidate(ctx, CommunityPostsKey(community, sort))
	}
}
