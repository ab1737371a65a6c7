package controllers

import "github.com/mlanda98/social-media/models"

func userToResponse(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar(),
		CreatedAt: user.CreatedAt,
	}
}

func userToFollowUser(user *models.User) FollowUserDTO {
	return FollowUserDTO{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.Avatar(),
	}
}

func commentToResponse(comment *models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		Content:   comment.Body,
		Author:    comment.Author.Username,
		CreatedAt: comment.CreatedAt,
	}
}

func postToFeedResponse(post *models.Post) FeedPostDTO {
	comments := make([]CommentDTO, len(post.Comments))
	for i := range post.Comments {
		comments[i] = commentToResponse(&post.Comments[i])
	}
	return FeedPostDTO{
		ID:         post.ID,
		Content:    post.Content,
		Author:     post.Author.Username,
		LikesCount: len(post.Likes),
		Comments:   comments,
		CreatedAt:  post.CreatedAt,
	}
}

func postsToFeedResponse(posts *[]models.Post) []FeedPostDTO {
	feed := make([]FeedPostDTO, len(*posts))
	for i := range *posts {
		feed[i] = postToFeedResponse(&(*posts)[i])
	}
	return feed
}

func followToResponse(follow *models.Follow) FollowDTO {
	return FollowDTO{
		ID:         follow.ID,
		FollowerID: follow.FollowerID,
		FollowedID: follow.FollowedID,
		Status:     follow.Status,
		CreatedAt:  follow.CreatedAt,
	}
}

// followsToEdgeResponse renders follower/following/pending lists. The
// counterpart picker decides which side of the edge is shown.
func followsToEdgeResponse(follows *[]models.Follow, counterpart func(*models.Follow) *models.User) []FollowEdgeDTO {
	edges := make([]FollowEdgeDTO, len(*follows))
	for i := range *follows {
		f := &(*follows)[i]
		edges[i] = FollowEdgeDTO{
			FollowID:  f.ID,
			User:      userToFollowUser(counterpart(f)),
			Status:    f.Status,
			CreatedAt: f.CreatedAt,
		}
	}
	return edges
}
