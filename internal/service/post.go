package service

import (
	"context"
	"encoding/json"
	"mime/multipart"

	"github.com/BloggingApp/blog-api/internal/dto"
	"github.com/BloggingApp/blog-api/internal/model"
	"github.com/BloggingApp/blog-api/internal/rabbitmq"
	"github.com/BloggingApp/blog-api/internal/repository"
	"github.com/BloggingApp/blog-api/internal/repository/redisrepo"
	"github.com/BloggingApp/blog-api/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type postService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	mq       Publisher
	uploader storage.Uploader
}

func newPostService(logger *zap.Logger, repo *repository.Repository, mq Publisher, uploader storage.Uploader) Post {
	return &postService{
		logger: logger,
		repo: repo,
		mq: mq,
		uploader: uploader,
	}
}

func (s *postService) Create(ctx context.Context, authorID primitive.ObjectID, input dto.CreatePostRequest, fileHeader *multipart.FileHeader) (*model.Post, error) {
	author, err := s.repo.Mongo.User.FindByID(ctx, authorID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from mongo: %s", authorID.Hex(), err.Error())
		return nil, ErrInternal
	}

	if author.IsBlocked {
		return nil, ErrAccountBlocked
	}

	categoryID, err := primitive.ObjectIDFromHex(input.Category)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.repo.Mongo.Category.FindByID(ctx, categoryID); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCategoryNotFound
		}

		s.logger.Sugar().Errorf("failed to get category(%s) from mongo: %s", categoryID.Hex(), err.Error())
		return nil, ErrInternal
	}

	photoURL := ""
	if fileHeader != nil {
		photoURL, err = s.uploader.Upload(ctx, fileHeader)
		if err != nil {
			s.logger.Sugar().Errorf("failed to upload post photo for user(%s): %s", authorID.Hex(), err.Error())
			return nil, ErrInternal
		}
	}

	post := model.Post{
		Title: input.Title,
		Description: input.Description,
		Category: categoryID,
		User: authorID,
		Photo: photoURL,
	}
	createdPost, err := s.repo.Mongo.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post in mongo: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Mongo.User.AddToSet(ctx, authorID, "posts", createdPost.ID); err != nil {
		s.logger.Sugar().Errorf("failed to add post(%s) to user(%s): %s", createdPost.ID.Hex(), authorID.Hex(), err.Error())
		return nil, ErrInternal
	}
	s.invalidateUserCache(ctx, authorID)

	s.publishNewPostEvent(createdPost)

	return createdPost, nil
}

// FindAllFor lists every post except those whose author has the requester
// in their blocked set; blocked posts are dropped silently.
func (s *postService) FindAllFor(ctx context.Context, requesterID primitive.ObjectID) ([]*dto.PostView, error) {
	posts, err := s.repo.Mongo.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get posts from mongo: %s", err.Error())
		return nil, ErrInternal
	}

	blockedSets := make(map[primitive.ObjectID][]primitive.ObjectID)
	for _, post := range posts {
		if _, seen := blockedSets[post.User]; seen {
			continue
		}

		owner, err := s.repo.Mongo.User.FindByID(ctx, post.User)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				s.logger.Sugar().Errorf("failed to get user(%s) from mongo: %s", post.User.Hex(), err.Error())
			}
			blockedSets[post.User] = nil
			continue
		}
		blockedSets[post.User] = owner.Blocked
	}

	return dto.NewPostViews(visibleTo(requesterID, posts, blockedSets)), nil
}

// visibleTo drops posts whose owner has blocked the requester. Pure
// membership checks over the pre-fetched blocked sets.
func visibleTo(requesterID primitive.ObjectID, posts []model.Post, blockedSets map[primitive.ObjectID][]primitive.ObjectID) []model.Post {
	visible := make([]model.Post, 0, len(posts))
	for _, post := range posts {
		if model.ContainsID(blockedSets[post.User], requesterID) {
			continue
		}
		visible = append(visible, post)
	}
	return visible
}

// GetByID returns a single post and records the view: the viewer goes into
// num_views once; repeat views are a silent no-op.
func (s *postService) GetByID(ctx context.Context, viewerID, postID primitive.ObjectID) (*dto.PostView, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.ViewedBy(viewerID) {
		if err := s.repo.Mongo.Post.AddToSet(ctx, postID, "num_views", viewerID); err != nil {
			s.logger.Sugar().Errorf("failed to add view(%s) to post(%s): %s", viewerID.Hex(), postID.Hex(), err.Error())
			return nil, ErrInternal
		}
		post.NumViews = append(post.NumViews, viewerID)
	}

	return dto.NewPostView(*post), nil
}

func (s *postService) Update(ctx context.Context, requesterID, postID primitive.ObjectID, input dto.UpdatePostRequest, fileHeader *multipart.FileHeader) (*dto.PostView, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.User != requesterID {
		return nil, ErrNotOwner
	}

	updates := bson.M{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*input.Category)
		if err != nil {
			return nil, ErrCategoryNotFound
		}
		updates["category"] = categoryID
	}
	if fileHeader != nil {
		photoURL, err := s.uploader.Upload(ctx, fileHeader)
		if err != nil {
			s.logger.Sugar().Errorf("failed to upload post photo for user(%s): %s", requesterID.Hex(), err.Error())
			return nil, ErrInternal
		}
		updates["photo"] = photoURL
	}

	if len(updates) > 0 {
		if err := s.repo.Mongo.Post.UpdateByID(ctx, postID, updates); err != nil {
			s.logger.Sugar().Errorf("failed to update post(%s) in mongo: %s", postID.Hex(), err.Error())
			return nil, ErrInternal
		}
	}

	updated, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return dto.NewPostView(*updated), nil
}

func (s *postService) Delete(ctx context.Context, requesterID, postID primitive.ObjectID) error {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.User != requesterID {
		return ErrNotOwner
	}

	if err := s.repo.Mongo.Post.DeleteByID(ctx, postID); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s) from mongo: %s", postID.Hex(), err.Error())
		return ErrInternal
	}
	if err := s.repo.Mongo.User.PullFromSet(ctx, post.User, "posts", postID); err != nil {
		s.logger.Sugar().Errorf("failed to pull post(%s) from user(%s): %s", postID.Hex(), post.User.Hex(), err.Error())
		return ErrInternal
	}
	s.invalidateUserCache(ctx, post.User)

	return nil
}

// ToggleLike likes the post, or removes the like when it is already there.
// Pure toggle: removing a like never re-adds anything, and the dislikes set
// is left untouched on purpose.
func (s *postService) ToggleLike(ctx context.Context, userID, postID primitive.ObjectID) (*dto.PostView, error) {
	return s.toggleReaction(ctx, userID, postID, "likes")
}

// ToggleDislike mirrors ToggleLike over the dislikes set, independent of
// the likes set.
func (s *postService) ToggleDislike(ctx context.Context, userID, postID primitive.ObjectID) (*dto.PostView, error) {
	return s.toggleReaction(ctx, userID, postID, "dis_likes")
}

func (s *postService) toggleReaction(ctx context.Context, userID, postID primitive.ObjectID, field string) (*dto.PostView, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	var present bool
	switch field {
	case "likes":
		present = post.LikedBy(userID)
	case "dis_likes":
		present = post.DislikedBy(userID)
	}

	if present {
		if err := s.repo.Mongo.Post.PullFromSet(ctx, postID, field, userID); err != nil {
			s.logger.Sugar().Errorf("failed to pull %s(%s) from post(%s): %s", field, userID.Hex(), postID.Hex(), err.Error())
			return nil, ErrInternal
		}
	} else {
		if err := s.repo.Mongo.Post.AddToSet(ctx, postID, field, userID); err != nil {
			s.logger.Sugar().Errorf("failed to add %s(%s) to post(%s): %s", field, userID.Hex(), postID.Hex(), err.Error())
			return nil, ErrInternal
		}
	}

	updated, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return dto.NewPostView(*updated), nil
}

func (s *postService) findPost(ctx context.Context, postID primitive.ObjectID) (*model.Post, error) {
	post, err := s.repo.Mongo.Post.FindByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to get post(%s) from mongo: %s", postID.Hex(), err.Error())
		return nil, ErrInternal
	}
	return post, nil
}

func (s *postService) invalidateUserCache(ctx context.Context, id primitive.ObjectID) {
	if err := s.repo.Redis.Del(ctx, redisrepo.UserKey(id.Hex())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate user cache key(%s): %s", id.Hex(), err.Error())
	}
}

func (s *postService) publishNewPostEvent(post *model.Post) {
	queueData, err := json.Marshal(&dto.NewPostEvent{
		PostID: post.ID.Hex(),
		AuthorID: post.User.Hex(),
		Title: post.Title,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal json: %s", err.Error())
		return
	}

	if err := s.mq.Publish(rabbitmq.NEW_POSTS_QUEUE, queueData); err != nil {
		s.logger.Sugar().Errorf("failed to publish to rabbitmq queue(%s): %s", rabbitmq.NEW_POSTS_QUEUE, err.Error())
	}
}
