package service

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"os"
	"time"

	"github.com/BloggingApp/blog-api/internal/dto"
	"github.com/BloggingApp/blog-api/internal/model"
	"github.com/BloggingApp/blog-api/internal/rabbitmq"
	"github.com/BloggingApp/blog-api/internal/repository"
	"github.com/BloggingApp/blog-api/internal/repository/redisrepo"
	"github.com/BloggingApp/blog-api/internal/storage"
	"github.com/BloggingApp/blog-api/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost   = 10
	userCacheTTL = time.Minute

	accessTokenExpiry  = time.Hour * 3
	refreshTokenExpiry = time.Hour * 24 * 14
)

type userService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	mq       Publisher
	uploader storage.Uploader
}

func newUserService(logger *zap.Logger, repo *repository.Repository, mq Publisher, uploader storage.Uploader) User {
	return &userService{
		logger: logger,
		repo: repo,
		mq: mq,
		uploader: uploader,
	}
}

func (s *userService) Register(ctx context.Context, input dto.RegisterRequest) (*model.User, error) {
	_, err := s.repo.Mongo.User.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != mongo.ErrNoDocuments {
		s.logger.Sugar().Errorf("failed to look up email(%s) in mongo: %s", input.Email, err.Error())
		return nil, ErrInternal
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate password hash: %s", err.Error())
		return nil, ErrInternal
	}

	user := model.User{
		Firstname: input.Firstname,
		Lastname: input.Lastname,
		Email: input.Email,
		PasswordHash: string(passwordHash),
	}
	createdUser, err := s.repo.Mongo.User.Create(ctx, user)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user in mongo: %s", err.Error())
		return nil, ErrInternal
	}

	return createdUser, nil
}

func (s *userService) Login(ctx context.Context, input dto.LoginRequest) (*model.User, *utils.JWTPair, error) {
	user, err := s.repo.Mongo.User.FindByEmail(ctx, input.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, ErrInvalidCredentials
		}

		s.logger.Sugar().Errorf("failed to get user(email: %s) from mongo: %s", input.Email, err.Error())
		return nil, nil, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	jwtPair, err := s.generateJWTPair(user)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate jwt pair: %s", err.Error())
		return nil, nil, ErrInternal
	}

	return user, jwtPair, nil
}

func (s *userService) RefreshTokens(ctx context.Context, refreshToken string) (*utils.JWTPair, error) {
	claims, err := utils.DecodeJWT(refreshToken, []byte(os.Getenv("REFRESH_SECRET")))
	if err != nil {
		return nil, ErrInvalidToken
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(idString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.repo.Mongo.User.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}

	jwtPair, err := s.generateJWTPair(user)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate jwt pair: %s", err.Error())
		return nil, ErrInternal
	}

	return jwtPair, nil
}

func (s *userService) generateJWTPair(user *model.User) (*utils.JWTPair, error) {
	return utils.GenerateJWTPair(utils.GenerateJWTPairDto{
		Method: jwt.SigningMethodHS256,
		AccessSecret: []byte(os.Getenv("ACCESS_SECRET")),
		AccessClaims: jwt.MapClaims{
			"id": user.ID.Hex(),
			"isAdmin": user.IsAdmin,
		},
		AccessExpiry: accessTokenExpiry,
		RefreshSecret: []byte(os.Getenv("REFRESH_SECRET")),
		RefreshClaims: jwt.MapClaims{
			"id": user.ID.Hex(),
		},
		RefreshExpiry: refreshTokenExpiry,
	})
}

func (s *userService) FindAll(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.Mongo.User.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get users from mongo: %s", err.Error())
		return nil, ErrInternal
	}
	return users, nil
}

// FindByID resolves a user going through the redis cache first. It is the
// lookup the auth middleware runs on every request, so no activity
// evaluation happens here.
func (s *userService) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	cached, err := redisrepo.Get[model.User](s.repo.Redis.Default, ctx, redisrepo.UserKey(id.Hex()))
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get user(%s) from redis: %s", id.Hex(), err.Error())
	}

	user, err := s.repo.Mongo.User.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.SetJSON(ctx, redisrepo.UserKey(id.Hex()), user, userCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to cache user(%s) in redis: %s", id.Hex(), err.Error())
	}

	return user, nil
}

// GetProfile fetches a single user and runs the activity/award evaluation:
// the inactivity flag and award tier are recomputed from the post history
// and written back before the profile is returned. Deliberately, this also
// lifts an admin block when the user has posted within the window.
func (s *userService) GetProfile(ctx context.Context, id primitive.ObjectID) (*dto.UserProfile, error) {
	user, err := s.repo.Mongo.User.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Mongo.Post.FindByUser(ctx, id)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get posts of user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}

	report := evaluateActivity(posts, user.UserAward, time.Now())

	updates := bson.M{}
	if report.HasPosts && user.IsBlocked != report.IsInactive {
		updates["is_blocked"] = report.IsInactive
		user.IsBlocked = report.IsInactive
	}
	if report.Award != user.UserAward {
		updates["user_award"] = report.Award
		user.UserAward = report.Award
	}
	if len(updates) > 0 {
		if err := s.repo.Mongo.User.UpdateByID(ctx, id, updates); err != nil {
			s.logger.Sugar().Errorf("failed to update activity of user(%s) in mongo: %s", id.Hex(), err.Error())
			return nil, ErrInternal
		}
		s.invalidateCache(ctx, id)
	}

	profile := dto.NewUserProfile(*user)
	profile.PostCount = len(posts)
	profile.LastPostDate = report.LastPostDate
	profile.IsInactive = report.IsInactive
	profile.LastActive = report.LastActive

	return profile, nil
}

func (s *userService) Update(ctx context.Context, id primitive.ObjectID, input dto.UpdateUserRequest) (*model.User, error) {
	updates := bson.M{}
	if input.Email != nil {
		if _, err := s.repo.Mongo.User.FindByEmail(ctx, *input.Email); err == nil {
			return nil, ErrEmailTaken
		} else if err != mongo.ErrNoDocuments {
			s.logger.Sugar().Errorf("failed to look up email(%s) in mongo: %s", *input.Email, err.Error())
			return nil, ErrInternal
		}
		updates["email"] = *input.Email
	}
	if input.Firstname != nil {
		updates["firstname"] = *input.Firstname
	}
	if input.Lastname != nil {
		updates["lastname"] = *input.Lastname
	}

	if len(updates) > 0 {
		if err := s.repo.Mongo.User.UpdateByID(ctx, id, updates); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrUserNotFound
			}

			s.logger.Sugar().Errorf("failed to update user(%s) in mongo: %s", id.Hex(), err.Error())
			return nil, ErrInternal
		}
		s.invalidateCache(ctx, id)
	}

	user, err := s.repo.Mongo.User.FindByID(ctx, id)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, id primitive.ObjectID, password string) error {
	if password == "" {
		return ErrInvalidPassword
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate password hash: %s", err.Error())
		return ErrInternal
	}

	if err := s.repo.Mongo.User.UpdateByID(ctx, id, bson.M{"password_hash": string(passwordHash)}); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to update password of user(%s) in mongo: %s", id.Hex(), err.Error())
		return ErrInternal
	}
	s.invalidateCache(ctx, id)

	return nil
}

// Delete removes the user and cascades to everything they own: posts,
// comments and categories go first, the user record last.
func (s *userService) Delete(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user, err := s.repo.Mongo.User.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Mongo.Post.DeleteByUser(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete posts of user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	if err := s.repo.Mongo.Comment.DeleteByUser(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete comments of user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	if err := s.repo.Mongo.Category.DeleteByUser(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete categories of user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	if err := s.repo.Mongo.User.DeleteByID(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	s.invalidateCache(ctx, id)

	return user, nil
}

func (s *userService) SetProfilePhoto(ctx context.Context, id primitive.ObjectID, fileHeader *multipart.FileHeader) error {
	user, err := s.repo.Mongo.User.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from mongo: %s", id.Hex(), err.Error())
		return ErrInternal
	}

	if user.IsBlocked {
		return ErrAccountBlocked
	}

	photoURL, err := s.uploader.Upload(ctx, fileHeader)
	if err != nil {
		s.logger.Sugar().Errorf("failed to upload profile photo of user(%s): %s", id.Hex(), err.Error())
		return ErrInternal
	}

	if err := s.repo.Mongo.User.UpdateByID(ctx, id, bson.M{"profile_photo": photoURL}); err != nil {
		s.logger.Sugar().Errorf("failed to update profile photo of user(%s) in mongo: %s", id.Hex(), err.Error())
		return ErrInternal
	}
	s.invalidateCache(ctx, id)

	return nil
}

// ViewProfile records viewerID in the target's viewers set. A repeat view
// is a conflict, not a counter bump.
func (s *userService) ViewProfile(ctx context.Context, viewerID, targetID primitive.ObjectID) error {
	target, err := s.findForMutation(ctx, targetID)
	if err != nil {
		return err
	}

	if target.HasViewer(viewerID) {
		return ErrAlreadyViewed
	}

	if err := s.repo.Mongo.User.AddToSet(ctx, targetID, "viewers", viewerID); err != nil {
		s.logger.Sugar().Errorf("failed to add viewer(%s) to user(%s): %s", viewerID.Hex(), targetID.Hex(), err.Error())
		return ErrInternal
	}
	s.invalidateCache(ctx, targetID)

	return nil
}

// Follow inserts the edge on both sides: followerID into target.followers
// and targetID into follower.following. Each write is atomic on its own
// document; no transaction spans the two, so a crash in between can leave a
// one-directional edge.
func (s *userService) Follow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	target, err := s.findForMutation(ctx, targetID)
	if err != nil {
		return err
	}
	if _, err := s.findForMutation(ctx, followerID); err != nil {
		return err
	}

	if target.HasFollower(followerID) {
		return ErrAlreadyFollowing
	}

	if err := s.repo.Mongo.User.AddToSet(ctx, targetID, "followers", followerID); err != nil {
		s.logger.Sugar().Errorf("failed to add follower(%s) to user(%s): %s", followerID.Hex(), targetID.Hex(), err.Error())
		return ErrInternal
	}
	if err := s.repo.Mongo.User.AddToSet(ctx, followerID, "following", targetID); err != nil {
		s.logger.Sugar().Errorf("failed to add following(%s) to user(%s): %s", targetID.Hex(), followerID.Hex(), err.Error())
		return ErrInternal
	}
	s.invalidateCache(ctx, targetID, followerID)

	s.publishFollowEvent(followerID, targetID)

	return nil
}

func (s *userService) Unfollow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	target, err := s.findForMutation(ctx, targetID)
	if err != nil {
		return err
	}
	if _, err := s.findForMutation(ctx, followerID); err != nil {
		return err
	}

	if !target.HasFollower(followerID) {
		return ErrAlreadyUnfollowed
	}

	if err := s.repo.Mongo.User.PullFromSet(ctx, targetID, "followers", followerID); err != nil {
		s.logger.Sugar().Errorf("failed to pull follower(%s) from user(%s): %s", followerID.Hex(), targetID.Hex(), err.Error())
		return ErrInternal
	}
	if err := s.repo.Mongo.User.PullFromSet(ctx, followerID, "following", targetID); err != nil {
		s.logger.Sugar().Errorf("failed to pull following(%s) from user(%s): %s", targetID.Hex(), followerID.Hex(), err.Error())
		return ErrInternal
	}
	s.invalidateCache(ctx, targetID, followerID)

	return nil
}

// Block adds targetID to the blocker's blocked set. Single-document edit:
// the target's record is only read to confirm it exists.
func (s *userService) Block(ctx context.Context, blockerID, targetID primitive.ObjectID) error {
	blocker, err := s.findForMutation(ctx, blockerID)
	if err != nil {
		return err
	}
	if _, err := s.findForMutation(ctx, targetID); err != nil {
		return err
	}

	if blocker.HasBlocked(targetID) {
		return ErrAlreadyBlocked
	}

	if err := s.repo.Mongo.User.AddToSet(ctx, blockerID, "blocked", targetID); err != nil {
		s.logger.Sugar().Errorf("failed to add blocked(%s) to user(%s): %s", targetID.Hex(), blockerID.Hex(), err.Error())
		return ErrInternal
	}
	s.invalidateCache(ctx, blockerID)

	return nil
}

func (s *userService) Unblock(ctx context.Context, blockerID, targetID primitive.ObjectID) error {
	blocker, err := s.findForMutation(ctx, blockerID)
	if err != nil {
		return err
	}
	if _, err := s.findForMutation(ctx, targetID); err != nil {
		return err
	}

	if !blocker.HasBlocked(targetID) {
		return ErrNotBlocked
	}

	if err := s.repo.Mongo.User.PullFromSet(ctx, blockerID, "blocked", targetID); err != nil {
		s.logger.Sugar().Errorf("failed to pull blocked(%s) from user(%s): %s", targetID.Hex(), blockerID.Hex(), err.Error())
		return ErrInternal
	}
	s.invalidateCache(ctx, blockerID)

	return nil
}

func (s *userService) SetBlockedByAdmin(ctx context.Context, id primitive.ObjectID, blocked bool) error {
	if err := s.repo.Mongo.User.UpdateByID(ctx, id, bson.M{"is_blocked": blocked}); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to set is_blocked=%t on user(%s) in mongo: %s", blocked, id.Hex(), err.Error())
		return ErrInternal
	}
	s.invalidateCache(ctx, id)

	return nil
}

// findForMutation always reads mongo directly; relationship toggles must
// see the current sets, never a cached copy.
func (s *userService) findForMutation(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user, err := s.repo.Mongo.User.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	return user, nil
}

func (s *userService) invalidateCache(ctx context.Context, ids ...primitive.ObjectID) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, redisrepo.UserKey(id.Hex()))
	}
	if err := s.repo.Redis.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate user cache keys %v: %s", keys, err.Error())
	}
}

func (s *userService) publishFollowEvent(followerID, targetID primitive.ObjectID) {
	queueData, err := json.Marshal(&dto.FollowEvent{
		FollowerID: followerID.Hex(),
		UserID: targetID.Hex(),
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal json: %s", err.Error())
		return
	}

	if err := s.mq.Publish(rabbitmq.FOLLOWS_QUEUE, queueData); err != nil {
		s.logger.Sugar().Errorf("failed to publish to rabbitmq queue(%s): %s", rabbitmq.FOLLOWS_QUEUE, err.Error())
	}
}
