package service

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"testing"
	"time"

	"github.com/BloggingApp/blog-api/internal/model"
	"github.com/BloggingApp/blog-api/internal/repository"
	"github.com/BloggingApp/blog-api/internal/repository/mongodb"
	"github.com/BloggingApp/blog-api/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// In-memory stand-ins for the mongo repositories, faithful to the real
// ones: $addToSet semantics, mongo.ErrNoDocuments on missing records.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user model.User) (*model.User, error) {
	user.ID = primitive.NewObjectID()
	user.Role = model.RoleGuest
	user.Plan = model.PlanFree
	user.UserAward = model.AwardBronze
	user.Viewers = []primitive.ObjectID{}
	user.Followers = []primitive.ObjectID{}
	user.Following = []primitive.ObjectID{}
	user.Blocked = []primitive.ObjectID{}
	user.Posts = []primitive.ObjectID{}
	user.Comments = []primitive.ObjectID{}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	stored := user
	r.users[user.ID] = &stored
	return &user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateByID(_ context.Context, id primitive.ObjectID, updates bson.M) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for key, value := range updates {
		switch key {
		case "is_blocked":
			user.IsBlocked = value.(bool)
		case "user_award":
			user.UserAward = value.(string)
		case "email":
			user.Email = value.(string)
		case "firstname":
			user.Firstname = value.(string)
		case "lastname":
			user.Lastname = value.(string)
		case "password_hash":
			user.PasswordHash = value.(string)
		case "profile_photo":
			user.ProfilePhoto = value.(string)
		}
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) AddToSet(_ context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	set := r.set(user, field)
	if !model.ContainsID(*set, member) {
		*set = append(*set, member)
	}
	return nil
}

func (r *fakeUserRepo) PullFromSet(_ context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	set := r.set(user, field)
	filtered := (*set)[:0]
	for _, existing := range *set {
		if existing != member {
			filtered = append(filtered, existing)
		}
	}
	*set = filtered
	return nil
}

func (r *fakeUserRepo) set(user *model.User, field string) *[]primitive.ObjectID {
	switch field {
	case "viewers":
		return &user.Viewers
	case "followers":
		return &user.Followers
	case "following":
		return &user.Following
	case "blocked":
		return &user.Blocked
	case "posts":
		return &user.Posts
	case "comments":
		return &user.Comments
	}
	panic("unknown user set field: " + field)
}

func (r *fakeUserRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.users, id)
	return nil
}

type fakePostRepo struct {
	posts map[primitive.ObjectID]*model.Post
	order []primitive.ObjectID
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[primitive.ObjectID]*model.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post model.Post) (*model.Post, error) {
	post.ID = primitive.NewObjectID()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	post.UpdatedAt = time.Now()
	stored := post
	r.posts[post.ID] = &stored
	r.order = append(r.order, post.ID)
	return &post, nil
}

// put seeds a post directly, bypassing Create's defaults.
func (r *fakePostRepo) put(post model.Post) {
	stored := post
	r.posts[post.ID] = &stored
	r.order = append(r.order, post.ID)
}

func (r *fakePostRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) FindAll(_ context.Context) ([]model.Post, error) {
	posts := make([]model.Post, 0, len(r.order))
	for _, id := range r.order {
		if post, ok := r.posts[id]; ok {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (r *fakePostRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]model.Post, error) {
	var posts []model.Post
	for _, id := range r.order {
		if post, ok := r.posts[id]; ok && post.User == userID {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (r *fakePostRepo) UpdateByID(_ context.Context, id primitive.ObjectID, updates bson.M) error {
	post, ok := r.posts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for key, value := range updates {
		switch key {
		case "title":
			post.Title = value.(string)
		case "description":
			post.Description = value.(string)
		case "category":
			post.Category = value.(primitive.ObjectID)
		case "photo":
			post.Photo = value.(string)
		}
	}
	post.UpdatedAt = time.Now()
	return nil
}

func (r *fakePostRepo) AddToSet(_ context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error {
	post, ok := r.posts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	set := r.set(post, field)
	if !model.ContainsID(*set, member) {
		*set = append(*set, member)
	}
	return nil
}

func (r *fakePostRepo) PullFromSet(_ context.Context, id primitive.ObjectID, field string, member primitive.ObjectID) error {
	post, ok := r.posts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	set := r.set(post, field)
	filtered := (*set)[:0]
	for _, existing := range *set {
		if existing != member {
			filtered = append(filtered, existing)
		}
	}
	*set = filtered
	return nil
}

func (r *fakePostRepo) set(post *model.Post, field string) *[]primitive.ObjectID {
	switch field {
	case "num_views":
		return &post.NumViews
	case "likes":
		return &post.Likes
	case "dis_likes":
		return &post.DisLikes
	case "comments":
		return &post.Comments
	}
	panic("unknown post set field: " + field)
}

func (r *fakePostRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.posts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	for id, post := range r.posts {
		if post.User == userID {
			delete(r.posts, id)
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories map[primitive.ObjectID]*model.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[primitive.ObjectID]*model.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category model.Category) (*model.Category, error) {
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	stored := category
	r.categories[category.ID] = &stored
	return &category, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0, len(r.categories))
	for _, category := range r.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) UpdateByID(_ context.Context, id primitive.ObjectID, updates bson.M) error {
	category, ok := r.categories[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if title, ok := updates["title"]; ok {
		category.Title = title.(string)
	}
	category.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCategoryRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.categories[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	for id, category := range r.categories {
		if category.User == userID {
			delete(r.categories, id)
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments map[primitive.ObjectID]*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[primitive.ObjectID]*model.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment model.Comment) (*model.Comment, error) {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()
	stored := comment
	r.comments[comment.ID] = &stored
	return &comment, nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) UpdateByID(_ context.Context, id primitive.ObjectID, updates bson.M) error {
	comment, ok := r.comments[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if description, ok := updates["description"]; ok {
		comment.Description = description.(string)
	}
	comment.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCommentRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.comments[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	for id, comment := range r.comments {
		if comment.User == userID {
			delete(r.comments, id)
		}
	}
	return nil
}

type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(valueJSON)
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string) *redis.StringCmd {
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var deleted int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			deleted++
		}
	}
	return redis.NewIntResult(deleted, nil)
}

type fakePublisher struct {
	published map[string][][]byte
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{published: make(map[string][][]byte)}
}

func (p *fakePublisher) Publish(queue string, body []byte) error {
	p.published[queue] = append(p.published[queue], body)
	return nil
}

type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, _ *multipart.FileHeader) (string, error) {
	return "https://cdn.example.com/blog-api/photo.jpg", nil
}

type testEnv struct {
	users      *fakeUserRepo
	posts      *fakePostRepo
	categories *fakeCategoryRepo
	comments   *fakeCommentRepo
	cache      *fakeCache
	mq         *fakePublisher
	services   *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users: newFakeUserRepo(),
		posts: newFakePostRepo(),
		categories: newFakeCategoryRepo(),
		comments: newFakeCommentRepo(),
		cache: newFakeCache(),
		mq: newFakePublisher(),
	}

	repo := &repository.Repository{
		Mongo: &mongodb.MongoRepository{
			User: env.users,
			Post: env.posts,
			Category: env.categories,
			Comment: env.comments,
		},
		Redis: &redisrepo.RedisRepository{Default: env.cache},
	}

	env.services = New(zap.NewNop(), repo, env.mq, fakeUploader{})
	return env
}

func (env *testEnv) seedUser(t *testing.T) *model.User {
	t.Helper()

	user := &model.User{
		ID: primitive.NewObjectID(),
		Firstname: "Jordan",
		Lastname: "Reed",
		Email: primitive.NewObjectID().Hex() + "@example.com",
		Viewers: []primitive.ObjectID{},
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
		Blocked: []primitive.ObjectID{},
		Posts: []primitive.ObjectID{},
		Comments: []primitive.ObjectID{},
		Role: model.RoleGuest,
		Plan: model.PlanFree,
		UserAward: model.AwardBronze,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	env.users.users[user.ID] = user
	return user
}

func (env *testEnv) seedPost(t *testing.T, userID primitive.ObjectID, createdAt time.Time) *model.Post {
	t.Helper()

	post := model.Post{
		ID: primitive.NewObjectID(),
		Title: "a post",
		Description: "some words",
		User: userID,
		NumViews: []primitive.ObjectID{},
		Likes: []primitive.ObjectID{},
		DisLikes: []primitive.ObjectID{},
		Comments: []primitive.ObjectID{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	env.posts.put(post)
	env.users.users[userID].Posts = append(env.users.users[userID].Posts, post.ID)
	return &post
}
