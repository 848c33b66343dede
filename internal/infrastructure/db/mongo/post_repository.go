package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devlink/social-api/internal/core/domain"
)

const postsCollection = "posts"

// PostRepository implements ports.PostRepository using MongoDB. Likes and
// comments live inside the post document; every conditional mutation folds
// its precondition into the update filter so it is applied atomically, and a
// failed match is disambiguated with one follow-up existence read purely to
// pick the right sentinel error.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	User     string             `bson:"user"`
	Text     string             `bson:"text"`
	Name     string             `bson:"name"`
	Avatar   string             `bson:"avatar"`
	Likes    []domain.Like      `bson:"likes"`
	Comments []domain.Comment   `bson:"comments"`
	Date     time.Time          `bson:"date"`
}

func (mp *mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:       mp.ID.Hex(),
		User:     mp.User,
		Text:     mp.Text,
		Name:     mp.Name,
		Avatar:   mp.Avatar,
		Likes:    mp.Likes,
		Comments: mp.Comments,
		Date:     mp.Date,
	}
}

func (r *PostRepository) Insert(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		User:     post.User,
		Text:     post.Text,
		Name:     post.Name,
		Avatar:   post.Avatar,
		Likes:    post.Likes,
		Comments: post.Comments,
		Date:     post.Date,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PostRepository) ListAll(ctx context.Context) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []*domain.Post{}
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) DeleteByAuthor(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return fmt.Errorf("delete posts by author: %w", err)
	}
	return nil
}

// PushLike prepends a like entry only when userID is absent from the likes
// list; the absence check is part of the filter, making the operation safe
// under concurrent likes of the same post.
func (r *PostRepository) PushLike(ctx context.Context, id, userID string) ([]domain.Like, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "likes.user": bson.M{"$ne": userID}}
	update := bson.M{"$push": bson.M{"likes": bson.M{
		"$each":     []domain.Like{{User: userID}},
		"$position": 0,
	}}}

	var mp mongoPost
	err = r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.resolveLikeConflict(ctx, oid, domain.ErrAlreadyLiked)
		}
		return nil, fmt.Errorf("push like: %w", err)
	}
	return mp.Likes, nil
}

// PullLike removes the one like entry for userID; presence is part of the
// filter.
func (r *PostRepository) PullLike(ctx context.Context, id, userID string) ([]domain.Like, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "likes.user": userID}
	update := bson.M{"$pull": bson.M{"likes": bson.M{"user": userID}}}

	var mp mongoPost
	err = r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.resolveLikeConflict(ctx, oid, domain.ErrNotLiked)
		}
		return nil, fmt.Errorf("pull like: %w", err)
	}
	return mp.Likes, nil
}

func (r *PostRepository) PushComment(ctx context.Context, id string, comment domain.Comment) ([]domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$push": bson.M{"comments": bson.M{
		"$each":     []domain.Comment{comment},
		"$position": 0,
	}}}

	var mp mongoPost
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("push comment: %w", err)
	}
	return mp.Comments, nil
}

func (r *PostRepository) PullComment(ctx context.Context, id, commentID string) ([]domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "comments.id": commentID}
	update := bson.M{"$pull": bson.M{"comments": bson.M{"id": commentID}}}

	var mp mongoPost
	err = r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if exists, eerr := r.exists(ctx, oid); eerr != nil {
				return nil, eerr
			} else if !exists {
				return nil, domain.ErrPostNotFound
			}
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("pull comment: %w", err)
	}
	return mp.Comments, nil
}

// resolveLikeConflict distinguishes a missing post from a failed like
// precondition after a conditional update matched nothing.
func (r *PostRepository) resolveLikeConflict(ctx context.Context, oid primitive.ObjectID, conflict error) error {
	exists, err := r.exists(ctx, oid)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPostNotFound
	}
	return conflict
}

func (r *PostRepository) exists(ctx context.Context, oid primitive.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("post lookup: %w", err)
	}
	return n > 0, nil
}

// EnsureIndexes creates the feed and author indexes.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "user", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
