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

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

const booksCollection = "books"

type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(booksCollection)}
}

type mongoFeedback struct {
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"created_at"`
}

type mongoBook struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Author        string             `bson:"author"`
	StockQuantity int                `bson:"stock_quantity"`
	Recommended   bool               `bson:"recommended"`
	ImageURL      string             `bson:"image_url"`
	Description   string             `bson:"description"`
	Feedback      []mongoFeedback    `bson:"feedback"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// Create inserts a new book document and returns it with the generated id.
func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoBook(book)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return toDomainBook(doc), nil
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBook
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	return toDomainBook(mb), nil
}

func (r *BookRepository) FindAll(ctx context.Context) ([]*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer cur.Close(ctx)

	books := []*domain.Book{}
	for cur.Next(ctx) {
		var mb mongoBook
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}
		books = append(books, toDomainBook(mb))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// UpdateByID applies the non-nil patch fields in a single atomic $set and
// returns the updated document.
func (r *BookRepository) UpdateByID(ctx context.Context, id string, patch ports.BookPatch) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.StockQuantity != nil {
		set["stock_quantity"] = *patch.StockQuantity
	}
	if patch.Recommended != nil {
		set["recommended"] = *patch.Recommended
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBook
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("update book: %w", err)
	}
	return toDomainBook(mb), nil
}

// AppendFeedback atomically pushes one feedback entry and returns the
// updated document.
func (r *BookRepository) AppendFeedback(ctx context.Context, id string, fb domain.Feedback) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBook
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"feedback": mongoFeedback{Content: fb.Content, CreatedAt: fb.CreatedAt}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("append feedback: %w", err)
	}
	return toDomainBook(mb), nil
}

func (r *BookRepository) DeleteByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBook
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("delete book: %w", err)
	}
	return toDomainBook(mb), nil
}

// EnsureIndexes creates necessary indexes on the books collection.
func (r *BookRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "recommended", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toMongoBook(b *domain.Book) mongoBook {
	feedback := make([]mongoFeedback, len(b.Feedback))
	for i, fb := range b.Feedback {
		feedback[i] = mongoFeedback{Content: fb.Content, CreatedAt: fb.CreatedAt}
	}
	return mongoBook{
		Title:         b.Title,
		Author:        b.Author,
		StockQuantity: b.StockQuantity,
		Recommended:   b.Recommended,
		ImageURL:      b.ImageURL,
		Description:   b.Description,
		Feedback:      feedback,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func toDomainBook(mb mongoBook) *domain.Book {
	feedback := make([]domain.Feedback, len(mb.Feedback))
	for i, fb := range mb.Feedback {
		feedback[i] = domain.Feedback{Content: fb.Content, CreatedAt: fb.CreatedAt}
	}
	return &domain.Book{
		ID:            mb.ID.Hex(),
		Title:         mb.Title,
		Author:        mb.Author,
		StockQuantity: mb.StockQuantity,
		Recommended:   mb.Recommended,
		ImageURL:      mb.ImageURL,
		Description:   mb.Description,
		Feedback:      feedback,
		CreatedAt:     mb.CreatedAt,
		UpdatedAt:     mb.UpdatedAt,
	}
}
