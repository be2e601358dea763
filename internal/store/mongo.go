package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/snapshot-reflect/reflectbot/internal/model"
)

const (
	conversationsCollection = "conversations"
	statusCollection        = "status"
	statusDocType           = "current"

	connectTimeout = 10 * time.Second
)

// Mongo implements ConversationStore and StatusStore over MongoDB.
type Mongo struct {
	client        *mongo.Client
	conversations *mongo.Collection
	status        *mongo.Collection
}

// NewMongo connects to MongoDB and verifies the connection with a ping.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	db := client.Database(database)
	return &Mongo{
		client:        client,
		conversations: db.Collection(conversationsCollection),
		status:        db.Collection(statusCollection),
	}, nil
}

// Close disconnects the client.
func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping verifies the server is reachable.
func (s *Mongo) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Insert stores a new conversation record.
func (s *Mongo) Insert(ctx context.Context, conv *model.Conversation) error {
	if _, err := s.conversations.InsertOne(ctx, conv); err != nil {
		return fmt.Errorf("store: insert conversation: %w", err)
	}
	return nil
}

// FindByLastReply returns the conversations whose last reply id matches.
func (s *Mongo) FindByLastReply(ctx context.Context, replyID int64) ([]model.Conversation, error) {
	return s.find(ctx, bson.M{"last_reply_id": replyID})
}

// FindActiveBySender returns the active direct-message conversations for a
// sender.
func (s *Mongo) FindActiveBySender(ctx context.Context, senderID string) ([]model.Conversation, error) {
	return s.find(ctx, bson.M{
		"sender":  senderID,
		"channel": model.ChannelDirect,
		"active":  true,
	})
}

func (s *Mongo) find(ctx context.Context, filter bson.M) ([]model.Conversation, error) {
	cursor, err := s.conversations.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("store: find conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var convs []model.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, fmt.Errorf("store: decode conversations: %w", err)
	}
	return convs, nil
}

// Save writes the whole record back in one replace, keyed by image. A
// single whole-document write keeps the partial-update window as narrow as
// a non-transactional store allows.
func (s *Mongo) Save(ctx context.Context, conv *model.Conversation) error {
	conv.UpdatedAt = time.Now()
	res, err := s.conversations.ReplaceOne(ctx, bson.M{"image": conv.Image}, conv)
	if err != nil {
		return fmt.Errorf("store: save conversation: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("store: save conversation: no record for image %q", conv.Image)
	}
	return nil
}

// RetireBySender flags every direct-message conversation for the sender
// inactive, keeping the documents.
func (s *Mongo) RetireBySender(ctx context.Context, senderID string) error {
	_, err := s.conversations.UpdateMany(ctx,
		bson.M{"sender": senderID, "channel": model.ChannelDirect},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("store: retire conversations: %w", err)
	}
	return nil
}

// Watermarks loads the singleton status record. A missing record reads as
// zero watermarks so a fresh deployment starts from the beginning.
func (s *Mongo) Watermarks(ctx context.Context) (model.Watermarks, error) {
	var doc struct {
		Watermarks model.Watermarks `bson:"watermarks"`
	}
	err := s.status.FindOne(ctx, bson.M{"type": statusDocType}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Watermarks{}, nil
	}
	if err != nil {
		return model.Watermarks{}, fmt.Errorf("store: load status: %w", err)
	}
	return doc.Watermarks, nil
}

// SetLastMention advances the mention watermark.
func (s *Mongo) SetLastMention(ctx context.Context, id int64) error {
	return s.setWatermark(ctx, "watermarks.last_mention", id)
}

// SetLastDirectMessage advances the direct-message watermark.
func (s *Mongo) SetLastDirectMessage(ctx context.Context, id int64) error {
	return s.setWatermark(ctx, "watermarks.last_direct_message", id)
}

func (s *Mongo) setWatermark(ctx context.Context, field string, id int64) error {
	_, err := s.status.UpdateOne(ctx,
		bson.M{"type": statusDocType},
		bson.M{"$set": bson.M{field: id}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("store: set %s: %w", field, err)
	}
	return nil
}
