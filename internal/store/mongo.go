package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roombook/internal/models"
)

// ConnectMongo dials the document store and verifies the connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

type roomDoc struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	Capacity  int    `bson:"capacity"`
	Occupied  bool   `bson:"occupied"`
	CreatedAt int64  `bson:"created_at"`
}

func (d roomDoc) room() models.Room {
	return models.Room{ID: d.ID, Name: d.Name, Capacity: d.Capacity, Occupied: d.Occupied}
}

// MongoRoomStore persists rooms in a "rooms" collection, one document per
// room with the room id as _id. Insertion order is recovered by sorting on
// created_at.
type MongoRoomStore struct {
	coll *mongo.Collection
}

func NewMongoRoomStore(db *mongo.Database) *MongoRoomStore {
	return &MongoRoomStore{coll: db.Collection("rooms")}
}

func (s *MongoRoomStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	cur, err := s.coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []roomDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	rooms := make([]models.Room, 0, len(docs))
	for _, d := range docs {
		rooms = append(rooms, d.room())
	}
	return rooms, nil
}

func (s *MongoRoomStore) GetRoom(ctx context.Context, id string) (models.Room, error) {
	var d roomDoc
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return d.room(), nil
}

func (s *MongoRoomStore) CreateRoom(ctx context.Context, name string, capacity int, occupied bool) (models.Room, error) {
	d := roomDoc{
		ID:        uuid.NewString(),
		Name:      name,
		Capacity:  capacity,
		Occupied:  occupied,
		CreatedAt: time.Now().UnixNano(),
	}
	if _, err := s.coll.InsertOne(ctx, d); err != nil {
		return models.Room{}, err
	}
	return d.room(), nil
}

func (s *MongoRoomStore) UpdateRoom(ctx context.Context, id string, upd RoomUpdate) (models.Room, error) {
	set := bson.D{}
	if upd.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *upd.Name})
	}
	if upd.Capacity != nil {
		set = append(set, bson.E{Key: "capacity", Value: *upd.Capacity})
	}
	if upd.Occupied != nil {
		set = append(set, bson.E{Key: "occupied", Value: *upd.Occupied})
	}
	if len(set) == 0 {
		return s.GetRoom(ctx, id)
	}

	var d roomDoc
	err := s.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return d.room(), nil
}

func (s *MongoRoomStore) DeleteRoom(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRoomNotFound
	}
	return nil
}

type userDoc struct {
	ID        string `bson:"_id"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	CreatedAt int64  `bson:"created_at"`
}

// MongoUserStore persists users in a "users" collection with a unique index
// on email backing up the pre-insert existence check.
type MongoUserStore struct {
	coll *mongo.Collection
}

// NewMongoUserStore ensures the unique email index before returning the
// store.
func NewMongoUserStore(ctx context.Context, db *mongo.Database) (*MongoUserStore, error) {
	coll := db.Collection("users")
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("ensure email index: %w", err)
	}
	return &MongoUserStore{coll: coll}, nil
}

func (s *MongoUserStore) Register(ctx context.Context, email, password string) (models.UserResponse, error) {
	d := userDoc{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UnixNano(),
	}
	_, err := s.coll.InsertOne(ctx, d)
	if mongo.IsDuplicateKeyError(err) {
		return models.UserResponse{}, ErrEmailExists
	}
	if err != nil {
		return models.UserResponse{}, err
	}
	return models.UserResponse{ID: d.ID, Email: d.Email}, nil
}

func (s *MongoUserStore) Login(ctx context.Context, email, password string) (models.UserResponse, error) {
	var d userDoc
	err := s.coll.FindOne(ctx, bson.D{
		{Key: "email", Value: email},
		{Key: "password", Value: password},
	}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.UserResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.UserResponse{}, err
	}
	return models.UserResponse{ID: d.ID, Email: d.Email}, nil
}
