package pay

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	interf "github.com/glkeru/travelbook/internal/interfaces"
	models "github.com/glkeru/travelbook/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Реестр в Mongo: включается переменной PAY_MONGO, иначе используется
// реестр в памяти
type MongoStore struct {
	mgo        *mongo.Client
	members    *mongo.Collection
	bookings   *mongo.Collection
	resources  *mongo.Collection
	promotions *mongo.Collection
	tnx        *mongo.Collection
}

type mongoBookingDoc struct {
	ID     uuid.UUID            `bson:"id"`
	Member uuid.UUID            `bson:"member"`
	Status models.BookingStatus `bson:"status"`
	Items  []models.ItemRecord  `bson:"items"`
}

func NewMongoStore() (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("PAY_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env PAY_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("travelbookDB")

	return &MongoStore{
		mgo:        client,
		members:    db.Collection("members"),
		bookings:   db.Collection("bookings"),
		resources:  db.Collection("resources"),
		promotions: db.Collection("promotions"),
		tnx:        db.Collection("transactions"),
	}, nil
}

func (s *MongoStore) NewID() uuid.UUID {
	return uuid.New()
}

func (s *MongoStore) GetMember(ctx context.Context, id uuid.UUID) (models.Member, error) {
	var m models.Member
	filter := bson.M{"id": id}
	err := s.members.FindOne(ctx, filter).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Member{}, interf.ErrNotFound
		}
		return models.Member{}, err
	}
	return m, nil
}

func (s *MongoStore) SaveMember(ctx context.Context, m models.Member) error {
	filter := bson.M{"id": m.ID}
	opts := options.Replace().SetUpsert(true)
	_, err := s.members.ReplaceOne(ctx, filter, m, opts)
	return err
}

func (s *MongoStore) GetBooking(ctx context.Context, id uuid.UUID) (models.Booking, error) {
	var d mongoBookingDoc
	filter := bson.M{"id": id}
	err := s.bookings.FindOne(ctx, filter).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, interf.ErrNotFound
		}
		return models.Booking{}, err
	}
	b := models.Booking{ID: d.ID, Member: d.Member, Status: d.Status}
	for _, rec := range d.Items {
		item, err := rec.Item()
		if err != nil {
			return models.Booking{}, err
		}
		b.AddItem(item)
	}
	return b, nil
}

func (s *MongoStore) SaveBooking(ctx context.Context, b models.Booking) error {
	d := mongoBookingDoc{ID: b.ID, Member: b.Member, Status: b.Status}
	for _, item := range b.Items {
		d.Items = append(d.Items, models.RecordItem(item))
	}
	filter := bson.M{"id": b.ID}
	opts := options.Replace().SetUpsert(true)
	_, err := s.bookings.ReplaceOne(ctx, filter, d, opts)
	return err
}

func (s *MongoStore) GetResource(ctx context.Context, id uuid.UUID) (models.Item, error) {
	var rec models.ItemRecord
	filter := bson.M{"id": id}
	err := s.resources.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interf.ErrNotFound
		}
		return nil, err
	}
	return rec.Item()
}

func (s *MongoStore) SaveResource(ctx context.Context, item models.Item) error {
	rec := models.RecordItem(item)
	filter := bson.M{"id": rec.ID}
	opts := options.Replace().SetUpsert(true)
	_, err := s.resources.ReplaceOne(ctx, filter, rec, opts)
	return err
}

func (s *MongoStore) Resources(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	result, err := s.resources.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	for result.Next(ctx) {
		var rec models.ItemRecord
		err := result.Decode(&rec)
		if err != nil {
			return nil, err
		}
		item, err := rec.Item()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *MongoStore) ActivePromotions(ctx context.Context) ([]models.Promotion, error) {
	var promos []models.Promotion
	filter := bson.M{"expiry": bson.M{"$gte": time.Now()}}
	result, err := s.promotions.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	for result.Next(ctx) {
		var p models.Promotion
		err := result.Decode(&p)
		if err != nil {
			return nil, err
		}
		promos = append(promos, p)
	}
	return promos, nil
}

func (s *MongoStore) SavePromotion(ctx context.Context, p models.Promotion) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	filter := bson.M{"id": p.ID}
	opts := options.Replace().SetUpsert(true)
	_, err := s.promotions.ReplaceOne(ctx, filter, p, opts)
	return err
}

func (s *MongoStore) SaveTransaction(ctx context.Context, tnx models.Transaction) error {
	_, err := s.tnx.InsertOne(ctx, tnx)
	return err
}

func (s *MongoStore) Transactions(ctx context.Context, member uuid.UUID) ([]models.Transaction, error) {
	var tnxs []models.Transaction
	filter := bson.M{"member": member}
	result, err := s.tnx.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	for result.Next(ctx) {
		var t models.Transaction
		err := result.Decode(&t)
		if err != nil {
			return nil, err
		}
		tnxs = append(tnxs, t)
	}
	return tnxs, nil
}
