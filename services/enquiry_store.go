package services

import (
	"context"
	"sort"
	"sync"

	"brickscapital/types"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/mgo.v2/bson"
)

// EnquiryStore keeps contact enquiries for the back office.
type EnquiryStore interface {
	Save(ctx context.Context, enquiry types.Enquiry) error
	List(ctx context.Context) ([]types.Enquiry, error)
}

type memoryEnquiryStore struct {
	mu        sync.RWMutex
	enquiries []types.Enquiry
}

func NewMemoryEnquiryStore() EnquiryStore {
	return &memoryEnquiryStore{}
}

func (m *memoryEnquiryStore) Save(_ context.Context, enquiry types.Enquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enquiries = append(m.enquiries, enquiry)
	return nil
}

// List returns enquiries newest first.
func (m *memoryEnquiryStore) List(_ context.Context) ([]types.Enquiry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Enquiry, len(m.enquiries))
	copy(out, m.enquiries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type mongoEnquiryStore struct {
	collection *mongo.Collection
}

func NewMongoEnquiryStore(collection *mongo.Collection) EnquiryStore {
	return &mongoEnquiryStore{collection: collection}
}

func (s *mongoEnquiryStore) Save(ctx context.Context, enquiry types.Enquiry) error {
	_, err := s.collection.InsertOne(ctx, enquiry)
	return err
}

func (s *mongoEnquiryStore) List(ctx context.Context) ([]types.Enquiry, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enquiries []types.Enquiry
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}
