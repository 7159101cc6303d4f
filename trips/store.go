package trips

import (
	"context"

	"naviora/models"
	"naviora/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore persists itineraries to a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) SaveItinerary(ctx context.Context, itinerary models.Itinerary) error {
	_, err := s.coll.InsertOne(ctx, itinerary)
	return err
}

func (s *MongoStore) ListItineraries(ctx context.Context) ([]models.Itinerary, error) {
	return utils.FindAndDecode[models.Itinerary](ctx, s.coll, bson.M{})
}
