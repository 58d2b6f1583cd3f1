package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thegridly/authsvc/domain"
)

// ProfileRepositoryImpl implements domain.ProfileStore using MongoDB
type ProfileRepositoryImpl struct {
	collection *mongo.Collection
}

// profileDoc is the stored document shape: one document per user under
// the users collection, _id = user identifier.
type profileDoc struct {
	ID         string `bson:"_id"`
	FirstName  string `bson:"firstName"`
	LastName   string `bson:"lastName"`
	University string `bson:"university"`
	Major      string `bson:"major,omitempty"`
}

// NewProfileRepository creates a new profile repository over the given
// database's users collection
func NewProfileRepository(db *mongo.Database) domain.ProfileStore {
	return &ProfileRepositoryImpl{collection: db.Collection("users")}
}

// Create implements domain.ProfileStore. An upsert, so an existing
// document for the same user is silently replaced; this layer does not
// enforce uniqueness.
func (r *ProfileRepositoryImpl) Create(ctx context.Context, userID string, profile *domain.UserProfile) error {
	doc := r.domainToDoc(userID, profile)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": userID}, doc, opts); err != nil {
		return fmt.Errorf("failed to write profile for %s: %w", userID, err)
	}
	return nil
}

// Read implements domain.ProfileStore
func (r *ProfileRepositoryImpl) Read(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var doc profileDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to read profile for %s: %w", userID, err)
	}
	return r.docToDomain(&doc), nil
}

// domainToDoc converts a domain profile to its stored document
func (r *ProfileRepositoryImpl) domainToDoc(userID string, profile *domain.UserProfile) *profileDoc {
	return &profileDoc{
		ID:         userID,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		University: profile.University,
		Major:      profile.Major,
	}
}

// docToDomain converts a stored document to a domain profile
func (r *ProfileRepositoryImpl) docToDomain(doc *profileDoc) *domain.UserProfile {
	return &domain.UserProfile{
		FirstName:  doc.FirstName,
		LastName:   doc.LastName,
		University: doc.University,
		Major:      doc.Major,
	}
}
