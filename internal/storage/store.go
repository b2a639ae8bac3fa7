// Package storage owns store records and their persistence.
package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound indicates the requested store does not exist.
var ErrNotFound = errors.New("store not found")

// ErrInvalidID indicates a malformed store id.
var ErrInvalidID = errors.New("invalid store id")

// Address is a store's physical address.
type Address struct {
	Address1     string  `bson:"address1" json:"address1"`
	Address2     string  `bson:"address2,omitempty" json:"address2,omitempty"`
	Address3     string  `bson:"address3,omitempty" json:"address3,omitempty"`
	Neighborhood string  `bson:"neighborhood" json:"neighborhood"`
	City         string  `bson:"city" json:"city"`
	State        string  `bson:"state" json:"state"`
	Country      string  `bson:"country" json:"country"`
	PostalCode   string  `bson:"postalCode" json:"postalCode"`
	Latitude     float64 `bson:"latitude" json:"latitude"`
	Longitude    float64 `bson:"longitude" json:"longitude"`
}

// Store is one retail location. Type is "PDV" or "LOJA".
type Store struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreName          string             `bson:"storeName" json:"storeName"`
	TakeOutInStore     bool               `bson:"takeOutInStore" json:"takeOutInStore"`
	ShippingTimeInDays int                `bson:"shippingTimeInDays" json:"shippingTimeInDays"`
	Type               string             `bson:"type" json:"type"`
	TelephoneNumber    string             `bson:"telephoneNumber,omitempty" json:"telephoneNumber,omitempty"`
	EmailAddress       string             `bson:"emailAddress,omitempty" json:"emailAddress,omitempty"`
	Address            Address            `bson:"address" json:"address"`
	CreatedAt          time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt          time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Repository defines data-access operations for stores. The shipping engine
// only reads from it.
type Repository interface {
	Create(ctx context.Context, store *Store) (*Store, error)
	Update(ctx context.Context, id string, store *Store) (*Store, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Store, error)
	// FindPage returns one page of stores plus the total count.
	FindPage(ctx context.Context, limit, offset int64) ([]Store, int64, error)
	// FindByState returns one page of stores in a state plus the total count.
	FindByState(ctx context.Context, state string, limit, offset int64) ([]Store, int64, error)
}
