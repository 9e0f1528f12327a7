package model

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a schema-flexible record. Products, imports and users are stored as
// received, so the catalog never narrows them to a fixed struct.
type Document map[string]interface{}

// Field names shared by the collections.
const (
	FieldID            = "_id"
	FieldEmail         = "email"
	FieldRating        = "rating"
	FieldQuantity      = "quantity"
	FieldProductID     = "productId"
	FieldImporterEmail = "importer_email"
)

var (
	// ErrInvalidID is returned when an identifier is not a 24-hex ObjectID.
	ErrInvalidID = errors.New("invalid document identifier")
	// ErrDocumentNotFound is returned by single-document lookups that match nothing.
	ErrDocumentNotFound = errors.New("document not found")
)

// ParseID converts a hex identifier into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Without returns a copy of d minus the given keys.
func (d Document) Without(keys ...string) Document {
	out := d.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
