package comment

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a caller-supplied identifier is not a
// well-formed ObjectID.
var ErrInvalidID = errors.New("invalid comment id")

// Comment is a comment document as stored. The service only ever looks at
// "_id"; every other field is passed through to clients untouched.
type Comment bson.M

// ID returns the hex form of the document's ObjectID, or "" when the
// document has no ObjectID key.
func (c Comment) ID() string {
	if oid, ok := c["_id"].(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

// ParseID validates a caller-supplied identifier. Only the canonical
// 24-character hex form is accepted.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
