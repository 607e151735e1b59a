package mongostore

import (
	"fmt"
	"math/rand"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"policerecords/internal/common"
)

// objectID translates a contract identifier into the store's native key.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrorInvalidID
	}
	return oid, nil
}

// writeErr maps store-level rejections onto the shared taxonomy.
func writeErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return common.ErrorAlreadyExists
	}
	return err
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// businessNumber builds a <PREFIX>-<year>-<random suffix> identifier.
// Uniqueness is backed by the collection index, not by this generator.
func businessNumber(prefix string, year int) string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return fmt.Sprintf("%s-%d-%s", prefix, year, b.String())
}
