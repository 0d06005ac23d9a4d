package mongo

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func bulkErr(codes ...int) mongo.BulkWriteException {
	bwe := mongo.BulkWriteException{}
	for i, code := range codes {
		bwe.WriteErrors = append(bwe.WriteErrors, mongo.BulkWriteError{
			WriteError: mongo.WriteError{Index: i, Code: code, Message: "write failed"},
		})
	}
	return bwe
}

func TestOnlyDuplicateKeys(t *testing.T) {
	withConcern := bulkErr(duplicateKeyCode)
	withConcern.WriteConcernError = &mongo.WriteConcernError{Code: 64, Message: "waiting for replication timed out"}

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("connection reset"), false},
		{"all duplicates", bulkErr(duplicateKeyCode, duplicateKeyCode), true},
		{"wrapped duplicates", fmt.Errorf("append: %w", bulkErr(duplicateKeyCode)), true},
		{"duplicate mixed with validation failure", bulkErr(duplicateKeyCode, 121), false},
		{"write concern error", withConcern, false},
		{"no write errors", mongo.BulkWriteException{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := onlyDuplicateKeys(tc.err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
