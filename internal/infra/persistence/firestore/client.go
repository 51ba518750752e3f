// Package firestore implements the repositories on Cloud Firestore, using its
// snapshot listeners for real-time watches.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// inQueryLimit is the maximum number of values Firestore accepts in an "in" filter.
const inQueryLimit = 30

// NewClient opens the Firestore client of the Firebase app.
func NewClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	if app == nil {
		return nil, errors.New("firestore storage requires firebase.projectId")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Firestore client")
	}

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isCanceled(err error) bool {
	code := status.Code(err)

	return code == codes.Canceled || errors.Is(err, context.Canceled)
}

// chunk splits values into slices of at most size elements.
func chunk[T any](values []T, size int) [][]T {
	var chunks [][]T
	for size < len(values) {
		values, chunks = values[size:], append(chunks, values[:size])
	}
	if len(values) > 0 {
		chunks = append(chunks, values)
	}

	return chunks
}
