package firestore

import (
	"context"
	"sync"

	"storefront/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// watchQuery streams decoded snapshots of q to listener from a goroutine. The
// iterator is stopped by the goroutine itself once the watch ends.
func watchQuery[T any](ctx context.Context, q firestore.Query, decode func([]*firestore.DocumentSnapshot) (T, error), listener repository.Listener[T]) repository.Unsubscribe {
	watchCtx, cancel := context.WithCancel(ctx)
	it := q.Snapshots(watchCtx)

	go func() {
		defer it.Stop()

		for {
			qs, err := it.Next()
			if err != nil {
				if watchCtx.Err() == nil && !isCanceled(err) {
					var zero T
					listener(zero, errors.Wrap(err, "snapshot listener failed"))
				}

				return
			}

			docs, err := qs.Documents.GetAll()
			if err == nil {
				var snapshot T
				snapshot, err = decode(docs)
				if err == nil {
					if watchCtx.Err() != nil {
						return
					}
					listener(snapshot, nil)

					continue
				}
			}

			var zero T
			listener(zero, errors.Wrap(err, "failed to read snapshot"))

			return
		}
	}()

	var once sync.Once

	return func() {
		once.Do(cancel)
	}
}

// watchDocument streams one document. A missing document is delivered as
// notFound and ends the watch.
func watchDocument[T any](ctx context.Context, ref *firestore.DocumentRef, decode func(*firestore.DocumentSnapshot) (T, error), notFound error, listener repository.Listener[T]) repository.Unsubscribe {
	watchCtx, cancel := context.WithCancel(ctx)
	it := ref.Snapshots(watchCtx)

	go func() {
		defer it.Stop()

		for {
			snap, err := it.Next()
			var zero T
			switch {
			case err != nil:
				if watchCtx.Err() == nil && !isCanceled(err) {
					listener(zero, errors.Wrap(err, "snapshot listener failed"))
				}

				return
			case !snap.Exists():
				listener(zero, notFound)

				return
			}

			value, err := decode(snap)
			if err != nil {
				listener(zero, errors.Wrap(err, "failed to read snapshot"))

				return
			}
			if watchCtx.Err() != nil {
				return
			}
			listener(value, nil)
		}
	}()

	var once sync.Once

	return func() {
		once.Do(cancel)
	}
}
