package reservationRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"roomify/models"
	"roomify/utils"
)

// CreateIfFree re-runs the availability check and inserts inside one
// Mongo transaction, closing the check-then-act window between two
// concurrent creates for the same room. On deployments without replica
// sets (transactions unsupported) it degrades to the plain
// check-then-insert sequence.
func (r *MongoReservationRepo) CreateIfFree(ctx context.Context, res *models.Reservation) (*models.Reservation, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"roomId":     res.RoomID,
			"isCanceled": false,
		}
		for k, v := range overlapFilter(res.RentedFrom, res.RentedTo) {
			filter[k] = v
		}

		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("failed to count overlapping reservations: %w", err)
		}
		if count != 0 {
			return ErrPeriodTaken
		}

		_, err = r.insert(sc, res)
		return err
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			if isTxnUnsupported(err) {
				utils.GetLogger().Warn("reservation repo: transactions unsupported, falling back to unguarded create")
				return txnFn(sc)
			}
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func isTxnUnsupported(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Transaction numbers are only allowed") ||
		strings.Contains(msg, "replica set")
}
