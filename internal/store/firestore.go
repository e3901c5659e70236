package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	movementsCollection   = "movements"
	savingsCollection     = "savings"
	payablesCollection    = "payables"
	receivablesCollection = "receivables"
	cardsCollection       = "cards"
	purchasesCollection   = "cardPurchases"
	preferencesCollection = "notificationPreferences"
)

// FirestoreStore implements the Store interface using Firestore
type FirestoreStore struct {
	client *firestore.Client
	log    zerolog.Logger
}

// NewFirestoreStore creates a new Firestore-backed store
func NewFirestoreStore(client *firestore.Client, log zerolog.Logger) *FirestoreStore {
	return &FirestoreStore{
		client: client,
		log:    log.With().Str("component", "firestore").Logger(),
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// getDoc reads one document into a doc struct of type T.
func getDoc[T any](ctx context.Context, client *firestore.Client, collection, id, kind string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("%s with empty id: %w", kind, ErrNotFound)
	}
	snap, err := client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	var doc T
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", kind, err)
	}
	return &doc, nil
}

// updateDoc overwrites an existing document; missing documents are ErrNotFound.
func (s *FirestoreStore) updateDoc(ctx context.Context, collection, id, kind string, data interface{}) error {
	ref := s.client.Collection(collection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
		}
		return fmt.Errorf("failed to get %s: %w", kind, err)
	}
	if _, err := ref.Set(ctx, data); err != nil {
		return fmt.Errorf("failed to update %s: %w", kind, err)
	}
	return nil
}

func (s *FirestoreStore) deleteDoc(ctx context.Context, collection, id, kind string) error {
	ref := s.client.Collection(collection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
		}
		return fmt.Errorf("failed to get %s: %w", kind, err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	return nil
}

// queryDocs runs q and decodes every result.
func queryDocs[T any](ctx context.Context, q firestore.Query, kind string) ([]*T, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	out := make([]*T, 0, len(snaps))
	for _, snap := range snaps {
		var doc T
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", kind, err)
		}
		out = append(out, &doc)
	}
	return out, nil
}

// applyDateAwarePagination handles pagination for queries with date range filters.
// Firestore requires OrderBy on inequality fields first, so we use OrderBy("Date") + OrderBy(__name__).
// The cursor must include both the Date value and the document ID.
func (s *FirestoreStore) applyDateAwarePagination(ctx context.Context, query firestore.Query, collection string, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy("Date", firestore.Asc).OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		cursorDoc, err := s.client.Collection(collection).Doc(docID).Get(ctx)
		if err != nil {
			return query, fmt.Errorf("failed to fetch cursor document: %w", err)
		}
		query = query.StartAfter(cursorDoc.Data()["Date"], docID)
	}

	return query.Limit(int(normalizePageSize(pageSize)) + 1), nil
}

// applyCursorPagination adds OrderBy + StartAfter + Limit to a query for cursor-based pagination.
// It fetches pageSize+1 docs so the caller can detect whether a next page exists.
func (s *FirestoreStore) applyCursorPagination(query firestore.Query, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		query = query.StartAfter(docID)
	}

	return query.Limit(int(normalizePageSize(pageSize)) + 1), nil
}

// Movement operations

func (s *FirestoreStore) CreateMovement(ctx context.Context, movement *model.Movement) error {
	movement.ID = newID(movement.ID)
	_, err := s.client.Collection(movementsCollection).Doc(movement.ID).Set(ctx, toMovementDoc(movement))
	if err != nil {
		return fmt.Errorf("failed to create movement: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetMovement(ctx context.Context, movementID string) (*model.Movement, error) {
	doc, err := getDoc[movementDoc](ctx, s.client, movementsCollection, movementID, "movement")
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *FirestoreStore) UpdateMovement(ctx context.Context, movement *model.Movement) error {
	return s.updateDoc(ctx, movementsCollection, movement.ID, "movement", toMovementDoc(movement))
}

func (s *FirestoreStore) DeleteMovement(ctx context.Context, movementID string) error {
	return s.deleteDoc(ctx, movementsCollection, movementID, "movement")
}

func (s *FirestoreStore) ListMovements(ctx context.Context, userID string, filter MovementFilter, pageSize int32, pageToken string) ([]*model.Movement, string, error) {
	query := s.client.Collection(movementsCollection).Where("UserID", "==", userID)
	if filter.Type != "" {
		query = query.Where("Type", "==", string(filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("Category", "==", filter.Category)
	}
	if filter.Start != nil {
		query = query.Where("Date", ">=", dateToTime(*filter.Start))
	}
	if filter.End != nil {
		query = query.Where("Date", "<=", dateToTime(*filter.End))
	}

	var err error
	if filter.Start != nil || filter.End != nil {
		query, err = s.applyDateAwarePagination(ctx, query, movementsCollection, pageSize, pageToken)
	} else {
		query, err = s.applyCursorPagination(query, pageSize, pageToken)
	}
	if err != nil {
		return nil, "", err
	}

	docs, err := queryDocs[movementDoc](ctx, query, "movements")
	if err != nil {
		return nil, "", err
	}

	pageSize = normalizePageSize(pageSize)
	var nextPageToken string
	if len(docs) > int(pageSize) {
		docs = docs[:pageSize]
		nextPageToken = EncodePageToken(docs[pageSize-1].ID)
	}

	movements := make([]*model.Movement, 0, len(docs))
	for _, doc := range docs {
		movements = append(movements, doc.toModel())
	}
	return movements, nextPageToken, nil
}

// WatchMovements streams query snapshots of the user's movements.
func (s *FirestoreStore) WatchMovements(ctx context.Context, userID string) (<-chan []*model.Movement, error) {
	it := s.client.Collection(movementsCollection).
		Where("UserID", "==", userID).
		OrderBy("Date", firestore.Desc).
		Snapshots(ctx)

	ch := make(chan []*model.Movement, 1)
	go func() {
		defer close(ch)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if ctx.Err() == nil && status.Code(err) != codes.Canceled && !errors.Is(err, iterator.Done) {
					s.log.Error().Err(err).Str("user_id", userID).Msg("movement watch ended")
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				s.log.Error().Err(err).Str("user_id", userID).Msg("failed to read movement snapshot")
				return
			}

			movements := make([]*model.Movement, 0, len(docs))
			for _, d := range docs {
				var doc movementDoc
				if err := d.DataTo(&doc); err != nil {
					s.log.Warn().Err(err).Str("doc_id", d.Ref.ID).Msg("skipping unparseable movement")
					continue
				}
				movements = append(movements, doc.toModel())
			}

			select {
			case ch <- movements:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// ForEachMovement walks every stored movement across all users. Used by
// maintenance jobs such as search reindexing; fn errors stop the walk.
func (s *FirestoreStore) ForEachMovement(ctx context.Context, fn func(*model.Movement) error) error {
	iter := s.client.Collection(movementsCollection).Documents(ctx)
	defer iter.Stop()

	for {
		d, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("iterate movements: %w", err)
		}

		var doc movementDoc
		if err := d.DataTo(&doc); err != nil {
			s.log.Warn().Err(err).Str("doc_id", d.Ref.ID).Msg("skipping unparseable movement")
			continue
		}
		if err := fn(doc.toModel()); err != nil {
			return err
		}
	}
}

// Saving operations

func (s *FirestoreStore) CreateSaving(ctx context.Context, saving *model.Saving) error {
	saving.ID = newID(saving.ID)
	_, err := s.client.Collection(savingsCollection).Doc(saving.ID).Set(ctx, toSavingDoc(saving))
	if err != nil {
		return fmt.Errorf("failed to create saving: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetSaving(ctx context.Context, savingID string) (*model.Saving, error) {
	doc, err := getDoc[savingDoc](ctx, s.client, savingsCollection, savingID, "saving")
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *FirestoreStore) DeleteSaving(ctx context.Context, savingID string) error {
	return s.deleteDoc(ctx, savingsCollection, savingID, "saving")
}

func (s *FirestoreStore) ListSavings(ctx context.Context, userID string) ([]*model.Saving, error) {
	query := s.client.Collection(savingsCollection).
		Where("UserID", "==", userID).
		OrderBy("Date", firestore.Asc)

	docs, err := queryDocs[savingDoc](ctx, query, "savings")
	if err != nil {
		return nil, err
	}
	out := make([]*model.Saving, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toModel())
	}
	return out, nil
}

// Payable operations

func (s *FirestoreStore) CreatePayable(ctx context.Context, payable *model.Payable) error {
	payable.ID = newID(payable.ID)
	_, err := s.client.Collection(payablesCollection).Doc(payable.ID).Set(ctx, toPayableDoc(payable))
	if err != nil {
		return fmt.Errorf("failed to create payable: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetPayable(ctx context.Context, payableID string) (*model.Payable, error) {
	doc, err := getDoc[payableDoc](ctx, s.client, payablesCollection, payableID, "payable")
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *FirestoreStore) UpdatePayable(ctx context.Context, payable *model.Payable) error {
	return s.updateDoc(ctx, payablesCollection, payable.ID, "payable", toPayableDoc(payable))
}

func (s *FirestoreStore) DeletePayable(ctx context.Context, payableID string) error {
	return s.deleteDoc(ctx, payablesCollection, payableID, "payable")
}

func (s *FirestoreStore) ListPayables(ctx context.Context, userID string, includePaid bool) ([]*model.Payable, error) {
	query := s.client.Collection(payablesCollection).Where("UserID", "==", userID)
	if !includePaid {
		query = query.Where("Paid", "==", false)
	}
	query = query.OrderBy("DueDate", firestore.Asc)

	docs, err := queryDocs[payableDoc](ctx, query, "payables")
	if err != nil {
		return nil, err
	}
	out := make([]*model.Payable, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toModel())
	}
	return out, nil
}

// Receivable operations

func (s *FirestoreStore) CreateReceivable(ctx context.Context, receivable *model.Receivable) error {
	receivable.ID = newID(receivable.ID)
	_, err := s.client.Collection(receivablesCollection).Doc(receivable.ID).Set(ctx, toReceivableDoc(receivable))
	if err != nil {
		return fmt.Errorf("failed to create receivable: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetReceivable(ctx context.Context, receivableID string) (*model.Receivable, error) {
	doc, err := getDoc[receivableDoc](ctx, s.client, receivablesCollection, receivableID, "receivable")
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *FirestoreStore) UpdateReceivable(ctx context.Context, receivable *model.Receivable) error {
	return s.updateDoc(ctx, receivablesCollection, receivable.ID, "receivable", toReceivableDoc(receivable))
}

func (s *FirestoreStore) DeleteReceivable(ctx context.Context, receivableID string) error {
	return s.deleteDoc(ctx, receivablesCollection, receivableID, "receivable")
}

func (s *FirestoreStore) ListReceivables(ctx context.Context, userID string, includeCollected bool) ([]*model.Receivable, error) {
	query := s.client.Collection(receivablesCollection).Where("UserID", "==", userID)
	if !includeCollected {
		query = query.Where("Collected", "==", false)
	}
	query = query.OrderBy("DueDate", firestore.Asc)

	docs, err := queryDocs[receivableDoc](ctx, query, "receivables")
	if err != nil {
		return nil, err
	}
	out := make([]*model.Receivable, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toModel())
	}
	return out, nil
}

// Card operations

func (s *FirestoreStore) CreateCard(ctx context.Context, card *model.Card) error {
	card.ID = newID(card.ID)
	_, err := s.client.Collection(cardsCollection).Doc(card.ID).Set(ctx, toCardDoc(card))
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetCard(ctx context.Context, cardID string) (*model.Card, error) {
	doc, err := getDoc[cardDoc](ctx, s.client, cardsCollection, cardID, "card")
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *FirestoreStore) UpdateCard(ctx context.Context, card *model.Card) error {
	return s.updateDoc(ctx, cardsCollection, card.ID, "card", toCardDoc(card))
}

func (s *FirestoreStore) DeleteCard(ctx context.Context, cardID string) error {
	return s.deleteDoc(ctx, cardsCollection, cardID, "card")
}

func (s *FirestoreStore) ListCards(ctx context.Context, userID string) ([]*model.Card, error) {
	query := s.client.Collection(cardsCollection).
		Where("UserID", "==", userID).
		OrderBy("Name", firestore.Asc)

	docs, err := queryDocs[cardDoc](ctx, query, "cards")
	if err != nil {
		return nil, err
	}
	out := make([]*model.Card, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toModel())
	}
	return out, nil
}

// Card purchase operations

func (s *FirestoreStore) CreateCardPurchase(ctx context.Context, purchase *model.CardPurchase) error {
	purchase.ID = newID(purchase.ID)
	_, err := s.client.Collection(purchasesCollection).Doc(purchase.ID).Set(ctx, toCardPurchaseDoc(purchase))
	if err != nil {
		return fmt.Errorf("failed to create card purchase: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetCardPurchase(ctx context.Context, purchaseID string) (*model.CardPurchase, error) {
	doc, err := getDoc[cardPurchaseDoc](ctx, s.client, purchasesCollection, purchaseID, "card purchase")
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *FirestoreStore) UpdateCardPurchase(ctx context.Context, purchase *model.CardPurchase) error {
	return s.updateDoc(ctx, purchasesCollection, purchase.ID, "card purchase", toCardPurchaseDoc(purchase))
}

func (s *FirestoreStore) DeleteCardPurchase(ctx context.Context, purchaseID string) error {
	return s.deleteDoc(ctx, purchasesCollection, purchaseID, "card purchase")
}

func (s *FirestoreStore) ListCardPurchases(ctx context.Context, userID string, filter PurchaseFilter) ([]*model.CardPurchase, error) {
	query := s.client.Collection(purchasesCollection).Where("UserID", "==", userID)
	if filter.CardID != "" {
		query = query.Where("CardID", "==", filter.CardID)
	}
	if filter.CycleID != "" {
		query = query.Where("CycleID", "==", filter.CycleID)
	}
	if !filter.IncludeLiquidated {
		query = query.Where("Liquidated", "==", false)
	}
	query = query.OrderBy("Date", firestore.Asc)

	docs, err := queryDocs[cardPurchaseDoc](ctx, query, "card purchases")
	if err != nil {
		return nil, err
	}
	out := make([]*model.CardPurchase, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toModel())
	}
	return out, nil
}

// Notification preference operations

func (s *FirestoreStore) GetNotificationPreferences(ctx context.Context, userID string) (*model.NotificationPreferences, error) {
	doc, err := getDoc[preferencesDoc](ctx, s.client, preferencesCollection, userID, "notification preferences")
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.DefaultNotificationPreferences(userID), nil
		}
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *FirestoreStore) UpdateNotificationPreferences(ctx context.Context, prefs *model.NotificationPreferences) error {
	_, err := s.client.Collection(preferencesCollection).Doc(prefs.UserID).Set(ctx, toPreferencesDoc(prefs))
	if err != nil {
		return fmt.Errorf("failed to update notification preferences: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListPushSubscribers(ctx context.Context) ([]*model.NotificationPreferences, error) {
	iter := s.client.Collection(preferencesCollection).
		Where("PushEnabled", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var out []*model.NotificationPreferences
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list push subscribers: %w", err)
		}
		var doc preferencesDoc
		if err := snap.DataTo(&doc); err != nil {
			s.log.Warn().Err(err).Str("doc_id", snap.Ref.ID).Msg("skipping unparseable preferences")
			continue
		}
		if doc.FCMToken == "" {
			continue
		}
		out = append(out, doc.toModel())
	}
	return out, nil
}

var _ Store = (*FirestoreStore)(nil)
var _ Store = (*MemoryStore)(nil)
