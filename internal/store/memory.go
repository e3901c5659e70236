package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/castlemilk/cuentas/internal/model"
	"github.com/google/uuid"
)

// MemoryStore implements Store interface with in-memory storage
type MemoryStore struct {
	mu sync.RWMutex

	// Storage maps
	movements   map[string]*model.Movement
	savings     map[string]*model.Saving
	payables    map[string]*model.Payable
	receivables map[string]*model.Receivable
	cards       map[string]*model.Card
	purchases   map[string]*model.CardPurchase
	preferences map[string]*model.NotificationPreferences

	watchers      map[int]*movementWatcher
	nextWatcherID int
}

type movementWatcher struct {
	userID string
	ch     chan []*model.Movement
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		movements:   make(map[string]*model.Movement),
		savings:     make(map[string]*model.Saving),
		payables:    make(map[string]*model.Payable),
		receivables: make(map[string]*model.Receivable),
		cards:       make(map[string]*model.Card),
		purchases:   make(map[string]*model.CardPurchase),
		preferences: make(map[string]*model.NotificationPreferences),
		watchers:    make(map[int]*movementWatcher),
	}
}

// paginateIDs applies cursor-based pagination to a sorted slice of IDs.
// Returns the paginated IDs and the next page token (empty if no more pages).
func paginateIDs(ids []string, pageSize int32, pageToken string) ([]string, string) {
	pageSize = normalizePageSize(pageSize)

	sort.Strings(ids)

	// Find cursor position
	startIdx := 0
	if pageToken != "" {
		cursorID, err := DecodePageToken(pageToken)
		if err == nil {
			startIdx = sort.SearchStrings(ids, cursorID)
			if startIdx < len(ids) && ids[startIdx] == cursorID {
				startIdx++
			}
		}
	}

	ids = ids[startIdx:]

	var nextToken string
	if int32(len(ids)) > pageSize {
		nextToken = EncodePageToken(ids[pageSize-1])
		ids = ids[:pageSize]
	}

	return ids, nextToken
}

func newID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

// Movement operations

func (m *MemoryStore) CreateMovement(ctx context.Context, movement *model.Movement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	movement.ID = newID(movement.ID)
	stored := *movement
	m.movements[movement.ID] = &stored
	m.notifyLocked(movement.UserID)
	return nil
}

func (m *MemoryStore) GetMovement(ctx context.Context, movementID string) (*model.Movement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	movement, ok := m.movements[movementID]
	if !ok {
		return nil, fmt.Errorf("movement %s: %w", movementID, ErrNotFound)
	}
	out := *movement
	return &out, nil
}

func (m *MemoryStore) UpdateMovement(ctx context.Context, movement *model.Movement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.movements[movement.ID]; !ok {
		return fmt.Errorf("movement %s: %w", movement.ID, ErrNotFound)
	}
	stored := *movement
	m.movements[movement.ID] = &stored
	m.notifyLocked(movement.UserID)
	return nil
}

func (m *MemoryStore) DeleteMovement(ctx context.Context, movementID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	movement, ok := m.movements[movementID]
	if !ok {
		return fmt.Errorf("movement %s: %w", movementID, ErrNotFound)
	}
	delete(m.movements, movementID)
	m.notifyLocked(movement.UserID)
	return nil
}

func (m *MemoryStore) ListMovements(ctx context.Context, userID string, filter MovementFilter, pageSize int32, pageToken string) ([]*model.Movement, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, movement := range m.movements {
		if movement.UserID != userID || !filter.Matches(movement) {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*model.Movement, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		out := *m.movements[id]
		result = append(result, &out)
	}
	return result, nextToken, nil
}

// WatchMovements registers a watcher that receives the user's movements after
// each write. Slow consumers only see the latest snapshot.
func (m *MemoryStore) WatchMovements(ctx context.Context, userID string) (<-chan []*model.Movement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextWatcherID
	m.nextWatcherID++
	w := &movementWatcher{userID: userID, ch: make(chan []*model.Movement, 1)}
	m.watchers[id] = w
	w.ch <- m.snapshotLocked(userID)

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.watchers, id)
		close(w.ch)
	}()

	return w.ch, nil
}

func (m *MemoryStore) snapshotLocked(userID string) []*model.Movement {
	out := []*model.Movement{}
	for _, movement := range m.movements {
		if movement.UserID == userID {
			c := *movement
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// notifyLocked must be called with m.mu held for writing.
func (m *MemoryStore) notifyLocked(userID string) {
	for _, w := range m.watchers {
		if w.userID != userID {
			continue
		}
		// Each watcher owns its snapshot; readers sort it in place.
		snap := m.snapshotLocked(userID)
		select {
		case <-w.ch:
		default:
		}
		w.ch <- snap
	}
}

// Saving operations

func (m *MemoryStore) CreateSaving(ctx context.Context, saving *model.Saving) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saving.ID = newID(saving.ID)
	stored := *saving
	m.savings[saving.ID] = &stored
	return nil
}

func (m *MemoryStore) GetSaving(ctx context.Context, savingID string) (*model.Saving, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	saving, ok := m.savings[savingID]
	if !ok {
		return nil, fmt.Errorf("saving %s: %w", savingID, ErrNotFound)
	}
	out := *saving
	return &out, nil
}

func (m *MemoryStore) DeleteSaving(ctx context.Context, savingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.savings[savingID]; !ok {
		return fmt.Errorf("saving %s: %w", savingID, ErrNotFound)
	}
	delete(m.savings, savingID)
	return nil
}

func (m *MemoryStore) ListSavings(ctx context.Context, userID string) ([]*model.Saving, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*model.Saving{}
	for _, saving := range m.savings {
		if saving.UserID == userID {
			out := *saving
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Payable operations

func (m *MemoryStore) CreatePayable(ctx context.Context, payable *model.Payable) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	payable.ID = newID(payable.ID)
	stored := *payable
	m.payables[payable.ID] = &stored
	return nil
}

func (m *MemoryStore) GetPayable(ctx context.Context, payableID string) (*model.Payable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payable, ok := m.payables[payableID]
	if !ok {
		return nil, fmt.Errorf("payable %s: %w", payableID, ErrNotFound)
	}
	out := *payable
	return &out, nil
}

func (m *MemoryStore) UpdatePayable(ctx context.Context, payable *model.Payable) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.payables[payable.ID]; !ok {
		return fmt.Errorf("payable %s: %w", payable.ID, ErrNotFound)
	}
	stored := *payable
	m.payables[payable.ID] = &stored
	return nil
}

func (m *MemoryStore) DeletePayable(ctx context.Context, payableID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.payables[payableID]; !ok {
		return fmt.Errorf("payable %s: %w", payableID, ErrNotFound)
	}
	delete(m.payables, payableID)
	return nil
}

func (m *MemoryStore) ListPayables(ctx context.Context, userID string, includePaid bool) ([]*model.Payable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*model.Payable{}
	for _, payable := range m.payables {
		if payable.UserID != userID || (payable.Paid && !includePaid) {
			continue
		}
		out := *payable
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DueDate != result[j].DueDate {
			return result[i].DueDate.Before(result[j].DueDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Receivable operations

func (m *MemoryStore) CreateReceivable(ctx context.Context, receivable *model.Receivable) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	receivable.ID = newID(receivable.ID)
	stored := *receivable
	m.receivables[receivable.ID] = &stored
	return nil
}

func (m *MemoryStore) GetReceivable(ctx context.Context, receivableID string) (*model.Receivable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	receivable, ok := m.receivables[receivableID]
	if !ok {
		return nil, fmt.Errorf("receivable %s: %w", receivableID, ErrNotFound)
	}
	out := *receivable
	return &out, nil
}

func (m *MemoryStore) UpdateReceivable(ctx context.Context, receivable *model.Receivable) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.receivables[receivable.ID]; !ok {
		return fmt.Errorf("receivable %s: %w", receivable.ID, ErrNotFound)
	}
	stored := *receivable
	m.receivables[receivable.ID] = &stored
	return nil
}

func (m *MemoryStore) DeleteReceivable(ctx context.Context, receivableID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.receivables[receivableID]; !ok {
		return fmt.Errorf("receivable %s: %w", receivableID, ErrNotFound)
	}
	delete(m.receivables, receivableID)
	return nil
}

func (m *MemoryStore) ListReceivables(ctx context.Context, userID string, includeCollected bool) ([]*model.Receivable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*model.Receivable{}
	for _, receivable := range m.receivables {
		if receivable.UserID != userID || (receivable.Collected && !includeCollected) {
			continue
		}
		out := *receivable
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DueDate != result[j].DueDate {
			return result[i].DueDate.Before(result[j].DueDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Card operations

func (m *MemoryStore) CreateCard(ctx context.Context, card *model.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	card.ID = newID(card.ID)
	stored := *card
	m.cards[card.ID] = &stored
	return nil
}

func (m *MemoryStore) GetCard(ctx context.Context, cardID string) (*model.Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	card, ok := m.cards[cardID]
	if !ok {
		return nil, fmt.Errorf("card %s: %w", cardID, ErrNotFound)
	}
	out := *card
	return &out, nil
}

func (m *MemoryStore) UpdateCard(ctx context.Context, card *model.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cards[card.ID]; !ok {
		return fmt.Errorf("card %s: %w", card.ID, ErrNotFound)
	}
	stored := *card
	m.cards[card.ID] = &stored
	return nil
}

func (m *MemoryStore) DeleteCard(ctx context.Context, cardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cards[cardID]; !ok {
		return fmt.Errorf("card %s: %w", cardID, ErrNotFound)
	}
	delete(m.cards, cardID)
	return nil
}

func (m *MemoryStore) ListCards(ctx context.Context, userID string) ([]*model.Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*model.Card{}
	for _, card := range m.cards {
		if card.UserID == userID {
			out := *card
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Card purchase operations

func (m *MemoryStore) CreateCardPurchase(ctx context.Context, purchase *model.CardPurchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	purchase.ID = newID(purchase.ID)
	stored := *purchase
	m.purchases[purchase.ID] = &stored
	return nil
}

func (m *MemoryStore) GetCardPurchase(ctx context.Context, purchaseID string) (*model.CardPurchase, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	purchase, ok := m.purchases[purchaseID]
	if !ok {
		return nil, fmt.Errorf("card purchase %s: %w", purchaseID, ErrNotFound)
	}
	out := *purchase
	return &out, nil
}

func (m *MemoryStore) UpdateCardPurchase(ctx context.Context, purchase *model.CardPurchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.purchases[purchase.ID]; !ok {
		return fmt.Errorf("card purchase %s: %w", purchase.ID, ErrNotFound)
	}
	stored := *purchase
	m.purchases[purchase.ID] = &stored
	return nil
}

func (m *MemoryStore) DeleteCardPurchase(ctx context.Context, purchaseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.purchases[purchaseID]; !ok {
		return fmt.Errorf("card purchase %s: %w", purchaseID, ErrNotFound)
	}
	delete(m.purchases, purchaseID)
	return nil
}

func (m *MemoryStore) ListCardPurchases(ctx context.Context, userID string, filter PurchaseFilter) ([]*model.CardPurchase, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*model.CardPurchase{}
	for _, purchase := range m.purchases {
		if purchase.UserID != userID || !filter.Matches(purchase) {
			continue
		}
		out := *purchase
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Notification preference operations

func (m *MemoryStore) GetNotificationPreferences(ctx context.Context, userID string) (*model.NotificationPreferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefs, ok := m.preferences[userID]
	if !ok {
		return model.DefaultNotificationPreferences(userID), nil
	}
	out := *prefs
	return &out, nil
}

func (m *MemoryStore) UpdateNotificationPreferences(ctx context.Context, prefs *model.NotificationPreferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *prefs
	m.preferences[prefs.UserID] = &stored
	return nil
}

func (m *MemoryStore) ListPushSubscribers(ctx context.Context) ([]*model.NotificationPreferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*model.NotificationPreferences{}
	for _, prefs := range m.preferences {
		if prefs.PushEnabled && prefs.FCMToken != "" {
			out := *prefs
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}
