package cosmetics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/starpathlabs/starpath/internal/bus"
	"github.com/starpathlabs/starpath/internal/logger"
	"github.com/starpathlabs/starpath/internal/progress"
	"github.com/starpathlabs/starpath/internal/rewards"
	"github.com/starpathlabs/starpath/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockEventRepo implements store.EventRepo, capturing purchases.
type mockEventRepo struct {
	mu        sync.Mutex
	purchases []store.PurchaseEventData
}

func (m *mockEventRepo) AppendCompletion(_ context.Context, _ store.CompletionEventData) (int64, error) {
	return 0, nil
}
func (m *mockEventRepo) QueryCompletions(_ context.Context, _ store.QueryOpts) ([]store.CompletionEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) UnsyncedCompletions(_ context.Context) ([]store.CompletionEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) MarkCompletionSynced(_ context.Context, _ int64) error {
	return nil
}
func (m *mockEventRepo) AppendStreak(_ context.Context, _ store.StreakEventData) error {
	return nil
}
func (m *mockEventRepo) QueryStreaks(_ context.Context, _ store.QueryOpts) ([]store.StreakEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendReward(_ context.Context, _ store.RewardEventData) error {
	return nil
}
func (m *mockEventRepo) QueryRewards(_ context.Context, _ store.QueryOpts) ([]store.RewardEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) BoxInventory(_ context.Context) ([]store.BoxRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RewardTotals(_ context.Context) (store.RewardTotals, error) {
	return store.RewardTotals{}, nil
}
func (m *mockEventRepo) AppendPurchase(_ context.Context, data store.PurchaseEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purchases = append(m.purchases, data)
	return nil
}
func (m *mockEventRepo) QueryPurchases(_ context.Context, _ store.QueryOpts) ([]store.PurchaseEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) purchased() []store.PurchaseEventData {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.PurchaseEventData, len(m.purchases))
	copy(out, m.purchases)
	return out
}

// failingStore wraps a MemStore with switchable failures per operation.
type failingStore struct {
	*progress.MemStore
	failAppend    bool
	failIncrement bool
	failSet       bool
}

func storeDown(op string) error {
	return &progress.UnavailableError{Op: op, Attempts: 3, Err: errors.New("connection refused")}
}

func (s *failingStore) AppendToSet(ctx context.Context, userID, field string, members ...string) error {
	if s.failAppend {
		return storeDown("append")
	}
	return s.MemStore.AppendToSet(ctx, userID, field, members...)
}

func (s *failingStore) Increment(ctx context.Context, userID, field string, delta int) error {
	if s.failIncrement {
		return storeDown("increment")
	}
	return s.MemStore.Increment(ctx, userID, field, delta)
}

func (s *failingStore) Set(ctx context.Context, userID string, fields map[string]any) error {
	if s.failSet {
		return storeDown("set")
	}
	return s.MemStore.Set(ctx, userID, fields)
}

type shopFixture struct {
	svc   *Service
	store *failingStore
	repo  *mockEventRepo
	bus   *bus.Bus
}

func newTestShop(t *testing.T) *shopFixture {
	t.Helper()
	st := &failingStore{MemStore: progress.NewMemStore()}
	repo := &mockEventRepo{}
	b := bus.New(logger.Nop(), 16)
	t.Cleanup(b.Close)

	svc := NewService(Config{Progress: st, Events: repo, Bus: b, Log: logger.Nop()})
	return &shopFixture{svc: svc, store: st, repo: repo, bus: b}
}

func seedDoc(t *testing.T, f *shopFixture, earned int) *progress.UserProgress {
	t.Helper()
	doc := progress.NewUserProgress("0xWALLET", "what-is-blockchain", 1)
	doc.TokensEarned = earned
	f.store.Put(doc)
	return doc
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range Catalog() {
		if seen[item.ID] {
			t.Errorf("catalog id %q appears twice", item.ID)
		}
		seen[item.ID] = true
		if item.Price <= 0 {
			t.Errorf("item %s has price %d, want positive", item.ID, item.Price)
		}
		if item.Name == "" {
			t.Errorf("item %s has no display name", item.ID)
		}
	}
}

func TestCatalogCoversSlots(t *testing.T) {
	bySlot := make(map[string]int)
	for _, item := range Catalog() {
		bySlot[item.Slot]++
	}
	for _, slot := range Slots() {
		if bySlot[slot] == 0 {
			t.Errorf("no catalog items for slot %s", slot)
		}
	}
	if len(bySlot) != len(Slots()) {
		t.Errorf("catalog uses %d slots, Slots() lists %d", len(bySlot), len(Slots()))
	}
}

func TestBoxDropsResolveInCatalog(t *testing.T) {
	for _, rarity := range rewards.AllRarities() {
		for _, id := range rewards.DropPool(rarity) {
			if _, ok := ByID(id); !ok {
				t.Errorf("%s box can drop %q, which the catalog does not carry", rarity, id)
			}
		}
	}
}

func TestPurchase(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 100)

	events, cancel := f.bus.Subscribe(bus.CosmeticPurchased)
	defer cancel()

	item, err := f.svc.Purchase(context.Background(), doc, "star-sticker")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if item.ID != "star-sticker" || item.Price != 25 {
		t.Errorf("item = %+v, want star-sticker at 25", item)
	}
	if !doc.Owns("star-sticker") {
		t.Error("doc should own the cosmetic")
	}
	if doc.TokensSpent != 25 || doc.TokenBalance() != 75 {
		t.Errorf("spent %d balance %d, want 25 / 75", doc.TokensSpent, doc.TokenBalance())
	}

	stored, err := f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.Owns("star-sticker") || stored.TokensSpent != 25 {
		t.Errorf("stored = owns %v spent %d, want the purchase persisted",
			stored.Cosmetics, stored.TokensSpent)
	}

	if got := f.repo.purchased(); len(got) != 1 || got[0].CosmeticID != "star-sticker" || got[0].Price != 25 {
		t.Errorf("purchase events = %+v, want one for star-sticker", got)
	}

	select {
	case e := <-events:
		payload := e.Payload.(bus.CosmeticPurchasedPayload)
		if payload.CosmeticID != "star-sticker" || payload.Price != 25 {
			t.Errorf("payload = %+v, want star-sticker at 25", payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no CosmeticPurchased event received")
	}
}

func TestPurchaseTwiceChargesOnce(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 100)

	if _, err := f.svc.Purchase(context.Background(), doc, "star-sticker"); err != nil {
		t.Fatalf("first purchase: %v", err)
	}

	_, err := f.svc.Purchase(context.Background(), doc, "star-sticker")
	if !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("second purchase err = %v, want ErrAlreadyOwned", err)
	}
	if doc.TokensSpent != 25 {
		t.Errorf("spent = %d, want 25 charged once", doc.TokensSpent)
	}
	if got := f.repo.purchased(); len(got) != 1 {
		t.Errorf("purchase events = %d, want 1", len(got))
	}
}

func TestPurchaseInsufficientTokens(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 10)

	_, err := f.svc.Purchase(context.Background(), doc, "star-sticker")
	if !errors.Is(err, ErrInsufficientTokens) {
		t.Fatalf("err = %v, want ErrInsufficientTokens", err)
	}
	if doc.Owns("star-sticker") || doc.TokensSpent != 0 {
		t.Errorf("doc = owns %v spent %d, want untouched", doc.Cosmetics, doc.TokensSpent)
	}
}

func TestPurchaseUnknownCosmetic(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 100)

	_, err := f.svc.Purchase(context.Background(), doc, "plasma-cape")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPurchaseStoreDownRevertsDocument(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 100)
	f.store.failAppend = true

	_, err := f.svc.Purchase(context.Background(), doc, "star-sticker")
	if err == nil {
		t.Fatal("purchase should fail when the store rejects the write")
	}
	if doc.Owns("star-sticker") || doc.TokensSpent != 0 {
		t.Errorf("doc = owns %v spent %d, want fully reverted", doc.Cosmetics, doc.TokensSpent)
	}
	if got := f.repo.purchased(); len(got) != 0 {
		t.Errorf("purchase events = %d, want none for a failed purchase", len(got))
	}

	// The purchase can be retried once the store recovers.
	f.store.failAppend = false
	if _, err := f.svc.Purchase(context.Background(), doc, "star-sticker"); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !doc.Owns("star-sticker") || doc.TokensSpent != 25 {
		t.Errorf("doc = owns %v spent %d, want the retry applied", doc.Cosmetics, doc.TokensSpent)
	}
}

func TestPurchaseChargeFailureFavorsTraveler(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 100)
	f.store.failIncrement = true

	_, err := f.svc.Purchase(context.Background(), doc, "star-sticker")
	if err == nil {
		t.Fatal("purchase should report the failed charge")
	}
	if doc.Owns("star-sticker") || doc.TokensSpent != 0 {
		t.Errorf("doc = owns %v spent %d, want the local document reverted", doc.Cosmetics, doc.TokensSpent)
	}

	// Ownership was written before the charge, so the interrupted purchase
	// leans toward the traveler: the store may show the item, never a
	// charge without it.
	stored, err := f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.TokensSpent != 0 {
		t.Errorf("stored spent = %d, want no charge without a finished purchase", stored.TokensSpent)
	}
}

func TestEquip(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 200)

	for _, id := range []string{"star-sticker", "rocket-sticker"} {
		if _, err := f.svc.Purchase(context.Background(), doc, id); err != nil {
			t.Fatalf("purchase %s: %v", id, err)
		}
	}

	item, err := f.svc.Equip(context.Background(), doc, "star-sticker")
	if err != nil {
		t.Fatalf("equip: %v", err)
	}
	if item.Slot != SlotSticker || doc.Equipped[SlotSticker] != "star-sticker" {
		t.Errorf("equipped = %v, want star-sticker in the sticker slot", doc.Equipped)
	}

	// Equipping another item in the same slot replaces the first.
	if _, err := f.svc.Equip(context.Background(), doc, "rocket-sticker"); err != nil {
		t.Fatalf("swap: %v", err)
	}
	if doc.Equipped[SlotSticker] != "rocket-sticker" {
		t.Errorf("equipped = %v, want rocket-sticker after the swap", doc.Equipped)
	}

	stored, err := f.store.Get(context.Background(), "0xWALLET")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Equipped[SlotSticker] != "rocket-sticker" {
		t.Errorf("stored equipped = %v, want the swap persisted", stored.Equipped)
	}
}

func TestEquipNotOwned(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 100)

	_, err := f.svc.Equip(context.Background(), doc, "star-sticker")
	if !errors.Is(err, ErrNotOwned) {
		t.Errorf("err = %v, want ErrNotOwned", err)
	}
}

func TestEquipUnknownCosmetic(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 100)

	_, err := f.svc.Equip(context.Background(), doc, "plasma-cape")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEquipStoreDownRevertsSlot(t *testing.T) {
	f := newTestShop(t)
	doc := seedDoc(t, f, 200)

	for _, id := range []string{"star-sticker", "rocket-sticker"} {
		if _, err := f.svc.Purchase(context.Background(), doc, id); err != nil {
			t.Fatalf("purchase %s: %v", id, err)
		}
	}
	if _, err := f.svc.Equip(context.Background(), doc, "star-sticker"); err != nil {
		t.Fatalf("equip: %v", err)
	}

	f.store.failSet = true
	_, err := f.svc.Equip(context.Background(), doc, "rocket-sticker")
	if err == nil {
		t.Fatal("equip should fail when the store rejects the write")
	}
	if doc.Equipped[SlotSticker] != "star-sticker" {
		t.Errorf("equipped = %v, want the previous item restored", doc.Equipped)
	}
}

func TestOwnedResolvesCatalogItems(t *testing.T) {
	doc := progress.NewUserProgress("0xWALLET", "what-is-blockchain", 1)
	doc.Cosmetics = []string{"star-sticker", "retired-cape", "comet-badge"}

	owned := Owned(doc)
	if len(owned) != 2 {
		t.Fatalf("owned = %+v, want the two catalog items", owned)
	}
	if owned[0].ID != "star-sticker" || owned[1].ID != "comet-badge" {
		t.Errorf("owned = %+v, want star-sticker then comet-badge", owned)
	}
}
