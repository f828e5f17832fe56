package engine

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/MayaSCA/focus-city-scape/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc, err := NewServiceWithIDs(ctx, storage.NewSnapshotRepo(db), NewSequentialIDs("t"))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func mustCreateCity(t *testing.T, svc *Service, name string) *City {
	t.Helper()
	city, err := svc.CreateCity(context.Background(), name, "sunrise")
	if err != nil {
		t.Fatalf("CreateCity(%q): %v", name, err)
	}
	return city
}

func TestCreateCityValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	var ve ValidationError
	if _, err := svc.CreateCity(ctx, "   ", "sunrise"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	city := mustCreateCity(t, svc, "  Math  ")
	if city.Name != "Math" {
		t.Fatalf("name=%q, want trimmed", city.Name)
	}
	if city.LocalCurrency != 0 || len(city.Buildings) != 0 {
		t.Fatalf("new city not empty: %+v", city)
	}
}

func TestDeleteCityIdempotentAndKeepsTotals(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	city := mustCreateCity(t, svc, "History")
	if _, err := svc.CompleteSession(ctx, city.ID, 50, 45); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	coins := svc.TotalCurrency()
	hours := svc.TotalStudyHours()

	if err := svc.DeleteCity(ctx, city.ID); err != nil {
		t.Fatalf("DeleteCity: %v", err)
	}
	if len(svc.Cities()) != 0 {
		t.Fatalf("city not deleted")
	}
	if svc.TotalCurrency() != coins || svc.TotalStudyHours() != hours {
		t.Fatalf("deletion changed global totals")
	}

	// Unknown id is a no-op, not an error.
	if err := svc.DeleteCity(ctx, "nope"); err != nil {
		t.Fatalf("DeleteCity unknown id: %v", err)
	}
}

func TestStartSessionDoesNotMutate(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	city := mustCreateCity(t, svc, "Physics")

	var ve ValidationError
	if _, err := svc.StartSession(ctx, city.ID, 0); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for goal 0, got %v", err)
	}
	var nf NotFoundError
	if _, err := svc.StartSession(ctx, "nope", 25); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	session, err := svc.StartSession(ctx, city.ID, 25)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if session.CityID != city.ID || session.GoalMinutes != 25 {
		t.Fatalf("bad session handle: %+v", session)
	}
	if len(city.Buildings) != 0 || svc.TotalStudyHours() != 0 {
		t.Fatalf("StartSession mutated the store")
	}
}

func TestCompleteSessionDualLedger(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	city := mustCreateCity(t, svc, "Math")

	res, err := svc.CompleteSession(ctx, city.ID, 50, 45)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if res.CoinsEarned != 20 {
		t.Fatalf("coins=%d, want 20", res.CoinsEarned)
	}
	b := res.Building
	if !b.Completed || b.Height != 100 || b.RoomsUnlocked != 1 {
		t.Fatalf("building rewards wrong: %+v", b)
	}
	// First session with no history and 50 minutes: office.
	if b.Type != BuildingOffice {
		t.Fatalf("type=%s, want office", b.Type)
	}

	// Both wallets credited by the same amount.
	if city.LocalCurrency != 20 {
		t.Fatalf("localCurrency=%d, want 20", city.LocalCurrency)
	}
	if svc.TotalCurrency() != 20 {
		t.Fatalf("totalCurrency=%d, want 20", svc.TotalCurrency())
	}
	if math.Abs(svc.TotalStudyHours()-50.0/60) > 1e-9 {
		t.Fatalf("totalStudyHours=%v, want %v", svc.TotalStudyHours(), 50.0/60)
	}
	if len(city.Buildings) != 1 || city.Buildings[0] != b {
		t.Fatalf("building not appended to city")
	}
}

func TestCompleteSessionValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	city := mustCreateCity(t, svc, "Chemistry")

	var ve ValidationError
	if _, err := svc.CompleteSession(ctx, city.ID, -1, 25); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for negative minutes, got %v", err)
	}
	if _, err := svc.CompleteSession(ctx, city.ID, 10, 0); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for goal 0, got %v", err)
	}
	var nf NotFoundError
	if _, err := svc.CompleteSession(ctx, "nope", 10, 25); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(city.Buildings) != 0 || svc.TotalCurrency() != 0 {
		t.Fatalf("failed calls mutated the store")
	}
}

func TestClassificationUsesPreSessionHours(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	city := mustCreateCity(t, svc, "Latin")

	// 600 minutes lifts the total to 10h, but classification for this
	// session saw 0h of history.
	res, err := svc.CompleteSession(ctx, city.ID, 600, 1)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if res.Building.Type != BuildingOffice {
		t.Fatalf("first session type=%s, want office", res.Building.Type)
	}

	// Now 10h of history: a 30-minute session becomes a park.
	res, err = svc.CompleteSession(ctx, city.ID, 30, 60)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if res.Building.Type != BuildingPark {
		t.Fatalf("second session type=%s, want park", res.Building.Type)
	}
}

func TestRibbonEarnedOnThresholdCrossing(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	city := mustCreateCity(t, svc, "Biology")

	res, err := svc.CompleteSession(ctx, city.ID, 59, 60)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if len(res.NewRibbons) != 0 {
		t.Fatalf("no ribbon should be earned at %.2fh", res.TotalStudyHours)
	}

	// One more minute crosses the 1h threshold.
	res, err = svc.CompleteSession(ctx, city.ID, 1, 1)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if len(res.NewRibbons) != 1 || res.NewRibbons[0].ID != "first_hour" {
		t.Fatalf("NewRibbons=%+v, want first_hour", res.NewRibbons)
	}

	// Never flips back, and never re-reports.
	res, err = svc.CompleteSession(ctx, city.ID, 5, 5)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if len(res.NewRibbons) != 0 {
		t.Fatalf("ribbon re-reported: %+v", res.NewRibbons)
	}
	for _, r := range svc.Ribbons() {
		if r.ID == "first_hour" && !r.Earned {
			t.Fatalf("first_hour regressed to unearned")
		}
	}
}

func TestPurchaseDecoration(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	city := mustCreateCity(t, svc, "Art")
	res, err := svc.CompleteSession(ctx, city.ID, 50, 45) // 20 coins
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	b := res.Building

	var nf NotFoundError
	if err := svc.PurchaseDecoration(ctx, "nope", "plant", 5); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if err := svc.PurchaseDecoration(ctx, b.ID, "plant", 5); err != nil {
		t.Fatalf("PurchaseDecoration: %v", err)
	}
	if !b.HasDecoration("plant") {
		t.Fatalf("decoration not added")
	}
	if svc.TotalCurrency() != 15 {
		t.Fatalf("totalCurrency=%d, want 15", svc.TotalCurrency())
	}
	// Local wallet untouched by purchases.
	if city.LocalCurrency != 20 {
		t.Fatalf("localCurrency=%d, want 20", city.LocalCurrency)
	}

	var owned AlreadyOwnedError
	if err := svc.PurchaseDecoration(ctx, b.ID, "plant", 5); !errors.As(err, &owned) {
		t.Fatalf("expected AlreadyOwnedError, got %v", err)
	}
	if svc.TotalCurrency() != 15 {
		t.Fatalf("failed purchase changed wallet")
	}

	// 15 coins left: an 18-coin item must be rejected untouched.
	var funds InsufficientFundsError
	if err := svc.PurchaseDecoration(ctx, b.ID, "carpet", 18); !errors.As(err, &funds) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	if svc.TotalCurrency() != 15 || len(b.Decorations) != 1 {
		t.Fatalf("failed purchase mutated the store")
	}
}

func TestRoundTripReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	svc, err := NewServiceWithIDs(ctx, storage.NewSnapshotRepo(db), NewSequentialIDs("t"))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	city := mustCreateCity(t, svc, "Math")
	mustCreateCity(t, svc, "Music")
	if _, err := svc.CompleteSession(ctx, city.ID, 90, 60); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if _, err := svc.CompleteSession(ctx, city.ID, 10, 30); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if err := svc.PurchaseDecoration(ctx, city.Buildings[0].ID, "lamp", 8); err != nil {
		t.Fatalf("PurchaseDecoration: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	db2, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db2.Close()
	svc2, err := NewService(ctx, storage.NewSnapshotRepo(db2))
	if err != nil {
		t.Fatalf("reload service: %v", err)
	}

	if !reflect.DeepEqual(svc.Cities(), svc2.Cities()) {
		t.Fatalf("cities did not round-trip:\n%+v\n%+v", svc.Cities(), svc2.Cities())
	}
	if svc2.TotalCurrency() != svc.TotalCurrency() {
		t.Fatalf("totalCurrency=%d, want %d", svc2.TotalCurrency(), svc.TotalCurrency())
	}
	if math.Abs(svc2.TotalStudyHours()-svc.TotalStudyHours()) > 1e-9 {
		t.Fatalf("totalStudyHours=%v, want %v", svc2.TotalStudyHours(), svc.TotalStudyHours())
	}
	if !reflect.DeepEqual(svc.Ribbons(), svc2.Ribbons()) {
		t.Fatalf("ribbons did not round-trip")
	}
}
