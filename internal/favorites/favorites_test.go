// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package favorites

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/redis/go-redis/v9"

	"recipebox/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkeyClient returns a Redis client on DB 15, skipping when Valkey is
// unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, keyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return client
}

// exerciseStore runs the contract every backend must satisfy.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if got := s.Load(ctx); len(got) != 0 {
		t.Fatalf("fresh store: got %v, want empty", got.IDs())
	}

	if err := s.Save(ctx, models.NewFavoriteSet(3, 1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := s.Load(ctx).IDs(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Load after Save: got %v, want [1 3]", got)
	}

	added, err := Toggle(ctx, s, 7)
	if err != nil || !added {
		t.Fatalf("Toggle(7): added=%v err=%v", added, err)
	}
	added, err = Toggle(ctx, s, 7)
	if err != nil || added {
		t.Fatalf("second Toggle(7): added=%v err=%v", added, err)
	}
	if got := s.Load(ctx).IDs(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("double toggle should restore the set: got %v", got)
	}

	if err := s.Save(ctx, models.NewFavoriteSet()); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	if got := s.Load(ctx); len(got) != 0 {
		t.Errorf("after clearing: got %v", got.IDs())
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemoryStoreCorruptData(t *testing.T) {
	m := NewMemory()
	m.data = []byte(`{"not": "a list"}`)

	if got := m.Load(context.Background()); len(got) != 0 {
		t.Errorf("corrupt data should load as empty, got %v", got.IDs())
	}
}

func TestMemoryScopedIsolation(t *testing.T) {
	scoped := NewMemoryScoped()
	ctx := context.Background()

	alice := scoped.ForVisitor("alice")
	bob := scoped.ForVisitor("bob")

	if _, err := Toggle(ctx, alice, 2); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if bob.Load(ctx).Has(2) {
		t.Error("favorites leaked between visitors")
	}
	if !scoped.ForVisitor("alice").Load(ctx).Has(2) {
		t.Error("same visitor should get the same store back")
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "favorites.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	exerciseStore(t, s)
}

func TestSQLiteStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Save(ctx, models.NewFavoriteSet(4, 5)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Close()

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if got := reopened.Load(ctx).IDs(); !reflect.DeepEqual(got, []int{4, 5}) {
		t.Errorf("after reopen: got %v, want [4 5]", got)
	}
}

func TestSQLiteStoreCorruptValue(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "favorites.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	if _, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, Key, "garbage"); err != nil {
		t.Fatalf("insert corrupt value: %v", err)
	}
	if got := s.Load(context.Background()); len(got) != 0 {
		t.Errorf("corrupt value should load as empty, got %v", got.IDs())
	}
}

func TestSQLiteStoreClosedDB(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "favorites.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	s.Close()

	// Load must not propagate the failure.
	if got := s.Load(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("closed db: got %v, want empty set", got)
	}
	if err := s.Save(context.Background(), models.NewFavoriteSet(1)); err == nil {
		t.Error("Save on closed db should fail")
	}
}

func TestValkeyStore(t *testing.T) {
	client := testValkeyClient(t)
	v := NewValkey(client, 0)

	exerciseStore(t, v.ForVisitor("test-visitor"))

	// Other visitors are unaffected.
	ctx := context.Background()
	if err := v.ForVisitor("a").Save(ctx, models.NewFavoriteSet(1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if v.ForVisitor("b").Load(ctx).Has(1) {
		t.Error("favorites leaked between visitors")
	}

	ttl, err := client.TTL(ctx, keyPrefix+"a").Result()
	if err != nil || ttl <= 0 {
		t.Errorf("expected a TTL on saved favorites, got %v (%v)", ttl, err)
	}
}

func TestValkeyStoreUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	s := NewValkey(client, 0).ForVisitor("x")
	if got := s.Load(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("unreachable backend: got %v, want empty set", got)
	}
}

// failingStore saves nothing and always errors.
type failingStore struct{ Memory }

func (f *failingStore) Save(context.Context, models.FavoriteSet) error {
	return errors.New("disk full")
}

func TestToggleSaveError(t *testing.T) {
	added, err := Toggle(context.Background(), &failingStore{}, 3)
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	if added {
		t.Error("membership should be reported unchanged when the save fails")
	}
}
