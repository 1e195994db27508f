package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "hotel_builder/internal/adapters/redis"
	"hotel_builder/internal/domain"
)

func newCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCache_SetGetDel(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	h := domain.Hotel{ID: 7, Name: "Grand Istanbul Hotel", Phone: "+90 212 555 0123"}
	if err := c.Set(ctx, "hotel:7", h, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.Hotel
	ok, err := c.Get(ctx, "hotel:7", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Name != h.Name || got.ID != h.ID {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := c.Del(ctx, "hotel:7"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "hotel:7", &got)
	if err != nil {
		t.Fatalf("get after del: %v", err)
	}
	if ok {
		t.Fatal("key should be gone after Del")
	}
}

func TestCache_SetRejectsUnmarshalable(t *testing.T) {
	c := newCache(t)
	if err := c.Set(context.Background(), "bad", make(chan int), 60); err == nil {
		t.Fatal("value that cannot marshal should surface an error")
	}
}

func TestCache_MissIsNotAnError(t *testing.T) {
	c := newCache(t)

	var got domain.Hotel
	ok, err := c.Get(context.Background(), "absent", &got)
	if err != nil {
		t.Fatalf("miss: %v", err)
	}
	if ok {
		t.Fatal("absent key reported as hit")
	}
}
