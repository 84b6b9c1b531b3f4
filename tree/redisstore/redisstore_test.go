package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/lordrook/J48/attribute"
	"github.com/lordrook/J48/tree"
	treejson "github.com/lordrook/J48/tree/json"
	"gopkg.in/redis.v5"
)

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("J48_REDIS_ADDR")
	if addr == "" {
		t.Skip("J48_REDIS_ADDR not set")
	}
	ctx := context.Background()
	s := New(redis.NewClient(&redis.Options{Addr: addr}), "j48-test", treejson.New())
	defer s.Close(ctx)
	play := attribute.NewDiscreteAttribute("Play")
	play.MarkAsTarget()
	temperature := attribute.NewContinuousAttribute("Temperature")
	root, err := tree.NewContinuousNode(temperature, "65", tree.NewLeaf("No"), tree.NewLeaf("Yes"))
	if err != nil {
		t.Fatal(err)
	}
	id, err := s.Create(ctx, tree.New(root, play))
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.String() != tree.New(root, play).String() {
		t.Errorf("expected stored tree back, got %v", got)
	}
	if err = s.Store(ctx, id, tree.New(tree.NewLeaf("Yes"), play)); err != nil {
		t.Fatal(err)
	}
	if err = s.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if got, err = s.Get(ctx, id); err != nil || got != nil {
		t.Errorf("expected deleted tree to be gone, got %v, %v", got, err)
	}
}

func TestKeyFor(t *testing.T) {
	rs := &redisStore{prefix: "j48:tree"}
	if key := rs.keyFor("3f2a"); key != "j48:tree:3f2a" {
		t.Errorf("expected key j48:tree:3f2a, got %s", key)
	}
}
