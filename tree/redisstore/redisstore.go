/*
Package redisstore provides a tree.Store that keeps encoded trees
in a redis DB.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lordrook/J48/tree"
	"gopkg.in/redis.v5"
)

/*
TreeEncodeDecoder is an interface for objects
that allow encoding trees into slices of
bytes and decoding them back to trees.
*/
type TreeEncodeDecoder interface {
	Encode(*tree.Tree) ([]byte, error)
	Decode([]byte) (*tree.Tree, error)
}

type redisStore struct {
	rc      *redis.Client
	prefix  string
	tencdec TreeEncodeDecoder
}

//New builds a tree.Store backed by a redis DB. Trees are
//kept under keys made of the given prefix and their ID.
func New(rc *redis.Client, prefix string, tencdec TreeEncodeDecoder) tree.Store {
	return &redisStore{rc, prefix, tencdec}
}

func (rs *redisStore) Create(ctx context.Context, t *tree.Tree) (string, error) {
	data, err := rs.tencdec.Encode(t)
	if err != nil {
		return "", fmt.Errorf("creating tree: encoding tree: %v", err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		id := uuid.NewString()
		ok, err := rs.rc.SetNX(rs.keyFor(id), data, 0).Result()
		if err != nil {
			return "", fmt.Errorf("creating tree in redis: %v", err)
		}
		if ok {
			return id, nil
		}
	}
}

func (rs *redisStore) Get(ctx context.Context, id string) (*tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(rs.keyFor(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", id, err)
	}
	t, err := rs.tencdec.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: decoding: %v", id, err)
	}
	return t, nil
}

func (rs *redisStore) Store(ctx context.Context, id string, t *tree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.keyFor(id)
	data, err := rs.tencdec.Encode(t)
	if err != nil {
		return fmt.Errorf("storing tree %q: encoding tree: %v", redisID, err)
	}
	ok, err := rs.rc.SetXX(redisID, data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing tree %q in redis: %v", redisID, err)
	}
	if !ok {
		return fmt.Errorf("storing tree %q: not found", redisID)
	}
	return nil
}

func (rs *redisStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.keyFor(id)
	_, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", redisID, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}
