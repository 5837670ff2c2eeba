package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"inn/infras/otel"
	"inn/internal/domains/cart/model"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"

	"github.com/rs/zerolog/log"
)

const sessionKeyPrefix = "cart:session"

var ErrSessionNotFound = errors.New("cart session not found")

// Store persists cart sessions. A session is exclusively owned by one
// browsing flow and expires on its own; there is no cross-session sharing.
type Store interface {
	Save(ctx context.Context, cart model.Cart, ttlSeconds int) error
	Get(ctx context.Context, id string) (model.Cart, error)
	Delete(ctx context.Context, id string) error
}

type storeImpl struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func NewStore(cache cache.RedisCache, otel otel.Otel) Store {
	return &storeImpl{
		cache: cache,
		otel:  otel,
	}
}

func (s *storeImpl) Save(ctx context.Context, cart model.Cart, ttlSeconds int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(sessionKeyPrefix, cart.ID)

	if err = s.cache.Save(ctx, key, cart, ttlSeconds); err != nil {
		log.Error().Err(err).Str("cartID", cart.ID).Msg("failed to save cart session")

		return fmt.Errorf("failed to save cart session: %w", err)
	}

	return nil
}

func (s *storeImpl) Get(ctx context.Context, id string) (cart model.Cart, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()

	key := shared.BuildCacheKey(sessionKeyPrefix, id)

	if err = s.cache.Get(ctx, key, &cart); err != nil {
		if errors.Is(err, cache.Nil) {
			return cart, ErrSessionNotFound
		}

		scope.TraceError(err)
		log.Error().Err(err).Str("cartID", id).Msg("failed to get cart session")

		return cart, fmt.Errorf("failed to get cart session: %w", err)
	}

	return cart, nil
}

func (s *storeImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(sessionKeyPrefix, id)

	if err = s.cache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("cartID", id).Msg("failed to delete cart session")

		return fmt.Errorf("failed to delete cart session: %w", err)
	}

	return nil
}
