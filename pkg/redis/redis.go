package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/config"
)

// Client enveloppe du client Redis
// Utilisé pour la liste noire des tokens et la limitation de débit à la connexion.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient ouvre la connexion Redis et vérifie avec un Ping
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion Redis: %w", err)
	}

	logger.Info("connexion Redis établie", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Liste noire des tokens ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken ajoute un JTI à la liste noire, TTL aligné sur l'expiration du token
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token déjà expiré, inutile de le bannir
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted vérifie si un JTI est banni
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── Limitation de débit ──

// CheckRateLimit compteur à fenêtre glissante : INCR + EXPIRE sur première requête.
// Retourne false quand la limite est atteinte.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := c.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}

// Close ferme la connexion Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}
