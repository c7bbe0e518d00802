package supabase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/league-dashboard/internal/domain/user"
	"github.com/riskibarqy/league-dashboard/internal/platform/cache"
	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/league-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/league-dashboard/internal/usecase"
)

const userPath = "/auth/v1/user"

var errTransient = errors.New("supabase auth transient failure")

type Config struct {
	URL       string
	AnonKey   string
	JWTSecret string
	Timeout   time.Duration
	Breaker   resilience.CircuitBreakerConfig
}

// Client resolves Supabase access tokens into principals. Tokens signed with
// the project secret are checked locally; anything else goes to the auth API.
type Client struct {
	httpClient *http.Client
	userURL    string
	anonKey    string
	jwtSecret  []byte
	breaker    *resilience.CircuitBreaker
	cache      *cache.Store
	logger     *logging.Logger

	breakerListener resilience.StateListener
}

type Option func(*Client)

// WithCache stores verified principals keyed by the token hash.
func WithCache(store *cache.Store) Option {
	return func(c *Client) {
		c.cache = store
	}
}

func WithBreakerListener(listener resilience.StateListener) Option {
	return func(c *Client) {
		c.breakerListener = listener
	}
}

func NewClient(httpClient *http.Client, cfg Config, logger *logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		httpClient: httpClient,
		userURL:    strings.TrimSuffix(strings.TrimSpace(cfg.URL), "/") + userPath,
		anonKey:    cfg.AnonKey,
		logger:     logger,
	}
	if secret := strings.TrimSpace(cfg.JWTSecret); secret != "" {
		c.jwtSecret = []byte(secret)
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = resilience.NewCircuitBreakerFromConfig("supabase_auth", cfg.Breaker, c.breakerListener)
	return c
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "token is required")
	}
	if c.cache == nil {
		return c.verify(ctx, token)
	}

	value, err := c.cache.GetOrLoad(ctx, "principal:"+hashToken(token), func(ctx context.Context) (any, error) {
		return c.verify(ctx, token)
	})
	if err != nil {
		return user.Principal{}, err
	}
	return value.(user.Principal), nil
}

func (c *Client) verify(ctx context.Context, token string) (user.Principal, error) {
	if len(c.jwtSecret) > 0 {
		principal, err := c.verifyLocal(token)
		if err == nil {
			return principal, nil
		}
		c.logger.DebugContext(ctx, "local token verification failed, asking auth api", "error", err)
	}
	return c.verifyRemote(ctx, token)
}

func (c *Client) verifyLocal(token string) (user.Principal, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Newf("unexpected signing method %v", t.Header["alg"])
		}
		return c.jwtSecret, nil
	})
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "parse jwt")
	}
	if !parsed.Valid {
		return user.Principal{}, errors.New("jwt is not valid")
	}

	subject, _ := claims.GetSubject()
	if strings.TrimSpace(subject) == "" {
		return user.Principal{}, errors.New("jwt has no subject")
	}
	email, _ := claims["email"].(string)
	metadata, _ := claims["user_metadata"].(map[string]any)

	return principalFrom(subject, email, metadata), nil
}

func (c *Client) verifyRemote(ctx context.Context, token string) (user.Principal, error) {
	var decoded userResponse
	err := c.breaker.Do(ctx, func(ctx context.Context) error {
		var err error
		decoded, err = c.fetchUser(ctx, token)
		return err
	}, isCircuitFailure)
	switch {
	case err == nil:
	case errors.Is(err, resilience.ErrCircuitOpen), errors.Is(err, errTransient):
		return user.Principal{}, errors.Wrapf(usecase.ErrDependencyUnavailable, "verify token with supabase: %v", err)
	default:
		return user.Principal{}, err
	}

	if strings.TrimSpace(decoded.ID) == "" {
		return user.Principal{}, errors.Wrap(usecase.ErrUnauthorized, "auth api returned no user id")
	}
	return principalFrom(decoded.ID, decoded.Email, decoded.UserMetadata), nil
}

func (c *Client) fetchUser(ctx context.Context, token string) (userResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userURL, nil)
	if err != nil {
		return userResponse{}, errors.Wrap(err, "create auth user request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return userResponse{}, err
		}
		return userResponse{}, errors.Mark(errors.Wrap(err, "request supabase auth user"), errTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return userResponse{}, errors.Wrapf(usecase.ErrUnauthorized, "auth api rejected token with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return userResponse{}, errors.Mark(errors.Wrap(err, "read auth user response"), errTransient)
	}

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		c.logger.WarnContext(ctx, "supabase auth unavailable", "status_code", resp.StatusCode)
		return userResponse{}, errors.Mark(errors.Newf("supabase auth failed with status %d", resp.StatusCode), errTransient)
	}
	if resp.StatusCode != http.StatusOK {
		return userResponse{}, errors.Wrapf(usecase.ErrUnauthorized, "auth api returned status %d", resp.StatusCode)
	}

	var decoded userResponse
	if err := jsoniter.Unmarshal(body, &decoded); err != nil {
		return userResponse{}, errors.Wrap(err, "unmarshal auth user response")
	}
	return decoded, nil
}

type userResponse struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func principalFrom(id, email string, metadata map[string]any) user.Principal {
	name, _ := metadata["name"].(string)
	if name == "" {
		name, _ = metadata["full_name"].(string)
	}
	return user.Principal{
		UserID:  id,
		Email:   email,
		Name:    strings.TrimSpace(name),
		IsAdmin: isAdmin(metadata),
	}
}

func isAdmin(metadata map[string]any) bool {
	if role, ok := metadata["role"].(string); ok && role == "admin" {
		return true
	}
	flag, ok := metadata["is_admin"].(bool)
	return ok && flag
}

func isCircuitFailure(err error) bool {
	return errors.Is(err, errTransient)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
