package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Ranatar/philosophical-concepts-service/internal/cache"
	"github.com/Ranatar/philosophical-concepts-service/pkg/models"
)

// DefaultCacheTTL bounds how long a cached completion stays valid.
const DefaultCacheTTL = time.Hour

// Recorder accepts one interaction record per completed model call.
// Appends are best-effort: a failed append never fails the completion.
type Recorder interface {
	Append(ctx context.Context, rec models.InteractionRecord) error
}

// CompletionRequest describes one model call.
type CompletionRequest struct {
	UserID      string
	ConceptID   *string
	Kind        models.OperationKind
	Prompt      string
	MaxTokens   int
	Temperature float64
	UseCache    bool
	System      string
}

// CompletionResult is the text and token cost of one completion.
type CompletionResult struct {
	Text       string `json:"text"`
	TokensUsed int    `json:"tokens_used"`
}

// Gateway dispatches completions with content-addressed caching and
// append-only interaction logging. Safe for concurrent use. A cache hit
// skips the network call, the token cost and the interaction log.
type Gateway struct {
	completer Completer
	cache     cache.Cache
	recorder  Recorder
	ttl       time.Duration
}

// NewGateway wires a gateway. cache and recorder may be nil, which disables
// caching and logging respectively.
func NewGateway(completer Completer, c cache.Cache, recorder Recorder, ttl time.Duration) *Gateway {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Gateway{completer: completer, cache: c, recorder: recorder, ttl: ttl}
}

// Complete performs one completion, consulting the cache first when the
// request allows it. Model failures are wrapped into ModelRequestError.
func (g *Gateway) Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error) {
	key := cacheKey(req.Prompt, req.MaxTokens, req.Temperature)

	if req.UseCache && g.cache != nil {
		if cached, ok := g.lookup(key); ok {
			log.Debug().
				Str("kind", string(req.Kind)).
				Str("key", key[:12]).
				Msg("completion cache hit")
			return cached, nil
		}
	}

	start := time.Now()
	text, tokens, err := g.completer.Complete(ctx, req.Prompt, req.System, req.MaxTokens, req.Temperature)
	if err != nil {
		return CompletionResult{}, &ModelRequestError{Cause: err}
	}
	duration := time.Since(start)

	result := CompletionResult{Text: text, TokensUsed: tokens}

	if req.UseCache && g.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			g.cache.SetWithTTL(key, string(data), g.ttl)
		}
	}

	// Logging happens on the miss path only: a cache hit is invisible to
	// cost accounting.
	g.record(ctx, req, result, duration)

	return result, nil
}

func (g *Gateway) lookup(key string) (CompletionResult, bool) {
	raw, ok := g.cache.Get(key)
	if !ok {
		return CompletionResult{}, false
	}
	var result CompletionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// A corrupt entry degrades to a miss.
		g.cache.Delete(key)
		return CompletionResult{}, false
	}
	return result, true
}

func (g *Gateway) record(ctx context.Context, req CompletionRequest, result CompletionResult, duration time.Duration) {
	if g.recorder == nil {
		return
	}
	rec := models.InteractionRecord{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		ConceptID:    req.ConceptID,
		Kind:         req.Kind,
		PromptText:   req.Prompt,
		ResponseText: result.Text,
		TokensUsed:   result.TokensUsed,
		CreatedAt:    time.Now().UTC(),
		DurationMs:   duration.Milliseconds(),
	}
	if err := g.recorder.Append(ctx, rec); err != nil {
		log.Error().Err(err).
			Str("user_id", req.UserID).
			Str("kind", string(req.Kind)).
			Msg("interaction log append failed")
	}
}

// cacheKey is a stable content-addressed digest of the request parameters
// that determine the completion.
func cacheKey(prompt string, maxTokens int, temperature float64) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%g", prompt, maxTokens, temperature)
	return hex.EncodeToString(h.Sum(nil))
}
