// Package eventapi, etkinlik (events) HTTP API'si için client'tır.
//
// Abonelik kaydı, referral ranking hesaplaması ve davet linki sayaçları bu
// servisin sorumluluğundadır — landing server sadece çağırır.
//
// Endpoint'ler:
//
//	POST /subscriptions                              → { subscriberId }
//	GET  /ranking                                    → { ranking: [{id, name, score}] }
//	GET  /subscribers/{id}/ranking/clicks            → { count }
//	GET  /subscribers/{id}/ranking/count             → { count }
//	GET  /subscribers/{id}/ranking/position          → { position | null }
//	GET  /invites/{id}                               → 302, tıklamayı sayar
//
// GET istekleri idempotent olduğu için exponential backoff ile tekrar denenir;
// POST asla tekrar denenmez (çift kayıt riski).
package eventapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Operation isimleri — log ve metrik label'ı olarak kullanılır.
const (
	OpSubscribe       = "subscribe"
	OpRanking         = "ranking"
	OpInviteClicks    = "invite_clicks"
	OpInviteCount     = "invite_count"
	OpRankingPosition = "ranking_position"
)

// errDecode, 2xx yanıtın gövdesi beklenen JSON değilse döner.
// Aynı istek tekrar edilince düzelmez; retry edilmez.
var errDecode = errors.New("decode response")

// maxErrorBody, hata yanıtından okunacak maksimum byte sayısı.
const maxErrorBody = 4 << 10

// Observer, her upstream çağrısı bittiğinde çağrılır (metrik toplama için).
// Tekrar denemeler dahil tek bir çağrı olarak raporlanır.
type Observer func(op string, elapsed time.Duration, err error)

// SubscribeInput, POST /subscriptions gövdesi.
// Referrer nil ise JSON'da null olarak gider.
type SubscribeInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Referrer *string `json:"referrer"`
}

// RankingEntry, upstream'in döndüğü tek ranking satırı.
type RankingEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// StatusError, upstream 2xx dışı bir status döndüğünde oluşur.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("eventapi %s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("eventapi %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// IsClientError, hata upstream'in 4xx yanıtından mı geliyor.
func IsClientError(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 400 && se.StatusCode < 500
	}
	return false
}

// IsNotFound, upstream 404 döndü mü.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Client, events API client'ı. Goroutine-safe.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	maxTries uint
	newBack  func() backoff.BackOff
	observe  Observer
}

// Option, Client için functional option.
type Option func(*Client)

// WithHTTPClient, varsayılan http.Client'ı değiştirir (test için).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMaxTries, GET istekleri için toplam deneme sayısı (1 = tekrar yok).
func WithMaxTries(n uint) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxTries = n
		}
	}
}

// WithBackOff, tekrar denemeler arası bekleme stratejisini değiştirir.
func WithBackOff(newBack func() backoff.BackOff) Option {
	return func(c *Client) { c.newBack = newBack }
}

// WithObserver, her çağrı sonunda tetiklenen callback.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observe = o }
}

// New, baseURL'e bağlanan yeni Client oluşturur.
// timeout tek bir HTTP denemesinin üst sınırıdır.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid events API url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid events API url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:  u,
		http:     &http.Client{Timeout: timeout},
		maxTries: 3,
		newBack: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 100 * time.Millisecond
			b.MaxInterval = time.Second
			return b
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Subscribe, kullanıcıyı etkinliğe kaydeder ve upstream'in verdiği subscriber ID'yi döner.
func (c *Client) Subscribe(ctx context.Context, in SubscribeInput) (id string, err error) {
	defer c.track(OpSubscribe, time.Now(), &err)

	body, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("eventapi %s: encode request: %w", OpSubscribe, err)
	}

	var out struct {
		SubscriberID string `json:"subscriberId"`
	}
	if err := c.do(ctx, OpSubscribe, http.MethodPost, "/subscriptions", body, &out); err != nil {
		return "", err
	}
	if out.SubscriberID == "" {
		return "", fmt.Errorf("eventapi %s: response has no subscriberId", OpSubscribe)
	}
	return out.SubscriberID, nil
}

// Ranking, upstream'in hesapladığı referral ranking'i döner. Sıra korunur.
func (c *Client) Ranking(ctx context.Context) (entries []RankingEntry, err error) {
	defer c.track(OpRanking, time.Now(), &err)

	var out struct {
		Ranking []RankingEntry `json:"ranking"`
	}
	if err := c.get(ctx, OpRanking, "/ranking", &out); err != nil {
		return nil, err
	}
	if out.Ranking == nil {
		out.Ranking = []RankingEntry{}
	}
	return out.Ranking, nil
}

// InviteClicks, subscriber'ın davet linkine kaç kez tıklandığını döner.
func (c *Client) InviteClicks(ctx context.Context, subscriberID string) (n int, err error) {
	defer c.track(OpInviteClicks, time.Now(), &err)
	return c.count(ctx, OpInviteClicks, subscriberPath(subscriberID, "clicks"))
}

// InviteCount, subscriber'ın davetiyle yapılan kayıt sayısını döner.
func (c *Client) InviteCount(ctx context.Context, subscriberID string) (n int, err error) {
	defer c.track(OpInviteCount, time.Now(), &err)
	return c.count(ctx, OpInviteCount, subscriberPath(subscriberID, "count"))
}

// RankingPosition, subscriber'ın ranking'deki sırasını döner.
// Henüz hiç davet getirmemişse upstream null döner → nil.
func (c *Client) RankingPosition(ctx context.Context, subscriberID string) (pos *int, err error) {
	defer c.track(OpRankingPosition, time.Now(), &err)

	var out struct {
		Position *int `json:"position"`
	}
	if err := c.get(ctx, OpRankingPosition, subscriberPath(subscriberID, "position"), &out); err != nil {
		return nil, err
	}
	return out.Position, nil
}

// InviteURL, subscriber'ın paylaşacağı davet linki.
// Link upstream'e gider: tıklama sayılır, ziyaretçi ?referrer= ile landing page'e döner.
func (c *Client) InviteURL(subscriberID string) string {
	return c.baseURL.String() + "/invites/" + url.PathEscape(subscriberID)
}

func subscriberPath(subscriberID, metric string) string {
	return "/subscribers/" + url.PathEscape(subscriberID) + "/ranking/" + metric
}

func (c *Client) count(ctx context.Context, op, path string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, op, path, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// get, GET isteğini backoff ile tekrar dener. 4xx yanıtları ve okunamayan
// 2xx gövdeleri kalıcı hatadır.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := c.do(ctx, op, http.MethodGet, path, nil, out)
		if err != nil && (IsClientError(err) || errors.Is(err, errDecode)) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}, backoff.WithBackOff(c.newBack()), backoff.WithMaxTries(c.maxTries))
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("eventapi %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("eventapi %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("eventapi %s: %w: %v", op, errDecode, err)
	}
	return nil
}

func (c *Client) track(op string, start time.Time, err *error) {
	if c.observe != nil {
		c.observe(op, time.Since(start), *err)
	}
}
