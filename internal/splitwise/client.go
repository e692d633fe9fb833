// Package splitwise implements the HTTP client for the Splitwise REST API.
//
// The client performs exactly one attempt per call and never retries or
// caches; callers see every remote failure directly.
package splitwise

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/pkg/currencypkg"
	"github.com/go-petr/pet-split/pkg/errorspkg"
)

const (
	defaultBaseURL = "https://secure.splitwise.com/api/v3.0"
	defaultTimeout = 30 * time.Second
)

// Config describes the credentials and transport settings of a session.
type Config struct {
	APIKey         string
	ConsumerKey    string
	ConsumerSecret string
	BaseURL        string
	Timeout        time.Duration
}

// Client calls the Splitwise REST API over HTTP.
type Client struct {
	apiKey         string
	consumerKey    string
	consumerSecret string
	baseURL        string
	httpClient     *http.Client
}

// New returns a client authenticated with the given credentials.
func New(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:         cfg.APIKey,
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

// CurrentUser returns the identity of the authenticated account.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var res struct {
		User domain.User `json:"user"`
	}

	if err := c.get(ctx, "/get_current_user", nil, &res); err != nil {
		return domain.User{}, err
	}

	return res.User, nil
}

// Friends returns the friend roster of the authenticated account, balances
// included.
func (c *Client) Friends(ctx context.Context) ([]domain.Friend, error) {
	var res struct {
		Friends []domain.Friend `json:"friends"`
	}

	if err := c.get(ctx, "/get_friends", nil, &res); err != nil {
		return nil, err
	}

	return res.Friends, nil
}

// ExpensesBetween returns expenses dated inside the (datedAfter, datedBefore)
// window. Dates use the 2006-01-02 layout.
func (c *Client) ExpensesBetween(ctx context.Context, datedAfter, datedBefore string) ([]domain.Expense, error) {
	query := url.Values{}
	query.Set("dated_after", datedAfter)
	query.Set("dated_before", datedBefore)

	var res struct {
		Expenses []domain.Expense `json:"expenses"`
	}

	if err := c.get(ctx, "/get_expenses", query, &res); err != nil {
		return nil, err
	}

	return res.Expenses, nil
}

// GroupByID returns the group with the given id.
func (c *Client) GroupByID(ctx context.Context, id int64) (domain.Group, error) {
	var res struct {
		Group domain.Group `json:"group"`
	}

	if err := c.get(ctx, fmt.Sprintf("/get_group/%d", id), nil, &res); err != nil {
		return domain.Group{}, err
	}

	return res.Group, nil
}

// CreateExpense submits the draft and returns the created expense id.
func (c *Client) CreateExpense(ctx context.Context, draft domain.ExpenseDraft) (int64, error) {
	if !currencypkg.IsSupported(draft.CurrencyCode) {
		return 0, domain.NewValidationError("unsupported currency code " + draft.CurrencyCode)
	}

	var res struct {
		Expenses []domain.Expense `json:"expenses"`
		Errors   errorList        `json:"errors"`
	}

	if err := c.post(ctx, "/create_expense", draft, &res); err != nil {
		return 0, err
	}

	if !res.Errors.empty() {
		return 0, domain.NewValidationError("failed to add expense: " + res.Errors.flatten())
	}

	if len(res.Expenses) == 0 {
		return 0, domain.NewTransportError("unexpected error: create_expense returned no expense")
	}

	return res.Expenses[0].ID, nil
}

// CreateGroup creates an empty group with the given name.
func (c *Client) CreateGroup(ctx context.Context, name string) (domain.Group, error) {
	body := map[string]string{"name": name}

	var res struct {
		Group struct {
			ID     int64     `json:"id"`
			Name   string    `json:"name"`
			Errors errorList `json:"errors"`
		} `json:"group"`
		Errors errorList `json:"errors"`
	}

	if err := c.post(ctx, "/create_group", body, &res); err != nil {
		return domain.Group{}, err
	}

	if !res.Errors.empty() {
		return domain.Group{}, domain.NewValidationError(res.Errors.flatten())
	}

	if !res.Group.Errors.empty() {
		return domain.Group{}, domain.NewValidationError(res.Group.Errors.flatten())
	}

	return domain.Group{ID: res.Group.ID, Name: res.Group.Name}, nil
}

// AddUserToGroup enrolls one user into a group and returns the enrolled
// user's ledger record.
func (c *Client) AddUserToGroup(ctx context.Context, arg domain.EnrollUserParams) (domain.User, error) {
	var res struct {
		Success bool        `json:"success"`
		User    domain.User `json:"user"`
		Errors  errorList   `json:"errors"`
	}

	if err := c.post(ctx, "/add_user_to_group", arg, &res); err != nil {
		return domain.User{}, err
	}

	if !res.Errors.empty() {
		return domain.User{}, domain.NewValidationError(res.Errors.flatten())
	}

	if !res.Success {
		return domain.User{}, domain.NewValidationError("user was not added to the group")
	}

	return res.User, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.NewTransportError("unexpected error: " + err.Error())
	}

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.NewTransportError("unexpected error: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return domain.NewTransportError("unexpected error: " + err.Error())
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey == "" {
		return errorspkg.ErrUnconfigured
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewTransportError("unexpected error: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		msg := fmt.Sprintf("unexpected error: splitwise returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))

		return domain.NewTransportError(msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewTransportError("unexpected error: decoding splitwise response: " + err.Error())
	}

	return nil
}
