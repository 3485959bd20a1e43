package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"carmarket/models"
)

var (
	// ErrUnauthorized is returned for any 401 answer: bad credentials,
	// rejected signup, or a request that needed a session and had none.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden is returned for 403 answers; the API uses this status
	// for car lookups with an unknown id.
	ErrForbidden = errors.New("forbidden")
)

// HTTPClientConfig configures an HTTP API client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client
}

// NewHTTPAPIClient constructs an APIClient talking to the given base URL.
// The underlying resty client owns a cookie jar, so the loginToken cookie
// set by Login/Signup is replayed on subsequent requests automatically.
func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3030"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	jar, _ := cookiejar.New(nil)

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetCookieJar(jar)

	return &httpAPIClient{client: cli}
}

func (c *httpAPIClient) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post("/api/auth/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (c *httpAPIClient) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (c *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpAPIClient) QueryCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	req := c.client.R().SetContext(ctx)

	if filter.Txt != "" {
		req.SetQueryParam("txt", filter.Txt)
	}
	if filter.ByPrice {
		req.SetQueryParam("maxPrice", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}

	var cars []models.Car
	resp, err := req.SetResult(&cars).Get("/api/car")
	if err != nil {
		return nil, fmt.Errorf("query cars request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return cars, nil
}

func (c *httpAPIClient) GetCar(ctx context.Context, id string) (models.Car, error) {
	var car models.Car
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&car).
		Get("/api/car/" + id)
	if err != nil {
		return models.Car{}, fmt.Errorf("get car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Car{}, err
	}

	return car, nil
}

func (c *httpAPIClient) AddCar(ctx context.Context, car models.Car) (models.Car, error) {
	var savedCar models.Car
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(car).
		SetResult(&savedCar).
		Post("/api/car")
	if err != nil {
		return models.Car{}, fmt.Errorf("add car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Car{}, err
	}

	return savedCar, nil
}

func (c *httpAPIClient) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	var savedCar models.Car
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(car).
		SetResult(&savedCar).
		Put("/api/car")
	if err != nil {
		return models.Car{}, fmt.Errorf("update car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Car{}, err
	}

	return savedCar, nil
}

func (c *httpAPIClient) RemoveCar(ctx context.Context, id string) (models.RemoveResult, error) {
	var result models.RemoveResult
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Delete("/api/car/" + id)
	if err != nil {
		return models.RemoveResult{}, fmt.Errorf("remove car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoveResult{}, err
	}

	return result, nil
}

func (c *httpAPIClient) UpdateScore(ctx context.Context, update models.UserUpdate) (models.User, error) {
	var user models.User
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&user).
		Put("/api/user")
	if err != nil {
		return models.User{}, fmt.Errorf("update score request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// mapHTTPError converts non-2xx responses into sentinel or descriptive
// errors. The response body is the API's short text message and is carried
// in the error for diagnostics.
func mapHTTPError(resp *resty.Response) error {
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, strings.TrimSpace(resp.String()))
	case resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, strings.TrimSpace(resp.String()))
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
}
