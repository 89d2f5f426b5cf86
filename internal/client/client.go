// Package client habla con la API de cat-registry; lo usa catctl --server.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cat-registry/internal/domain/activity"
	"cat-registry/internal/domain/cats"
	"cat-registry/internal/platform/httpclient"
)

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	hc.Header.Set(activity.SourceHeader, string(activity.SourceCLI))
	return &Client{http: hc}, nil
}

type catPayload struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
	Color      string `json:"color"`
	Mother     string `json:"mother"`
	Father     string `json:"father"`
	Breed      string `json:"breed"`
	Notes      string `json:"notes"`
	Vaccinated string `json:"vaccinated"`
}

func (c *Client) List(ctx context.Context) ([]cats.Cat, error) {
	var out []catPayload
	if err := c.do(ctx, http.MethodGet, "/cats", nil, &out); err != nil {
		return nil, err
	}
	items := make([]cats.Cat, 0, len(out))
	for _, p := range out {
		items = append(items, p.cat())
	}
	return items, nil
}

func (c *Client) Get(ctx context.Context, id string) (cats.Cat, error) {
	if id == "" {
		return cats.Cat{}, cats.ErrNoSelection
	}
	return c.one(ctx, http.MethodGet, catPath(id), nil)
}

func (c *Client) Add(ctx context.Context, f cats.Form) (cats.Cat, error) {
	return c.one(ctx, http.MethodPost, "/cats", fromForm(f))
}

func (c *Client) Edit(ctx context.Context, id string, f cats.Form) (cats.Cat, error) {
	if id == "" {
		return cats.Cat{}, cats.ErrNoSelection
	}
	return c.one(ctx, http.MethodPut, catPath(id), fromForm(f))
}

func (c *Client) Delete(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, cats.ErrNoSelection
	}
	var out struct {
		Removed int `json:"removed"`
	}
	if err := c.do(ctx, http.MethodDelete, catPath(id), nil, &out); err != nil {
		return 0, err
	}
	return out.Removed, nil
}

func (c *Client) ChangeID(ctx context.Context, id, newID string) (cats.Cat, error) {
	if id == "" {
		return cats.Cat{}, cats.ErrNoSelection
	}
	return c.one(ctx, http.MethodPut, catPath(id)+"/id", map[string]string{"id": newID})
}

func (c *Client) RegenerateID(ctx context.Context, id string) (cats.Cat, error) {
	if id == "" {
		return cats.Cat{}, cats.ErrNoSelection
	}
	return c.one(ctx, http.MethodPost, catPath(id)+"/id/regenerate", nil)
}

func (c *Client) one(ctx context.Context, method, path string, in any) (cats.Cat, error) {
	var out catPayload
	if err := c.do(ctx, method, path, in, &out); err != nil {
		return cats.Cat{}, err
	}
	return out.cat(), nil
}

// do traduce las respuestas de error a los errores del dominio.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	err := c.http.DoJSON(ctx, method, path, in, out)

	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	switch httpErr.StatusCode {
	case http.StatusNotFound:
		return cats.ErrNotFound
	case http.StatusBadRequest:
		for _, known := range []error{cats.ErrInvalidID, cats.ErrNoSelection, cats.ErrInvalidInput} {
			if httpErr.Body == known.Error() {
				return known
			}
		}
		return fmt.Errorf("%w: %s", cats.ErrInvalidInput, httpErr.Body)
	default:
		return err
	}
}

func catPath(id string) string {
	return "/cats/" + url.PathEscape(id)
}

func fromForm(f cats.Form) catPayload {
	return catPayload{
		Name:       f.Name,
		Age:        f.Age,
		Gender:     f.Gender,
		Color:      f.Color,
		Mother:     f.Mother,
		Father:     f.Father,
		Breed:      f.Breed,
		Notes:      f.Notes,
		Vaccinated: f.Vaccinated,
	}
}

func (p catPayload) cat() cats.Cat {
	return cats.Cat{
		ID:         p.ID,
		Name:       p.Name,
		Age:        p.Age,
		Gender:     cats.Gender(p.Gender),
		Color:      p.Color,
		Mother:     p.Mother,
		Father:     p.Father,
		Breed:      p.Breed,
		Notes:      p.Notes,
		Vaccinated: cats.Vaccinated(p.Vaccinated),
	}
}
