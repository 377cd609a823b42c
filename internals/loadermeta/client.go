// Package loadermeta talks to the Fabric / Quilt meta services
// that list the libraries a loader version needs.
package loadermeta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Masterminds/semver/v3"
	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/pillowmc/pillowgen/internals/minecraft"
	"github.com/pkg/errors"
)

const (
	// QuiltMetaURL is the default meta service
	QuiltMetaURL = "https://meta.quiltmc.org/v3/"
	// FabricMetaURL serves the same format for fabric loader versions
	FabricMetaURL = "https://meta.fabricmc.net/v2/"
)

// Role selects which launcher profile the meta service should return
type Role string

const (
	// RoleProfile is the client (launcher profile) library set
	RoleProfile Role = "profile"
	// RoleServer is the dedicated server library set
	RoleServer Role = "server"
)

type Client struct {
	http    *http.Client
	baseURL *url.URL
}

// New returns a Client for the meta service at baseURL (QuiltMetaURL if empty)
func New(httpClient *http.Client, baseURL string) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = QuiltMetaURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid meta url %q: %w", baseURL, err)
	}

	return &Client{
		http:    httpClient,
		baseURL: parsed,
	}, nil
}

// url joins the addedPath to the baseURL (panics if new path can not be parsed)
func (c *Client) url(addedPath ...string) string {
	joined, err := url.JoinPath(c.baseURL.String(), addedPath...)
	if err != nil {
		panic(err)
	}
	return joined
}

// profileJSON only contains the fields we care about
type profileJSON struct {
	Libraries *[]minecraft.LibraryReference `json:"libraries"`
}

// FetchLibraries returns the libraries the loader declares for the given game version
func (c *Client) FetchLibraries(ctx context.Context, gameVersion string, loaderVersion string, role Role) ([]minecraft.LibraryReference, error) {
	if _, err := semver.NewVersion(loaderVersion); err != nil {
		return nil, &merrors.CliError{
			Err:  fmt.Errorf("loader version %q is not a valid version: %w", loaderVersion, err),
			Help: "pass a quilt loader release like 0.26.0",
		}
	}

	endpoint := c.url("versions/loader", gameVersion, loaderVersion, string(role), "json")
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(merrors.ErrNetwork, "invalid url %s: %s", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(merrors.ErrNetwork, "error while fetching %s: %s", endpoint, err)
	}
	defer res.Body.Close()

	var profile profileJSON
	if err := decode(res, &profile); err != nil {
		return nil, errors.Wrapf(err, "loader %s for minecraft %s", loaderVersion, gameVersion)
	}

	if profile.Libraries == nil {
		return nil, errors.Wrap(merrors.ErrMalformedMetadata, "no libraries in profile json")
	}
	for i, lib := range *profile.Libraries {
		if lib.Name == "" {
			return nil, errors.Wrapf(merrors.ErrMalformedMetadata, "library %d has no name", i)
		}
	}

	return *profile.Libraries, nil
}

// decode is a helper that decodes json, and checks the status code
func decode(res *http.Response, v interface{}) error {
	switch {
	case res.StatusCode == http.StatusNotFound:
		return errors.Wrap(merrors.ErrNetwork, "meta service does not know this version combination")
	case res.StatusCode < 200 || res.StatusCode > 299:
		return errors.Wrapf(merrors.ErrNetwork, "unexpected status code: %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return errors.Wrapf(merrors.ErrMalformedMetadata, "invalid json: %s", err)
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "response"
			}
			return errors.Wrapf(merrors.ErrMalformedMetadata, "%s has the wrong type", field)
		}
		return errors.Wrapf(merrors.ErrNetwork, "error while reading response: %s", err)
	}

	return nil
}
