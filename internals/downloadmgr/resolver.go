package downloadmgr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pillowmc/pillowgen/internals/cmdlog"
	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/pillowmc/pillowgen/internals/minecraft"
	"github.com/pkg/errors"
)

// Resolver turns library references into libraries with verified download
// information by streaming every artifact once
type Resolver struct {
	Client *http.Client
	Logger *cmdlog.Logger
}

// New returns a Resolver. A nil client uses http.DefaultClient, a nil logger prints nothing
func New(client *http.Client, logger *cmdlog.Logger) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = cmdlog.Discard()
	}
	return &Resolver{Client: client, Logger: logger}
}

// Resolve downloads the referenced artifact and returns its sha1, size, url and path
func (r *Resolver) Resolve(ctx context.Context, ref minecraft.LibraryReference) (*minecraft.Library, error) {
	path, err := ref.Filepath()
	if err != nil {
		return nil, err
	}
	url := RepositoryURL(ref.URL) + path
	r.Logger.Step(ref.Name, url)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, errors.Wrapf(merrors.ErrNetwork, "invalid url %s: %s", url, err)
	}

	stop := r.Logger.Spinner("Downloading " + ref.Name)
	res, err := r.Client.Do(req)
	if err != nil {
		stop()
		return nil, errors.Wrapf(merrors.ErrNetwork, "error while fetching %s: %s", url, err)
	}
	defer res.Body.Close()

	digest, err := stream(res, url)
	stop()
	if err != nil {
		return nil, err
	}

	size := digest.Count()
	if res.ContentLength < 0 && size == 0 {
		return nil, errors.Wrapf(merrors.ErrLengthUnavailable, "%s sent no Content-Length and no body", url)
	}

	sha := digest.Sum()
	r.Logger.Step(ref.Name, fmt.Sprintf("%s (%s)", sha, humanize.Bytes(uint64(size))))

	return minecraft.NewLibrary(ref.Name, minecraft.Artifact{
		Sha1: sha,
		Size: size,
		URL:  url,
		Path: path,
	}), nil
}

// RepositoryURL makes sure a repository base url ends with a slash.
// An empty url stays empty
func RepositoryURL(base string) string {
	if base != "" && !strings.HasSuffix(base, "/") {
		return base + "/"
	}
	return base
}

// ResolveAll resolves the references one after another and stops at the first error
func (r *Resolver) ResolveAll(ctx context.Context, refs []minecraft.LibraryReference) ([]*minecraft.Library, error) {
	libs := make([]*minecraft.Library, 0, len(refs))
	for _, ref := range refs {
		lib, err := r.Resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		libs = append(libs, lib)
	}
	return libs, nil
}

// stream checks the status and pipes the body through a DigestWriter
func stream(res *http.Response, url string) (*DigestWriter, error) {
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errors.Wrapf(merrors.ErrNetwork, "invalid status code: %s from %s", res.Status, url)
	}

	digest := NewDigestWriter()
	if _, err := io.Copy(digest, res.Body); err != nil {
		return nil, errors.Wrapf(merrors.ErrNetwork, "error while reading %s: %s", url, err)
	}

	// the transport usually catches this already, but a declared length we did not get is a broken download
	if res.ContentLength >= 0 && res.ContentLength != digest.Count() {
		return nil, errors.Wrapf(
			merrors.ErrNetwork,
			"%s declared %d bytes but sent %d",
			url,
			res.ContentLength,
			digest.Count(),
		)
	}

	return digest, nil
}
