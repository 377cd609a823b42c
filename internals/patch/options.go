package patch

import (
	"context"
	"fmt"

	"github.com/pillowmc/pillowgen/internals/cmdlog"
	"github.com/pillowmc/pillowgen/internals/downloadmgr"
	"github.com/pillowmc/pillowgen/internals/loadermeta"
	"github.com/pillowmc/pillowgen/internals/manifest"
	"github.com/pillowmc/pillowgen/internals/minecraft"
)

// Options are shared by all rewrites
type Options struct {
	// PillowVersion is the pillow release that gets installed
	PillowVersion string
	// LoaderVersion is the quilt loader version
	LoaderVersion string

	Meta         *loadermeta.Client
	Resolver     *downloadmgr.Resolver
	Repositories Repositories
	Logger       *cmdlog.Logger

	// Icon overrides the embedded profile icon
	Icon string
	// Extra patches are applied after the built-in rewrite
	Extra []*Patch
}

func (o *Options) validate() error {
	switch {
	case o.PillowVersion == "":
		return fmt.Errorf("pillow version is empty")
	case o.LoaderVersion == "":
		return fmt.Errorf("loader version is empty")
	case o.Meta == nil:
		return fmt.Errorf("no loader meta client configured")
	case o.Resolver == nil:
		return fmt.Errorf("no resolver configured")
	}
	if o.Repositories == (Repositories{}) {
		o.Repositories = DefaultRepositories()
	}
	o.Repositories.Fabric = downloadmgr.RepositoryURL(o.Repositories.Fabric)
	o.Repositories.Pillow = downloadmgr.RepositoryURL(o.Repositories.Pillow)
	if o.Logger == nil {
		o.Logger = cmdlog.Discard()
	}
	return nil
}

func (o *Options) icon() string {
	if o.Icon != "" {
		return o.Icon
	}
	return Icon
}

// loaderLibraries fetches the loader's libraries without the ones pillow replaces
func (o *Options) loaderLibraries(ctx context.Context, gameVersion string, role loadermeta.Role) ([]minecraft.LibraryReference, error) {
	o.Logger.Headline(fmt.Sprintf("Fetching %s libraries of loader %s for minecraft %s", role, o.LoaderVersion, gameVersion))
	refs, err := o.Meta.FetchLibraries(ctx, gameVersion, o.LoaderVersion, role)
	if err != nil {
		return nil, err
	}
	filtered := loadermeta.FilterExcluded(refs)
	o.Logger.Debug(fmt.Sprintf("%d of %d loader libraries are used", len(filtered), len(refs)))
	return filtered, nil
}

// resolve converts references into libraries with download information
func (o *Options) resolve(ctx context.Context, refs []minecraft.LibraryReference) ([]interface{}, error) {
	o.Logger.Headline(fmt.Sprintf("Resolving %d libraries", len(refs)))
	libs, err := o.Resolver.ResolveAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, len(libs))
	for i, lib := range libs {
		values[i] = lib
	}
	return values, nil
}

func (o *Options) applyExtra(ctx context.Context, doc *manifest.Document) error {
	for _, p := range o.Extra {
		o.Logger.Info(fmt.Sprintf("Applying patch %q", p.Name))
		if err := p.Apply(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
