package patch

import (
	"context"
	"fmt"
	"io"

	"github.com/pillowmc/pillowgen/internals/loadermeta"
	"github.com/pillowmc/pillowgen/internals/manifest"
	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/pkg/errors"
)

// InstallProfileName is the name of the installer profile document
const InstallProfileName = "install_profile.json"

// InstallProfile rewrites NeoForge's install_profile.json read from r into pillow's and writes it to w.
// versionID is the id of the version.json generated for the same release
func InstallProfile(ctx context.Context, r io.Reader, w io.Writer, versionID string, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if versionID == "" {
		return fmt.Errorf("version id is empty")
	}

	doc, err := manifest.Decode(r, InstallProfileName)
	if err != nil {
		return err
	}

	if profile, err := doc.String("profile"); err == nil && profile == ProfileName {
		return errors.Wrap(merrors.ErrAlreadyPatched, "install_profile.json belongs to pillow already")
	}

	for path, value := range map[string]interface{}{
		"profile": ProfileName,
		"icon":    opts.icon(),
		"welcome": Welcome,
		"version": versionID,
	} {
		if err := doc.Set(path, value); err != nil {
			return err
		}
	}
	if err := doc.Remove("mirrorList"); err != nil {
		return err
	}
	if err := doc.Remove("data.BINPATCH"); err != nil {
		return err
	}

	gameVersion, err := doc.String("minecraft")
	if err != nil {
		return err
	}
	if gameVersion == "" {
		return errors.Wrap(merrors.ErrWrongType, "install_profile.json: minecraft is empty")
	}

	for _, lib := range FixedLibraries {
		if err := doc.Append("libraries", lib); err != nil {
			return err
		}
	}

	refs, err := opts.loaderLibraries(ctx, gameVersion, loadermeta.RoleProfile)
	if err != nil {
		return err
	}
	refs = append(refs, DistributionLibraries(gameVersion, opts.PillowVersion, opts.Repositories, false)...)
	refs = append(refs, Intermediary(gameVersion, opts.Repositories))
	libs, err := opts.resolve(ctx, refs)
	if err != nil {
		return err
	}
	if err := doc.Append("libraries", libs...); err != nil {
		return err
	}

	processors, err := doc.Array("processors")
	if err != nil {
		return err
	}
	patcherIndex, err := Find(processors, JarHasPrefix(BinaryPatcherPrefix))
	if err != nil {
		return errors.Wrap(err, "install_profile.json processors")
	}
	processors = RemoveAt(processors, patcherIndex)

	added, err := MappingProcessors(gameVersion, opts.Repositories)
	if err != nil {
		return err
	}
	for _, p := range added {
		value, err := manifest.ToValue(p)
		if err != nil {
			return err
		}
		processors = append(processors, value)
	}
	if err := doc.Set("processors", processors); err != nil {
		return err
	}

	if err := opts.applyExtra(ctx, doc); err != nil {
		return err
	}

	return doc.Encode(w)
}
