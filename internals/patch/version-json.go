package patch

import (
	"context"
	"io"
	"strings"

	"github.com/pillowmc/pillowgen/internals/loadermeta"
	"github.com/pillowmc/pillowgen/internals/manifest"
	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/pkg/errors"
)

// VersionJSONName is the name of the launcher version document
const VersionJSONName = "version.json"

// VersionJSON rewrites NeoForge's version.json read from r into pillow's and writes it to w.
// It returns the new version id. Nothing is written if any step fails
func VersionJSON(ctx context.Context, r io.Reader, w io.Writer, opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	doc, err := manifest.Decode(r, VersionJSONName)
	if err != nil {
		return "", err
	}

	if id, err := doc.String("id"); err == nil && strings.HasPrefix(id, VersionIDPrefix) {
		return "", errors.Wrapf(merrors.ErrAlreadyPatched, "version.json has the id %q", id)
	}

	game, err := doc.Strings("arguments.game")
	if err != nil {
		return "", err
	}
	jvm, err := doc.Strings("arguments.jvm")
	if err != nil {
		return "", err
	}

	fmlIndex, err := ValueAfter(game, Equals("--fml.fmlVersion"))
	if err != nil {
		return "", errors.Wrap(err, "version.json game arguments")
	}
	fmlVersion := game[fmlIndex]

	targetIndex, err := ValueAfter(game, Equals("--launchTarget"))
	if err != nil {
		return "", errors.Wrap(err, "version.json game arguments")
	}
	game[targetIndex] = LaunchTargetClient

	ignoreIndex, err := FindUnique(jvm, HasPrefix("-DignoreList="))
	if err != nil {
		return "", errors.Wrap(err, "version.json jvm arguments")
	}
	jvm[ignoreIndex] += IgnoreListSuffix

	ipv6Index, err := FindUnique(jvm, Equals(PreferIPv6Arg))
	if err != nil {
		return "", errors.Wrap(err, "version.json jvm arguments")
	}
	jvm = RemoveAt(jvm, ipv6Index)

	id := VersionID(opts.PillowVersion, fmlVersion, opts.LoaderVersion)
	for path, value := range map[string]interface{}{
		"id":             id,
		"arguments.game": game,
		"arguments.jvm":  jvm,
	} {
		if err := doc.Set(path, value); err != nil {
			return "", err
		}
	}

	gameVersion, err := doc.String("inheritsFrom")
	if err != nil {
		return "", err
	}

	refs, err := opts.loaderLibraries(ctx, gameVersion, loadermeta.RoleProfile)
	if err != nil {
		return "", err
	}
	libs, err := opts.resolve(ctx, refs)
	if err != nil {
		return "", err
	}
	// intermediary2srg is generated by the installer and pillow comes from jitpack,
	// the launcher gets both as plain references
	libs = append(libs,
		Intermediary2SRG(gameVersion),
		LauncherPillowLibrary(opts.PillowVersion, opts.Repositories),
	)
	if err := doc.Append("libraries", libs...); err != nil {
		return "", err
	}

	if err := opts.applyExtra(ctx, doc); err != nil {
		return "", err
	}

	if err := doc.Encode(w); err != nil {
		return "", err
	}
	return id, nil
}
