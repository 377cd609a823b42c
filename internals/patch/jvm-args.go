package patch

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/pillowmc/pillowgen/internals/loadermeta"
	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/pkg/errors"
)

const (
	mcVersionPrefix   = "--fml.mcVersion "
	launchTargetArg   = "--launchTarget"
	ignoreListPrefix  = "-DignoreList="
	legacyClassPrefix = "-DlegacyClassPath="
)

// JVMArgs rewrites the server's jvm argument file (one argument per line).
// windows selects the classpath separator
func JVMArgs(ctx context.Context, r io.Reader, w io.Writer, windows bool, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\r\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	versionIndex, err := Find(lines, HasPrefix(mcVersionPrefix))
	if err != nil {
		return errors.Wrap(err, "jvm args")
	}
	gameVersion := strings.TrimPrefix(lines[versionIndex], mcVersionPrefix)

	if _, err := Find(lines, Equals(launchTargetArg+" "+LaunchTargetServer)); err == nil {
		return errors.Wrap(merrors.ErrAlreadyPatched, "jvm args already launch pillow")
	}
	for _, m := range []Matcher[string]{HasPrefix(launchTargetArg), HasPrefix(ignoreListPrefix), HasPrefix(legacyClassPrefix)} {
		if _, err := FindUnique(lines, m); err != nil {
			return errors.Wrap(err, "jvm args")
		}
	}

	refs, err := opts.loaderLibraries(ctx, gameVersion, loadermeta.RoleServer)
	if err != nil {
		return err
	}
	refs = append(refs, DistributionLibraries(gameVersion, opts.PillowVersion, opts.Repositories, true)...)

	separator := ":"
	if windows {
		separator = ";"
	}
	classpath := &strings.Builder{}
	for _, ref := range refs {
		path, err := ref.Filepath()
		if err != nil {
			return err
		}
		classpath.WriteString(separator + "libraries/" + path)
	}

	buf := &bytes.Buffer{}
	for _, line := range lines {
		switch {
		case line == PreferIPv6Arg:
			continue
		case strings.HasPrefix(line, ignoreListPrefix):
			line += IgnoreListSuffix
		case strings.HasPrefix(line, launchTargetArg):
			line = launchTargetArg + " " + LaunchTargetServer
		case strings.HasPrefix(line, legacyClassPrefix):
			line += classpath.String()
		}
		buf.WriteString(line + "\n")
	}

	_, err = buf.WriteTo(w)
	return err
}
