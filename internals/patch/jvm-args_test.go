package patch

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pillowmc/pillowgen/internals/merrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jvmArgsFixture = "-Djava.net.preferIPv6Addresses=system\r\n" +
	"-DignoreList=client-extra,neoforge-\r\n" +
	"-DlegacyClassPath=libraries/a.jar\r\n" +
	"--launchTarget forgeserver\r\n" +
	"--fml.mcVersion 1.20.1\r\n"

func TestJVMArgs(t *testing.T) {
	opts := newTestOptions(t)
	out := &bytes.Buffer{}

	require.NoError(t, JVMArgs(context.Background(), strings.NewReader(jvmArgsFixture), out, false, opts))

	expected := "-DignoreList=client-extra,neoforge-,datafixerupper-\n" +
		"-DlegacyClassPath=libraries/a.jar" +
		":libraries/org/quiltmc/quilt-loader/0.26.0/quilt-loader-0.26.0.jar" +
		":libraries/net/pillowmc/intermediary2srg/1.20.1/intermediary2srg-1.20.1.jar" +
		":libraries/com/github/PillowMC/pillow/1.0.0-fabric/pillow-1.0.0-fabric.jar\n" +
		"--launchTarget pillowserver\n" +
		"--fml.mcVersion 1.20.1\n"
	assert.Equal(t, expected, out.String())
}

func TestJVMArgsWindows(t *testing.T) {
	opts := newTestOptions(t)
	out := &bytes.Buffer{}

	require.NoError(t, JVMArgs(context.Background(), strings.NewReader(jvmArgsFixture), out, true, opts))
	assert.Contains(t, out.String(), "libraries/a.jar;libraries/org/quiltmc/")
}

func TestJVMArgsErrors(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		err     error
	}{
		{"no game version", [2]string{"--fml.mcVersion 1.20.1", "--fml.forgeVersion 47"}, merrors.ErrTokenNotFound},
		{"no launch target", [2]string{"--launchTarget forgeserver", "--target forgeserver"}, merrors.ErrTokenNotFound},
		{"no classpath", [2]string{"-DlegacyClassPath=", "-Dclasspath="}, merrors.ErrTokenNotFound},
		{"already patched", [2]string{"--launchTarget forgeserver", "--launchTarget pillowserver"}, merrors.ErrAlreadyPatched},
		{"unknown game version", [2]string{"--fml.mcVersion 1.20.1", "--fml.mcVersion 9.9.9"}, merrors.ErrNetwork},
	}

	opts := newTestOptions(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Replace(jvmArgsFixture, tt.replace[0], tt.replace[1], 1)
			out := &bytes.Buffer{}
			err := JVMArgs(context.Background(), strings.NewReader(input), out, false, opts)
			assert.ErrorIs(t, err, tt.err)
			assert.Zero(t, out.Len())
		})
	}
}
