package patch

import (
	_ "embed"
	"fmt"

	"github.com/pillowmc/pillowgen/internals/minecraft"
	"github.com/pillowmc/pillowgen/pkg/maven"
)

// Icon is the launcher profile icon (a data url)
//
//go:embed assets/icon.txt
var Icon string

const (
	// ProfileName is the launcher profile name shown by the installer
	ProfileName = "Pillow"
	// Welcome is the installer welcome text
	Welcome = "Welcome to the simple Pillow installer"

	// VersionIDPrefix starts every version id pillowgen generates
	VersionIDPrefix = "pillow-"

	LaunchTargetClient = "pillowclient"
	LaunchTargetServer = "pillowserver"

	// IgnoreListSuffix is appended to -DignoreList= so the module layer skips datafixerupper
	IgnoreListSuffix = ",datafixerupper-"
	// PreferIPv6Arg is removed from the jvm arguments
	PreferIPv6Arg = "-Djava.net.preferIPv6Addresses=system"

	// BinaryPatcherPrefix identifies the processor that applies forge's binary patches
	BinaryPatcherPrefix = "net.neoforged.installertools:binarypatcher"
	// InstallerTools runs the EXTRACT_FILES and CREATE_PARENTS tasks
	InstallerTools = "net.neoforged.installertools:installertools:2.1.2"
	// MappingGen generates intermediary2srg from the official mappings and intermediary
	MappingGen = "net.pillowmc:mappinggen:0.1.1"
	// MojmapsPlaceholder is replaced by the installer with the path of the official mappings
	MojmapsPlaceholder = "{MOJMAPS}"
)

// Default repositories
const (
	FabricMaven = "https://maven.fabricmc.net/"
	// PillowMaven is jitpack, that is why installer side pillow versions get a "-fabric" suffix
	PillowMaven = "https://jitpack.io/"
)

var installerToolsClasspath = []string{
	"org.ow2.asm:asm:9.3@jar",
	"net.md-5:SpecialSource:1.11.0@jar",
	"net.sf.jopt-simple:jopt-simple:5.0.4@jar",
	"net.neoforged.installertools:installertools:2.1.2@jar",
	"com.google.code.gson:gson:2.8.9@jar",
	"org.ow2.asm:asm-tree:9.3@jar",
	"com.opencsv:opencsv:4.4@jar",
	"net.neoforged:srgutils:1.0.0@jar",
	"org.apache.commons:commons-text:1.3@jar",
	"de.siegmar:fastcsv:2.0.0@jar",
	"org.apache.commons:commons-lang3:3.8.1@jar",
	"org.apache.commons:commons-collections4:4.2@jar",
	"org.ow2.asm:asm-commons:9.3@jar",
	"net.neoforged.installertools:cli-utils:2.1.2@jar",
	"com.google.guava:guava:20.0@jar",
	"commons-beanutils:commons-beanutils:1.9.3@jar",
	"org.ow2.asm:asm-analysis:9.3@jar",
	"commons-collections:commons-collections:3.2.2@jar",
	"commons-logging:commons-logging:1.2@jar",
}

// FixedLibraries are always added to the install profile. Their hashes are
// trusted constants, they are not downloaded at run time
var FixedLibraries = []*minecraft.Library{
	minecraft.NewLibrary("net.fabricmc:mapping-io:0.5.1@jar", minecraft.Artifact{
		Sha1: "bc93c07f23c01aa65ef9bd42e4d33d1c361ca122",
		Size: 158891,
		URL:  "https://maven.fabricmc.net/net/fabricmc/mapping-io/0.5.1/mapping-io-0.5.1.jar",
		Path: "net/fabricmc/mapping-io/0.5.1/mapping-io-0.5.1.jar",
	}),
	minecraft.NewLibrary(MappingGen+"@jar", minecraft.Artifact{
		Sha1: "6c926290d502d9f681fcf905e871f6b6fbb3bd78",
		Size: 1694,
		URL:  "https://codeberg.org/PillowMC/mappinggen/releases/download/0.1.1/mappinggen-0.1.1.jar",
		Path: "net/pillowmc/mappinggen/0.1.1/mappinggen-0.1.1.jar",
	}),
}

// Repositories are the maven repositories pillow's own libraries come from
type Repositories struct {
	Fabric string
	Pillow string
}

// DefaultRepositories returns the public repositories
func DefaultRepositories() Repositories {
	return Repositories{Fabric: FabricMaven, Pillow: PillowMaven}
}

// VersionID returns the id of the generated launcher version
func VersionID(pillowVersion, fmlVersion, loaderVersion string) string {
	return fmt.Sprintf("%s%s+fml-%s+quilt-loader-%s", VersionIDPrefix, pillowVersion, fmlVersion, loaderVersion)
}

// PillowLibrary references pillow's fabric build, used by the installer and the server
func PillowLibrary(pillowVersion string, repos Repositories) minecraft.LibraryReference {
	return minecraft.LibraryReference{
		Name: "com.github.PillowMC:pillow:" + pillowVersion + "-fabric",
		URL:  repos.Pillow,
	}
}

// LauncherPillowLibrary references pillow the way the launcher's version.json lists it (no suffix)
func LauncherPillowLibrary(pillowVersion string, repos Repositories) minecraft.LibraryReference {
	return minecraft.LibraryReference{
		Name: "com.github.PillowMC:pillow:" + pillowVersion,
		URL:  repos.Pillow,
	}
}

// Intermediary2SRG references the mappings generated by the installer.
// It has no repository, the MappingGen processor creates it
func Intermediary2SRG(gameVersion string) minecraft.LibraryReference {
	return minecraft.LibraryReference{Name: "net.pillowmc:intermediary2srg:" + gameVersion}
}

// Intermediary references the intermediary mappings jar of a game version
func Intermediary(gameVersion string, repos Repositories) minecraft.LibraryReference {
	return minecraft.LibraryReference{
		Name: "net.fabricmc:intermediary:" + gameVersion + ":v2@jar",
		URL:  repos.Fabric,
	}
}

// DistributionLibraries are the references pillow adds on top of the loader's libraries.
// withBridge adds the intermediary2srg placeholder
func DistributionLibraries(gameVersion, pillowVersion string, repos Repositories, withBridge bool) []minecraft.LibraryReference {
	libs := make([]minecraft.LibraryReference, 0, 2)
	if withBridge {
		libs = append(libs, Intermediary2SRG(gameVersion))
	}
	return append(libs, PillowLibrary(pillowVersion, repos))
}

// MappingProcessors generate intermediary2srg during installation:
// extract the tiny file from intermediary, create the target jar's parents and run MappingGen
func MappingProcessors(gameVersion string, repos Repositories) ([]minecraft.Processor, error) {
	intermediaryJar, err := Intermediary(gameVersion, repos).Coordinate()
	if err != nil {
		return nil, err
	}
	i2s, err := Intermediary2SRG(gameVersion).Coordinate()
	if err != nil {
		return nil, err
	}
	intermediaryTiny := intermediaryJar.WithExtension("tiny")
	i2sJar := i2s.WithExtension("jar")

	return []minecraft.Processor{
		{
			Jar:       InstallerTools,
			Classpath: installerToolsClasspath,
			Args: []string{
				"--task", "EXTRACT_FILES",
				"--archive", bracket(intermediaryJar),
				"--from", "mappings/mappings.tiny",
				"--to", bracket(intermediaryTiny),
			},
		},
		{
			Jar:       InstallerTools,
			Classpath: installerToolsClasspath,
			Args: []string{
				"--task", "CREATE_PARENTS",
				"--target", bracket(i2sJar),
			},
		},
		{
			Jar:       MappingGen,
			Classpath: []string{FixedLibraries[0].Name, FixedLibraries[1].Name},
			Args: []string{
				MojmapsPlaceholder,
				bracket(intermediaryTiny),
				bracket(i2sJar),
			},
		},
	}, nil
}

// bracket formats a coordinate as installer argument (replaced with the library path)
func bracket(c maven.Coordinate) string {
	return "[" + c.String() + "]"
}
