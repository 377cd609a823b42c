package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPillowLibraryNames(t *testing.T) {
	repos := DefaultRepositories()

	assert.Equal(t, "com.github.PillowMC:pillow:1.2.3", LauncherPillowLibrary("1.2.3", repos).Name)
	assert.Equal(t, "com.github.PillowMC:pillow:1.2.3-fabric", PillowLibrary("1.2.3", repos).Name)

	withBridge := DistributionLibraries("1.20.1", "1.2.3", repos, true)
	assert.Equal(t, "net.pillowmc:intermediary2srg:1.20.1", withBridge[0].Name)
	assert.Equal(t, "com.github.PillowMC:pillow:1.2.3-fabric", withBridge[1].Name)
	assert.Len(t, DistributionLibraries("1.20.1", "1.2.3", repos, false), 1)
}
