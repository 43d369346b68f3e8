package version

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AppVersion(t *testing.T) {
	defer func(tag, v, summary string) {
		GitTag, Version, GitSummary = tag, v, summary
	}(GitTag, Version, GitSummary)

	GitTag, Version, GitSummary = "", "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	GitSummary = "4cb95ca-dirty"
	require.Equal(t, "4cb95ca-dirty", AppVersion())

	Version = "1.2.0"
	require.Equal(t, "1.2.0", AppVersion())

	GitTag = "v1.2.0"
	require.Equal(t, "v1.2.0", AppVersion())
}
