package titles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "scene release",
			in:   "Drama.Name.S01E02.1080p.WEBRip.x264-GROUP.mkv",
			want: "Drama Name",
		},
		{
			name: "bracketed sub tag with year and resolution",
			in:   "[Sub] Show (2023) 720p.mp4",
			want: "Sub Show",
		},
		{
			name: "season and episode words",
			in:   "My_Show_Season 2_Episode 13_480p.mkv",
			want: "My Show",
		},
		{
			name: "hevc bluray",
			in:   "Another.Show.2019.2160p.BluRay.HEVC.mkv",
			want: "Another Show",
		},
		{
			name: "lowercase codec tags",
			in:   "quiet.drama.s03e01.webrip.x265.mp4",
			want: "Quiet Drama",
		},
		{
			name: "plain name",
			in:   "Crash Landing On You.mp4",
			want: "Crash Landing On You",
		},
		{
			name: "only scene tokens",
			in:   "2023.1080p.WEBRip.mkv",
			want: "",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

// TestClean_Idempotent verifies cleaning an already-clean title is a no-op
func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"Drama.Name.S01E02.1080p.WEBRip.x264-GROUP.mkv",
		"[Sub] Show (2023) 720p.mp4",
		"Crash Landing On You.mp4",
	}

	for _, in := range inputs {
		cleaned := Clean(in)
		require.Equal(t, cleaned, Clean(cleaned), "Clean must be idempotent for %q", in)
	}
}

func TestTrimExtension(t *testing.T) {
	require.Equal(t, "Drama Name", TrimExtension("Drama Name.mkv"))
	require.Equal(t, "Drama Name", TrimExtension("Drama Name"))
}
