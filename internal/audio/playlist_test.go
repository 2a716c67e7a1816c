package audio

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/namechange/internal/model"
)

func TestPlaylistCreator_M3U(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, false)

	content := creator.CreatePlaylist(album)

	if strings.Contains(content, "#EXTM3U") {
		t.Error("plain M3U should not contain #EXTM3U")
	}
	if !strings.Contains(content, "Test Artist - 01 - Track One.mp3\n") {
		t.Error("M3U should contain track filename")
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)

	content := creator.CreatePlaylist(album)

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Test Artist - Track One\n") {
		t.Errorf("Extended M3U should contain #EXTINF with artist and title, got:\n%s", content)
	}
	if !strings.Contains(content, "#EXTINF:-1,cover notes\n") {
		t.Errorf("tracks without metadata should fall back to the file name, got:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatPLS, false)

	content := creator.CreatePlaylist(album)

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=Test Artist - 01 - Track One.mp3") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "NumberOfEntries=3") {
		t.Error("PLS should contain NumberOfEntries")
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatWPL, false)

	content := creator.CreatePlaylist(album)

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<media src=") {
		t.Error("WPL should contain media elements")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatZPL, false)

	content := creator.CreatePlaylist(album)

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, `albumTitle="Test Album"`) {
		t.Error("ZPL should contain albumTitle attribute")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	album := model.NewAlbum(filepath.Join("/music", "Artist & Co", "Album <Special>"), model.PlaylistFormatWPL)
	album.Tracks = []*model.Track{{
		Path:   filepath.Join(album.Path, "Artist & Co - 01 - Track.mp3"),
		Artist: "Artist & Co",
		Title:  "Track \"Quote\"",
	}}

	content := NewPlaylistCreator(model.PlaylistFormatWPL, false).CreatePlaylist(album)

	if !strings.Contains(content, "Artist &amp; Co") {
		t.Error("WPL should escape & as &amp;")
	}
	if strings.Contains(content, "<Special>") {
		t.Error("WPL should escape < and >")
	}
}

func createTestAlbum() *model.Album {
	album := model.NewAlbum(filepath.Join("/music", "Test Artist", "Test Album"), model.PlaylistFormatM3U)

	album.Tracks = []*model.Track{
		{
			Path:   filepath.Join(album.Path, "Test Artist - 01 - Track One.mp3"),
			Artist: "Test Artist",
			Number: "01",
			Title:  "Track One",
		},
		{
			Path:   filepath.Join(album.Path, "Test Artist - 02 - Track Two.mp3"),
			Artist: "Test Artist",
			Number: "02",
			Title:  "Track Two",
		},
		{
			Path: filepath.Join(album.Path, "cover notes.mp3"),
		},
	}

	return album
}
