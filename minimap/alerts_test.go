package minimap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlerts(t *testing.T) {
	src := strings.Join([]string{
		"# identifier;name;size",
		"Metadata/Foo;ignored;32,32",
		"",
		"Metadata/Chests/StrongBoxes/Arcanist;Arcanist box; 48 , 40 ",
	}, "\n")

	alerts, err := ParseAlerts(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, alerts, 2)

	size, ok := alerts.Size("Metadata/Foo")
	assert.True(t, ok)
	assert.Equal(t, Size{Width: 32, Height: 32}, size)

	size, ok = alerts.Size("Metadata/Chests/StrongBoxes/Arcanist")
	assert.True(t, ok)
	assert.Equal(t, Size{Width: 48, Height: 40}, size)

	_, ok = alerts.Size("# identifier")
	assert.False(t, ok)
}

func TestParseAlertsComment(t *testing.T) {
	alerts, err := ParseAlerts(strings.NewReader("#Metadata/Foo;ignored;32,32\n"))
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestParseAlertsByteOrderMark(t *testing.T) {
	alerts, err := ParseAlerts(strings.NewReader("\ufeff#comment\r\nMetadata/Foo;x;8,8\r\n"))
	require.NoError(t, err)
	assert.Equal(t, Alerts{"Metadata/Foo": {Width: 8, Height: 8}}, alerts)
}

func TestParseAlertsMalformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"missing_fields", "Metadata/Foo;32,32"},
		{"size_not_pair", "Metadata/Foo;ignored;32"},
		{"size_not_number", "Metadata/Foo;ignored;big,32"},
		{"height_not_number", "Metadata/Foo;ignored;32,"},
		{"negative", "Metadata/Foo;ignored;-1,32"},
		{"empty_identifier", ";ignored;32,32"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			alerts, err := ParseAlerts(strings.NewReader("Metadata/Ok;x;1,1\n" + c.line + "\n"))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig))
			assert.Contains(t, err.Error(), "line 2")
			assert.Nil(t, alerts)
		})
	}
}

func TestAlertsSizeFor(t *testing.T) {
	alerts := Alerts{
		"Metadata/Monsters":         {Width: 10, Height: 10},
		"Metadata/Monsters/Bosses/": {Width: 30, Height: 30},
	}
	s, ok := alerts.SizeFor("Metadata/Monsters/Bosses/Atziri")
	assert.True(t, ok)
	assert.Equal(t, 30, s.Width)

	s, ok = alerts.SizeFor("Metadata/Monsters/Rat")
	assert.True(t, ok)
	assert.Equal(t, 10, s.Width)

	_, ok = alerts.SizeFor("Metadata/Chests/Chest")
	assert.False(t, ok)
}

func TestLoadAlerts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new_mod_alerts.txt")
	require.NoError(t, os.WriteFile(path, []byte("Metadata/Foo;ignored;32,32\n"), 0644))

	alerts, err := LoadAlerts(path)
	require.NoError(t, err)
	assert.Equal(t, Alerts{"Metadata/Foo": {Width: 32, Height: 32}}, alerts)

	_, err = LoadAlerts(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfig))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("Metadata/Foo;ignored;x,y\n"), 0644))
	_, err = LoadAlerts(bad)
	assert.ErrorIs(t, err, ErrConfig)
}
