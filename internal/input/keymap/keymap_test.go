package keymap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blocknav/internal/input/key"
	"github.com/dshills/blocknav/internal/input/keymap"
)

func TestBindAndLookup(t *testing.T) {
	km := keymap.New("test")
	require.NoError(t, km.Bind("alt+down", "block.moveDown"))

	action, ok := km.Lookup(key.MustParse("alt+down"))
	require.True(t, ok)
	assert.Equal(t, "block.moveDown", action.Name)
	assert.Equal(t, 1, action.GetCount())

	_, ok = km.Lookup(key.MustParse("alt+up"))
	assert.False(t, ok)
}

func TestBindRejectsBadSpec(t *testing.T) {
	km := keymap.New("test")
	assert.Error(t, km.Bind("hyper+x", "block.moveDown"))
}

func TestDefaultBindings(t *testing.T) {
	km := keymap.Default()

	tests := []struct {
		keys string
		want string
	}{
		{"alt+down", "block.moveDown"},
		{"alt+up", "block.moveUp"},
		{"shift+alt+down", "block.selectDown"},
		{"shift+alt+up", "block.selectUp"},
		{"f", "fold.toggle"},
		{"q", "app.quit"},
	}

	for _, tt := range tests {
		action, ok := km.Lookup(key.MustParse(tt.keys))
		require.True(t, ok, "no binding for %q", tt.keys)
		assert.Equal(t, tt.want, action.Name, "binding for %q", tt.keys)
	}
}

func TestLoadReader(t *testing.T) {
	src := `
name: custom
bindings:
  - keys: ctrl+n
    action: block.moveDown
  - keys: ctrl+p
    action: block.moveUp
`
	km, err := keymap.LoadReader(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "custom", km.Name())
	assert.Equal(t, 2, km.Len())

	action, ok := km.Lookup(key.MustParse("ctrl+n"))
	require.True(t, ok)
	assert.Equal(t, "block.moveDown", action.Name)
}

func TestLoadReaderErrors(t *testing.T) {
	_, err := keymap.LoadReader(strings.NewReader("bindings: [{keys: '', action: x}]"))
	assert.Error(t, err, "empty chord should fail")

	_, err = keymap.LoadReader(strings.NewReader("bindings: [{keys: a}]"))
	assert.Error(t, err, "missing action should fail")

	_, err = keymap.LoadReader(strings.NewReader(":::bad yaml"))
	assert.Error(t, err)
}

func TestMergeOverridesDefaults(t *testing.T) {
	km := keymap.Default()
	user := keymap.New("user")
	require.NoError(t, user.Bind("alt+down", "fold.toggle"))

	km.Merge(user)

	action, ok := km.Lookup(key.MustParse("alt+down"))
	require.True(t, ok)
	assert.Equal(t, "fold.toggle", action.Name)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	km, err := keymap.Load("/nonexistent/path/keymap.yaml")
	require.NoError(t, err)

	_, ok := km.Lookup(key.MustParse("alt+down"))
	assert.True(t, ok, "defaults should survive a missing user keymap")
}
