package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/cadence/pkg/types"
)

func TestSettingsSetGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Settings().Set(types.SettingAPIKey, "sk-test"))

	got, err := store.Settings().Get(types.SettingAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", got)

	all, err := store.Settings().All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"apiKey": "sk-test"}, all)
}

func TestSettingsSetOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Settings().Set("theme", "dark"))
	require.NoError(t, store.Settings().Set("theme", "light"))

	got, err := store.Settings().Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got)

	all, err := store.Settings().All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettingsGetMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Settings().Get("no-such-key")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSettingsEmptyKeyRejected(t *testing.T) {
	store := newTestStore(t)

	err := store.Settings().Set("", "value")
	assert.ErrorIs(t, err, types.ErrInvalidKey)

	_, err = store.Settings().Get("")
	assert.ErrorIs(t, err, types.ErrInvalidKey)
}

func TestSettingsAllEmpty(t *testing.T) {
	store := newTestStore(t)
	all, err := store.Settings().All()
	require.NoError(t, err)
	require.NotNil(t, all)
	assert.Empty(t, all)
}
