package content

import (
	"testing"

	"fritter/engine/actors"
	"fritter/engine/library"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInit(t *testing.T) {
	if actors.MakeOrGetConfig() == nil {
		conf := viper.New()
		conf.Set("rootDir", t.TempDir()+"/")
		conf.Set("flatFileDir", "data/")
		actors.SetConfig(conf)
	}
	if actors.GetTerminateChan() == nil {
		actors.SetTerminateChan(make(chan struct{}))
	}
}

func TestDeleteChecksAuthorCaseInsensitively(t *testing.T) {
	testInit(t)
	c, err := Create("Cased_Author", "my post", false)
	require.NoError(t, err)

	err = Delete(c.UID, "someone_else")
	require.Error(t, err)
	assert.Equal(t, library.KindUnauthorized, library.KindOf(err))

	require.NoError(t, Delete(c.UID, "cased_author"))
	_, exists := Get(c.UID)
	assert.False(t, exists)
}

func TestDeleteByAuthorMatchesCaseInsensitively(t *testing.T) {
	testInit(t)
	_, err := Create("Mixed_Max", "first", false)
	require.NoError(t, err)
	_, err = Create("mixed_max", "second", false)
	require.NoError(t, err)
	kept, err := Create("cas_other", "stays", false)
	require.NoError(t, err)

	assert.Equal(t, 2, DeleteByAuthor("MIXED_MAX"))
	_, exists := Get(kept.UID)
	assert.True(t, exists)
}
