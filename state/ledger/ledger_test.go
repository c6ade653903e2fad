package ledger

import (
	"testing"

	"fritter/engine/actors"
	"fritter/engine/library"
	"fritter/state/content"
	"fritter/state/identity"
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

func mustCreateVerified(t *testing.T, username library.Username) identity.User {
	_, err := identity.CreateUser(username)
	require.NoError(t, err)
	u, err := identity.UpdateUser(username, func(u identity.User) (identity.User, error) {
		u.Verified = true
		return u, nil
	})
	require.NoError(t, err)
	return u
}

func TestEndorseRequiresFactTag(t *testing.T) {
	testInit(t)
	mustCreateVerified(t, "fact_vera")
	c, err := content.Create("fact_author", "just an opinion", false)
	require.NoError(t, err)

	_, err = Endorse(c.UID, "fact_vera")
	require.Error(t, err)
	assert.Equal(t, library.KindPrecondition, library.KindOf(err))

	got, _ := content.Get(c.UID)
	assert.Empty(t, got.Endorsers)
}

func TestEndorseRequiresVerifiedActor(t *testing.T) {
	testInit(t)
	_, err := identity.CreateUser("plain_paul")
	require.NoError(t, err)
	c, err := content.Create("plain_author", "water is wet", true)
	require.NoError(t, err)

	_, err = Endorse(c.UID, "plain_paul")
	require.Error(t, err)
	assert.Equal(t, library.KindUnauthorized, library.KindOf(err))

	_, err = Endorse(c.UID, "plain_nobody")
	require.Error(t, err)
	assert.Equal(t, library.KindNotFound, library.KindOf(err))
}

func TestEndorseAndUnendorse(t *testing.T) {
	testInit(t)
	mustCreateVerified(t, "led_vera")
	c, err := content.Create("led_author", "the sky is blue", true)
	require.NoError(t, err)

	got, err := Endorse(c.UID, "led_vera")
	require.NoError(t, err)
	assert.Equal(t, []library.Username{"led_vera"}, got.Endorsers)

	_, err = Endorse(c.UID, "led_vera")
	require.Error(t, err)
	assert.Equal(t, library.KindPrecondition, library.KindOf(err))
	got, _ = content.Get(c.UID)
	assert.Len(t, got.Endorsers, 1)

	got, err = Unendorse(c.UID, "led_vera")
	require.NoError(t, err)
	assert.Empty(t, got.Endorsers)

	_, err = Unendorse(c.UID, "led_vera")
	require.Error(t, err)
	assert.Equal(t, library.KindPrecondition, library.KindOf(err))
}

func TestDenounceTrackedIndependentlyOfEndorse(t *testing.T) {
	testInit(t)
	mustCreateVerified(t, "ind_vera")
	c, err := content.Create("ind_author", "the earth is round", true)
	require.NoError(t, err)

	_, err = Endorse(c.UID, "ind_vera")
	require.NoError(t, err)
	got, err := Denounce(c.UID, "ind_vera")
	require.NoError(t, err)
	// legacy behavior: the same user may sit in both sets at once
	assert.Equal(t, []library.Username{"ind_vera"}, got.Endorsers)
	assert.Equal(t, []library.Username{"ind_vera"}, got.Denouncers)

	got, err = Undenounce(c.UID, "ind_vera")
	require.NoError(t, err)
	assert.Empty(t, got.Denouncers)
	assert.Equal(t, []library.Username{"ind_vera"}, got.Endorsers)
}

func TestLedgerUsesStoredUsernameCase(t *testing.T) {
	testInit(t)
	_, err := identity.CreateUser("Cased_Vera")
	require.NoError(t, err)
	_, err = identity.UpdateUser("cased_vera", func(u identity.User) (identity.User, error) {
		u.Verified = true
		return u, nil
	})
	require.NoError(t, err)
	c, err := content.Create("cased_author", "salt is salty", true)
	require.NoError(t, err)

	got, err := Endorse(c.UID, "CASED_VERA")
	require.NoError(t, err)
	assert.Equal(t, []library.Username{"Cased_Vera"}, got.Endorsers)

	_, err = Endorse(c.UID, "cased_vera")
	require.Error(t, err)
	assert.Equal(t, library.KindPrecondition, library.KindOf(err))
}

func TestEndorseUnknownContent(t *testing.T) {
	testInit(t)
	mustCreateVerified(t, "ghost_vera")
	_, err := Endorse("no-such-content", "ghost_vera")
	require.Error(t, err)
	assert.Equal(t, library.KindNotFound, library.KindOf(err))
}
