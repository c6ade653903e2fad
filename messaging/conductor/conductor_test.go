package conductor

import (
	"testing"

	"fritter/engine/actors"
	"fritter/state/identity"
	"fritter/state/recommend"
	"fritter/state/vsp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInit(t *testing.T) {
	if actors.MakeOrGetConfig() == nil {
		conf := viper.New()
		conf.Set("rootDir", t.TempDir()+"/")
		conf.Set("flatFileDir", "data/")
		conf.Set("admins", []string{"lola"})
		actors.SetConfig(conf)
	}
	if actors.GetTerminateChan() == nil {
		actors.SetTerminateChan(make(chan struct{}))
	}
	identity.SeedAdmins()
}

// Drives one user journey end to end through the dispatch loop.
func TestDispatch(t *testing.T) {
	testInit(t)

	for _, name := range []string{"cord_alice", "cord_bob"} {
		result := Publish(Request{Kind: KindCreateUser, Actor: name})
		require.NoError(t, result.Err)
		assert.Equal(t, name, result.User.Username)
	}

	result := Publish(Request{Kind: KindFollow, Actor: "cord_alice", Target: "cord_bob"})
	require.NoError(t, result.Err)
	assert.Contains(t, result.User.Following, "cord_bob")

	result = Publish(Request{Kind: KindAddInterest, Actor: "cord_alice", Keyword: "rust"})
	require.NoError(t, result.Err)

	result = Publish(Request{Kind: KindCreateContent, Actor: "cord_bob", Body: "rust is memory safe", IsFact: true})
	require.NoError(t, result.Err)
	contentID := result.Content.UID

	// bob is followed already, so he must not come back as a suggestion
	suggested, err := recommend.Recommend("cord_alice")
	require.NoError(t, err)
	assert.Empty(t, suggested)

	result = Publish(Request{Kind: KindSubmitRequest, Actor: "cord_bob", Justification: "I am careful"})
	require.NoError(t, result.Err)
	assert.Equal(t, vsp.StatusPending, result.VSPRequest.Status)

	result = Publish(Request{Kind: KindAcceptRequest, Actor: "lola", Target: "cord_bob"})
	require.NoError(t, result.Err)
	assert.True(t, result.User.Verified)

	result = Publish(Request{Kind: KindEndorse, Actor: "cord_bob", ContentID: contentID})
	require.NoError(t, result.Err)
	assert.Contains(t, result.Content.Endorsers, "cord_bob")

	result = Publish(Request{Kind: KindUnendorse, Actor: "cord_bob", ContentID: contentID})
	require.NoError(t, result.Err)
	assert.Empty(t, result.Content.Endorsers)

	result = Publish(Request{Kind: KindRevokeRequest, Actor: "lola", Target: "cord_bob"})
	require.NoError(t, result.Err)
	assert.False(t, result.User.Verified)

	result = Publish(Request{Kind: KindDeleteContent, Actor: "cord_bob", ContentID: contentID})
	require.NoError(t, result.Err)
}

func TestDeleteUserCascades(t *testing.T) {
	testInit(t)

	result := Publish(Request{Kind: KindCreateUser, Actor: "cas_carol"})
	require.NoError(t, result.Err)
	result = Publish(Request{Kind: KindCreateContent, Actor: "cas_carol", Body: "soon gone", IsFact: false})
	require.NoError(t, result.Err)
	contentID := result.Content.UID

	result = Publish(Request{Kind: KindDeleteUser, Actor: "cas_carol"})
	require.NoError(t, result.Err)

	_, exists := identity.GetUser("cas_carol")
	assert.False(t, exists)
	result = Publish(Request{Kind: KindDeleteContent, Actor: "cas_carol", ContentID: contentID})
	require.Error(t, result.Err)
}

// A memoized recommendation must not outlive a change to the content corpus.
func TestRecommendationsSeeNewContent(t *testing.T) {
	testInit(t)

	for _, name := range []string{"fre_alice", "fre_bob"} {
		result := Publish(Request{Kind: KindCreateUser, Actor: name})
		require.NoError(t, result.Err)
	}
	result := Publish(Request{Kind: KindAddInterest, Actor: "fre_alice", Keyword: "quilting"})
	require.NoError(t, result.Err)

	// prime the memo with an empty result
	suggested, err := recommend.Recommend("fre_alice")
	require.NoError(t, err)
	require.Empty(t, suggested)

	result = Publish(Request{Kind: KindCreateContent, Actor: "fre_bob", Body: "quilting techniques", IsFact: false})
	require.NoError(t, result.Err)
	contentID := result.Content.UID

	suggested, err = recommend.Recommend("fre_alice")
	require.NoError(t, err)
	require.Len(t, suggested, 1)
	assert.Equal(t, "fre_bob", suggested[0].Username)

	result = Publish(Request{Kind: KindDeleteContent, Actor: "fre_bob", ContentID: contentID})
	require.NoError(t, result.Err)

	suggested, err = recommend.Recommend("fre_alice")
	require.NoError(t, err)
	assert.Empty(t, suggested)
}

func TestUnknownKind(t *testing.T) {
	testInit(t)
	result := Publish(Request{Kind: Kind(999)})
	require.Error(t, result.Err)
}
