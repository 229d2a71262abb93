package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/engine"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Append(&engine.DialogueEvent{Lines: []string{"A Goblin blocks your way!"}}))
	require.NoError(t, store.Append(&engine.MenuEvent{
		Title: "Your move.",
		Items: []engine.MenuItem{{ID: "atk:high", Label: "Strike high"}},
	}))
	require.NoError(t, store.Append(&engine.StateEvent{Phase: engine.PhaseCombat}))

	events, err := store.Load()
	require.NoError(t, err)
	require.Len(t, events, 3)

	dlg, ok := events[0].(*engine.DialogueEvent)
	require.True(t, ok)
	assert.Equal(t, "A Goblin blocks your way!", dlg.Message())

	menu, ok := events[1].(*engine.MenuEvent)
	require.True(t, ok)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "atk:high", menu.Items[0].ID)

	st, ok := events[2].(*engine.StateEvent)
	require.True(t, ok)
	assert.Equal(t, engine.PhaseCombat, st.Phase)
}

func TestStoreReplayMovesPhaseMachine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Append(&engine.StateEvent{Phase: engine.PhaseTown}))
	require.NoError(t, store.Append(&engine.DialogueEvent{Lines: []string{"The town square"}}))
	require.NoError(t, store.Append(&engine.StateEvent{Phase: engine.PhaseDungeon, Subphase: "examined"}))

	events, err := store.Load()
	require.NoError(t, err)

	state := engine.NewState()
	for _, evt := range events {
		require.NoError(t, evt.Apply(state))
	}
	assert.Equal(t, engine.PhaseDungeon, state.Phase)
	assert.Equal(t, "examined", state.Subphase)
}

func TestStoreRejectsUnknownEventType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"teleportation","data":{}}`+"\n"), 0644))

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load()
	assert.ErrorContains(t, err, "unknown event type")
}

func TestStoreTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Append(&engine.ClearEvent{}))
	require.NoError(t, store.Truncate())

	events, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSaveManagerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	mgr := NewSaveManager(path)

	_, ok, err := mgr.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mgr.Save(engine.Snapshot{Phase: engine.PhaseTown, Depth: 2}))

	snap, ok, err := mgr.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, engine.PhaseTown, snap.Phase)
	assert.Equal(t, 2, snap.Depth)

	require.NoError(t, mgr.Clear())
	_, ok, err = mgr.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an already-clean slate is not an error.
	require.NoError(t, mgr.Clear())
}

func TestProfileManager(t *testing.T) {
	mgr := NewProfileManager(t.TempDir())

	names, err := mgr.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, mgr.Create("aldric"))
	assert.True(t, mgr.Exists("aldric"))
	assert.Equal(t, filepath.Join(mgr.RootDir, "aldric", "save.json"), mgr.SavePath("aldric"))
	assert.Equal(t, filepath.Join(mgr.RootDir, "aldric", "transcript.jsonl"), mgr.LogPath("aldric"))

	names, err = mgr.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"aldric"}, names)

	require.NoError(t, mgr.Delete("aldric"))
	assert.False(t, mgr.Exists("aldric"))
	assert.Error(t, mgr.Delete("aldric"))
}

func TestInputMapperResolvesMenuNumbers(t *testing.T) {
	var m InputMapper
	m.Observe([]engine.Event{
		&engine.DialogueEvent{Lines: []string{"The town square"}},
		&engine.MenuEvent{Items: []engine.MenuItem{
			{ID: "dng", Label: "Descend"},
			{ID: "shop", Label: "Shop"},
			{ID: "rest", Label: "Rest"},
		}},
	})

	assert.Equal(t, "dng", m.Resolve("1"))
	assert.Equal(t, "rest", m.Resolve(" 3 "))
	// Out of range or non-numeric replies pass through as action IDs.
	assert.Equal(t, "9", m.Resolve("9"))
	assert.Equal(t, "shop:sell", m.Resolve("shop:sell"))
}

func TestInputMapperForgetsMenuOnPrompt(t *testing.T) {
	var m InputMapper
	m.Observe([]engine.Event{
		&engine.MenuEvent{Items: []engine.MenuItem{{ID: "diff:easy", Label: "Easy"}}},
		&engine.PromptEvent{Prompt: "What is your name, explorer?"},
	})

	// A numeric name stays a name, not a menu pick.
	assert.Equal(t, "7", m.Resolve("7"))
	assert.Empty(t, m.Items())
}

func TestSessionDispatchByNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	store, err := NewStore(path)
	require.NoError(t, err)

	sess, err := NewSession(engine.Options{}, store)
	require.NoError(t, err)
	defer sess.Close()
	assert.NotEmpty(t, sess.ID)

	events := sess.Start()
	require.NotEmpty(t, events)
	require.NotEmpty(t, sess.Menu())

	// "1" selects "New game" from the main menu.
	_, err = sess.Dispatch("1")
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseDifficulty, sess.State().Phase)

	replayed, err := sess.Replay()
	require.NoError(t, err)
	assert.NotEmpty(t, replayed)
}

func TestSessionDispatchGarbageLeavesStateAlone(t *testing.T) {
	sess, err := NewSession(engine.Options{}, nil)
	require.NoError(t, err)
	sess.Start()

	// Nonsense input is shrugged off with a fresh look at the menu.
	events, err := sess.Dispatch("???")
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseMainMenu, sess.State().Phase)

	var menu *engine.MenuEvent
	for _, e := range events {
		if m, ok := e.(*engine.MenuEvent); ok {
			menu = m
		}
	}
	require.NotNil(t, menu)
	assert.Equal(t, "new", menu.Items[0].ID)

	replayed, err := sess.Replay()
	require.NoError(t, err)
	assert.Nil(t, replayed)
}
