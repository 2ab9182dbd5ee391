package session_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayankBansal12/evol-kiosk/internal/infrastructure/monitoring"
	"github.com/MayankBansal12/evol-kiosk/internal/session"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/id"
	"github.com/MayankBansal12/evol-kiosk/internal/shared/types"
)

func newTestManager(backend session.Backend) (*session.Manager, *fakeClock) {
	clock := newFakeClock()
	store := session.NewStore(backend, nil)
	mgr := session.NewManager(store, nil, session.WithClock(clock.Now))
	return mgr, clock
}

func TestManager_GetSessionData_LiveSession(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	clock.Advance(4 * time.Minute)
	rec, ok := mgr.GetSessionData(res.SessionID)
	require.True(t, ok)
	assert.Equal(t, types.StateUserDetails, rec.State)
}

func TestManager_GetSessionData_LazyExpiry(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	clock.Advance(5 * time.Minute)
	_, ok := mgr.GetSessionData(res.SessionID)
	assert.False(t, ok)

	// The expired record was removed, not just hidden
	assert.Empty(t, mgr.Store().SessionKeys())
	_, ok = mgr.Store().CurrentSessionID()
	assert.False(t, ok)
}

func TestManager_ExpiryBoundary(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	// One millisecond short of the timeout the session is still live
	clock.Advance(5*time.Minute - time.Millisecond)
	_, ok := mgr.GetSessionData(res.SessionID)
	assert.True(t, ok)

	clock.Advance(time.Millisecond)
	_, ok = mgr.GetSessionData(res.SessionID)
	assert.False(t, ok)
}

func TestManager_ReadsDoNotExtendSession(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	for i := 0; i < 4; i++ {
		clock.Advance(time.Minute)
		mgr.GetSessionData(res.SessionID)
		mgr.TimeUntilExpiry(res.SessionID)
	}
	clock.Advance(time.Minute)

	_, ok := mgr.GetSessionData(res.SessionID)
	assert.False(t, ok, "reads alone must not keep a session alive")
}

func TestManager_UpdateLastActivityExtendsSession(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	clock.Advance(4 * time.Minute)
	mgr.UpdateLastActivity(res.SessionID)

	clock.Advance(4 * time.Minute)
	_, ok := mgr.GetSessionData(res.SessionID)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, mgr.TimeUntilExpiry(res.SessionID))
}

func TestManager_UpdateLastActivityOnExpiredSessionIsNoOp(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	clock.Advance(6 * time.Minute)
	bumped := mgr.UpdateLastActivity(res.SessionID)
	assert.False(t, bumped, "an expired session must not be revived by an activity bump")

	// The bump deleted the stale record instead of re-stamping it
	_, ok := mgr.GetSessionData(res.SessionID)
	assert.False(t, ok)
	assert.Empty(t, mgr.Store().SessionKeys())
}

func TestManager_UpdateLastActivityReportsSuccess(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	clock.Advance(time.Minute)
	assert.True(t, mgr.UpdateLastActivity(res.SessionID))
	assert.False(t, mgr.UpdateLastActivity("kiosk-session-missing"))
}

func TestManager_TimeUntilExpiry(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	assert.Equal(t, 5*time.Minute, mgr.TimeUntilExpiry(res.SessionID))

	clock.Advance(3 * time.Minute)
	assert.Equal(t, 2*time.Minute, mgr.TimeUntilExpiry(res.SessionID))

	clock.Advance(10 * time.Minute)
	assert.Equal(t, time.Duration(0), mgr.TimeUntilExpiry(res.SessionID))

	assert.Equal(t, time.Duration(0), mgr.TimeUntilExpiry("kiosk-session-missing"))
}

func TestManager_AboutToExpire(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	assert.False(t, mgr.AboutToExpire(res.SessionID))

	clock.Advance(5*time.Minute - 30*time.Second)
	assert.True(t, mgr.AboutToExpire(res.SessionID))

	clock.Advance(29 * time.Second)
	assert.True(t, mgr.AboutToExpire(res.SessionID))

	// At zero remaining the session is expired, not about to expire
	clock.Advance(time.Second)
	assert.False(t, mgr.AboutToExpire(res.SessionID))
}

func TestManager_InitSession_Fresh(t *testing.T) {
	mgr, _ := newTestManager(session.NewMemoryBackend())

	res := mgr.InitSession()
	assert.False(t, res.Restored)
	assert.Nil(t, res.Data)
	assert.True(t, id.IsSessionID(res.SessionID.String()))

	current, ok := mgr.Store().CurrentSessionID()
	require.True(t, ok)
	assert.Equal(t, res.SessionID, current)

	rec, ok := mgr.GetSessionData(res.SessionID)
	require.True(t, ok)
	assert.Equal(t, types.StateUserDetails, rec.State)
}

func TestManager_InitSession_RestoresLiveSession(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())

	first := mgr.InitSession()
	rec, _ := mgr.GetSessionData(first.SessionID)
	rec.UserName = "Meera"
	rec.State = types.StateSurvey
	mgr.SaveSessionData(first.SessionID, rec)

	clock.Advance(2 * time.Minute)
	second := mgr.InitSession()

	assert.True(t, second.Restored)
	assert.Equal(t, first.SessionID, second.SessionID)
	require.NotNil(t, second.Data)
	assert.Equal(t, "Meera", second.Data.UserName)
	assert.Equal(t, types.StateSurvey, second.Data.State)
}

func TestManager_InitSession_FreshAfterExpiry(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())

	first := mgr.InitSession()
	clock.Advance(6 * time.Minute)
	second := mgr.InitSession()

	assert.False(t, second.Restored)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	// The startup sweep removed the stale record
	_, ok := mgr.Store().ReadRecord(first.SessionID)
	assert.False(t, ok)
}

func TestManager_InitSession_RepeatedCallIsStable(t *testing.T) {
	mgr, clock := newTestManager(session.NewMemoryBackend())

	first := mgr.InitSession()
	clock.Advance(time.Second)
	second := mgr.InitSession()

	assert.Equal(t, first.SessionID, second.SessionID)
	assert.True(t, second.Restored)
}

func TestManager_ClearOldSessions(t *testing.T) {
	backend := session.NewMemoryBackend()
	mgr, clock := newTestManager(backend)
	store := mgr.Store()

	stale := store.GenerateSessionID()
	require.NoError(t, store.WriteRecord(stale, &session.Record{}))
	corrupt := store.GenerateSessionID()
	require.NoError(t, backend.Set(string(corrupt), "{broken"))

	clock.Advance(6 * time.Minute)
	fresh := store.GenerateSessionID()
	require.NoError(t, store.WriteRecord(fresh, &session.Record{}))

	removed := mgr.ClearOldSessions()
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{fresh.String()}, keyStrings(store))
}

func keyStrings(store *session.Store) []string {
	var out []string
	for _, sid := range store.SessionKeys() {
		out = append(out, sid.String())
	}
	return out
}

func TestManager_SaveSessionData_QuotaSweepAndRetry(t *testing.T) {
	// Budget fits roughly one record; the stale one must be swept to
	// make room for the new one.
	backend := session.NewBoundedMemoryBackend(256)
	mgr, clock := newTestManager(backend)
	store := mgr.Store()

	stale := store.GenerateSessionID()
	require.NoError(t, store.WriteRecord(stale, &session.Record{
		UserName: "Old",
		Messages: []types.Turn{
			{Role: types.RoleUser, Content: "a ring for my mother, something classic"},
			{Role: types.RoleAssistant, Content: "Lovely. What budget did you have in mind?"},
		},
	}))

	clock.Advance(6 * time.Minute)
	fresh := store.GenerateSessionID()
	saved := mgr.SaveSessionData(fresh, &session.Record{UserName: "New", State: types.StateUserDetails})
	assert.True(t, saved)

	rec, ok := mgr.GetSessionData(fresh)
	require.True(t, ok, "save should succeed after sweeping expired sessions")
	assert.Equal(t, "New", rec.UserName)

	_, ok = store.ReadRecord(stale)
	assert.False(t, ok)
}

func TestManager_SaveSessionData_QuotaStillFullIsSwallowed(t *testing.T) {
	backend := session.NewBoundedMemoryBackend(10)
	mgr, _ := newTestManager(backend)

	sid := mgr.Store().GenerateSessionID()
	// Nothing to sweep and the record can never fit; the save is
	// dropped and reported false without failing the caller.
	saved := mgr.SaveSessionData(sid, &session.Record{UserName: "Too big to fit"})
	assert.False(t, saved)

	_, ok := mgr.GetSessionData(sid)
	assert.False(t, ok)
}

func TestManager_ActiveSessionsGauge(t *testing.T) {
	metrics := monitoring.NewMetrics()
	clock := newFakeClock()
	store := session.NewStore(session.NewMemoryBackend(), nil)
	mgr := session.NewManager(store, nil,
		session.WithClock(clock.Now),
		session.WithMetrics(metrics),
	)

	res := mgr.InitSession()
	other := store.GenerateSessionID()
	mgr.SaveSessionData(other, &session.Record{UserName: "Second"})
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.SessionsActive))

	mgr.ClearSession(other)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SessionsActive))

	clock.Advance(6 * time.Minute)
	mgr.GetSessionData(res.SessionID)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.SessionsActive))
}

func TestManager_ClearCurrentSession(t *testing.T) {
	mgr, _ := newTestManager(session.NewMemoryBackend())
	res := mgr.InitSession()

	mgr.ClearCurrentSession()

	_, ok := mgr.GetSessionData(res.SessionID)
	assert.False(t, ok)
	_, ok = mgr.Store().CurrentSessionID()
	assert.False(t, ok)

	// A second clear with no current session is a no-op
	mgr.ClearCurrentSession()
}

func TestManager_CustomTimeout(t *testing.T) {
	store := session.NewStore(session.NewMemoryBackend(), nil)
	clock := newFakeClock()
	mgr := session.NewManager(store, nil,
		session.WithClock(clock.Now),
		session.WithTimeout(10*time.Second),
		session.WithWarningWindow(3*time.Second),
	)

	res := mgr.InitSession()
	clock.Advance(8 * time.Second)
	assert.True(t, mgr.AboutToExpire(res.SessionID))

	clock.Advance(2 * time.Second)
	_, ok := mgr.GetSessionData(res.SessionID)
	assert.False(t, ok)
}
