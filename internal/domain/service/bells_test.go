package service

import (
	"context"
	"errors"
	"testing"

	"github.com/familybell/bell-scheduler/internal/domain"
	"github.com/familybell/bell-scheduler/internal/domain/entity"
	"github.com/familybell/bell-scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestBellService_LoadDataAbsentStartsEmpty(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	m.mockStore.EXPECT().Load(gomock.Any()).Return(nil, nil)

	require.NoError(t, inst.Bells.LoadData(context.Background()))

	data := inst.Bells.GetData()
	assert.Empty(t, data.Bells)
	assert.False(t, data.Vacation.Enabled)
	assert.Equal(t, domain.StorageVersion, data.Version)
}

func TestBellService_LoadDataRestoresDocument(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	stored := &entity.Document{
		Bells:    []entity.Bell{{ID: "a", Time: "08:00", Days: []string{"mon"}, Enabled: true}},
		Vacation: entity.Vacation{Start: "2024-07-01", End: "2024-08-31", Enabled: true},
	}
	m.mockStore.EXPECT().Load(gomock.Any()).Return(stored, nil)

	require.NoError(t, inst.Bells.LoadData(context.Background()))

	data := inst.Bells.GetData()
	require.Len(t, data.Bells, 1)
	assert.Equal(t, "a", data.Bells[0].ID)
	assert.True(t, data.Vacation.Enabled)
}

func TestBellService_UpsertAppendsAndAssignsID(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	m.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	bell := entity.Bell{Time: "08:00", Days: []string{"mon"}, Message: "Wake up", Enabled: true}
	require.NoError(t, inst.Bells.UpsertBell(context.Background(), bell))

	data := inst.Bells.GetData()
	require.Len(t, data.Bells, 1)
	assert.NotEmpty(t, data.Bells[0].ID, "an id must be assigned when the caller sent none")
	assert.Equal(t, 1, inst.Scheduler.TimerCount(), "upsert must arm the new bell")
}

func TestBellService_UpsertReplacesByID(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	m.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first := entity.Bell{ID: "bell-1", Time: "08:00", Days: []string{"mon"}, Message: "first", Enabled: true}
	require.NoError(t, inst.Bells.UpsertBell(context.Background(), first))

	second := first
	second.Message = "second"
	require.NoError(t, inst.Bells.UpsertBell(context.Background(), second))

	data := inst.Bells.GetData()
	require.Len(t, data.Bells, 1, "upserting the same id twice must not duplicate")
	assert.Equal(t, "second", data.Bells[0].Message)
}

func TestBellService_UpsertUpdatesLastDefaults(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	m.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	withOverrides := entity.Bell{
		ID: "bell-1", Time: "08:00", Days: []string{"mon"}, Enabled: true,
		TTSProvider: "tts.piper", TTSVoice: "en_voice_1", TTSLanguage: "en",
	}
	require.NoError(t, inst.Bells.UpsertBell(context.Background(), withOverrides))

	data := inst.Bells.GetData()
	require.NotNil(t, data.LastDefaults)
	assert.Equal(t, "tts.piper", data.LastDefaults.Provider)
	assert.Equal(t, "en_voice_1", data.LastDefaults.Voice)
	assert.Equal(t, "en", data.LastDefaults.Language)

	// A bell without overrides clears the cache: explicitly empty is remembered.
	cleared := entity.Bell{ID: "bell-2", Time: "09:00", Days: []string{"tue"}, Enabled: true}
	require.NoError(t, inst.Bells.UpsertBell(context.Background(), cleared))

	data = inst.Bells.GetData()
	require.NotNil(t, data.LastDefaults)
	assert.Empty(t, data.LastDefaults.Provider)
	assert.Empty(t, data.LastDefaults.Voice)
}

func TestBellService_UpsertRejectsInvalidTime(t *testing.T) {
	_, inst, _ := newServiceTestMock(t)

	// No Save expectation: a rejected bell must not touch the store.
	bell := entity.Bell{ID: "bell-1", Time: "8 o'clock", Days: []string{"mon"}}
	err := inst.Bells.UpsertBell(context.Background(), bell)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "time", validationErr.Field)
	assert.Empty(t, inst.Bells.GetData().Bells)
}

func TestBellService_UpsertRejectsUnknownDayToken(t *testing.T) {
	_, inst, _ := newServiceTestMock(t)

	bell := entity.Bell{ID: "bell-1", Time: "08:00", Days: []string{"monday"}}
	err := inst.Bells.UpsertBell(context.Background(), bell)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "days", validationErr.Field)
}

func TestBellService_UpsertReturnsPersistenceFailureButKeepsSchedule(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	m.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	bell := entity.Bell{ID: "bell-1", Time: "08:00", Days: []string{"mon"}, Enabled: true}
	err := inst.Bells.UpsertBell(context.Background(), bell)
	require.Error(t, err)

	// The in-memory mutation stands and the scheduler follows it.
	assert.Len(t, inst.Bells.GetData().Bells, 1)
	assert.Equal(t, 1, inst.Scheduler.TimerCount())
}

func TestBellService_DeleteRemovesBell(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	m.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	bell := entity.Bell{ID: "bell-1", Time: "08:00", Days: []string{"mon"}, Enabled: true}
	require.NoError(t, inst.Bells.UpsertBell(context.Background(), bell))
	require.NoError(t, inst.Bells.DeleteBell(context.Background(), "bell-1"))

	assert.Empty(t, inst.Bells.GetData().Bells)
	assert.Equal(t, 0, inst.Scheduler.TimerCount(), "deleting the only bell must cancel its timer")
}

func TestBellService_DeleteUnknownIDIsNoOp(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	m.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	bell := entity.Bell{ID: "bell-1", Time: "08:00", Days: []string{"mon"}, Enabled: true}
	require.NoError(t, inst.Bells.UpsertBell(context.Background(), bell))

	require.NoError(t, inst.Bells.DeleteBell(context.Background(), "nonexistent"))
	assert.Len(t, inst.Bells.GetData().Bells, 1)
}

func TestBellService_SetVacationSuppressesScheduling(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	m.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	now := inst.Scheduler.now()
	bell := entity.Bell{ID: "bell-1", Time: "23:59", Days: []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}, Enabled: true}
	require.NoError(t, inst.Bells.UpsertBell(context.Background(), bell))
	require.Equal(t, 1, inst.Scheduler.TimerCount())

	today := now.Format(domain.VacationDateFormat)
	require.NoError(t, inst.Bells.SetVacation(context.Background(), entity.Vacation{
		Start:   today,
		End:     today,
		Enabled: true,
	}))

	assert.Equal(t, 0, inst.Scheduler.TimerCount(), "vacation covering today must leave no timers armed")
}

func TestBellService_SetVacationRejectsBadDates(t *testing.T) {
	_, inst, _ := newServiceTestMock(t)

	err := inst.Bells.SetVacation(context.Background(), entity.Vacation{
		Start:   "01/07/2024",
		End:     "2024-08-31",
		Enabled: true,
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "start", validationErr.Field)
}

func TestBellService_TestBellBypassesDayChecks(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	// Bell disabled, no days; test-fire must still announce.
	bell := entity.Bell{ID: "bell-1", Time: "08:00", Message: "preview", Speakers: []string{"media_player.kitchen"}}

	m.mockAnnouncer.EXPECT().Announce(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, inst.Bells.TestBell(context.Background(), bell))
}

func TestBellService_TestBellSurfacesNoProvider(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockDocumentStore(ctrl)
	announcer := mocks.NewMockAnnouncer(ctrl)
	media := mocks.NewMockMediaPlayer(ctrl)
	events := mocks.NewMockEventPublisher(ctrl)

	// Empty global defaults and no bell override: no delivery call may happen.
	inst := NewInstance(store, announcer, media, events, entity.TTSDefaults{}, zap.NewNop())

	err := inst.Bells.TestBell(context.Background(), entity.Bell{ID: "bell-1", Message: "preview"})
	assert.ErrorIs(t, err, domain.ErrNoProviderConfigured)
}

func TestBellService_UpdateGlobalTTSRebuilds(t *testing.T) {
	m, inst, _ := newServiceTestMock(t)

	m.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	bell := entity.Bell{ID: "bell-1", Time: "08:00", Days: []string{"mon"}, Enabled: true}
	require.NoError(t, inst.Bells.UpsertBell(context.Background(), bell))

	require.NoError(t, inst.Bells.UpdateGlobalTTS(context.Background(), entity.TTSDefaults{
		Provider: "tts.piper",
		Language: "es",
	}))

	data := inst.Bells.GetData()
	assert.Equal(t, "tts.piper", data.GlobalTTS.Provider)
	assert.Equal(t, "es", data.GlobalTTS.Language)
	assert.Equal(t, 1, inst.Scheduler.TimerCount())
}
