package service

import (
	"testing"

	"github.com/familybell/bell-scheduler/internal/domain/entity"
	"github.com/familybell/bell-scheduler/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockStore     *mocks.MockDocumentStore
	mockAnnouncer *mocks.MockAnnouncer
	mockMedia     *mocks.MockMediaPlayer
	mockEvents    *mocks.MockEventPublisher
}

// newServiceTestMock wires an Instance against mocks. The global provider is
// tts.google; events are accepted silently unless a test overrides that.
func newServiceTestMock(t *testing.T) (m allMocks, inst *Instance, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockStore:     mocks.NewMockDocumentStore(ctrl),
		mockAnnouncer: mocks.NewMockAnnouncer(ctrl),
		mockMedia:     mocks.NewMockMediaPlayer(ctrl),
		mockEvents:    mocks.NewMockEventPublisher(ctrl),
	}
	m.mockEvents.EXPECT().PublishDataChanged(gomock.Any()).Return(nil).AnyTimes()

	inst = NewInstance(m.mockStore, m.mockAnnouncer, m.mockMedia, m.mockEvents,
		entity.TTSDefaults{Provider: "tts.google", Language: "en"}, zap.NewNop())
	require.NotNil(t, inst)
	t.Cleanup(inst.Scheduler.Stop)

	return
}
