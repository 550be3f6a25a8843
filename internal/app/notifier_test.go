package app

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"homework_status_bot/internal/domain/failure"
	"homework_status_bot/internal/domain/telegram/mocks"
)

func TestNotifier_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	logger, hook := logtest.NewNullLogger()

	client.EXPECT().SendMessage("123456", "Работа взята на проверку ревьюером.", nil).Return(nil)

	n := NewNotifier(client, "123456", logrus.NewEntry(logger))
	n.SendMessage("Работа взята на проверку ревьюером.")

	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.ErrorLevel, entry.Level)
	}
}

func TestNotifier_SendMessage_DeliveryFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	logger, hook := logtest.NewNullLogger()

	client.EXPECT().SendMessage("123456", gomock.Any(), gomock.Nil()).Return(errors.New("telegram: chat not found (400)"))

	n := NewNotifier(client, "123456", logrus.NewEntry(logger))
	assert.NotPanics(t, func() { n.SendMessage("hello") })

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, failure.KindNotificationDelivery.String(), entry.Data["kind"])

	err, ok := entry.Data[logrus.ErrorKey].(error)
	require.True(t, ok)
	kind, ok := failure.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, failure.KindNotificationDelivery, kind)
	assert.False(t, failure.ShouldNotify(err))
}
