package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationDataUnmarshal(t *testing.T) {
	t.Run("string id", func(t *testing.T) {
		var dto NotificationDTO
		require.NoError(t, json.Unmarshal([]byte(`{"action":"payment.updated","type":"payment","data":{"id":"T1"}}`), &dto))
		assert.Equal(t, "T1", dto.Data.ID)
	})

	t.Run("numeric id keeps full precision", func(t *testing.T) {
		var dto NotificationDTO
		require.NoError(t, json.Unmarshal([]byte(`{"action":"payment.updated","type":"payment","data":{"id":123456789012345}}`), &dto))
		assert.Equal(t, "123456789012345", dto.Data.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		var dto NotificationDTO
		require.NoError(t, json.Unmarshal([]byte(`{"action":"payment.updated","type":"payment","data":{}}`), &dto))
		assert.Empty(t, dto.Data.ID)
	})
}

func TestNotificationComplete(t *testing.T) {
	complete := NotificationDTO{Action: "payment.updated", Type: "payment", Data: NotificationData{ID: "T1"}}
	assert.True(t, complete.Complete())

	missing := []NotificationDTO{
		{Type: "payment", Data: NotificationData{ID: "T1"}},
		{Action: "payment.updated", Data: NotificationData{ID: "T1"}},
		{Action: "payment.updated", Type: "payment"},
	}
	for _, dto := range missing {
		assert.False(t, dto.Complete())
	}
}
