package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cargo-tracker/internal/core/config"
	"cargo-tracker/internal/features/orders/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWriter is a mock implementation of Writer.
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func sampleEvent() domain.StatusChanged {
	return domain.StatusChanged{
		ID:          "3b241101-e2bb-4255-8caf-4136c566a962",
		OrderID:     "ORD1",
		PackageID:   "PKG1",
		PhoneNumber: "99112233",
		From:        domain.OrderStatusInTransit,
		To:          domain.OrderStatusInUB,
		At:          time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		EmployeeID:  "emp-1",
	}
}

func TestKafkaPublisher_StatusChanged(t *testing.T) {
	t.Run("KeyedByOrderID", func(t *testing.T) {
		w := new(MockWriter)
		pub := NewKafkaPublisher(w)
		event := sampleEvent()

		w.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			if len(msgs) != 1 || string(msgs[0].Key) != event.ID {
				return false
			}
			var got domain.StatusChanged
			if err := json.Unmarshal(msgs[0].Value, &got); err != nil {
				return false
			}
			return got.To == domain.OrderStatusInUB && got.From == domain.OrderStatusInTransit
		})).Return(nil)

		require.NoError(t, pub.StatusChanged(context.Background(), event))
		w.AssertExpectations(t)
	})

	t.Run("WriteFailure", func(t *testing.T) {
		w := new(MockWriter)
		pub := NewKafkaPublisher(w)

		w.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available"))

		err := pub.StatusChanged(context.Background(), sampleEvent())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ORD1")
	})

	t.Run("Close", func(t *testing.T) {
		w := new(MockWriter)
		w.On("Close").Return(nil)
		assert.NoError(t, NewKafkaPublisher(w).Close())
		w.AssertExpectations(t)
	})
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter(config.KafkaConfig{Brokers: "k1:9092,k2:9092", Topic: "order-status-changed"})
	assert.Equal(t, "order-status-changed", w.Topic)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}
