package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomDerivesCapacityAndPricing(t *testing.T) {
	tests := []struct {
		name         string
		roomType     RoomType
		premium      bool
		wantCapacity int
		wantPrice    float64
	}{
		{"premium single", RoomSingle, true, 2, 200},
		{"standard single", RoomSingle, false, 2, 100},
		{"premium double", RoomDouble, true, 4, 200},
		{"standard double", RoomDouble, false, 4, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, err := NewRoom(1, 101, tt.roomType, tt.premium)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCapacity, room.Capacity)
			assert.Equal(t, tt.wantPrice, room.Price)
			assert.True(t, room.IsClean)
			assert.False(t, room.IsOccupied)
			if tt.premium {
				assert.NotEqual(t, "Standard room", room.Description)
			} else {
				assert.Equal(t, "Standard room", room.Description)
			}
		})
	}
}

func TestNewRoomRejectsUnknownType(t *testing.T) {
	_, err := NewRoom(1, 101, RoomType("Suite"), false)
	assert.ErrorIs(t, err, ErrInvalidRoomType)
}
