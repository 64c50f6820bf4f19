package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitionTable(t *testing.T) {
	statuses := []string{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted}

	allowed := map[[2]string]bool{
		{BookingPending, BookingConfirmed}:   true,
		{BookingPending, BookingCancelled}:   true,
		{BookingConfirmed, BookingCancelled}: true,
		{BookingConfirmed, BookingCompleted}: true,
	}

	// Every (from, to) pair must succeed iff it is an edge of the
	// lifecycle graph.
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			assert.Equal(t, want, CanTransitionBooking(from, to), "%s -> %s", from, to)
		}
	}
}

func TestBookingTerminalStates(t *testing.T) {
	assert.False(t, BookingTerminal(BookingPending))
	assert.False(t, BookingTerminal(BookingConfirmed))
	assert.True(t, BookingTerminal(BookingCancelled))
	assert.True(t, BookingTerminal(BookingCompleted))
}

func TestContactChainForwardOnly(t *testing.T) {
	assert.True(t, CanTransitionContact(ContactNew, ContactReplied))
	assert.True(t, CanTransitionContact(ContactReplied, ContactResolved))

	// No skips, no regressions, nothing out of resolved.
	assert.False(t, CanTransitionContact(ContactNew, ContactResolved))
	assert.False(t, CanTransitionContact(ContactReplied, ContactNew))
	assert.False(t, CanTransitionContact(ContactResolved, ContactNew))
	assert.False(t, CanTransitionContact(ContactResolved, ContactReplied))
	assert.False(t, CanTransitionContact(ContactNew, ContactNew))
	assert.False(t, CanTransitionContact("archived", ContactReplied))
}

func TestValidRoomType(t *testing.T) {
	for _, rt := range []string{RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite, RoomTypeFamily, RoomTypeBusiness, RoomTypePresidential} {
		assert.True(t, ValidRoomType(rt))
	}
	assert.False(t, ValidRoomType("penthouse"))
	assert.False(t, ValidRoomType(""))
}
