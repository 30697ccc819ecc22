package events_test

import (
	"testing"

	"assuredgig/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversTypedPayload(t *testing.T) {
	bus := events.NewBus()

	var got events.ProposalDecided
	handler := func(e events.ProposalDecided) { got = e }
	require.NoError(t, bus.Subscribe(events.TopicProposalAccepted, handler))

	contractID := uuid.New()
	sent := events.ProposalDecided{ProposalID: uuid.New(), ContractID: &contractID}
	bus.Publish(events.TopicProposalAccepted, sent)

	assert.Equal(t, sent.ProposalID, got.ProposalID)
	require.NotNil(t, got.ContractID)
	assert.Equal(t, contractID, *got.ContractID)

	require.NoError(t, bus.Unsubscribe(events.TopicProposalAccepted, handler))
	bus.Publish(events.TopicProposalAccepted, events.ProposalDecided{})
	assert.Equal(t, sent.ProposalID, got.ProposalID)
}

func TestNop(t *testing.T) {
	var p events.Publisher = events.Nop{}
	assert.NotPanics(t, func() { p.Publish(events.TopicMessageSent, events.MessageSent{}) })
}
