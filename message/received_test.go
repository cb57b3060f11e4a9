package message

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/chatstreams/errors"
)

func TestParseReceived(t *testing.T) {
	input := `[
		{"type":"Source","id":123,"time":1700000000},
		{"type":"Plain","text":"hello "},
		{"type":"At","target":456,"display":"@bot"}
	]`

	recv, err := ParseReceived([]byte(input))
	require.NoError(t, err)

	assert.EqualValues(t, 123, recv.Source.ID)
	assert.EqualValues(t, 1700000000, recv.Source.Time)
	assert.Nil(t, recv.Quote)
	require.Equal(t, 2, recv.Content.Len())
	assert.Equal(t, "hello ", recv.Content.ExtractText())
}

func TestParseReceivedWithQuote(t *testing.T) {
	input := `[
		{"type":"Source","id":200,"time":1700000001},
		{"type":"Quote","id":123,"groupId":900,"senderId":456,"targetId":789,
		 "origin":[{"type":"Plain","text":"quoted"}]},
		{"type":"Plain","text":"reply"}
	]`

	recv, err := ParseReceived([]byte(input))
	require.NoError(t, err)

	require.NotNil(t, recv.Quote)
	assert.EqualValues(t, 123, recv.Quote.ID)
	assert.EqualValues(t, 900, recv.Quote.GroupID)
	assert.EqualValues(t, 456, recv.Quote.SenderID)
	assert.EqualValues(t, 789, recv.Quote.TargetID)
	assert.Equal(t, "quoted", recv.Quote.Origin.ExtractText())
	assert.Equal(t, "reply", recv.Content.ExtractText())
}

func TestParseReceivedNormalizesContent(t *testing.T) {
	input := `[
		{"type":"Source","id":1,"time":1},
		{"type":"Plain","text":"a"},
		{"type":"Plain","text":"b"}
	]`

	recv, err := ParseReceived([]byte(input))
	require.NoError(t, err)
	require.Equal(t, 1, recv.Content.Len())
	assert.Equal(t, "ab", recv.Content.ExtractText())
}

func TestParseReceivedErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty array", input: `[]`},
		{name: "missing source", input: `[{"type":"Plain","text":"x"}]`},
		{name: "not an array", input: `{"type":"Source"}`},
		{name: "unknown segment after source", input: `[{"type":"Source","id":1,"time":1},{"type":"bogus"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReceived([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err), "decode failures classify as invalid: %v", err)
		})
	}
}

func TestReceivedMessageJSONRoundTrip(t *testing.T) {
	recv := ReceivedMessage{
		Source: Source{ID: 42, Time: 1700000002},
		Quote: &Quote{
			ID:       41,
			SenderID: 7,
			TargetID: 8,
			Origin:   FromText("earlier"),
		},
		Content: FromText("later"),
	}

	data, err := json.Marshal(recv)
	require.NoError(t, err)

	var got ReceivedMessage
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, recv.Source, got.Source)
	require.NotNil(t, got.Quote)
	assert.Equal(t, recv.Quote.ID, got.Quote.ID)
	assert.True(t, recv.Quote.Origin.Equal(got.Quote.Origin))
	assert.True(t, recv.Content.Equal(got.Content))
}
