package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The mail worker receives messages as an opaque envelope and decodes the
// data by type, so the attachment bytes must survive the JSON trip.
func TestMailMessageRoundTrip(t *testing.T) {
	pdfBytes := []byte{0x25, 0x50, 0x44, 0x46, 0x2d, 0x31, 0x2e, 0x34}

	message := MailMessage{
		Type: MailTypeSendResume,
		To:   "hr@acme.example",
		Data: SendResumeMailData{
			Alumni:    "María González",
			Names:     "María José",
			Surnames:  "González Pérez",
			Position:  "Backend Developer",
			ResumePDF: pdfBytes,
		},
	}

	encoded, err := json.Marshal(message)
	require.NoError(t, err)

	var envelope struct {
		Type string          `json:"type"`
		To   string          `json:"to"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(encoded, &envelope))
	assert.Equal(t, MailTypeSendResume, envelope.Type)
	assert.Equal(t, "hr@acme.example", envelope.To)

	var data SendResumeMailData
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "María González", data.Alumni)
	assert.Equal(t, "Backend Developer", data.Position)
	assert.Equal(t, pdfBytes, data.ResumePDF)
}
