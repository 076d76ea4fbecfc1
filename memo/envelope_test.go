package memo

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	require := require.New(t)

	payload := bytes.Repeat([]byte{0x42}, 64)
	env := &Envelope{Version: EnvelopeVersion, Amount: 420_000_000, Payload: payload}
	data := env.Encode()

	decoded, err := DecodeEnvelope(data)
	require.Nil(err)
	require.Equal(uint8(EnvelopeVersion), decoded.Version)
	require.Equal(uint64(420_000_000), decoded.Amount)
	require.Equal(payload, decoded.Payload)

	require.Equal(data, decoded.Encode())
}

func TestEnvelopePayloadBounds(t *testing.T) {
	require := require.New(t)

	env := &Envelope{Version: EnvelopeVersion, Payload: bytes.Repeat([]byte{1}, MaxPayloadLength)}
	decoded, err := DecodeEnvelope(env.Encode())
	require.Nil(err)
	require.Len(decoded.Payload, MaxPayloadLength)

	require.Panics(func() {
		env := &Envelope{Version: EnvelopeVersion, Payload: bytes.Repeat([]byte{1}, MaxPayloadLength+1)}
		env.Encode()
	})

	// hand-frame a 788 byte payload, the decoded size trips the transport
	// cap before the payload check
	raw := frameEnvelope(EnvelopeVersion, 0, bytes.Repeat([]byte{1}, MaxPayloadLength+1))
	_, err = DecodeEnvelope(encodeBase64(raw))
	require.ErrorIs(err, ErrInvalidMemoFormat)
}

func TestEnvelopeVersion(t *testing.T) {
	require := require.New(t)

	raw := frameEnvelope(2, 0, bytes.Repeat([]byte{3}, 16))
	_, err := DecodeEnvelope(encodeBase64(raw))
	require.ErrorIs(err, ErrUnsupportedMemoVersion)

	raw = frameEnvelope(0, 0, bytes.Repeat([]byte{3}, 16))
	_, err = DecodeEnvelope(encodeBase64(raw))
	require.ErrorIs(err, ErrUnsupportedMemoVersion)
}

func TestEnvelopeFraming(t *testing.T) {
	require := require.New(t)

	// not base64
	_, err := DecodeEnvelope([]byte("!!!! not base64 !!!!"))
	require.ErrorIs(err, ErrInvalidMemoFormat)

	// not utf8
	_, err = DecodeEnvelope([]byte{0xff, 0xfe, 0xfd})
	require.ErrorIs(err, ErrInvalidMemoFormat)

	// shorter than the fixed overhead
	_, err = DecodeEnvelope(encodeBase64(make([]byte, envelopeOverhead-1)))
	require.ErrorIs(err, ErrInvalidMemoFormat)

	// length prefix claims more than available
	raw := frameEnvelope(EnvelopeVersion, 0, bytes.Repeat([]byte{3}, 16))
	_, err = DecodeEnvelope(encodeBase64(raw[:len(raw)-1]))
	require.ErrorIs(err, ErrInvalidMemoFormat)

	// trailing bytes after the framed payload
	_, err = DecodeEnvelope(encodeBase64(append(raw, 0)))
	require.ErrorIs(err, ErrInvalidMemoFormat)
}

func frameEnvelope(version uint8, amount uint64, payload []byte) []byte {
	raw := []byte{version}
	raw = binary.LittleEndian.AppendUint64(raw, amount)
	raw = binary.LittleEndian.AppendUint32(raw, uint32(len(payload)))
	return append(raw, payload...)
}

func encodeBase64(raw []byte) []byte {
	return []byte(base64.StdEncoding.EncodeToString(raw))
}
