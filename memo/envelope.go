package memo

import (
	"encoding/base64"
	"encoding/binary"
	"unicode/utf8"

	"github.com/MixinNetwork/mixin/logger"
)

const (
	// MemoMinLength and MemoMaxLength bound the Base64 transport text.
	MemoMinLength = 69
	MemoMaxLength = 800

	// The framed envelope is u8 version, u64 amount and a u32 length prefix
	// ahead of the payload bytes.
	envelopeOverhead = 1 + 8 + 4

	// MaxPayloadLength is what remains of the transport budget after the
	// envelope framing.
	MaxPayloadLength = MemoMaxLength - envelopeOverhead

	// EnvelopeVersion is the only accepted outer version.
	EnvelopeVersion = 1
)

// Envelope is the outer memo record. Amount must equal the instruction burn
// argument for burn-bearing operations and zero for mint-bearing ones; the
// payload is the operation-typed inner record.
type Envelope struct {
	Version uint8
	Amount  uint64
	Payload []byte
}

// Encode frames the envelope and wraps it in standard Base64 text. It is the
// exact client-side mirror of DecodeEnvelope: byte-identical input produces
// byte-identical output.
func (e *Envelope) Encode() []byte {
	if len(e.Payload) > MaxPayloadLength {
		panic(len(e.Payload))
	}
	raw := make([]byte, 0, envelopeOverhead+len(e.Payload))
	raw = append(raw, e.Version)
	raw = binary.LittleEndian.AppendUint64(raw, e.Amount)
	raw = binary.LittleEndian.AppendUint32(raw, uint32(len(e.Payload)))
	raw = append(raw, e.Payload...)
	return []byte(base64.StdEncoding.EncodeToString(raw))
}

// DecodeEnvelope reverses Encode over raw memo instruction bytes. The input
// must be UTF-8 Base64 text whose decoded form is exactly one framed
// envelope; short or trailing bytes are rejected.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidMemoFormat
	}
	raw, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		logger.Verbosef("memo.DecodeEnvelope(%d bytes) => base64 %v", len(data), err)
		return nil, ErrInvalidMemoFormat
	}
	if len(raw) > MemoMaxLength {
		return nil, ErrInvalidMemoFormat
	}
	if len(raw) < envelopeOverhead {
		return nil, ErrInvalidMemoFormat
	}
	e := &Envelope{
		Version: raw[0],
		Amount:  binary.LittleEndian.Uint64(raw[1:9]),
	}
	size := binary.LittleEndian.Uint32(raw[9:13])
	if len(raw) != envelopeOverhead+int(size) {
		return nil, ErrInvalidMemoFormat
	}
	e.Payload = raw[envelopeOverhead:]
	if e.Version != EnvelopeVersion {
		return nil, ErrUnsupportedMemoVersion
	}
	if len(e.Payload) > MaxPayloadLength {
		return nil, ErrPayloadTooLong
	}
	return e, nil
}
