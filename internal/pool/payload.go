package pool

import "sync"

const (
	// PayloadDefaultSize is the initial capacity of pooled export bodies.
	PayloadDefaultSize = 1024 * 16 // 16KiB
	// PayloadMaxRetained is the largest body kept for reuse.
	PayloadMaxRetained = 1024 * 1024 // 1MiB
)

// Payload accumulates an export body. It implements io.Writer so a
// json.Encoder can stream into it.
type Payload struct {
	B []byte
}

// Write appends data to the body.
func (p *Payload) Write(data []byte) (int, error) {
	p.B = append(p.B, data...)
	return len(data), nil
}

// Body returns the accumulated bytes without the trailing newline that
// json.Encoder appends.
func (p *Payload) Body() []byte {
	if n := len(p.B); n > 0 && p.B[n-1] == '\n' {
		return p.B[:n-1]
	}

	return p.B
}

// Len returns the number of buffered bytes.
func (p *Payload) Len() int {
	return len(p.B)
}

var payloadPool = sync.Pool{
	New: func() any {
		return &Payload{B: make([]byte, 0, PayloadDefaultSize)}
	},
}

// GetPayload retrieves an empty Payload.
func GetPayload() *Payload {
	p, _ := payloadPool.Get().(*Payload)
	return p
}

// PutPayload returns p for reuse. Bodies grown past PayloadMaxRetained are
// dropped.
func PutPayload(p *Payload) {
	if p == nil || cap(p.B) > PayloadMaxRetained {
		return
	}

	p.B = p.B[:0]
	payloadPool.Put(p)
}
