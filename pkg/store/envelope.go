package store

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/pkg/types"
)

// envelope is the on-disk value of a Bolt record.
type envelope struct {
	Key  string `msgpack:"k"`
	Size int    `msgpack:"s"`
	Data []byte `msgpack:"d"`
}

func encodeEnvelope(key tgi.Key, data []byte) ([]byte, error) {
	b, err := msgpack.Marshal(&envelope{Key: key.String(), Size: len(data), Data: data})
	if err != nil {
		return nil, fmt.Errorf("store: encode %s: %w", key, err)
	}
	return b, nil
}

func decodeEnvelope(key tgi.Key, raw []byte) ([]byte, error) {
	var env envelope
	if err := msgpack.Unmarshal(raw, &env); err != nil {
		return nil, &types.Error{Kind: types.ErrKindMalformed, Offset: types.NoOffset, Msg: "store: record " + key.String(), Err: err}
	}
	if env.Key != key.String() {
		return nil, types.Malformed(types.NoOffset, "store: record %s holds key %s", key, env.Key)
	}
	if env.Size != len(env.Data) {
		return nil, types.Malformed(types.NoOffset, "store: record %s size %d, have %d bytes", key, env.Size, len(env.Data))
	}
	if env.Data == nil {
		return []byte{}, nil
	}
	return bytes.Clone(env.Data), nil
}

// boltKey is big-endian so bbolt's byte order matches tgi.Key.Compare.
func boltKey(k tgi.Key) []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint32(b[0:], k.Type)
	binary.BigEndian.PutUint32(b[4:], k.Group)
	binary.BigEndian.PutUint64(b[8:], k.Instance)
	return b
}

func parseBoltKey(b []byte) (tgi.Key, bool) {
	if len(b) != 16 {
		return tgi.Key{}, false
	}
	return tgi.New(
		binary.BigEndian.Uint32(b[0:]),
		binary.BigEndian.Uint32(b[4:]),
		binary.BigEndian.Uint64(b[8:]),
	), true
}
